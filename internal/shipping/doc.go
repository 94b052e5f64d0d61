// Package shipping は配送方法一覧サービスの内部実装を提供する。
//
// クライアントは最後に受け取ったバージョン日時（rf）を送り、サーバー側の
// バージョンと一致すれば空の一覧を、異なれば全件を受け取る。
// 配送方法を作成するたびにバージョン日時が進む。
//
// 主な機能:
//   - 変更がある場合のみ一覧を返す（POST /）
//   - 配送方法の作成とバージョンの更新（POST /create）
package shipping
