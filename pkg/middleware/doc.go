// Package middleware はGinベースのHTTP APIで使用する共通ミドルウェアを提供する。
//
// 共有シークレットによるトークン認証、リクエストID付与、パニックリカバリ、
// CORS設定を含む。適用順は Recovery, RequestID, ログ, CORS, TokenAuth を想定する。
package middleware
