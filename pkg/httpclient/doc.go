// Package httpclient は共有シークレットで保護されたJSON APIを呼び出すHTTPクライアントを提供する。
//
// 全てのリクエストに "Authorization: token <secret>" を付与し、
// 2xx以外のレスポンスは StatusError として返す。
package httpclient
