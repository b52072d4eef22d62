// Package api はHTTPハンドラー間で共有するリクエスト/レスポンス型を定義します。
package api

// ErrorResponse はエラー時の共通レスポンスです。
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse は成功時の共通メッセージレスポンスです。
type MessageResponse struct {
	Message string `json:"message"`
}

// FieldErrorsResponse は検証違反のフィールド別メッセージを返します。
type FieldErrorsResponse struct {
	Error       string            `json:"error"`
	FieldErrors map[string]string `json:"fieldErrors"`
}
