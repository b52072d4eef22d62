// Package web はダッシュボードのHTMLページを配信します。
package web

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Templates は埋め込みHTMLテンプレートをパースして返します。
// ginエンジンのSetHTMLTemplateに渡して使います。
func Templates() *template.Template {
	return template.Must(template.ParseFS(templatesFS, "templates/*.html"))
}

// ViewHandler はHTMLページのリクエストを処理します。
// ページはAPIから取得したデータをブラウザ側で描画するシェルです。
type ViewHandler struct{}

// NewViewHandler は新しい ViewHandler を作成します。
func NewViewHandler() *ViewHandler {
	return &ViewHandler{}
}

// Index はチャートページを表示します。認証は不要です。
func (h *ViewHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", nil)
}

// Login はログインフォームを表示します。
// error=1クエリが付いている場合はエラーメッセージを表示します。
func (h *ViewHandler) Login(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Error": c.Query("error") != "",
	})
}

// Admin は取引設定の管理ページを表示します。認証ミドルウェアの背後に置きます。
func (h *ViewHandler) Admin(c *gin.Context) {
	c.HTML(http.StatusOK, "admin.html", nil)
}
