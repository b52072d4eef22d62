// Package handler はproductフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Fukkatsuso/cryptocurrency-trading-bot/internal/api"
	"github.com/Fukkatsuso/cryptocurrency-trading-bot/internal/feature/product/domain/entity"
)

// ProductUsecase は通貨ペア情報に関するユースケースのインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type ProductUsecase interface {
	ListActiveProducts(ctx context.Context) ([]entity.Product, error)
}

// ProductItem は一覧レスポンスの1要素です。
type ProductItem struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// ProductHandler は通貨ペア情報に関するHTTPリクエストを処理します。
type ProductHandler struct {
	uc ProductUsecase
}

// NewProductHandler は新しい ProductHandler を作成します。
func NewProductHandler(uc ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List は有効な通貨ペアの一覧を取得するAPIです。
// Usecaseでエラーが発生した場合は500 Internal Server Errorを返します。
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.uc.ListActiveProducts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}
	out := make([]ProductItem, 0, len(products))
	for _, p := range products {
		out = append(out, ProductItem{Code: p.Code, Name: p.Name})
	}
	c.JSON(http.StatusOK, out)
}
