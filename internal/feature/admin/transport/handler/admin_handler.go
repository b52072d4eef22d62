// Package handler はadminフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Fukkatsuso/cryptocurrency-trading-bot/internal/api"
	"github.com/Fukkatsuso/cryptocurrency-trading-bot/internal/feature/admin/domain/entity"
	"github.com/Fukkatsuso/cryptocurrency-trading-bot/internal/feature/admin/usecase"
)

// AdminUsecase は管理画面操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type AdminUsecase interface {
	GetTradeParams(ctx context.Context, productCode string) *entity.TradeParams
	UpdateTradeParams(ctx context.Context, draft entity.TradeParams) (*usecase.UpdateResult, error)
	GetBalance(ctx context.Context) []entity.Balance
}

// AdminHandler は取引パラメータ編集と残高参照のHTTPリクエストを処理します。
type AdminHandler struct {
	admin AdminUsecase
}

// NewAdminHandler は指定されたusecaseでAdminHandlerの新しいインスタンスを生成します。
func NewAdminHandler(admin AdminUsecase) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// GetTradeParams は確定済みの取引パラメータを返します。
// productCodeクエリで通貨ペアを指定でき、省略時はトレーダー側の既定値が対象です。
// 上流から取得できない場合はnullを返し、エディタは空の状態で表示されます。
func (h *AdminHandler) GetTradeParams(c *gin.Context) {
	params := h.admin.GetTradeParams(c.Request.Context(), c.Query("productCode"))
	c.JSON(http.StatusOK, params)
}

// UpdateTradeParams は編集中のパラメータを検証して保存します。
// - バインド失敗時は400を返却
// - 検証違反時はフィールド別メッセージ付きで422を返却
// - 保存失敗時は502を返却（編集内容は破棄されない）
// - 成功時は確定値付きで200を返却
func (h *AdminHandler) UpdateTradeParams(c *gin.Context) {
	var draft entity.TradeParams
	if err := c.ShouldBindJSON(&draft); err != nil {
		slog.Warn("trade params bind failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	result, err := h.admin.UpdateTradeParams(c.Request.Context(), draft)
	if err != nil {
		slog.Warn("trade params save failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "failed to save trade params"})
		return
	}
	if len(result.FieldErrors) > 0 {
		c.JSON(http.StatusUnprocessableEntity, api.FieldErrorsResponse{
			Error:       "validation failed",
			FieldErrors: result.FieldErrors,
		})
		return
	}

	slog.Info("trade params updated", "product_code", result.Params.ProductCode)
	c.JSON(http.StatusOK, result.Params)
}

// GetBalance は残高スナップショットを返します。
// 上流から取得できない場合は空の配列を返します。
func (h *AdminHandler) GetBalance(c *gin.Context) {
	balances := h.admin.GetBalance(c.Request.Context())
	c.JSON(http.StatusOK, balances)
}
