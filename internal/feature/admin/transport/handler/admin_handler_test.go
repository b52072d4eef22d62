package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Fukkatsuso/cryptocurrency-trading-bot/internal/feature/admin/domain/entity"
	"github.com/Fukkatsuso/cryptocurrency-trading-bot/internal/feature/admin/usecase"
)

// mockAdminUsecase はAdminUsecaseインターフェースのモック実装です。
type mockAdminUsecase struct {
	GetTradeParamsFunc    func(ctx context.Context, productCode string) *entity.TradeParams
	UpdateTradeParamsFunc func(ctx context.Context, draft entity.TradeParams) (*usecase.UpdateResult, error)
	GetBalanceFunc        func(ctx context.Context) []entity.Balance
}

func (m *mockAdminUsecase) GetTradeParams(ctx context.Context, productCode string) *entity.TradeParams {
	if m.GetTradeParamsFunc != nil {
		return m.GetTradeParamsFunc(ctx, productCode)
	}
	return nil
}

func (m *mockAdminUsecase) UpdateTradeParams(ctx context.Context, draft entity.TradeParams) (*usecase.UpdateResult, error) {
	if m.UpdateTradeParamsFunc != nil {
		return m.UpdateTradeParamsFunc(ctx, draft)
	}
	return &usecase.UpdateResult{Params: &draft}, nil
}

func (m *mockAdminUsecase) GetBalance(ctx context.Context) []entity.Balance {
	if m.GetBalanceFunc != nil {
		return m.GetBalanceFunc(ctx)
	}
	return []entity.Balance{}
}

func setupAdminRouter(uc AdminUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAdminHandler(uc)
	router := gin.New()
	router.GET("/admin/api/trade-params", h.GetTradeParams)
	router.POST("/admin/api/trade-params", h.UpdateTradeParams)
	router.GET("/admin/api/balance", h.GetBalance)
	return router
}

func TestAdminHandler_GetTradeParams(t *testing.T) {
	params := entity.TradeParams{TradeEnable: true, ProductCode: "ETH_JPY", Size: 0.01}
	var gotCode string
	router := setupAdminRouter(&mockAdminUsecase{
		GetTradeParamsFunc: func(ctx context.Context, productCode string) *entity.TradeParams {
			gotCode = productCode
			return &params
		},
	})

	req, _ := http.NewRequest(http.MethodGet, "/admin/api/trade-params?productCode=ETH_JPY", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ETH_JPY", gotCode)

	var body entity.TradeParams
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, params, body)
}

func TestAdminHandler_GetTradeParams_DegradesToNull(t *testing.T) {
	router := setupAdminRouter(&mockAdminUsecase{})

	req, _ := http.NewRequest(http.MethodGet, "/admin/api/trade-params", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())
}

func TestAdminHandler_UpdateTradeParams(t *testing.T) {
	t.Run("success returns confirmed params", func(t *testing.T) {
		router := setupAdminRouter(&mockAdminUsecase{
			UpdateTradeParamsFunc: func(ctx context.Context, draft entity.TradeParams) (*usecase.UpdateResult, error) {
				confirmed := draft
				confirmed.TradeEnable = true
				return &usecase.UpdateResult{Params: &confirmed}, nil
			},
		})

		reqBody, _ := json.Marshal(entity.TradeParams{ProductCode: "ETH_JPY", Size: 0.01})
		req, _ := http.NewRequest(http.MethodPost, "/admin/api/trade-params", bytes.NewBuffer(reqBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var body entity.TradeParams
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.True(t, body.TradeEnable)
		assert.Equal(t, "ETH_JPY", body.ProductCode)
	})

	t.Run("validation failure returns 422 with field errors", func(t *testing.T) {
		router := setupAdminRouter(&mockAdminUsecase{
			UpdateTradeParamsFunc: func(ctx context.Context, draft entity.TradeParams) (*usecase.UpdateResult, error) {
				return &usecase.UpdateResult{FieldErrors: map[string]string{"size": "size is required"}}, nil
			},
		})

		req, _ := http.NewRequest(http.MethodPost, "/admin/api/trade-params", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var body struct {
			Error       string            `json:"error"`
			FieldErrors map[string]string `json:"fieldErrors"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "size is required", body.FieldErrors["size"])
	})

	t.Run("save failure returns 502", func(t *testing.T) {
		router := setupAdminRouter(&mockAdminUsecase{
			UpdateTradeParamsFunc: func(ctx context.Context, draft entity.TradeParams) (*usecase.UpdateResult, error) {
				return nil, errors.New("upstream down")
			},
		})

		req, _ := http.NewRequest(http.MethodPost, "/admin/api/trade-params", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})

	t.Run("invalid json returns 400", func(t *testing.T) {
		router := setupAdminRouter(&mockAdminUsecase{})

		req, _ := http.NewRequest(http.MethodPost, "/admin/api/trade-params", bytes.NewBufferString(`{broken`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAdminHandler_GetBalance(t *testing.T) {
	router := setupAdminRouter(&mockAdminUsecase{
		GetBalanceFunc: func(ctx context.Context) []entity.Balance {
			return []entity.Balance{{CurrencyCode: "JPY", Amount: 100000, Available: 80000}}
		},
	})

	req, _ := http.NewRequest(http.MethodGet, "/admin/api/balance", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body []entity.Balance
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body, 1)
	assert.Equal(t, "JPY", body[0].CurrencyCode)
}
