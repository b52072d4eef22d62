// Package traderapi はトレーダーサービスの管理系エンドポイントを呼び出すアダプターです。
package traderapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/Fukkatsuso/cryptocurrency-trading-bot/internal/feature/admin/domain/entity"
	"github.com/Fukkatsuso/cryptocurrency-trading-bot/internal/feature/admin/usecase"
)

// Config はトレーダーAPIクライアントの設定です。
type Config struct {
	BaseURL string
	// APIKey はトレーダーサービスの管理系エンドポイントの認証キーです。
	// 空ならAuthorizationヘッダを付与しません。
	APIKey string
}

// TraderAPI はトレーダーサービスの管理系エンドポイントへのクライアントです。
// TradeParamsRepositoryとBalanceRepositoryを兼ねます。
type TraderAPI struct {
	cfg    Config
	client *http.Client
}

var (
	_ usecase.TradeParamsRepository = (*TraderAPI)(nil)
	_ usecase.BalanceRepository     = (*TraderAPI)(nil)
)

// NewTraderAPI は指定された設定とHTTPクライアントでTraderAPIの新しいインスタンスを生成します。
func NewTraderAPI(cfg Config, client *http.Client) *TraderAPI {
	return &TraderAPI{cfg: cfg, client: client}
}

// Find はトレーダーAPIのGET /api/trade-paramsを呼び出します。
// productCodeが空の場合はクエリを付けず、トレーダー側の既定の通貨ペアが返ります。
func (t *TraderAPI) Find(ctx context.Context, productCode string) (*entity.TradeParams, error) {
	path := "/api/trade-params"
	if productCode != "" {
		q := url.Values{}
		q.Set("productCode", productCode)
		path += "?" + q.Encode()
	}

	var params entity.TradeParams
	if err := t.do(ctx, http.MethodGet, path, nil, &params); err != nil {
		return nil, err
	}
	return &params, nil
}

// Save はトレーダーAPIのPOST /api/trade-paramsを呼び出します。
func (t *TraderAPI) Save(ctx context.Context, params entity.TradeParams) error {
	return t.do(ctx, http.MethodPost, "/api/trade-params", params, nil)
}

// Fetch はトレーダーAPIのGET /api/balanceを呼び出します。
func (t *TraderAPI) Fetch(ctx context.Context) ([]entity.Balance, error) {
	var balances []entity.Balance
	if err := t.do(ctx, http.MethodGet, "/api/balance", nil, &balances); err != nil {
		return nil, err
	}
	return balances, nil
}

// do はリクエストの組み立て、認証ヘッダ付与、ステータス検査、デコードをまとめます。
func (t *TraderAPI) do(ctx context.Context, method, path string, reqBody, resBody any) error {
	var body *bytes.Buffer
	if reqBody != nil {
		buf, err := json.Marshal(reqBody)
		if err != nil {
			return err
		}
		body = bytes.NewBuffer(buf)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, t.cfg.BaseURL+path, body)
	if err != nil {
		return err
	}
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if t.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+t.cfg.APIKey)
	}

	res, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return fmt.Errorf("trader api %s %s: http %d", method, path, res.StatusCode)
	}

	if resBody != nil {
		if err := json.NewDecoder(res.Body).Decode(resBody); err != nil {
			return err
		}
	}
	return nil
}
