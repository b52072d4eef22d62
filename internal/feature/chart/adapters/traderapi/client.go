// Package traderapi はトレーダーサービスのHTTP APIから市場データを取得するアダプターです。
package traderapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/Fukkatsuso/cryptocurrency-trading-bot/internal/feature/chart/usecase"
)

// Config はトレーダーAPIクライアントの設定です。
type Config struct {
	BaseURL string
}

// TraderAPI はトレーダーサービスからデータフレームを取得するDataFrameRepository実装です。
type TraderAPI struct {
	cfg    Config
	client *http.Client
}

// TraderAPIがDataFrameRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.DataFrameRepository = (*TraderAPI)(nil)

// NewTraderAPI は指定された設定とHTTPクライアントでTraderAPIの新しいインスタンスを生成します。
func NewTraderAPI(cfg Config, client *http.Client) *TraderAPI {
	return &TraderAPI{cfg: cfg, client: client}
}

// Fetch はトレーダーAPIのGET /api/candleを呼び出し、生レスポンスを返します。
// ここでは転送とデコードだけを行い、描画向けの整形はusecase側の責務です。
func (t *TraderAPI) Fetch(ctx context.Context, query url.Values) (*usecase.DataFrameResponse, error) {
	u := fmt.Sprintf("%s/api/candle?%s", t.cfg.BaseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	res, err := t.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("trader api http %d", res.StatusCode)
	}

	var body usecase.DataFrameResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}

	return &body, nil
}
