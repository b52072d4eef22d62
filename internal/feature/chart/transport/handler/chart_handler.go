// Package handler はchartフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Fukkatsuso/cryptocurrency-trading-bot/internal/feature/chart/domain/entity"
	"github.com/Fukkatsuso/cryptocurrency-trading-bot/internal/feature/chart/usecase"
)

// ChartUsecase はチャート描画データ組み立てのユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type ChartUsecase interface {
	GetChart(ctx context.Context, cfg entity.ChartConfig) *usecase.ChartView
}

// ChartHandler はチャートデータのHTTPリクエストを処理します。
type ChartHandler struct {
	uc ChartUsecase
}

// NewChartHandler は指定されたusecaseでChartHandlerの新しいインスタンスを生成します。
func NewChartHandler(uc ChartUsecase) *ChartHandler {
	return &ChartHandler{uc: uc}
}

// GetCandle はチャート設定をクエリパラメータから組み立て、描画可能なJSONを返します。
//
// エンドポイント例:
// GET /api/candle?limit=30&sma=true&smaPeriod1=7&smaPeriod2=14&smaPeriod3=50
//
// 上流の失敗は空のチャートとして返るため、このハンドラーが5xxを返すことはありません。
func (h *ChartHandler) GetCandle(c *gin.Context) {
	cfg := bindChartConfig(c)
	view := h.uc.GetChart(c.Request.Context(), cfg)
	c.JSON(http.StatusOK, view)
}

// bindChartConfig はクエリパラメータをChartConfigへ束ねます。
// 欠落・不正な値は既定値へ落とします（チャート表示側に検証は置きません）。
func bindChartConfig(c *gin.Context) entity.ChartConfig {
	cfg := entity.DefaultChartConfig()

	// [1, 1000]の範囲に限定
	cfg.Limit = queryUintDefault(c, "limit", cfg.Limit)
	if cfg.Limit > 1000 {
		cfg.Limit = 1000
	}
	if cfg.Limit < 1 {
		cfg.Limit = 1
	}

	cfg.Size = queryFloatDefault(c, "size", cfg.Size)
	cfg.StopLimitPercent = queryFloatDefault(c, "stopLimitPercent", cfg.StopLimitPercent)

	cfg.SMA.Enable = c.Query("sma") == "true"
	cfg.SMA.Periods[0] = queryUintDefault(c, "smaPeriod1", cfg.SMA.Periods[0])
	cfg.SMA.Periods[1] = queryUintDefault(c, "smaPeriod2", cfg.SMA.Periods[1])
	cfg.SMA.Periods[2] = queryUintDefault(c, "smaPeriod3", cfg.SMA.Periods[2])

	cfg.EMA.Enable = c.Query("ema") == "true"
	cfg.EMA.Periods[0] = queryUintDefault(c, "emaPeriod1", cfg.EMA.Periods[0])
	cfg.EMA.Periods[1] = queryUintDefault(c, "emaPeriod2", cfg.EMA.Periods[1])
	cfg.EMA.Periods[2] = queryUintDefault(c, "emaPeriod3", cfg.EMA.Periods[2])

	cfg.BBands.Enable = c.Query("bbands") == "true"
	cfg.BBands.N = queryUintDefault(c, "bbandsN", cfg.BBands.N)
	cfg.BBands.K = queryFloatDefault(c, "bbandsK", cfg.BBands.K)

	cfg.Ichimoku.Enable = c.Query("ichimoku") == "true"

	cfg.RSI.Enable = c.Query("rsi") == "true"
	cfg.RSI.Period = queryUintDefault(c, "rsiPeriod", cfg.RSI.Period)
	cfg.RSI.BuyThread = queryFloatDefault(c, "rsiBuyThread", cfg.RSI.BuyThread)
	cfg.RSI.SellThread = queryFloatDefault(c, "rsiSellThread", cfg.RSI.SellThread)

	cfg.MACD.Enable = c.Query("macd") == "true"
	cfg.MACD.Periods[0] = queryUintDefault(c, "macdPeriod1", cfg.MACD.Periods[0])
	cfg.MACD.Periods[1] = queryUintDefault(c, "macdPeriod2", cfg.MACD.Periods[1])
	cfg.MACD.Periods[2] = queryUintDefault(c, "macdPeriod3", cfg.MACD.Periods[2])

	cfg.Backtest.Enable = c.Query("backtest") == "true"

	return cfg
}

// queryUintDefault はクエリパラメータから非負整数を取り出します。
// エラーが生じたらデフォルト値defを返します。
func queryUintDefault(c *gin.Context, key string, def int) int {
	strVal := c.Query(key)
	intVal, err := strconv.Atoi(strVal)
	if strVal == "" || err != nil || intVal < 0 {
		return def
	}
	return intVal
}

// queryFloatDefault はクエリパラメータから非負実数を取り出します。
func queryFloatDefault(c *gin.Context, key string, def float64) float64 {
	strVal := c.Query(key)
	floatVal, err := strconv.ParseFloat(strVal, 64)
	if strVal == "" || err != nil || floatVal < 0 {
		return def
	}
	return floatVal
}
