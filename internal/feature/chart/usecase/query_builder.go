package usecase

import (
	"net/url"
	"strconv"

	"github.com/Fukkatsuso/cryptocurrency-trading-bot/internal/feature/chart/domain/entity"
)

// BuildQuery はChartConfigを市場データAPIのフラットなクエリパラメータへ写します。
// 純粋関数でI/Oも検証も行いません（チャート表示側に検証は存在せず、
// 管理画面の検証はadminフィーチャーの責務です）。
//
// 命名規約: 有効フラグは<family>、数値フィールドは<family><Param>。
// 配列は位置対応で、インデックス0がサフィックス1になります（sma.Periods[0] → smaPeriod1）。
// 無効化されたファミリーも数値パラメータは常に出力し、有効/無効はbooleanフラグだけが運びます。
func BuildQuery(cfg entity.ChartConfig) url.Values {
	q := url.Values{}

	q.Set("limit", strconv.Itoa(cfg.Limit))
	q.Set("size", formatFloat(cfg.Size))

	q.Set("sma", strconv.FormatBool(cfg.SMA.Enable))
	q.Set("smaPeriod1", strconv.Itoa(cfg.SMA.Periods[0]))
	q.Set("smaPeriod2", strconv.Itoa(cfg.SMA.Periods[1]))
	q.Set("smaPeriod3", strconv.Itoa(cfg.SMA.Periods[2]))

	q.Set("ema", strconv.FormatBool(cfg.EMA.Enable))
	q.Set("emaPeriod1", strconv.Itoa(cfg.EMA.Periods[0]))
	q.Set("emaPeriod2", strconv.Itoa(cfg.EMA.Periods[1]))
	q.Set("emaPeriod3", strconv.Itoa(cfg.EMA.Periods[2]))

	q.Set("bbands", strconv.FormatBool(cfg.BBands.Enable))
	q.Set("bbandsN", strconv.Itoa(cfg.BBands.N))
	q.Set("bbandsK", formatFloat(cfg.BBands.K))

	q.Set("ichimoku", strconv.FormatBool(cfg.Ichimoku.Enable))

	q.Set("rsi", strconv.FormatBool(cfg.RSI.Enable))
	q.Set("rsiPeriod", strconv.Itoa(cfg.RSI.Period))
	q.Set("rsiBuyThread", formatFloat(cfg.RSI.BuyThread))
	q.Set("rsiSellThread", formatFloat(cfg.RSI.SellThread))

	q.Set("macd", strconv.FormatBool(cfg.MACD.Enable))
	q.Set("macdPeriod1", strconv.Itoa(cfg.MACD.Periods[0]))
	q.Set("macdPeriod2", strconv.Itoa(cfg.MACD.Periods[1]))
	q.Set("macdPeriod3", strconv.Itoa(cfg.MACD.Periods[2]))

	q.Set("stopLimitPercent", formatFloat(cfg.StopLimitPercent))
	q.Set("backtest", strconv.FormatBool(cfg.Backtest.Enable))

	return q
}

// formatFloat は余計な末尾ゼロを付けない最短表現でfloatを文字列化します。
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
