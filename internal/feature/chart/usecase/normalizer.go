package usecase

import (
	"fmt"
	"time"

	"github.com/samber/lo"

	"github.com/Fukkatsuso/cryptocurrency-trading-bot/internal/feature/chart/domain/entity"
)

// チャート描画領域の属性。注釈ラベルの縦位置の計算に使います。
const (
	// ChartHeight はレンダラに渡すチャートのピクセル高です。
	ChartHeight = 350

	// liveLabelOffsetY は本番シグナルのラベルを基準線から少し下げるオフセットです。
	liveLabelOffsetY = 10
	// backtestLabelMargin はバックテストシグナルのラベルを下端から離すマージンです。
	// バックテスト系列は「チャート高 - マージン」の位置に置かれ、本番系列と重なりません。
	backtestLabelMargin = 30
)

// 系列ごとの表示色。個々のシグナルではなく系列の属性です。
const (
	liveSeriesColor     = "#2196F3"
	backtestSeriesColor = "#FF9800"
)

// Normalize は生のレスポンスを描画可能なチャートデータへ変換します。
//
// candlesが欠落・空でもOHLC系列が空になるだけで、描画全体は失敗しません。
// events/backtestEventsは、コンテナとそのsignalsフィールドの両方が存在する
// 場合に限り1系列になります。どちらかが欠けていれば系列なし（エラーではない）。
//
// タイムスタンプ方針: サーバのタイムスタンプは瞬間（instant）として扱い、
// ローソク足とすべてのシグナル系列に同一の変換（UTCエポックミリ秒）を適用します。
// 系列ごとに方針を変えると注釈とローソク足の位置がずれるため、特別扱いはしません。
func Normalize(raw *DataFrameResponse) ChartData {
	data := ChartData{
		OHLC:         []entity.OHLCPoint{},
		Series:       []entity.LineSeries{},
		SignalSeries: []entity.SignalSeries{},
	}
	if raw == nil {
		return data
	}

	data.OHLC = lo.Map(raw.Candles, func(c CandleData, _ int) entity.OHLCPoint {
		return entity.OHLCPoint{
			X: normalizeTime(c.Time),
			Y: [4]float64{c.Open, c.High, c.Low, c.Close},
		}
	})

	data.Series = normalizeIndicators(raw)

	if series, ok := normalizeSignals(raw.Events, entity.ProvenanceLive); ok {
		data.SignalSeries = append(data.SignalSeries, series)
	}
	if series, ok := normalizeSignals(raw.BacktestEvents, entity.ProvenanceBacktest); ok {
		data.SignalSeries = append(data.SignalSeries, series)
	}

	return data
}

// normalizeTime はタイムスタンプをエポックミリ秒へ正規化します。
// ローソク足とシグナルの双方がこの1つの変換を通ります。
func normalizeTime(t time.Time) int64 {
	return t.UnixMilli()
}

// normalizeSignals は任意のシグナルコンテナを系列へ変換します。
// コンテナまたはsignalsが無ければ系列を生成しません。
func normalizeSignals(events *SignalEventsData, provenance entity.Provenance) (entity.SignalSeries, bool) {
	if events == nil || events.Signals == nil {
		return entity.SignalSeries{}, false
	}

	series := entity.SignalSeries{
		Provenance:   provenance,
		Color:        liveSeriesColor,
		LabelOffsetY: liveLabelOffsetY,
		Signals: lo.Map(events.Signals, func(s SignalData, _ int) entity.Signal {
			return entity.Signal{
				Time:  s.Time,
				Side:  entity.Side(s.Side),
				Price: s.Price,
				Size:  s.Size,
			}
		}),
	}
	if provenance == entity.ProvenanceBacktest {
		series.Color = backtestSeriesColor
		series.LabelOffsetY = ChartHeight - backtestLabelMargin
	}
	return series, true
}

// normalizeIndicators はレスポンスに含まれるインディケータ値列を
// ローソク足と同じx軸に揃えた名前付き系列へ変換します。
func normalizeIndicators(raw *DataFrameResponse) []entity.LineSeries {
	series := make([]entity.LineSeries, 0)

	for _, sma := range raw.SMAs {
		series = append(series, lineSeries(fmt.Sprintf("SMA(%d)", sma.Period), raw.Candles, sma.Values))
	}
	for _, ema := range raw.EMAs {
		series = append(series, lineSeries(fmt.Sprintf("EMA(%d)", ema.Period), raw.Candles, ema.Values))
	}
	if bb := raw.BBands; bb != nil {
		series = append(series,
			lineSeries("BBands Up", raw.Candles, bb.Up),
			lineSeries("BBands Mid", raw.Candles, bb.Mid),
			lineSeries("BBands Down", raw.Candles, bb.Down),
		)
	}
	if ic := raw.Ichimoku; ic != nil {
		series = append(series,
			lineSeries("Tenkan", raw.Candles, ic.Tenkan),
			lineSeries("Kijun", raw.Candles, ic.Kijun),
			lineSeries("Senkou A", raw.Candles, ic.SenkouA),
			lineSeries("Senkou B", raw.Candles, ic.SenkouB),
			lineSeries("Chikou", raw.Candles, ic.Chikou),
		)
	}
	if rsi := raw.RSI; rsi != nil {
		series = append(series, lineSeries(fmt.Sprintf("RSI(%d)", rsi.Period), raw.Candles, rsi.Values))
	}
	if macd := raw.MACD; macd != nil {
		series = append(series,
			lineSeries("MACD", raw.Candles, macd.MACD),
			lineSeries("MACD Signal", raw.Candles, macd.MACDSignal),
			lineSeries("MACD Hist", raw.Candles, macd.MACDHist),
		)
	}

	return series
}

// lineSeries は値列をローソク足のタイムスタンプと位置対応で組にします。
// 値列が短い場合は揃う範囲だけを使います。
func lineSeries(name string, candles []CandleData, values []float64) entity.LineSeries {
	n := len(candles)
	if len(values) < n {
		n = len(values)
	}
	data := make([]entity.LinePoint, 0, n)
	for i := 0; i < n; i++ {
		data = append(data, entity.LinePoint{
			X: normalizeTime(candles[i].Time),
			Y: values[i],
		})
	}
	return entity.LineSeries{Name: name, Data: data}
}
