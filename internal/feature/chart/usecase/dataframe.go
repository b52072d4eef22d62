// Package usecase はchartフィーチャーのビジネスロジックを実装します。
//
// トレーダーAPIのレスポンスを描画可能な系列・注釈へ正規化する処理と、
// シグナル列の再生による保有数量の算出がこのパッケージの中心です。
package usecase

import (
	"time"

	"github.com/Fukkatsuso/cryptocurrency-trading-bot/internal/feature/chart/domain/entity"
)

// DataFrameResponse はトレーダーAPI GET /api/candle の生レスポンスです。
// eventsとbacktestEventsは任意フィールドで、欠けていてもエラーではありません。
// Goの慣例に従い、型はプロバイダー（adapters）ではなくコンシューマー（usecase）側で定義します。
type DataFrameResponse struct {
	ProductCode    string             `json:"productCode"`
	Candles        []CandleData       `json:"candles"`
	Events         *SignalEventsData  `json:"events,omitempty"`
	BacktestEvents *SignalEventsData  `json:"backtestEvents,omitempty"`
	SMAs           []IndicatorData    `json:"smas,omitempty"`
	EMAs           []IndicatorData    `json:"emas,omitempty"`
	BBands         *BBandsData        `json:"bbands,omitempty"`
	Ichimoku       *IchimokuCloudData `json:"ichimoku,omitempty"`
	RSI            *IndicatorData     `json:"rsi,omitempty"`
	MACD           *MACDData          `json:"macd,omitempty"`
}

// CandleData はレスポンス中のローソク足1本です。
type CandleData struct {
	Time   time.Time `json:"time"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume float64   `json:"volume"`
}

// SignalEventsData はシグナル列とバックテスト損益のコンテナです。
// Signalsフィールド自体が欠けている場合、その出所の系列は生成されません。
type SignalEventsData struct {
	Signals []SignalData `json:"signals,omitempty"`
	Profit  float64      `json:"profit,omitempty"`
}

// SignalData はレスポンス中の売買イベント1件です。
type SignalData struct {
	Time  time.Time `json:"time"`
	Side  string    `json:"side"`
	Price float64   `json:"price"`
	Size  float64   `json:"size"`
}

// IndicatorData は期間付きの単一値インディケータ（SMA/EMA/RSI）です。
type IndicatorData struct {
	Period int       `json:"period,omitempty"`
	Values []float64 `json:"values,omitempty"`
}

// BBandsData はボリンジャーバンドの3本線です。
type BBandsData struct {
	N    int       `json:"n,omitempty"`
	K    float64   `json:"k,omitempty"`
	Up   []float64 `json:"up,omitempty"`
	Mid  []float64 `json:"mid,omitempty"`
	Down []float64 `json:"down,omitempty"`
}

// IchimokuCloudData は一目均衡表の5本線です。
type IchimokuCloudData struct {
	Tenkan  []float64 `json:"tenkan,omitempty"`
	Kijun   []float64 `json:"kijun,omitempty"`
	SenkouA []float64 `json:"senkoua,omitempty"`
	SenkouB []float64 `json:"senkoub,omitempty"`
	Chikou  []float64 `json:"chikou,omitempty"`
}

// MACDData はMACD・シグナル・ヒストグラムの3系列です。
type MACDData struct {
	FastPeriod   int       `json:"fastPeriod,omitempty"`
	SlowPeriod   int       `json:"slowPeriod,omitempty"`
	SignalPeriod int       `json:"signalPeriod,omitempty"`
	MACD         []float64 `json:"macd,omitempty"`
	MACDSignal   []float64 `json:"macdSignal,omitempty"`
	MACDHist     []float64 `json:"macdHist,omitempty"`
}

// ChartData は正規化後のチャートデータです。
type ChartData struct {
	OHLC         []entity.OHLCPoint
	Series       []entity.LineSeries
	SignalSeries []entity.SignalSeries
}
