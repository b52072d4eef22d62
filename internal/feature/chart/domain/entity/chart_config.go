package entity

// SMAConfig は単純移動平均線の設定です。
type SMAConfig struct {
	Enable  bool
	Periods [3]int
}

// EMAConfig は指数平滑移動平均線の設定です。
type EMAConfig struct {
	Enable  bool
	Periods [3]int
}

// BBandsConfig はボリンジャーバンドの設定です。Kはバンド幅の倍率です。
type BBandsConfig struct {
	Enable bool
	N      int
	K      float64
}

// IchimokuConfig は一目均衡表の設定です。
type IchimokuConfig struct {
	Enable bool
}

// RSIConfig はRSIの設定です。閾値は0〜100のパーセント値です。
type RSIConfig struct {
	Enable     bool
	Period     int
	BuyThread  float64
	SellThread float64
}

// MACDConfig はMACDの設定です。Periodsは[fast, slow, signal]の順です。
type MACDConfig struct {
	Enable  bool
	Periods [3]int
}

// BacktestConfig はバックテスト表示の設定です。
type BacktestConfig struct {
	Enable bool
}

// ChartConfig はチャート1回分の描画要求を表す不変の設定値です。
// リクエストごとに値として組み立ててクエリビルダーへ渡します（途中更新はしない）。
type ChartConfig struct {
	Limit            int
	Size             float64
	StopLimitPercent float64
	SMA              SMAConfig
	EMA              EMAConfig
	BBands           BBandsConfig
	Ichimoku         IchimokuConfig
	RSI              RSIConfig
	MACD             MACDConfig
	Backtest         BacktestConfig
}

// DefaultChartConfig はダッシュボード初期表示と同じ既定値を返します。
func DefaultChartConfig() ChartConfig {
	return ChartConfig{
		Limit:            30,
		Size:             0.01,
		StopLimitPercent: 0.75,
		SMA:              SMAConfig{Periods: [3]int{7, 14, 50}},
		EMA:              EMAConfig{Periods: [3]int{7, 14, 50}},
		BBands:           BBandsConfig{N: 20, K: 2},
		RSI:              RSIConfig{Period: 14, BuyThread: 30, SellThread: 70},
		MACD:             MACDConfig{Periods: [3]int{12, 26, 9}},
	}
}
