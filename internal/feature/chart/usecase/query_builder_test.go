package usecase_test

import (
	"testing"

	"github.com/Fukkatsuso/cryptocurrency-trading-bot/internal/feature/chart/domain/entity"
	"github.com/Fukkatsuso/cryptocurrency-trading-bot/internal/feature/chart/usecase"
)

// TestBuildQuery_EnabledFamily は有効なファミリーがフラグと数値フィールドの双方を出力することを検証します。
func TestBuildQuery_EnabledFamily(t *testing.T) {
	cfg := entity.DefaultChartConfig()
	cfg.Limit = 30
	cfg.SMA.Enable = true
	cfg.SMA.Periods = [3]int{7, 14, 50}

	q := usecase.BuildQuery(cfg)

	expected := map[string]string{
		"limit":      "30",
		"sma":        "true",
		"smaPeriod1": "7",
		"smaPeriod2": "14",
		"smaPeriod3": "50",
	}
	for key, want := range expected {
		if got := q.Get(key); got != want {
			t.Errorf("query[%s] = %q, want %q", key, got, want)
		}
	}
}

// TestBuildQuery_DisabledFamilyStillEmitsParams は無効化してもフラグ以外の
// パラメータが変わらず出力されること（フラグのみのゲーティング）を検証します。
func TestBuildQuery_DisabledFamilyStillEmitsParams(t *testing.T) {
	cfg := entity.DefaultChartConfig()
	cfg.MACD.Enable = false
	cfg.MACD.Periods = [3]int{12, 26, 9}
	cfg.BBands.Enable = false
	cfg.BBands.N = 20
	cfg.BBands.K = 2

	q := usecase.BuildQuery(cfg)

	expected := map[string]string{
		"macd":        "false",
		"macdPeriod1": "12",
		"macdPeriod2": "26",
		"macdPeriod3": "9",
		"bbands":      "false",
		"bbandsN":     "20",
		"bbandsK":     "2",
	}
	for key, want := range expected {
		if got := q.Get(key); got != want {
			t.Errorf("query[%s] = %q, want %q", key, got, want)
		}
	}
}

// TestBuildQuery_AllKeysPresent は全ファミリーの全キーが常に存在することを検証します。
func TestBuildQuery_AllKeysPresent(t *testing.T) {
	q := usecase.BuildQuery(entity.DefaultChartConfig())

	keys := []string{
		"limit", "size",
		"sma", "smaPeriod1", "smaPeriod2", "smaPeriod3",
		"ema", "emaPeriod1", "emaPeriod2", "emaPeriod3",
		"bbands", "bbandsN", "bbandsK",
		"ichimoku",
		"rsi", "rsiPeriod", "rsiBuyThread", "rsiSellThread",
		"macd", "macdPeriod1", "macdPeriod2", "macdPeriod3",
		"stopLimitPercent", "backtest",
	}
	for _, key := range keys {
		if !q.Has(key) {
			t.Errorf("query is missing key %q", key)
		}
	}
}

// TestBuildQuery_FloatFormatting はfloat値が余計なゼロなしで出力されることを検証します。
func TestBuildQuery_FloatFormatting(t *testing.T) {
	cfg := entity.DefaultChartConfig()
	cfg.Size = 0.01
	cfg.StopLimitPercent = 0.75
	cfg.RSI.BuyThread = 30
	cfg.RSI.SellThread = 70

	q := usecase.BuildQuery(cfg)

	expected := map[string]string{
		"size":             "0.01",
		"stopLimitPercent": "0.75",
		"rsiBuyThread":     "30",
		"rsiSellThread":    "70",
	}
	for key, want := range expected {
		if got := q.Get(key); got != want {
			t.Errorf("query[%s] = %q, want %q", key, got, want)
		}
	}
}
