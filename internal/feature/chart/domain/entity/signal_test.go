package entity_test

import (
	"testing"
	"time"

	"github.com/Fukkatsuso/cryptocurrency-trading-bot/internal/feature/chart/domain/entity"
)

func signalAt(side entity.Side, size float64) entity.Signal {
	return entity.Signal{
		Time: time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
		Side: side,
		Size: size,
	}
}

// TestSignalSeries_Replay は符号規約（BUY加算・SELL減算）どおりに保有数量を畳み込むことを検証します。
func TestSignalSeries_Replay(t *testing.T) {
	testCases := []struct {
		name     string
		signals  []entity.Signal
		expected float64
	}{
		{
			name:     "empty series returns zero",
			signals:  []entity.Signal{},
			expected: 0,
		},
		{
			name:     "nil series returns zero",
			signals:  nil,
			expected: 0,
		},
		{
			name: "buy adds and sell subtracts",
			signals: []entity.Signal{
				signalAt(entity.SideBuy, 5),
				signalAt(entity.SideSell, 3),
			},
			expected: 2,
		},
		{
			name: "sell before buy may go negative",
			signals: []entity.Signal{
				signalAt(entity.SideSell, 0.5),
			},
			expected: -0.5,
		},
		{
			name: "single backtest buy",
			signals: []entity.Signal{
				signalAt(entity.SideBuy, 0.01),
			},
			expected: 0.01,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			series := entity.SignalSeries{Signals: tc.signals}

			got := series.Replay()
			if got != tc.expected {
				t.Errorf("Replay() = %v, want %v", got, tc.expected)
			}

			// 隠れた状態がないこと（再実行で同じ結果）
			if again := series.Replay(); again != got {
				t.Errorf("Replay() is not idempotent: first %v, second %v", got, again)
			}
		})
	}
}

// TestSignalSeries_Replay_Associative は連結した列の再生が部分列の和と一致することを検証します。
func TestSignalSeries_Replay_Associative(t *testing.T) {
	a := []entity.Signal{
		signalAt(entity.SideBuy, 1),
		signalAt(entity.SideSell, 0.25),
	}
	b := []entity.Signal{
		signalAt(entity.SideSell, 0.5),
		signalAt(entity.SideBuy, 2),
	}

	concat := entity.SignalSeries{Signals: append(append([]entity.Signal{}, a...), b...)}
	seriesA := entity.SignalSeries{Signals: a}
	seriesB := entity.SignalSeries{Signals: b}

	if got, want := concat.Replay(), seriesA.Replay()+seriesB.Replay(); got != want {
		t.Errorf("Replay(a ++ b) = %v, want Replay(a) + Replay(b) = %v", got, want)
	}
}
