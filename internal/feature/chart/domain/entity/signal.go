package entity

import "time"

// Side は売買シグナルの方向です。
type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

// Provenance はシグナル系列の出所（本番取引かバックテストか）です。
type Provenance string

const (
	ProvenanceLive     Provenance = "live"
	ProvenanceBacktest Provenance = "backtest"
)

// Signal は記録された1件の売買イベントです。
type Signal struct {
	Time  time.Time
	Side  Side
	Price float64
	Size  float64
}

// SignalSeries は出所タグと表示属性を持つ、時刻順のシグナル列です。
// ColorとLabelOffsetYは描画時の系列ごとの属性で、個々のSignalには持たせません。
type SignalSeries struct {
	Provenance   Provenance
	Color        string
	LabelOffsetY int
	Signals      []Signal
}

// Replay はシグナル列を先頭から畳み込み、正味の保有数量を返します。
//
// 符号規約: BUYはSizeを加算、SELLは減算します（正=ロング、負=ショート）。
// 累積器は0から始まり、空の列では0を返します。隠れた状態を持たないため、
// 再実行しても同じ結果になります。SELLが先行してもエラーにはなりません。
func (s SignalSeries) Replay() float64 {
	hold := 0.0
	for _, sig := range s.Signals {
		switch sig.Side {
		case SideBuy:
			hold += sig.Size
		case SideSell:
			hold -= sig.Size
		}
	}
	return hold
}
