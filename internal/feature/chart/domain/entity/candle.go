// Package entity はchartフィーチャーのドメインエンティティを定義します。
package entity

// OHLCPoint はチャートレンダラに渡すローソク足1点です。
// Xはエポックミリ秒、Yは[open, high, low, close]の順です。
type OHLCPoint struct {
	X int64      `json:"x"`
	Y [4]float64 `json:"y"`
}

// LinePoint はインディケータ系列の1点です。
type LinePoint struct {
	X int64   `json:"x"`
	Y float64 `json:"y"`
}

// LineSeries はローソク足に重ねて描画する名前付きインディケータ系列です。
type LineSeries struct {
	Name string      `json:"name"`
	Data []LinePoint `json:"data"`
}
