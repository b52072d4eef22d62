package usecase

import (
	"github.com/samber/lo"

	"github.com/Fukkatsuso/cryptocurrency-trading-bot/internal/feature/chart/domain/entity"
)

// StaticChartOptions は描画のたびに変化しない静的なチャートスタイルです。
type StaticChartOptions struct {
	Chart ChartStyle `json:"chart"`
	Title TitleStyle `json:"title"`
	XAxis XAxisStyle `json:"xaxis"`
	YAxis YAxisStyle `json:"yaxis"`
}

// ChartStyle はチャート本体の種類とサイズです。
type ChartStyle struct {
	Type   string `json:"type"`
	Height int    `json:"height"`
}

// TitleStyle はチャートタイトルの表示設定です。
type TitleStyle struct {
	Text  string `json:"text"`
	Align string `json:"align"`
}

// XAxisStyle はx軸の表示設定です。
type XAxisStyle struct {
	Type string `json:"type"`
}

// YAxisStyle はy軸の表示設定です。
type YAxisStyle struct {
	Tooltip TooltipStyle `json:"tooltip"`
}

// TooltipStyle はツールチップの表示設定です。
type TooltipStyle struct {
	Enabled bool `json:"enabled"`
}

// RenderOptions は静的スタイルに注釈を合成した描画用オプションです。
type RenderOptions struct {
	StaticChartOptions
	Annotations AnnotationOptions `json:"annotations"`
}

// AnnotationOptions はx軸アンカーの注釈リストです。
type AnnotationOptions struct {
	XAxis []XAxisAnnotation `json:"xaxis"`
}

// XAxisAnnotation はタイムスタンプに固定される注釈マーカー1件です。
type XAxisAnnotation struct {
	X           int64           `json:"x"`
	BorderColor string          `json:"borderColor"`
	Label       AnnotationLabel `json:"label"`
}

// AnnotationLabel は注釈のラベル表示です。
type AnnotationLabel struct {
	Text    string               `json:"text"`
	OffsetY int                  `json:"offsetY"`
	Style   AnnotationLabelStyle `json:"style"`
}

// AnnotationLabelStyle はラベルの配色です。
type AnnotationLabelStyle struct {
	Color      string `json:"color"`
	Background string `json:"background"`
}

// DefaultStaticChartOptions はダッシュボードのローソク足チャートの既定スタイルを返します。
func DefaultStaticChartOptions() StaticChartOptions {
	return StaticChartOptions{
		Chart: ChartStyle{Type: "candlestick", Height: ChartHeight},
		Title: TitleStyle{Text: "CandleStick Chart", Align: "left"},
		XAxis: XAxisStyle{Type: "datetime"},
		YAxis: YAxisStyle{Tooltip: TooltipStyle{Enabled: true}},
	}
}

// Assemble は静的スタイルのコピーへシグナル系列の注釈を合成します。
//
// baseは変更せず、描画のたびに新しい値を返します。系列の順に注釈を連結し、
// 系列に設定された色とラベルオフセットをそのまま引き継ぎます。
// 系列が空なら注釈リストが空のオプションになります。
func Assemble(base StaticChartOptions, sets []entity.SignalSeries) RenderOptions {
	annotations := lo.FlatMap(sets, func(series entity.SignalSeries, _ int) []XAxisAnnotation {
		return lo.Map(series.Signals, func(sig entity.Signal, _ int) XAxisAnnotation {
			return XAxisAnnotation{
				X:           normalizeTime(sig.Time),
				BorderColor: series.Color,
				Label: AnnotationLabel{
					Text:    string(sig.Side),
					OffsetY: series.LabelOffsetY,
					Style: AnnotationLabelStyle{
						Color:      "#fff",
						Background: series.Color,
					},
				},
			}
		})
	})

	return RenderOptions{
		StaticChartOptions: base,
		Annotations:        AnnotationOptions{XAxis: annotations},
	}
}
