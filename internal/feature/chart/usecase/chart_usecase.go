package usecase

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/Fukkatsuso/cryptocurrency-trading-bot/internal/feature/chart/domain/entity"
)

// DataFrameRepository は市場データの取得層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type DataFrameRepository interface {
	// Fetch はフラット化済みのクエリでトレーダーAPIからデータフレームを取得します。
	Fetch(ctx context.Context, query url.Values) (*DataFrameResponse, error)
}

// ChartView はブラウザへ返す描画可能なチャート一式です。
// Holdsは正規化済みシグナル系列から毎回再計算され、どこにも保持されません。
type ChartView struct {
	OHLC    []entity.OHLCPoint  `json:"ohlc"`
	Series  []entity.LineSeries `json:"series"`
	Options RenderOptions       `json:"options"`
	Holds   HoldSummary         `json:"holds"`
}

// HoldSummary は出所ごとの正味保有数量です。系列が無い出所はnullになります。
type HoldSummary struct {
	Live     *float64 `json:"live"`
	Backtest *float64 `json:"backtest"`
}

// chartUsecase は設定→クエリ→取得→正規化→合成のパイプラインを実行します。
type chartUsecase struct {
	dataFrames DataFrameRepository
}

// NewChartUsecase はchartUsecaseの新しいインスタンスを生成します。
func NewChartUsecase(dataFrames DataFrameRepository) *chartUsecase {
	return &chartUsecase{dataFrames: dataFrames}
}

// GetChart は設定値からチャート描画データ一式を組み立てます。
//
// 上流の取得失敗は空のチャートへ縮退させ、描画経路へはエラーを伝播させません。
// 再試行もしません。失敗したままのチャートは、利用者が設定を変えて
// 再送信すれば回復します。
func (cu *chartUsecase) GetChart(ctx context.Context, cfg entity.ChartConfig) *ChartView {
	query := BuildQuery(cfg)

	raw, err := cu.dataFrames.Fetch(ctx, query)
	if err != nil {
		slog.Warn("failed to fetch dataframe, rendering empty chart", "error", err)
		raw = nil
	}

	data := Normalize(raw)
	options := Assemble(DefaultStaticChartOptions(), data.SignalSeries)

	view := &ChartView{
		OHLC:    data.OHLC,
		Series:  data.Series,
		Options: options,
	}
	for _, series := range data.SignalSeries {
		hold := series.Replay()
		switch series.Provenance {
		case entity.ProvenanceLive:
			view.Holds.Live = &hold
		case entity.ProvenanceBacktest:
			view.Holds.Backtest = &hold
		}
	}

	return view
}
