// Package entity はadminフィーチャーのドメインエンティティを定義します。
package entity

// TradeParams は取引戦略のインディケータ設定を平坦に持つレコードです。
// トレーダーサービスが保持する値のミラーで、管理画面エディタの編集対象です。
type TradeParams struct {
	TradeEnable      bool    `json:"tradeEnable"`
	ProductCode      string  `json:"productCode"`
	Size             float64 `json:"size"`
	SMAEnable        bool    `json:"smaEnable"`
	SMAPeriod1       int     `json:"smaPeriod1"`
	SMAPeriod2       int     `json:"smaPeriod2"`
	SMAPeriod3       int     `json:"smaPeriod3"`
	EMAEnable        bool    `json:"emaEnable"`
	EMAPeriod1       int     `json:"emaPeriod1"`
	EMAPeriod2       int     `json:"emaPeriod2"`
	EMAPeriod3       int     `json:"emaPeriod3"`
	BBandsEnable     bool    `json:"bbandsEnable"`
	BBandsN          int     `json:"bbandsN"`
	BBandsK          float64 `json:"bbandsK"`
	IchimokuEnable   bool    `json:"ichimokuEnable"`
	RSIEnable        bool    `json:"rsiEnable"`
	RSIPeriod        int     `json:"rsiPeriod"`
	RSIBuyThread     float64 `json:"rsiBuyThread"`
	RSISellThread    float64 `json:"rsiSellThread"`
	MACDEnable       bool    `json:"macdEnable"`
	MACDFastPeriod   int     `json:"macdFastPeriod"`
	MACDSlowPeriod   int     `json:"macdSlowPeriod"`
	MACDSignalPeriod int     `json:"macdSignalPeriod"`
	StopLimitPercent float64 `json:"stopLimitPercent"`
}

// Balance は表示専用の残高スナップショットです。TradeParamsには含まれません。
type Balance struct {
	CurrencyCode string  `json:"currencyCode"`
	Amount       float64 `json:"amount"`
	Available    float64 `json:"available"`
}
