// Package usecase はadminフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"fmt"

	"github.com/Fukkatsuso/cryptocurrency-trading-bot/internal/feature/admin/domain/entity"
)

// Rule は単一フィールドの検証述語です。問題なければnil、
// そうでなければ利用者向けメッセージを持つエラーを返します。
// フィールド間をまたぐ規則はありません。
type Rule func(v float64) error

// required は値が未入力（ゼロ値）でないことを要求します。
func required(name string) Rule {
	return func(v float64) error {
		if v == 0 {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}

// moreThanZero は正の値を要求します。
func moreThanZero(name string) Rule {
	return func(v float64) error {
		if v <= 0 {
			return fmt.Errorf("%s must be more than 0", name)
		}
		return nil
	}
}

// atLeastZero は非負の値を要求します。
func atLeastZero(name string) Rule {
	return func(v float64) error {
		if v < 0 {
			return fmt.Errorf("%s must be at least 0", name)
		}
		return nil
	}
}

// atMost は上限以下の値を要求します。
func atMost(name string, max float64) Rule {
	return func(v float64) error {
		if v > max {
			return fmt.Errorf("%s must be at most %v", name, max)
		}
		return nil
	}
}

// tradeParamsRules はフィールド名→規則列の検証ルールセットです。
// 各フィールドは独立に評価されます。
var tradeParamsRules = map[string][]Rule{
	"size":             {required("size"), moreThanZero("size")},
	"smaPeriod1":       {required("smaPeriod1"), moreThanZero("smaPeriod1")},
	"smaPeriod2":       {required("smaPeriod2"), moreThanZero("smaPeriod2")},
	"smaPeriod3":       {required("smaPeriod3"), moreThanZero("smaPeriod3")},
	"emaPeriod1":       {required("emaPeriod1"), moreThanZero("emaPeriod1")},
	"emaPeriod2":       {required("emaPeriod2"), moreThanZero("emaPeriod2")},
	"emaPeriod3":       {required("emaPeriod3"), moreThanZero("emaPeriod3")},
	"bbandsN":          {required("bbandsN"), moreThanZero("bbandsN")},
	"bbandsK":          {required("bbandsK"), moreThanZero("bbandsK")},
	"rsiPeriod":        {required("rsiPeriod"), moreThanZero("rsiPeriod")},
	"rsiBuyThread":     {required("rsiBuyThread"), atLeastZero("rsiBuyThread"), atMost("rsiBuyThread", 100)},
	"rsiSellThread":    {required("rsiSellThread"), atLeastZero("rsiSellThread"), atMost("rsiSellThread", 100)},
	"macdFastPeriod":   {required("macdFastPeriod"), moreThanZero("macdFastPeriod")},
	"macdSlowPeriod":   {required("macdSlowPeriod"), moreThanZero("macdSlowPeriod")},
	"macdSignalPeriod": {required("macdSignalPeriod"), moreThanZero("macdSignalPeriod")},
	"stopLimitPercent": {required("stopLimitPercent"), atLeastZero("stopLimitPercent"), atMost("stopLimitPercent", 1)},
}

// fieldValues はTradeParamsを検証対象のフィールド名→数値へ展開します。
func fieldValues(p entity.TradeParams) map[string]float64 {
	return map[string]float64{
		"size":             p.Size,
		"smaPeriod1":       float64(p.SMAPeriod1),
		"smaPeriod2":       float64(p.SMAPeriod2),
		"smaPeriod3":       float64(p.SMAPeriod3),
		"emaPeriod1":       float64(p.EMAPeriod1),
		"emaPeriod2":       float64(p.EMAPeriod2),
		"emaPeriod3":       float64(p.EMAPeriod3),
		"bbandsN":          float64(p.BBandsN),
		"bbandsK":          p.BBandsK,
		"rsiPeriod":        float64(p.RSIPeriod),
		"rsiBuyThread":     p.RSIBuyThread,
		"rsiSellThread":    p.RSISellThread,
		"macdFastPeriod":   float64(p.MACDFastPeriod),
		"macdSlowPeriod":   float64(p.MACDSlowPeriod),
		"macdSignalPeriod": float64(p.MACDSignalPeriod),
		"stopLimitPercent": p.StopLimitPercent,
	}
}

// ValidateTradeParams は各フィールドの規則を独立に評価し、
// フィールド名→最初に違反したメッセージのマップを返します。
// 違反がなければ空のマップを返します。
func ValidateTradeParams(p entity.TradeParams) map[string]string {
	messages := make(map[string]string)
	values := fieldValues(p)
	for field, rules := range tradeParamsRules {
		for _, rule := range rules {
			if err := rule(values[field]); err != nil {
				messages[field] = err.Error()
				break
			}
		}
	}
	return messages
}

// TradeParamsForm は確定済み(saved)と編集中(draft)のパラメータ対です。
//
// 状態遷移: saved（確定）→ 編集でdraftが分岐 → 送信成功で再取得値が
// 新しいsaved/draft対になる。送信失敗はdraftへ影響しない（楽観的更新はしない）。
// ResetはdraftをsavedからDeep copyで復元します。
type TradeParamsForm struct {
	saved entity.TradeParams
	draft entity.TradeParams
}

// NewTradeParamsForm は取得済みの確定値からフォームを生成します。
// savedとdraftは同じ値の独立したコピーになります。
func NewTradeParamsForm(fetched entity.TradeParams) *TradeParamsForm {
	return &TradeParamsForm{saved: fetched, draft: fetched}
}

// Saved は確定済みのパラメータを返します。
func (f *TradeParamsForm) Saved() entity.TradeParams {
	return f.saved
}

// Draft は編集中のパラメータを返します。
func (f *TradeParamsForm) Draft() entity.TradeParams {
	return f.draft
}

// Edit は編集中のパラメータを置き換えます。savedは変化しません。
func (f *TradeParamsForm) Edit(draft entity.TradeParams) {
	f.draft = draft
}

// Reset は編集内容を破棄し、draftをsavedから復元します。
func (f *TradeParamsForm) Reset() {
	f.draft = f.saved
}

// Commit は送信成功後の再取得値を新しいsaved/draft対として確定します。
func (f *TradeParamsForm) Commit(confirmed entity.TradeParams) {
	f.saved = confirmed
	f.draft = confirmed
}
