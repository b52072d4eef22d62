package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Fukkatsuso/cryptocurrency-trading-bot/internal/feature/admin/domain/entity"
)

// TradeParamsRepository はトレーダーサービス上のパラメータの取得と保存を抽象化します。
// productCodeが空の場合はトレーダーサービス側の既定の通貨ペアが対象になります。
type TradeParamsRepository interface {
	Find(ctx context.Context, productCode string) (*entity.TradeParams, error)
	Save(ctx context.Context, params entity.TradeParams) error
}

// BalanceRepository は残高スナップショットの取得を抽象化します。
type BalanceRepository interface {
	Fetch(ctx context.Context) ([]entity.Balance, error)
}

// UpdateResult はパラメータ更新の結果です。
// FieldErrorsが空でなければ検証失敗で、保存は行われていません。
type UpdateResult struct {
	Params      *entity.TradeParams
	FieldErrors map[string]string
}

// AdminUsecase は管理画面向けのパラメータ編集と残高参照を提供します。
//
// 通貨ペアごとの編集状態をTradeParamsFormとして保持し、
// 確定値(saved)と編集中(draft)の遷移をサーバー側で追跡します。
type AdminUsecase struct {
	params  TradeParamsRepository
	balance BalanceRepository

	mu    sync.Mutex
	forms map[string]*TradeParamsForm // productCode → 編集状態
}

// NewAdminUsecase はAdminUsecaseの新しいインスタンスを生成します。
func NewAdminUsecase(params TradeParamsRepository, balance BalanceRepository) *AdminUsecase {
	return &AdminUsecase{
		params:  params,
		balance: balance,
		forms:   make(map[string]*TradeParamsForm),
	}
}

// GetTradeParams は指定された通貨ペアの確定済みパラメータを取得します。
//
// 取得に成功した値は新しいフォームの確定値として保持します。
// 取得に失敗した場合、直近の確定値を覚えていればそれへ縮退し、
// 一度も確定していなければnilを返して画面側は空のエディタを表示します。
func (uc *AdminUsecase) GetTradeParams(ctx context.Context, productCode string) *entity.TradeParams {
	params, err := uc.params.Find(ctx, productCode)

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err != nil {
		slog.Warn("failed to fetch trade params", "error", err, "product_code", productCode)
		if form, ok := uc.forms[productCode]; ok {
			saved := form.Saved()
			return &saved
		}
		return nil
	}

	form := NewTradeParamsForm(*params)
	uc.forms[productCode] = form
	if params.ProductCode != productCode {
		// 空のproductCodeで既定の通貨ペアを取得した場合も実コードで引けるようにする
		uc.forms[params.ProductCode] = form
	}

	saved := form.Saved()
	return &saved
}

// UpdateTradeParams は編集中のパラメータをフォームへ反映し、検証して保存します。
//
// 検証に違反したフィールドがあれば保存せず、FieldErrorsだけを返します。
// draftは編集中のまま残り、savedは変化しません。
// 保存に失敗した場合はエラーを返します（こちらもdraftはそのまま）。
// 保存に成功した場合は再取得した値をCommitし、新しい確定値を返します。
func (uc *AdminUsecase) UpdateTradeParams(ctx context.Context, draft entity.TradeParams) (*UpdateResult, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	form, ok := uc.forms[draft.ProductCode]
	if !ok {
		form = NewTradeParamsForm(draft)
	}
	form.Edit(draft)

	if fieldErrors := ValidateTradeParams(form.Draft()); len(fieldErrors) > 0 {
		return &UpdateResult{FieldErrors: fieldErrors}, nil
	}

	if err := uc.params.Save(ctx, form.Draft()); err != nil {
		return nil, fmt.Errorf("failed to save trade params: %w", err)
	}

	confirmed, err := uc.params.Find(ctx, draft.ProductCode)
	if err != nil {
		// 保存自体は成功しているため、再取得失敗は送信値を確定値として扱う
		slog.Warn("failed to refetch trade params after save", "error", err)
		d := form.Draft()
		confirmed = &d
	}
	form.Commit(*confirmed)
	uc.forms[draft.ProductCode] = form

	saved := form.Saved()
	return &UpdateResult{Params: &saved}, nil
}

// GetBalance は残高スナップショットを取得します。
// 取得に失敗した場合は空のスライスを返します。
func (uc *AdminUsecase) GetBalance(ctx context.Context) []entity.Balance {
	balances, err := uc.balance.Fetch(ctx)
	if err != nil {
		slog.Warn("failed to fetch balance", "error", err)
		return []entity.Balance{}
	}
	return balances
}
