package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/Fukkatsuso/cryptocurrency-trading-bot/internal/feature/product/domain/entity"
)

// mockProductRepository is a mock implementation of the ProductRepository interface.
type mockProductRepository struct {
	ListActiveFunc      func(ctx context.Context) ([]entity.Product, error)
	ListActiveCodesFunc func(ctx context.Context) ([]string, error)
}

func (m *mockProductRepository) ListActive(ctx context.Context) ([]entity.Product, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return nil, nil
}

func (m *mockProductRepository) ListActiveCodes(ctx context.Context) ([]string, error) {
	if m.ListActiveCodesFunc != nil {
		return m.ListActiveCodesFunc(ctx)
	}
	return nil, nil
}

func TestProductUsecase_ListActiveProducts(t *testing.T) {
	t.Parallel()

	t.Run("returns products from repository", func(t *testing.T) {
		t.Parallel()

		repo := &mockProductRepository{
			ListActiveFunc: func(ctx context.Context) ([]entity.Product, error) {
				return []entity.Product{
					{Code: "ETH_JPY", Name: "イーサリアム/日本円"},
					{Code: "BTC_JPY", Name: "ビットコイン/日本円"},
				}, nil
			},
		}
		uc := NewProductUsecase(repo)

		products, err := uc.ListActiveProducts(context.Background())

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(products) != 2 {
			t.Fatalf("expected 2 products, got %d", len(products))
		}
		if products[0].Code != "ETH_JPY" {
			t.Errorf("unexpected first product: %+v", products[0])
		}
	})

	t.Run("propagates repository error", func(t *testing.T) {
		t.Parallel()

		expectedErr := errors.New("database error")
		repo := &mockProductRepository{
			ListActiveFunc: func(ctx context.Context) ([]entity.Product, error) {
				return nil, expectedErr
			},
		}
		uc := NewProductUsecase(repo)

		_, err := uc.ListActiveProducts(context.Background())

		if !errors.Is(err, expectedErr) {
			t.Errorf("expected error '%v', got: %v", expectedErr, err)
		}
	})
}
