// Package usecase implements the business logic for product-related operations.
package usecase

import (
	"context"

	"github.com/Fukkatsuso/cryptocurrency-trading-bot/internal/feature/product/domain/entity"
)

// ProductRepository abstracts the persistence layer for product (currency pair) data.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type ProductRepository interface {
	ListActive(ctx context.Context) ([]entity.Product, error)
	ListActiveCodes(ctx context.Context) ([]string, error)
}

// ProductUsecase provides business logic for product operations.
type ProductUsecase struct {
	repo ProductRepository
}

// NewProductUsecase creates a new ProductUsecase with the given repository.
func NewProductUsecase(r ProductRepository) *ProductUsecase {
	return &ProductUsecase{repo: r}
}

// ListActiveProducts returns all active products from the repository.
func (u *ProductUsecase) ListActiveProducts(ctx context.Context) ([]entity.Product, error) {
	return u.repo.ListActive(ctx)
}
