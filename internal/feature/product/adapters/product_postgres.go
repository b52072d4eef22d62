// Package adapters はproductフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"gorm.io/gorm"

	"github.com/Fukkatsuso/cryptocurrency-trading-bot/internal/feature/product/domain/entity"
	"github.com/Fukkatsuso/cryptocurrency-trading-bot/internal/feature/product/usecase"
)

// productPostgres はProductRepositoryインターフェースのPostgreSQL実装です。
type productPostgres struct {
	db *gorm.DB
}

var _ usecase.ProductRepository = (*productPostgres)(nil)

// NewProductRepository は指定されたDB接続でproductPostgresリポジトリの新しいインスタンスを生成します。
func NewProductRepository(db *gorm.DB) *productPostgres {
	return &productPostgres{db: db}
}

// ListActive はsort_key順にすべてのアクティブな通貨ペアを返します。
func (r *productPostgres) ListActive(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_key ASC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ListActiveCodes はsort_key順にアクティブな通貨ペアのコードのみを返します。
func (r *productPostgres) ListActiveCodes(ctx context.Context) ([]string, error) {
	var codes []string
	if err := r.db.WithContext(ctx).
		Model(&entity.Product{}).
		Where("is_active = ?", true).
		Order("sort_key ASC").
		Pluck("code", &codes).Error; err != nil {
		return nil, err
	}
	return codes, nil
}
