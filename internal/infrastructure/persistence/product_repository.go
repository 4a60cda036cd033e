package persistence

import (
	"context"

	"github.com/erp/customeroptions/internal/domain/catalog"
	"github.com/erp/customeroptions/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormProductRepository implements ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindAll returns every product ordered by code
func (r *GormProductRepository) FindAll(ctx context.Context) ([]catalog.Product, error) {
	var ms []models.ProductModel
	if err := r.db.WithContext(ctx).Order("code").Find(&ms).Error; err != nil {
		return nil, err
	}
	return models.ProductsToDomain(ms), nil
}

// FindByCodes returns the products whose code is in codes, in one query.
// Unknown codes are absent from the result.
func (r *GormProductRepository) FindByCodes(ctx context.Context, codes []string) ([]catalog.Product, error) {
	if len(codes) == 0 {
		return []catalog.Product{}, nil
	}
	var ms []models.ProductModel
	if err := r.db.WithContext(ctx).Where("code IN ?", codes).Order("code").Find(&ms).Error; err != nil {
		return nil, err
	}
	return models.ProductsToDomain(ms), nil
}

// Save creates or updates a product
func (r *GormProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	product.EnsureIdentity()
	return r.db.WithContext(ctx).Save(models.ProductModelFromDomain(product)).Error
}
