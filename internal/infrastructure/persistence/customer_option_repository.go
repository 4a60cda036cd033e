package persistence

import (
	"context"
	"errors"

	"github.com/erp/customeroptions/internal/domain/catalog"
	"github.com/erp/customeroptions/internal/domain/shared"
	"github.com/erp/customeroptions/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormCustomerOptionRepository implements CustomerOptionRepository using GORM
type GormCustomerOptionRepository struct {
	db *gorm.DB
}

// NewGormCustomerOptionRepository creates a new GormCustomerOptionRepository
func NewGormCustomerOptionRepository(db *gorm.DB) *GormCustomerOptionRepository {
	return &GormCustomerOptionRepository{db: db}
}

// FindAll returns every customer option ordered by code
func (r *GormCustomerOptionRepository) FindAll(ctx context.Context) ([]*catalog.CustomerOption, error) {
	var ms []models.CustomerOptionModel
	if err := r.db.WithContext(ctx).Order("code").Find(&ms).Error; err != nil {
		return nil, err
	}
	options := make([]*catalog.CustomerOption, 0, len(ms))
	for i := range ms {
		options = append(options, ms[i].ToDomain())
	}
	return options, nil
}

// FindOneByCode finds a customer option by its code
func (r *GormCustomerOptionRepository) FindOneByCode(ctx context.Context, code string) (*catalog.CustomerOption, error) {
	var m models.CustomerOptionModel
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return m.ToDomain(), nil
}

// Save creates or updates a customer option. Its group associations are
// stored with the groups.
func (r *GormCustomerOptionRepository) Save(ctx context.Context, option *catalog.CustomerOption) error {
	option.EnsureIdentity()
	return r.db.WithContext(ctx).Save(models.CustomerOptionModelFromDomain(option)).Error
}
