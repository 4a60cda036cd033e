package catalog

import (
	"context"
)

// CustomerOptionRepository defines the interface for customer option persistence
type CustomerOptionRepository interface {
	// FindAll returns every customer option
	FindAll(ctx context.Context) ([]*CustomerOption, error)

	// FindOneByCode finds an option by code; returns shared.ErrNotFound when absent
	FindOneByCode(ctx context.Context, code string) (*CustomerOption, error)

	// Save creates or updates an option
	Save(ctx context.Context, option *CustomerOption) error
}

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// FindAll returns every product
	FindAll(ctx context.Context) ([]Product, error)

	// FindByCodes returns the products whose code is in codes.
	// Unknown codes are simply absent from the result.
	FindByCodes(ctx context.Context, codes []string) ([]Product, error)

	// Save creates or updates a product
	Save(ctx context.Context, product *Product) error
}

// OptionGroupRepository defines the interface for option group persistence
type OptionGroupRepository interface {
	// Save persists a group together with its names, associations and product links
	Save(ctx context.Context, group *OptionGroup) error

	// FindByCode finds a group by code; returns shared.ErrNotFound when absent
	FindByCode(ctx context.Context, code string) (*OptionGroup, error)

	// ExistsByCode checks if a group with the given code exists
	ExistsByCode(ctx context.Context, code string) (bool, error)
}
