package catalog

import (
	"github.com/erp/customeroptions/internal/domain/shared"
)

// ProductStatus represents the status of a product
type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
)

// Product is a sellable catalog item that option groups can be scoped to
type Product struct {
	shared.BaseEntity
	Code   string
	Name   string
	Status ProductStatus
}

// NewProduct creates a new active product
func NewProduct(code, name string) (*Product, error) {
	if err := validateCode("Product", code); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}

	return &Product{
		BaseEntity: shared.NewBaseEntity(),
		Code:       code,
		Name:       name,
		Status:     ProductStatusActive,
	}, nil
}

// IsActive returns true if the product is active
func (p *Product) IsActive() bool {
	return p.Status == ProductStatusActive
}

// Deactivate marks the product inactive
func (p *Product) Deactivate() error {
	if p.Status == ProductStatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Product is already inactive")
	}
	p.Status = ProductStatusInactive
	p.Touch()
	return nil
}

// ProductCodes returns the codes of the given products in order
func ProductCodes(products []Product) []string {
	codes := make([]string, 0, len(products))
	for _, p := range products {
		codes = append(codes, p.Code)
	}
	return codes
}
