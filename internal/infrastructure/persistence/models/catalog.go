package models

import (
	"github.com/erp/customeroptions/internal/domain/catalog"
)

// CustomerOptionModel is the persistence model of a CustomerOption
type CustomerOptionModel struct {
	BaseModel
	Code     string                     `gorm:"type:varchar(64);not null;uniqueIndex:idx_customer_option_code"`
	Name     string                     `gorm:"type:varchar(200);not null"`
	Type     catalog.CustomerOptionType `gorm:"type:varchar(20);not null;default:'select'"`
	Required bool                       `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (CustomerOptionModel) TableName() string {
	return "customer_options"
}

// ToDomain converts the model to a CustomerOption without group associations
func (m *CustomerOptionModel) ToDomain() *catalog.CustomerOption {
	return &catalog.CustomerOption{
		BaseEntity: m.Entity(),
		Code:       m.Code,
		Name:       m.Name,
		Type:       m.Type,
		Required:   m.Required,
	}
}

// CustomerOptionModelFromDomain creates a persistence model from a CustomerOption.
// Group associations are stored by the option group repository.
func CustomerOptionModelFromDomain(o *catalog.CustomerOption) *CustomerOptionModel {
	return &CustomerOptionModel{
		BaseModel: baseModelOf(o.BaseEntity),
		Code:      o.Code,
		Name:      o.Name,
		Type:      o.Type,
		Required:  o.Required,
	}
}

// ProductModel is the persistence model of a Product
type ProductModel struct {
	BaseModel
	Code   string                `gorm:"type:varchar(64);not null;uniqueIndex:idx_product_code"`
	Name   string                `gorm:"type:varchar(200);not null"`
	Status catalog.ProductStatus `gorm:"type:varchar(20);not null;default:'active'"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the model to a Product
func (m *ProductModel) ToDomain() catalog.Product {
	return catalog.Product{
		BaseEntity: m.Entity(),
		Code:       m.Code,
		Name:       m.Name,
		Status:     m.Status,
	}
}

// ProductModelFromDomain creates a persistence model from a Product
func ProductModelFromDomain(p *catalog.Product) *ProductModel {
	return &ProductModel{
		BaseModel: baseModelOf(p.BaseEntity),
		Code:      p.Code,
		Name:      p.Name,
		Status:    p.Status,
	}
}

// ProductsToDomain converts a slice of product models
func ProductsToDomain(ms []ProductModel) []catalog.Product {
	products := make([]catalog.Product, 0, len(ms))
	for i := range ms {
		products = append(products, ms[i].ToDomain())
	}
	return products
}
