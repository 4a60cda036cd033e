package models

import (
	"sort"

	"github.com/erp/customeroptions/internal/domain/catalog"
	"github.com/google/uuid"
)

// OptionGroupModel is the persistence model of an OptionGroup.
// Code is indexed but not unique: groups built without a code share "".
type OptionGroupModel struct {
	BaseModel
	Code         string                        `gorm:"type:varchar(64);not null;default:'';index:idx_option_group_code"`
	Translations []OptionGroupTranslationModel `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
	Associations []OptionAssociationModel      `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
	Products     []ProductModel                `gorm:"many2many:customer_option_group_products;joinForeignKey:GroupID;joinReferences:ProductID"`
}

// TableName returns the table name for GORM
func (OptionGroupModel) TableName() string {
	return "customer_option_groups"
}

// OptionGroupTranslationModel stores the name of a group in one locale
type OptionGroupTranslationModel struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	GroupID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_option_group_locale,priority:1"`
	Locale  string    `gorm:"type:varchar(16);not null;uniqueIndex:idx_option_group_locale,priority:2"`
	Name    string    `gorm:"type:varchar(255);not null"`
}

// TableName returns the table name for GORM
func (OptionGroupTranslationModel) TableName() string {
	return "customer_option_group_translations"
}

// OptionAssociationModel is a row of the option to group relation table
type OptionAssociationModel struct {
	ID       uuid.UUID           `gorm:"type:uuid;primaryKey"`
	OptionID uuid.UUID           `gorm:"type:uuid;not null;index"`
	GroupID  uuid.UUID           `gorm:"type:uuid;not null;index"`
	Position int                 `gorm:"not null;default:0"`
	Option   CustomerOptionModel `gorm:"foreignKey:OptionID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (OptionAssociationModel) TableName() string {
	return "customer_option_associations"
}

// OptionGroupProductModel is a row of the group to product join table
type OptionGroupProductModel struct {
	GroupID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName returns the table name for GORM
func (OptionGroupProductModel) TableName() string {
	return "customer_option_group_products"
}

// OptionGroupModelFromDomain creates the group row and its translation rows.
// Association and product rows are built separately because they need
// persisted option and product ids.
func OptionGroupModelFromDomain(g *catalog.OptionGroup) *OptionGroupModel {
	m := &OptionGroupModel{
		BaseModel: baseModelOf(g.BaseEntity),
		Code:      g.Code,
	}
	for _, t := range g.Translations() {
		m.Translations = append(m.Translations, OptionGroupTranslationModel{
			ID:      uuid.New(),
			GroupID: g.ID,
			Locale:  t.Locale,
			Name:    t.Name,
		})
	}
	return m
}

// ToDomain rebuilds the group with its names, products and associations.
// Each association gets its own copy of the linked option.
func (m *OptionGroupModel) ToDomain() *catalog.OptionGroup {
	g := catalog.NewOptionGroup()
	g.BaseEntity = m.Entity()
	g.SetCode(m.Code)
	for _, t := range m.Translations {
		g.SetName(t.Locale, t.Name)
	}

	assocs := make([]OptionAssociationModel, len(m.Associations))
	copy(assocs, m.Associations)
	sort.SliceStable(assocs, func(i, j int) bool { return assocs[i].Position < assocs[j].Position })
	for _, am := range assocs {
		assoc := &catalog.OptionAssociation{ID: am.ID}
		option := am.Option.ToDomain()
		option.AddGroupAssociation(assoc)
		g.AddOptionAssociation(assoc)
	}

	g.SetProducts(ProductsToDomain(m.Products))
	return g
}
