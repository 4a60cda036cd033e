package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/erp/customeroptions/internal/domain/catalog"
	"github.com/erp/customeroptions/internal/domain/shared"
	"github.com/erp/customeroptions/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOptionGroupRepository implements OptionGroupRepository using GORM
type GormOptionGroupRepository struct {
	db *gorm.DB
}

// NewGormOptionGroupRepository creates a new GormOptionGroupRepository
func NewGormOptionGroupRepository(db *gorm.DB) *GormOptionGroupRepository {
	return &GormOptionGroupRepository{db: db}
}

// Save writes the group, its translations, its option associations and its
// product links in one transaction. Linked options and products must already
// be persisted. Saving an existing group replaces all of its child rows.
func (r *GormOptionGroupRepository) Save(ctx context.Context, group *catalog.OptionGroup) error {
	if err := checkPersistedLinks(group); err != nil {
		return err
	}
	group.EnsureIdentity()

	assocs := make([]models.OptionAssociationModel, 0, len(group.OptionAssociations))
	for _, a := range group.OptionAssociations {
		if a.ID == uuid.Nil {
			a.ID = uuid.New()
		}
		assocs = append(assocs, models.OptionAssociationModel{
			ID:       a.ID,
			OptionID: a.Option.ID,
			GroupID:  group.ID,
			Position: a.Position,
		})
	}
	links := make([]models.OptionGroupProductModel, 0, len(group.Products))
	for _, p := range group.Products {
		links = append(links, models.OptionGroupProductModel{GroupID: group.ID, ProductID: p.ID})
	}

	m := models.OptionGroupModelFromDomain(group)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(m).Error; err != nil {
			return fmt.Errorf("failed to save option group: %w", err)
		}
		if err := r.deleteChildren(tx, group); err != nil {
			return err
		}
		if len(m.Translations) > 0 {
			if err := tx.Create(&m.Translations).Error; err != nil {
				return fmt.Errorf("failed to save option group translations: %w", err)
			}
		}
		if len(assocs) > 0 {
			if err := tx.Omit(clause.Associations).Create(&assocs).Error; err != nil {
				return fmt.Errorf("failed to save option associations: %w", err)
			}
		}
		if len(links) > 0 {
			if err := tx.Create(&links).Error; err != nil {
				return fmt.Errorf("failed to save option group products: %w", err)
			}
		}
		return nil
	})
}

func checkPersistedLinks(group *catalog.OptionGroup) error {
	for _, a := range group.OptionAssociations {
		if a.Option == nil || a.Option.IsNew() {
			return shared.NewDomainError("UNSAVED_OPTION",
				fmt.Sprintf("Customer option %q must be saved before option group %q", a.OptionCode(), group.Code))
		}
	}
	for _, p := range group.Products {
		if p.IsNew() {
			return shared.NewDomainError("UNSAVED_PRODUCT",
				fmt.Sprintf("Product %q must be saved before option group %q", p.Code, group.Code))
		}
	}
	return nil
}

func (r *GormOptionGroupRepository) deleteChildren(tx *gorm.DB, group *catalog.OptionGroup) error {
	children := []any{
		&models.OptionGroupTranslationModel{},
		&models.OptionAssociationModel{},
		&models.OptionGroupProductModel{},
	}
	for _, child := range children {
		if err := tx.Where("group_id = ?", group.ID).Delete(child).Error; err != nil {
			return fmt.Errorf("failed to clear option group rows: %w", err)
		}
	}
	return nil
}

// FindByCode loads the first group with the given code together with its
// translations, associations and products
func (r *GormOptionGroupRepository) FindByCode(ctx context.Context, code string) (*catalog.OptionGroup, error) {
	var m models.OptionGroupModel
	err := r.db.WithContext(ctx).
		Preload("Translations").
		Preload("Associations", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		Preload("Associations.Option").
		Preload("Products", func(db *gorm.DB) *gorm.DB {
			return db.Order("code")
		}).
		Where("code = ?", code).
		Order("created_at").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return m.ToDomain(), nil
}

// ExistsByCode checks if a group with the given code exists
func (r *GormOptionGroupRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.OptionGroupModel{}).
		Where("code = ?", code).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
