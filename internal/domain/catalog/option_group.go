package catalog

import (
	"sort"

	"github.com/erp/customeroptions/internal/domain/shared"
)

// OptionGroupTranslation is the display name of a group in one locale
type OptionGroupTranslation struct {
	Locale string
	Name   string
}

// OptionGroup is a named, localized collection of customer options,
// optionally scoped to specific products.
type OptionGroup struct {
	shared.BaseEntity
	Code               string
	names              map[string]string
	OptionAssociations []*OptionAssociation
	Products           []Product
}

// NewOptionGroup returns a bare option group with no fields set
func NewOptionGroup() *OptionGroup {
	return &OptionGroup{}
}

// SetCode sets the group code
func (g *OptionGroup) SetCode(code string) {
	g.Code = code
}

// SetName sets the display name for a locale, replacing any previous value
func (g *OptionGroup) SetName(locale, name string) {
	if g.names == nil {
		g.names = make(map[string]string)
	}
	g.names[locale] = name
}

// Name returns the display name for a locale, or "" if none is set
func (g *OptionGroup) Name(locale string) string {
	return g.names[locale]
}

// Translations returns all names ordered by locale
func (g *OptionGroup) Translations() []OptionGroupTranslation {
	translations := make([]OptionGroupTranslation, 0, len(g.names))
	for _, locale := range g.Locales() {
		translations = append(translations, OptionGroupTranslation{Locale: locale, Name: g.names[locale]})
	}
	return translations
}

// Locales returns the locales that have a name, sorted
func (g *OptionGroup) Locales() []string {
	locales := make([]string, 0, len(g.names))
	for locale := range g.names {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales
}

// AddOptionAssociation registers an association on the group side and
// assigns it the next position. Adding the same association twice is a no-op.
func (g *OptionGroup) AddOptionAssociation(assoc *OptionAssociation) {
	if assoc == nil {
		return
	}
	for _, a := range g.OptionAssociations {
		if a == assoc {
			return
		}
	}
	assoc.Group = g
	assoc.Position = len(g.OptionAssociations)
	g.OptionAssociations = append(g.OptionAssociations, assoc)
}

// RemoveOptionAssociation unlinks an association from both the group and its option
func (g *OptionGroup) RemoveOptionAssociation(assoc *OptionAssociation) {
	for i, a := range g.OptionAssociations {
		if a != assoc {
			continue
		}
		g.OptionAssociations = append(g.OptionAssociations[:i], g.OptionAssociations[i+1:]...)
		for j := i; j < len(g.OptionAssociations); j++ {
			g.OptionAssociations[j].Position = j
		}
		if assoc.Option != nil {
			assoc.Option.RemoveGroupAssociation(assoc)
		}
		return
	}
}

// Options returns the options linked to the group in association order
func (g *OptionGroup) Options() []*CustomerOption {
	options := make([]*CustomerOption, 0, len(g.OptionAssociations))
	for _, a := range g.OptionAssociations {
		if a.Option != nil {
			options = append(options, a.Option)
		}
	}
	return options
}

// SetProducts replaces the products the group is scoped to
func (g *OptionGroup) SetProducts(products []Product) {
	g.Products = products
}

// HasProduct checks if a product with the given code is linked
func (g *OptionGroup) HasProduct(code string) bool {
	for _, p := range g.Products {
		if p.Code == code {
			return true
		}
	}
	return false
}
