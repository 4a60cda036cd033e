package catalog

import (
	"sort"
)

// OptionGroupConfig describes an option group to build.
// A nil field is unspecified and takes the prototype value from
// OptionGroupPrototype when the config is merged.
type OptionGroupConfig struct {
	Code         *string           `json:"code"`
	Translations map[string]string `json:"translations" validate:"min=1"`
	Options      []string          `json:"options"`
	Products     []string          `json:"products"`
}

// OptionGroupPrototype returns the defaults every config is merged onto:
// no code, no translations, no options, no products
func OptionGroupPrototype() OptionGroupConfig {
	return OptionGroupConfig{
		Code:         nil,
		Translations: map[string]string{},
		Options:      []string{},
		Products:     []string{},
	}
}

// MergeDefaults returns a copy of c with every unspecified field taken from
// the prototype. Caller-supplied fields always win.
func (c OptionGroupConfig) MergeDefaults() OptionGroupConfig {
	merged := OptionGroupPrototype()
	if c.Code != nil {
		merged.Code = c.Code
	}
	if c.Translations != nil {
		merged.Translations = c.Translations
	}
	if c.Options != nil {
		merged.Options = c.Options
	}
	if c.Products != nil {
		merged.Products = c.Products
	}
	return merged
}

// SortedLocales returns the translation locales in sorted order
func (c OptionGroupConfig) SortedLocales() []string {
	locales := make([]string, 0, len(c.Translations))
	for locale := range c.Translations {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales
}

// StringPtr returns a pointer to s, for filling optional config fields
func StringPtr(s string) *string {
	return &s
}

// CustomerOptionSeed describes a customer option to create when seeding
type CustomerOptionSeed struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

// ProductSeed describes a product to create when seeding
type ProductSeed struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// SeedRequest is everything a single seeding run should create
type SeedRequest struct {
	CustomerOptions    []CustomerOptionSeed `json:"customer_options"`
	Products           []ProductSeed        `json:"products"`
	OptionGroups       []OptionGroupConfig  `json:"option_groups"`
	RandomOptionGroups int                  `json:"random_option_groups"`
}

// SeedReport summarizes a seeding run
type SeedReport struct {
	CustomerOptionsCreated int                 `json:"customer_options_created"`
	CustomerOptionsSkipped int                 `json:"customer_options_skipped"`
	ProductsCreated        int                 `json:"products_created"`
	ProductsSkipped        int                 `json:"products_skipped"`
	OptionGroupsCreated    int                 `json:"option_groups_created"`
	OptionGroupsSkipped    int                 `json:"option_groups_skipped"`
	RandomFailures         []GenerationFailure `json:"-"`
}
