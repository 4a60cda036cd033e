package main

import (
	appcatalog "github.com/erp/customeroptions/internal/application/catalog"
	"github.com/erp/customeroptions/internal/infrastructure/config"
	"github.com/erp/customeroptions/internal/infrastructure/fixture"
)

// flags are the command line overrides of the seed configuration
type flags struct {
	fixtures string
	random   int
	seed     uint64
	logLevel string
	locale   string
}

// apply writes every flag that was set over cfg. The random amount is
// applied to the request instead, see loadRequest.
func (f flags) apply(cfg *config.Config) {
	if f.fixtures != "" {
		cfg.Seed.Fixtures = f.fixtures
	}
	if f.seed != 0 {
		cfg.Seed.FakerSeed = f.seed
	}
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}
	if f.locale != "" {
		cfg.Seed.Locale = f.locale
	}
}

func requestFromFixture(file *fixture.File) appcatalog.SeedRequest {
	req := appcatalog.SeedRequest{
		RandomOptionGroups: file.RandomOptionGroups,
	}
	for _, o := range file.CustomerOptions {
		req.CustomerOptions = append(req.CustomerOptions, appcatalog.CustomerOptionSeed{
			Code:     o.Code,
			Name:     o.Name,
			Type:     o.Type,
			Required: o.Required,
		})
	}
	for _, p := range file.Products {
		req.Products = append(req.Products, appcatalog.ProductSeed{Code: p.Code, Name: p.Name})
	}
	for _, g := range file.OptionGroups {
		req.OptionGroups = append(req.OptionGroups, appcatalog.OptionGroupConfig{
			Code:         g.Code,
			Translations: g.Translations,
			Options:      g.Options,
			Products:     g.Products,
		})
	}
	return req
}
