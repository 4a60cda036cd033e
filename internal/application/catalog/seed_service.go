package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/erp/customeroptions/internal/domain/catalog"
	"github.com/erp/customeroptions/internal/domain/shared"
	"go.uber.org/zap"
)

// SeedService populates the catalog with customer options, products and
// option groups for test and demo environments
type SeedService struct {
	factory     *OptionGroupFactory
	optionRepo  catalog.CustomerOptionRepository
	productRepo catalog.ProductRepository
	groupRepo   catalog.OptionGroupRepository
	logger      *zap.Logger
}

// NewSeedService creates a new SeedService
func NewSeedService(
	factory *OptionGroupFactory,
	optionRepo catalog.CustomerOptionRepository,
	productRepo catalog.ProductRepository,
	groupRepo catalog.OptionGroupRepository,
	logger *zap.Logger,
) *SeedService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SeedService{
		factory:     factory,
		optionRepo:  optionRepo,
		productRepo: productRepo,
		groupRepo:   groupRepo,
		logger:      logger.Named("seed"),
	}
}

// Seed creates everything in req that does not exist yet.
//
// Explicit option groups must all build; the first failure aborts the run.
// Random groups are best-effort and their failures are only reported.
func (s *SeedService) Seed(ctx context.Context, req SeedRequest) (*SeedReport, error) {
	report := &SeedReport{}

	if err := s.seedCustomerOptions(ctx, req.CustomerOptions, report); err != nil {
		return nil, err
	}
	if err := s.seedProducts(ctx, req.Products, report); err != nil {
		return nil, err
	}

	groups := make([]*catalog.OptionGroup, 0, len(req.OptionGroups)+req.RandomOptionGroups)
	for i, cfg := range req.OptionGroups {
		group, err := s.factory.CreateFromConfig(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("option group #%d: %w", i, err)
		}
		groups = append(groups, group)
	}

	if req.RandomOptionGroups > 0 {
		result, err := s.factory.GenerateRandom(ctx, req.RandomOptionGroups)
		if err != nil {
			return nil, err
		}
		groups = append(groups, result.Groups...)
		report.RandomFailures = result.Failures
	}

	for _, group := range groups {
		exists, err := s.groupRepo.ExistsByCode(ctx, group.Code)
		if err != nil {
			return nil, fmt.Errorf("failed to check option group %q: %w", group.Code, err)
		}
		if exists {
			report.OptionGroupsSkipped++
			continue
		}
		if err := s.groupRepo.Save(ctx, group); err != nil {
			return nil, fmt.Errorf("failed to save option group %q: %w", group.Code, err)
		}
		report.OptionGroupsCreated++
	}

	s.logger.Info("seeding finished",
		zap.Int("customer_options_created", report.CustomerOptionsCreated),
		zap.Int("products_created", report.ProductsCreated),
		zap.Int("option_groups_created", report.OptionGroupsCreated),
		zap.Int("option_groups_skipped", report.OptionGroupsSkipped),
		zap.Int("random_failures", len(report.RandomFailures)),
	)

	return report, nil
}

func (s *SeedService) seedCustomerOptions(ctx context.Context, seeds []CustomerOptionSeed, report *SeedReport) error {
	for _, seed := range seeds {
		_, err := s.optionRepo.FindOneByCode(ctx, seed.Code)
		if err == nil {
			report.CustomerOptionsSkipped++
			continue
		}
		if !errors.Is(err, shared.ErrNotFound) {
			return fmt.Errorf("failed to check customer option %q: %w", seed.Code, err)
		}

		optionType := catalog.CustomerOptionType(seed.Type)
		if optionType == "" {
			optionType = catalog.CustomerOptionTypeSelect
		}
		option, err := catalog.NewCustomerOption(seed.Code, seed.Name, optionType)
		if err != nil {
			return fmt.Errorf("customer option %q: %w", seed.Code, err)
		}
		option.SetRequired(seed.Required)

		if err := s.optionRepo.Save(ctx, option); err != nil {
			return fmt.Errorf("failed to save customer option %q: %w", seed.Code, err)
		}
		report.CustomerOptionsCreated++
	}
	return nil
}

func (s *SeedService) seedProducts(ctx context.Context, seeds []ProductSeed, report *SeedReport) error {
	if len(seeds) == 0 {
		return nil
	}

	codes := make([]string, 0, len(seeds))
	for _, seed := range seeds {
		codes = append(codes, seed.Code)
	}
	existing, err := s.productRepo.FindByCodes(ctx, codes)
	if err != nil {
		return fmt.Errorf("failed to check products: %w", err)
	}
	known := make(map[string]struct{}, len(existing))
	for _, p := range existing {
		known[p.Code] = struct{}{}
	}

	for _, seed := range seeds {
		if _, ok := known[seed.Code]; ok {
			report.ProductsSkipped++
			continue
		}
		product, err := catalog.NewProduct(seed.Code, seed.Name)
		if err != nil {
			return fmt.Errorf("product %q: %w", seed.Code, err)
		}
		if err := s.productRepo.Save(ctx, product); err != nil {
			return fmt.Errorf("failed to save product %q: %w", seed.Code, err)
		}
		known[seed.Code] = struct{}{}
		report.ProductsCreated++
	}
	return nil
}
