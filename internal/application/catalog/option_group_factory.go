package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/erp/customeroptions/internal/domain/catalog"
	"github.com/erp/customeroptions/internal/domain/shared"
	"github.com/erp/customeroptions/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// DefaultLocale is the locale generated option groups are named in
const DefaultLocale = "en_US"

const generatedNameFormat = `CustomerOptionGroup "%s"`

// RandomSource supplies the random data for generated option groups
type RandomSource interface {
	// UUID returns a fresh random identifier
	UUID() string
	// UniqueWords returns n words never returned before, or an error when
	// the source cannot produce enough distinct words
	UniqueWords(n int) ([]string, error)
	// RandomSubset returns a non-empty random selection of items
	// (empty only when items is empty)
	RandomSubset(items []string) []string
}

// GenerationFailure records one generated option group that could not be built
type GenerationFailure struct {
	Index int
	Code  string
	Err   error
}

// Error implements the error interface
func (f GenerationFailure) Error() string {
	return fmt.Sprintf("option group #%d (%s): %v", f.Index, f.Code, f.Err)
}

// Unwrap returns the underlying build error
func (f GenerationFailure) Unwrap() error {
	return f.Err
}

// GenerateResult is the best-effort outcome of GenerateRandom.
// Every requested group ends up in exactly one of Groups or Failures.
type GenerateResult struct {
	Requested int
	Groups    []*catalog.OptionGroup
	Failures  []GenerationFailure
}

// Skipped returns how many requested groups were not built
func (r *GenerateResult) Skipped() int {
	return len(r.Failures)
}

// OptionGroupFactory builds customer option groups from configs, or
// generates random ones for demo data
type OptionGroupFactory struct {
	optionRepo  catalog.CustomerOptionRepository
	productRepo catalog.ProductRepository
	random      RandomSource
	logger      *zap.Logger
	locale      string
}

// FactoryOption configures an OptionGroupFactory
type FactoryOption func(*OptionGroupFactory)

// WithLocale sets the locale generated groups are named in
func WithLocale(locale string) FactoryOption {
	return func(f *OptionGroupFactory) {
		if locale != "" {
			f.locale = locale
		}
	}
}

// NewOptionGroupFactory creates a new OptionGroupFactory
func NewOptionGroupFactory(
	optionRepo catalog.CustomerOptionRepository,
	productRepo catalog.ProductRepository,
	random RandomSource,
	logger *zap.Logger,
	opts ...FactoryOption,
) *OptionGroupFactory {
	if logger == nil {
		logger = zap.NewNop()
	}
	f := &OptionGroupFactory{
		optionRepo:  optionRepo,
		productRepo: productRepo,
		random:      random,
		logger:      logger.Named("option_group_factory"),
		locale:      DefaultLocale,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CreateNew returns a bare option group with no fields set
func (f *OptionGroupFactory) CreateNew() *catalog.OptionGroup {
	return catalog.NewOptionGroup()
}

// CreateFromConfig merges cfg onto the prototype, validates it and builds a
// new option group.
//
// Option codes that do not exist are skipped and product codes that do not
// exist are absent from the result; neither is an error. Other repository
// errors are returned, and no group is returned unless it is complete.
func (f *OptionGroupFactory) CreateFromConfig(ctx context.Context, cfg OptionGroupConfig) (*catalog.OptionGroup, error) {
	cfg = cfg.MergeDefaults()
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	group := f.CreateNew()
	if cfg.Code != nil {
		group.SetCode(*cfg.Code)
	}

	for _, locale := range cfg.SortedLocales() {
		group.SetName(locale, cfg.Translations[locale])
	}

	for _, code := range cfg.Options {
		option, err := f.optionRepo.FindOneByCode(ctx, code)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				continue
			}
			detachOptions(group)
			return nil, fmt.Errorf("failed to find customer option %q: %w", code, err)
		}
		if option == nil {
			continue
		}

		assoc := catalog.NewOptionAssociation()
		option.AddGroupAssociation(assoc)
		group.AddOptionAssociation(assoc)
	}

	products := []catalog.Product{}
	if len(cfg.Products) > 0 {
		found, err := f.productRepo.FindByCodes(ctx, cfg.Products)
		if err != nil {
			detachOptions(group)
			return nil, fmt.Errorf("failed to find products: %w", err)
		}
		products = found
	}
	group.SetProducts(products)

	return group, nil
}

// detachOptions removes the back-references a half-built group left on its options
func detachOptions(group *catalog.OptionGroup) {
	for len(group.OptionAssociations) > 0 {
		group.RemoveOptionAssociation(group.OptionAssociations[0])
	}
}

// GenerateRandom builds amount option groups with random codes and names,
// each linked to a random subset of the existing options and products.
//
// Groups that fail to build are logged, reported in the result and left out.
// Only a negative amount, a failed catalog snapshot or running out of unique
// names is returned as an error.
func (f *OptionGroupFactory) GenerateRandom(ctx context.Context, amount int) (*GenerateResult, error) {
	if amount < 0 {
		return nil, NewConfigurationError("amount", fmt.Sprintf("Amount cannot be negative, got %d", amount))
	}

	optionCodes, err := f.optionCodes(ctx)
	if err != nil {
		return nil, err
	}
	productCodes, err := f.productCodes(ctx)
	if err != nil {
		return nil, err
	}

	names, err := f.random.UniqueWords(amount)
	if err != nil {
		return nil, fmt.Errorf("failed to generate option group names: %w", err)
	}

	log := logger.WithLogger(ctx, f.logger)
	result := &GenerateResult{
		Requested: amount,
		Groups:    make([]*catalog.OptionGroup, 0, amount),
	}

	for i := 0; i < amount; i++ {
		code := f.random.UUID()
		cfg := OptionGroupConfig{
			Code: &code,
			Translations: map[string]string{
				f.locale: fmt.Sprintf(generatedNameFormat, names[i]),
			},
		}
		if len(optionCodes) > 0 {
			cfg.Options = f.random.RandomSubset(optionCodes)
		}
		if len(productCodes) > 0 {
			cfg.Products = f.random.RandomSubset(productCodes)
		}

		group, err := f.CreateFromConfig(ctx, cfg)
		if err != nil {
			log.Warn("skipping generated option group",
				zap.Int("index", i),
				zap.String("code", code),
				zap.Error(err),
			)
			result.Failures = append(result.Failures, GenerationFailure{Index: i, Code: code, Err: err})
			continue
		}
		result.Groups = append(result.Groups, group)
	}

	log.Info("generated option groups",
		zap.Int("requested", amount),
		zap.Int("built", len(result.Groups)),
		zap.Int("skipped", result.Skipped()),
	)

	return result, nil
}

func (f *OptionGroupFactory) optionCodes(ctx context.Context) ([]string, error) {
	options, err := f.optionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list customer options: %w", err)
	}
	codes := make([]string, 0, len(options))
	for _, o := range options {
		codes = append(codes, o.Code)
	}
	return codes, nil
}

func (f *OptionGroupFactory) productCodes(ctx context.Context) ([]string, error) {
	products, err := f.productRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return catalog.ProductCodes(products), nil
}
