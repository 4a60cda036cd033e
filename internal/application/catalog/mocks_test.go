package catalog

import (
	"context"
	"errors"

	"github.com/erp/customeroptions/internal/domain/catalog"
	"github.com/erp/customeroptions/internal/domain/shared"
	"github.com/stretchr/testify/mock"
)

// MockCustomerOptionRepository is a mock implementation of CustomerOptionRepository
type MockCustomerOptionRepository struct {
	mock.Mock
}

func (m *MockCustomerOptionRepository) FindAll(ctx context.Context) ([]*catalog.CustomerOption, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.CustomerOption), args.Error(1)
}

func (m *MockCustomerOptionRepository) FindOneByCode(ctx context.Context, code string) (*catalog.CustomerOption, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.CustomerOption), args.Error(1)
}

func (m *MockCustomerOptionRepository) Save(ctx context.Context, option *catalog.CustomerOption) error {
	args := m.Called(ctx, option)
	return args.Error(0)
}

// MockProductRepository is a mock implementation of ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindAll(ctx context.Context) ([]catalog.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByCodes(ctx context.Context, codes []string) ([]catalog.Product, error) {
	args := m.Called(ctx, codes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

// MockOptionGroupRepository is a mock implementation of OptionGroupRepository
type MockOptionGroupRepository struct {
	mock.Mock
}

func (m *MockOptionGroupRepository) Save(ctx context.Context, group *catalog.OptionGroup) error {
	args := m.Called(ctx, group)
	return args.Error(0)
}

func (m *MockOptionGroupRepository) FindByCode(ctx context.Context, code string) (*catalog.OptionGroup, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.OptionGroup), args.Error(1)
}

func (m *MockOptionGroupRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

// memoryOptionRepo is an in-memory CustomerOptionRepository
type memoryOptionRepo struct {
	options []*catalog.CustomerOption
	saved   []*catalog.CustomerOption
}

func (r *memoryOptionRepo) FindAll(ctx context.Context) ([]*catalog.CustomerOption, error) {
	return r.options, nil
}

func (r *memoryOptionRepo) FindOneByCode(ctx context.Context, code string) (*catalog.CustomerOption, error) {
	for _, o := range r.options {
		if o.Code == code {
			return o, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memoryOptionRepo) Save(ctx context.Context, option *catalog.CustomerOption) error {
	r.options = append(r.options, option)
	r.saved = append(r.saved, option)
	return nil
}

// memoryProductRepo is an in-memory ProductRepository
type memoryProductRepo struct {
	products []catalog.Product
	saved    []*catalog.Product
}

func (r *memoryProductRepo) FindAll(ctx context.Context) ([]catalog.Product, error) {
	return r.products, nil
}

func (r *memoryProductRepo) FindByCodes(ctx context.Context, codes []string) ([]catalog.Product, error) {
	found := []catalog.Product{}
	for _, p := range r.products {
		for _, c := range codes {
			if p.Code == c {
				found = append(found, p)
				break
			}
		}
	}
	return found, nil
}

func (r *memoryProductRepo) Save(ctx context.Context, product *catalog.Product) error {
	r.products = append(r.products, *product)
	r.saved = append(r.saved, product)
	return nil
}

// stubRandom is a predictable RandomSource
type stubRandom struct {
	next     int
	words    []string
	wordsErr error
}

func (s *stubRandom) UUID() string {
	s.next++
	return "code-" + string(rune('a'+s.next-1))
}

func (s *stubRandom) UniqueWords(n int) ([]string, error) {
	if s.wordsErr != nil {
		return nil, s.wordsErr
	}
	if n > len(s.words) {
		return nil, errors.New("not enough words")
	}
	return s.words[:n], nil
}

func (s *stubRandom) RandomSubset(items []string) []string {
	return items
}

func newTestOption(code string) *catalog.CustomerOption {
	option, err := catalog.NewCustomerOption(code, "Option "+code, catalog.CustomerOptionTypeSelect)
	if err != nil {
		panic(err)
	}
	return option
}

func newTestProduct(code string) catalog.Product {
	product, err := catalog.NewProduct(code, "Product "+code)
	if err != nil {
		panic(err)
	}
	return *product
}
