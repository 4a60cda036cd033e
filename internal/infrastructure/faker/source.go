// Package faker provides the random data source used to generate demo
// catalog fixtures.
package faker

import (
	"errors"
	"fmt"

	"github.com/brianvoe/gofakeit/v7"
)

// DefaultMaxRetries is how many draws a unique value may take before the
// source gives up.
const DefaultMaxRetries = 10000

// ErrUniqueExhausted is returned when no new unique value could be drawn
var ErrUniqueExhausted = errors.New("unique value source exhausted")

// Source generates random identifiers, unique words and random subsets
// using the gofakeit library. It is not safe for concurrent use.
type Source struct {
	faker      *gofakeit.Faker
	maxRetries int
	wordFn     func(*gofakeit.Faker) string
	seen       map[string]struct{}
}

// Option configures a Source
type Option func(*Source)

// WithMaxRetries sets the retry budget for each unique value
func WithMaxRetries(n int) Option {
	return func(s *Source) {
		if n > 0 {
			s.maxRetries = n
		}
	}
}

// WithWordFunc replaces the word generator
func WithWordFunc(fn func(*gofakeit.Faker) string) Option {
	return func(s *Source) {
		if fn != nil {
			s.wordFn = fn
		}
	}
}

// New creates a new Source. A seed of 0 draws a random seed.
func New(seed uint64, opts ...Option) *Source {
	s := &Source{
		faker:      gofakeit.New(seed),
		maxRetries: DefaultMaxRetries,
		wordFn:     func(f *gofakeit.Faker) string { return f.Word() },
		seen:       make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// UUID returns a random UUID string
func (s *Source) UUID() string {
	return s.faker.UUID()
}

// UniqueWords returns n words that were never returned by this source before.
// Uniqueness holds across calls until Reset.
func (s *Source) UniqueWords(n int) ([]string, error) {
	if n < 0 {
		return nil, fmt.Errorf("word count cannot be negative: %d", n)
	}

	words := make([]string, 0, n)
	for i := 0; i < n; i++ {
		word, err := s.uniqueWord()
		if err != nil {
			return nil, fmt.Errorf("generating word %d of %d: %w", i+1, n, err)
		}
		words = append(words, word)
	}
	return words, nil
}

func (s *Source) uniqueWord() (string, error) {
	for attempt := 0; attempt < s.maxRetries; attempt++ {
		word := s.wordFn(s.faker)
		if _, dup := s.seen[word]; dup {
			continue
		}
		s.seen[word] = struct{}{}
		return word, nil
	}
	return "", fmt.Errorf("%w: no new word after %d attempts", ErrUniqueExhausted, s.maxRetries)
}

// Reset forgets every unique value returned so far
func (s *Source) Reset() {
	s.seen = make(map[string]struct{})
}

// RandomSubset returns between 1 and len(items) distinct elements of items
// in random order. An empty input yields an empty result.
func (s *Source) RandomSubset(items []string) []string {
	if len(items) == 0 {
		return []string{}
	}

	shuffled := make([]string, len(items))
	copy(shuffled, items)
	s.faker.ShuffleStrings(shuffled)

	count := s.faker.Number(1, len(items))
	return shuffled[:count]
}
