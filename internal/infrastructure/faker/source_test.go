package faker

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource_UUID(t *testing.T) {
	s := New(0)

	first := s.UUID()
	second := s.UUID()

	_, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestSource_Seeded(t *testing.T) {
	a := New(42)
	b := New(42)

	assert.Equal(t, a.UUID(), b.UUID())

	wordsA, err := a.UniqueWords(5)
	require.NoError(t, err)
	wordsB, err := b.UniqueWords(5)
	require.NoError(t, err)
	assert.Equal(t, wordsA, wordsB)
}

func TestSource_UniqueWords(t *testing.T) {
	t.Run("returns distinct words", func(t *testing.T) {
		s := New(0)

		words, err := s.UniqueWords(50)
		require.NoError(t, err)
		require.Len(t, words, 50)

		seen := make(map[string]bool)
		for _, w := range words {
			assert.NotEmpty(t, w)
			assert.False(t, seen[w], "duplicate word %q", w)
			seen[w] = true
		}
	})

	t.Run("zero words", func(t *testing.T) {
		words, err := New(0).UniqueWords(0)
		require.NoError(t, err)
		assert.Empty(t, words)
	})

	t.Run("negative count", func(t *testing.T) {
		_, err := New(0).UniqueWords(-1)
		assert.Error(t, err)
	})

	t.Run("uniqueness spans calls", func(t *testing.T) {
		words := []string{"alpha", "beta", "alpha", "beta", "gamma"}
		i := 0
		s := New(0, WithWordFunc(func(*gofakeit.Faker) string {
			w := words[i%len(words)]
			i++
			return w
		}))

		first, err := s.UniqueWords(2)
		require.NoError(t, err)
		second, err := s.UniqueWords(1)
		require.NoError(t, err)

		assert.Equal(t, []string{"alpha", "beta"}, first)
		assert.Equal(t, []string{"gamma"}, second)
	})

	t.Run("exhaustion is an error", func(t *testing.T) {
		s := New(0,
			WithMaxRetries(5),
			WithWordFunc(func(*gofakeit.Faker) string { return "same" }),
		)

		_, err := s.UniqueWords(2)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUniqueExhausted)
	})

	t.Run("reset forgets seen words", func(t *testing.T) {
		s := New(0,
			WithMaxRetries(3),
			WithWordFunc(func(*gofakeit.Faker) string { return "same" }),
		)

		_, err := s.UniqueWords(1)
		require.NoError(t, err)

		s.Reset()
		words, err := s.UniqueWords(1)
		require.NoError(t, err)
		assert.Equal(t, []string{"same"}, words)
	})
}

func TestSource_RandomSubset(t *testing.T) {
	s := New(7)
	items := []string{"a", "b", "c", "d", "e"}

	for i := 0; i < 100; i++ {
		subset := s.RandomSubset(items)

		require.NotEmpty(t, subset)
		require.LessOrEqual(t, len(subset), len(items))

		seen := make(map[string]bool)
		for _, v := range subset {
			assert.Contains(t, items, v)
			assert.False(t, seen[v])
			seen[v] = true
		}
	}

	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, items, "input must not be reordered")
	assert.Empty(t, s.RandomSubset(nil))
	assert.Equal(t, []string{"x"}, s.RandomSubset([]string{"x"}))
}
