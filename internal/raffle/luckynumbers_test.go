package raffle

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/rifas-ec/rifas/internal/domain"
	"github.com/rifas-ec/rifas/pkg/numberpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateLuckyNumbers(t *testing.T) {
	gen := numberpool.New(rand.New(rand.NewSource(11)))
	activity := &domain.Activity{ID: 1, TotalTickets: 100, LuckyCount: 5}

	numbers, err := GenerateLuckyNumbers(gen, activity)
	require.NoError(t, err)
	assert.Len(t, numbers, 5)
	assert.Equal(t, numbers, activity.LuckyNumbers)
	assert.True(t, sort.StringsAreSorted(numbers))

	seen := make(map[string]struct{})
	for _, n := range numbers {
		_, dup := seen[n]
		assert.False(t, dup)
		seen[n] = struct{}{}
		assert.GreaterOrEqual(t, n, numberpool.Format(1))
		assert.LessOrEqual(t, n, numberpool.Format(100))
	}
}

func TestGenerateLuckyNumbersOverwritesPreviousSet(t *testing.T) {
	gen := numberpool.New(rand.New(rand.NewSource(12)))
	activity := &domain.Activity{ID: 1, TotalTickets: 50, LuckyCount: 3, LuckyNumbers: []string{"00001", "00002"}}

	numbers, err := GenerateLuckyNumbers(gen, activity)
	require.NoError(t, err)
	assert.Len(t, activity.LuckyNumbers, 3)
	assert.Equal(t, numbers, activity.LuckyNumbers)
}

func TestGenerateLuckyNumbersCountOverRange(t *testing.T) {
	gen := numberpool.New(rand.New(rand.NewSource(13)))
	activity := &domain.Activity{ID: 1, TotalTickets: 3, LuckyCount: 4}

	_, err := GenerateLuckyNumbers(gen, activity)
	assert.ErrorIs(t, err, numberpool.ErrCapacityExceeded)
}
