// Package numberpool generates unique zero-padded ticket numbers within a
// bounded range. The random source is injected so callers can use a seeded
// generator in tests.
package numberpool

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"
)

// Width is the fixed width of a formatted ticket number.
const Width = 5

var ErrCapacityExceeded = errors.New("not enough numbers available in range")

type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func New(rnd *rand.Rand) *Generator {
	return &Generator{rnd: rnd}
}

func NewSeeded() *Generator {
	return New(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// Format renders n as a zero-padded ticket number string.
func Format(n int) string {
	return fmt.Sprintf("%0*d", Width, n)
}

// ExcludeSet builds an exclusion set from one or more number lists.
func ExcludeSet(lists ...[]string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, list := range lists {
		for _, n := range list {
			set[n] = struct{}{}
		}
	}
	return set
}

// Generate returns count distinct numbers drawn uniformly from [1, maxValue]
// minus the excluded ones, sorted ascending. It never loops on a shrinking
// space: the feasible set is enumerated up front and sampled with a partial
// Fisher-Yates shuffle, so the call terminates even when count is close to
// the remaining capacity.
func (g *Generator) Generate(count, maxValue int, exclude map[string]struct{}) ([]string, error) {
	if count < 0 {
		return nil, fmt.Errorf("invalid count %d", count)
	}
	if maxValue < 1 {
		return nil, fmt.Errorf("invalid max value %d", maxValue)
	}
	if count == 0 {
		return []string{}, nil
	}

	available := make([]string, 0, maxValue)
	for n := 1; n <= maxValue; n++ {
		formatted := Format(n)
		if _, taken := exclude[formatted]; !taken {
			available = append(available, formatted)
		}
	}
	if count > len(available) {
		return nil, ErrCapacityExceeded
	}

	// rand.Rand is not safe for concurrent use; allocations for different
	// activities may run in parallel.
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := 0; i < count; i++ {
		j := i + g.rnd.Intn(len(available)-i)
		available[i], available[j] = available[j], available[i]
	}
	picked := available[:count]
	sort.Strings(picked)

	return picked, nil
}
