// internal/deck/prng.go
package deck

import (
	"math/rand"
	"time"
)

// PRNGService wraps a seeded generator so card draws are reproducible.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService seeds a generator. A seed of 0 uses the current time.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{rng: rand.New(rand.NewSource(seed))}
}

// Intn returns an int in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// ChooseWeighted picks an index with probability proportional to its
// weight. Non-positive totals fall back to index 0.
func (s *PRNGService) ChooseWeighted(weights []int) int {
	if len(weights) == 0 {
		return -1
	}
	total := 0
	for _, w := range weights {
		total += max(w, 0)
	}
	if total <= 0 {
		return 0
	}

	r := s.Intn(total)
	upto := 0
	for i, w := range weights {
		upto += max(w, 0)
		if r < upto {
			return i
		}
	}
	return len(weights) - 1
}
