package trends

import (
	"fmt"
	"math/rand"
)

// staticTrends is a pool of recurring topics used to exercise
// deduplication paths during local runs.
var staticTrends = []string{
	"AI is taking over! | peaking",
	"Python 4.0 released? | emerging",
	"New framework drops | emerging",
	"Tabs vs Spaces debate heating up | declining",
	"Coffee prices skyrocket | peaking",
	"Rust is the future | emerging",
	"Vim vs Emacs eternal war | declining",
}

var lifecycleStates = []string{"emerging", "peaking", "declining"}

// MockSource simulates a noisy trend stream: mostly repeats from a static
// pool, with occasional brand-new topics mixed in.
type MockSource struct {
	rng     *rand.Rand
	counter int
}

func NewMockSource(seed int64) *MockSource {
	return &MockSource{rng: rand.New(rand.NewSource(seed))}
}

func (m *MockSource) Name() string { return "mock" }

// FetchTrends returns 1-3 trends, ~70% duplicates from the static pool.
func (m *MockSource) FetchTrends() ([]string, error) {
	n := m.rng.Intn(3) + 1
	results := make([]string, 0, n)
	for i := 0; i < n; i++ {
		if m.rng.Float64() < 0.7 {
			results = append(results, staticTrends[m.rng.Intn(len(staticTrends))])
		} else {
			m.counter++
			state := lifecycleStates[m.rng.Intn(len(lifecycleStates))]
			results = append(results, fmt.Sprintf("Viral Topic #%d [%06x] | %s", m.counter, m.rng.Intn(1<<24), state))
		}
	}
	return results, nil
}
