package catalog

import (
	"math/rand/v2"
	"sync"
	"time"
)

const (
	// MinDownloads is the lowest placeholder download count
	MinDownloads = 100
	// DownloadsSpan is the width of the placeholder download range
	DownloadsSpan = 10000
	// FeaturedThreshold is the draw above which a plugin is marked featured
	FeaturedThreshold = 0.7
)

// Scorer supplies the placeholder popularity fields of a Plugin.
// The manifest carries no real download counts or curation flags.
type Scorer interface {
	Downloads(raw RawRecord) int
	Featured(raw RawRecord) bool
}

// RandomScorer draws placeholder values from a pseudo-random source.
// Downloads fall in [100, 10100) and roughly 30% of plugins are featured.
type RandomScorer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomScorer creates a scorer seeded from the current time
func NewRandomScorer() *RandomScorer {
	now := uint64(time.Now().UnixNano())
	return NewSeededScorer(now)
}

// NewSeededScorer creates a scorer whose sequence is fixed by seed
func NewSeededScorer(seed uint64) *RandomScorer {
	return &RandomScorer{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Downloads returns a placeholder download count
func (s *RandomScorer) Downloads(RawRecord) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(DownloadsSpan) + MinDownloads
}

// Featured returns a placeholder featured flag
func (s *RandomScorer) Featured(RawRecord) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64() > FeaturedThreshold
}

// FixedScorer returns the same values for every record
type FixedScorer struct {
	DownloadCount int
	IsFeatured    bool
}

// Downloads returns the fixed download count
func (s FixedScorer) Downloads(RawRecord) int {
	return s.DownloadCount
}

// Featured returns the fixed featured flag
func (s FixedScorer) Featured(RawRecord) bool {
	return s.IsFeatured
}
