package analysis

import (
	"sync"
	"time"

	"github.com/philipparndt/gobox/pkg/geometry"
	"github.com/philipparndt/gobox/pkg/hull"
	"github.com/philipparndt/gobox/pkg/obb"
)

// StrategyResult is the outcome of one box strategy
type StrategyResult struct {
	Strategy obb.Strategy
	Box      geometry.Box
	Volume   float64
	// Ratio is the volume relative to the axis-aligned box
	Ratio   float64
	Elapsed time.Duration
	Err     error
}

// Compare runs the strategies concurrently on the same hull. The hull is
// only read; every run keeps its own scratch state. Results follow the
// order of strategies.
func Compare(h *hull.Hull3, strategies []obb.Strategy, opts ...obb.Option) []StrategyResult {
	if len(strategies) == 0 {
		strategies = obb.Strategies()
	}
	results := make([]StrategyResult, len(strategies))

	h = hull.Trim3(h)

	var wg sync.WaitGroup
	for i, s := range strategies {
		wg.Add(1)
		go func() {
			defer wg.Done()
			start := time.Now()
			box, err := obb.MinVolumeBox(h, s, opts...)
			results[i] = StrategyResult{
				Strategy: s,
				Box:      box,
				Volume:   box.Volume(),
				Elapsed:  time.Since(start),
				Err:      err,
			}
		}()
	}
	wg.Wait()

	reference := 0.0
	if !h.Empty() {
		reference = geometry.BoundingBoxOf(h.VertexPoints()).Volume()
	}
	for i := range results {
		if results[i].Err == nil && reference > 0 {
			results[i].Ratio = results[i].Volume / reference
		}
	}
	return results
}

// Best returns the successful result with the smallest volume
func Best(results []StrategyResult) (StrategyResult, bool) {
	var best StrategyResult
	found := false
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		if !found || r.Volume < best.Volume {
			best, found = r, true
		}
	}
	return best, found
}
