package renderer

import (
	"fmt"
	"time"

	"github.com/calder-r/go-light-tracer/pkg/lighting"
)

// RenderStats aggregates the statistics of a render
type RenderStats struct {
	PathsTraced      uint64
	SamplesGenerated uint64
	Elapsed          time.Duration
	Generator        lighting.GeneratorStats
}

// Merge folds another set of statistics into this one
func (s *RenderStats) Merge(other RenderStats) {
	s.PathsTraced += other.PathsTraced
	s.SamplesGenerated += other.SamplesGenerated
	s.Generator.Merge(other.Generator)
}

// String formats the statistics for logging
func (s RenderStats) String() string {
	pl := s.Generator.PathLength
	return fmt.Sprintf(
		"traced %d light paths in %v (%d image samples, path length avg %.2f min %.0f max %.0f)",
		s.PathsTraced,
		s.Elapsed.Round(time.Millisecond),
		s.SamplesGenerated,
		pl.Mean(),
		pl.Min(),
		pl.Max())
}
