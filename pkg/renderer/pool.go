package renderer

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/calder-r/go-light-tracer/pkg/core"
	"github.com/calder-r/go-light-tracer/pkg/lighting"
)

// GeneratorFactory builds one sample generator per worker. The index and
// count let a generator derive a decorrelated state per worker if it
// needs one; sequence partitioning itself is handled by the pool.
type GeneratorFactory func(generatorIndex, generatorCount int) *lighting.LightTracingSampleGenerator

// GeneratorPool runs sample generators across a fixed set of workers.
// Worker i traces the path sequences i, i+n, i+2n, ... so the set of
// sequences traced for a given path count is independent of scheduling,
// which keeps renders reproducible for any worker count.
type GeneratorPool struct {
	factory GeneratorFactory
	workers int
	queue   *SampleQueue
}

// NewGeneratorPool creates a pool. A non-positive worker count uses one
// worker per CPU.
func NewGeneratorPool(factory GeneratorFactory, workers int, queue *SampleQueue) *GeneratorPool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &GeneratorPool{
		factory: factory,
		workers: workers,
		queue:   queue,
	}
}

// Workers returns the number of workers in the pool
func (p *GeneratorPool) Workers() int {
	return p.workers
}

// Run traces pathCount light paths across the pool's workers, pushing
// the generated samples into the queue. It blocks until all paths are
// traced or the context is cancelled, and returns the merged statistics.
func (p *GeneratorPool) Run(ctx context.Context, pathCount uint64) (RenderStats, error) {
	start := time.Now()

	var wg sync.WaitGroup
	var mu sync.Mutex
	var stats RenderStats

	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func(workerIndex int) {
			defer wg.Done()

			generator := p.factory(workerIndex, p.workers)
			buffer := make([]core.ImageSample, 0, 64)

			local := RenderStats{}
			for seq := uint64(workerIndex); seq < pathCount; seq += uint64(p.workers) {
				select {
				case <-ctx.Done():
					mergeStats(&mu, &stats, &local, generator)
					return
				default:
				}

				buffer = buffer[:0]
				n := generator.GenerateSamples(seq, &buffer)

				p.queue.AddSamples(buffer)
				local.PathsTraced++
				local.SamplesGenerated += uint64(n)
			}

			mergeStats(&mu, &stats, &local, generator)
		}(i)
	}

	wg.Wait()
	stats.Elapsed = time.Since(start)

	return stats, ctx.Err()
}

func mergeStats(mu *sync.Mutex, total, local *RenderStats, generator *lighting.LightTracingSampleGenerator) {
	local.Generator = generator.Stats()
	mu.Lock()
	total.Merge(*local)
	mu.Unlock()
}
