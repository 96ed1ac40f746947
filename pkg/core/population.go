package core

import "math"

// Population accumulates running statistics (count, mean, variance) over
// inserted values. Used for diagnostics such as path-length tracking.
type Population struct {
	count   uint64
	sum     float64
	sumSq   float64
	minimum float64
	maximum float64
}

// Insert adds a value to the population
func (p *Population) Insert(value float64) {
	if p.count == 0 {
		p.minimum = value
		p.maximum = value
	} else {
		p.minimum = math.Min(p.minimum, value)
		p.maximum = math.Max(p.maximum, value)
	}
	p.count++
	p.sum += value
	p.sumSq += value * value
}

// Count returns the number of inserted values
func (p *Population) Count() uint64 {
	return p.count
}

// Mean returns the population mean, zero when empty
func (p *Population) Mean() float64 {
	if p.count == 0 {
		return 0
	}
	return p.sum / float64(p.count)
}

// Variance returns the population variance, zero when empty
func (p *Population) Variance() float64 {
	if p.count == 0 {
		return 0
	}
	mean := p.Mean()
	return math.Max(0, p.sumSq/float64(p.count)-mean*mean)
}

// Deviation returns the population standard deviation
func (p *Population) Deviation() float64 {
	return math.Sqrt(p.Variance())
}

// Min returns the smallest inserted value, zero when empty
func (p *Population) Min() float64 {
	return p.minimum
}

// Max returns the largest inserted value, zero when empty
func (p *Population) Max() float64 {
	return p.maximum
}

// Merge folds another population into this one
func (p *Population) Merge(other Population) {
	if other.count == 0 {
		return
	}
	if p.count == 0 {
		*p = other
		return
	}
	p.count += other.count
	p.sum += other.sum
	p.sumSq += other.sumSq
	p.minimum = math.Min(p.minimum, other.minimum)
	p.maximum = math.Max(p.maximum, other.maximum)
}
