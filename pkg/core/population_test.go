package core

import (
	"math"
	"testing"
)

func TestPopulationEmpty(t *testing.T) {
	var p Population

	if p.Count() != 0 || p.Mean() != 0 || p.Variance() != 0 {
		t.Errorf("empty population: count=%d mean=%v variance=%v, want zeros", p.Count(), p.Mean(), p.Variance())
	}
}

func TestPopulationStatistics(t *testing.T) {
	var p Population
	for _, v := range []float64{2, 4, 4, 4, 5, 5, 7, 9} {
		p.Insert(v)
	}

	if p.Count() != 8 {
		t.Errorf("Count() = %d, want 8", p.Count())
	}
	if p.Mean() != 5 {
		t.Errorf("Mean() = %v, want 5", p.Mean())
	}
	if p.Variance() != 4 {
		t.Errorf("Variance() = %v, want 4", p.Variance())
	}
	if p.Deviation() != 2 {
		t.Errorf("Deviation() = %v, want 2", p.Deviation())
	}
	if p.Min() != 2 || p.Max() != 9 {
		t.Errorf("Min()=%v Max()=%v, want 2 and 9", p.Min(), p.Max())
	}
}

func TestPopulationMerge(t *testing.T) {
	values := []float64{1, 3, 5, 7, 11, 13}

	var whole Population
	for _, v := range values {
		whole.Insert(v)
	}

	var a, b Population
	for i, v := range values {
		if i%2 == 0 {
			a.Insert(v)
		} else {
			b.Insert(v)
		}
	}
	a.Merge(b)

	if a.Count() != whole.Count() {
		t.Errorf("merged count = %d, want %d", a.Count(), whole.Count())
	}
	if math.Abs(a.Mean()-whole.Mean()) > 1e-12 {
		t.Errorf("merged mean = %v, want %v", a.Mean(), whole.Mean())
	}
	if math.Abs(a.Variance()-whole.Variance()) > 1e-12 {
		t.Errorf("merged variance = %v, want %v", a.Variance(), whole.Variance())
	}
	if a.Min() != whole.Min() || a.Max() != whole.Max() {
		t.Errorf("merged min/max = %v/%v, want %v/%v", a.Min(), a.Max(), whole.Min(), whole.Max())
	}
}

func TestPopulationMergeIntoEmpty(t *testing.T) {
	var a, b Population
	b.Insert(4)
	b.Insert(6)

	a.Merge(b)

	if a.Count() != 2 || a.Mean() != 5 {
		t.Errorf("merge into empty: count=%d mean=%v, want 2 and 5", a.Count(), a.Mean())
	}
}
