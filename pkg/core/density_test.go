package core

import "testing"

func TestDensityValue(t *testing.T) {
	d := NewDensity(0.25)

	if d.IsDelta() {
		t.Error("regular density reports IsDelta")
	}
	if d.Value() != 0.25 {
		t.Errorf("Value() = %v, want 0.25", d.Value())
	}
}

func TestDeltaDensity(t *testing.T) {
	d := DeltaDensity()

	if !d.IsDelta() {
		t.Error("delta density does not report IsDelta")
	}

	defer func() {
		if recover() == nil {
			t.Error("Value() on a delta density did not panic")
		}
	}()
	d.Value()
}

func TestScatteringModeMask(t *testing.T) {
	tests := []struct {
		name string
		mask ScatteringMode
		mode ScatteringMode
		want bool
	}{
		{"all includes diffuse", ScatterAll, ScatterDiffuse, true},
		{"all includes glossy", ScatterAll, ScatterGlossy, true},
		{"all includes specular", ScatterAll, ScatterSpecular, true},
		{"diffuse excludes specular", ScatterDiffuse, ScatterSpecular, false},
		{"none excludes diffuse", ScatterNone, ScatterDiffuse, false},
		{"combined mask", ScatterDiffuse | ScatterGlossy, ScatterGlossy, true},
		{"combined mask excludes", ScatterDiffuse | ScatterGlossy, ScatterSpecular, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mask.Has(tt.mode); got != tt.want {
				t.Errorf("mask %b Has(%b) = %v, want %v", tt.mask, tt.mode, got, tt.want)
			}
		})
	}
}
