package core

import (
	"math"
	"testing"
)

func TestSpectrumArithmetic(t *testing.T) {
	a := NewSpectrum(0.1, 0.2, 0.3)
	b := NewSpectrum(0.4, 0.5, 0.6)

	sum := a.Add(b)
	if sum.R != 0.5 || sum.G != 0.7 || sum.B != 0.9 {
		t.Errorf("Add = %v", sum)
	}

	scaled := a.Scale(2)
	if scaled.R != 0.2 || scaled.G != 0.4 || scaled.B != 0.6 {
		t.Errorf("Scale = %v", scaled)
	}

	prod := a.Mul(b)
	if math.Abs(prod.G-0.1) > 1e-15 {
		t.Errorf("Mul = %v", prod)
	}
}

func TestSpectrumMaxComponent(t *testing.T) {
	if got := NewSpectrum(0.2, 0.9, 0.5).MaxComponent(); got != 0.9 {
		t.Errorf("MaxComponent = %v, want 0.9", got)
	}
}

func TestSpectrumIsBlack(t *testing.T) {
	if !(Spectrum{}).IsBlack() {
		t.Error("zero spectrum is not black")
	}
	if NewSpectrum(0, 0, 1e-9).IsBlack() {
		t.Error("nonzero spectrum reported black")
	}
}

func TestSpectrumIsFinite(t *testing.T) {
	if !NewSpectrum(1, 2, 3).IsFinite() {
		t.Error("finite spectrum reported non-finite")
	}
	if NewSpectrum(1, math.NaN(), 3).IsFinite() {
		t.Error("NaN spectrum reported finite")
	}
	if NewSpectrum(math.Inf(1), 0, 0).IsFinite() {
		t.Error("infinite spectrum reported finite")
	}
}

func TestWhiteSpectrumIsIdentity(t *testing.T) {
	a := NewSpectrum(0.3, 0.6, 0.9)
	if got := a.Mul(WhiteSpectrum()); got != a {
		t.Errorf("Mul(white) = %v, want %v", got, a)
	}
}
