package core

// Multiple importance sampling heuristics for combining estimators.
// See Veach's thesis, chapter 9.

// MISBalance computes the balance heuristic weight for a sample drawn
// with density a, combined against a competing strategy with density b.
func MISBalance(a, b float64) float64 {
	return a / (a + b)
}

// MISPower2 computes the power heuristic weight with exponent 2:
// a² / (a² + b²). For any positive a and b,
// MISPower2(a, b) + MISPower2(b, a) == 1.
func MISPower2(a, b float64) float64 {
	a2 := a * a
	return a2 / (a2 + b*b)
}
