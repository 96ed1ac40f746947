package material

import "github.com/calder-r/go-light-tracer/pkg/core"

// DefaultShader evaluates per-surface alpha masks. A surface without an
// alpha map is fully opaque.
type DefaultShader struct {
	AlphaMap ScalarSource
}

func NewDefaultShader() *DefaultShader {
	return &DefaultShader{}
}

func NewAlphaMaskedShader(alphaMap ScalarSource) *DefaultShader {
	return &DefaultShader{AlphaMap: alphaMap}
}

// EvaluateAlphaMask implements core.SurfaceShader
func (s *DefaultShader) EvaluateAlphaMask(sctx *core.SamplingContext, tc core.TextureCache, sp *core.ShadingPoint) float64 {
	if s.AlphaMap == nil {
		return 1.0
	}
	alpha := s.AlphaMap.Evaluate(tc, sp.UV)
	if alpha < 0 {
		return 0
	}
	if alpha > 1 {
		return 1
	}
	return alpha
}
