package element

import "math"

// InductanceType 电感，单位 H
const InductanceType Type = 4

func init() {
	mustRegister(InductanceType, &Config{
		Name:      "Inductance",
		Symbol:    "L",
		Unit:      "H",
		Reactance: inductiveReactance,
		Parallel:  CombineReciprocal,
		Series:    CombineSum,
	})
	addUniformRules(InductanceType)
}

// inductiveReactance Z = j·2πfL
func inductiveReactance(l complex128, f float64) complex128 {
	if imag(l) == 0 {
		return complex(0, 2.0*math.Pi*f*real(l))
	}
	return complex(0, 2.0*math.Pi*f) * l
}

// NewInductance 构造电感
func NewInductance(v any) (Quantity, error) { return New(InductanceType, v) }
