package element

import "math"

// CapacitanceType 电容，单位 F
const CapacitanceType Type = 3

func init() {
	mustRegister(CapacitanceType, &Config{
		Name:      "Capacitance",
		Symbol:    "C",
		Unit:      "F",
		Reactance: capacitiveReactance,
		Parallel:  CombineSum,
		Series:    CombineReciprocal,
	})
	addUniformRules(CapacitanceType)
}

// capacitiveReactance Z = -j/(2πfC)
func capacitiveReactance(c complex128, f float64) complex128 {
	if imag(c) == 0 {
		return complex(0, -1/(2.0*math.Pi*f*real(c)))
	}
	return complex(0, -1) / (complex(2.0*math.Pi*f, 0) * c)
}

// NewCapacitance 构造电容
func NewCapacitance(v any) (Quantity, error) { return New(CapacitanceType, v) }
