package element

// ImpedanceType 阻抗，单位 Ohm
const ImpedanceType Type = 1

func init() {
	mustRegister(ImpedanceType, &Config{
		Name:     "Impedance",
		Symbol:   "Z",
		Unit:     "Ohm",
		Parallel: CombineReciprocal,
		Series:   CombineSum,
	})
	addUniformRules(ImpedanceType)
}

// NewImpedance 构造阻抗
func NewImpedance(v any) (Quantity, error) { return New(ImpedanceType, v) }
