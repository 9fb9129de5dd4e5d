package element

// ResistanceType 电阻，属于阻抗族，只接受实数
const ResistanceType Type = 2

func init() {
	mustRegister(ResistanceType, &Config{
		Name:     "Resistance",
		Symbol:   "R",
		Unit:     "Ohm",
		Family:   ImpedanceType,
		Real:     true,
		Parallel: CombineReciprocal,
		Series:   CombineSum,
	})
}

// NewResistance 构造电阻
func NewResistance(v any) (Quantity, error) { return New(ResistanceType, v) }
