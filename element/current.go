package element

// CurrentType 电流，单位 A
const CurrentType Type = 6

func init() {
	mustRegister(CurrentType, &Config{
		Name:   "Current",
		Symbol: "I",
		Unit:   "A",
	})
	addUniformRules(CurrentType)
	AddRule(OpMul, CurrentType, ImpedanceType, VoltageType)
	AddRule(OpMul, ImpedanceType, CurrentType, VoltageType)
}

// NewCurrent 构造电流
func NewCurrent(v any) (Quantity, error) { return New(CurrentType, v) }
