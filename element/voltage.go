package element

// VoltageType 电压，单位 V
const VoltageType Type = 5

func init() {
	mustRegister(VoltageType, &Config{
		Name:   "Voltage",
		Symbol: "V",
		Unit:   "V",
	})
	addUniformRules(VoltageType)
	// 欧姆定律
	AddRule(OpDiv, VoltageType, ImpedanceType, CurrentType)
	AddRule(OpDiv, VoltageType, CurrentType, ImpedanceType)
}

// NewVoltage 构造电压
func NewVoltage(v any) (Quantity, error) { return New(VoltageType, v) }
