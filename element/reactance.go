package element

// ImpedanceAt 电容/电感在频率 f (Hz) 下的阻抗
// f 为 0 或负数时不做保护，按浮点规则得到无穷大或反号的电抗
func (q Quantity) ImpedanceAt(frequency float64) (Quantity, error) {
	config := q.typ.Config()
	if config == nil || config.Reactance == nil {
		return Quantity{}, operatorError(OpReactance, q.typ, NumberType)
	}
	return Quantity{value: config.Reactance(q.value, frequency), typ: ImpedanceType}, nil
}

// ImpedanceOf 任意可作为阻抗的量在频率 f 下的阻抗
// 阻抗与电阻原样返回
func ImpedanceOf(q Quantity, frequency float64) (Quantity, error) {
	if q.typ.Family() == ImpedanceType {
		return q, nil
	}
	return q.ImpedanceAt(frequency)
}
