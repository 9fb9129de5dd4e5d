package element

import (
	"math"
	"math/cmplx"

	"rlc/maths"
	"rlc/utils"
)

// degree 弧度转角度
const degree = 180 / math.Pi

// String 例如 "100.0 Ohm"、"(100+200j) Ohm"
func (q Quantity) String() string {
	if imag(q.value) == 0 {
		return utils.FormatFloat(real(q.value)) + " " + q.Unit()
	}
	return utils.FormatComplex(q.value) + " " + q.Unit()
}

// GoString 例如 "Impedance((100+200j))"
func (q Quantity) GoString() string {
	return q.typ.String() + "(" + utils.FormatComplex(q.value) + ")"
}

// MetricPrefix 公制前缀表示，例如 "4.7 kOhm"、"(10.0 kOhm)-(1.592 kOhm)j"
func (q Quantity) MetricPrefix(precision int) string {
	return utils.FormatComplexPrefix(q.value, q.Unit(), precision)
}

// Polar 极坐标表示，相位为弧度
func (q Quantity) Polar(precision int) string {
	return Polar(q, precision)
}

// PolarDegrees 极坐标表示，相位为角度
func (q Quantity) PolarDegrees(precision int) string {
	return PolarDegrees(q, precision)
}

// Polar "<模> <单位> ∠ <相位> radians"
func Polar(q Quantity, precision int) string {
	phase := maths.Round(cmplx.Phase(q.value), precision)
	return utils.FormatFloat(cmplx.Abs(q.value)) + " " + q.Unit() + " ∠ " + utils.FormatFloat(phase) + " radians"
}

// PolarDegrees "<模> <单位> ∠ <角度>°"
func PolarDegrees(q Quantity, precision int) string {
	phase := maths.Round(cmplx.Phase(q.value)*degree, precision)
	return utils.FormatFloat(cmplx.Abs(q.value)) + " " + q.Unit() + " ∠ " + utils.FormatFloat(phase) + "°"
}
