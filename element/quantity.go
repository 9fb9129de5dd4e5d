package element

import (
	"math"
	"math/cmplx"

	"rlc/utils"
)

// Quantity 带单位的复数量，值不可变，所有运算都返回新的 Quantity
type Quantity struct {
	value complex128
	typ   Type
}

// New 构造元件值
// v 可以是任意实数、复数或带公制前缀的字符串（如 "4k7"、"100nF"）
// 字符串无法解析时值为 NaN，不返回错误
func New(t Type, v any) (Quantity, error) {
	config := t.Config()
	if config == nil || t == NumberType {
		return Quantity{}, &ConstructionTypeError{Type: t, Value: v}
	}
	value, ok := toComplex(v)
	if !ok {
		return Quantity{}, &ConstructionTypeError{Type: t, Value: v}
	}
	if config.Real && imag(value) != 0 {
		return Quantity{}, &RealValueError{Type: t, Value: value}
	}
	return Quantity{value: value, typ: t}, nil
}

// Must 构造元件值，失败时 panic
func Must(t Type, v any) Quantity {
	q, err := New(t, v)
	if err != nil {
		panic(err)
	}
	return q
}

// toComplex 将构造值转换为内部复数表示
func toComplex(v any) (complex128, bool) {
	switch x := v.(type) {
	case string:
		return complex(utils.ParsePrefix(x), 0), true
	case complex128:
		return x, true
	case complex64:
		return complex128(x), true
	}
	if f, ok := toReal(v); ok {
		return complex(f, 0), true
	}
	return 0, false
}

// toReal 实数标量
func toReal(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	}
	return 0, false
}

// Value 复数值
func (q Quantity) Value() complex128 { return q.value }

// Type 元件类型
func (q Quantity) Type() Type { return q.typ }

// Unit 单位
func (q Quantity) Unit() string { return q.typ.Unit() }

// Real 实部
func (q Quantity) Real() float64 { return real(q.value) }

// Imag 虚部
func (q Quantity) Imag() float64 { return imag(q.value) }

// Abs 模
func (q Quantity) Abs() float64 { return cmplx.Abs(q.value) }

// Phase 相位（弧度）
func (q Quantity) Phase() float64 { return cmplx.Phase(q.value) }

// IsNaN 值是否为 NaN，解析失败的字符串会得到 NaN
func (q Quantity) IsNaN() bool {
	return math.IsNaN(real(q.value)) || math.IsNaN(imag(q.value))
}
