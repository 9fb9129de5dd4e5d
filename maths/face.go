package maths

import (
	"math"
	"math/cmplx"
)

// Number 是一个约束，允许任何浮点或复数类型
type Number interface {
	~float32 | ~float64 | ~complex64 | ~complex128
}

// Abs 是一个泛型函数，返回任何支持的 Number 类型的绝对值。
func Abs[T Number](v T) float64 {
	// 通过类型断言检查具体类型
	switch x := any(v).(type) {
	case float32:
		return math.Abs(float64(x))
	case float64:
		return math.Abs(x)
	case complex64:
		return cmplx.Abs(complex128(x))
	case complex128:
		return cmplx.Abs(x)
	}
	return 0
}

// ToComplex 将任意 Number 转换为 complex128
func ToComplex[T Number](v T) complex128 {
	switch x := any(v).(type) {
	case float32:
		return complex(float64(x), 0)
	case float64:
		return complex(x, 0)
	case complex64:
		return complex128(x)
	case complex128:
		return x
	}
	return 0
}

// Reciprocal 倒数，零值按 IEEE 规则得到无穷大
func Reciprocal(v complex128) complex128 {
	if imag(v) == 0 {
		// 纯实数单独处理，避免复数除法把 1/0 变成 NaN
		return complex(1/real(v), 0)
	}
	return 1 / v
}

// Round 按十进制位数取整，银行家舍入基于二进制精确值
func Round(x float64, digits int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	return roundDecimal(x, digits)
}
