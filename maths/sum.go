package maths

import "math"

// Sum 补偿求和（Neumaier），实部虚部分别累加
// 大量元件并联时保持与逐项精确求和一致的结果
func Sum[T Number](values []T) complex128 {
	var re, im neumaier
	for _, v := range values {
		c := ToComplex(v)
		re.add(real(c))
		im.add(imag(c))
	}
	return complex(re.value(), im.value())
}

// SumReciprocal 倒数和 Σ(1/v)
func SumReciprocal(values []complex128) complex128 {
	inv := make([]complex128, len(values))
	for i, v := range values {
		inv[i] = Reciprocal(v)
	}
	return Sum(inv)
}

// neumaier 补偿累加器
type neumaier struct {
	sum  float64
	comp float64 // 丢失的低位
	inf  float64 // 无穷大与 NaN 按 IEEE 规则单独累加
}

func (n *neumaier) add(x float64) {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		n.inf += x
		return
	}
	t := n.sum + x
	if math.Abs(n.sum) >= math.Abs(x) {
		n.comp += (n.sum - t) + x
	} else {
		n.comp += (x - t) + n.sum
	}
	n.sum = t
}

func (n *neumaier) value() float64 {
	if n.inf != 0 {
		return n.inf
	}
	return n.sum + n.comp
}
