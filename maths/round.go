package maths

import (
	"math"
	"strconv"
)

// roundDecimal 十进制舍入。
// 借助 strconv 的精确十进制转换，结果与按二进制精确值做银行家舍入一致。
func roundDecimal(x float64, digits int) float64 {
	if digits < 0 {
		p := math.Pow10(-digits)
		return math.RoundToEven(x/p) * p
	}
	v, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', digits, 64), 64)
	if err != nil {
		return x
	}
	return v
}
