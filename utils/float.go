package utils

import (
	"math"
	"strconv"
	"strings"
)

// FormatFloat 最短往返十进制表示，整数值保留 ".0"
// 指数小于 -4 或不小于 16 时使用科学计数法，例如 1e-05、1.5e+16
func FormatFloat(x float64) string {
	s := formatShortest(x)
	if strings.ContainsAny(s, ".en") { // 含小数点、指数、nan/inf
		return s
	}
	return s + ".0"
}

// formatShortest 最短往返表示，不补 ".0"，用于复数分量
func formatShortest(x float64) string {
	switch {
	case math.IsNaN(x):
		return "nan"
	case math.IsInf(x, 1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	case x == 0:
		if math.Signbit(x) {
			return "-0"
		}
		return "0"
	}
	sci := strconv.FormatFloat(x, 'e', -1, 64)
	exponent, _ := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if exponent < -4 || exponent >= 16 {
		return sci
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// FormatComplex 复数表示，例如 (100+200j)、(50-300j)、2j
func FormatComplex(v complex128) string {
	re, im := real(v), imag(v)
	imStr := formatShortest(im)
	if re == 0 && !math.Signbit(re) {
		return imStr + "j"
	}
	sign := "+"
	if math.Signbit(im) && !math.IsNaN(im) {
		sign = ""
	}
	return "(" + formatShortest(re) + sign + imStr + "j)"
}
