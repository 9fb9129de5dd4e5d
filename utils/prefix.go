package utils

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"rlc/maths"
)

// unitSuffix 解析时忽略的单位后缀，长的优先
var unitSuffix = []string{"Farad", "Henry", "Ohm", "F", "H", "V", "A"}

// Prefix 公制前缀
type Prefix struct {
	Symbol   string // 前缀字符
	Exponent int    // 十的幂
}

// PrefixTable 前缀查找顺序，解析时取第一个出现的前缀
var PrefixTable = []Prefix{
	{"T", 12},
	{"G", 9},
	{"M", 6},
	{"k", 3},
	{"m", -3},
	{"µ", -6}, // U+00B5
	{"μ", -6}, // U+03BC
	{"u", -6},
	{"n", -9},
	{"p", -12},
	{"f", -15},
}

// prefixSymbol 指数到前缀的反查表
var prefixSymbol = map[int]string{
	12:  "T",
	9:   "G",
	6:   "M",
	3:   "k",
	-3:  "m",
	-6:  "µ",
	-9:  "n",
	-12: "p",
	-15: "f",
}

// ParsePrefix 解析带公制前缀与单位的字符串，例如 "5k6"、"470nF"、"1.5E3"
// 无法解析时返回 NaN，不返回错误
func ParsePrefix(expression string) float64 {
	expression = strings.TrimSpace(expression)
	for _, unit := range unitSuffix {
		expression = strings.ReplaceAll(expression, unit, "")
	}
	for _, prefix := range PrefixTable {
		if !strings.Contains(expression, prefix.Symbol) {
			continue
		}
		parts := strings.Split(expression, prefix.Symbol)
		mantissa := parts[0]
		if isNumeric(parts[1]) {
			// 前缀后的数字是小数部分，"5k6" -> "5.6"
			mantissa = mantissa + "." + parts[1]
		}
		value, err := parseFloat(mantissa)
		if err != nil {
			return math.NaN()
		}
		return value * math.Pow10(prefix.Exponent)
	}
	value, err := parseFloat(expression)
	if err != nil {
		return math.NaN()
	}
	return value
}

// FormatPrefix 按工程计数法输出带前缀字符串，例如 1500 -> "1.5 kOhm"
// precision 为尾数保留的小数位数
func FormatPrefix(x float64, unit string, precision int) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return FormatFloat(x) + " " + unit
	}
	sci := strconv.FormatFloat(x, 'e', 6, 64)
	mantissaStr, exponentStr, _ := strings.Cut(sci, "e")
	exponent, _ := strconv.Atoi(exponentStr)
	mantissa, _ := strconv.ParseFloat(mantissaStr, 64)
	newExponent := floorDiv(exponent, 3) * 3
	newMantissa := maths.Round(mantissa*math.Pow10(exponent-newExponent), precision)
	m := FormatFloat(newMantissa)
	if symbol, ok := prefixSymbol[newExponent]; ok {
		return m + " " + symbol + unit
	}
	if newExponent != 0 {
		return fmt.Sprintf("%sE%+03d %s", m, newExponent, unit)
	}
	return m + " " + unit
}

// FormatComplexPrefix 复数的前缀表示，虚部为零时与 FormatPrefix 相同
// 否则输出 "(实部)+(虚部)j"，虚部符号提到括号外
func FormatComplexPrefix(v complex128, unit string, precision int) string {
	if imag(v) == 0 {
		return FormatPrefix(real(v), unit, precision)
	}
	realStr := FormatPrefix(real(v), unit, precision)
	imagStr := FormatPrefix(math.Abs(imag(v)), unit, precision)
	if imag(v) < 0 {
		return fmt.Sprintf("(%s)-(%s)j", realStr, imagStr)
	}
	return fmt.Sprintf("(%s)+(%s)j", realStr, imagStr)
}

// parseFloat 解析浮点数，溢出按无穷大处理
func parseFloat(s string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, err
	}
	return value, nil
}

// isNumeric 非空且全部为数字字符
func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsNumber(r) {
			return false
		}
	}
	return true
}

// floorDiv 向下取整除法
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
