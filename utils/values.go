package utils

import (
	"math"
	"strconv"
	"strings"
)

// Values 元件值列表，每项可以是普通数字或带前缀的字符串
type Values []string

// ParseFloat64 解析第 i 项，缺失或无法解析时返回默认值
func (value Values) ParseFloat64(i int, defaultValue float64) float64 {
	if i < len(value) {
		if val := ParsePrefix(value[i]); !math.IsNaN(val) {
			return val
		}
	}
	return defaultValue
}

// ParseComplex128 解析第 i 项复数，先按 Go 复数语法，再按前缀语法
func (value Values) ParseComplex128(i int, defaultValue complex128) complex128 {
	if i < len(value) {
		if val, err := strconv.ParseComplex(strings.TrimSpace(value[i]), 128); err == nil {
			return val
		}
		if val := ParsePrefix(value[i]); !math.IsNaN(val) {
			return complex(val, 0)
		}
	}
	return defaultValue
}
