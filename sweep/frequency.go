package sweep

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"rlc/maths"
)

var (
	// ErrStep 步长必须为正
	ErrStep = errors.New("步长必须大于 0")
	// ErrRange 频率范围无效
	ErrRange = errors.New("频率范围无效")
)

// Linear 线性频率列表 [start, stop)，步长 step
func Linear(start, stop, step float64) ([]float64, error) {
	if !(step > 0) {
		return nil, fmt.Errorf("%w: %v", ErrStep, step)
	}
	if math.IsNaN(start) || math.IsNaN(stop) || math.IsInf(start, 0) || math.IsInf(stop, 0) {
		return nil, fmt.Errorf("%w: %v ~ %v", ErrRange, start, stop)
	}
	n := int(math.Ceil((stop - start) / step))
	if n <= 0 {
		return []float64{}, nil
	}
	if n == 1 {
		return []float64{start}, nil
	}
	return floats.Span(make([]float64, n), start, start+float64(n-1)*step), nil
}

// Geometric 对数等比频率列表，包含两端，共 n 个点
func Geometric(start, stop float64, n int) ([]float64, error) {
	if !(start > 0) || !(stop > 0) || math.IsInf(start, 0) || math.IsInf(stop, 0) {
		return nil, fmt.Errorf("%w: %v ~ %v", ErrRange, start, stop)
	}
	switch {
	case n <= 0:
		return []float64{}, nil
	case n == 1:
		return []float64{start}, nil
	}
	return floats.LogSpan(make([]float64, n), start, stop), nil
}

// Round 频率取整到 digits 位小数，原地修改并返回
func Round(list []float64, digits int) []float64 {
	for i, f := range list {
		list[i] = maths.Round(f, digits)
	}
	return list
}
