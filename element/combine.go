package element

import "rlc/maths"

// Parallel 并联
//
//	阻抗、电阻、电感: 1 / Σ(1/qᵢ)
//	电容: Σqᵢ
//
// 仅有一个元件时原样返回
func Parallel(list ...Quantity) (Quantity, error) {
	return combine(OpParallel, list)
}

// Series 串联
//
//	阻抗、电阻、电感: Σqᵢ
//	电容: 1 / Σ(1/qᵢ)
func Series(list ...Quantity) (Quantity, error) {
	return combine(OpSeries, list)
}

// ParallelWith 与其他元件并联，等价于 Parallel(q, others...)
func (q Quantity) ParallelWith(others ...Quantity) (Quantity, error) {
	return Parallel(append([]Quantity{q}, others...)...)
}

// SeriesWith 与其他元件串联，等价于 Series(q, others...)
func (q Quantity) SeriesWith(others ...Quantity) (Quantity, error) {
	return Series(append([]Quantity{q}, others...)...)
}

func combine(op Operator, list []Quantity) (Quantity, error) {
	if len(list) == 0 {
		return Quantity{}, ErrNoOperands
	}
	first := list[0]
	family := first.typ.Family()
	config := family.Config()
	if config == nil {
		return Quantity{}, operatorError(op, first.typ, first.typ)
	}
	mode := config.Parallel
	if op == OpSeries {
		mode = config.Series
	}
	if mode == CombineNone {
		return Quantity{}, operatorError(op, first.typ, first.typ)
	}
	t := first.typ
	values := make([]complex128, len(list))
	for i, q := range list {
		if q.typ.Family() != family {
			return Quantity{}, operatorError(op, first.typ, q.typ)
		}
		if q.typ != t {
			t = family
		}
		values[i] = q.value
	}
	if len(list) == 1 {
		return first, nil
	}
	var v complex128
	switch mode {
	case CombineSum:
		v = maths.Sum(values)
	case CombineReciprocal:
		v = maths.Reciprocal(maths.SumReciprocal(values))
	}
	return Quantity{value: v, typ: t}, nil
}
