package element

import (
	"fmt"

	"rlc/maths"
	"rlc/utils"
)

// Operator 运算符
type Operator uint8

const (
	OpAdd Operator = iota + 1
	OpSub
	OpMul
	OpDiv
	OpReactance
	OpParallel
	OpSeries
)

var operatorName = map[Operator]string{
	OpAdd:       "+",
	OpSub:       "-",
	OpMul:       "*",
	OpDiv:       "/",
	OpReactance: "reactance",
	OpParallel:  "parallel",
	OpSeries:    "series",
}

func (op Operator) String() string {
	if name, ok := operatorName[op]; ok {
		return name
	}
	return fmt.Sprintf("Operator(%d)", uint8(op))
}

// rule 运算规则键，按运算族匹配
type rule struct {
	op          Operator
	left, right Type
}

// ruleList 兼容矩阵：(运算, 左族, 右族) -> 结果类型
// 查不到的组合即为不支持的运算
var ruleList = map[rule]Type{}

// AddRule 登记一条运算规则
func AddRule(op Operator, left, right, result Type) {
	key := rule{op: op, left: left, right: right}
	if _, ok := ruleList[key]; ok {
		panic(fmt.Errorf("运算规则重复注册: %s %s %s", left, op, right))
	}
	ruleList[key] = result
}

// addUniformRules 每个类型都具备的通用规则
//
//	t ± t -> t
//	t × 数 -> t, 数 × t -> t, t ÷ 数 -> t
//	t × t -> 数, t ÷ t -> 数, 数 ÷ t -> 数
func addUniformRules(t Type) {
	AddRule(OpAdd, t, t, t)
	AddRule(OpSub, t, t, t)
	AddRule(OpMul, t, NumberType, t)
	AddRule(OpMul, NumberType, t, t)
	AddRule(OpDiv, t, NumberType, t)
	AddRule(OpMul, t, t, NumberType)
	AddRule(OpDiv, t, t, NumberType)
	AddRule(OpDiv, NumberType, t, NumberType)
}

// Result 运算结果，可能是带单位的量，也可能是纯复数
type Result struct {
	quantity Quantity
	number   complex128
	isNumber bool
}

// IsNumber 结果是否为纯复数
func (r Result) IsNumber() bool { return r.isNumber }

// Number 结果的复数值，元件结果返回其值
func (r Result) Number() complex128 {
	if r.isNumber {
		return r.number
	}
	return r.quantity.value
}

// Quantity 元件结果，纯复数结果返回 false
func (r Result) Quantity() (Quantity, bool) { return r.quantity, !r.isNumber }

// Type 结果类型，纯复数为 NumberType
func (r Result) Type() Type {
	if r.isNumber {
		return NumberType
	}
	return r.quantity.typ
}

func (r Result) String() string {
	if r.isNumber {
		return utils.FormatComplex(r.number)
	}
	return r.quantity.String()
}

// operand 解析操作数，实数标量视为 NumberType
// 未经构造的 Quantity{} 类型为 NumberType，不能当作标量参与运算
func operand(v any) (Type, complex128, string, bool) {
	switch x := v.(type) {
	case Quantity:
		return x.typ, x.value, x.typ.String(), x.typ != NumberType && x.typ.Config() != nil
	case *Quantity:
		if x == nil {
			return NumberType, 0, "nil", false
		}
		return x.typ, x.value, x.typ.String(), x.typ != NumberType && x.typ.Config() != nil
	}
	if f, ok := toReal(v); ok {
		return NumberType, complex(f, 0), NumberType.String(), true
	}
	return NumberType, 0, fmt.Sprintf("%T", v), false
}

// Apply 统一的运算入口
// left、right 可以是 Quantity 或实数标量，两者不能同时是标量
func Apply(op Operator, left, right any) (Result, error) {
	lt, lv, lname, lok := operand(left)
	rt, rv, rname, rok := operand(right)
	if !lok || !rok || (lt == NumberType && rt == NumberType) {
		return Result{}, &OperatorTypeError{Op: op, Left: lname, Right: rname}
	}
	result, ok := ruleList[rule{op: op, left: lt.Family(), right: rt.Family()}]
	if !ok {
		return Result{}, &OperatorTypeError{Op: op, Left: lname, Right: rname}
	}
	var v complex128
	switch op {
	case OpAdd:
		v = lv + rv
	case OpSub:
		v = lv - rv
	case OpMul:
		v = lv * rv
	case OpDiv:
		v = divide(lv, rv)
	default:
		return Result{}, &OperatorTypeError{Op: op, Left: lname, Right: rname}
	}
	if result == NumberType {
		return Result{number: v, isNumber: true}, nil
	}
	return Result{quantity: Quantity{value: v, typ: refine(result, lt, rt)}}, nil
}

// refine 只由电阻（和标量）参与的阻抗族运算结果仍是电阻
func refine(result, left, right Type) Type {
	if result != ImpedanceType {
		return result
	}
	if (left == ResistanceType || left == NumberType) && (right == ResistanceType || right == NumberType) {
		return ResistanceType
	}
	return result
}

// divide 两个实数相除时按实数除法，保证除零得到无穷大
func divide(a, b complex128) complex128 {
	if imag(a) == 0 && imag(b) == 0 {
		return complex(real(a)/real(b), 0)
	}
	if b == 0 {
		return a * maths.Reciprocal(b)
	}
	return a / b
}

// Neg 取负
func (q Quantity) Neg() Quantity { return Quantity{value: -q.value, typ: q.typ} }

// Add 同族相加
func (q Quantity) Add(other Quantity) (Quantity, error) {
	r, err := Apply(OpAdd, q, other)
	if err != nil {
		return Quantity{}, err
	}
	return r.quantity, nil
}

// Sub 同族相减
func (q Quantity) Sub(other Quantity) (Quantity, error) {
	r, err := Apply(OpSub, q, other)
	if err != nil {
		return Quantity{}, err
	}
	return r.quantity, nil
}

// Mul 与另一个量相乘
// 同族相乘得到纯复数，电流 × 阻抗得到电压
func (q Quantity) Mul(other Quantity) (Result, error) { return Apply(OpMul, q, other) }

// Div 除以另一个量
// 同族相除得到纯复数，电压 ÷ 阻抗得到电流，电压 ÷ 电流得到阻抗
func (q Quantity) Div(other Quantity) (Result, error) { return Apply(OpDiv, q, other) }

// Scale 乘以实数，类型不变
func (q Quantity) Scale(k float64) Quantity {
	return Quantity{value: q.value * complex(k, 0), typ: q.typ}
}

// DivScalar 除以实数，类型不变
func (q Quantity) DivScalar(k float64) Quantity {
	return Quantity{value: divide(q.value, complex(k, 0)), typ: q.typ}
}

// ScalarDiv 实数除以元件量，得到纯复数
func ScalarDiv(k float64, q Quantity) complex128 {
	return divide(complex(k, 0), q.value)
}
