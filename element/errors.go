package element

import (
	"errors"
	"fmt"
)

var (
	// ErrConstructionType 无法用该值构造元件
	ErrConstructionType = errors.New("不支持的构造值类型")
	// ErrOperatorType 操作数类型组合不支持该运算
	ErrOperatorType = errors.New("不支持的运算类型组合")
	// ErrNoOperands 并联/串联至少需要一个元件
	ErrNoOperands = errors.New("至少需要一个元件")
)

// ConstructionTypeError 构造值类型错误
type ConstructionTypeError struct {
	Type  Type // 目标元件类型
	Value any  // 传入的值
}

func (e *ConstructionTypeError) Error() string {
	return fmt.Sprintf("无法使用 %T 构造 %s", e.Value, e.Type)
}

// Is 匹配 ErrConstructionType
func (e *ConstructionTypeError) Is(target error) bool { return target == ErrConstructionType }

// RealValueError 只允许实数的类型收到了复数
type RealValueError struct {
	Type  Type
	Value complex128
}

func (e *RealValueError) Error() string {
	return fmt.Sprintf("%s 只接受实数, 得到 %v", e.Type, e.Value)
}

// Is 匹配 ErrConstructionType
func (e *RealValueError) Is(target error) bool { return target == ErrConstructionType }

// OperatorTypeError 运算类型错误，包含两个操作数的类型名称
type OperatorTypeError struct {
	Op    Operator
	Left  string
	Right string
}

func (e *OperatorTypeError) Error() string {
	return fmt.Sprintf("不支持的运算: %s %s %s", e.Left, e.Op, e.Right)
}

// Is 匹配 ErrOperatorType
func (e *OperatorTypeError) Is(target error) bool { return target == ErrOperatorType }

// operatorError 按类型构造 OperatorTypeError
func operatorError(op Operator, left, right Type) error {
	return &OperatorTypeError{Op: op, Left: left.String(), Right: right.String()}
}
