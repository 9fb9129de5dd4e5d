package element

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestSameKind(t *testing.T) {
	a := Must(ResistanceType, 100)
	b := Must(ResistanceType, 50)

	sum, err := a.Add(b)
	if err != nil {
		t.Fatal(err)
	}
	if sum.Type() != ResistanceType || sum.Value() != 150 {
		t.Errorf("电阻相加: 期望 Resistance 150, 实际 %#v", sum)
	}
	diff, err := a.Sub(b)
	if err != nil {
		t.Fatal(err)
	}
	if diff.Type() != ResistanceType || diff.Value() != 50 {
		t.Errorf("电阻相减: 期望 Resistance 50, 实际 %#v", diff)
	}

	product, err := a.Mul(b)
	if err != nil {
		t.Fatal(err)
	}
	if !product.IsNumber() || product.Number() != 5000 {
		t.Errorf("同类相乘应得到纯数 5000, 实际 %v", product)
	}
	ratio, err := a.Div(b)
	if err != nil {
		t.Fatal(err)
	}
	if !ratio.IsNumber() || ratio.Number() != 2 {
		t.Errorf("同类相除应得到纯数 2, 实际 %v", ratio)
	}

	neg := a.Neg()
	if neg.Type() != ResistanceType || neg.Value() != -100 {
		t.Errorf("取负不正确: %#v", neg)
	}
}

func TestMixedImpedance(t *testing.T) {
	r := Must(ResistanceType, 100)
	z := Must(ImpedanceType, 0+50i)
	sum, err := r.Add(z)
	if err != nil {
		t.Fatal(err)
	}
	if sum.Type() != ImpedanceType || sum.Value() != 100+50i {
		t.Errorf("电阻 + 阻抗: 期望 Impedance (100+50j), 实际 %#v", sum)
	}
}

func TestScalar(t *testing.T) {
	c := Must(CapacitanceType, 2e-9)
	if s := c.Scale(3); s.Type() != CapacitanceType || !near(s.Value(), 6e-9, 1e-15) {
		t.Errorf("缩放不正确: %#v", s)
	}
	if s := c.DivScalar(2); s.Type() != CapacitanceType || !near(s.Value(), 1e-9, 1e-15) {
		t.Errorf("除以标量不正确: %#v", s)
	}
	if v := ScalarDiv(1, Must(InductanceType, 4)); v != 0.25 {
		t.Errorf("标量除以元件: 期望 0.25, 实际 %v", v)
	}

	left, err := Apply(OpMul, 2, Must(VoltageType, 5))
	if err != nil {
		t.Fatal(err)
	}
	if left.Type() != VoltageType || left.Number() != 10 {
		t.Errorf("标量左乘: 期望 Voltage 10, 实际 %v", left)
	}
	inv, err := Apply(OpDiv, 10.0, Must(CurrentType, 4))
	if err != nil {
		t.Fatal(err)
	}
	if !inv.IsNumber() || inv.Number() != 2.5 {
		t.Errorf("标量除以电流: 期望 2.5, 实际 %v", inv)
	}
	if _, err := Apply(OpMul, 2, 3); !errors.Is(err, ErrOperatorType) {
		t.Errorf("两个标量不是合法运算, 实际 %v", err)
	}
	if _, err := Apply(OpAdd, Must(VoltageType, 1), 1.0); !errors.Is(err, ErrOperatorType) {
		t.Errorf("元件加标量应失败, 实际 %v", err)
	}
	if _, err := Apply(OpMul, Must(VoltageType, 1), 1i); !errors.Is(err, ErrOperatorType) {
		t.Errorf("复数标量不是合法操作数, 实际 %v", err)
	}
}

func TestDivideByZero(t *testing.T) {
	r := Must(ResistanceType, 1)
	if v := r.DivScalar(0).Real(); !math.IsInf(v, 1) {
		t.Errorf("除以零应得到 +Inf, 实际 %v", v)
	}
	if v := ScalarDiv(1, Must(ResistanceType, 0)); !math.IsInf(real(v), 1) {
		t.Errorf("1/0 应得到 +Inf, 实际 %v", v)
	}
}

func TestOhm(t *testing.T) {
	v := Must(VoltageType, 10+5i)
	i := Must(CurrentType, 2-1i)

	r, err := v.Div(i)
	if err != nil {
		t.Fatal(err)
	}
	z, ok := r.Quantity()
	if !ok || z.Type() != ImpedanceType {
		t.Fatalf("电压 / 电流 应得到阻抗, 实际 %v", r)
	}
	if !near(z.Value(), (10+5i)/(2-1i), 1e-15) {
		t.Errorf("阻抗值不正确: 期望 %v, 实际 %v", (10+5i)/(2-1i), z.Value())
	}

	back, err := i.Mul(z)
	if err != nil {
		t.Fatal(err)
	}
	u, ok := back.Quantity()
	if !ok || u.Type() != VoltageType {
		t.Fatalf("电流 × 阻抗 应得到电压, 实际 %v", back)
	}
	if !near(u.Value(), v.Value(), 1e-12) {
		t.Errorf("电压重建不正确: 期望 %v, 实际 %v", v.Value(), u.Value())
	}

	rev, err := z.Mul(i)
	if err != nil || rev.Type() != VoltageType {
		t.Errorf("阻抗 × 电流 应得到电压, 实际 %v %v", rev, err)
	}

	cur, err := Must(VoltageType, 12).Div(Must(ResistanceType, 4))
	if err != nil {
		t.Fatal(err)
	}
	if cur.Type() != CurrentType || cur.Number() != 3 {
		t.Errorf("电压 / 电阻: 期望 Current 3, 实际 %v", cur)
	}
}

func TestIncompatible(t *testing.T) {
	_, err := Must(ResistanceType, 1).Add(Must(CapacitanceType, 1))
	if !errors.Is(err, ErrOperatorType) {
		t.Fatalf("电阻 + 电容 应返回 OperatorTypeError, 实际 %v", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, "Resistance") || !strings.Contains(msg, "Capacitance") {
		t.Errorf("错误信息应包含两个操作数类型: %s", msg)
	}
	var opErr *OperatorTypeError
	if !errors.As(err, &opErr) || opErr.Op != OpAdd {
		t.Errorf("错误应为 OperatorTypeError{Op: +}, 实际 %#v", err)
	}

	for _, c := range []struct {
		op          Operator
		left, right Quantity
	}{
		{OpMul, Must(VoltageType, 1), Must(CurrentType, 1)},
		{OpDiv, Must(CurrentType, 1), Must(VoltageType, 1)},
		{OpDiv, Must(ImpedanceType, 1), Must(VoltageType, 1)},
		{OpSub, Must(InductanceType, 1), Must(CapacitanceType, 1)},
		{OpMul, Must(CapacitanceType, 1), Must(InductanceType, 1)},
	} {
		if _, err := Apply(c.op, c.left, c.right); !errors.Is(err, ErrOperatorType) {
			t.Errorf("%s %s %s 应失败, 实际 %v", c.left.Type(), c.op, c.right.Type(), err)
		}
	}
}

// TestZeroQuantity 未构造的 Quantity{} 不能当作标量参与运算
func TestZeroQuantity(t *testing.T) {
	var zero Quantity
	r := Must(ResistanceType, 100)

	if _, err := zero.Mul(r); !errors.Is(err, ErrOperatorType) {
		t.Errorf("Quantity{} * 电阻 应失败, 实际 %v", err)
	}
	if _, err := r.Div(zero); !errors.Is(err, ErrOperatorType) {
		t.Errorf("电阻 / Quantity{} 应失败, 实际 %v", err)
	}
	if _, err := r.Add(zero); !errors.Is(err, ErrOperatorType) {
		t.Errorf("电阻 + Quantity{} 应失败, 实际 %v", err)
	}
	if _, err := Apply(OpMul, &zero, r); !errors.Is(err, ErrOperatorType) {
		t.Errorf("*Quantity{} * 电阻 应失败, 实际 %v", err)
	}
	var nilQuantity *Quantity
	if _, err := Apply(OpMul, nilQuantity, r); !errors.Is(err, ErrOperatorType) {
		t.Errorf("nil * 电阻 应失败, 实际 %v", err)
	}
	if _, err := Apply(OpMul, 2.0, r); err != nil {
		t.Errorf("实数标量仍应可用: %v", err)
	}
}
