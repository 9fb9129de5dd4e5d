package rlc

import (
	"math"
	"math/cmplx"
	"testing"

	"rlc/element"
)

func TestSallenKeyLowPass(t *testing.T) {
	c, err := NewCircuit("sallen-key", nil)
	if err != nil {
		t.Fatal(err)
	}
	f := 10000.0
	h, err := c.Transfer(f)
	if err != nil {
		t.Fatal(err)
	}

	// 单位增益低通: H = 1 / (1 + jωC(R1+R2) + (jω)²R1R2C²)
	r, capacitance := 10000.0, 1e-9
	w := 2 * math.Pi * f
	want := 1 / complex(1-w*w*r*r*capacitance*capacitance, w*capacitance*(r+r))

	if d := math.Abs(cmplx.Abs(h)-cmplx.Abs(want)) / cmplx.Abs(want); d > 1e-9 {
		t.Errorf("|H| 不正确: 期望 %v, 实际 %v", cmplx.Abs(want), cmplx.Abs(h))
	}
	if d := math.Abs(cmplx.Phase(h)-cmplx.Phase(want)) / math.Abs(cmplx.Phase(want)); d > 1e-9 {
		t.Errorf("phase(H) 不正确: 期望 %v, 实际 %v", cmplx.Phase(want), cmplx.Phase(h))
	}
}

func TestSallenKeyHighPass(t *testing.T) {
	c, err := NewCircuit("sallen-key", map[string]string{
		"Z1": "1nF", "Z2": "1nF", "Z3": "10kOhm", "Z4": "10kOhm",
	})
	if err != nil {
		t.Fatal(err)
	}
	low, err := c.Transfer(10)
	if err != nil {
		t.Fatal(err)
	}
	high, err := c.Transfer(1e7)
	if err != nil {
		t.Fatal(err)
	}
	if cmplx.Abs(low) > 1e-3 {
		t.Errorf("高通在低频应衰减, 实际 |H| = %v", cmplx.Abs(low))
	}
	if math.Abs(cmplx.Abs(high)-1) > 1e-3 {
		t.Errorf("高通在高频应接近 1, 实际 |H| = %v", cmplx.Abs(high))
	}
}

func TestRLCTank(t *testing.T) {
	c, err := NewCircuit("rlc-tank", nil)
	if err != nil {
		t.Fatal(err)
	}
	// 谐振频率 1/(2π√(LC))
	f0 := 1 / (2 * math.Pi * math.Sqrt(500e-6*5e-9))
	peak, err := c.Transfer(f0)
	if err != nil {
		t.Fatal(err)
	}
	off, err := c.Transfer(f0 * 10)
	if err != nil {
		t.Fatal(err)
	}
	// 谐振时 Zp ≈ L/(R2·C) = R1，增益约 0.5
	if math.Abs(cmplx.Abs(peak)-0.5) > 0.01 {
		t.Errorf("谐振点增益应接近 0.5, 实际 %v", cmplx.Abs(peak))
	}
	if cmplx.Abs(off) > 0.1 {
		t.Errorf("偏离谐振点应衰减, 实际 %v", cmplx.Abs(off))
	}

	// 与直接计算比较
	zl := complex(0, 2*math.Pi*f0*500e-6)
	zc := complex(0, -1/(2*math.Pi*f0*5e-9))
	zp := 1 / (1/(1+zl) + 1/zc)
	want := zp / (100000 + zp)
	if cmplx.Abs(peak-want)/cmplx.Abs(want) > 1e-9 {
		t.Errorf("传递函数不正确: 期望 %v, 实际 %v", want, peak)
	}
}

func TestDivider(t *testing.T) {
	c, err := NewCircuit("divider", map[string]string{"z1": "3k", "Z2": "1k"})
	if err != nil {
		t.Fatal(err)
	}
	h, err := c.Transfer(50)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(real(h)-0.25) > 1e-15 || imag(h) != 0 {
		t.Errorf("分压比: 期望 0.25, 实际 %v", h)
	}

	rc := &Divider{Z1: element.Must(element.ResistanceType, 1000), Z2: element.Must(element.CapacitanceType, 1e-6)}
	fc := 1 / (2 * math.Pi * 1000 * 1e-6)
	h, err = rc.Transfer(fc)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(cmplx.Abs(h)-math.Sqrt(0.5)) > 1e-12 {
		t.Errorf("RC 截止频率处 |H| 应为 0.707, 实际 %v", cmplx.Abs(h))
	}
}

func TestNewCircuitErrors(t *testing.T) {
	if _, err := NewCircuit("bandstop", nil); err == nil {
		t.Errorf("未知电路应返回错误")
	}
	if _, err := NewCircuit("divider", map[string]string{"R9": "1k"}); err == nil {
		t.Errorf("未知元件位置应返回错误")
	}
	if _, err := NewCircuit("divider", map[string]string{"Z1": "bogus"}); err == nil {
		t.Errorf("无法解析的值应返回错误")
	}
	if _, err := NewCircuit("divider", map[string]string{"Z1": "5V"}); err != nil {
		t.Fatalf("电压可以构造, 但不能参与计算: %v", err)
	}
	c, _ := NewCircuit("divider", map[string]string{"Z1": "5V"})
	if _, err := c.Transfer(1); err == nil {
		t.Errorf("电压不能作为阻抗")
	}
}

func TestKinds(t *testing.T) {
	kinds := Kinds()
	if len(kinds) != 3 || kinds[0] != "divider" || kinds[1] != "rlc-tank" || kinds[2] != "sallen-key" {
		t.Errorf("电路类型列表不正确: %v", kinds)
	}
	c, _ := NewCircuit("rlc-tank", nil)
	if got := c.Components()[2].String(); got != "L1 = 500.0 µH" {
		t.Errorf("元件描述不正确: %q", got)
	}
}
