package rlc

import (
	"fmt"
	"slices"
	"strings"

	"rlc/element"
)

// Circuit 可求传递函数的电路
type Circuit interface {
	// Name 电路名称
	Name() string
	// Components 电路中的元件，按固定顺序
	Components() []Component
	// Transfer 频率 f (Hz) 下的传递函数 H(f) = Vout / Vin
	Transfer(frequency float64) (complex128, error)
}

// Component 具名元件
type Component struct {
	Name     string
	Quantity element.Quantity
}

func (c Component) String() string {
	return c.Name + " = " + c.Quantity.MetricPrefix(3)
}

// slot 电路中的元件位置及默认值
type slot struct {
	name     string
	typ      element.Type
	fallback string
}

// builder 电路构造函数，参数顺序与 slot 一致
type builder struct {
	slots []slot
	build func(values []element.Quantity) Circuit
}

// circuitList 已知电路
var circuitList = map[string]builder{
	"rlc-tank": {
		slots: []slot{
			{"R1", element.ResistanceType, "100k"},
			{"R2", element.ResistanceType, "1"},
			{"L1", element.InductanceType, "500u"},
			{"C1", element.CapacitanceType, "5n"},
		},
		build: func(v []element.Quantity) Circuit {
			return &RLCTank{R1: v[0], R2: v[1], L1: v[2], C1: v[3]}
		},
	},
	"sallen-key": {
		slots: []slot{
			{"Z1", element.ResistanceType, "10k"},
			{"Z2", element.ResistanceType, "10k"},
			{"Z3", element.CapacitanceType, "1n"},
			{"Z4", element.CapacitanceType, "1n"},
		},
		build: func(v []element.Quantity) Circuit {
			return &SallenKey{Z1: v[0], Z2: v[1], Z3: v[2], Z4: v[3]}
		},
	},
	"divider": {
		slots: []slot{
			{"Z1", element.ResistanceType, "10k"},
			{"Z2", element.ResistanceType, "10k"},
		},
		build: func(v []element.Quantity) Circuit {
			return &Divider{Z1: v[0], Z2: v[1]}
		},
	},
}

// Kinds 支持的电路类型
func Kinds() []string {
	list := make([]string, 0, len(circuitList))
	for name := range circuitList {
		list = append(list, name)
	}
	slices.Sort(list)
	return list
}

// NewCircuit 按名称构造电路
// components 为元件位置到数值的映射，例如 {"R1": "4k7", "Z3": "10nF"}
// 未给出的位置使用默认值，带单位的值按单位确定类型
func NewCircuit(kind string, components map[string]string) (Circuit, error) {
	b, ok := circuitList[strings.ToLower(strings.TrimSpace(kind))]
	if !ok {
		return nil, fmt.Errorf("未知的电路类型 '%s'", kind)
	}
	for name := range components {
		if !slices.ContainsFunc(b.slots, func(s slot) bool { return strings.EqualFold(s.name, name) }) {
			return nil, fmt.Errorf("电路 %s 没有元件 '%s'", kind, name)
		}
	}
	values := make([]element.Quantity, len(b.slots))
	for i, s := range b.slots {
		text := s.fallback
		for name, v := range components {
			if strings.EqualFold(s.name, name) {
				text = v
			}
		}
		q, err := element.Parse(text, s.typ)
		if err != nil {
			return nil, fmt.Errorf("元件 %s: %w", s.name, err)
		}
		if q.IsNaN() {
			return nil, fmt.Errorf("元件 %s: 无法解析 '%s'", s.name, text)
		}
		values[i] = q
	}
	return b.build(values), nil
}

// RLCTank 谐振电路
//
//	R1 与 ((R2 + L1) ∥ C1) 串联，输出取并联部分两端
//	H = Zp / (R1 + Zp)
type RLCTank struct {
	R1, R2 element.Quantity
	L1     element.Quantity
	C1     element.Quantity
}

func (c *RLCTank) Name() string { return "rlc-tank" }

func (c *RLCTank) Components() []Component {
	return []Component{{"R1", c.R1}, {"R2", c.R2}, {"L1", c.L1}, {"C1", c.C1}}
}

func (c *RLCTank) Transfer(frequency float64) (complex128, error) {
	zl, err := element.ImpedanceOf(c.L1, frequency)
	if err != nil {
		return 0, err
	}
	zc, err := element.ImpedanceOf(c.C1, frequency)
	if err != nil {
		return 0, err
	}
	branch, err := c.R2.Add(zl)
	if err != nil {
		return 0, err
	}
	zp, err := element.Parallel(branch, zc)
	if err != nil {
		return 0, err
	}
	total, err := c.R1.Add(zp)
	if err != nil {
		return 0, err
	}
	h, err := zp.Div(total)
	if err != nil {
		return 0, err
	}
	return h.Number(), nil
}

// SallenKey 单位增益 Sallen-Key 滤波器
//
//	H = Z3·Z4 / (Z1·Z2 + Z3·(Z1+Z2) + Z3·Z4)
//
// 低通为 R、R、C、C，高通为 C、C、R、R
type SallenKey struct {
	Z1, Z2, Z3, Z4 element.Quantity
}

func (c *SallenKey) Name() string { return "sallen-key" }

func (c *SallenKey) Components() []Component {
	return []Component{{"Z1", c.Z1}, {"Z2", c.Z2}, {"Z3", c.Z3}, {"Z4", c.Z4}}
}

func (c *SallenKey) Transfer(frequency float64) (complex128, error) {
	z, err := impedances(frequency, c.Z1, c.Z2, c.Z3, c.Z4)
	if err != nil {
		return 0, err
	}
	z12, err := z[0].Mul(z[1])
	if err != nil {
		return 0, err
	}
	z34, err := z[2].Mul(z[3])
	if err != nil {
		return 0, err
	}
	sum, err := z[0].Add(z[1])
	if err != nil {
		return 0, err
	}
	z3s, err := z[2].Mul(sum)
	if err != nil {
		return 0, err
	}
	return z34.Number() / (z12.Number() + z3s.Number() + z34.Number()), nil
}

// Divider 分压器 H = Z2 / (Z1 + Z2)
type Divider struct {
	Z1, Z2 element.Quantity
}

func (c *Divider) Name() string { return "divider" }

func (c *Divider) Components() []Component {
	return []Component{{"Z1", c.Z1}, {"Z2", c.Z2}}
}

func (c *Divider) Transfer(frequency float64) (complex128, error) {
	z, err := impedances(frequency, c.Z1, c.Z2)
	if err != nil {
		return 0, err
	}
	total, err := element.Series(z...)
	if err != nil {
		return 0, err
	}
	h, err := z[1].Div(total)
	if err != nil {
		return 0, err
	}
	return h.Number(), nil
}

// impedances 将元件转换为频率 f 下的阻抗
func impedances(frequency float64, list ...element.Quantity) ([]element.Quantity, error) {
	z := make([]element.Quantity, len(list))
	for i, q := range list {
		v, err := element.ImpedanceOf(q, frequency)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", q.Type(), err)
		}
		z[i] = v
	}
	return z, nil
}
