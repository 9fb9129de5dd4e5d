package element

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		in       string
		fallback Type
		typ      Type
		value    complex128
	}{
		{"100nF", ResistanceType, CapacitanceType, 100e-9},
		{"500uH", ResistanceType, InductanceType, 5e-4},
		{"4k7Ohm", CapacitanceType, ResistanceType, 4700},
		{"4k7Ohm", ImpedanceType, ImpedanceType, 4700},
		{"12V", ResistanceType, VoltageType, 12},
		{"1mA", ResistanceType, CurrentType, 1e-3},
		{"2 Farad", ResistanceType, CapacitanceType, 2},
		{"10k", ResistanceType, ResistanceType, 1e4},
		{"1n", CapacitanceType, CapacitanceType, 1e-9},
	}
	for _, tt := range tests {
		q, err := Parse(tt.in, tt.fallback)
		if err != nil {
			t.Errorf("%q: %v", tt.in, err)
			continue
		}
		if q.Type() != tt.typ {
			t.Errorf("%q 类型: 期望 %s, 实际 %s", tt.in, tt.typ, q.Type())
		}
		if !near(q.Value(), tt.value, 1e-15) {
			t.Errorf("%q 值: 期望 %v, 实际 %v", tt.in, tt.value, q.Value())
		}
	}
}
