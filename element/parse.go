package element

import "strings"

// unitType 单位后缀对应的元件类型，长后缀在前
var unitType = []struct {
	suffix string
	typ    Type
}{
	{"Farad", CapacitanceType},
	{"Henry", InductanceType},
	{"Ohm", ResistanceType},
	{"F", CapacitanceType},
	{"H", InductanceType},
	{"V", VoltageType},
	{"A", CurrentType},
}

// Parse 解析带单位的字符串，类型由单位后缀决定，例如 "100nF"、"4k7Ohm"、"500uH"
// 没有单位时使用 fallback；"Ohm" 在 fallback 属于阻抗族时保持 fallback
func Parse(text string, fallback Type) (Quantity, error) {
	text = strings.TrimSpace(text)
	t := fallback
	for _, u := range unitType {
		if strings.HasSuffix(text, u.suffix) {
			t = u.typ
			if t == ResistanceType && fallback.Family() == ImpedanceType {
				t = fallback
			}
			break
		}
	}
	return New(t, text)
}
