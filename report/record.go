package report

import (
	"encoding/json"
	"io"
	"math"
	"strconv"

	"rlc"
	"rlc/sweep"
)

// Float 非有限值（NaN、±Inf）编码为 null 的浮点数
type Float float64

func (f Float) MarshalJSON() ([]byte, error) {
	x := float64(f)
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, x, 'g', -1, 64), nil
}

// ComponentRecord 元件信息
type ComponentRecord struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Value string `json:"value"` // 公制前缀表示
}

// PointRecord 频率点信息
type PointRecord struct {
	Frequency    Float `json:"frequency"`
	Real         Float `json:"real"`
	Imag         Float `json:"imag"`
	Magnitude    Float `json:"magnitude"`
	MagnitudeDB  Float `json:"magnitude_db"`
	Phase        Float `json:"phase"`
	PhaseDegrees Float `json:"phase_degrees"`
}

// NewPointRecord 转换扫频结果
func NewPointRecord(p sweep.Point) PointRecord {
	return PointRecord{
		Frequency:    Float(p.Frequency),
		Real:         Float(real(p.Value)),
		Imag:         Float(imag(p.Value)),
		Magnitude:    Float(p.Magnitude()),
		MagnitudeDB:  Float(p.MagnitudeDB()),
		Phase:        Float(p.Phase()),
		PhaseDegrees: Float(p.PhaseDegrees()),
	}
}

// Record 一次扫频的完整记录
type Record struct {
	Circuit    string            `json:"circuit"`
	Components []ComponentRecord `json:"components"`
	Points     []PointRecord     `json:"points"`
}

// NewRecord 记录电路及扫频结果
func NewRecord(c rlc.Circuit, points []sweep.Point) *Record {
	list := &Record{Circuit: c.Name()}
	for _, comp := range c.Components() {
		list.Components = append(list.Components, ComponentRecord{
			Name:  comp.Name,
			Type:  comp.Quantity.Type().String(),
			Value: comp.Quantity.MetricPrefix(3),
		})
	}
	list.Points = make([]PointRecord, len(points))
	for i, p := range points {
		list.Points[i] = NewPointRecord(p)
	}
	return list
}

// Render 以 JSON 输出
func (list *Record) Render(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(list)
}
