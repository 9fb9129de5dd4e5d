package report

import (
	"io"
	"log/slog"
	"math"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"rlc/utils"
)

// Charts 波特图网页
type Charts struct {
	*Record
	Logger *slog.Logger
}

// NewCharts 由扫频记录生成波特图
func NewCharts(list *Record) *Charts { return &Charts{Record: list} }

// newLine 统一的曲线样式
func newLine(title, subtitle, unit string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: subtitle,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Type:   "scroll",
			Orient: "vertical",
			Right:  "10",
			Top:    "20",
			Bottom: "20",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:        "f",
			SplitNumber: 20,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:  unit,
			Scale: opts.Bool(true),
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
		charts.WithAnimation(true),
	)
	return line
}

// Render 输出 HTML 页面，包含幅频与相频曲线
func (c *Charts) Render(w io.Writer) error {
	gain := newLine("幅频特性", c.Circuit+" 增益随频率变化曲线", "dB")
	phase := newLine("相频特性", c.Circuit+" 相位随频率变化曲线", "°")

	xs := make([]string, len(c.Points))
	gainData := make([]opts.LineData, len(c.Points))
	phaseData := make([]opts.LineData, len(c.Points))
	for i, p := range c.Points {
		xs[i] = utils.FormatPrefix(float64(p.Frequency), "Hz", 3)
		gainData[i] = opts.LineData{Value: lineValue(p.MagnitudeDB)}
		phaseData[i] = opts.LineData{Value: lineValue(p.PhaseDegrees)}
	}
	gain.SetXAxis(xs).AddSeries("|H|", gainData)
	phase.SetXAxis(xs).AddSeries("∠H", phaseData)

	page := components.NewPage()
	page.PageTitle = c.Circuit
	page.AddCharts(gain, phase)
	return page.Render(w)
}

// lineValue 非有限值显示为空点
func lineValue(f Float) any {
	if x := float64(f); !math.IsNaN(x) && !math.IsInf(x, 0) {
		return x
	}
	return "-"
}

// Handler 发布到网页面
func (c *Charts) Handler(w http.ResponseWriter, _ *http.Request) {
	if err := c.Render(w); err != nil {
		c.Error(err)
	}
}

func (c *Charts) Error(err error) {
	logger := c.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Error("波特图输出失败", "circuit", c.Circuit, "error", err)
}
