package report

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"
)

// 图片格式
const (
	ImagePNG = "png"
	ImageSVG = "svg"
)

// Bode 波特图尺寸
type Bode struct {
	Width  vg.Length
	Height vg.Length
}

// DefaultBode 默认 8×6 英寸
var DefaultBode = Bode{Width: 8 * vg.Inch, Height: 6 * vg.Inch}

// WriteBode 输出波特图，上为幅频下为相频
// 全部频率为正时横轴使用对数刻度，非有限值的点不绘制
func (b Bode) WriteBode(w io.Writer, list *Record, format string) error {
	gain, err := b.newPlot(list, "|H|", "Gain (dB)", func(p PointRecord) Float { return p.MagnitudeDB })
	if err != nil {
		return err
	}
	phase, err := b.newPlot(list, "∠H", "Phase (°)", func(p PointRecord) Float { return p.PhaseDegrees })
	if err != nil {
		return err
	}
	gain.Title.Text = list.Circuit

	var canvas vg.CanvasWriterTo
	switch strings.ToLower(format) {
	case ImageSVG:
		canvas = vgsvg.New(b.Width, b.Height)
	case ImagePNG, "":
		canvas = vgimg.PngCanvas{Canvas: vgimg.New(b.Width, b.Height)}
	default:
		return fmt.Errorf("未知的图片格式 '%s'", format)
	}
	plots := [][]*plot.Plot{{gain}, {phase}}
	tiles := draw.Tiles{Rows: 2, Cols: 1, PadX: vg.Millimeter, PadY: vg.Millimeter}
	canvases := plot.Align(plots, tiles, draw.New(canvas))
	for i := range plots {
		plots[i][0].Draw(canvases[i][0])
	}
	_, err = canvas.WriteTo(w)
	return err
}

// SaveBode 保存波特图，格式由扩展名决定
func (b Bode) SaveBode(path string, list *Record) error {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if format != ImagePNG && format != ImageSVG {
		return fmt.Errorf("未知的图片格式 '%s'", path)
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := b.WriteBode(file, list, format); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func (b Bode) newPlot(list *Record, title, label string, value func(PointRecord) Float) (*plot.Plot, error) {
	p := plot.New()
	p.X.Label.Text = "Frequency (Hz)"
	p.Y.Label.Text = label
	p.Add(plotter.NewGrid())

	logScale := len(list.Points) > 0
	xys := make(plotter.XYs, 0, len(list.Points))
	for _, point := range list.Points {
		x, y := float64(point.Frequency), float64(value(point))
		if x <= 0 {
			logScale = false
		}
		if math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		xys = append(xys, plotter.XY{X: x, Y: y})
	}
	if logScale && len(xys) > 0 {
		p.X.Scale = plot.LogScale{}
		p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	if len(xys) == 0 {
		return p, nil
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", title, err)
	}
	p.Add(line)
	p.Legend.Add(title, line)
	return p, nil
}
