package sweep

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/cmplx"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"rlc"
	"rlc/maths"
)

// Point 扫频结果中的一个点
type Point struct {
	Frequency float64    // Hz
	Value     complex128 // H(f)
}

// Magnitude |H|
func (p Point) Magnitude() float64 { return maths.Abs(p.Value) }

// MagnitudeDB 20·log10|H|
func (p Point) MagnitudeDB() float64 { return 20 * math.Log10(p.Magnitude()) }

// Phase 相位（弧度）
func (p Point) Phase() float64 { return cmplx.Phase(p.Value) }

// PhaseDegrees 相位（角度）
func (p Point) PhaseDegrees() float64 { return p.Phase() * 180 / math.Pi }

// Options 扫频参数
type Options struct {
	Workers int          // 并发数，<= 0 时使用 CPU 数
	Logger  *slog.Logger // nil 时使用 slog.Default()
}

// Evaluate 在每个频率上求电路的传递函数，结果与 freqs 顺序一致
// 任一频率出错或 ctx 取消时返回错误
func Evaluate(ctx context.Context, c rlc.Circuit, freqs []float64, opts Options) ([]Point, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	workers = max(1, min(workers, len(freqs)))

	start := time.Now()
	logger.Debug("开始扫频", "circuit", c.Name(), "points", len(freqs), "workers", workers)

	points := make([]Point, len(freqs))
	g, ctx := errgroup.WithContext(ctx)
	size := (len(freqs) + workers - 1) / workers
	for lo := 0; lo < len(freqs); lo += size {
		hi := min(lo+size, len(freqs))
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				h, err := c.Transfer(freqs[i])
				if err != nil {
					return fmt.Errorf("%s 在 %g Hz: %w", c.Name(), freqs[i], err)
				}
				points[i] = Point{Frequency: freqs[i], Value: h}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Warn("扫频失败", "circuit", c.Name(), "error", err)
		return nil, err
	}
	logger.Debug("扫频完成", "circuit", c.Name(), "points", len(points), "elapsed", time.Since(start))
	return points, nil
}

// Peak 增益最大的点
func Peak(points []Point) (Point, bool) {
	if len(points) == 0 {
		return Point{}, false
	}
	best := points[0]
	for _, p := range points[1:] {
		if p.Magnitude() > best.Magnitude() {
			best = p
		}
	}
	return best, true
}

// Cutoff 增益首次穿越 level (dB) 的频率，在相邻两点间按对数频率线性插值
func Cutoff(points []Point, level float64) (float64, bool) {
	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		da, db := a.MagnitudeDB()-level, b.MagnitudeDB()-level
		if da == 0 {
			return a.Frequency, true
		}
		if (da < 0) == (db < 0) && db != 0 {
			continue
		}
		t := da / (da - db)
		if a.Frequency > 0 && b.Frequency > 0 {
			la, lb := math.Log10(a.Frequency), math.Log10(b.Frequency)
			return math.Pow(10, la+t*(lb-la)), true
		}
		return a.Frequency + t*(b.Frequency-a.Frequency), true
	}
	return 0, false
}
