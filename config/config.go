package config

import (
	"fmt"
	"strings"

	"rlc/sweep"
)

// Config 扫频配置
type Config struct {
	Log     LogConfig     `mapstructure:"log" validate:"required"`
	Circuit CircuitConfig `mapstructure:"circuit" validate:"required"`
	Sweep   SweepConfig   `mapstructure:"sweep" validate:"required"`
	Output  OutputConfig  `mapstructure:"output" validate:"required"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=text json"`
}

// CircuitConfig 电路描述，components 为元件位置到数值的映射（如 R1 = "4k7"）
type CircuitConfig struct {
	Kind       string            `mapstructure:"kind" validate:"required,oneof=rlc-tank sallen-key divider"`
	Components map[string]string `mapstructure:"components" validate:"dive,keys,required,endkeys,required"`
}

// SweepConfig 频率列表
//
//	linear:    [start, stop) 步长 step
//	geometric: start 到 stop 对数等分 points 个点，保留 digits 位小数
type SweepConfig struct {
	Mode    string  `mapstructure:"mode" validate:"required,oneof=linear geometric"`
	Start   float64 `mapstructure:"start" validate:"gte=0"`
	Stop    float64 `mapstructure:"stop" validate:"gtfield=Start"`
	Step    float64 `mapstructure:"step" validate:"required_if=Mode linear,gte=0"`
	Points  int     `mapstructure:"points" validate:"required_if=Mode geometric,gte=0"`
	Digits  int     `mapstructure:"digits" validate:"gte=0,lte=12"`
	Workers int     `mapstructure:"workers" validate:"gte=0"`
}

// OutputConfig 输出配置，html/plot 为空时不生成
type OutputConfig struct {
	Format string `mapstructure:"format" validate:"required,oneof=human json"`
	HTML   string `mapstructure:"html"`
	Plot   string `mapstructure:"plot" validate:"omitempty,endswith=.png|endswith=.svg"`
}

// Default 默认配置：Sallen-Key 低通，500 Hz ~ 200 kHz 对数 30 点
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Circuit: CircuitConfig{
			Kind:       "sallen-key",
			Components: map[string]string{},
		},
		Sweep: SweepConfig{
			Mode:   "geometric",
			Start:  500,
			Stop:   200000,
			Points: 30,
			Digits: 0,
		},
		Output: OutputConfig{
			Format: "human",
		},
	}
}

// Frequencies 按配置生成频率列表
func (s SweepConfig) Frequencies() ([]float64, error) {
	switch strings.ToLower(s.Mode) {
	case "linear":
		return sweep.Linear(s.Start, s.Stop, s.Step)
	case "geometric":
		list, err := sweep.Geometric(s.Start, s.Stop, s.Points)
		if err != nil {
			return nil, err
		}
		return sweep.Round(list, s.Digits), nil
	}
	return nil, fmt.Errorf("未知的扫频方式 '%s'", s.Mode)
}
