package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix 环境变量前缀，例如 RLC_SWEEP_START
const EnvPrefix = "RLC"

// Load 加载配置
// 优先级: 环境变量 > 配置文件 > 默认值；path 为空或文件不存在时只使用默认值与环境变量
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("读取配置文件 %s 失败: %w", path, err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}
	if cfg.Circuit.Components == nil {
		cfg.Circuit.Components = map[string]string{}
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setDefaults 默认值同时让 AutomaticEnv 能识别全部键
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.format", cfg.Log.Format)
	v.SetDefault("circuit.kind", cfg.Circuit.Kind)
	v.SetDefault("sweep.mode", cfg.Sweep.Mode)
	v.SetDefault("sweep.start", cfg.Sweep.Start)
	v.SetDefault("sweep.stop", cfg.Sweep.Stop)
	v.SetDefault("sweep.step", cfg.Sweep.Step)
	v.SetDefault("sweep.points", cfg.Sweep.Points)
	v.SetDefault("sweep.digits", cfg.Sweep.Digits)
	v.SetDefault("sweep.workers", cfg.Sweep.Workers)
	v.SetDefault("output.format", cfg.Output.Format)
	v.SetDefault("output.html", cfg.Output.HTML)
	v.SetDefault("output.plot", cfg.Output.Plot)
}

// Normalize 枚举类取值统一为小写
func (c *Config) Normalize() {
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
	c.Circuit.Kind = strings.ToLower(strings.TrimSpace(c.Circuit.Kind))
	c.Sweep.Mode = strings.ToLower(strings.TrimSpace(c.Sweep.Mode))
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
}

// Validate 校验配置
func (c *Config) Validate() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(c); err != nil {
		return fmt.Errorf("配置校验失败: %w", err)
	}
	return nil
}
