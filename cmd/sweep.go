package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"rlc"
	"rlc/config"
	"rlc/report"
	"rlc/sweep"
	"rlc/utils"
)

// sweepOptions 扫频命令参数，非空时覆盖配置文件
type sweepOptions struct {
	config  string
	kind    string
	format  string
	html    string
	plot    string
	workers int
	set     map[string]string
}

func newSweepCmd() *cobra.Command {
	opts := &sweepOptions{}
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "对电路进行扫频并输出传递函数",
		Long: `对电路进行扫频并输出传递函数

配置可来自文件（toml/yaml/json）与 RLC_ 前缀的环境变量，命令行参数优先。

Examples:
  rlc sweep                                   # Sallen-Key 低通，默认参数
  rlc sweep --circuit rlc-tank --format json
  rlc sweep --circuit divider --set Z2=1uF --plot bode.svg
  rlc sweep --config rlc.toml --html bode.html`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(opts.config)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("log-level") && !cmd.Flags().Changed("log-format") {
				if _, err := setupLogger(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format); err != nil {
					return err
				}
			}
			opts.apply(cmd, cfg)
			cfg.Normalize()
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runSweep(cmd, cfg)
		},
	}
	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "配置文件")
	cmd.Flags().StringVar(&opts.kind, "circuit", "", "电路类型 (rlc-tank, sallen-key, divider)")
	cmd.Flags().StringToStringVar(&opts.set, "set", nil, "元件取值，例如 --set R1=4k7,C1=10nF")
	cmd.Flags().StringVarP(&opts.format, "format", "o", "", "输出格式 (human, json)")
	cmd.Flags().StringVar(&opts.html, "html", "", "输出 HTML 波特图")
	cmd.Flags().StringVar(&opts.plot, "plot", "", "输出波特图图片 (.png, .svg)")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 0, "并发数")
	return cmd
}

// apply 命令行参数覆盖配置
func (opts *sweepOptions) apply(cmd *cobra.Command, cfg *config.Config) {
	if kind := strings.ToLower(strings.TrimSpace(opts.kind)); kind != "" && kind != cfg.Circuit.Kind {
		cfg.Circuit.Kind = kind
		cfg.Circuit.Components = map[string]string{}
	}
	for name, value := range opts.set {
		cfg.Circuit.Components[name] = value
	}
	if opts.format != "" {
		cfg.Output.Format = opts.format
	}
	if opts.html != "" {
		cfg.Output.HTML = opts.html
	}
	if opts.plot != "" {
		cfg.Output.Plot = opts.plot
	}
	if cmd.Flags().Changed("workers") {
		cfg.Sweep.Workers = opts.workers
	}
}

func runSweep(cmd *cobra.Command, cfg *config.Config) error {
	logger := slog.Default()
	c, err := rlc.NewCircuit(cfg.Circuit.Kind, cfg.Circuit.Components)
	if err != nil {
		return err
	}
	for _, comp := range c.Components() {
		logger.Debug("元件", "name", comp.Name, "type", comp.Quantity.Type(), "value", comp.Quantity.MetricPrefix(3))
	}
	freqs, err := cfg.Sweep.Frequencies()
	if err != nil {
		return err
	}
	points, err := sweep.Evaluate(cmd.Context(), c, freqs, sweep.Options{Workers: cfg.Sweep.Workers, Logger: logger})
	if err != nil {
		return err
	}
	if err := report.Table(cmd.OutOrStdout(), points, cfg.Output.Format); err != nil {
		return err
	}
	if peak, ok := sweep.Peak(points); ok {
		logger.Info("峰值", "frequency", utils.FormatPrefix(peak.Frequency, "Hz", 3), "gain_db", peak.MagnitudeDB())
	}
	if fc, ok := sweep.Cutoff(points, -3.0103); ok {
		logger.Info("-3 dB", "frequency", utils.FormatPrefix(fc, "Hz", 3))
	}

	list := report.NewRecord(c, points)
	if cfg.Output.HTML != "" {
		if err := writeHTML(cfg.Output.HTML, list); err != nil {
			return fmt.Errorf("输出 HTML 失败: %w", err)
		}
		logger.Info("已生成网页", "path", cfg.Output.HTML)
	}
	if cfg.Output.Plot != "" {
		if err := report.DefaultBode.SaveBode(cfg.Output.Plot, list); err != nil {
			return fmt.Errorf("输出波特图失败: %w", err)
		}
		logger.Info("已生成波特图", "path", cfg.Output.Plot)
	}
	return nil
}

func writeHTML(path string, list *report.Record) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := report.NewCharts(list).Render(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
