package main

import (
	"github.com/spf13/cobra"
)

// rootOptions 全局参数
type rootOptions struct {
	logLevel  string
	logFormat string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "rlc",
		Short: "交流电路元件计算与扫频",
		Long: `交流电路元件计算与扫频

元件值支持公制前缀与单位，例如 4k7、100nF、500uH、1.5E3。

Examples:
  rlc parse 5k6 500µH
  rlc format 0.0005 --unit H
  rlc impedance C 100n --freq 1k
  rlc polar Z 3+4i --degrees
  rlc parallel R 1k 1k 2k
  rlc sweep --config rlc.toml --plot bode.png`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			_, err := setupLogger(cmd.ErrOrStderr(), opts.logLevel, opts.logFormat)
			return err
		},
	}
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "日志级别 (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "text", "日志格式 (text, json)")

	cmd.AddCommand(
		newParseCmd(),
		newFormatCmd(),
		newPolarCmd(),
		newImpedanceCmd(),
		newCombineCmd("parallel"),
		newCombineCmd("series"),
		newSweepCmd(),
	)
	return cmd
}
