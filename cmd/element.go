package main

import (
	"fmt"
	"math"
	"math/cmplx"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"rlc/element"
	"rlc/utils"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <value>...",
		Short: "解析带公制前缀的数值",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, arg := range args {
				fmt.Fprintf(tw, "%s\t%s\n", arg, utils.FormatFloat(utils.ParsePrefix(arg)))
			}
			return tw.Flush()
		},
	}
}

func newFormatCmd() *cobra.Command {
	var (
		unit      string
		precision int
	)
	cmd := &cobra.Command{
		Use:   "format <value>...",
		Short: "以公制前缀格式输出数值",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values := utils.Values(args)
			for i := range values {
				v := values.ParseFloat64(i, math.NaN())
				fmt.Fprintln(cmd.OutOrStdout(), utils.FormatPrefix(v, unit, precision))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&unit, "unit", "u", "", "单位")
	cmd.Flags().IntVarP(&precision, "precision", "p", 3, "尾数小数位数")
	return cmd
}

// parseQuantity 解析命令行中的元件类型与数值，数值可以是复数（如 3+4i）
func parseQuantity(typeName, value string) (element.Quantity, error) {
	t, err := element.ParseType(typeName)
	if err != nil {
		return element.Quantity{}, err
	}
	v := utils.Values{value}.ParseComplex128(0, cmplx.NaN())
	if cmplx.IsNaN(v) {
		return element.Quantity{}, fmt.Errorf("无法解析 '%s'", value)
	}
	if imag(v) == 0 {
		return element.New(t, real(v))
	}
	return element.New(t, v)
}

func newPolarCmd() *cobra.Command {
	var (
		degrees   bool
		precision int
	)
	cmd := &cobra.Command{
		Use:   "polar <type> <value>",
		Short: "以极坐标形式输出元件值",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := parseQuantity(args[0], args[1])
			if err != nil {
				return err
			}
			if degrees {
				fmt.Fprintln(cmd.OutOrStdout(), q.PolarDegrees(precision))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), q.Polar(precision))
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&degrees, "degrees", "d", false, "相位以角度输出")
	cmd.Flags().IntVarP(&precision, "precision", "p", 3, "相位小数位数")
	return cmd
}

func newImpedanceCmd() *cobra.Command {
	var (
		frequency string
		precision int
	)
	cmd := &cobra.Command{
		Use:   "impedance <type> <value>",
		Short: "计算电容或电感在指定频率下的阻抗",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := parseQuantity(args[0], args[1])
			if err != nil {
				return err
			}
			f := utils.ParsePrefix(frequency)
			if math.IsNaN(f) {
				return fmt.Errorf("无法解析频率 '%s'", frequency)
			}
			z, err := q.ImpedanceAt(f)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "%s\t%s\n", q.Type(), q.MetricPrefix(precision))
			fmt.Fprintf(tw, "f\t%s\n", utils.FormatPrefix(f, "Hz", precision))
			fmt.Fprintf(tw, "Z\t%s\n", z.MetricPrefix(precision))
			fmt.Fprintf(tw, "|Z|\t%s\n", z.PolarDegrees(precision))
			return tw.Flush()
		},
	}
	cmd.Flags().StringVarP(&frequency, "freq", "f", "1k", "频率 (Hz)")
	cmd.Flags().IntVarP(&precision, "precision", "p", 3, "小数位数")
	return cmd
}

// newCombineCmd 并联或串联
func newCombineCmd(name string) *cobra.Command {
	var precision int
	combine, short := element.Parallel, "计算多个元件并联"
	if name == "series" {
		combine, short = element.Series, "计算多个元件串联"
	}
	cmd := &cobra.Command{
		Use:   name + " <type> <value>...",
		Short: short,
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			list := make([]element.Quantity, 0, len(args)-1)
			for _, arg := range args[1:] {
				q, err := parseQuantity(args[0], arg)
				if err != nil {
					return err
				}
				list = append(list, q)
			}
			q, err := combine(list...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), q.MetricPrefix(precision))
			return nil
		},
	}
	cmd.Flags().IntVarP(&precision, "precision", "p", 3, "尾数小数位数")
	return cmd
}
