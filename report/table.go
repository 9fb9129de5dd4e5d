package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"rlc/sweep"
	"rlc/utils"
)

// 输出格式
const (
	FormatHuman = "human"
	FormatJSON  = "json"
)

// Table 输出扫频表格
// human 为对齐的文本表格，json 为频率点数组
func Table(w io.Writer, points []sweep.Point, format string) error {
	switch strings.ToLower(format) {
	case FormatJSON:
		list := make([]PointRecord, len(points))
		for i, p := range points {
			list[i] = NewPointRecord(p)
		}
		return json.NewEncoder(w).Encode(list)
	case FormatHuman, "":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "FREQUENCY\t|H|\tGAIN\tPHASE")
		for _, p := range points {
			fmt.Fprintf(tw, "%s\t%.4f\t%.2f dB\t%.1f°\n",
				utils.FormatPrefix(p.Frequency, "Hz", 3),
				p.Magnitude(),
				p.MagnitudeDB(),
				p.PhaseDegrees(),
			)
		}
		return tw.Flush()
	}
	return fmt.Errorf("未知的输出格式 '%s'", format)
}
