package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// 命令行标志变量
var (
	resolveLayout string // 输出日期格式（strftime）
	resolveFormat string // 输出格式：table/json/csv
)

// resolveCmd 实现 resolve 子命令，把日期短语或字面日期解析为具体日期。
// 用法: datewindow resolve <phrase>... [-l layout] [-f format]
var resolveCmd = newResolveCmd()

// newResolveCmd 构建 resolve 命令，便于在测试中复用。
func newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <phrase>...",
		Short: "Resolve date phrases to concrete dates",
		Long: `Resolve each argument to a concrete date.

Arguments may be literal dates (YYYY-MM-DD or "YYYY-MM-DD HH:MM:SS") or phrases:
yesterday, today, tomorrow, last_week, this_month, next_year, 3_days_ago, 2_months_next...
Run "datewindow vocab" for the full vocabulary.`,
		Example: `  datewindow resolve yesterday
  datewindow resolve last_month this_month -f json
  datewindow resolve last_hour -l "%Y-%m-%d %H:%M:%S"`,
		Args: cobra.MinimumNArgs(1),
		RunE: runResolve,
	}
	cmd.Flags().StringVarP(&resolveLayout, "layout", "l", "", "Output date layout in strftime syntax (default: config value)")
	cmd.Flags().StringVarP(&resolveFormat, "format", "f", "table", "Output format: table/json/csv")
	return cmd
}

// resolvedDate 表示一条解析结果，用于 JSON 输出。
type resolvedDate struct {
	Phrase string `json:"phrase"`
	Date   string `json:"date"`
}

// runResolve 逐个解析参数；任何一个失败都会立即返回错误。
func runResolve(cmd *cobra.Command, args []string) error {
	rc, err := prepareRun(cmd, resolveLayout)
	if err != nil {
		return err
	}

	records := make([]resolvedDate, 0, len(args))
	rows := make([][]string, 0, len(args))
	for _, arg := range args {
		value, err := resolver.Resolve(arg, rc.Layout)
		if err != nil {
			return fmt.Errorf("resolve %q: %w", arg, err)
		}
		rc.Log.Debug().Str("phrase", arg).Str("layout", rc.Layout).Str("date", value).Msg("resolved")

		records = append(records, resolvedDate{Phrase: arg, Date: value})
		rows = append(rows, []string{arg, value})
	}

	return writeOutput(cmd.OutOrStdout(), resolveFormat, []string{"phrase", "date"}, rows, records)
}

// init 注册 resolve 命令。
func init() {
	rootCmd.AddCommand(resolveCmd)
}
