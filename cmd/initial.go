package cmd

import (
	"fmt"

	"datewindow/internal/phrase"

	"github.com/spf13/cobra"
)

var (
	initialFrequency string
	initialLayout    string
)

// initialCmd 实现 initial 子命令：给定周期结束日期和报表频率，输出周期起始日期。
// 用法: datewindow initial <date> --frequency WEEK|MONTH|QUARTER|YEAR
var initialCmd = newInitialCmd()

func newInitialCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "initial <date>",
		Short: "Show the first day of the reporting period ending at a date",
		Example: `  datewindow initial yesterday --frequency MONTH
  datewindow initial 2023-05-17 --frequency QUARTER`,
		Args: cobra.ExactArgs(1),
		RunE: runInitial,
	}
	cmd.Flags().StringVar(&initialFrequency, "frequency", "MONTH", "Reporting frequency: WEEK/MONTH/QUARTER/YEAR")
	cmd.Flags().StringVarP(&initialLayout, "layout", "l", "", "Output date layout in strftime syntax (default: config value)")
	return cmd
}

func runInitial(cmd *cobra.Command, args []string) error {
	rc, err := prepareRun(cmd, initialLayout)
	if err != nil {
		return err
	}

	end, err := resolver.ResolveTime(args[0], rc.Layout)
	if err != nil {
		return fmt.Errorf("resolve %q: %w", args[0], err)
	}

	start, err := phrase.InitialDate(end, initialFrequency)
	if err != nil {
		return err
	}
	rc.Log.Debug().Str("frequency", initialFrequency).Time("end", end).Time("start", start).Msg("initial date")

	fmt.Fprintln(cmd.OutOrStdout(), phrase.Format(start, rc.Layout))
	return nil
}

func init() {
	rootCmd.AddCommand(initialCmd)
}
