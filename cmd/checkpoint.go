package cmd

import (
	"fmt"
	"time"

	"datewindow/internal/checkpoint"

	"github.com/spf13/cobra"
)

var checkpointFormat string

// checkpointCmd 是断点管理命令组。
var checkpointCmd = newCheckpointCmd()

// newCheckpointCmd 构建 checkpoint 命令组，便于在测试中复用。
func newCheckpointCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checkpoint",
		Short: "Manage job checkpoints written by iterate --job",
		Args:  cobra.NoArgs,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List job checkpoints",
		Args:  cobra.NoArgs,
		RunE:  runCheckpointList,
	}
	listCmd.Flags().StringVarP(&checkpointFormat, "format", "f", "table", "Output format: table/json/csv")

	removeCmd := &cobra.Command{
		Use:     "remove <job>",
		Short:   "Remove a job checkpoint",
		Example: `  datewindow checkpoint remove ga4`,
		Args:    cobra.ExactArgs(1),
		RunE:    runCheckpointRemove,
	}

	cmd.AddCommand(listCmd, removeCmd)
	return cmd
}

// runCheckpointList 列出所有断点。
func runCheckpointList(cmd *cobra.Command, _ []string) error {
	entries, err := checkpoint.List()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(entries) == 0 && checkpointFormat != "json" {
		fmt.Fprintln(out, "no checkpoints recorded")
		return nil
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.Job, e.Interval, e.LastStart, e.LastEnd, e.Resume, e.UpdatedAt.Format(time.RFC3339)})
	}
	headers := []string{"job", "interval", "last_start", "last_end", "resume", "updated_at"}
	return writeOutput(out, checkpointFormat, headers, rows, entries)
}

// runCheckpointRemove 删除指定任务的断点。
func runCheckpointRemove(cmd *cobra.Command, args []string) error {
	if err := checkpoint.Remove(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "checkpoint %q removed\n", args[0])
	return nil
}

// init 注册 checkpoint 命令。
func init() {
	rootCmd.AddCommand(checkpointCmd)
}
