package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"datewindow/internal/checkpoint"
	"datewindow/internal/phrase"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// 命令行标志变量
var (
	iterateStart     string
	iterateEnd       string
	iterateInterval  string
	iterateInclusive bool
	iterateLayout    string
	iterateFormat    string
	iterateLimit     int
	iterateJob       string
	iterateResume    bool
)

// iterateCmd 实现 iterate 子命令，把一段时间切分为报表窗口。
// 用法: datewindow iterate --start S --end E --interval I [--inclusive] [--job NAME [--resume]]
var iterateCmd = newIterateCmd()

// newIterateCmd 构建 iterate 命令，便于在测试中复用。
func newIterateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "iterate",
		Short: "Split a date span into report windows",
		Long: `List the (start, end) report windows covering --start..--end, stepping by --interval.

The first window starts at --start snapped to its bucket (weekly -> Sunday,
monthly/1_month -> first of month, yearly -> January 1). With --inclusive the
reported end is the last day (or hour) inside the window, otherwise it is the
start of the next window. The last window never reaches past --end.

With --job the resume point after the last window is stored as a checkpoint;
--resume starts from that checkpoint instead of --start.`,
		Example: `  datewindow iterate --start 2023-01-01 --end 2023-03-01 --interval 1_month --inclusive
  datewindow iterate --start last_month --end yesterday --interval weekly -f json
  datewindow iterate --job ga4 --resume --end yesterday`,
		Args: cobra.NoArgs,
		RunE: runIterate,
	}
	cmd.Flags().StringVar(&iterateStart, "start", "", "Start date or phrase")
	cmd.Flags().StringVar(&iterateEnd, "end", "today", "End date or phrase (inclusive)")
	cmd.Flags().StringVarP(&iterateInterval, "interval", "i", "", "Window size: day/weekly/monthly/yearly/hourly or <N>_<bucket> (e.g. 1_month, 3 weeks)")
	cmd.Flags().BoolVar(&iterateInclusive, "inclusive", false, "Report inclusive window ends (default: config value)")
	cmd.Flags().StringVarP(&iterateLayout, "layout", "l", "", "Output date layout in strftime syntax (default: config value)")
	cmd.Flags().StringVarP(&iterateFormat, "format", "f", "table", "Output format: table/json/csv")
	cmd.Flags().IntVarP(&iterateLimit, "limit", "n", 0, "Maximum number of windows to list (0 = all)")
	cmd.Flags().StringVar(&iterateJob, "job", "", "Record a checkpoint for this job after listing")
	cmd.Flags().BoolVar(&iterateResume, "resume", false, "Start from the job's checkpoint instead of --start")
	cmd.MarkFlagsMutuallyExclusive("start", "resume")
	return cmd
}

// windowRecord 表示单个窗口，用于 JSON 输出。
type windowRecord struct {
	Start   string `json:"start"`
	End     string `json:"end"`
	Partial bool   `json:"partial"`
}

// runIterate 是 iterate 命令的核心逻辑：解析参数、生成窗口、输出并记录断点。
func runIterate(cmd *cobra.Command, _ []string) error {
	rc, err := prepareRun(cmd, iterateLayout)
	if err != nil {
		return err
	}

	if iterateLimit < 0 {
		return fmt.Errorf("limit must be >= 0, got %d", iterateLimit)
	}

	inclusive := rc.Inclusive
	if cmd.Flags().Changed("inclusive") {
		inclusive = iterateInclusive
	}

	job := strings.TrimSpace(iterateJob)
	start := strings.TrimSpace(iterateStart)
	interval := strings.TrimSpace(iterateInterval)

	// 断点续跑：起点取自断点，未指定步长时沿用断点记录的步长
	if iterateResume {
		if job == "" {
			return fmt.Errorf("--resume requires --job")
		}
		entry, err := checkpoint.Load(job)
		if err != nil {
			return err
		}
		start = entry.Resume
		if interval == "" {
			interval = entry.Interval
		}
		rc.Log.Info().Str("job", job).Str("resume", start).Msg("resuming from checkpoint")
	}

	if start == "" {
		return fmt.Errorf("--start is required")
	}
	if interval == "" {
		return fmt.Errorf("--interval is required")
	}

	plan, err := resolver.NewRange(start, iterateEnd, interval, inclusive, rc.Layout)
	if err != nil {
		return fmt.Errorf("plan windows: %w", err)
	}
	rc.Log.Debug().
		Str("interval", interval).
		Str("bucket", plan.Arithmetic.Bucket.String()).
		Int("magnitude", plan.Arithmetic.Magnitude).
		Time("start", plan.Start).
		Time("end", plan.End).
		Bool("inclusive", inclusive).
		Msg("window plan")

	windows := collectWindows(plan, iterateLimit)

	records := make([]windowRecord, 0, len(windows))
	rows := make([][]string, 0, len(windows))
	for _, w := range windows {
		rec := windowRecord{
			Start:   phrase.Format(w.Start, plan.Layout),
			End:     phrase.Format(w.End, plan.Layout),
			Partial: w.Partial,
		}
		records = append(records, rec)
		rows = append(rows, []string{rec.Start, rec.End, partialLabel(w.Partial)})
	}

	if err := writeOutput(cmd.OutOrStdout(), iterateFormat, []string{"start", "end", "partial"}, rows, records); err != nil {
		return err
	}

	if job == "" || len(windows) == 0 {
		return nil
	}

	last := windows[len(windows)-1]
	entry := checkpoint.Entry{
		Job:       job,
		Interval:  interval,
		Layout:    plan.Layout,
		LastStart: phrase.Format(last.Start, plan.Layout),
		LastEnd:   phrase.Format(last.End, plan.Layout),
		// 断点起点使用完整精度的字面格式，保证 --resume 总能原样解析
		Resume: last.ResumePoint().Format(time.DateTime),
	}
	if err := checkpoint.Save(entry); err != nil {
		return fmt.Errorf("save checkpoint %q: %w", job, err)
	}
	rc.Log.Info().Str("job", job).Str("resume", entry.Resume).Msg("checkpoint saved")
	return nil
}

// collectWindows 遍历窗口序列，limit > 0 时提前结束遍历。
func collectWindows(plan phrase.RangeSpec, limit int) []phrase.Window {
	total := 0
	for range plan.Windows() {
		total++
		if limit > 0 && total >= limit {
			break
		}
	}

	bar := newWindowProgressBar(total)
	if bar != nil {
		defer func() { _ = bar.Finish() }()
	}

	windows := make([]phrase.Window, 0, total)
	for w := range plan.Windows() {
		if len(windows) >= total {
			break
		}
		windows = append(windows, w)
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	return windows
}

// newWindowProgressBar 创建窗口生成进度条。
// 仅当窗口数量 > 1 且在终端环境下才显示。
func newWindowProgressBar(total int) *progressbar.ProgressBar {
	if total <= 1 {
		return nil
	}
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return nil
	}

	return progressbar.NewOptions(
		total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetDescription("planning windows"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionThrottle(65*time.Millisecond),
	)
}

func partialLabel(partial bool) string {
	if partial {
		return "partial"
	}
	return ""
}

// init 注册 iterate 命令。
func init() {
	rootCmd.AddCommand(iterateCmd)
}
