package cmd

import (
	"fmt"
	"io"
	"time"

	"datewindow/internal/checkpoint"
	"datewindow/internal/config"
	"datewindow/internal/phrase"

	"github.com/spf13/cobra"
)

// doctorCmd 实现 doctor 子命令，一站式诊断配置和断点存储问题。
// 依次执行 3 项检查：配置合法性、输出格式可往返解析、断点文件可读。
// 有错误时返回非零退出码，仅警告时返回 0。
// 用法: datewindow doctor
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose configuration and checkpoint issues",
	Args:  cobra.NoArgs,
	RunE:  runDoctor,
}

// init 注册 doctor 命令。
func init() {
	rootCmd.AddCommand(doctorCmd)
}

// runDoctor 是 doctor 命令的核心逻辑，按顺序执行 3 项诊断检查：
//  1. 配置合法性（layout、log_level）
//  2. 输出格式往返（格式化后能按同一格式解析回来）
//  3. 断点存储（所有断点文件可读，且 resume 可被解析）
//
// 输出使用 ✅/⚠️/❌ 分类显示，有错误时返回 error（exit 非零）。
func runDoctor(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Running diagnostics...")

	hasError := false

	// 1. 配置合法性检查
	cfg, cfgErr := config.Load()
	if cfgErr != nil {
		hasError = true
		fmt.Fprintf(out, "❌ Config: %v\n", cfgErr)
	} else {
		issues := config.ValidateConfig(cfg)
		if len(issues) == 0 {
			fmt.Fprintln(out, "✅ Config: OK")
		} else {
			fmt.Fprintf(out, "⚠️  Config: %d issue(s)\n", len(issues))
			printLines(out, issues)
		}
	}

	// 2. 输出格式往返检查（需要配置可读）
	if cfg == nil {
		fmt.Fprintln(out, "⚠️  Layout: skipped (config unavailable)")
	} else {
		sample := time.Date(2024, 2, 29, 13, 45, 30, 0, time.UTC)
		formatted := phrase.Format(sample, cfg.Layout)
		if _, err := phrase.Parse(formatted, cfg.Layout); err != nil {
			hasError = true
			fmt.Fprintf(out, "❌ Layout: %q cannot be parsed back: %v\n", cfg.Layout, err)
		} else {
			fmt.Fprintf(out, "✅ Layout: %q -> %s\n", cfg.Layout, formatted)
		}
	}

	// 3. 断点存储检查
	entries, listErr := checkpoint.List()
	if listErr != nil {
		hasError = true
		fmt.Fprintf(out, "❌ Checkpoints: %v\n", listErr)
	} else {
		broken := make([]string, 0)
		for _, e := range entries {
			if _, err := resolver.ResolveTime(e.Resume, ""); err != nil {
				broken = append(broken, fmt.Sprintf("%s: resume %q: %v", e.Job, e.Resume, err))
			}
		}
		switch {
		case len(entries) == 0:
			fmt.Fprintln(out, "✅ Checkpoints: none recorded")
		case len(broken) == 0:
			fmt.Fprintf(out, "✅ Checkpoints: %d OK\n", len(entries))
		default:
			hasError = true
			fmt.Fprintf(out, "❌ Checkpoints: %d/%d unusable\n", len(broken), len(entries))
			printLines(out, broken)
		}
	}

	if hasError {
		return fmt.Errorf("doctor found issues")
	}
	return nil
}

// printLines 将字符串列表以缩进列表形式输出，每行前加 "   - " 前缀。
func printLines(out io.Writer, lines []string) {
	for _, line := range lines {
		fmt.Fprintf(out, "   - %s\n", line)
	}
}
