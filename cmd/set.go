package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"datewindow/internal/config"

	"github.com/spf13/cobra"
)

// setCmd 实现 set 子命令，用于查看或修改默认配置。
// 支持两种模式：
// 1. datewindow set - 显示当前配置
// 2. datewindow set <key> <value> - 设置配置项（支持 layout、inclusive、log_level、log_format）
var setCmd = newSetCmd()

// newSetCmd 构建 set 命令，便于在测试中复用。
func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set [key] [value]",
		Short: "Set or show default configuration",
		Long: `View or modify default configuration (layout, inclusive, log_level, log_format).

Without arguments, displays the current configuration.
With key/value, sets the specified option.`,
		Example: `  datewindow set
  datewindow set layout "%Y-%m-%d %H:%M:%S"
  datewindow set inclusive true
  datewindow set log_level debug
  datewindow set log_format json`,
		Args: validateSetArgs,
		RunE: runSet,
	}
}

// validateSetArgs 校验 set 参数格式。
func validateSetArgs(cmd *cobra.Command, args []string) error {
	// 无参数：显示配置
	if len(args) == 0 {
		return nil
	}
	// 设置配置需要正好两个参数
	if len(args) != 2 {
		return fmt.Errorf("usage: datewindow set [layout|inclusive|log_level|log_format] <value>")
	}
	return nil
}

// runSet 执行 set 逻辑（显示或设置配置项）。
func runSet(cmd *cobra.Command, args []string) error {
	// 加载当前配置
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// 无参数时显示当前配置
	if len(args) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "layout: %s\ninclusive: %t\nlog_level: %s\nlog_format: %s\n", cfg.Layout, cfg.Inclusive, cfg.LogLevel, cfg.LogFormat)
		return nil
	}

	key := strings.ToLower(strings.TrimSpace(args[0]))
	val := strings.TrimSpace(args[1])

	// 根据 key 修改对应配置项
	switch key {
	case "layout":
		if val == "" || !strings.Contains(val, "%") {
			return fmt.Errorf("invalid layout %q: expected strftime directives such as %%Y-%%m-%%d", val)
		}
		cfg.Layout = val
	case "inclusive":
		inclusive, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("invalid inclusive %q: %w", val, err)
		}
		cfg.Inclusive = inclusive
	case "log_level":
		if !config.IsValidLogLevel(val) {
			return fmt.Errorf("invalid log_level %q (supported: trace, debug, info, warn, error)", val)
		}
		cfg.LogLevel = strings.ToLower(val)
	case "log_format":
		if !config.IsValidLogFormat(val) {
			return fmt.Errorf("invalid log_format %q (supported: console, json)", val)
		}
		cfg.LogFormat = strings.ToLower(val)
	default:
		return fmt.Errorf("unsupported key %q (supported: layout, inclusive, log_level, log_format)", args[0])
	}

	// 保存修改后的配置
	if err := config.Save(*cfg); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s saved\n", key)
	return nil
}

// init 注册 set 命令。
func init() {
	rootCmd.AddCommand(setCmd)
}
