package cmd

import (
	"fmt"
	"strings"

	"datewindow/internal/config"
	"datewindow/internal/logger"
	"datewindow/internal/phrase"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// resolver 是命令共用的解析器，测试中可替换 Now 注入固定时间。
var resolver = phrase.Resolver{}

// RunContext holds the common initialization result for commands.
type RunContext struct {
	Layout    string
	Inclusive bool
	Log       zerolog.Logger
}

// prepareRun performs common command initialization:
// load config, merge the layout flag, build the logger.
func prepareRun(cmd *cobra.Command, layout string) (*RunContext, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	// 命令行参数优先，其次是配置值，最后是默认格式
	layout = strings.TrimSpace(layout)
	if layout == "" {
		layout = strings.TrimSpace(cfg.Layout)
	}
	if layout == "" {
		layout = phrase.DefaultLayout
	}

	level := strings.TrimSpace(logLevel)
	if level == "" {
		level = cfg.LogLevel
	}
	if !config.IsValidLogLevel(level) {
		return nil, fmt.Errorf("invalid log level %q (supported: trace, debug, info, warn, error)", level)
	}

	return &RunContext{
		Layout:    layout,
		Inclusive: cfg.Inclusive,
		Log:       logger.New(logger.Options{Level: level, Format: cfg.LogFormat, Writer: cmd.ErrOrStderr()}),
	}, nil
}
