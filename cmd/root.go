package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// logLevel 是全局 --log-level 标志，为空时使用配置值。
var logLevel string

var rootCmd = &cobra.Command{
	Use:   "datewindow",
	Short: "Resolve relative date phrases and plan report windows",
	Long: `datewindow turns date phrases such as "yesterday", "last_week" or "2_days_ago"
into concrete dates, and splits a date span into report windows ("1_month", "weekly").`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: trace/debug/info/warn/error (default: config value)")
}
