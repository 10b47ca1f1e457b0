package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"datewindow/internal/phrase"

	"github.com/spf13/viper"
)

const (
	DefaultLayout    = phrase.DefaultLayout
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "console"
)

// validLogLevels 列出 log_level 支持的取值。
var validLogLevels = []string{"trace", "debug", "info", "warn", "error"}

// validLogFormats 列出 log_format 支持的取值。
var validLogFormats = []string{"console", "json"}

type Config struct {
	Layout    string
	Inclusive bool
	LogLevel  string
	LogFormat string
}

func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "datewindow"), nil
}

func File() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

func EnsureDir() error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0o755)
}

func Load() (*Config, error) {
	configFile, err := File()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType("yaml")
	v.SetDefault("layout", DefaultLayout)
	v.SetDefault("inclusive", false)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("log_format", DefaultLogFormat)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, err
		}
	}

	return &Config{
		Layout:    v.GetString("layout"),
		Inclusive: v.GetBool("inclusive"),
		LogLevel:  v.GetString("log_level"),
		LogFormat: v.GetString("log_format"),
	}, nil
}

func Save(config Config) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	configFile, err := File()
	if err != nil {
		return err
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.Set("layout", config.Layout)
	v.Set("inclusive", config.Inclusive)
	v.Set("log_level", config.LogLevel)
	v.Set("log_format", config.LogFormat)

	return v.WriteConfigAs(configFile)
}

// ValidateConfig 检查配置合法性，返回问题描述列表；没有问题时返回空切片。
func ValidateConfig(cfg *Config) []string {
	issues := make([]string, 0)
	if cfg == nil {
		return append(issues, "config is nil")
	}

	layout := strings.TrimSpace(cfg.Layout)
	switch {
	case layout == "":
		issues = append(issues, "layout is empty")
	case !strings.Contains(layout, "%"):
		issues = append(issues, fmt.Sprintf("layout %q has no strftime directives", cfg.Layout))
	}

	if !IsValidLogLevel(cfg.LogLevel) {
		issues = append(issues, fmt.Sprintf("log_level %q is not one of %s", cfg.LogLevel, strings.Join(validLogLevels, ", ")))
	}
	if !IsValidLogFormat(cfg.LogFormat) {
		issues = append(issues, fmt.Sprintf("log_format %q is not one of %s", cfg.LogFormat, strings.Join(validLogFormats, ", ")))
	}
	return issues
}

// IsValidLogLevel 判断日志级别是否受支持（大小写不敏感）。
func IsValidLogLevel(level string) bool {
	return oneOf(level, validLogLevels)
}

// IsValidLogFormat 判断日志格式是否受支持（大小写不敏感）。
func IsValidLogFormat(format string) bool {
	return oneOf(format, validLogFormats)
}

func oneOf(value string, valid []string) bool {
	value = strings.ToLower(strings.TrimSpace(value))
	for _, v := range valid {
		if value == v {
			return true
		}
	}
	return false
}
