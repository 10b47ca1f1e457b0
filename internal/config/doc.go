// Package config 提供 datewindow 的配置管理功能。
//
// 配置文件存储在 ~/.config/datewindow/config.yaml，使用 YAML 格式。
// 支持的配置项包括输出格式（strftime）、窗口结束是否包含、日志级别和日志格式。
package config
