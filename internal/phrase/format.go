package phrase

import (
	"fmt"
	"strings"
	"time"

	"github.com/ncruces/go-strftime"
)

// DefaultLayout 是默认的输出格式（strftime 语法）。
const DefaultLayout = "%Y-%m-%d"

// Format 按 strftime 格式输出 t；layout 为空时使用 DefaultLayout。
func Format(t time.Time, layout string) string {
	return strftime.Format(layoutOrDefault(layout), t)
}

// Parse 按 strftime 格式解析 s；layout 为空时使用 DefaultLayout。
func Parse(s, layout string) (time.Time, error) {
	layout = layoutOrDefault(layout)
	t, err := strftime.Parse(layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse %q with layout %q: %w", s, layout, err)
	}
	return t, nil
}

// Truncate 先格式化再按同一格式解析，丢弃格式中不存在的精度
// （例如格式不含时分秒时，时间部分被清零）。
func Truncate(t time.Time, layout string) (time.Time, error) {
	return Parse(Format(t, layout), layout)
}

func layoutOrDefault(layout string) string {
	if strings.TrimSpace(layout) == "" {
		return DefaultLayout
	}
	return layout
}
