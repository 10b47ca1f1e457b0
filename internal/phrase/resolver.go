package phrase

import (
	"regexp"
	"strings"
	"time"
)

// timeNow 抽象 time.Now 以便在测试中注入固定时间。
var timeNow = time.Now

var (
	dateTimePattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}\s\d{2}:\d{2}:\d{2}`)
	datePattern     = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
)

// Resolver 把日期字符串解析为具体日期。
// Now 为空时使用包级时钟；它是解析过程中唯一的外部输入。
type Resolver struct {
	Now func() time.Time
}

// Resolve 使用默认 Resolver 解析 dateString 并按 layout 格式化。
func Resolve(dateString, layout string) (string, error) {
	return Resolver{}.Resolve(dateString, layout)
}

// ResolveTime 使用默认 Resolver 解析 dateString。
func ResolveTime(dateString, layout string) (time.Time, error) {
	return Resolver{}.ResolveTime(dateString, layout)
}

// Resolve 解析 dateString 并按 layout 格式化输出。
func (r Resolver) Resolve(dateString, layout string) (string, error) {
	t, err := r.ResolveTime(dateString, layout)
	if err != nil {
		return "", err
	}
	return Format(t, layout), nil
}

// ResolveTime 按以下顺序解析 dateString：
//  1. 包含 "YYYY-MM-DD HH:MM:SS" 字面量时直接解析
//  2. 包含 "YYYY-MM-DD" 字面量时直接解析
//  3. 否则按过去短语处理：对齐当前时间到桶起点，再减去带符号的步数，
//     最后经 layout 格式化并重新解析以截断多余精度
func (r Resolver) ResolveTime(dateString, layout string) (time.Time, error) {
	dateString = strings.TrimSpace(dateString)

	if literal := dateTimePattern.FindString(dateString); literal != "" {
		return time.Parse(time.DateTime, literal)
	}
	if literal := datePattern.FindString(dateString); literal != "" {
		return time.Parse(time.DateOnly, literal)
	}

	parsed, err := ParsePast(dateString)
	if err != nil {
		return time.Time{}, err
	}
	handler, err := NewArithmetic(parsed.Alias, parsed.Offset())
	if err != nil {
		return time.Time{}, err
	}

	start := handler.NormalizeToStart(r.now())
	return Truncate(handler.SubtractInterval(start, handler.Magnitude), layout)
}

// now 返回去掉时区信息的当前墙上时间，后续所有日历运算都按 UTC 进行。
func (r Resolver) now() time.Time {
	clock := r.Now
	if clock == nil {
		clock = timeNow
	}
	t := clock()
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}
