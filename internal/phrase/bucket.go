// Package phrase 把人类可读的日期短语（"yesterday"、"last_week"、"2_days_ago"、
// "1_month"）解析为具体日期，并按步长生成确定性的报表窗口序列。
//
// 包内所有操作都是纯函数，唯一的外部输入是 Resolver 读取的当前时间。
package phrase

import (
	"fmt"
	"time"
)

// TimeBucket 表示日历粒度。所有别名都唯一映射到其中之一。
type TimeBucket int

const (
	Hour TimeBucket = iota
	Day
	Week
	Month
	Year
)

// String 返回时间桶的标准名称。
func (b TimeBucket) String() string {
	switch b {
	case Hour:
		return "hour"
	case Day:
		return "day"
	case Week:
		return "week"
	case Month:
		return "month"
	case Year:
		return "year"
	default:
		return fmt.Sprintf("TimeBucket(%d)", int(b))
	}
}

// Arithmetic 是某个时间桶上的日期运算策略。
// Alias 是调用方请求的原始别名，决定 NormalizeToStart 是否需要对齐到桶起点；
// Magnitude 是短语中的步数，策略本身不持有任何跨调用的状态。
type Arithmetic struct {
	Bucket    TimeBucket
	Alias     string
	Magnitude int
}

// wholeBucketAliases 列出要求"整桶"语义的别名，只有这些别名会触发对齐。
var wholeBucketAliases = map[TimeBucket]map[string]struct{}{
	Hour:  set("hourly", "this_hour"),
	Day:   {},
	Week:  set("weekly", "last_week", "this_week", "next_week"),
	Month: set("month", "monthly", "last_month", "this_month", "next_month"),
	Year:  set("yearly", "last_year", "this_year", "next_year"),
}

// NormalizeToStart 将 t 对齐到所在桶的起点（仅限整桶别名）：
//   - Year: 1 月 1 日
//   - Month: 当月 1 日
//   - Week: 最近的周日（当天是周日则不变）
//   - Hour: 分钟置为 1
//   - Day: 不变
func (a Arithmetic) NormalizeToStart(t time.Time) time.Time {
	if _, ok := wholeBucketAliases[a.Bucket][a.Alias]; !ok {
		return t
	}

	switch a.Bucket {
	case Year:
		return time.Date(t.Year(), time.January, 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	case Month:
		return time.Date(t.Year(), t.Month(), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	case Week:
		// 一周从周日开始
		return t.AddDate(0, 0, -int(t.Weekday()))
	case Hour:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 1, t.Second(), t.Nanosecond(), t.Location())
	case Day:
		return t
	default:
		panic(fmt.Sprintf("unhandled time bucket %v", a.Bucket))
	}
}

// AddInterval 在 t 上增加 n 个桶单位。月和年按"同一天，超出则取当月最后一天"处理，
// 因此 1 月 31 日加 1 个月得到 2 月最后一天而不是 3 月。
func (a Arithmetic) AddInterval(t time.Time, n int) time.Time {
	switch a.Bucket {
	case Hour:
		return t.Add(time.Duration(n) * time.Hour)
	case Day:
		return t.AddDate(0, 0, n)
	case Week:
		return t.AddDate(0, 0, 7*n)
	case Month:
		return addMonths(t, n)
	case Year:
		return addMonths(t, 12*n)
	default:
		panic(fmt.Sprintf("unhandled time bucket %v", a.Bucket))
	}
}

// SubtractInterval 是 AddInterval 的逆运算。
func (a Arithmetic) SubtractInterval(t time.Time, n int) time.Time {
	return a.AddInterval(t, -n)
}

// unit 返回该桶在包含式窗口结束时回退的最小单位。
func (a Arithmetic) unit() time.Duration {
	if a.Bucket == Hour {
		return time.Hour
	}
	return 24 * time.Hour
}

func addMonths(t time.Time, months int) time.Time {
	total := t.Year()*12 + int(t.Month()) - 1 + months
	year, month := floorDiv(total, 12), time.Month(floorMod(total, 12)+1)

	day := t.Day()
	if last := daysInMonth(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysInMonth(year int, month time.Month) int {
	// The zero day of next month is the last day of this month.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	r := a % b
	if r < 0 {
		r += b
	}
	return r
}

func set(items ...string) map[string]struct{} {
	out := make(map[string]struct{}, len(items))
	for _, item := range items {
		out[item] = struct{}{}
	}
	return out
}
