package phrase

import (
	"fmt"
	"strings"
	"time"
)

// InitialDate 根据报表频率计算以 start 结束的统计周期的起始日期：
//   - WEEK: start 往前 6 天
//   - MONTH: start 所在月的 1 日
//   - QUARTER: start 往前 84 天所在月的 1 日
//   - YEAR: start 所在年的 1 月 1 日
//
// frequency 不区分大小写，未知频率返回 ErrFrequency。
func InitialDate(start time.Time, frequency string) (time.Time, error) {
	loc := start.Location()

	switch strings.ToUpper(strings.TrimSpace(frequency)) {
	case "WEEK":
		return start.AddDate(0, 0, -6), nil
	case "MONTH":
		return time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, loc), nil
	case "QUARTER":
		start = start.AddDate(0, 0, -84)
		return time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, loc), nil
	case "YEAR":
		return time.Date(start.Year(), time.January, 1, 0, 0, 0, 0, loc), nil
	default:
		return time.Time{}, fmt.Errorf("%w: %q (expected WEEK, MONTH, QUARTER or YEAR)", ErrFrequency, frequency)
	}
}
