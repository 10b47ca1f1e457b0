package phrase

import (
	"fmt"
	"iter"
	"time"
)

// Window 表示一个报表周期。
//   - End: 输出给调用方的结束时间（包含式或排他式，取决于 RangeSpec.EndInclusive）
//   - Next: 下一个窗口的起点
//   - Partial: End 是否被截断到请求的结束日期
type Window struct {
	Start   time.Time
	End     time.Time
	Next    time.Time
	Partial bool
}

// RangeSpec 描述一次区间迭代。每次调用 Windows / Pairs 都会从头开始一次独立遍历。
type RangeSpec struct {
	Start        time.Time
	End          time.Time
	Arithmetic   Arithmetic
	EndInclusive bool
	Layout       string
}

// Iterate 使用默认 Resolver 生成 (start, end) 字符串对序列。
func Iterate(start, end, interval string, endInclusive bool, layout string) (iter.Seq2[string, string], error) {
	return Resolver{}.Iterate(start, end, interval, endInclusive, layout)
}

// Iterate 解析参数并返回惰性的 (windowStart, windowEnd) 字符串对序列。
// 参数错误在返回序列之前就会报告。
func (r Resolver) Iterate(start, end, interval string, endInclusive bool, layout string) (iter.Seq2[string, string], error) {
	plan, err := r.NewRange(start, end, interval, endInclusive, layout)
	if err != nil {
		return nil, err
	}
	return plan.Pairs(), nil
}

// NewRange 解析步长短语与起止日期，并把起点对齐到桶边界。
// 步长为 0 时返回 ErrZeroInterval，避免迭代无法终止。
func (r Resolver) NewRange(start, end, interval string, endInclusive bool, layout string) (RangeSpec, error) {
	parsed, err := ParseInterval(interval)
	if err != nil {
		return RangeSpec{}, err
	}
	if parsed.Magnitude == 0 {
		return RangeSpec{}, fmt.Errorf("%w: %q", ErrZeroInterval, interval)
	}
	handler, err := NewArithmetic(parsed.Alias, parsed.Magnitude)
	if err != nil {
		return RangeSpec{}, err
	}

	startDate, err := r.ResolveTime(start, layout)
	if err != nil {
		return RangeSpec{}, fmt.Errorf("resolve start: %w", err)
	}
	endDate, err := r.ResolveTime(end, layout)
	if err != nil {
		return RangeSpec{}, fmt.Errorf("resolve end: %w", err)
	}

	return RangeSpec{
		Start:        handler.NormalizeToStart(startDate),
		End:          endDate,
		Arithmetic:   handler,
		EndInclusive: endInclusive,
		Layout:       layoutOrDefault(layout),
	}, nil
}

// Windows 按步长从 Start 走到 End（包含），依次产出窗口。
// 最后一个窗口的 End 会被截断，保证窗口不会越过请求的结束日期。
func (s RangeSpec) Windows() iter.Seq[Window] {
	return func(yield func(Window) bool) {
		if s.Arithmetic.Magnitude <= 0 {
			return
		}

		unit := s.Arithmetic.unit()
		for current := s.Start; !current.After(s.End); {
			next := s.Arithmetic.AddInterval(current, s.Arithmetic.Magnitude)

			w := Window{Start: current, Next: next}
			if s.EndInclusive {
				w.End = next.Add(-unit)
				if w.End.After(s.End) {
					w.End, w.Partial = s.End, true
				}
			} else {
				w.End = next
				if limit := s.End.Add(unit); w.End.After(limit) {
					w.End, w.Partial = limit, true
				}
			}

			if !yield(w) {
				return
			}
			current = next
		}
	}
}

// Pairs 是 Windows 的字符串形式，按 Layout 格式化起止时间。
func (s RangeSpec) Pairs() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for w := range s.Windows() {
			if !yield(Format(w.Start, s.Layout), Format(w.End, s.Layout)) {
				return
			}
		}
	}
}

// ResumePoint 返回在 w 之后继续拉取时应使用的起点：
// 完整窗口从 Next 继续，被截断的窗口需要从自身起点重新拉取，避免遗漏。
func (w Window) ResumePoint() time.Time {
	if w.Partial {
		return w.Start
	}
	return w.Next
}
