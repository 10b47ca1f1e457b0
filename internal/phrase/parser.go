package phrase

import (
	"fmt"
	"strconv"
	"strings"
)

// Direction 表示过去短语指向的方向。
type Direction int

const (
	DirectionNone Direction = iota // 当前桶，例如 "today"
	DirectionPast                  // 向过去，例如 "yesterday"、"3_days_ago"
	DirectionNext                  // 向未来，例如 "tomorrow"、"2_months_next"
)

// String 返回方向名称。
func (d Direction) String() string {
	switch d {
	case DirectionPast:
		return "past"
	case DirectionNext:
		return "next"
	default:
		return "none"
	}
}

// ParsedInterval 是短语解析结果。Magnitude 始终非负，方向由 Direction 表达。
type ParsedInterval struct {
	Magnitude int
	Alias     string
	Direction Direction
}

// Offset 返回带符号的步数：DirectionNext 取负，
// 这样下游统一用 SubtractInterval 就能同时处理过去和未来。
func (p ParsedInterval) Offset() int {
	if p.Direction == DirectionNext {
		return -p.Magnitude
	}
	return p.Magnitude
}

// pastWords 是 "when" 语法里的固定词。
var pastWords = map[string]ParsedInterval{
	"yesterday":  {Magnitude: 1, Alias: "yesterday", Direction: DirectionPast},
	"last_week":  {Magnitude: 1, Alias: "last_week", Direction: DirectionPast},
	"last_month": {Magnitude: 1, Alias: "last_month", Direction: DirectionPast},
	"last_year":  {Magnitude: 1, Alias: "last_year", Direction: DirectionPast},
	"last_hour":  {Magnitude: 1, Alias: "last_hour", Direction: DirectionPast},

	"tomorrow":   {Magnitude: 1, Alias: "tomorrow", Direction: DirectionNext},
	"next_week":  {Magnitude: 1, Alias: "next_week", Direction: DirectionNext},
	"next_month": {Magnitude: 1, Alias: "next_month", Direction: DirectionNext},
	"next_year":  {Magnitude: 1, Alias: "next_year", Direction: DirectionNext},
	"next_hour":  {Magnitude: 1, Alias: "next_hour", Direction: DirectionNext},

	"today":      {Magnitude: 0, Alias: "today", Direction: DirectionNone},
	"this_week":  {Magnitude: 0, Alias: "this_week", Direction: DirectionNone},
	"this_month": {Magnitude: 0, Alias: "this_month", Direction: DirectionNone},
	"this_year":  {Magnitude: 0, Alias: "this_year", Direction: DirectionNone},
	"this_hour":  {Magnitude: 0, Alias: "this_hour", Direction: DirectionNone},
}

// intervalWords 是 "step size" 语法里表示"一个桶"的固定词。
var intervalWords = set("day", "yearly", "weekly", "monthly", "hourly")

// ParsePast 解析 "when" 语法的短语：
//   - 固定词: yesterday / today / tomorrow、last_* / this_* / next_*
//   - 通用形式: "<N>_<bucket>_<ago|next>"，bucket 末尾的 s 会被去掉
//
// 不区分大小写，首尾空白会被忽略。
func ParsePast(s string) (ParsedInterval, error) {
	value := strings.ToLower(strings.TrimSpace(s))
	if !hasLetter(value) {
		return ParsedInterval{}, fmt.Errorf("%w: expecting a date phrase but got %q", ErrPhraseType, s)
	}

	if parsed, ok := pastWords[value]; ok {
		return parsed, nil
	}

	if strings.Contains(value, "_") {
		tokens := strings.Split(value, "_")
		if len(tokens) != 3 || (tokens[2] != "ago" && tokens[2] != "next") {
			return ParsedInterval{}, fmt.Errorf("%w: %q", ErrDateValue, value)
		}

		magnitude, err := parseMagnitude(tokens[0])
		if err != nil {
			return ParsedInterval{}, fmt.Errorf("%w: %q: %v", ErrDateValue, value, err)
		}

		alias := strings.TrimSuffix(strings.TrimSpace(tokens[1]), "s")
		if alias == "" {
			return ParsedInterval{}, fmt.Errorf("%w: %q", ErrIntervalTimeBucket, value)
		}

		direction := DirectionPast
		if tokens[2] == "next" {
			direction = DirectionNext
		}
		return ParsedInterval{Magnitude: magnitude, Alias: alias, Direction: direction}, nil
	}

	return ParsedInterval{}, fmt.Errorf("%w: %q", ErrIntervalTimeBucket, value)
}

// ParseInterval 解析 "step size" 语法的短语：
//   - 固定词: day / hourly / weekly / monthly / yearly，表示 1 个桶
//   - 两段形式: "<N>_<bucket>" 或 "<N> <bucket>"，bucket 末尾的 s 会被去掉
//
// 返回的 Direction 恒为 DirectionNone。
func ParseInterval(s string) (ParsedInterval, error) {
	value := strings.ToLower(strings.TrimSpace(s))
	if !hasLetter(value) {
		return ParsedInterval{}, fmt.Errorf("%w: expecting an interval but got %q", ErrPhraseType, s)
	}

	if _, ok := intervalWords[value]; ok {
		return ParsedInterval{Magnitude: 1, Alias: value}, nil
	}

	tokens := strings.Split(strings.Join(strings.Fields(value), "_"), "_")
	if len(tokens) > 2 {
		return ParsedInterval{}, fmt.Errorf("%w: %q", ErrTimeInterval, value)
	}
	if len(tokens) == 2 {
		magnitude, err := parseMagnitude(tokens[0])
		if err != nil {
			return ParsedInterval{}, fmt.Errorf("%w: %q: %v", ErrTimeInterval, value, err)
		}
		alias := strings.TrimSuffix(tokens[1], "s")
		if alias != "" {
			return ParsedInterval{Magnitude: magnitude, Alias: alias}, nil
		}
	}

	return ParsedInterval{}, fmt.Errorf("%w: %q", ErrIntervalTimeBucket, value)
}

func parseMagnitude(token string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(token))
	if err != nil {
		return 0, fmt.Errorf("invalid magnitude %q", token)
	}
	if n < 0 {
		return 0, fmt.Errorf("magnitude must be >= 0, got %d", n)
	}
	return n, nil
}

func hasLetter(s string) bool {
	return strings.ContainsFunc(s, func(r rune) bool {
		return r >= 'a' && r <= 'z'
	})
}
