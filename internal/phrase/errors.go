package phrase

import (
	"errors"
	"fmt"
)

// ErrDatePhrase 是所有日期短语错误的根类别，调用方可用 errors.Is 统一判断。
var ErrDatePhrase = errors.New("date phrase error")

var (
	// ErrPhraseType 表示输入不是期望的短语（例如不含任何字母），属于调用方缺陷。
	ErrPhraseType = fmt.Errorf("%w: not a phrase", ErrDatePhrase)
	// ErrDateValue 表示下划线形式的日期短语格式错误（token 数量或方向后缀不对）。
	ErrDateValue = fmt.Errorf("%w: malformed date phrase", ErrDatePhrase)
	// ErrTimeInterval 表示步长短语格式错误（超过两个 token 等）。
	ErrTimeInterval = fmt.Errorf("%w: malformed interval", ErrDatePhrase)
	// ErrIntervalTimeBucket 表示尝试所有已知形式后仍未得到 (magnitude, bucket)。
	ErrIntervalTimeBucket = fmt.Errorf("%w: unresolved interval or time bucket", ErrDatePhrase)
	// ErrTimeBucket 表示别名无法映射到任何标准时间桶。
	ErrTimeBucket = fmt.Errorf("%w: unknown time bucket", ErrDatePhrase)

	// ErrZeroInterval 表示步长为 0，区间迭代永远不会前进。
	ErrZeroInterval = fmt.Errorf("%w: interval must be > 0", ErrTimeInterval)
	// ErrFrequency 表示 InitialDate 收到未知的频率。
	ErrFrequency = fmt.Errorf("%w: unknown frequency", ErrTimeBucket)
)
