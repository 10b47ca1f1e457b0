package phrase

import "fmt"

// VocabularyEntry 描述一个时间桶及其可识别的全部别名。
type VocabularyEntry struct {
	Bucket  TimeBucket
	Aliases []string
}

// bucketAliases 是固定的别名表，顺序即 Vocabulary 的输出顺序。
var bucketAliases = []VocabularyEntry{
	{Bucket: Hour, Aliases: []string{"hour", "hourly", "last_hour", "this_hour", "next_hour"}},
	{Bucket: Day, Aliases: []string{"day", "yesterday", "today", "tomorrow"}},
	{Bucket: Week, Aliases: []string{"week", "weekly", "last_week", "this_week", "next_week"}},
	{Bucket: Month, Aliases: []string{"month", "monthly", "last_month", "this_month", "next_month"}},
	{Bucket: Year, Aliases: []string{"year", "yearly", "last_year", "this_year", "next_year"}},
}

// aliasIndex 是 alias -> bucket 的反查表。
var aliasIndex = func() map[string]TimeBucket {
	index := make(map[string]TimeBucket)
	for _, entry := range bucketAliases {
		for _, alias := range entry.Aliases {
			index[alias] = entry.Bucket
		}
	}
	return index
}()

// ResolveBucket 将别名映射到标准时间桶，未知别名返回 ErrTimeBucket。
func ResolveBucket(alias string) (TimeBucket, error) {
	bucket, ok := aliasIndex[alias]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrTimeBucket, alias)
	}
	return bucket, nil
}

// NewArithmetic 为别名对应的时间桶构建日期运算策略。
func NewArithmetic(alias string, magnitude int) (Arithmetic, error) {
	bucket, err := ResolveBucket(alias)
	if err != nil {
		return Arithmetic{}, err
	}
	return Arithmetic{Bucket: bucket, Alias: alias, Magnitude: magnitude}, nil
}

// Vocabulary 返回别名表的副本，调用方可以安全修改。
func Vocabulary() []VocabularyEntry {
	out := make([]VocabularyEntry, 0, len(bucketAliases))
	for _, entry := range bucketAliases {
		aliases := make([]string, len(entry.Aliases))
		copy(aliases, entry.Aliases)
		out = append(out, VocabularyEntry{Bucket: entry.Bucket, Aliases: aliases})
	}
	return out
}
