package cmd

import (
	"strings"

	"datewindow/internal/phrase"

	"github.com/spf13/cobra"
)

var vocabFormat string

// vocabCmd 实现 vocab 子命令，列出每个时间桶可识别的短语。
// 用法: datewindow vocab [-f format]
var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "List recognized date phrases per time bucket",
	Args:  cobra.NoArgs,
	RunE:  runVocab,
}

// vocabEntry 表示一个时间桶的短语列表，用于 JSON 输出。
type vocabEntry struct {
	Bucket  string   `json:"bucket"`
	Aliases []string `json:"aliases"`
}

func runVocab(cmd *cobra.Command, _ []string) error {
	vocab := phrase.Vocabulary()

	records := make([]vocabEntry, 0, len(vocab)+1)
	rows := make([][]string, 0, len(vocab)+1)
	for _, entry := range vocab {
		records = append(records, vocabEntry{Bucket: entry.Bucket.String(), Aliases: entry.Aliases})
		rows = append(rows, []string{entry.Bucket.String(), strings.Join(entry.Aliases, ", ")})
	}

	// 通用形式不属于任何固定时间桶，单独列出
	generic := []string{"<N>_<bucket>s_ago", "<N>_<bucket>s_next", "<N>_<bucket>", "<N> <bucket>", "YYYY-MM-DD", "YYYY-MM-DD HH:MM:SS"}
	records = append(records, vocabEntry{Bucket: "generic", Aliases: generic})
	rows = append(rows, []string{"generic", strings.Join(generic, ", ")})

	return writeOutput(cmd.OutOrStdout(), vocabFormat, []string{"bucket", "phrases"}, rows, records)
}

func init() {
	vocabCmd.Flags().StringVarP(&vocabFormat, "format", "f", "table", "Output format: table/json/csv")

	rootCmd.AddCommand(vocabCmd)
}
