package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// writeOutput 按指定格式输出行数据：table（默认）、json、csv。
// json 输出 records（带字段名的结构），table/csv 输出 headers + rows。
func writeOutput(out io.Writer, format string, headers []string, rows [][]string, records any) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "table":
		return writeTable(out, headers, rows)
	case "json":
		return writeJSON(out, records)
	case "csv":
		return writeCSV(out, headers, rows)
	default:
		return fmt.Errorf("unsupported format %q (supported: table, json, csv)", format)
	}
}

// writeTable 输出左对齐的表格，列之间用 4 个空格分隔。
func writeTable(out io.Writer, headers []string, rows [][]string) error {
	if len(headers) == 0 {
		return nil
	}

	sep := "    "

	colWidths := make([]int, len(headers))
	for j, h := range headers {
		colWidths[j] = len(h)
	}
	for _, row := range rows {
		for j := 0; j < len(row) && j < len(colWidths); j++ {
			colWidths[j] = max(colWidths[j], len(row[j]))
		}
	}

	writeRow := func(cells []string) error {
		var b strings.Builder
		for j := range headers {
			cell := ""
			if j < len(cells) {
				cell = cells[j]
			}
			if j == len(headers)-1 {
				b.WriteString(cell)
				continue
			}
			fmt.Fprintf(&b, "%-*s%s", colWidths[j], cell, sep)
		}
		_, err := fmt.Fprintln(out, strings.TrimRight(b.String(), " "))
		return err
	}

	if err := writeRow(headers); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeRow(row); err != nil {
			return err
		}
	}
	return nil
}

// writeJSON 将数据以缩进 JSON 输出。
func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeCSV 输出带表头的 CSV。
func writeCSV(out io.Writer, headers []string, rows [][]string) error {
	w := csv.NewWriter(out)
	// 写入表头
	if err := w.Write(headers); err != nil {
		return err
	}
	// 写入数据行
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
