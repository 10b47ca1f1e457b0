// Package checkpoint 提供基于 JSON 文件的任务断点存储。
// 断点文件存储在 ~/.config/datewindow/checkpoints/ 目录下，
// 以任务名 + 参数哈希命名，记录任务下次应从哪个日期继续拉取。
package checkpoint

import (
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// ErrNotFound 表示任务没有断点。
var ErrNotFound = errors.New("checkpoint not found")

// Entry 是持久化到磁盘的断点条目。
type Entry struct {
	Job       string    `json:"job"`
	Interval  string    `json:"interval"`
	Layout    string    `json:"layout"`
	LastStart string    `json:"last_start"` // 最后一个窗口的起点
	LastEnd   string    `json:"last_end"`   // 最后一个窗口输出的结束时间
	Resume    string    `json:"resume"`     // 下次运行的起点
	UpdatedAt time.Time `json:"updated_at"`
}

// fileName 返回稳定的短文件名，格式为 "{job}_{hash}.json"。
// 任务名先做规范化（去空白、转小写），再取 SHA-256 前 8 字节作为摘要，
// 保证同一任务总是映射到同一文件。
func fileName(job string) string {
	key := normalizeJob(job)
	name := sanitizeFileComponent(key)
	if name == "" {
		name = "job"
	}
	digest := sha256.Sum256([]byte(key))
	return fmt.Sprintf("%s_%x.json", name, digest[:8])
}

// Dir 返回断点目录。
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "datewindow", "checkpoints"), nil
}

// Load 读取任务断点。任务不存在时返回 ErrNotFound。
func Load(job string) (*Entry, error) {
	if normalizeJob(job) == "" {
		return nil, fmt.Errorf("job name cannot be empty")
	}

	path, err := getPath(job)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, job)
		}
		return nil, err
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("decode checkpoint %q: %w", job, err)
	}
	return &entry, nil
}

// Save 将断点序列化并写入磁盘。
// 写入使用 tmp + rename 的原子策略，避免并发读到半写文件。
func Save(entry Entry) error {
	entry.Job = normalizeJob(entry.Job)
	if entry.Job == "" {
		return fmt.Errorf("job name cannot be empty")
	}

	path, err := getPath(entry.Job)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}

	if entry.UpdatedAt.IsZero() {
		entry.UpdatedAt = time.Now().UTC()
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return err
	}

	// 原子写入：先写临时文件，再 rename
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}

// List 返回全部断点，按任务名排序。目录不存在时返回空列表。
func List() ([]Entry, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(files))
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}
		var entry Entry
		if err := json.Unmarshal(data, &entry); err != nil {
			return nil, fmt.Errorf("decode checkpoint %s: %w", filepath.Base(file), err)
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Job < entries[j].Job })
	return entries, nil
}

// Remove 删除任务断点。任务不存在时返回 ErrNotFound。
func Remove(job string) error {
	if normalizeJob(job) == "" {
		return fmt.Errorf("job name cannot be empty")
	}

	path, err := getPath(job)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %q", ErrNotFound, job)
		}
		return err
	}
	return nil
}

// getPath 返回断点文件的完整路径。
func getPath(job string) (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName(job)), nil
}

// normalizeJob 规范化任务名：去除首尾空白并转小写。
func normalizeJob(job string) string {
	return strings.ToLower(strings.TrimSpace(job))
}

// sanitizeFileComponent 清理文件名组成部分，将路径分隔符、空格、冒号替换为下划线。
func sanitizeFileComponent(name string) string {
	name = strings.TrimSpace(name)
	if name == "" || name == "." || name == string(filepath.Separator) {
		return ""
	}
	replacer := strings.NewReplacer(
		string(filepath.Separator), "_",
		" ", "_",
		":", "_",
	)
	return replacer.Replace(name)
}
