package cmd

import (
	"encoding/json"
	"errors"
	"testing"

	"datewindow/internal/checkpoint"
	"datewindow/internal/config"
	"datewindow/internal/phrase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIterate_MonthlyInclusive(t *testing.T) {
	withTempHome(t)

	out, _, err := executeCommand(t, newIterateCmd(),
		"--start", "2023-01-01", "--end", "2023-03-01", "-i", "1_month", "--inclusive", "-f", "csv")
	require.NoError(t, err)
	assert.Equal(t, "start,end,partial\n"+
		"2023-01-01,2023-01-31,\n"+
		"2023-02-01,2023-02-28,\n"+
		"2023-03-01,2023-03-01,partial\n", out)
}

func TestIterate_WeeklyExclusive_SnapsToSunday(t *testing.T) {
	withTempHome(t)

	out, _, err := executeCommand(t, newIterateCmd(),
		"--start", "2023-01-04", "--end", "2023-01-20", "-i", "weekly", "-f", "json")
	require.NoError(t, err)

	var got []windowRecord
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []windowRecord{
		{Start: "2023-01-01", End: "2023-01-08"},
		{Start: "2023-01-08", End: "2023-01-15"},
		{Start: "2023-01-15", End: "2023-01-21", Partial: true},
	}, got)
}

func TestIterate_InclusiveFromConfig(t *testing.T) {
	withTempHome(t)
	setTestConfig(t, config.Config{Layout: config.DefaultLayout, Inclusive: true, LogLevel: "warn", LogFormat: "console"})

	out, _, err := executeCommand(t, newIterateCmd(),
		"--start", "2023-01-01", "--end", "2023-01-02", "-i", "day", "-f", "csv")
	require.NoError(t, err)
	assert.Equal(t, "start,end,partial\n2023-01-01,2023-01-01,\n2023-01-02,2023-01-02,\n", out)

	// 显式传入 --inclusive=false 时覆盖配置
	out, _, err = executeCommand(t, newIterateCmd(),
		"--start", "2023-01-01", "--end", "2023-01-02", "-i", "day", "--inclusive=false", "-f", "csv")
	require.NoError(t, err)
	assert.Equal(t, "start,end,partial\n2023-01-01,2023-01-02,\n2023-01-02,2023-01-03,\n", out)
}

func TestIterate_RelativePhrases(t *testing.T) {
	withTempHome(t)
	withFixedNow(t, fixedNow)

	out, _, err := executeCommand(t, newIterateCmd(),
		"--start", "last_month", "--end", "yesterday", "-i", "2 weeks", "--inclusive", "-f", "csv")
	require.NoError(t, err)
	assert.Equal(t, "start,end,partial\n"+
		"2026-01-01,2026-01-14,\n"+
		"2026-01-15,2026-01-28,\n"+
		"2026-01-29,2026-02-04,partial\n", out)
}

func TestIterate_Limit(t *testing.T) {
	withTempHome(t)

	out, _, err := executeCommand(t, newIterateCmd(),
		"--start", "2023-01-01", "--end", "2023-12-31", "-i", "monthly", "-n", "2", "-f", "csv")
	require.NoError(t, err)
	assert.Equal(t, "start,end,partial\n2023-01-01,2023-02-01,\n2023-02-01,2023-03-01,\n", out)
}

func TestIterate_EmptyRange(t *testing.T) {
	withTempHome(t)

	out, _, err := executeCommand(t, newIterateCmd(),
		"--start", "2023-02-01", "--end", "2023-01-01", "-i", "day", "-f", "json")
	require.NoError(t, err)
	assert.JSONEq(t, "[]", out)
}

func TestIterate_JobWritesCheckpointAndResumes(t *testing.T) {
	withTempHome(t)

	_, _, err := executeCommand(t, newIterateCmd(),
		"--start", "2023-01-01", "--end", "2023-03-01", "-i", "1_month", "--inclusive", "--job", "GA4", "-f", "csv")
	require.NoError(t, err)

	entry, err := checkpoint.Load("ga4")
	require.NoError(t, err)
	assert.Equal(t, "ga4", entry.Job)
	assert.Equal(t, "1_month", entry.Interval)
	assert.Equal(t, "2023-03-01", entry.LastStart)
	assert.Equal(t, "2023-03-01", entry.LastEnd)
	// 最后一个窗口被截断，下次从它的起点重新拉取
	assert.Equal(t, "2023-03-01 00:00:00", entry.Resume)

	out, _, err := executeCommand(t, newIterateCmd(),
		"--job", "ga4", "--resume", "--end", "2023-05-10", "--inclusive", "-f", "csv")
	require.NoError(t, err)
	assert.Equal(t, "start,end,partial\n"+
		"2023-03-01,2023-03-31,\n"+
		"2023-04-01,2023-04-30,\n"+
		"2023-05-01,2023-05-10,partial\n", out)

	entry, err = checkpoint.Load("ga4")
	require.NoError(t, err)
	assert.Equal(t, "2023-05-01 00:00:00", entry.Resume)
}

func TestIterate_JobCompleteWindowResumesAtNext(t *testing.T) {
	withTempHome(t)

	_, _, err := executeCommand(t, newIterateCmd(),
		"--start", "2023-01-01", "--end", "2023-01-31", "-i", "monthly", "--inclusive", "--job", "crm", "-f", "csv")
	require.NoError(t, err)

	entry, err := checkpoint.Load("crm")
	require.NoError(t, err)
	assert.Equal(t, "2023-02-01 00:00:00", entry.Resume)
}

func TestIterate_EmptyRangeDoesNotWriteCheckpoint(t *testing.T) {
	withTempHome(t)

	_, _, err := executeCommand(t, newIterateCmd(),
		"--start", "2023-02-01", "--end", "2023-01-01", "-i", "day", "--job", "crm")
	require.NoError(t, err)

	_, err = checkpoint.Load("crm")
	assert.True(t, errors.Is(err, checkpoint.ErrNotFound))
}

func TestIterate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
		wantMsg string
	}{
		{
			name:    "missing start",
			args:    []string{"-i", "day"},
			wantMsg: "--start is required",
		},
		{
			name:    "missing interval",
			args:    []string{"--start", "2023-01-01"},
			wantMsg: "--interval is required",
		},
		{
			name:    "zero interval",
			args:    []string{"--start", "2023-01-01", "-i", "0_day"},
			wantErr: phrase.ErrZeroInterval,
		},
		{
			name:    "unknown bucket",
			args:    []string{"--start", "2023-01-01", "-i", "fortnightly"},
			wantErr: phrase.ErrIntervalTimeBucket,
		},
		{
			name:    "bad start",
			args:    []string{"--start", "someday", "-i", "day"},
			wantMsg: "resolve start",
		},
		{
			name:    "negative limit",
			args:    []string{"--start", "2023-01-01", "-i", "day", "--limit=-1"},
			wantMsg: "limit must be >= 0",
		},
		{
			name:    "resume without job",
			args:    []string{"--resume", "-i", "day"},
			wantMsg: "--resume requires --job",
		},
		{
			name:    "resume without checkpoint",
			args:    []string{"--resume", "--job", "missing"},
			wantErr: checkpoint.ErrNotFound,
		},
		{
			name: "start and resume together",
			args: []string{"--start", "2023-01-01", "--resume", "--job", "x", "-i", "day"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withTempHome(t)

			_, _, err := executeCommand(t, newIterateCmd(), tt.args...)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestCollectWindows_Limit(t *testing.T) {
	plan, err := phrase.Resolver{}.NewRange("2023-01-01", "2023-01-31", "day", true, "")
	require.NoError(t, err)

	assert.Len(t, collectWindows(plan, 0), 31)
	assert.Len(t, collectWindows(plan, 5), 5)
	assert.Len(t, collectWindows(plan, 100), 31)
}

func TestNewWindowProgressBar_SkipsSingleWindow(t *testing.T) {
	assert.Nil(t, newWindowProgressBar(0))
	assert.Nil(t, newWindowProgressBar(1))
}
