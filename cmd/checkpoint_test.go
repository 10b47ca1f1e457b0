package cmd

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"datewindow/internal/checkpoint"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckpointList_Empty(t *testing.T) {
	withTempHome(t)

	out, _, err := executeCommand(t, newCheckpointCmd(), "list")
	require.NoError(t, err)
	assert.Equal(t, "no checkpoints recorded\n", out)

	out, _, err = executeCommand(t, newCheckpointCmd(), "list", "-f", "json")
	require.NoError(t, err)
	assert.JSONEq(t, "[]", out)
}

func TestCheckpointList_ShowsEntries(t *testing.T) {
	withTempHome(t)

	updated := time.Date(2026, 2, 5, 8, 0, 0, 0, time.UTC)
	require.NoError(t, checkpoint.Save(checkpoint.Entry{
		Job: "ga4", Interval: "1_month", Layout: "%Y-%m-%d",
		LastStart: "2026-01-01", LastEnd: "2026-01-31", Resume: "2026-02-01 00:00:00",
		UpdatedAt: updated,
	}))
	require.NoError(t, checkpoint.Save(checkpoint.Entry{
		Job: "crm", Interval: "weekly", Resume: "2026-02-01 00:00:00", UpdatedAt: updated,
	}))

	out, _, err := executeCommand(t, newCheckpointCmd(), "list", "-f", "csv")
	require.NoError(t, err)
	assert.Equal(t, "job,interval,last_start,last_end,resume,updated_at\n"+
		"crm,weekly,,,2026-02-01 00:00:00,2026-02-05T08:00:00Z\n"+
		"ga4,1_month,2026-01-01,2026-01-31,2026-02-01 00:00:00,2026-02-05T08:00:00Z\n", out)

	out, _, err = executeCommand(t, newCheckpointCmd(), "list", "-f", "json")
	require.NoError(t, err)
	var got []checkpoint.Entry
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "crm", got[0].Job)
	assert.Equal(t, "2026-01-31", got[1].LastEnd)
}

func TestCheckpointRemove(t *testing.T) {
	withTempHome(t)
	require.NoError(t, checkpoint.Save(checkpoint.Entry{Job: "ga4", Resume: "2026-02-01"}))

	out, _, err := executeCommand(t, newCheckpointCmd(), "remove", "GA4")
	require.NoError(t, err)
	assert.Equal(t, "checkpoint \"GA4\" removed\n", out)

	_, err = checkpoint.Load("ga4")
	assert.True(t, errors.Is(err, checkpoint.ErrNotFound))

	_, _, err = executeCommand(t, newCheckpointCmd(), "remove", "ga4")
	require.Error(t, err)
	assert.True(t, errors.Is(err, checkpoint.ErrNotFound))
}

func TestCheckpointRemove_RequiresJob(t *testing.T) {
	withTempHome(t)

	_, _, err := executeCommand(t, newCheckpointCmd(), "remove")
	require.Error(t, err)
}
