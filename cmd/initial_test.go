package cmd

import (
	"errors"
	"testing"

	"datewindow/internal/phrase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitial_Frequencies(t *testing.T) {
	tests := []struct {
		frequency string
		want      string
	}{
		{"WEEK", "2023-05-11\n"},
		{"MONTH", "2023-05-01\n"},
		{"quarter", "2023-02-01\n"},
		{"YEAR", "2023-01-01\n"},
	}

	for _, tt := range tests {
		t.Run(tt.frequency, func(t *testing.T) {
			withTempHome(t)

			out, _, err := executeCommand(t, newInitialCmd(), "2023-05-17", "--frequency", tt.frequency)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestInitial_DefaultFrequencyWithPhrase(t *testing.T) {
	withTempHome(t)
	withFixedNow(t, fixedNow)

	out, _, err := executeCommand(t, newInitialCmd(), "yesterday", "-l", "%Y/%m/%d")
	require.NoError(t, err)
	assert.Equal(t, "2026/02/01\n", out)
}

func TestInitial_UnknownFrequency_ReturnsError(t *testing.T) {
	withTempHome(t)

	_, _, err := executeCommand(t, newInitialCmd(), "2023-05-17", "--frequency", "DECADE")
	require.Error(t, err)
	assert.True(t, errors.Is(err, phrase.ErrFrequency))
}

func TestInitial_BadDate_ReturnsError(t *testing.T) {
	withTempHome(t)

	_, _, err := executeCommand(t, newInitialCmd(), "someday")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `resolve "someday"`)
}
