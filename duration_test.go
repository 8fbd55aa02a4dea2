package raceresults_test

import (
	"testing"
	"time"

	"github.com/fwojciec/raceresults"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFinishTime(t *testing.T) {
	t.Parallel()

	t.Run("parses MM:SS", func(t *testing.T) {
		t.Parallel()

		d, err := raceresults.ParseFinishTime("20:20")
		require.NoError(t, err)
		assert.Equal(t, 20*time.Minute+20*time.Second, d)
	})

	t.Run("parses zero-padded values", func(t *testing.T) {
		t.Parallel()

		d, err := raceresults.ParseFinishTime("05:05")
		require.NoError(t, err)
		assert.Equal(t, 5*time.Minute+5*time.Second, d)
	})

	t.Run("rejects hours component", func(t *testing.T) {
		t.Parallel()

		_, err := raceresults.ParseFinishTime("1:20:20")
		require.Error(t, err)
		assert.Equal(t, raceresults.EINVALID, raceresults.ErrorCode(err))
	})

	t.Run("rejects non-numeric parts", func(t *testing.T) {
		t.Parallel()

		for _, input := range []string{"ab:cd", "20:x5", "-5:10", "20: 5", ""} {
			_, err := raceresults.ParseFinishTime(input)
			require.Error(t, err, "input %q", input)
			assert.Equal(t, raceresults.EINVALID, raceresults.ErrorCode(err), "input %q", input)
		}
	})

	t.Run("rejects out-of-range seconds", func(t *testing.T) {
		t.Parallel()

		_, err := raceresults.ParseFinishTime("20:61")
		require.Error(t, err)
	})
}

func TestFinishMinutes(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 20.5, raceresults.FinishMinutes(20*time.Minute+30*time.Second), 1e-9)
	assert.InDelta(t, 5.0, raceresults.FinishMinutes(5*time.Minute), 1e-9)

	// Derived from total elapsed seconds, so hour-plus durations stay correct.
	assert.InDelta(t, 90.0, raceresults.FinishMinutes(90*time.Minute), 1e-9)
}
