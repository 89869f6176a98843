package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weekdayConfig() Config {
	return Config{
		WorkStartTime: "08:00",
		WorkEndTime:   "17:00",
		LateThreshold: 15,
		WorkingDays:   []int{1, 2, 3, 4, 5},
	}
}

func TestIsWorkingDay(t *testing.T) {
	t.Parallel()

	cfg := weekdayConfig()

	assert.True(t, cfg.IsWorkingDay(time.Monday))
	assert.True(t, cfg.IsWorkingDay(time.Friday))
	assert.False(t, cfg.IsWorkingDay(time.Saturday))
	assert.False(t, cfg.IsWorkingDay(time.Sunday))
}

func TestLateThresholdOn(t *testing.T) {
	t.Parallel()

	cfg := weekdayConfig()
	// A Monday.
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	threshold, err := cfg.LateThresholdOn(date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 10, 8, 15, 0, 0, time.UTC), threshold)

	// 08:20 is past the grace window, 08:15 sharp is not.
	assert.True(t, time.Date(2025, 3, 10, 8, 20, 0, 0, time.UTC).After(threshold))
	assert.False(t, time.Date(2025, 3, 10, 8, 15, 0, 0, time.UTC).After(threshold))
}

func TestWorkStartAndEndOn(t *testing.T) {
	t.Parallel()

	cfg := weekdayConfig()
	date := time.Date(2025, 3, 10, 13, 45, 0, 0, time.UTC)

	start, err := cfg.WorkStartOn(date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC), start)

	end, err := cfg.WorkEndOn(date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC), end)
}

func TestWorkStartOn_InvalidFormat(t *testing.T) {
	t.Parallel()

	cfg := Config{WorkStartTime: "8 o'clock"}
	_, err := cfg.WorkStartOn(time.Now())
	assert.Error(t, err)
}
