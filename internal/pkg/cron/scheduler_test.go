package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScheduler_RunOnce(t *testing.T) {
	t.Parallel()

	s := NewScheduler()
	var ran atomic.Int32

	s.AddJob("counter", 0, func(ctx context.Context) error {
		ran.Add(1)
		return nil
	})
	s.AddJob("failing", 0, func(ctx context.Context) error {
		ran.Add(1)
		return errors.New("boom")
	})

	s.RunOnce(t.Context())
	assert.Equal(t, int32(2), ran.Load())
}

func TestScheduler_StopWithoutStart(t *testing.T) {
	t.Parallel()

	s := NewScheduler()
	// Must not block or panic when nothing was scheduled.
	s.Stop()
}
