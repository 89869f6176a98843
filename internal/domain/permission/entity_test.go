package permission

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDurationDays(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		end  time.Time
		want int
	}{
		{"single day", start, 1},
		{"three days", start.AddDate(0, 0, 2), 3},
		{"full week", start.AddDate(0, 0, 6), 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Permission{StartDate: start, EndDate: tt.end}
			assert.Equal(t, tt.want, p.DurationDays())
		})
	}
}

func TestCanApproveStage1(t *testing.T) {
	t.Parallel()

	for _, status := range []Status{StatusApprovedByApproval, StatusApproved, StatusRejected, StatusCanceled} {
		p := Permission{Status: status}
		assert.ErrorIs(t, p.CanApproveStage1(), ErrNotAwaitingApproval, "status %s", status)
		assert.ErrorIs(t, p.CanRejectStage1(), ErrNotAwaitingApproval, "status %s", status)
	}

	p := Permission{Status: StatusPending}
	assert.NoError(t, p.CanApproveStage1())
	assert.NoError(t, p.CanRejectStage1())
}

func TestCanApproveStage2(t *testing.T) {
	t.Parallel()

	for _, status := range []Status{StatusPending, StatusApproved, StatusRejected, StatusCanceled} {
		p := Permission{Status: status}
		assert.ErrorIs(t, p.CanApproveStage2(), ErrNotAwaitingHRD, "status %s", status)
		assert.ErrorIs(t, p.CanRejectStage2(), ErrNotAwaitingHRD, "status %s", status)
	}

	p := Permission{Status: StatusApprovedByApproval}
	assert.NoError(t, p.CanApproveStage2())
	assert.NoError(t, p.CanRejectStage2())
}

func TestCanCancel(t *testing.T) {
	t.Parallel()

	// Cancellation stays open through full approval.
	for _, status := range []Status{StatusPending, StatusApprovedByApproval, StatusApproved} {
		p := Permission{Status: status}
		assert.NoError(t, p.CanCancel(), "status %s", status)
	}

	for _, status := range []Status{StatusRejected, StatusCanceled} {
		p := Permission{Status: status}
		assert.ErrorIs(t, p.CanCancel(), ErrAlreadyFinalized, "status %s", status)
	}
}

func TestCanEdit(t *testing.T) {
	t.Parallel()

	p := Permission{Status: StatusPending}
	assert.NoError(t, p.CanEdit())

	for _, status := range []Status{StatusApprovedByApproval, StatusApproved, StatusRejected, StatusCanceled} {
		p := Permission{Status: status}
		assert.ErrorIs(t, p.CanEdit(), ErrNotPending, "status %s", status)
	}
}

func TestCountsAgainstQuota(t *testing.T) {
	t.Parallel()

	counting := []Status{StatusPending, StatusApprovedByApproval, StatusApproved}
	for _, status := range counting {
		p := Permission{Status: status}
		assert.True(t, p.CountsAgainstQuota(), "status %s", status)
	}

	// Rejection and cancellation return the slot.
	for _, status := range []Status{StatusRejected, StatusCanceled} {
		p := Permission{Status: status}
		assert.False(t, p.CountsAgainstQuota(), "status %s", status)
	}
}

func TestIsTerminal(t *testing.T) {
	t.Parallel()

	for _, status := range []Status{StatusApproved, StatusRejected, StatusCanceled} {
		p := Permission{Status: status}
		assert.True(t, p.IsTerminal(), "status %s", status)
	}
	for _, status := range []Status{StatusPending, StatusApprovedByApproval} {
		p := Permission{Status: status}
		assert.False(t, p.IsTerminal(), "status %s", status)
	}
}

func TestIsValidType(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidType("short_leave"))
	assert.True(t, IsValidType("cuti"))
	assert.True(t, IsValidType("visit"))
	assert.True(t, IsValidType("dinas"))
	assert.False(t, IsValidType("sabbatical"))
	assert.False(t, IsValidType(""))
}
