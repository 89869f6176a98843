package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/karyahr/ess-backend-go/internal/domain/notification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotificationRepo struct {
	created   []*notification.Notification
	createErr error
}

func (f *fakeNotificationRepo) Create(ctx context.Context, n *notification.Notification) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, n)
	return nil
}

func (f *fakeNotificationRepo) GetByID(ctx context.Context, id string) (*notification.Notification, error) {
	return nil, notification.ErrNotificationNotFound
}

func (f *fakeNotificationRepo) GetByUserID(ctx context.Context, userID string, page, limit int, unreadOnly bool) ([]*notification.Notification, int64, error) {
	return nil, 0, nil
}

func (f *fakeNotificationRepo) GetUnreadCount(ctx context.Context, userID string) (int, error) {
	return 0, nil
}

func (f *fakeNotificationRepo) MarkAsRead(ctx context.Context, id string, userID string) error {
	return nil
}

func (f *fakeNotificationRepo) MarkAllAsRead(ctx context.Context, userID string) error {
	return nil
}

func TestEmitter_Emit(t *testing.T) {
	t.Parallel()

	repo := &fakeNotificationRepo{}
	emitter := NewEmitter(repo)

	emitter.Emit(t.Context(), notification.EmitRequest{
		UserID:  "u-1",
		Type:    notification.TypeAttendanceLate,
		Title:   "Late clock-in",
		Message: "You clocked in after the grace period.",
	})

	require.Len(t, repo.created, 1)
	assert.Equal(t, "u-1", repo.created[0].UserID)
	assert.Equal(t, notification.TypeAttendanceLate, repo.created[0].Type)
	assert.False(t, repo.created[0].IsRead)
}

func TestEmitter_SwallowsRepositoryErrors(t *testing.T) {
	t.Parallel()

	repo := &fakeNotificationRepo{createErr: errors.New("connection refused")}
	emitter := NewEmitter(repo)

	// Must not panic or surface the failure.
	emitter.Emit(t.Context(), notification.EmitRequest{
		UserID: "u-1",
		Type:   notification.TypePayrollPaid,
	})
	assert.Empty(t, repo.created)
}
