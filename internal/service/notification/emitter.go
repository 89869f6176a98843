package notification

import (
	"context"
	"log/slog"

	"github.com/karyahr/ess-backend-go/internal/domain/notification"
)

// repositoryEmitter writes notifications through the repository. Failures
// are logged and dropped so the triggering business flow never sees them.
type repositoryEmitter struct {
	repo notification.Repository
}

func NewEmitter(repo notification.Repository) notification.Emitter {
	return &repositoryEmitter{repo: repo}
}

func (e *repositoryEmitter) Emit(ctx context.Context, req notification.EmitRequest) {
	n := &notification.Notification{
		UserID:  req.UserID,
		Type:    req.Type,
		Title:   req.Title,
		Message: req.Message,
	}

	if err := e.repo.Create(ctx, n); err != nil {
		slog.Error("failed to emit notification",
			"user_id", req.UserID,
			"type", string(req.Type),
			"error", err,
		)
	}
}

// NopEmitter discards everything. Used in tests.
type NopEmitter struct{}

func (NopEmitter) Emit(ctx context.Context, req notification.EmitRequest) {}
