package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/karyahr/ess-backend-go/internal/domain/notification"
)

type NotificationServiceImpl struct {
	repo notification.Repository
}

func NewNotificationService(repo notification.Repository) notification.Service {
	return &NotificationServiceImpl{repo: repo}
}

func getUserIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}

	return userID, nil
}

func toResponse(n *notification.Notification) notification.NotificationResponse {
	var readAt *string
	if n.ReadAt != nil {
		s := n.ReadAt.Format(time.RFC3339)
		readAt = &s
	}

	return notification.NotificationResponse{
		ID:        n.ID,
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		IsRead:    n.IsRead,
		ReadAt:    readAt,
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
	}
}

func (s *NotificationServiceImpl) GetMy(ctx context.Context, page, limit int, unreadOnly bool) (notification.ListNotificationResponse, error) {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return notification.ListNotificationResponse{}, err
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	notifications, total, err := s.repo.GetByUserID(ctx, userID, page, limit, unreadOnly)
	if err != nil {
		return notification.ListNotificationResponse{}, err
	}

	unread, err := s.repo.GetUnreadCount(ctx, userID)
	if err != nil {
		return notification.ListNotificationResponse{}, err
	}

	responses := make([]notification.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		responses = append(responses, toResponse(n))
	}

	return notification.ListNotificationResponse{
		TotalCount:    total,
		UnreadCount:   unread,
		Page:          page,
		Limit:         limit,
		Notifications: responses,
	}, nil
}

func (s *NotificationServiceImpl) GetUnreadCount(ctx context.Context) (int, error) {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return 0, err
	}

	return s.repo.GetUnreadCount(ctx, userID)
}

func (s *NotificationServiceImpl) MarkAsRead(ctx context.Context, id string) error {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return err
	}

	return s.repo.MarkAsRead(ctx, id, userID)
}

func (s *NotificationServiceImpl) MarkAllAsRead(ctx context.Context) error {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return err
	}

	return s.repo.MarkAllAsRead(ctx, userID)
}
