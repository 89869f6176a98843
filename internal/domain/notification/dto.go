package notification

// EmitRequest is what business services hand to the emitter. Delivery is
// best-effort: the emitter never reports failure back to the caller.
type EmitRequest struct {
	UserID  string
	Type    NotificationType
	Title   string
	Message string
}

type NotificationResponse struct {
	ID        string  `json:"id"`
	Type      string  `json:"type"`
	Title     string  `json:"title"`
	Message   string  `json:"message"`
	IsRead    bool    `json:"is_read"`
	ReadAt    *string `json:"read_at,omitempty"`
	CreatedAt string  `json:"created_at"`
}

type ListNotificationResponse struct {
	TotalCount    int64                  `json:"total_count"`
	UnreadCount   int                    `json:"unread_count"`
	Page          int                    `json:"page"`
	Limit         int                    `json:"limit"`
	Notifications []NotificationResponse `json:"notifications"`
}
