// Package notify delivers operation outcome notifications.
package notify

import (
	"context"
	"log/slog"

	portssvc "github.com/SscSPs/lending_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/lending_ledger_app/internal/middleware"
	"github.com/SscSPs/lending_ledger_app/internal/platform/analytics"
)

// LogNotifier writes notifications to the request logger.
type LogNotifier struct{}

func (LogNotifier) Notify(ctx context.Context, message string, kind portssvc.NotificationKind) {
	logger := middleware.GetLoggerFromCtx(ctx)
	level := slog.LevelInfo
	if kind == portssvc.NotifyError {
		level = slog.LevelWarn
	}
	logger.Log(ctx, level, "Notification", slog.String("kind", string(kind)), slog.String("message", message))
}

// PosthogEvent is the event name notifications are captured under.
const PosthogEvent = "operation_notification"

// PosthogNotifier captures notifications as product analytics events,
// attributed to the authenticated user.
type PosthogNotifier struct {
	client *analytics.PosthogClientWrapper
}

// NewPosthogNotifier creates a notifier; a disabled client makes it a no-op.
func NewPosthogNotifier(client *analytics.PosthogClientWrapper) *PosthogNotifier {
	return &PosthogNotifier{client: client}
}

func (n *PosthogNotifier) Notify(ctx context.Context, message string, kind portssvc.NotificationKind) {
	if !n.client.IsInitialized() {
		return
	}
	userID, ok := middleware.UserIDFromCtx(ctx)
	if !ok {
		userID = "system"
	}
	n.client.Enqueue(userID, PosthogEvent, map[string]any{
		"kind":    string(kind),
		"message": message,
	})
}

// Multi fans a notification out to every notifier in order.
type Multi []portssvc.Notifier

func (m Multi) Notify(ctx context.Context, message string, kind portssvc.NotificationKind) {
	for _, n := range m {
		n.Notify(ctx, message, kind)
	}
}

var (
	_ portssvc.Notifier = LogNotifier{}
	_ portssvc.Notifier = (*PosthogNotifier)(nil)
	_ portssvc.Notifier = Multi(nil)
)
