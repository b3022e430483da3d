package services

import "context"

// NotificationKind is the outcome class of a user-facing notification.
type NotificationKind string

const (
	NotifySuccess NotificationKind = "success"
	NotifyError   NotificationKind = "error"
	NotifyInfo    NotificationKind = "info"
)

// Notifier informs the caller of the outcome of an operation. It is purely
// observational and never fails.
type Notifier interface {
	Notify(ctx context.Context, message string, kind NotificationKind)
}
