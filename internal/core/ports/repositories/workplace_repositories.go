package repositories

import (
	"context"

	"github.com/SscSPs/lending_ledger_app/internal/core/domain"
)

// WorkplaceMembershipReader looks up a user's role. Memberships are managed
// by the hosted auth platform; this service only reads them.
type WorkplaceMembershipReader interface {
	// FindUserWorkplaceRole retrieves the role of a user in a workplace.
	// Returns apperrors.ErrNotFound when the user is not a member.
	FindUserWorkplaceRole(ctx context.Context, userID, workplaceID string) (*domain.UserWorkplace, error)
}
