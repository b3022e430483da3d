package services

import (
	"context"

	"github.com/SscSPs/lending_ledger_app/internal/core/domain"
)

// PermissionChecker answers whether a role may perform an action.
type PermissionChecker interface {
	HasPermission(role domain.UserWorkplaceRole, action domain.Permission) bool
}

// PermissionSvc resolves the user's role in a workplace and checks it.
type PermissionSvc interface {
	PermissionChecker

	// AuthorizeAction returns apperrors.ErrForbidden when userID may not
	// perform action in workplaceID.
	AuthorizeAction(ctx context.Context, userID, workplaceID string, action domain.Permission) error
}
