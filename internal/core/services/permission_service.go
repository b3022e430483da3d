package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/lending_ledger_app/internal/apperrors"
	"github.com/SscSPs/lending_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/lending_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/lending_ledger_app/internal/core/ports/services"
)

// rolePermissions is the capability matrix. Roles not listed have no permissions.
var rolePermissions = map[domain.UserWorkplaceRole][]domain.Permission{
	domain.RoleAdmin: {
		domain.PermTransactionsRead,
		domain.PermTransactionsCreate,
		domain.PermTransactionsUpdate,
		domain.PermTransactionsDelete,
		domain.PermLedgerRecompute,
		domain.PermBankAccountsRead,
		domain.PermAuditRead,
	},
	domain.RoleMember: {
		domain.PermTransactionsRead,
		domain.PermTransactionsCreate,
		domain.PermTransactionsUpdate,
		domain.PermTransactionsDelete,
		domain.PermBankAccountsRead,
	},
	domain.RoleReadOnly: {
		domain.PermTransactionsRead,
		domain.PermBankAccountsRead,
	},
}

// permissionService implements the PermissionSvc interface
type permissionService struct {
	BaseService
	membershipRepo portsrepo.WorkplaceMembershipReader
}

// NewPermissionService creates a permission service backed by the membership store.
func NewPermissionService(membershipRepo portsrepo.WorkplaceMembershipReader) portssvc.PermissionSvc {
	return &permissionService{membershipRepo: membershipRepo}
}

var _ portssvc.PermissionSvc = (*permissionService)(nil)

// HasPermission reports whether role may perform action.
func (s *permissionService) HasPermission(role domain.UserWorkplaceRole, action domain.Permission) bool {
	for _, p := range rolePermissions[role] {
		if p == action {
			return true
		}
	}
	return false
}

// AuthorizeAction resolves the user's role and checks it against the matrix.
func (s *permissionService) AuthorizeAction(ctx context.Context, userID, workplaceID string, action domain.Permission) error {
	if userID == "" || workplaceID == "" {
		return apperrors.ErrForbidden
	}

	membership, err := s.membershipRepo.FindUserWorkplaceRole(ctx, userID, workplaceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "User not a member of workplace",
				slog.String("user_id", userID),
				slog.String("workplace_id", workplaceID))
			return apperrors.ErrForbidden
		}
		s.LogError(ctx, err, "Failed to find user workplace role",
			slog.String("user_id", userID),
			slog.String("workplace_id", workplaceID))
		return err
	}

	if !s.HasPermission(membership.Role, action) {
		s.LogDebug(ctx, "User role lacks permission",
			slog.String("user_id", userID),
			slog.String("workplace_id", workplaceID),
			slog.String("user_role", string(membership.Role)),
			slog.String("action", string(action)))
		return apperrors.ErrForbidden
	}

	return nil
}
