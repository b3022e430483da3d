package domain

import "time"

// UserWorkplaceRole defines the possible roles a user can have within a workplace.
type UserWorkplaceRole string

const (
	RoleAdmin    UserWorkplaceRole = "ADMIN"
	RoleMember   UserWorkplaceRole = "MEMBER"
	RoleReadOnly UserWorkplaceRole = "READONLY" // Users with read-only access to workplace data
	RoleRemoved  UserWorkplaceRole = "REMOVED"  // For users who have been removed from the workplace
)

// Permission is an action a role may or may not be allowed to perform.
type Permission string

const (
	PermTransactionsRead   Permission = "transactions:read"
	PermTransactionsCreate Permission = "transactions:create"
	PermTransactionsUpdate Permission = "transactions:update"
	PermTransactionsDelete Permission = "transactions:delete"
	PermLedgerRecompute    Permission = "ledger:recompute"
	PermBankAccountsRead   Permission = "bank_accounts:read"
	PermAuditRead          Permission = "audit:read"
)

// UserWorkplace represents the relationship between a user and a workplace,
// including the user's role within that workplace.
type UserWorkplace struct {
	UserID      string            `json:"userID"`
	WorkplaceID string            `json:"workplaceID"`
	Role        UserWorkplaceRole `json:"role"`
	JoinedAt    time.Time         `json:"joinedAt"`
}
