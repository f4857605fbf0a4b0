// Package permission names the role-scoped capabilities checked by use cases.
// Ownership rules (a client reading its own ticket) stay in the use cases.
package permission

import "github.com/sevendesk/helpdesk/internal/shared/authorization"

const (
	ResourceTicket = "ticket"
	ResourceUser   = "user"
)

const (
	// ActionReadAny allows reading tickets requested by someone else.
	ActionReadAny = "read_any"
	// ActionUpdateAny allows changing status, priority, assignee and association.
	ActionUpdateAny = "update_any"
	ActionDelete    = "delete"
	ActionManage    = "manage"
)

type PermissionEnforcer interface {
	Enforce(role authorization.UserRole, resource string, action string) (bool, error)
}
