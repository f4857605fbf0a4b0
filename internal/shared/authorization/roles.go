package authorization

import "github.com/sevendesk/helpdesk/internal/shared/utils/enumutil"

type UserRole string

const (
	RoleAdmin  UserRole = "ADMIN"
	RoleAgent  UserRole = "AGENTE"
	RoleClient UserRole = "CLIENTE"
)

// legacyRequester is the old spelling of RoleClient still found in tokens and rows.
const legacyRequester = "REQUESTER"

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

// IsRequester reports whether the role is restricted to its own tickets.
func (r UserRole) IsRequester() bool {
	return r == RoleClient
}

func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleAgent || r == RoleClient
}

// ParseUserRole normalizes case and the legacy REQUESTER spelling. It returns
// false for anything else.
func ParseUserRole(s string) (UserRole, bool) {
	n := enumutil.Normalize(s)
	if n == legacyRequester {
		return RoleClient, true
	}
	role := UserRole(n)
	return role, role.IsValid()
}

// RoleOrDefault parses s and falls back to the least privileged role.
func RoleOrDefault(s string) UserRole {
	if role, ok := ParseUserRole(s); ok {
		return role
	}
	return RoleClient
}

func AllRoles() []UserRole {
	return []UserRole{RoleAdmin, RoleAgent, RoleClient}
}
