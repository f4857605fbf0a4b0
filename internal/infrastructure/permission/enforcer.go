package permission

import (
	"fmt"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"

	"github.com/sevendesk/helpdesk/internal/domain/permission"
	"github.com/sevendesk/helpdesk/internal/shared/authorization"
	"github.com/sevendesk/helpdesk/internal/shared/logger"
)

var _ permission.PermissionEnforcer = (*Enforcer)(nil)

// rbacModel grants a role an action on a resource; ADMIN inherits AGENTE.
const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

// defaultPolicies is the helpdesk role matrix. CLIENTE holds no role-wide
// capability and is limited to its own tickets by the use cases.
var defaultPolicies = [][]string{
	{authorization.RoleAgent.String(), permission.ResourceTicket, permission.ActionReadAny},
	{authorization.RoleAgent.String(), permission.ResourceTicket, permission.ActionUpdateAny},
	{authorization.RoleAdmin.String(), permission.ResourceTicket, permission.ActionDelete},
	{authorization.RoleAdmin.String(), permission.ResourceUser, permission.ActionManage},
}

var defaultGroupings = [][]string{
	{authorization.RoleAdmin.String(), authorization.RoleAgent.String()},
}

// Enforcer checks role capabilities against a policy set fixed at construction.
type Enforcer struct {
	enforcer *casbin.Enforcer
	logger   logger.Interface
}

// NewEnforcer builds an in-memory enforcer loaded with the default role matrix.
func NewEnforcer(log logger.Interface) (*Enforcer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse casbin model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	if _, err := enforcer.AddPolicies(defaultPolicies); err != nil {
		return nil, fmt.Errorf("failed to load policies: %w", err)
	}
	if _, err := enforcer.AddGroupingPolicies(defaultGroupings); err != nil {
		return nil, fmt.Errorf("failed to load role inheritance: %w", err)
	}

	log.Infow("permission policies loaded", "policies", len(defaultPolicies), "groupings", len(defaultGroupings))

	return &Enforcer{
		enforcer: enforcer,
		logger:   log,
	}, nil
}

func (e *Enforcer) Enforce(role authorization.UserRole, resource string, action string) (bool, error) {
	allowed, err := e.enforcer.Enforce(role.String(), resource, action)
	if err != nil {
		e.logger.Errorw("permission check failed", "error", err, "role", role, "resource", resource, "action", action)
		return false, fmt.Errorf("permission check failed: %w", err)
	}

	return allowed, nil
}
