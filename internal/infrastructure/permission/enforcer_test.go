package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevendesk/helpdesk/internal/domain/permission"
	"github.com/sevendesk/helpdesk/internal/shared/authorization"
	"github.com/sevendesk/helpdesk/internal/shared/logger"
)

func TestEnforcer_DefaultMatrix(t *testing.T) {
	e, err := NewEnforcer(logger.NewNopLogger())
	require.NoError(t, err)

	tests := []struct {
		role     authorization.UserRole
		resource string
		action   string
		want     bool
	}{
		{authorization.RoleClient, permission.ResourceTicket, permission.ActionReadAny, false},
		{authorization.RoleClient, permission.ResourceTicket, permission.ActionUpdateAny, false},
		{authorization.RoleClient, permission.ResourceTicket, permission.ActionDelete, false},
		{authorization.RoleAgent, permission.ResourceTicket, permission.ActionReadAny, true},
		{authorization.RoleAgent, permission.ResourceTicket, permission.ActionUpdateAny, true},
		{authorization.RoleAgent, permission.ResourceTicket, permission.ActionDelete, false},
		{authorization.RoleAgent, permission.ResourceUser, permission.ActionManage, false},
		{authorization.RoleAdmin, permission.ResourceTicket, permission.ActionReadAny, true},
		{authorization.RoleAdmin, permission.ResourceTicket, permission.ActionDelete, true},
		{authorization.RoleAdmin, permission.ResourceUser, permission.ActionManage, true},
	}

	for _, tt := range tests {
		t.Run(tt.role.String()+"/"+tt.resource+"/"+tt.action, func(t *testing.T) {
			got, err := e.Enforce(tt.role, tt.resource, tt.action)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEnforcer_UnknownSubjectsDenied(t *testing.T) {
	e, err := NewEnforcer(logger.NewNopLogger())
	require.NoError(t, err)

	allowed, err := e.Enforce("SUPPORT", permission.ResourceTicket, permission.ActionReadAny)
	require.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = e.Enforce(authorization.RoleAdmin, "invoice", permission.ActionDelete)
	require.NoError(t, err)
	assert.False(t, allowed)
}
