package ticket

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/sevendesk/helpdesk/internal/domain/ticket/valueobjects"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func uintPtr(v uint) *uint    { return &v }
func strPtr(v string) *string { return &v }

// persistedTicket builds a ticket as the repository would return it.
func persistedTicket(t *testing.T, requesterID uint, assigneeID *uint) *Ticket {
	t.Helper()
	past := time.Now().UTC().Add(-time.Hour)
	tk, err := ReconstructTicket(
		42, "Printer offline", "Third floor printer is down",
		vo.StatusOpen, vo.PriorityMedium,
		requesterID, assigneeID, strPtr("ACME"),
		past, past,
	)
	require.NoError(t, err)
	return tk
}

// ---------------------------------------------------------------------------
// Constructor Tests
// ---------------------------------------------------------------------------

func TestNewTicket_Defaults(t *testing.T) {
	tk, err := NewTicket("  Printer offline ", "It is down", "", 7)
	require.NoError(t, err)

	assert.Equal(t, "Printer offline", tk.Title())
	assert.Equal(t, vo.StatusOpen, tk.Status())
	assert.Equal(t, vo.PriorityMedium, tk.Priority())
	assert.Equal(t, uint(7), tk.RequesterID())
	assert.Nil(t, tk.AssigneeID())
	assert.Nil(t, tk.Association())
	assert.Equal(t, tk.CreatedAt(), tk.UpdatedAt())
}

func TestNewTicket_InvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		desc     string
		priority vo.Priority
		reqID    uint
		wantErr  string
	}{
		{"missing title", " ", "desc", vo.PriorityHigh, 1, "title is required"},
		{"missing description", "title", "", vo.PriorityHigh, 1, "description is required"},
		{"title too long", strings.Repeat("a", 201), "desc", vo.PriorityHigh, 1, "title exceeds"},
		{"bad priority", "title", "desc", "URGENT", 1, "invalid priority"},
		{"no requester", "title", "desc", vo.PriorityLow, 0, "requester ID is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTicket(tt.title, tt.desc, tt.priority, tt.reqID)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestReconstructTicket_Validation(t *testing.T) {
	now := time.Now()
	_, err := ReconstructTicket(0, "t", "d", vo.StatusOpen, vo.PriorityLow, 1, nil, nil, now, now)
	assert.Error(t, err)

	_, err = ReconstructTicket(1, "t", "d", "open", vo.PriorityLow, 1, nil, nil, now, now)
	assert.Error(t, err)

	_, err = ReconstructTicket(1, "t", "d", vo.StatusOpen, vo.PriorityLow, 0, nil, nil, now, now)
	assert.Error(t, err)
}

// ---------------------------------------------------------------------------
// Mutation Tests
// ---------------------------------------------------------------------------

func TestTicket_ChangeStatus_LeavesOtherFields(t *testing.T) {
	tk := persistedTicket(t, 7, uintPtr(9))
	before := tk.UpdatedAt()

	require.NoError(t, tk.ChangeStatus(vo.StatusClosed))

	assert.Equal(t, vo.StatusClosed, tk.Status())
	assert.Equal(t, "Printer offline", tk.Title())
	assert.Equal(t, "Third floor printer is down", tk.Description())
	assert.Equal(t, vo.PriorityMedium, tk.Priority())
	require.NotNil(t, tk.AssigneeID())
	assert.Equal(t, uint(9), *tk.AssigneeID())
	require.NotNil(t, tk.Association())
	assert.Equal(t, "ACME", *tk.Association())
	assert.True(t, tk.UpdatedAt().After(before))
}

func TestTicket_Touch_AlwaysAdvances(t *testing.T) {
	future := time.Now().UTC().Add(time.Hour)
	tk, err := ReconstructTicket(1, "t", "d", vo.StatusOpen, vo.PriorityLow, 1, nil, nil, future, future)
	require.NoError(t, err)

	tk.Touch()

	assert.True(t, tk.UpdatedAt().After(future))
}

func TestTicket_AssignTo(t *testing.T) {
	tk := persistedTicket(t, 7, nil)

	require.NoError(t, tk.AssignTo(uintPtr(9)))
	assert.Equal(t, uint(9), *tk.AssigneeID())

	require.NoError(t, tk.AssignTo(nil))
	assert.Nil(t, tk.AssigneeID())

	assert.Error(t, tk.AssignTo(uintPtr(0)))
}

func TestTicket_SetAssociation(t *testing.T) {
	tk := persistedTicket(t, 7, nil)

	require.NoError(t, tk.SetAssociation(strPtr("  Globex ")))
	assert.Equal(t, "Globex", *tk.Association())

	require.NoError(t, tk.SetAssociation(strPtr("   ")))
	assert.Nil(t, tk.Association())

	require.NoError(t, tk.SetAssociation(strPtr("Initech")))
	require.NoError(t, tk.SetAssociation(nil))
	assert.Nil(t, tk.Association())
}

func TestTicket_UpdateTitle_RejectsBlank(t *testing.T) {
	tk := persistedTicket(t, 7, nil)
	before := tk.UpdatedAt()

	assert.Error(t, tk.UpdateTitle("  "))
	assert.Equal(t, "Printer offline", tk.Title())
	assert.Equal(t, before, tk.UpdatedAt())
}

// ---------------------------------------------------------------------------
// Participant Tests
// ---------------------------------------------------------------------------

func TestTicket_Participants(t *testing.T) {
	tests := []struct {
		name     string
		assignee *uint
		want     []uint
	}{
		{"requester and assignee", uintPtr(9), []uint{7, 9}},
		{"no assignee", nil, []uint{7}},
		{"self assigned", uintPtr(7), []uint{7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk := persistedTicket(t, 7, tt.assignee)
			assert.Equal(t, tt.want, tk.Participants())
		})
	}
}

func TestTicket_IsRequestedBy(t *testing.T) {
	tk := persistedTicket(t, 7, nil)
	assert.True(t, tk.IsRequestedBy(7))
	assert.False(t, tk.IsRequestedBy(9))
	assert.False(t, tk.IsRequestedBy(0))
}
