package ticket

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	vo "github.com/sevendesk/helpdesk/internal/domain/ticket/valueobjects"
	"github.com/sevendesk/helpdesk/internal/shared/biztime"
	"github.com/sevendesk/helpdesk/internal/shared/utils/setutil"
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 10000
	maxAssociationLength = 120
)

type Ticket struct {
	id          uint
	title       string
	description string
	status      vo.TicketStatus
	priority    vo.Priority
	requesterID uint
	assigneeID  *uint
	association *string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewTicket(
	title string,
	description string,
	priority vo.Priority,
	requesterID uint,
) (*Ticket, error) {
	if requesterID == 0 {
		return nil, fmt.Errorf("requester ID is required")
	}
	if priority == "" {
		priority = vo.PriorityMedium
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}

	now := biztime.NowUTC()
	t := &Ticket{
		status:      vo.StatusOpen,
		priority:    priority,
		requesterID: requesterID,
		createdAt:   now,
		updatedAt:   now,
	}
	if err := t.setTitle(title); err != nil {
		return nil, err
	}
	if err := t.setDescription(description); err != nil {
		return nil, err
	}
	return t, nil
}

func ReconstructTicket(
	id uint,
	title string,
	description string,
	status vo.TicketStatus,
	priority vo.Priority,
	requesterID uint,
	assigneeID *uint,
	association *string,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if requesterID == 0 {
		return nil, fmt.Errorf("requester ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}

	return &Ticket{
		id:          id,
		title:       title,
		description: description,
		status:      status,
		priority:    priority,
		requesterID: requesterID,
		assigneeID:  assigneeID,
		association: association,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) RequesterID() uint {
	return t.requesterID
}

func (t *Ticket) AssigneeID() *uint {
	return t.assigneeID
}

// Association is the free-text tag grouping tickets by customer or contract.
func (t *Ticket) Association() *string {
	return t.association
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Ticket) IsRequestedBy(userID uint) bool {
	return userID != 0 && t.requesterID == userID
}

// Participants returns the requester and the assignee, without duplicates.
func (t *Ticket) Participants() []uint {
	set := setutil.NewIDSet(t.requesterID)
	set.AddPtr(t.assigneeID)
	return set.Slice()
}

func (t *Ticket) UpdateTitle(title string) error {
	if err := t.setTitle(title); err != nil {
		return err
	}
	t.Touch()
	return nil
}

func (t *Ticket) UpdateDescription(description string) error {
	if err := t.setDescription(description); err != nil {
		return err
	}
	t.Touch()
	return nil
}

func (t *Ticket) ChangeStatus(status vo.TicketStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid status: %s", status)
	}
	t.status = status
	t.Touch()
	return nil
}

func (t *Ticket) ChangePriority(priority vo.Priority) error {
	if !priority.IsValid() {
		return fmt.Errorf("invalid priority: %s", priority)
	}
	t.priority = priority
	t.Touch()
	return nil
}

// AssignTo sets the assignee; nil clears it.
func (t *Ticket) AssignTo(assigneeID *uint) error {
	if assigneeID != nil && *assigneeID == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}
	t.assigneeID = assigneeID
	t.Touch()
	return nil
}

// SetAssociation sets the association tag; nil or blank clears it.
func (t *Ticket) SetAssociation(association *string) error {
	if association != nil {
		trimmed := strings.TrimSpace(*association)
		if trimmed == "" {
			association = nil
		} else {
			if utf8.RuneCountInString(trimmed) > maxAssociationLength {
				return fmt.Errorf("association exceeds maximum length of %d characters", maxAssociationLength)
			}
			association = &trimmed
		}
	}
	t.association = association
	t.Touch()
	return nil
}

// Touch advances updatedAt. The new value is always strictly later than the
// previous one so list ordering reflects the latest mutation.
func (t *Ticket) Touch() {
	now := biztime.NowUTC()
	if !now.After(t.updatedAt) {
		now = t.updatedAt.Add(time.Microsecond)
	}
	t.updatedAt = now
}

func (t *Ticket) setTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Errorf("title is required")
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return fmt.Errorf("title exceeds maximum length of %d characters", maxTitleLength)
	}
	t.title = title
	return nil
}

func (t *Ticket) setDescription(description string) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return fmt.Errorf("description is required")
	}
	if utf8.RuneCountInString(description) > maxDescriptionLength {
		return fmt.Errorf("description exceeds maximum length of %d characters", maxDescriptionLength)
	}
	t.description = description
	return nil
}
