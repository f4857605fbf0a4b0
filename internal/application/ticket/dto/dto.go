package dto

import (
	"time"

	"github.com/sevendesk/helpdesk/internal/domain/ticket"
	"github.com/sevendesk/helpdesk/internal/domain/user"
	"github.com/sevendesk/helpdesk/internal/shared/mapper"
	"github.com/sevendesk/helpdesk/internal/shared/nullable"
)

// Stream event names.
const (
	EventComment = "comment"
	EventTyping  = "typing"
)

// UserSummary is the public face of a user embedded in tickets and comments.
type UserSummary struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	AvatarURL *string `json:"avatar_url"`
}

type TicketDTO struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	RequesterID uint      `json:"requesterId"`
	AssigneeID  *uint     `json:"assigneeId"`
	Associacao  *string   `json:"associacao"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TicketDetailDTO is the ticket page: the ticket, both participants and the
// whole conversation.
type TicketDetailDTO struct {
	TicketDTO
	Requester *UserSummary `json:"requester"`
	Assignee  *UserSummary `json:"assignee"`
	Comments  []CommentDTO `json:"comments"`
}

type CommentDTO struct {
	ID        uint         `json:"id"`
	TicketID  uint         `json:"ticketId"`
	AuthorID  uint         `json:"authorId"`
	Body      string       `json:"body"`
	BodyHTML  string       `json:"bodyHtml"`
	CreatedAt time.Time    `json:"createdAt"`
	Author    *UserSummary `json:"author"`
}

// TypingEvent is published on a ticket stream while someone writes a reply.
type TypingEvent struct {
	TicketID  uint    `json:"ticketId"`
	Typing    bool    `json:"typing"`
	UserID    uint    `json:"userId"`
	Name      string  `json:"name"`
	AvatarURL *string `json:"avatarUrl"`
	At        int64   `json:"at"`
}

// CommentNotification is published on the global streams of a ticket's participants.
type CommentNotification struct {
	TicketID uint       `json:"ticketId"`
	Comment  CommentDTO `json:"comment"`
}

type CreateTicketRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Priority    string  `json:"priority"`
	AssigneeID  *uint   `json:"assigneeId"`
	Associacao  *string `json:"associacao"`
}

// UpdateTicketRequest tells an absent member apart from an explicit null, so
// `{"assigneeId": null}` unassigns while `{}` leaves the assignee alone.
type UpdateTicketRequest struct {
	Title       nullable.Field[string] `json:"title"`
	Description nullable.Field[string] `json:"description"`
	Status      nullable.Field[string] `json:"status"`
	Priority    nullable.Field[string] `json:"priority"`
	Associacao  nullable.Field[string] `json:"associacao"`
	AssigneeID  nullable.Field[uint]   `json:"assigneeId"`
}

type AddCommentRequest struct {
	Body string `json:"body"`
}

type TypingRequest struct {
	Typing *bool `json:"typing"`
}

func ToTicketDTO(t *ticket.Ticket) TicketDTO {
	return TicketDTO{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		Status:      t.Status().String(),
		Priority:    t.Priority().String(),
		RequesterID: t.RequesterID(),
		AssigneeID:  t.AssigneeID(),
		Associacao:  t.Association(),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
}

func ToTicketDTOList(tickets []*ticket.Ticket) []TicketDTO {
	return mapper.MapSlice(tickets, ToTicketDTO)
}

// ToUserSummary returns nil for a missing user.
func ToUserSummary(u *user.User) *UserSummary {
	if u == nil {
		return nil
	}
	return &UserSummary{
		ID:        u.ID(),
		Name:      u.Name(),
		Email:     u.Email(),
		AvatarURL: u.AvatarURL(),
	}
}

func ToCommentDTO(c *ticket.Comment, author *user.User, bodyHTML string) CommentDTO {
	return CommentDTO{
		ID:        c.ID(),
		TicketID:  c.TicketID(),
		AuthorID:  c.AuthorID(),
		Body:      c.Body(),
		BodyHTML:  bodyHTML,
		CreatedAt: c.CreatedAt(),
		Author:    ToUserSummary(author),
	}
}
