package models

import (
	"time"

	"github.com/sevendesk/helpdesk/internal/shared/constants"
)

// UpdatedAt is owned by the domain aggregate, so GORM must not overwrite it.
type TicketModel struct {
	ID          uint      `gorm:"primaryKey"`
	Title       string    `gorm:"size:200;not null"`
	Description string    `gorm:"type:text;not null"`
	Status      string    `gorm:"size:20;not null;default:ABERTO;index"`
	Priority    string    `gorm:"size:20;not null;default:MÉDIA;index"`
	RequesterID uint      `gorm:"not null;index"`
	AssigneeID  *uint     `gorm:"index"`
	Associacao  *string   `gorm:"column:associacao;size:120"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime:false;not null;index"`
}

func (TicketModel) TableName() string {
	return constants.TableTickets
}

type CommentModel struct {
	ID        uint      `gorm:"primaryKey"`
	TicketID  uint      `gorm:"not null;index"`
	AuthorID  uint      `gorm:"not null;index"`
	Body      string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null;index"`
}

func (CommentModel) TableName() string {
	return constants.TableComments
}
