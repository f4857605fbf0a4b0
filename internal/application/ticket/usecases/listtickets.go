package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/sevendesk/helpdesk/internal/application/ticket/dto"
	"github.com/sevendesk/helpdesk/internal/domain/permission"
	"github.com/sevendesk/helpdesk/internal/domain/ticket"
	vo "github.com/sevendesk/helpdesk/internal/domain/ticket/valueobjects"
	"github.com/sevendesk/helpdesk/internal/shared/errors"
	"github.com/sevendesk/helpdesk/internal/shared/logger"
	"github.com/sevendesk/helpdesk/internal/shared/utils"
)

type ListTicketsQuery struct {
	Actor      Actor
	Search     string
	Status     string
	Priority   string
	AssigneeID *uint
	Associacao string
	Page       int
	PageSize   int
}

type ListTicketsResult struct {
	Items []dto.TicketDTO `json:"items"`
	Total int64           `json:"total"`
}

type ListTicketsUseCase struct {
	access ticketAccess
	logger logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	enforcer permission.PermissionEnforcer,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		access: ticketAccess{ticketRepo: ticketRepo, enforcer: enforcer, logger: logger},
		logger: logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	uc.logger.Debugw("executing list tickets use case", "user_id", query.Actor.UserID, "role", query.Actor.Role)

	filter, err := uc.buildFilter(query)
	if err != nil {
		return nil, err
	}

	// Clients only ever see their own tickets, whatever else was asked for.
	readAny, err := uc.access.allowed(query.Actor, permission.ActionReadAny)
	if err != nil {
		return nil, err
	}
	if !readAny {
		requesterID := query.Actor.UserID
		filter.RequesterID = &requesterID
	}

	tickets, total, err := uc.access.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	return &ListTicketsResult{
		Items: dto.ToTicketDTOList(tickets),
		Total: total,
	}, nil
}

func (uc *ListTicketsUseCase) buildFilter(query ListTicketsQuery) (ticket.TicketFilter, error) {
	p := utils.ValidatePagination(query.Page, query.PageSize)
	filter := ticket.TicketFilter{
		Search:      strings.TrimSpace(query.Search),
		AssigneeID:  query.AssigneeID,
		Association: strings.TrimSpace(query.Associacao),
		Page:        p.Page,
		PageSize:    p.PageSize,
	}

	if query.Status != "" {
		status, err := vo.NewTicketStatus(query.Status)
		if err != nil {
			return filter, errors.NewValidationError("invalid status")
		}
		filter.Status = &status
	}
	if query.Priority != "" {
		priority, err := vo.NewPriority(query.Priority)
		if err != nil {
			return filter, errors.NewValidationError("invalid priority")
		}
		filter.Priority = &priority
	}
	return filter, nil
}
