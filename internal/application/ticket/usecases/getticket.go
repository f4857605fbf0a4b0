package usecases

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/sevendesk/helpdesk/internal/application/ticket/dto"
	"github.com/sevendesk/helpdesk/internal/domain/permission"
	"github.com/sevendesk/helpdesk/internal/domain/ticket"
	"github.com/sevendesk/helpdesk/internal/domain/user"
	"github.com/sevendesk/helpdesk/internal/shared/logger"
	"github.com/sevendesk/helpdesk/internal/shared/utils/setutil"
)

type GetTicketQuery struct {
	Actor    Actor
	TicketID uint
}

type GetTicketUseCase struct {
	access      ticketAccess
	commentRepo ticket.CommentRepository
	users       UserReader
	renderer    TextRenderer
	logger      logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	users UserReader,
	enforcer permission.PermissionEnforcer,
	renderer TextRenderer,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		access:      ticketAccess{ticketRepo: ticketRepo, enforcer: enforcer, logger: logger},
		commentRepo: commentRepo,
		users:       users,
		renderer:    renderer,
		logger:      logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDetailDTO, error) {
	t, err := uc.access.loadReadable(ctx, query.Actor, query.TicketID)
	if err != nil {
		return nil, err
	}

	var (
		comments []*ticket.Comment
		users    map[uint]*user.User
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		comments, err = uc.commentRepo.ListByTicketID(gctx, t.ID())
		if err != nil {
			return fmt.Errorf("failed to list comments: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		users, err = usersByID(gctx, uc.users, t.Participants())
		return err
	})
	if err := g.Wait(); err != nil {
		uc.logger.Errorw("failed to load ticket detail", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	missing := setutil.NewIDSet()
	for _, c := range comments {
		if _, ok := users[c.AuthorID()]; !ok {
			missing.Add(c.AuthorID())
		}
	}
	authors, err := usersByID(ctx, uc.users, missing.Slice())
	if err != nil {
		uc.logger.Errorw("failed to resolve comment authors", "ticket_id", t.ID(), "error", err)
		return nil, err
	}
	for id, u := range authors {
		users[id] = u
	}

	detail := &dto.TicketDetailDTO{
		TicketDTO: dto.ToTicketDTO(t),
		Requester: dto.ToUserSummary(users[t.RequesterID()]),
		Comments:  make([]dto.CommentDTO, 0, len(comments)),
	}
	if assigneeID := t.AssigneeID(); assigneeID != nil {
		detail.Assignee = dto.ToUserSummary(users[*assigneeID])
	}
	for _, c := range comments {
		detail.Comments = append(detail.Comments, dto.ToCommentDTO(c, users[c.AuthorID()], uc.renderer.ToHTML(c.Body())))
	}
	return detail, nil
}
