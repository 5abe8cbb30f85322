package service

import (
	"context"
	"fmt"

	"fitness-club/internal/model"
	"fitness-club/internal/repository"
	apperrors "fitness-club/pkg/app_errors"
)

type (
	SpecializationService = CrudService[model.Specialization]
	CoachService          = CrudService[model.Coach]
	ClientService         = CrudService[model.Client]
	SeasonTicketService   = CrudService[model.SeasonTicket]
	TicketPurchaseService = CrudService[model.TicketPurchase]
	VisitService          = CrudService[model.Visit]
)

func NewSpecializationService(repo repository.SpecializationRepository, publisher *ChangePublisher) SpecializationService {
	return NewCrudService(repo, publisher, model.EntitySpecialization, func(s *model.Specialization) int { return s.ID })
}

func NewCoachService(repo repository.CoachRepository, publisher *ChangePublisher) CoachService {
	return NewCrudService(repo, publisher, model.EntityCoach, func(c *model.Coach) int { return c.ID })
}

func NewClientService(repo repository.ClientRepository, publisher *ChangePublisher) ClientService {
	return NewCrudService(repo, publisher, model.EntityClient, func(c *model.Client) int { return c.ID })
}

type SeasonTicketServiceImpl struct {
	*CrudServiceImpl[model.SeasonTicket]
}

func NewSeasonTicketService(repo repository.SeasonTicketRepository, publisher *ChangePublisher) SeasonTicketService {
	return &SeasonTicketServiceImpl{
		CrudServiceImpl: NewCrudService(repo, publisher, model.EntitySeasonTicket, func(t *model.SeasonTicket) int { return t.ID }),
	}
}

func (s *SeasonTicketServiceImpl) Save(ctx context.Context, ticket *model.SeasonTicket) (*model.SeasonTicket, error) {
	if ticket.SessionsCount < 1 {
		return nil, fmt.Errorf("%w: sessions count must be at least 1", apperrors.ErrInvalidInput)
	}
	if ticket.SpecializationID == 0 {
		return nil, fmt.Errorf("%w: specialization is required", apperrors.ErrInvalidInput)
	}
	return s.CrudServiceImpl.Save(ctx, ticket)
}

type TicketPurchaseServiceImpl struct {
	*CrudServiceImpl[model.TicketPurchase]
	now Clock
}

func NewTicketPurchaseService(repo repository.TicketPurchaseRepository, publisher *ChangePublisher, now Clock) TicketPurchaseService {
	return &TicketPurchaseServiceImpl{
		CrudServiceImpl: NewCrudService[model.TicketPurchase](repo, publisher, model.EntityTicketPurchase, func(p *model.TicketPurchase) int { return p.ID }),
		now:             now,
	}
}

// Save stamps today's date on a purchase submitted without one.
func (s *TicketPurchaseServiceImpl) Save(ctx context.Context, purchase *model.TicketPurchase) (*model.TicketPurchase, error) {
	if purchase.PurchaseDate.IsZero() {
		purchase.PurchaseDate = model.CalendarDay(s.now())
	}
	return s.CrudServiceImpl.Save(ctx, purchase)
}
