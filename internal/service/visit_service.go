package service

import (
	"context"
	"errors"

	"fitness-club/internal/model"
	"fitness-club/internal/monitoring"
	"fitness-club/internal/repository"
	apperrors "fitness-club/pkg/app_errors"
	"fitness-club/pkg/logger"

	"go.uber.org/zap"
)

type VisitServiceImpl struct {
	*CrudServiceImpl[model.Visit]
	repo repository.VisitRepository
	now  Clock
}

func NewVisitService(repo repository.VisitRepository, publisher *ChangePublisher, now Clock) VisitService {
	return &VisitServiceImpl{
		CrudServiceImpl: NewCrudService[model.Visit](repo, publisher, model.EntityVisit, func(v *model.Visit) int { return v.ID }),
		repo:            repo,
		now:             now,
	}
}

// Save registers the visit only if the client's purchase allows it; see model.Visit.CheckAgainstPurchase.
// The lookup, the check and the write share one transaction.
func (s *VisitServiceImpl) Save(ctx context.Context, visit *model.Visit) (*model.Visit, error) {
	isNew := visit.ID == 0

	saved, err := s.repo.SaveChecked(ctx, visit, model.RegistrationCheck(s.now))
	if err != nil {
		monitoring.VisitRegistrations.WithLabelValues(rejectionReason(err)).Inc()
		if apperrors.IsVisitRuleViolation(err) {
			logger.WithComponent("service").Info("visit rejected",
				zap.Int("client_id", visit.ClientID),
				zap.Int("coach_id", visit.CoachID),
				zap.Error(err),
			)
		}
		return nil, err
	}

	monitoring.VisitRegistrations.WithLabelValues("registered").Inc()
	action := model.ChangeActionSaved
	if isNew {
		action = model.ChangeActionVisitRegistered
	}
	s.publisher.Publish(ctx, model.EntityVisit, saved.ID, action)
	return saved, nil
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrNoTicketPurchase):
		return "no_purchase"
	case errors.Is(err, apperrors.ErrVisitBeforePurchase):
		return "before_purchase"
	case errors.Is(err, apperrors.ErrVisitInFuture):
		return "future_date"
	default:
		return "error"
	}
}
