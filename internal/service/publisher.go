package service

import (
	"context"
	"time"

	"fitness-club/internal/model"
	"fitness-club/internal/monitoring"
	"fitness-club/internal/queue"
	"fitness-club/pkg/logger"

	"go.uber.org/zap"
)

const publishTimeout = 2 * time.Second

// ChangePublisher hands committed changes to the change queue. Publishing is best effort:
// the write already happened, so a failure is logged and counted but never returned.
// A nil publisher or queue publishes nothing.
type ChangePublisher struct {
	queue queue.ChangeQueue
}

func NewChangePublisher(q queue.ChangeQueue) *ChangePublisher {
	return &ChangePublisher{queue: q}
}

func (p *ChangePublisher) Publish(ctx context.Context, entity string, entityID int, action model.ChangeAction) {
	if p == nil || p.queue == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	event := model.NewChangeEvent(entity, entityID, action)
	if err := p.queue.Publish(ctx, event); err != nil {
		monitoring.ChangeEventsPublished.WithLabelValues(entity, "error").Inc()
		logger.WithComponent("service").Warn("publish change event failed",
			zap.String("entity", entity),
			zap.Int("entity_id", entityID),
			zap.String("action", string(action)),
			zap.Error(err),
		)
		return
	}
	monitoring.ChangeEventsPublished.WithLabelValues(entity, "ok").Inc()
}
