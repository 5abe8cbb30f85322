package worker

import (
	"context"
	"fitness-club/internal/queue"
	"fitness-club/internal/repository"
	"fitness-club/pkg/logger"
	"sync"
	"time"

	"go.uber.org/zap"
)

type ActivityWorker interface {
	// Start subscribes to the change queue and records deliveries until ctx is cancelled.
	Start(ctx context.Context) error
	// Wait blocks until the consuming goroutine has exited.
	Wait()
}

// RetryDelay is the pause before an event that failed to record is handed back to the queue.
const RetryDelay = 500 * time.Millisecond

type ActivityWorkerImpl struct {
	repo       repository.ActivityRepository
	queue      queue.ChangeQueue
	retryDelay time.Duration
	wg         sync.WaitGroup
}

func NewActivityWorker(repo repository.ActivityRepository, queue queue.ChangeQueue) ActivityWorker {
	return &ActivityWorkerImpl{
		repo:       repo,
		queue:      queue,
		retryDelay: RetryDelay,
	}
}

func (w *ActivityWorkerImpl) Start(ctx context.Context) error {
	msgs, err := w.queue.Subscribe(ctx)
	if err != nil {
		return err
	}

	log := logger.WithComponent("worker")
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		for msg := range msgs {
			event := msg.Data
			err := w.repo.Record(ctx, event.ToActivityEntry())
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				// storage hiccup: hand the event back for another attempt
				log.Warn("record activity failed",
					zap.String("event_id", event.EventID.String()),
					zap.String("entity", event.Entity),
					zap.Error(err),
				)
				select {
				case <-time.After(w.retryDelay):
				case <-ctx.Done():
					return
				}
				msg.Nack(true)
				continue
			}
			msg.Ack()
		}
	}()
	return nil
}

func (w *ActivityWorkerImpl) Wait() {
	w.wg.Wait()
}
