package queue

import (
	"context"
	"fitness-club/internal/model"
)

type Delivery struct {
	Data *model.ChangeEvent
	Ack  func()
	Nack func(requeue bool)
}

type ChangeQueue interface {
	// 發送變更事件
	Publish(ctx context.Context, event *model.ChangeEvent) error
	// 訂閱變更事件
	Subscribe(ctx context.Context) (<-chan Delivery, error)
	Close() error
}

type ChangeQueueImpl struct {
	// Go channel standing in for a broker
	ch chan *model.ChangeEvent
}

func NewChangeQueue(bufferSize int) ChangeQueue {
	return &ChangeQueueImpl{
		ch: make(chan *model.ChangeEvent, bufferSize),
	}
}

func (q *ChangeQueueImpl) Publish(ctx context.Context, event *model.ChangeEvent) error {
	select {
	case q.ch <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *ChangeQueueImpl) Subscribe(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case event := <-q.ch:
				d := Delivery{
					Data: event,
					Ack:  func() {},
					Nack: func(requeue bool) {
						if requeue {
							// non-blocking: a full buffer drops the retry
							select {
							case q.ch <- event:
							default:
							}
						}
					},
				}
				select {
				case out <- d:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}

func (q *ChangeQueueImpl) Close() error {
	return nil
}
