package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"fitness-club/internal/model"
	"fitness-club/pkg/logger"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type KafkaChangeQueueConfig struct {
	Brokers []string
	Topic   string
	GroupID string
}

// KafkaChangeQueueImpl publishes change events keyed by entity so events of one record stay ordered.
type KafkaChangeQueueImpl struct {
	writer *kafka.Writer
	cfg    KafkaChangeQueueConfig
	reader *kafka.Reader
}

func NewKafkaChangeQueue(cfg KafkaChangeQueueConfig) (ChangeQueue, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errors.New("kafka: no brokers configured")
	}

	conn, err := kafka.Dial("tcp", cfg.Brokers[0])
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Kafka: %w", err)
	}
	conn.Close()

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           50 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}

	return &KafkaChangeQueueImpl{writer: writer, cfg: cfg}, nil
}

func (q *KafkaChangeQueueImpl) Publish(ctx context.Context, event *model.ChangeEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal change event: %w", err)
	}
	return q.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.Entity + ":" + strconv.Itoa(event.EntityID)),
		Value: payload,
	})
}

func (q *KafkaChangeQueueImpl) Subscribe(ctx context.Context) (<-chan Delivery, error) {
	if q.reader != nil {
		return nil, errors.New("kafka: already subscribed")
	}
	q.reader = kafka.NewReader(kafka.ReaderConfig{
		Brokers:  q.cfg.Brokers,
		GroupID:  q.cfg.GroupID,
		Topic:    q.cfg.Topic,
		MinBytes: 1,
		MaxBytes: 10e6,
	})

	out := make(chan Delivery)
	go func() {
		defer close(out)
		log := logger.WithComponent("mq")
		for {
			msg, err := q.reader.FetchMessage(ctx)
			if err != nil {
				if ctx.Err() != nil || errors.Is(err, io.EOF) {
					return
				}
				log.Error("kafka fetch failed", zap.Error(err))
				time.Sleep(time.Second)
				continue
			}

			var event model.ChangeEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				log.Warn("unmarshal change event failed", zap.Int64("offset", msg.Offset), zap.Error(err))
				q.commit(ctx, msg)
				continue
			}

			d := Delivery{
				Data: &event,
				Ack:  func() { q.commit(ctx, msg) },
				Nack: func(requeue bool) {
					if requeue {
						// Kafka has no per-message nack: re-append and move the offset on.
						if err := q.writer.WriteMessages(ctx, kafka.Message{Key: msg.Key, Value: msg.Value}); err != nil {
							log.Error("kafka requeue failed", zap.Int64("offset", msg.Offset), zap.Error(err))
							return
						}
					}
					q.commit(ctx, msg)
				},
			}
			select {
			case out <- d:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

func (q *KafkaChangeQueueImpl) commit(ctx context.Context, msg kafka.Message) {
	if err := q.reader.CommitMessages(ctx, msg); err != nil {
		logger.WithComponent("mq").Error("kafka commit failed", zap.Int64("offset", msg.Offset), zap.Error(err))
	}
}

func (q *KafkaChangeQueueImpl) Close() error {
	var errs []error
	if q.reader != nil {
		errs = append(errs, q.reader.Close())
	}
	errs = append(errs, q.writer.Close())
	return errors.Join(errs...)
}
