package queue_test

import (
	"testing"

	"fitness-club/internal/queue"

	"github.com/stretchr/testify/assert"
)

func TestNewKafkaChangeQueue_Errors(t *testing.T) {
	t.Run("no brokers", func(t *testing.T) {
		_, err := queue.NewKafkaChangeQueue(queue.KafkaChangeQueueConfig{Topic: "changes"})
		assert.Error(t, err)
	})

	t.Run("unreachable broker", func(t *testing.T) {
		_, err := queue.NewKafkaChangeQueue(queue.KafkaChangeQueueConfig{
			Brokers: []string{"127.0.0.1:1"},
			Topic:   "changes",
		})
		assert.Error(t, err)
	})
}
