package queue_test

import (
	"context"
	"testing"
	"time"

	"fitness-club/internal/model"
	"fitness-club/internal/queue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireRedis(t *testing.T) {
	t.Helper()
	if testRdb == nil {
		t.Skip("test redis not reachable")
	}
}

func cleanupStream(ctx context.Context, t *testing.T) {
	t.Helper()
	_ = testRdb.Del(ctx, queue.StreamKey).Err()
}

func TestNewRedisStreamChangeQueue(t *testing.T) {
	requireRedis(t)
	ctx := context.Background()
	cleanupStream(ctx, t)

	t.Run("success", func(t *testing.T) {
		q, err := queue.NewRedisStreamChangeQueue(testRdb, "test-consumer", nil)
		require.NoError(t, err)
		require.NotNil(t, q)
	})

	t.Run("empty_consumer_id_generates_uuid", func(t *testing.T) {
		cleanupStream(ctx, t)
		q, err := queue.NewRedisStreamChangeQueue(testRdb, "", nil)
		require.NoError(t, err)
		require.NotNil(t, q)
	})
}

func TestRedisStreamChangeQueue_Subscribe_deliversPublishedEvent(t *testing.T) {
	requireRedis(t)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	cleanupStream(ctx, t)

	q, err := queue.NewRedisStreamChangeQueue(testRdb, "deliver-test", &queue.RedisStreamChangeQueueConfig{
		ReadGroupBlockTime: 200 * time.Millisecond,
	})
	require.NoError(t, err)

	msgs, err := q.Subscribe(ctx)
	require.NoError(t, err)

	event := model.NewChangeEvent(model.EntityTicketPurchase, 12, model.ChangeActionSaved)
	require.NoError(t, q.Publish(ctx, event))

	d := receive(t, msgs, 5*time.Second)
	assert.Equal(t, event.EventID, d.Data.EventID)
	assert.Equal(t, model.EntityTicketPurchase, d.Data.Entity)
	assert.Equal(t, 12, d.Data.EntityID)
	assert.Equal(t, model.ChangeActionSaved, d.Data.Action)
	d.Ack()

	pending, err := testRdb.XPending(ctx, queue.StreamKey, queue.ConsumerGroupName).Result()
	require.NoError(t, err)
	assert.Zero(t, pending.Count)
}

func TestRedisStreamChangeQueue_NackRequeueIsReclaimed(t *testing.T) {
	requireRedis(t)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	cleanupStream(ctx, t)

	q, err := queue.NewRedisStreamChangeQueue(testRdb, "reclaim-test", &queue.RedisStreamChangeQueueConfig{
		ClaimMinIdleTime:   200 * time.Millisecond,
		ReadGroupBlockTime: 100 * time.Millisecond,
	})
	require.NoError(t, err)

	msgs, err := q.Subscribe(ctx)
	require.NoError(t, err)

	event := model.NewChangeEvent(model.EntityCoach, 4, model.ChangeActionDeleted)
	require.NoError(t, q.Publish(ctx, event))

	first := receive(t, msgs, 5*time.Second)
	first.Nack(true)

	again := receive(t, msgs, 5*time.Second)
	assert.Equal(t, event.EventID, again.Data.EventID)
	again.Ack()
}
