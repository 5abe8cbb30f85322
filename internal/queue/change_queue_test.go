package queue_test

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"fitness-club/internal/model"
	"fitness-club/internal/queue"
	"fitness-club/internal/testutil"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testRdb is nil when the test Redis is not reachable; Redis tests skip then.
var testRdb *redis.Client

func TestMain(m *testing.M) {
	rdb, cleanup, err := testutil.SetupRedisOnly()
	if err != nil {
		log.Printf("redis tests disabled: %v", err)
	} else {
		testRdb = rdb
	}
	code := m.Run()
	if cleanup != nil {
		cleanup()
	}
	os.Exit(code)
}

func receive(t *testing.T, msgs <-chan queue.Delivery, timeout time.Duration) queue.Delivery {
	t.Helper()
	select {
	case d, ok := <-msgs:
		require.True(t, ok, "delivery channel closed")
		return d
	case <-time.After(timeout):
		t.Fatal("timed out waiting for a delivery")
	}
	return queue.Delivery{}
}

func TestChangeQueue_DeliversInOrder(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	q := queue.NewChangeQueue(10)
	first := model.NewChangeEvent(model.EntityClient, 1, model.ChangeActionSaved)
	second := model.NewChangeEvent(model.EntityClient, 1, model.ChangeActionDeleted)
	require.NoError(t, q.Publish(ctx, first))
	require.NoError(t, q.Publish(ctx, second))

	msgs, err := q.Subscribe(ctx)
	require.NoError(t, err)

	assert.Equal(t, first.EventID, receive(t, msgs, time.Second).Data.EventID)
	assert.Equal(t, second.EventID, receive(t, msgs, time.Second).Data.EventID)
}

func TestChangeQueue_NackRequeues(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	q := queue.NewChangeQueue(10)
	event := model.NewChangeEvent(model.EntityVisit, 3, model.ChangeActionVisitRegistered)
	require.NoError(t, q.Publish(ctx, event))

	msgs, err := q.Subscribe(ctx)
	require.NoError(t, err)

	d := receive(t, msgs, time.Second)
	d.Nack(true)

	again := receive(t, msgs, time.Second)
	assert.Equal(t, event.EventID, again.Data.EventID)
}

func TestChangeQueue_PublishHonoursContext(t *testing.T) {
	q := queue.NewChangeQueue(0)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := q.Publish(ctx, model.NewChangeEvent(model.EntityCoach, 1, model.ChangeActionSaved))

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestChangeQueue_SubscribeClosesOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	q := queue.NewChangeQueue(1)
	msgs, err := q.Subscribe(ctx)
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-msgs:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("delivery channel not closed after cancel")
	}
}
