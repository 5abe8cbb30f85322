package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"fitness-club/internal/model"
	"fitness-club/internal/queue"
	"fitness-club/internal/repository/mocks"
	"fitness-club/internal/worker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestActivityWorker_RecordsEvents(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	q := queue.NewChangeQueue(10)
	repo := mocks.NewActivityRepositoryMock()
	recorded := make(chan *model.ActivityEntry, 1)
	repo.On("Record", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { recorded <- args.Get(1).(*model.ActivityEntry) }).
		Return(nil).Once()

	w := worker.NewActivityWorker(repo, q)
	require.NoError(t, w.Start(ctx))

	event := model.NewChangeEvent(model.EntityVisit, 8, model.ChangeActionVisitRegistered)
	require.NoError(t, q.Publish(ctx, event))

	select {
	case entry := <-recorded:
		assert.Equal(t, event.EventID, entry.EventID)
		assert.Equal(t, 8, entry.EntityID)
	case <-time.After(time.Second):
		t.Fatal("worker did not record the event in time")
	}

	cancel()
	w.Wait()
	repo.AssertExpectations(t)
}

func TestActivityWorker_RetriesFailedRecord(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	q := queue.NewChangeQueue(10)
	repo := mocks.NewActivityRepositoryMock()
	done := make(chan struct{})
	repo.On("Record", mock.Anything, mock.Anything).Return(errors.New("db down")).Once()
	repo.On("Record", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { close(done) }).
		Return(nil).Once()

	w := worker.NewActivityWorker(repo, q)
	require.NoError(t, w.Start(ctx))
	require.NoError(t, q.Publish(ctx, model.NewChangeEvent(model.EntityClient, 1, model.ChangeActionSaved)))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not retry the event")
	}

	cancel()
	w.Wait()
	repo.AssertNumberOfCalls(t, "Record", 2)
}
