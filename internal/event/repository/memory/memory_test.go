package memory_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github-activity/internal/event/repository"
	"github-activity/internal/event/repository/memory"
	"github-activity/internal/model"
)

func TestListRecentEvents_Empty(t *testing.T) {
	r := memory.New()

	events, err := r.ListRecentEvents(context.Background(), repository.ListRecentEventsOptions{})
	require.NoError(t, err)
	assert.NotNil(t, events)
	assert.Empty(t, events)
}

func TestListRecentEvents_NewestFirst(t *testing.T) {
	ctx := context.Background()
	r := memory.New()

	for i := 0; i < 15; i++ {
		require.NoError(t, r.InsertEvent(ctx, repository.InsertEventOptions{Event: model.Event{
			RequestID: fmt.Sprintf("commit-%02d", i),
			Action:    model.ActionPush,
		}}))
	}

	events, err := r.ListRecentEvents(ctx, repository.ListRecentEventsOptions{Limit: 10})
	require.NoError(t, err)
	require.Len(t, events, 10)
	for i, e := range events {
		assert.Equal(t, fmt.Sprintf("commit-%02d", 14-i), e.RequestID)
	}
}

func TestInsertEvent_Concurrent(t *testing.T) {
	ctx := context.Background()
	r := memory.New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, r.InsertEvent(ctx, repository.InsertEventOptions{Event: model.Event{Action: model.ActionPush}}))
		}()
	}
	wg.Wait()

	events, err := r.ListRecentEvents(ctx, repository.ListRecentEventsOptions{Limit: 100})
	require.NoError(t, err)
	assert.Len(t, events, 50)
}

func TestClosed(t *testing.T) {
	ctx := context.Background()
	r := memory.New()
	require.NoError(t, r.Close(ctx))

	err := r.InsertEvent(ctx, repository.InsertEventOptions{})
	assert.ErrorIs(t, err, repository.ErrFailedToInsert)

	_, err = r.ListRecentEvents(ctx, repository.ListRecentEventsOptions{})
	assert.ErrorIs(t, err, repository.ErrFailedToList)
}

func TestInsertEvent_UnknownAction(t *testing.T) {
	r := memory.New()

	err := r.InsertEvent(context.Background(), repository.InsertEventOptions{Event: model.Event{Action: "DELETE"}})
	assert.ErrorIs(t, err, repository.ErrFailedToInsert)
}
