package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github-activity/internal/event"
	"github-activity/internal/event/repository"
	"github-activity/internal/event/repository/memory"
	"github-activity/internal/event/usecase"
	"github-activity/internal/model"
	"github-activity/internal/webhook"
	"github-activity/pkg/log"
)

var fixedNow = time.Date(2021, time.April, 1, 21, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// failingRepo fails every call.
type failingRepo struct{}

var errDown = errors.New("store down")

func (failingRepo) InsertEvent(context.Context, repository.InsertEventOptions) error {
	return errors.Join(repository.ErrFailedToInsert, errDown)
}

func (failingRepo) ListRecentEvents(context.Context, repository.ListRecentEventsOptions) ([]model.Event, error) {
	return nil, errors.Join(repository.ErrFailedToList, errDown)
}

func (failingRepo) Close(context.Context) error { return nil }

func mustPayload(t *testing.T, body string) webhook.Payload {
	t.Helper()
	p, err := webhook.ParsePayload([]byte(body))
	require.NoError(t, err)
	return p
}

func TestReceive_Push(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	uc := usecase.New(repo, log.NewNop(), usecase.WithClock(fixedClock))

	out, err := uc.Receive(ctx, event.ReceiveInput{
		EventType: webhook.EventPush,
		Payload:   mustPayload(t, `{"ref":"refs/heads/main","after":"abc123","pusher":{"name":"alice"}}`),
	})
	require.NoError(t, err)
	require.True(t, out.Stored)

	alice := "alice"
	want := model.Event{
		RequestID:  "abc123",
		Author:     &alice,
		Action:     model.ActionPush,
		FromBranch: "",
		ToBranch:   "main",
		Timestamp:  "1st April 2021 - 09:30 PM UTC",
	}
	assert.Equal(t, want, out.Event)

	list, err := uc.ListRecent(ctx, event.ListRecentInput{})
	require.NoError(t, err)
	assert.Equal(t, []model.Event{want}, list.Events)
}

func TestReceive_ClosedNotMergedIsIgnored(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	uc := usecase.New(repo, log.NewNop(), usecase.WithClock(fixedClock))

	out, err := uc.Receive(ctx, event.ReceiveInput{
		EventType: webhook.EventPullRequest,
		Payload:   mustPayload(t, `{"action":"closed","pull_request":{"id":7,"merged":false}}`),
	})
	require.NoError(t, err)
	assert.False(t, out.Stored)

	list, err := uc.ListRecent(ctx, event.ListRecentInput{})
	require.NoError(t, err)
	assert.Empty(t, list.Events)
}

func TestReceive_UnknownEventIsIgnored(t *testing.T) {
	uc := usecase.New(memory.New(), log.NewNop())

	for _, eventType := range []string{"", "issues", "ping"} {
		out, err := uc.Receive(context.Background(), event.ReceiveInput{
			EventType: eventType,
			Payload:   mustPayload(t, `{"zen":"Keep it logically awesome."}`),
		})
		require.NoError(t, err, eventType)
		assert.False(t, out.Stored, eventType)
	}
}

func TestReceive_SamePayloadTwiceStoresTwice(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	uc := usecase.New(repo, log.NewNop(), usecase.WithClock(fixedClock))

	in := event.ReceiveInput{
		EventType: webhook.EventPush,
		Payload:   mustPayload(t, `{"ref":"refs/heads/dev","after":"dup"}`),
	}
	for i := 0; i < 2; i++ {
		_, err := uc.Receive(ctx, in)
		require.NoError(t, err)
	}

	list, err := uc.ListRecent(ctx, event.ListRecentInput{})
	require.NoError(t, err)
	require.Len(t, list.Events, 2)
	assert.Equal(t, list.Events[0], list.Events[1])
}

func TestReceive_StoreFailure(t *testing.T) {
	uc := usecase.New(failingRepo{}, log.NewNop())

	_, err := uc.Receive(context.Background(), event.ReceiveInput{
		EventType: webhook.EventPush,
		Payload:   mustPayload(t, `{"ref":"refs/heads/main"}`),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, event.ErrStoreFailed)
	assert.ErrorIs(t, err, repository.ErrFailedToInsert)
	assert.ErrorIs(t, err, errDown)
}

func TestListRecent_EmptyStore(t *testing.T) {
	uc := usecase.New(memory.New(), log.NewNop())

	out, err := uc.ListRecent(context.Background(), event.ListRecentInput{})
	require.NoError(t, err)
	assert.NotNil(t, out.Events)
	assert.Empty(t, out.Events)
}

func TestListRecent_Limits(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	for i := 0; i < 120; i++ {
		require.NoError(t, repo.InsertEvent(ctx, repository.InsertEventOptions{
			Event: model.Event{Action: model.ActionPush},
		}))
	}
	uc := usecase.New(repo, log.NewNop())

	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"default", 0, event.DefaultRecentLimit},
		{"negative", -5, event.DefaultRecentLimit},
		{"explicit", 3, 3},
		{"clamped", 500, event.MaxRecentLimit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := uc.ListRecent(ctx, event.ListRecentInput{Limit: tt.limit})
			require.NoError(t, err)
			assert.Len(t, out.Events, tt.want)
		})
	}
}

func TestListRecent_NewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	uc := usecase.New(repo, log.NewNop(), usecase.WithClock(fixedClock))

	for _, sha := range []string{"a", "b", "c"} {
		_, err := uc.Receive(ctx, event.ReceiveInput{
			EventType: webhook.EventPush,
			Payload:   mustPayload(t, `{"after":"`+sha+`"}`),
		})
		require.NoError(t, err)
	}

	out, err := uc.ListRecent(ctx, event.ListRecentInput{})
	require.NoError(t, err)
	require.Len(t, out.Events, 3)
	assert.Equal(t, "c", out.Events[0].RequestID)
	assert.Equal(t, "a", out.Events[2].RequestID)
}

func TestListRecent_StoreFailure(t *testing.T) {
	uc := usecase.New(failingRepo{}, log.NewNop())

	_, err := uc.ListRecent(context.Background(), event.ListRecentInput{})
	assert.ErrorIs(t, err, event.ErrStoreFailed)
}
