package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github-activity/internal/event/repository"
	"github-activity/internal/model"
)

var errClosed = errors.New("memory store closed")

type implRepository struct {
	mu     sync.RWMutex
	rows   []model.Event // insertion order
	closed bool
}

// New creates an in-process Repository. Records live until the process exits.
func New() repository.Repository {
	return &implRepository{}
}

func (r *implRepository) InsertEvent(ctx context.Context, opt repository.InsertEventOptions) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return errors.Join(repository.ErrFailedToInsert, errClosed)
	}
	if !opt.Event.Action.Valid() {
		return errors.Join(repository.ErrFailedToInsert, fmt.Errorf("unknown action %q", opt.Event.Action))
	}
	r.rows = append(r.rows, opt.Event)
	return nil
}

func (r *implRepository) ListRecentEvents(ctx context.Context, opt repository.ListRecentEventsOptions) ([]model.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return nil, errors.Join(repository.ErrFailedToList, errClosed)
	}

	limit := opt.EffectiveLimit()
	out := make([]model.Event, 0, min(limit, len(r.rows)))
	for i := len(r.rows) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.rows[i])
	}
	return out, nil
}

func (r *implRepository) Close(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}
