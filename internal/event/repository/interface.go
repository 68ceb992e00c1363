package repository

import (
	"context"

	"github-activity/internal/model"
)

// Repository is the composed interface for the event data store.
type Repository interface {
	EventRepository
	Close(ctx context.Context) error
}

// EventRepository is append-only: records are inserted once and read back
// newest first by a store-assigned insertion sequence.
type EventRepository interface {
	InsertEvent(ctx context.Context, opt InsertEventOptions) error
	ListRecentEvents(ctx context.Context, opt ListRecentEventsOptions) ([]model.Event, error)
}
