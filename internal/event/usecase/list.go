package usecase

import (
	"context"
	"fmt"

	"github-activity/internal/event"
	repo "github-activity/internal/event/repository"
	"github-activity/internal/model"
)

// ListRecent returns up to input.Limit records, newest first.
func (uc *implUseCase) ListRecent(ctx context.Context, input event.ListRecentInput) (event.ListRecentOutput, error) {
	events, err := uc.repo.ListRecentEvents(ctx, repo.ListRecentEventsOptions{
		Limit: uc.clampLimit(input.Limit),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListRecent ListRecentEvents: %v", err)
		return event.ListRecentOutput{}, fmt.Errorf("%w: %w", event.ErrStoreFailed, err)
	}

	if events == nil {
		events = []model.Event{}
	}
	return event.ListRecentOutput{Events: events}, nil
}
