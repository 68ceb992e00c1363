package usecase

import (
	"context"
	"fmt"

	"github-activity/internal/event"
	repo "github-activity/internal/event/repository"
	"github-activity/internal/webhook"
)

// Receive normalizes one delivery and stores the record when one is produced.
// Ignored deliveries are not errors.
func (uc *implUseCase) Receive(ctx context.Context, input event.ReceiveInput) (event.ReceiveOutput, error) {
	record, ok := webhook.Normalize(input.EventType, input.Payload, uc.now().UTC())
	if !ok {
		uc.l.Infof(ctx, "uc.Receive: ignoring %q delivery", input.EventType)
		return event.ReceiveOutput{}, nil
	}

	if err := uc.repo.InsertEvent(ctx, repo.InsertEventOptions{Event: record}); err != nil {
		uc.l.Errorf(ctx, "uc.Receive InsertEvent: %v", err)
		return event.ReceiveOutput{}, fmt.Errorf("%w: %w", event.ErrStoreFailed, err)
	}

	uc.l.Infof(ctx, "uc.Receive: stored %s by %q to %q", record.Action, record.AuthorName(), record.ToBranch)
	return event.ReceiveOutput{Stored: true, Event: record}, nil
}
