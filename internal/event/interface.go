package event

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Receive normalizes one webhook delivery and stores the resulting record, if any.
	Receive(ctx context.Context, input ReceiveInput) (ReceiveOutput, error)
	// ListRecent returns the most recently stored records, newest first.
	ListRecent(ctx context.Context, input ListRecentInput) (ListRecentOutput, error)
}
