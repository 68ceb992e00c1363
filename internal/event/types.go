package event

import (
	"github-activity/internal/event/repository"
	"github-activity/internal/model"
	"github-activity/internal/webhook"
)

const (
	DefaultRecentLimit = repository.DefaultListLimit
	MaxRecentLimit     = 100
)

// --- UseCase Inputs ---

type ReceiveInput struct {
	EventType  string // X-GitHub-Event
	DeliveryID string // X-GitHub-Delivery, for logging only
	Payload    webhook.Payload
}

type ListRecentInput struct {
	Limit int
}

// --- UseCase Outputs ---

type ReceiveOutput struct {
	Stored bool // false when the delivery was ignored
	Event  model.Event
}

type ListRecentOutput struct {
	Events []model.Event
}
