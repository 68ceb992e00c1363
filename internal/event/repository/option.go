package repository

import "github-activity/internal/model"

// Storage drivers accepted in configuration.
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

// InsertEventOptions holds the record to append.
type InsertEventOptions struct {
	Event model.Event
}

// ListRecentEventsOptions bounds the recent-events query.
// A non-positive Limit means DefaultListLimit.
type ListRecentEventsOptions struct {
	Limit int
}

const DefaultListLimit = 10

// EffectiveLimit returns Limit, or DefaultListLimit when unset.
func (o ListRecentEventsOptions) EffectiveLimit() int {
	if o.Limit <= 0 {
		return DefaultListLimit
	}
	return o.Limit
}
