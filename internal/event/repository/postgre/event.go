package postgre

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	repo "github-activity/internal/event/repository"
	"github-activity/internal/model"
)

// InsertEvent appends one row; the BIGSERIAL id fixes its read order.
func (r *implRepository) InsertEvent(ctx context.Context, opt repo.InsertEventOptions) error {
	const query = `
		INSERT INTO webhook_events (request_id, author, action, from_branch, to_branch, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6)`

	e := opt.Event
	_, err := r.pool.Exec(ctx, query,
		e.RequestID, e.Author, string(e.Action), e.FromBranch, e.ToBranch, e.Timestamp,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("InsertEvent"), err)
		return errors.Join(repo.ErrFailedToInsert, err)
	}
	return nil
}

// ListRecentEvents returns the newest rows first. The id column is never selected.
func (r *implRepository) ListRecentEvents(ctx context.Context, opt repo.ListRecentEventsOptions) ([]model.Event, error) {
	const query = `
		SELECT request_id, author, action, from_branch, to_branch, timestamp
		FROM webhook_events
		ORDER BY id DESC
		LIMIT $1`

	rows, err := r.pool.Query(ctx, query, opt.EffectiveLimit())
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListRecentEvents"), err)
		return nil, errors.Join(repo.ErrFailedToList, err)
	}

	events, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Event, error) {
		var (
			e      model.Event
			action string
		)
		err := row.Scan(&e.RequestID, &e.Author, &action, &e.FromBranch, &e.ToBranch, &e.Timestamp)
		e.Action = model.Action(action)
		return e, err
	})
	if err != nil {
		r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListRecentEvents"), err)
		return nil, errors.Join(repo.ErrFailedToList, err)
	}
	if events == nil {
		events = []model.Event{}
	}
	return events, nil
}
