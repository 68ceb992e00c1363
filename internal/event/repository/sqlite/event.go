package sqlite

import (
	"context"
	"database/sql"
	"errors"

	repo "github-activity/internal/event/repository"
	"github-activity/internal/model"
)

// InsertEvent appends one row; the AUTOINCREMENT id fixes its read order.
func (r *implRepository) InsertEvent(ctx context.Context, opt repo.InsertEventOptions) error {
	const query = `
		INSERT INTO webhook_events (request_id, author, action, from_branch, to_branch, timestamp)
		VALUES (?, ?, ?, ?, ?, ?)`

	e := opt.Event
	_, err := r.db.ExecContext(ctx, query,
		e.RequestID, nullString(e.Author), string(e.Action), e.FromBranch, e.ToBranch, e.Timestamp,
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
		LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, opt.EffectiveLimit())
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListRecentEvents"), err)
		return nil, errors.Join(repo.ErrFailedToList, err)
	}
	defer rows.Close()

	events := []model.Event{}
	for rows.Next() {
		var (
			e      model.Event
			author sql.NullString
			action string
		)
		if err := rows.Scan(&e.RequestID, &author, &action, &e.FromBranch, &e.ToBranch, &e.Timestamp); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListRecentEvents"), err)
			return nil, errors.Join(repo.ErrFailedToList, err)
		}
		e.Action = model.Action(action)
		if author.Valid {
			e.Author = &author.String
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListRecentEvents"), err)
		return nil, errors.Join(repo.ErrFailedToList, err)
	}
	return events, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
