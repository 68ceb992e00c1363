package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	repo "github-activity/internal/event/repository"
	"github-activity/internal/model"
)

// eventDocument is the stored shape: the six event fields plus a sequence
// number that is never returned to clients.
type eventDocument struct {
	Seq         int64 `bson:"seq"`
	model.Event `bson:",inline"`
}

type counterDocument struct {
	Seq int64 `bson:"seq"`
}

// InsertEvent allocates the next sequence number and inserts one document.
// A failed insert leaves a gap in the sequence, never a reordering.
func (r *implRepository) InsertEvent(ctx context.Context, opt repo.InsertEventOptions) error {
	seq, err := r.nextSeq(ctx)
	if err != nil {
		r.l.Errorf(ctx, "%s nextSeq: %v", r.dsn("InsertEvent"), err)
		return errors.Join(repo.ErrFailedToInsert, err)
	}

	if _, err := r.events.InsertOne(ctx, eventDocument{Seq: seq, Event: opt.Event}); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("InsertEvent"), err)
		return errors.Join(repo.ErrFailedToInsert, err)
	}
	return nil
}

// ListRecentEvents returns the newest documents first, without _id or seq.
func (r *implRepository) ListRecentEvents(ctx context.Context, opt repo.ListRecentEventsOptions) ([]model.Event, error) {
	findOpts := options.Find().
		SetSort(bson.D{{Key: "seq", Value: -1}}).
		SetLimit(int64(opt.EffectiveLimit())).
		SetProjection(bson.D{{Key: "_id", Value: 0}, {Key: "seq", Value: 0}})

	cursor, err := r.events.Find(ctx, bson.D{}, findOpts)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListRecentEvents"), err)
		return nil, errors.Join(repo.ErrFailedToList, err)
	}

	events := []model.Event{}
	if err := cursor.All(ctx, &events); err != nil {
		r.l.Errorf(ctx, "%s decode: %v", r.dsn("ListRecentEvents"), err)
		return nil, errors.Join(repo.ErrFailedToList, err)
	}
	return events, nil
}

// nextSeq atomically increments the counter for the events collection.
func (r *implRepository) nextSeq(ctx context.Context) (int64, error) {
	var counter counterDocument
	err := r.counters.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: r.events.Name()}},
		bson.D{{Key: "$inc", Value: bson.D{{Key: "seq", Value: int64(1)}}}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	return counter.Seq, err
}
