package repository

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mindtrack/internal/model"
)

type ProgressRepo interface {
	Create(ctx context.Context, entry *model.ProgressEntry) error
	ListByUser(ctx context.Context, userID string, limit int) ([]*model.ProgressEntry, error)
}

type progressRepo struct {
	collection *mongo.Collection
}

func NewProgressRepo(db *mongo.Database) ProgressRepo {
	return &progressRepo{collection: db.Collection("progress")}
}

func (r *progressRepo) Create(ctx context.Context, entry *model.ProgressEntry) error {
	if entry.Date.IsZero() {
		entry.Date = time.Now().UTC()
	}

	result, err := r.collection.InsertOne(ctx, entry)
	if err != nil {
		return eris.Wrap(err, "progress: insert")
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		entry.ID = oid.Hex()
	}
	return nil
}

// ListByUser returns the user's progress entries, newest first.
func (r *progressRepo) ListByUser(ctx context.Context, userID string, limit int) ([]*model.ProgressEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, eris.Wrap(err, "progress: find by user")
	}
	defer cursor.Close(ctx)

	var entries []*model.ProgressEntry
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, eris.Wrap(err, "progress: decode")
	}
	return entries, nil
}
