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

// AssessmentRepo persists assessment results. Assessments are immutable:
// the interface deliberately has no update or delete.
type AssessmentRepo interface {
	Create(ctx context.Context, assessment *model.Assessment) error
	ListByUser(ctx context.Context, userID string, limit int) ([]*model.Assessment, error)
	Latest(ctx context.Context, userID string) (*model.Assessment, error)
	ListSince(ctx context.Context, userID string, since time.Time) ([]*model.Assessment, error)
}

type assessmentRepo struct {
	collection *mongo.Collection
}

func NewAssessmentRepo(db *mongo.Database) AssessmentRepo {
	return &assessmentRepo{collection: db.Collection("assessments")}
}

func (r *assessmentRepo) Create(ctx context.Context, assessment *model.Assessment) error {
	if assessment.CreatedAt.IsZero() {
		assessment.CreatedAt = time.Now().UTC()
	}

	result, err := r.collection.InsertOne(ctx, assessment)
	if err != nil {
		return eris.Wrap(err, "assessments: insert")
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		assessment.ID = oid.Hex()
	}
	return nil
}

// ListByUser returns the user's assessments, newest first.
func (r *assessmentRepo) ListByUser(ctx context.Context, userID string, limit int) ([]*model.Assessment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, eris.Wrap(err, "assessments: find by user")
	}
	defer cursor.Close(ctx)

	var assessments []*model.Assessment
	if err = cursor.All(ctx, &assessments); err != nil {
		return nil, eris.Wrap(err, "assessments: decode")
	}
	return assessments, nil
}

func (r *assessmentRepo) Latest(ctx context.Context, userID string) (*model.Assessment, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	var assessment model.Assessment
	err := r.collection.FindOne(ctx, bson.M{"userId": userID}, opts).Decode(&assessment)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, eris.Wrap(err, "assessments: find latest")
	}
	return &assessment, nil
}

// ListSince returns the user's assessments created at or after the given
// time, chronologically ascending, as the trend analyzer consumes them.
func (r *assessmentRepo) ListSince(ctx context.Context, userID string, since time.Time) ([]*model.Assessment, error) {
	filter := bson.M{
		"userId":    userID,
		"createdAt": bson.M{"$gte": since},
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, eris.Wrap(err, "assessments: find since")
	}
	defer cursor.Close(ctx)

	var assessments []*model.Assessment
	if err = cursor.All(ctx, &assessments); err != nil {
		return nil, eris.Wrap(err, "assessments: decode")
	}
	return assessments, nil
}
