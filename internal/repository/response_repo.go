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

type ResponseRepo interface {
	Create(ctx context.Context, response *model.QuestionnaireResponse) error
	ListByUser(ctx context.Context, userID string, limit int) ([]*model.QuestionnaireResponse, error)
}

type responseRepo struct {
	collection *mongo.Collection
}

func NewResponseRepo(db *mongo.Database) ResponseRepo {
	return &responseRepo{collection: db.Collection("responses")}
}

func (r *responseRepo) Create(ctx context.Context, response *model.QuestionnaireResponse) error {
	if response.CreatedAt.IsZero() {
		response.CreatedAt = time.Now().UTC()
	}

	result, err := r.collection.InsertOne(ctx, response)
	if err != nil {
		return eris.Wrap(err, "responses: insert")
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		response.ID = oid.Hex()
	}
	return nil
}

// ListByUser returns the user's responses, newest first.
func (r *responseRepo) ListByUser(ctx context.Context, userID string, limit int) ([]*model.QuestionnaireResponse, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, eris.Wrap(err, "responses: find by user")
	}
	defer cursor.Close(ctx)

	var responses []*model.QuestionnaireResponse
	if err = cursor.All(ctx, &responses); err != nil {
		return nil, eris.Wrap(err, "responses: decode")
	}
	return responses, nil
}
