package repository

import (
	"context"
	"fmt"

	"github.com/rotisserie/eris"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"mindtrack/internal/model"
)

// SurveyRepo reads aggregate statistics from the anonymized school survey
// dataset backing the public statistics endpoints.
type SurveyRepo interface {
	TotalCount(ctx context.Context) (int64, error)
	ValueCounts(ctx context.Context, field string) ([]model.DistributionEntry, error)
	RangeCounts(ctx context.Context, field string, boundaries []float64, labels []string) ([]model.DistributionEntry, error)
	BoolCount(ctx context.Context, field string) (int64, error)
	InsertMany(ctx context.Context, records []model.SurveyRecord) error
}

type surveyRepo struct {
	collection *mongo.Collection
}

func NewSurveyRepo(db *mongo.Database) SurveyRepo {
	return &surveyRepo{collection: db.Collection("survey_data")}
}

func (r *surveyRepo) TotalCount(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, eris.Wrap(err, "survey: count documents")
	}
	return count, nil
}

// ValueCounts groups the collection by a field and returns the count per
// distinct value, largest first.
func (r *surveyRepo) ValueCounts(ctx context.Context, field string) ([]model.DistributionEntry, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$sortByCount", Value: "$" + field}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, eris.Wrap(err, "survey: aggregate value counts")
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ID    any   `bson:"_id"`
		Count int64 `bson:"count"`
	}
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, eris.Wrap(err, "survey: decode value counts")
	}

	entries := make([]model.DistributionEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, model.DistributionEntry{
			Label: fmt.Sprintf("%v", row.ID),
			Value: float64(row.Count),
		})
	}
	return entries, nil
}

// RangeCounts buckets a numeric field by the given boundaries. Labels must
// have one entry per bucket, i.e. len(boundaries)-1.
func (r *surveyRepo) RangeCounts(ctx context.Context, field string, boundaries []float64, labels []string) ([]model.DistributionEntry, error) {
	if len(labels) != len(boundaries)-1 {
		return nil, eris.New("survey: label count must match bucket count")
	}

	bounds := make(bson.A, len(boundaries))
	for i, b := range boundaries {
		bounds[i] = b
	}
	pipeline := mongo.Pipeline{
		{{Key: "$bucket", Value: bson.M{
			"groupBy":    "$" + field,
			"boundaries": bounds,
			"default":    "other",
			"output":     bson.M{"count": bson.M{"$sum": 1}},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, eris.Wrap(err, "survey: aggregate range counts")
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ID    any   `bson:"_id"`
		Count int64 `bson:"count"`
	}
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, eris.Wrap(err, "survey: decode range counts")
	}

	counts := make(map[float64]int64, len(rows))
	for _, row := range rows {
		if lower, ok := toFloat(row.ID); ok {
			counts[lower] = row.Count
		}
	}

	entries := make([]model.DistributionEntry, 0, len(labels))
	for i, label := range labels {
		entries = append(entries, model.DistributionEntry{
			Label: label,
			Value: float64(counts[boundaries[i]]),
		})
	}
	return entries, nil
}

func (r *surveyRepo) BoolCount(ctx context.Context, field string) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{field: true})
	if err != nil {
		return 0, eris.Wrap(err, "survey: count flagged")
	}
	return count, nil
}

func (r *surveyRepo) InsertMany(ctx context.Context, records []model.SurveyRecord) error {
	docs := make([]any, len(records))
	for i := range records {
		docs[i] = records[i]
	}
	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		return eris.Wrap(err, "survey: insert many")
	}
	return nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
