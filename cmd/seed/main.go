package main

import (
	"context"
	"flag"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"mindtrack/internal/config"
	"mindtrack/internal/model"
	"mindtrack/internal/repository"
)

var (
	yearGroups  = []string{"Year 7", "Year 8", "Year 9", "Year 10", "Year 11"}
	genders     = []string{"Male", "Female", "Other", "Prefer not to say"}
	ethnicities = []string{"White", "Asian", "Black", "Mixed", "Other"}
)

func main() {
	count := flag.Int("count", 2000, "number of survey records to insert")
	seed := flag.Int64("seed", 42, "random seed for reproducible datasets")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatal("failed to connect to mongodb", zap.Error(err))
	}
	defer client.Disconnect(ctx)
	db := client.Database(cfg.MongoDatabase)

	if err := seedDemoUser(ctx, db); err != nil {
		logger.Fatal("failed to seed demo user", zap.Error(err))
	}
	logger.Info("demo user ready", zap.String("username", "demo"))

	surveyRepo := repository.NewSurveyRepo(db)
	existing, err := surveyRepo.TotalCount(ctx)
	if err != nil {
		logger.Fatal("failed to check survey collection", zap.Error(err))
	}
	if existing > 0 {
		logger.Info("survey collection already populated", zap.Int64("records", existing))
		return
	}

	records := generateSurveyRecords(*count, *seed)
	if err := surveyRepo.InsertMany(ctx, records); err != nil {
		logger.Fatal("failed to insert survey records", zap.Error(err))
	}
	logger.Info("survey data seeded", zap.Int("records", len(records)))
}

func seedDemoUser(ctx context.Context, db *mongo.Database) error {
	users := repository.NewUserRepo(db)

	existing, err := users.GetByUsername(ctx, "demo")
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return users.Create(ctx, &model.User{
		Username:       "demo",
		Email:          "demo@example.com",
		HashedPassword: string(hashed),
		FullName:       "Demo User",
	})
}

// generateSurveyRecords builds a synthetic but plausible dataset with the
// same shape as the imported school survey.
func generateSurveyRecords(count int, seed int64) []model.SurveyRecord {
	rng := rand.New(rand.NewSource(seed))

	records := make([]model.SurveyRecord, count)
	for i := range records {
		records[i] = model.SurveyRecord{
			ID:        uuid.NewString(),
			YearGroup: yearGroups[rng.Intn(len(yearGroups))],
			Gender:    genders[rng.Intn(len(genders))],
			Ethnicity: ethnicities[rng.Intn(len(ethnicities))],

			FeelSad:      1 + rng.Intn(5),
			FeelLonely:   1 + rng.Intn(5),
			FeelStressed: 1 + rng.Intn(5),
			FeelHappy:    1 + rng.Intn(5),

			HoursSleep:              4 + rng.Float64()*7,
			MinutesPhysicalActivity: rng.Intn(180),

			SelfHarmEver:    rng.Float64() < 0.08,
			BulliedRecently: rng.Float64() < 0.15,
		}
	}
	return records
}
