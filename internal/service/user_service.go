package service

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"mindtrack/internal/model"
	"mindtrack/internal/repository"
)

// UserService manages profiles and self-logged progress entries.
type UserService struct {
	users       repository.UserRepo
	progress    repository.ProgressRepo
	assessments repository.AssessmentRepo
	logger      *zap.Logger
}

func NewUserService(
	users repository.UserRepo,
	progress repository.ProgressRepo,
	assessments repository.AssessmentRepo,
	logger *zap.Logger,
) *UserService {
	return &UserService{
		users:       users,
		progress:    progress,
		assessments: assessments,
		logger:      logger,
	}
}

// Profile returns the user's account details.
func (s *UserService) Profile(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, eris.Wrap(err, "users: load profile")
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateFullName changes the display name and returns the fresh profile.
func (s *UserService) UpdateFullName(ctx context.Context, userID, fullName string) (*model.User, error) {
	if err := s.users.UpdateFullName(ctx, userID, fullName); err != nil {
		return nil, eris.Wrap(err, "users: update profile")
	}
	return s.Profile(ctx, userID)
}

// Progress returns the user's check-ins, newest first.
func (s *UserService) Progress(ctx context.Context, userID string, limit int) ([]*model.ProgressEntry, error) {
	entries, err := s.progress.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, eris.Wrap(err, "users: list progress")
	}
	if entries == nil {
		entries = []*model.ProgressEntry{}
	}
	return entries, nil
}

// LogProgress records a mood check-in, snapshotting the user's latest
// risk score when one exists.
func (s *UserService) LogProgress(ctx context.Context, userID string, moodRating int, notes string) (*model.ProgressEntry, error) {
	entry := &model.ProgressEntry{
		UserID:     userID,
		Date:       time.Now().UTC(),
		MoodRating: moodRating,
		Notes:      notes,
	}

	latest, err := s.assessments.Latest(ctx, userID)
	if err != nil {
		s.logger.Warn("failed to snapshot latest risk score", zap.Error(err))
	}
	if latest != nil {
		score := latest.RiskScore
		entry.RiskScore = &score
	}

	if err := s.progress.Create(ctx, entry); err != nil {
		return nil, eris.Wrap(err, "users: log progress")
	}
	return entry, nil
}
