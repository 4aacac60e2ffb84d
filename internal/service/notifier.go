package service

import "mindtrack/internal/model"

// Notifier pushes assessment events to connected clients. The websocket
// hub implements it; tests and the seeder use the no-op.
type Notifier interface {
	AssessmentCompleted(userID string, assessment *model.Assessment)
}

type noopNotifier struct{}

// NoopNotifier returns a Notifier that drops every event.
func NoopNotifier() Notifier {
	return noopNotifier{}
}

func (noopNotifier) AssessmentCompleted(string, *model.Assessment) {}
