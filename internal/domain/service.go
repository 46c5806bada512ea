// Package domain defines the business logic for the activity signup directory.
package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"example.com/signup/internal/events"
	"example.com/signup/internal/observability"
)

// Catalog captures the operations the directory needs from its backing store.
type Catalog interface {
	List(ctx context.Context) (map[string]Activity, error)
	Get(ctx context.Context, name string) (*Activity, error)
	AddParticipant(ctx context.Context, name, email string) (*Activity, error)
	RemoveParticipant(ctx context.Context, name, email string) (*Activity, error)
}

// Service exposes the three directory operations over a Catalog.
type Service struct {
	catalog   Catalog
	publisher events.Publisher
}

// NewService constructs a Service.
func NewService(catalog Catalog, publisher events.Publisher) *Service {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &Service{catalog: catalog, publisher: publisher}
}

// ListActivities returns the full catalog keyed by activity name.
func (s *Service) ListActivities(ctx context.Context) (map[string]Activity, error) {
	return s.catalog.List(ctx)
}

// Signup enrolls the email on the named activity's roster. The roster keeps
// signup order; duplicates and over-capacity signups are rejected with the
// catalog unchanged.
func (s *Service) Signup(ctx context.Context, activityName, email string) (string, error) {
	if strings.TrimSpace(email) == "" {
		return "", errors.New("email is required")
	}

	activity, err := s.catalog.AddParticipant(ctx, activityName, email)
	if err != nil {
		observability.RecordSignup(outcomeLabel(err))
		return "", err
	}

	observability.RecordSignup(observability.OutcomeOK)
	observability.RecordRosterSize(activity.Name, len(activity.Participants))
	s.publisher.Publish(ctx, events.NewSignedUp(activity.Name, email, len(activity.Participants)))

	return fmt.Sprintf("Signed up %s for %s", email, activity.Name), nil
}

// Unregister removes the email from the named activity's roster.
func (s *Service) Unregister(ctx context.Context, activityName, email string) (string, error) {
	if strings.TrimSpace(email) == "" {
		return "", errors.New("email is required")
	}

	activity, err := s.catalog.RemoveParticipant(ctx, activityName, email)
	if err != nil {
		observability.RecordUnregister(outcomeLabel(err))
		return "", err
	}

	observability.RecordUnregister(observability.OutcomeOK)
	observability.RecordRosterSize(activity.Name, len(activity.Participants))
	s.publisher.Publish(ctx, events.NewUnregistered(activity.Name, email, len(activity.Participants)))

	return fmt.Sprintf("Unregistered %s from %s", email, activity.Name), nil
}

func outcomeLabel(err error) string {
	switch {
	case errors.Is(err, ErrActivityNotFound):
		return observability.OutcomeNotFound
	case errors.Is(err, ErrAlreadySignedUp):
		return observability.OutcomeDuplicate
	case errors.Is(err, ErrNotRegistered):
		return observability.OutcomeNotRegistered
	case errors.Is(err, ErrActivityFull):
		return observability.OutcomeFull
	default:
		return observability.OutcomeError
	}
}
