// Package registry holds the in-memory activity catalog.
package registry

import (
	"context"
	"slices"
	"sync"

	"example.com/signup/internal/domain"
)

// InMemoryCatalog stores the activity catalog in process memory. The set of
// activity names is fixed at construction; only rosters mutate afterwards.
type InMemoryCatalog struct {
	mu         sync.RWMutex
	activities map[string]*domain.Activity
}

// NewInMemoryCatalog constructs a catalog populated with the seed activities.
func NewInMemoryCatalog() *InMemoryCatalog {
	return NewInMemoryCatalogWith(seedActivities())
}

// NewInMemoryCatalogWith constructs a catalog from the given activities.
func NewInMemoryCatalogWith(activities []domain.Activity) *InMemoryCatalog {
	catalog := &InMemoryCatalog{activities: make(map[string]*domain.Activity, len(activities))}
	for _, activity := range activities {
		copied := activity
		copied.Participants = slices.Clone(activity.Participants)
		catalog.activities[activity.Name] = &copied
	}
	return catalog
}

// List returns a deep copy of every activity keyed by name.
func (c *InMemoryCatalog) List(ctx context.Context) (map[string]domain.Activity, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[string]domain.Activity, len(c.activities))
	for name, activity := range c.activities {
		out[name] = snapshot(activity)
	}
	return out, nil
}

// Get returns a deep copy of the named activity.
func (c *InMemoryCatalog) Get(ctx context.Context, name string) (*domain.Activity, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	activity, ok := c.activities[name]
	if !ok {
		return nil, domain.ErrActivityNotFound
	}
	copied := snapshot(activity)
	return &copied, nil
}

// AddParticipant appends the email to the named activity's roster. The roster
// keeps signup order; duplicate emails and full rosters are rejected with the
// catalog unchanged.
func (c *InMemoryCatalog) AddParticipant(ctx context.Context, name, email string) (*domain.Activity, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	activity, ok := c.activities[name]
	if !ok {
		return nil, domain.ErrActivityNotFound
	}
	if slices.Contains(activity.Participants, email) {
		return nil, domain.ErrAlreadySignedUp
	}
	if len(activity.Participants) >= activity.MaxParticipants {
		return nil, domain.ErrActivityFull
	}

	activity.Participants = append(activity.Participants, email)
	copied := snapshot(activity)
	return &copied, nil
}

// RemoveParticipant deletes the email from the named activity's roster.
func (c *InMemoryCatalog) RemoveParticipant(ctx context.Context, name, email string) (*domain.Activity, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	activity, ok := c.activities[name]
	if !ok {
		return nil, domain.ErrActivityNotFound
	}
	idx := slices.Index(activity.Participants, email)
	if idx < 0 {
		return nil, domain.ErrNotRegistered
	}

	activity.Participants = slices.Delete(activity.Participants, idx, idx+1)
	copied := snapshot(activity)
	return &copied, nil
}

func snapshot(activity *domain.Activity) domain.Activity {
	copied := *activity
	copied.Participants = slices.Clone(activity.Participants)
	return copied
}
