// Package events defines roster-change event payloads and their publisher.
package events

import (
	"time"

	"github.com/google/uuid"
)

// Event types carried in the roster topic.
const (
	TypeSignedUp     = "roster.signed_up"
	TypeUnregistered = "roster.unregistered"
)

// RosterChange is the message emitted when a participant joins or leaves an activity.
type RosterChange struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	Activity   string    `json:"activity"`
	Email      string    `json:"email"`
	RosterSize int       `json:"roster_size"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewSignedUp builds a signed-up event.
func NewSignedUp(activity, email string, rosterSize int) RosterChange {
	return newChange(TypeSignedUp, activity, email, rosterSize)
}

// NewUnregistered builds an unregistered event.
func NewUnregistered(activity, email string, rosterSize int) RosterChange {
	return newChange(TypeUnregistered, activity, email, rosterSize)
}

func newChange(eventType, activity, email string, rosterSize int) RosterChange {
	return RosterChange{
		EventID:    uuid.NewString(),
		EventType:  eventType,
		Activity:   activity,
		Email:      email,
		RosterSize: rosterSize,
		OccurredAt: time.Now().UTC(),
	}
}
