package domain

import "errors"

var (
	// ErrActivityNotFound is returned when the named activity is not in the catalog.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadySignedUp indicates the student is already on the activity's roster.
	ErrAlreadySignedUp = errors.New("student already signed up")
	// ErrNotRegistered indicates the student is not on the activity's roster.
	ErrNotRegistered = errors.New("student not registered")
	// ErrActivityFull indicates the roster has reached max participants.
	ErrActivityFull = errors.New("activity full")
)

// Activity is a single extracurricular offering in the catalog.
// Participants are student emails in signup order; no email appears twice.
type Activity struct {
	Name            string   `json:"-"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// SpotsLeft reports remaining roster capacity.
func (a Activity) SpotsLeft() int {
	return a.MaxParticipants - len(a.Participants)
}
