package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"example.com/signup/internal/domain"
)

func TestSeedCatalog(t *testing.T) {
	catalog := NewInMemoryCatalog()

	activities, err := catalog.List(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, activities)

	chess, ok := activities["Chess Club"]
	require.True(t, ok)
	require.Contains(t, chess.Participants, "michael@mergington.edu")

	for name, activity := range activities {
		require.Positive(t, activity.MaxParticipants, "activity %s", name)
		require.LessOrEqual(t, len(activity.Participants), activity.MaxParticipants, "activity %s", name)
	}
}

func TestAddParticipantKeepsSignupOrder(t *testing.T) {
	catalog := NewInMemoryCatalogWith([]domain.Activity{{
		Name:            "Chess Club",
		MaxParticipants: 5,
		Participants:    []string{"first@mergington.edu"},
	}})

	_, err := catalog.AddParticipant(context.Background(), "Chess Club", "second@mergington.edu")
	require.NoError(t, err)
	activity, err := catalog.AddParticipant(context.Background(), "Chess Club", "third@mergington.edu")
	require.NoError(t, err)

	require.Equal(t, []string{"first@mergington.edu", "second@mergington.edu", "third@mergington.edu"}, activity.Participants)
}

func TestAddParticipantRejectsDuplicate(t *testing.T) {
	catalog := NewInMemoryCatalog()

	_, err := catalog.AddParticipant(context.Background(), "Chess Club", "michael@mergington.edu")
	require.ErrorIs(t, err, domain.ErrAlreadySignedUp)

	after, err := catalog.Get(context.Background(), "Chess Club")
	require.NoError(t, err)
	require.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu"}, after.Participants)
}

func TestAddParticipantRejectsFullRoster(t *testing.T) {
	catalog := NewInMemoryCatalogWith([]domain.Activity{{
		Name:            "Chess Club",
		MaxParticipants: 2,
		Participants:    []string{"a@mergington.edu", "b@mergington.edu"},
	}})

	_, err := catalog.AddParticipant(context.Background(), "Chess Club", "c@mergington.edu")
	require.ErrorIs(t, err, domain.ErrActivityFull)

	after, err := catalog.Get(context.Background(), "Chess Club")
	require.NoError(t, err)
	require.Len(t, after.Participants, 2)
}

func TestAddParticipantUnknownActivity(t *testing.T) {
	catalog := NewInMemoryCatalog()

	_, err := catalog.AddParticipant(context.Background(), "Nonexistent Activity", "test@mergington.edu")
	require.ErrorIs(t, err, domain.ErrActivityNotFound)
}

func TestRemoveParticipant(t *testing.T) {
	catalog := NewInMemoryCatalog()

	_, err := catalog.AddParticipant(context.Background(), "Drama Club", "test@mergington.edu")
	require.NoError(t, err)

	activity, err := catalog.RemoveParticipant(context.Background(), "Drama Club", "test@mergington.edu")
	require.NoError(t, err)
	require.NotContains(t, activity.Participants, "test@mergington.edu")
}

func TestRemoveParticipantNotRegistered(t *testing.T) {
	catalog := NewInMemoryCatalog()

	_, err := catalog.RemoveParticipant(context.Background(), "Drama Club", "notregistered@mergington.edu")
	require.ErrorIs(t, err, domain.ErrNotRegistered)

	_, err = catalog.RemoveParticipant(context.Background(), "Nonexistent Activity", "test@mergington.edu")
	require.ErrorIs(t, err, domain.ErrActivityNotFound)
}

func TestSignupRoundTripRestoresRoster(t *testing.T) {
	catalog := NewInMemoryCatalog()

	before, err := catalog.Get(context.Background(), "Tennis Club")
	require.NoError(t, err)

	_, err = catalog.AddParticipant(context.Background(), "Tennis Club", "roundtrip@mergington.edu")
	require.NoError(t, err)
	_, err = catalog.RemoveParticipant(context.Background(), "Tennis Club", "roundtrip@mergington.edu")
	require.NoError(t, err)

	after, err := catalog.Get(context.Background(), "Tennis Club")
	require.NoError(t, err)
	require.Equal(t, before.Participants, after.Participants)
}

func TestSignupLeavesOtherActivitiesUntouched(t *testing.T) {
	catalog := NewInMemoryCatalog()

	before, err := catalog.List(context.Background())
	require.NoError(t, err)

	_, err = catalog.AddParticipant(context.Background(), "Chess Club", "independent@mergington.edu")
	require.NoError(t, err)

	after, err := catalog.List(context.Background())
	require.NoError(t, err)
	for name, activity := range after {
		if name == "Chess Club" {
			continue
		}
		require.Equal(t, before[name].Participants, activity.Participants, "activity %s", name)
	}
}

func TestListReturnsCopies(t *testing.T) {
	catalog := NewInMemoryCatalog()

	activities, err := catalog.List(context.Background())
	require.NoError(t, err)

	chess := activities["Chess Club"]
	chess.Participants[0] = "mutated@mergington.edu"

	fresh, err := catalog.Get(context.Background(), "Chess Club")
	require.NoError(t, err)
	require.Equal(t, "michael@mergington.edu", fresh.Participants[0])
}
