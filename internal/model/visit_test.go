package model

import (
	"errors"
	"testing"
	"time"

	apperrors "fitness-club/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func at(s string) *time.Time {
	t, err := time.Parse(DateTimeLayout, s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestCheckAgainstPurchase(t *testing.T) {
	purchase := &TicketPurchase{ID: 1, ClientID: 1, PurchaseDate: day("2024-01-10")}
	now := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Accepted - date between purchase and today", func(t *testing.T) {
		visit := &Visit{ClientID: 1, CoachID: 1, VisitDate: at("2024-01-15T10:00")}
		assert.NoError(t, visit.CheckAgainstPurchase(purchase, now))
	})

	t.Run("Accepted - on the purchase day", func(t *testing.T) {
		visit := &Visit{ClientID: 1, CoachID: 1, VisitDate: at("2024-01-10T07:30")}
		assert.NoError(t, visit.CheckAgainstPurchase(purchase, now))
	})

	t.Run("Accepted - later today", func(t *testing.T) {
		visit := &Visit{ClientID: 1, CoachID: 1, VisitDate: at("2024-02-01T23:00")}
		assert.NoError(t, visit.CheckAgainstPurchase(purchase, now))
	})

	t.Run("Accepted - no visit date", func(t *testing.T) {
		visit := &Visit{ClientID: 1, CoachID: 1}
		assert.NoError(t, visit.CheckAgainstPurchase(purchase, now))
	})

	t.Run("Rejected - before purchase", func(t *testing.T) {
		visit := &Visit{ClientID: 1, CoachID: 1, VisitDate: at("2024-01-05T10:00")}
		err := visit.CheckAgainstPurchase(purchase, now)

		assert.ErrorIs(t, err, apperrors.ErrVisitBeforePurchase)
		var before *VisitBeforePurchaseError
		require.True(t, errors.As(err, &before))
		assert.Equal(t, day("2024-01-10"), before.PurchaseDate)
		assert.Contains(t, err.Error(), "2024-01-10")
	})

	t.Run("Rejected - tomorrow", func(t *testing.T) {
		visit := &Visit{ClientID: 1, CoachID: 1, VisitDate: at("2024-02-02T08:00")}
		assert.ErrorIs(t, visit.CheckAgainstPurchase(purchase, now), apperrors.ErrVisitInFuture)
	})

	t.Run("Rejected - no purchase", func(t *testing.T) {
		visit := &Visit{ClientID: 2, CoachID: 1, VisitDate: at("2024-01-15T10:00")}
		assert.ErrorIs(t, visit.CheckAgainstPurchase(nil, now), apperrors.ErrNoTicketPurchase)
	})

	t.Run("Rejected - no purchase even without a date", func(t *testing.T) {
		visit := &Visit{ClientID: 2, CoachID: 1}
		assert.ErrorIs(t, visit.CheckAgainstPurchase(nil, now), apperrors.ErrNoTicketPurchase)
	})
}

func TestRegistrationCheck(t *testing.T) {
	purchase := &TicketPurchase{PurchaseDate: day("2024-01-10")}
	visit := &Visit{VisitDate: at("2024-03-01T09:00")}

	early := RegistrationCheck(func() time.Time { return day("2024-02-01") })
	late := RegistrationCheck(func() time.Time { return day("2024-03-01") })

	assert.ErrorIs(t, early(visit, purchase), apperrors.ErrVisitInFuture)
	assert.NoError(t, late(visit, purchase))
	assert.True(t, apperrors.IsVisitRuleViolation(early(visit, purchase)))
}

func TestCalendarDay(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	// 23:30 local on the 5th is still the 5th even though it is the 5th 14:30 UTC
	local := time.Date(2024, 3, 5, 23, 30, 0, 0, loc)

	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), CalendarDay(local))
}

func TestSeasonTicketLabel(t *testing.T) {
	ticket := &SeasonTicket{SessionsCount: 8, Price: 120, Specialization: &Specialization{Name: "Yoga"}}
	assert.Equal(t, "Yoga, 8 sessions, 120.00", ticket.Label())

	ticket.Specialization = nil
	assert.Equal(t, "?, 8 sessions, 120.00", ticket.Label())
}

func TestChangeEventToActivityEntry(t *testing.T) {
	event := NewChangeEvent(EntityVisit, 7, ChangeActionVisitRegistered)
	entry := event.ToActivityEntry()

	assert.Equal(t, event.EventID, entry.EventID)
	assert.Equal(t, EntityVisit, entry.Entity)
	assert.Equal(t, 7, entry.EntityID)
	assert.Equal(t, ChangeActionVisitRegistered, entry.Action)
	assert.Equal(t, event.OccurredAt, entry.OccurredAt)
}
