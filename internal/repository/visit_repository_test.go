package repository_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"fitness-club/internal/model"
	"fitness-club/internal/repository"
	apperrors "fitness-club/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisitRepository_SaveChecked(t *testing.T) {
	setupTestWithTruncate(t)
	ctx := context.Background()
	repo := repository.NewVisitRepository(testDB)

	specID := createTestSpecialization(t, "Yoga")
	ticketID := createTestSeasonTicket(t, specID, 8)
	coachID := createTestCoach(t, "Maya Chen", &specID)
	anna := createTestClient(t, "Anna Smith")
	bob := createTestClient(t, "Bob Stone")
	createTestPurchase(t, anna, ticketID, "2024-01-10")

	check := model.RegistrationCheck(func() time.Time { return date("2024-02-01") })

	t.Run("Accepted visit is stored with joins", func(t *testing.T) {
		saved, err := repo.SaveChecked(ctx, &model.Visit{
			ClientID:  anna,
			CoachID:   coachID,
			VisitDate: dateTime("2024-01-15T10:00"),
			Attended:  "attended",
		}, check)
		require.NoError(t, err)

		found, err := repo.FindByID(ctx, saved.ID)
		require.NoError(t, err)
		assert.Equal(t, "Anna Smith", found.Client.FullName)
		assert.Equal(t, "Maya Chen", found.Coach.FullName)
		require.NotNil(t, found.VisitDate)
		assert.True(t, found.VisitDate.Equal(*dateTime("2024-01-15T10:00")))
	})

	t.Run("Visit before purchase is not stored", func(t *testing.T) {
		_, err := repo.SaveChecked(ctx, &model.Visit{ClientID: anna, CoachID: coachID, VisitDate: dateTime("2024-01-05T10:00")}, check)
		assert.ErrorIs(t, err, apperrors.ErrVisitBeforePurchase)
		assertRowCount(t, "visits", 1)
	})

	t.Run("Visit tomorrow is not stored", func(t *testing.T) {
		_, err := repo.SaveChecked(ctx, &model.Visit{ClientID: anna, CoachID: coachID, VisitDate: dateTime("2024-02-02T10:00")}, check)
		assert.ErrorIs(t, err, apperrors.ErrVisitInFuture)
		assertRowCount(t, "visits", 1)
	})

	t.Run("Client without purchase is not stored", func(t *testing.T) {
		_, err := repo.SaveChecked(ctx, &model.Visit{ClientID: bob, CoachID: coachID, VisitDate: dateTime("2024-01-15T10:00")}, check)
		assert.ErrorIs(t, err, apperrors.ErrNoTicketPurchase)
		assertRowCount(t, "visits", 1)
	})

	t.Run("Undated visit is stored", func(t *testing.T) {
		saved, err := repo.SaveChecked(ctx, &model.Visit{ClientID: anna, CoachID: coachID}, check)
		require.NoError(t, err)

		found, err := repo.FindByID(ctx, saved.ID)
		require.NoError(t, err)
		assert.Nil(t, found.VisitDate)
	})

	t.Run("Unknown coach is a reference violation", func(t *testing.T) {
		_, err := repo.SaveChecked(ctx, &model.Visit{ClientID: anna, CoachID: 999}, check)
		assert.ErrorIs(t, err, apperrors.ErrReferenceViolation)
	})
}

func TestVisitRepository_ConcurrentRegistrations(t *testing.T) {
	setupTestWithTruncate(t)
	ctx := context.Background()
	repo := repository.NewVisitRepository(testDB)

	specID := createTestSpecialization(t, "Yoga")
	ticketID := createTestSeasonTicket(t, specID, 8)
	coachID := createTestCoach(t, "Maya Chen", &specID)
	anna := createTestClient(t, "Anna Smith")
	createTestPurchase(t, anna, ticketID, "2024-01-10")

	check := model.RegistrationCheck(func() time.Time { return date("2024-02-01") })

	const n = 10
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.SaveChecked(ctx, &model.Visit{ClientID: anna, CoachID: coachID, VisitDate: dateTime("2024-01-20T18:00")}, check)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
	assertRowCount(t, "visits", n)
}

func TestVisitRepository_RegistrationRacingPurchaseDeletion(t *testing.T) {
	setupTestWithTruncate(t)
	ctx := context.Background()
	repo := repository.NewVisitRepository(testDB)

	specID := createTestSpecialization(t, "Yoga")
	ticketID := createTestSeasonTicket(t, specID, 8)
	coachID := createTestCoach(t, "Maya Chen", &specID)
	anna := createTestClient(t, "Anna Smith")
	purchaseID := createTestPurchase(t, anna, ticketID, "2024-01-10")

	check := model.RegistrationCheck(func() time.Time { return date("2024-02-01") })

	var wg sync.WaitGroup
	var saveErr, deleteErr error
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, saveErr = repo.SaveChecked(ctx, &model.Visit{ClientID: anna, CoachID: coachID}, check)
	}()
	go func() {
		defer wg.Done()
		deleteErr = repository.NewTicketPurchaseRepository(testDB).DeleteByID(ctx, purchaseID)
	}()
	wg.Wait()

	require.NoError(t, deleteErr)
	if saveErr != nil {
		// the deletion won: nothing was written
		assert.ErrorIs(t, saveErr, apperrors.ErrNoTicketPurchase)
		assertRowCount(t, "visits", 0)
		return
	}
	// the registration won: its visit exists and the purchase is gone afterwards
	assertRowCount(t, "visits", 1)
	assertRowCount(t, "ticket_purchases", 0)
}
