package repository_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"fitness-club/internal/model"
	"fitness-club/internal/repository"
	"fitness-club/internal/testutil"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// testDB is nil when the test database is not reachable; every test skips then.
var testDB *pgxpool.Pool

func TestMain(m *testing.M) {
	db, cleanup, err := testutil.SetupDatabase()
	if err != nil {
		log.Printf("repository tests disabled: %v", err)
	} else {
		testDB = db
		log.Println("Running repository tests...")
	}

	code := m.Run()
	if cleanup != nil {
		cleanup()
	}
	os.Exit(code)
}

func setupTestWithTruncate(t *testing.T) {
	t.Helper()
	if testDB == nil {
		t.Skip("test database not reachable")
	}
	testutil.Truncate(t, testDB)
}

func date(s string) time.Time {
	d, err := time.Parse(model.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}

func dateTime(s string) *time.Time {
	d, err := time.Parse(model.DateTimeLayout, s)
	if err != nil {
		panic(err)
	}
	return &d
}

func createTestSpecialization(t *testing.T, name string) int {
	t.Helper()
	s, err := repository.NewSpecializationRepository(testDB).Save(context.Background(), &model.Specialization{Name: name})
	require.NoError(t, err)
	return s.ID
}

func createTestCoach(t *testing.T, name string, specializationID *int) int {
	t.Helper()
	c, err := repository.NewCoachRepository(testDB).Save(context.Background(), &model.Coach{
		FullName:         name,
		SpecializationID: specializationID,
	})
	require.NoError(t, err)
	return c.ID
}

func createTestClient(t *testing.T, name string) int {
	t.Helper()
	c, err := repository.NewClientRepository(testDB).Save(context.Background(), &model.Client{FullName: name})
	require.NoError(t, err)
	return c.ID
}

func createTestSeasonTicket(t *testing.T, specializationID, sessions int) int {
	t.Helper()
	ticket, err := repository.NewSeasonTicketRepository(testDB).Save(context.Background(), &model.SeasonTicket{
		SpecializationID: specializationID,
		SessionsCount:    sessions,
		Price:            100,
	})
	require.NoError(t, err)
	return ticket.ID
}

func createTestPurchase(t *testing.T, clientID, ticketID int, purchased string) int {
	t.Helper()
	p, err := repository.NewTicketPurchaseRepository(testDB).Save(context.Background(), &model.TicketPurchase{
		ClientID:       clientID,
		SeasonTicketID: ticketID,
		PurchaseDate:   date(purchased),
	})
	require.NoError(t, err)
	return p.ID
}

func assertRowCount(t *testing.T, table string, expected int) {
	t.Helper()
	var count int
	err := testDB.QueryRow(context.Background(), fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&count)
	require.NoError(t, err)
	require.Equal(t, expected, count, "rows in %s", table)
}
