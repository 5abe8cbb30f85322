package repository

import (
	"context"
	"errors"
	"fmt"

	"fitness-club/internal/model"
	apperrors "fitness-club/pkg/app_errors"

	"github.com/jackc/pgx/v5"
)

var visitMapping = Mapping[model.Visit]{
	Table:   "visits",
	Columns: []string{"client_id", "coach_id", "visit_date", "attended"},
	Select: `
		SELECT v.id, v.client_id, v.coach_id, v.visit_date, v.attended,
			cl.full_name, co.full_name
		FROM visits v
		JOIN clients cl ON cl.id = v.client_id
		JOIN coaches co ON co.id = v.coach_id`,
	IDColumn: "v.id",
	ID:       func(v *model.Visit) *int { return &v.ID },
	Values: func(v *model.Visit) []any {
		return []any{v.ClientID, v.CoachID, v.VisitDate, v.Attended}
	},
	Scan: func(row pgx.Row) (*model.Visit, error) {
		var (
			visit  model.Visit
			client model.Client
			coach  model.Coach
		)
		err := row.Scan(
			&visit.ID,
			&visit.ClientID,
			&visit.CoachID,
			&visit.VisitDate,
			&visit.Attended,
			&client.FullName,
			&coach.FullName,
		)
		if err != nil {
			return nil, err
		}
		client.ID = visit.ClientID
		coach.ID = visit.CoachID
		visit.Client = &client
		visit.Coach = &coach
		return &visit, nil
	},
}

type VisitRepository interface {
	CrudRepository[model.Visit]
	// SaveChecked looks up the client's purchase, runs check and saves the visit, all in one transaction.
	// The purchase passed to check is nil when the client owns none.
	SaveChecked(ctx context.Context, visit *model.Visit, check model.VisitCheck) (*model.Visit, error)
}

type VisitRepositoryImpl struct {
	*CrudRepositoryImpl[model.Visit]
	db DB
}

func NewVisitRepository(db DB) VisitRepository {
	return &VisitRepositoryImpl{
		CrudRepositoryImpl: NewCrudRepository(db, visitMapping),
		db:                 db,
	}
}

func (r *VisitRepositoryImpl) SaveChecked(ctx context.Context, visit *model.Visit, check model.VisitCheck) (*model.Visit, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// The shared lock keeps the purchase from being deleted before the visit commits.
	purchase, err := firstPurchaseOfClient(ctx, tx, visit.ClientID, true)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	if err := check(visit, purchase); err != nil {
		return nil, err
	}

	saved, err := r.SaveTx(ctx, tx, visit)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit visit: %w", err)
	}
	return saved, nil
}
