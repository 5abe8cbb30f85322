package repository

import (
	"fitness-club/internal/model"

	"github.com/jackc/pgx/v5"
)

var coachMapping = Mapping[model.Coach]{
	Table:   "coaches",
	Columns: []string{"full_name", "specialization_id", "phone", "email"},
	Select: `
		SELECT c.id, c.full_name, c.specialization_id, c.phone, c.email, s.name
		FROM coaches c
		LEFT JOIN specializations s ON s.id = c.specialization_id`,
	IDColumn: "c.id",
	ID:       func(c *model.Coach) *int { return &c.ID },
	Values: func(c *model.Coach) []any {
		return []any{c.FullName, c.SpecializationID, c.Phone, c.Email}
	},
	Scan: scanCoach,
}

func scanCoach(row pgx.Row) (*model.Coach, error) {
	var (
		coach    model.Coach
		specName *string
	)
	err := row.Scan(
		&coach.ID,
		&coach.FullName,
		&coach.SpecializationID,
		&coach.Phone,
		&coach.Email,
		&specName,
	)
	if err != nil {
		return nil, err
	}
	if coach.SpecializationID != nil && specName != nil {
		coach.Specialization = &model.Specialization{ID: *coach.SpecializationID, Name: *specName}
	}
	return &coach, nil
}

type CoachRepository = CrudRepository[model.Coach]

func NewCoachRepository(db DB) CoachRepository {
	return NewCrudRepository(db, coachMapping)
}
