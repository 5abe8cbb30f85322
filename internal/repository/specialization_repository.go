package repository

import (
	"fitness-club/internal/model"

	"github.com/jackc/pgx/v5"
)

var specializationMapping = Mapping[model.Specialization]{
	Table:    "specializations",
	Columns:  []string{"name"},
	Select:   `SELECT s.id, s.name FROM specializations s`,
	IDColumn: "s.id",
	ID:       func(s *model.Specialization) *int { return &s.ID },
	Values:   func(s *model.Specialization) []any { return []any{s.Name} },
	Scan: func(row pgx.Row) (*model.Specialization, error) {
		var s model.Specialization
		if err := row.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		return &s, nil
	},
}

type SpecializationRepository = CrudRepository[model.Specialization]

func NewSpecializationRepository(db DB) SpecializationRepository {
	return NewCrudRepository(db, specializationMapping)
}
