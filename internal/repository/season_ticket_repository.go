package repository

import (
	"fitness-club/internal/model"

	"github.com/jackc/pgx/v5"
)

var seasonTicketMapping = Mapping[model.SeasonTicket]{
	Table:   "season_tickets",
	Columns: []string{"specialization_id", "sessions_count", "price"},
	Select: `
		SELECT t.id, t.specialization_id, t.sessions_count, t.price::float8, s.name
		FROM season_tickets t
		JOIN specializations s ON s.id = t.specialization_id`,
	IDColumn: "t.id",
	ID:       func(t *model.SeasonTicket) *int { return &t.ID },
	Values: func(t *model.SeasonTicket) []any {
		return []any{t.SpecializationID, t.SessionsCount, t.Price}
	},
	Scan: func(row pgx.Row) (*model.SeasonTicket, error) {
		var (
			ticket   model.SeasonTicket
			specName string
		)
		err := row.Scan(
			&ticket.ID,
			&ticket.SpecializationID,
			&ticket.SessionsCount,
			&ticket.Price,
			&specName,
		)
		if err != nil {
			return nil, err
		}
		ticket.Specialization = &model.Specialization{ID: ticket.SpecializationID, Name: specName}
		return &ticket, nil
	},
}

type SeasonTicketRepository = CrudRepository[model.SeasonTicket]

func NewSeasonTicketRepository(db DB) SeasonTicketRepository {
	return NewCrudRepository(db, seasonTicketMapping)
}
