package repository

import (
	"fitness-club/internal/model"

	"github.com/jackc/pgx/v5"
)

var clientMapping = Mapping[model.Client]{
	Table:    "clients",
	Columns:  []string{"full_name", "birth_date", "phone", "email"},
	Select:   `SELECT cl.id, cl.full_name, cl.birth_date, cl.phone, cl.email FROM clients cl`,
	IDColumn: "cl.id",
	ID:       func(c *model.Client) *int { return &c.ID },
	Values: func(c *model.Client) []any {
		return []any{c.FullName, c.BirthDate, c.Phone, c.Email}
	},
	Scan: func(row pgx.Row) (*model.Client, error) {
		var c model.Client
		err := row.Scan(
			&c.ID,
			&c.FullName,
			&c.BirthDate,
			&c.Phone,
			&c.Email,
		)
		if err != nil {
			return nil, err
		}
		return &c, nil
	},
}

type ClientRepository = CrudRepository[model.Client]

func NewClientRepository(db DB) ClientRepository {
	return NewCrudRepository(db, clientMapping)
}
