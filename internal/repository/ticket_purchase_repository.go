package repository

import (
	"context"
	"errors"
	"fmt"

	"fitness-club/internal/model"
	apperrors "fitness-club/pkg/app_errors"

	"github.com/jackc/pgx/v5"
)

var ticketPurchaseMapping = Mapping[model.TicketPurchase]{
	Table:   "ticket_purchases",
	Columns: []string{"client_id", "season_ticket_id", "purchase_date"},
	Select: `
		SELECT p.id, p.client_id, p.season_ticket_id, p.purchase_date,
			cl.full_name, t.sessions_count, t.price::float8, t.specialization_id, s.name
		FROM ticket_purchases p
		JOIN clients cl ON cl.id = p.client_id
		JOIN season_tickets t ON t.id = p.season_ticket_id
		JOIN specializations s ON s.id = t.specialization_id`,
	IDColumn: "p.id",
	ID:       func(p *model.TicketPurchase) *int { return &p.ID },
	Values: func(p *model.TicketPurchase) []any {
		return []any{p.ClientID, p.SeasonTicketID, p.PurchaseDate}
	},
	Scan: func(row pgx.Row) (*model.TicketPurchase, error) {
		var (
			purchase model.TicketPurchase
			client   model.Client
			ticket   model.SeasonTicket
			spec     model.Specialization
		)
		err := row.Scan(
			&purchase.ID,
			&purchase.ClientID,
			&purchase.SeasonTicketID,
			&purchase.PurchaseDate,
			&client.FullName,
			&ticket.SessionsCount,
			&ticket.Price,
			&spec.ID,
			&spec.Name,
		)
		if err != nil {
			return nil, err
		}
		client.ID = purchase.ClientID
		ticket.ID = purchase.SeasonTicketID
		ticket.SpecializationID = spec.ID
		ticket.Specialization = &spec
		purchase.Client = &client
		purchase.SeasonTicket = &ticket
		return &purchase, nil
	},
}

type TicketPurchaseRepository interface {
	CrudRepository[model.TicketPurchase]
	// FirstPurchaseOfClient returns the client's earliest recorded purchase or apperrors.ErrNotFound.
	FirstPurchaseOfClient(ctx context.Context, clientID int) (*model.TicketPurchase, error)
}

type TicketPurchaseRepositoryImpl struct {
	*CrudRepositoryImpl[model.TicketPurchase]
	db DB
}

func NewTicketPurchaseRepository(db DB) TicketPurchaseRepository {
	return &TicketPurchaseRepositoryImpl{
		CrudRepositoryImpl: NewCrudRepository(db, ticketPurchaseMapping),
		db:                 db,
	}
}

func (r *TicketPurchaseRepositoryImpl) FirstPurchaseOfClient(ctx context.Context, clientID int) (*model.TicketPurchase, error) {
	return firstPurchaseOfClient(ctx, r.db, clientID, false)
}

// firstPurchaseOfClient implements the purchase match policy used by visit registration:
// the client's first purchase by insertion order, whatever ticket or specialization it is for.
// With lock set the purchase row is held FOR SHARE until the surrounding transaction ends.
func firstPurchaseOfClient(ctx context.Context, q Querier, clientID int, lock bool) (*model.TicketPurchase, error) {
	query := `
		SELECT id, client_id, season_ticket_id, purchase_date
		FROM ticket_purchases
		WHERE client_id = $1
		ORDER BY id
		LIMIT 1
	`
	if lock {
		query += " FOR SHARE"
	}

	var purchase model.TicketPurchase
	err := q.QueryRow(ctx, query, clientID).Scan(
		&purchase.ID,
		&purchase.ClientID,
		&purchase.SeasonTicketID,
		&purchase.PurchaseDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find purchase of client %d: %w", clientID, err)
	}
	return &purchase, nil
}
