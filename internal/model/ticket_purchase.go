package model

import "time"

// TicketPurchase records that a client bought a season ticket on a date.
type TicketPurchase struct {
	ID             int       `json:"id" db:"id"`
	ClientID       int       `json:"client_id" db:"client_id"`
	SeasonTicketID int       `json:"season_ticket_id" db:"season_ticket_id"`
	PurchaseDate   time.Time `json:"purchase_date" db:"purchase_date"`

	Client       *Client       `json:"client,omitempty" db:"-"`
	SeasonTicket *SeasonTicket `json:"season_ticket,omitempty" db:"-"`
}
