package model

import "fmt"

// SeasonTicket is a purchasable bundle of sessions for one specialization.
type SeasonTicket struct {
	ID               int     `json:"id" db:"id"`
	SpecializationID int     `json:"specialization_id" db:"specialization_id"`
	SessionsCount    int     `json:"sessions_count" db:"sessions_count"`
	Price            float64 `json:"price" db:"price"`

	Specialization *Specialization `json:"specialization,omitempty" db:"-"`
}

// Label is the human readable name used in pickers and lists.
func (t *SeasonTicket) Label() string {
	name := "?"
	if t.Specialization != nil {
		name = t.Specialization.Name
	}
	return fmt.Sprintf("%s, %d sessions, %.2f", name, t.SessionsCount, t.Price)
}
