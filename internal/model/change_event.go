package model

import (
	"time"

	"github.com/google/uuid"
)

// ChangeAction 變更類型
type ChangeAction string

const (
	ChangeActionSaved           ChangeAction = "saved"
	ChangeActionDeleted         ChangeAction = "deleted"
	ChangeActionVisitRegistered ChangeAction = "visit_registered"
)

// Entity names used in change events and activity entries.
const (
	EntitySpecialization = "specialization"
	EntityCoach          = "coach"
	EntityClient         = "client"
	EntitySeasonTicket   = "season_ticket"
	EntityTicketPurchase = "ticket_purchase"
	EntityVisit          = "visit"
)

// ChangeEvent is published after a write has been committed.
type ChangeEvent struct {
	EventID    uuid.UUID    `json:"event_id"`
	Entity     string       `json:"entity"`
	EntityID   int          `json:"entity_id"`
	Action     ChangeAction `json:"action"`
	OccurredAt time.Time    `json:"occurred_at"`
}

func NewChangeEvent(entity string, entityID int, action ChangeAction) *ChangeEvent {
	return &ChangeEvent{
		EventID:    uuid.New(),
		Entity:     entity,
		EntityID:   entityID,
		Action:     action,
		OccurredAt: time.Now().UTC(),
	}
}

// ActivityEntry is a persisted change event.
type ActivityEntry struct {
	ID         int          `json:"id" db:"id"`
	EventID    uuid.UUID    `json:"event_id" db:"event_id"`
	Entity     string       `json:"entity" db:"entity"`
	EntityID   int          `json:"entity_id" db:"entity_id"`
	Action     ChangeAction `json:"action" db:"action"`
	OccurredAt time.Time    `json:"occurred_at" db:"occurred_at"`
}

func (e *ChangeEvent) ToActivityEntry() *ActivityEntry {
	return &ActivityEntry{
		EventID:    e.EventID,
		Entity:     e.Entity,
		EntityID:   e.EntityID,
		Action:     e.Action,
		OccurredAt: e.OccurredAt,
	}
}
