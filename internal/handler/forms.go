package handler

import (
	"strings"
	"time"

	"fitness-club/internal/model"
)

// Form structs mirror the posted HTML forms. Dates travel as strings so a rejected
// submission can be redisplayed exactly as typed.

type SpecializationForm struct {
	ID   int    `form:"id"`
	Name string `form:"name" binding:"required,notblank"`
}

func (f *SpecializationForm) toModel() *model.Specialization {
	return &model.Specialization{ID: f.ID, Name: strings.TrimSpace(f.Name)}
}

func specializationForm(s *model.Specialization) *SpecializationForm {
	return &SpecializationForm{ID: s.ID, Name: s.Name}
}

type CoachForm struct {
	ID               int    `form:"id"`
	FullName         string `form:"full_name" binding:"required,notblank"`
	SpecializationID int    `form:"specialization_id"`
	Phone            string `form:"phone"`
	Email            string `form:"email" binding:"omitempty,email"`
}

func (f *CoachForm) toModel() *model.Coach {
	coach := &model.Coach{
		ID:       f.ID,
		FullName: strings.TrimSpace(f.FullName),
		Phone:    strings.TrimSpace(f.Phone),
		Email:    strings.TrimSpace(f.Email),
	}
	if f.SpecializationID > 0 {
		id := f.SpecializationID
		coach.SpecializationID = &id
	}
	return coach
}

func coachForm(c *model.Coach) *CoachForm {
	f := &CoachForm{ID: c.ID, FullName: c.FullName, Phone: c.Phone, Email: c.Email}
	if c.SpecializationID != nil {
		f.SpecializationID = *c.SpecializationID
	}
	return f
}

type ClientForm struct {
	ID        int    `form:"id"`
	FullName  string `form:"full_name"`
	BirthDate string `form:"birth_date" binding:"omitempty,datetime=2006-01-02"`
	Phone     string `form:"phone"`
	Email     string `form:"email" binding:"omitempty,email"`
}

func (f *ClientForm) toModel() *model.Client {
	return &model.Client{
		ID:        f.ID,
		FullName:  strings.TrimSpace(f.FullName),
		BirthDate: parseOptional(model.DateLayout, f.BirthDate),
		Phone:     strings.TrimSpace(f.Phone),
		Email:     strings.TrimSpace(f.Email),
	}
}

func clientForm(c *model.Client) *ClientForm {
	return &ClientForm{
		ID:        c.ID,
		FullName:  c.FullName,
		BirthDate: formatOptional(model.DateLayout, c.BirthDate),
		Phone:     c.Phone,
		Email:     c.Email,
	}
}

type SeasonTicketForm struct {
	ID               int     `form:"id"`
	SpecializationID int     `form:"specialization_id" binding:"required"`
	SessionsCount    int     `form:"sessions_count" binding:"required,min=1"`
	Price            float64 `form:"price" binding:"required,gt=0"`
}

func (f *SeasonTicketForm) toModel() *model.SeasonTicket {
	return &model.SeasonTicket{
		ID:               f.ID,
		SpecializationID: f.SpecializationID,
		SessionsCount:    f.SessionsCount,
		Price:            f.Price,
	}
}

func seasonTicketForm(t *model.SeasonTicket) *SeasonTicketForm {
	return &SeasonTicketForm{
		ID:               t.ID,
		SpecializationID: t.SpecializationID,
		SessionsCount:    t.SessionsCount,
		Price:            t.Price,
	}
}

type TicketPurchaseForm struct {
	ID             int    `form:"id"`
	ClientID       int    `form:"client_id" binding:"required"`
	SeasonTicketID int    `form:"season_ticket_id" binding:"required"`
	PurchaseDate   string `form:"purchase_date" binding:"omitempty,datetime=2006-01-02"`
}

// toModel leaves PurchaseDate zero when the field is blank; the service fills in today.
func (f *TicketPurchaseForm) toModel() *model.TicketPurchase {
	purchase := &model.TicketPurchase{
		ID:             f.ID,
		ClientID:       f.ClientID,
		SeasonTicketID: f.SeasonTicketID,
	}
	if d := parseOptional(model.DateLayout, f.PurchaseDate); d != nil {
		purchase.PurchaseDate = *d
	}
	return purchase
}

func ticketPurchaseForm(p *model.TicketPurchase) *TicketPurchaseForm {
	return &TicketPurchaseForm{
		ID:             p.ID,
		ClientID:       p.ClientID,
		SeasonTicketID: p.SeasonTicketID,
		PurchaseDate:   formatOptional(model.DateLayout, &p.PurchaseDate),
	}
}

type VisitForm struct {
	ID        int    `form:"id"`
	ClientID  int    `form:"client_id" binding:"required"`
	CoachID   int    `form:"coach_id" binding:"required"`
	VisitDate string `form:"visit_date" binding:"omitempty,datetime=2006-01-02T15:04"`
	Attended  string `form:"attended"`
}

func (f *VisitForm) toModel() *model.Visit {
	return &model.Visit{
		ID:        f.ID,
		ClientID:  f.ClientID,
		CoachID:   f.CoachID,
		VisitDate: parseOptional(model.DateTimeLayout, f.VisitDate),
		Attended:  strings.TrimSpace(f.Attended),
	}
}

func visitForm(v *model.Visit) *VisitForm {
	return &VisitForm{
		ID:        v.ID,
		ClientID:  v.ClientID,
		CoachID:   v.CoachID,
		VisitDate: formatOptional(model.DateTimeLayout, v.VisitDate),
		Attended:  v.Attended,
	}
}

// parseOptional expects a value that already passed the datetime validator.
func parseOptional(layout, value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	t, err := time.Parse(layout, value)
	if err != nil {
		return nil
	}
	return &t
}

func formatOptional(layout string, t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(layout)
}
