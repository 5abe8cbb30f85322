package model

import (
	"fmt"
	"time"

	apperrors "fitness-club/pkg/app_errors"
)

// Visit records that a client attended a session with a coach.
type Visit struct {
	ID        int        `json:"id" db:"id"`
	ClientID  int        `json:"client_id" db:"client_id"`
	CoachID   int        `json:"coach_id" db:"coach_id"`
	VisitDate *time.Time `json:"visit_date,omitempty" db:"visit_date"`
	Attended  string     `json:"attended" db:"attended"`

	Client *Client `json:"client,omitempty" db:"-"`
	Coach  *Coach  `json:"coach,omitempty" db:"-"`
}

// VisitCheck decides whether a visit may be stored given the purchase found for its client.
// purchase is nil when the client owns no purchase.
type VisitCheck func(visit *Visit, purchase *TicketPurchase) error

// CheckAgainstPurchase applies the registration rules:
//   - the client must own a purchase;
//   - a dated visit must fall between the purchase date and today, both inclusive.
//
// Dates are compared as calendar days. A visit without a date skips the date rules.
func (v *Visit) CheckAgainstPurchase(purchase *TicketPurchase, now time.Time) error {
	if purchase == nil {
		return apperrors.ErrNoTicketPurchase
	}
	if v.VisitDate == nil {
		return nil
	}

	visitDay := CalendarDay(*v.VisitDate)
	purchaseDay := CalendarDay(purchase.PurchaseDate)
	if visitDay.Before(purchaseDay) {
		return &VisitBeforePurchaseError{PurchaseDate: purchaseDay}
	}
	if visitDay.After(CalendarDay(now)) {
		return apperrors.ErrVisitInFuture
	}
	return nil
}

// VisitBeforePurchaseError carries the purchase date a rejected visit was checked against.
type VisitBeforePurchaseError struct {
	PurchaseDate time.Time
}

func (e *VisitBeforePurchaseError) Error() string {
	return fmt.Sprintf("%v: ticket bought on %s", apperrors.ErrVisitBeforePurchase, e.PurchaseDate.Format(DateLayout))
}

func (e *VisitBeforePurchaseError) Unwrap() error {
	return apperrors.ErrVisitBeforePurchase
}

// RegistrationCheck binds CheckAgainstPurchase to a clock.
func RegistrationCheck(now func() time.Time) VisitCheck {
	return func(visit *Visit, purchase *TicketPurchase) error {
		return visit.CheckAgainstPurchase(purchase, now())
	}
}
