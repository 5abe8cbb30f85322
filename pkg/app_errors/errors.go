package apperrors

import "errors"

var (
	ErrNotFound            = errors.New("record not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrReferenceViolation  = errors.New("record is still referenced")
	ErrInternalServerError = errors.New("internal server error")

	// Visit registration rules
	ErrNoTicketPurchase    = errors.New("client has no ticket purchase")
	ErrVisitBeforePurchase = errors.New("visit date precedes ticket purchase date")
	ErrVisitInFuture       = errors.New("visit date is in the future")
)

// IsVisitRuleViolation reports whether err was raised by the visit registration rules.
func IsVisitRuleViolation(err error) bool {
	return errors.Is(err, ErrNoTicketPurchase) ||
		errors.Is(err, ErrVisitBeforePurchase) ||
		errors.Is(err, ErrVisitInFuture)
}
