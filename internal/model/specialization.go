package model

// Specialization is a named category of training activity (yoga, swimming, ...).
type Specialization struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}
