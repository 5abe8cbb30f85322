package model

// Coach 教練
type Coach struct {
	ID               int    `json:"id" db:"id"`
	FullName         string `json:"full_name" db:"full_name"`
	SpecializationID *int   `json:"specialization_id,omitempty" db:"specialization_id"`
	Phone            string `json:"phone" db:"phone"`
	Email            string `json:"email" db:"email"`

	Specialization *Specialization `json:"specialization,omitempty" db:"-"`
}

// SpecializationName returns the joined specialization name or "" when the coach has none.
func (c *Coach) SpecializationName() string {
	if c.Specialization == nil {
		return ""
	}
	return c.Specialization.Name
}
