package model

import "time"

type Client struct {
	ID        int        `json:"id" db:"id"`
	FullName  string     `json:"full_name" db:"full_name"`
	BirthDate *time.Time `json:"birth_date,omitempty" db:"birth_date"`
	Phone     string     `json:"phone" db:"phone"`
	Email     string     `json:"email" db:"email"`
}
