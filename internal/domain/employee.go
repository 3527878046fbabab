package domain

import "time"

type Employee struct {
	ID        string    `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Position  string    `json:"position,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
