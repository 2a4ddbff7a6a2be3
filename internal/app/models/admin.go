package models

import "time"

// Admin defines the admin model based on the 'admins' table.
// Admins are seeded out-of-band; there is no self-registration.
type Admin struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	Name      string    `json:"name" db:"name" example:"System Administrator"`
	Email     string    `json:"email" db:"email" example:"admin@college.edu"`
	Password  string    `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	Role      string    `json:"role" db:"role" example:"admin"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
