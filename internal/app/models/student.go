package models

import "time"

// Student defines the student model based on the 'students' table
type Student struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	Name      string    `json:"name" db:"name" example:"Jane Doe"`
	Email     string    `json:"email" db:"email" example:"jane@college.edu"`
	Password  string    `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	RollNo    string    `json:"roll_no" db:"roll_no" example:"CS-2021-042"`
	Course    string    `json:"course" db:"course" example:"BS Computer Science"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
