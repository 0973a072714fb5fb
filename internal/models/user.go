package models

import "time"

type User struct {
	ID          int64  `json:"id"`
	CountryCode string `json:"country_code"`
	PhoneNumber string `json:"phone_number"`

	PasswordHash string `json:"-"` // never serialized

	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
