package models

import (
	"errors"
	"regexp"
	"time"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

var (
	ErrEmailRequired = errors.New("email is required")
	ErrEmailInvalid  = errors.New("email format is invalid")
	ErrNameRequired  = errors.New("name is required")
)

// User is an account holder. The password hash is never serialized; clients
// see users through dto.UserResponse.
type User struct {
	ID        string    `json:"id" bson:"id"`
	Email     string    `json:"email" bson:"email"`
	Password  string    `json:"-" bson:"password"`
	Name      string    `json:"name" bson:"name"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// Validate checks the structural invariants of a user record.
// Email uniqueness is the storage layer's responsibility.
func (u *User) Validate() error {
	if u.Email == "" {
		return ErrEmailRequired
	}
	if !emailRegex.MatchString(u.Email) {
		return ErrEmailInvalid
	}
	if u.Name == "" {
		return ErrNameRequired
	}
	return nil
}
