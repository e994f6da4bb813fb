package models

import (
	"github.com/google/uuid"
)

// UserDB represents a user record in the database.
//
// Password holds the salted hash in "salt.hash" form, never plaintext.
// A user is either verified with an empty token, or unverified with a live
// verification token; the auth service keeps the two fields in sync.
type UserDB struct {
	ID                     uuid.UUID `json:"id" db:"id"`
	Email                  string    `json:"email" db:"email"`
	Password               string    `json:"-" db:"password"`
	IsEmailVerified        bool      `json:"isEmailVerified" db:"isEmailVerified"`
	EmailVerificationToken *string   `json:"-" db:"emailVerificationToken"`
}

// PublicUser is a user as returned by the API: no credential material.
type PublicUser struct {
	ID              uuid.UUID `json:"id"`
	Email           string    `json:"email"`
	IsEmailVerified bool      `json:"isEmailVerified"`
}

// Public strips credential fields from a user record.
func (u *UserDB) Public() PublicUser {
	return PublicUser{
		ID:              u.ID,
		Email:           u.Email,
		IsEmailVerified: u.IsEmailVerified,
	}
}
