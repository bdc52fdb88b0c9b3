package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Surname     string    `db:"surname" json:"surname"`
	Email       string    `db:"email" json:"email"`
	Position    string    `db:"position" json:"position"`
	AccessLevel string    `db:"access_level" json:"access_level"`

	// Never serialized; leaves the store only on the login lookup.
	PasswordHash string `db:"password_hash" json:"-"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
