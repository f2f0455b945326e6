package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is a person who can belong to several companies.
type User struct {
	ID        uuid.UUID `json:"id"`
	LastName  string    `json:"last_name"`
	FirstName string    `json:"first_name"`
	Email     string    `json:"email"`
}

// DisplayName returns "first last", trimmed when a part is missing.
func (u *User) DisplayName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// HasEmail reports whether the user can receive email.
func (u *User) HasEmail() bool {
	return strings.TrimSpace(u.Email) != ""
}

// Membership links a user to a company with a role.
type Membership struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	CompanyID uuid.UUID `json:"company_id"`
	Role      Role      `json:"role"`
	User      *User     `json:"user,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
