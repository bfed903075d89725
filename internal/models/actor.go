package models

import "github.com/google/uuid"

// Role is the coarse permission level attached to an authenticated actor
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// Actor is the authenticated party initiating an operation. Identity is
// verified upstream (gateway/IdP); this service only consumes it.
type Actor struct {
	Role Role      `json:"role"`
	ID   uuid.UUID `json:"id"`
}

// IsAdmin reports whether the actor carries the admin role
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
