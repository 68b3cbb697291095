package domain

import "time"

// UserRole enumerates the roles a user can hold. Roles are descriptive
// data only; no endpoint checks them.
type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleAgent    UserRole = "agent"
	RoleAdmin    UserRole = "admin"
)

// Valid reports whether the role is one of the enumerated values.
func (r UserRole) Valid() bool {
	switch r {
	case RoleCustomer, RoleAgent, RoleAdmin:
		return true
	}
	return false
}

// User is the domain model for anyone touching tickets: customers who
// file them, agents and admins who work them.
type User struct {
	ID        int64
	Email     string
	Name      string
	Role      UserRole
	CreatedAt time.Time
}
