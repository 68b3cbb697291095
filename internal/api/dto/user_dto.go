package dto

import (
	"time"

	"github.com/aniq93/Customer-Support-Agent/internal/domain"
)

// CreateUserRequest payload for new users. Role defaults to customer
// when omitted.
type CreateUserRequest struct {
	Email string          `json:"email"`
	Name  string          `json:"name"`
	Role  domain.UserRole `json:"role"`
}

// UpdateUserRequest carries a partial update; absent fields stay
// untouched.
type UpdateUserRequest struct {
	Email *string          `json:"email"`
	Name  *string          `json:"name"`
	Role  *domain.UserRole `json:"role"`
}

// UserResponse is what the API returns for a user.
type UserResponse struct {
	ID        int64           `json:"id"`
	Email     string          `json:"email"`
	Name      string          `json:"name"`
	Role      domain.UserRole `json:"role"`
	CreatedAt time.Time       `json:"created_at"`
}
