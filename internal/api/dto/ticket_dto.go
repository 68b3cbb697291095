package dto

import (
	"time"

	"github.com/aniq93/Customer-Support-Agent/internal/domain"
)

// CreateTicketRequest payload. Priority defaults to medium when
// omitted; status is always open on creation.
type CreateTicketRequest struct {
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Priority    domain.TicketPriority `json:"priority"`
	RequesterID int64                 `json:"requester_id"`
}

// UpdateTicketRequest carries a partial update; absent fields stay
// untouched.
type UpdateTicketRequest struct {
	Title       *string                `json:"title"`
	Description *string                `json:"description"`
	Status      *domain.TicketStatus   `json:"status"`
	Priority    *domain.TicketPriority `json:"priority"`
	AssigneeID  *int64                 `json:"assignee_id"`
}

// TicketResponse is what the API returns for a ticket.
type TicketResponse struct {
	ID          int64                 `json:"id"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Status      domain.TicketStatus   `json:"status"`
	Priority    domain.TicketPriority `json:"priority"`
	RequesterID int64                 `json:"requester_id"`
	AssigneeID  *int64                `json:"assignee_id"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

// TicketWithRequesterResponse flattens the requester onto the ticket.
type TicketWithRequesterResponse struct {
	TicketResponse
	RequesterName  string `json:"requester_name"`
	RequesterEmail string `json:"requester_email"`
}
