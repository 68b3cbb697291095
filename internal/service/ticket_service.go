package service

import (
	"context"

	"github.com/aniq93/Customer-Support-Agent/internal/domain"
	"github.com/aniq93/Customer-Support-Agent/internal/repository"
)

// TicketService coordinates ticket CRUD. Requester existence is the
// routing layer's concern; this service trusts the id it is given.
type TicketService struct {
	tickets repository.TicketRepository
}

// TicketCreateInput describes ticket creation payload.
type TicketCreateInput struct {
	Title       string
	Description string
	Priority    domain.TicketPriority
	RequesterID int64
}

// NewTicketService constructs the service.
func NewTicketService(ticketRepo repository.TicketRepository) *TicketService {
	return &TicketService{tickets: ticketRepo}
}

// Create persists a new ticket with status open and, absent an explicit
// priority, priority medium.
func (s *TicketService) Create(ctx context.Context, input TicketCreateInput) (*domain.Ticket, error) {
	ticket := &domain.Ticket{
		Title:       input.Title,
		Description: input.Description,
		Status:      domain.StatusOpen,
		Priority:    input.Priority,
		RequesterID: input.RequesterID,
	}
	if ticket.Priority == "" {
		ticket.Priority = domain.PriorityMedium
	}
	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

// Get returns the ticket, or nil when the id does not resolve.
func (s *TicketService) Get(ctx context.Context, id int64) (*domain.Ticket, error) {
	return s.tickets.GetByID(ctx, id)
}

// GetWithRequester returns the ticket joined with its requester, or nil.
func (s *TicketService) GetWithRequester(ctx context.Context, id int64) (*repository.TicketWithRequester, error) {
	return s.tickets.GetWithRequester(ctx, id)
}

// List returns tickets in insertion order with offset/limit pagination.
func (s *TicketService) List(ctx context.Context, skip, limit int) ([]domain.Ticket, error) {
	skip, limit = normalizePagination(skip, limit)
	return s.tickets.List(ctx, skip, limit)
}

// ListByRequester returns every ticket filed by the user, any status.
func (s *TicketService) ListByRequester(ctx context.Context, userID int64) ([]domain.Ticket, error) {
	return s.tickets.ListByRequester(ctx, userID)
}

// ListByAssignee returns every ticket assigned to the user.
func (s *TicketService) ListByAssignee(ctx context.Context, userID int64) ([]domain.Ticket, error) {
	return s.tickets.ListByAssignee(ctx, userID)
}

// Update applies only the fields set in the patch; updated_at refreshes
// on every successful call even when no field changes value. Returns
// nil when the id does not resolve.
func (s *TicketService) Update(ctx context.Context, id int64, patch repository.TicketPatch) (*domain.Ticket, error) {
	return s.tickets.Update(ctx, id, patch)
}
