package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/aniq93/Customer-Support-Agent/internal/api/dto"
	"github.com/aniq93/Customer-Support-Agent/internal/domain"
	"github.com/aniq93/Customer-Support-Agent/internal/repository"
	"github.com/aniq93/Customer-Support-Agent/internal/service"
	apperrors "github.com/aniq93/Customer-Support-Agent/pkg/util"
)

// TicketsHandler exposes ticket endpoints. It also performs the
// reference checks the services do not: the requester must resolve
// before a ticket is created.
type TicketsHandler struct {
	tickets *service.TicketService
	users   *service.UserService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(ticketService *service.TicketService, userService *service.UserService) *TicketsHandler {
	return &TicketsHandler{tickets: ticketService, users: userService}
}

// CreateTicket handles POST /tickets/.
func (h *TicketsHandler) CreateTicket(c *fiber.Ctx) error {
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Title == "" {
		return apperrors.NewValidationError("title required", nil)
	}
	if req.RequesterID == 0 {
		return apperrors.NewValidationError("requester_id required", nil)
	}
	if req.Priority != "" && !req.Priority.Valid() {
		return apperrors.NewValidationError("invalid priority", map[string]any{"priority": req.Priority})
	}

	// the ticket service trusts requester_id, so it is resolved here
	requester, err := h.users.Get(c.Context(), req.RequesterID)
	if err != nil {
		return err
	}
	if requester == nil {
		return apperrors.NewNotFound("requester", map[string]any{"requester_id": req.RequesterID})
	}

	ticket, err := h.tickets.Create(c.Context(), service.TicketCreateInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		RequesterID: req.RequesterID,
	})
	if err != nil {
		return err
	}
	return c.JSON(ticketResponse(ticket))
}

// ListTickets handles GET /tickets/.
func (h *TicketsHandler) ListTickets(c *fiber.Ctx) error {
	skip, limit := parsePagination(c)
	tickets, err := h.tickets.List(c.Context(), skip, limit)
	if err != nil {
		return err
	}
	return c.JSON(ticketResponses(tickets))
}

// GetTicket handles GET /tickets/:id.
func (h *TicketsHandler) GetTicket(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	ticket, err := h.tickets.Get(c.Context(), id)
	if err != nil {
		return err
	}
	if ticket == nil {
		return apperrors.NewNotFound("ticket", nil)
	}
	return c.JSON(ticketResponse(ticket))
}

// GetTicketWithRequester handles GET /tickets/:id/requester.
func (h *TicketsHandler) GetTicketWithRequester(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	combined, err := h.tickets.GetWithRequester(c.Context(), id)
	if err != nil {
		return err
	}
	if combined == nil {
		return apperrors.NewNotFound("ticket", nil)
	}
	return c.JSON(dto.TicketWithRequesterResponse{
		TicketResponse: ticketResponse(&combined.Ticket),
		RequesterName:  combined.Requester.Name,
		RequesterEmail: combined.Requester.Email,
	})
}

// UpdateTicket handles PUT /tickets/:id.
func (h *TicketsHandler) UpdateTicket(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Title != nil && *req.Title == "" {
		return apperrors.NewValidationError("title must not be empty", nil)
	}
	if req.Status != nil && !req.Status.Valid() {
		return apperrors.NewValidationError("invalid status", map[string]any{"status": *req.Status})
	}
	if req.Priority != nil && !req.Priority.Valid() {
		return apperrors.NewValidationError("invalid priority", map[string]any{"priority": *req.Priority})
	}

	ticket, err := h.tickets.Update(c.Context(), id, repository.TicketPatch{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		AssigneeID:  req.AssigneeID,
	})
	if err != nil {
		return err
	}
	if ticket == nil {
		return apperrors.NewNotFound("ticket", nil)
	}
	return c.JSON(ticketResponse(ticket))
}

// ListTicketsByRequester handles GET /tickets/user/:user_id.
func (h *TicketsHandler) ListTicketsByRequester(c *fiber.Ctx) error {
	return h.listForUser(c, h.tickets.ListByRequester)
}

// ListTicketsByAssignee handles GET /tickets/assignee/:user_id.
func (h *TicketsHandler) ListTicketsByAssignee(c *fiber.Ctx) error {
	return h.listForUser(c, h.tickets.ListByAssignee)
}

func (h *TicketsHandler) listForUser(c *fiber.Ctx, list func(ctx context.Context, userID int64) ([]domain.Ticket, error)) error {
	userID, err := parseID(c, "user_id")
	if err != nil {
		return err
	}
	user, err := h.users.Get(c.Context(), userID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperrors.NewNotFound("user", map[string]any{"user_id": userID})
	}
	tickets, err := list(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(ticketResponses(tickets))
}

func ticketResponse(ticket *domain.Ticket) dto.TicketResponse {
	return dto.TicketResponse{
		ID:          ticket.ID,
		Title:       ticket.Title,
		Description: ticket.Description,
		Status:      ticket.Status,
		Priority:    ticket.Priority,
		RequesterID: ticket.RequesterID,
		AssigneeID:  ticket.AssigneeID,
		CreatedAt:   ticket.CreatedAt,
		UpdatedAt:   ticket.UpdatedAt,
	}
}

func ticketResponses(tickets []domain.Ticket) []dto.TicketResponse {
	items := make([]dto.TicketResponse, 0, len(tickets))
	for i := range tickets {
		items = append(items, ticketResponse(&tickets[i]))
	}
	return items
}
