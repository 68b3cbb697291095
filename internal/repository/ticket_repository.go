package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aniq93/Customer-Support-Agent/internal/domain"
)

// TicketPatch carries the fields of a partial update. Only non-nil
// fields are applied. A nil AssigneeID leaves the assignee untouched;
// unassigning is not expressible through a patch.
type TicketPatch struct {
	Title       *string
	Description *string
	Status      *domain.TicketStatus
	Priority    *domain.TicketPriority
	AssigneeID  *int64
}

// TicketWithRequester joins a ticket with the user who filed it.
type TicketWithRequester struct {
	Ticket    domain.Ticket
	Requester domain.User
}

// TicketRepository encapsulates ticket persistence. Lookups return
// (nil, nil) when the record is absent.
type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.Ticket) error
	GetByID(ctx context.Context, id int64) (*domain.Ticket, error)
	GetWithRequester(ctx context.Context, id int64) (*TicketWithRequester, error)
	List(ctx context.Context, skip, limit int) ([]domain.Ticket, error)
	ListByRequester(ctx context.Context, userID int64) ([]domain.Ticket, error)
	ListByAssignee(ctx context.Context, userID int64) ([]domain.Ticket, error)
	Update(ctx context.Context, id int64, patch TicketPatch) (*domain.Ticket, error)
}

type ticketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository instantiates repository.
func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &ticketRepository{pool: pool}
}

const ticketColumns = "id, title, description, status, priority, requester_id, assignee_id, created_at, updated_at"

func (r *ticketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	const query = `
        INSERT INTO tickets (title, description, status, priority, requester_id, assignee_id)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		ticket.Title,
		ticket.Description,
		ticket.Status,
		ticket.Priority,
		ticket.RequesterID,
		ticket.AssigneeID,
	).Scan(&ticket.ID, &ticket.CreatedAt, &ticket.UpdatedAt)
}

func (r *ticketRepository) GetByID(ctx context.Context, id int64) (*domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE id=$1`

	var ticket domain.Ticket
	if err := r.pool.QueryRow(ctx, query, id).Scan(ticketFields(&ticket)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &ticket, nil
}

func (r *ticketRepository) GetWithRequester(ctx context.Context, id int64) (*TicketWithRequester, error) {
	const query = `
        SELECT t.id, t.title, t.description, t.status, t.priority, t.requester_id, t.assignee_id,
               t.created_at, t.updated_at,
               u.id, u.email, u.name, u.role, u.created_at
        FROM tickets t
        JOIN users u ON t.requester_id = u.id
        WHERE t.id=$1`

	var combined TicketWithRequester
	fields := ticketFields(&combined.Ticket)
	fields = append(fields,
		&combined.Requester.ID,
		&combined.Requester.Email,
		&combined.Requester.Name,
		&combined.Requester.Role,
		&combined.Requester.CreatedAt,
	)
	if err := r.pool.QueryRow(ctx, query, id).Scan(fields...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &combined, nil
}

// List returns tickets in insertion order (ascending id).
func (r *ticketRepository) List(ctx context.Context, skip, limit int) ([]domain.Ticket, error) {
	query := fmt.Sprintf(`SELECT %s FROM tickets ORDER BY id LIMIT %d OFFSET %d`,
		ticketColumns, limit, skip)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTickets(rows)
}

func (r *ticketRepository) ListByRequester(ctx context.Context, userID int64) ([]domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE requester_id=$1 ORDER BY id`
	return r.listByUserColumn(ctx, query, userID)
}

func (r *ticketRepository) ListByAssignee(ctx context.Context, userID int64) ([]domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE assignee_id=$1 ORDER BY id`
	return r.listByUserColumn(ctx, query, userID)
}

func (r *ticketRepository) listByUserColumn(ctx context.Context, query string, userID int64) ([]domain.Ticket, error) {
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTickets(rows)
}

// Update applies the set fields of the patch and refreshes updated_at
// unconditionally, even when the patch is empty.
func (r *ticketRepository) Update(ctx context.Context, id int64, patch TicketPatch) (*domain.Ticket, error) {
	sets := []string{"updated_at=NOW()"}
	args := []any{}

	if patch.Title != nil {
		args = append(args, *patch.Title)
		sets = append(sets, fmt.Sprintf("title=$%d", len(args)))
	}
	if patch.Description != nil {
		args = append(args, *patch.Description)
		sets = append(sets, fmt.Sprintf("description=$%d", len(args)))
	}
	if patch.Status != nil {
		args = append(args, *patch.Status)
		sets = append(sets, fmt.Sprintf("status=$%d", len(args)))
	}
	if patch.Priority != nil {
		args = append(args, *patch.Priority)
		sets = append(sets, fmt.Sprintf("priority=$%d", len(args)))
	}
	if patch.AssigneeID != nil {
		args = append(args, *patch.AssigneeID)
		sets = append(sets, fmt.Sprintf("assignee_id=$%d", len(args)))
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE tickets SET %s WHERE id=$%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), ticketColumns)

	var ticket domain.Ticket
	if err := r.pool.QueryRow(ctx, query, args...).Scan(ticketFields(&ticket)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &ticket, nil
}

func ticketFields(ticket *domain.Ticket) []any {
	return []any{
		&ticket.ID,
		&ticket.Title,
		&ticket.Description,
		&ticket.Status,
		&ticket.Priority,
		&ticket.RequesterID,
		&ticket.AssigneeID,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
	}
}

func scanTickets(rows pgx.Rows) ([]domain.Ticket, error) {
	var result []domain.Ticket
	for rows.Next() {
		var ticket domain.Ticket
		if err := rows.Scan(ticketFields(&ticket)...); err != nil {
			return nil, err
		}
		result = append(result, ticket)
	}
	return result, rows.Err()
}
