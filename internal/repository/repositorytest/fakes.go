// Package repositorytest provides in-memory repository implementations
// for tests. They honor the same contracts as the Postgres-backed
// repositories: insertion-order listing, (nil, nil) on absent records,
// patch application limited to set fields, and an unconditional
// updated_at refresh on ticket updates.
package repositorytest

import (
	"context"
	"sync"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/aniq93/Customer-Support-Agent/internal/domain"
	"github.com/aniq93/Customer-Support-Agent/internal/repository"
)

// UserRepo is an in-memory repository.UserRepository.
type UserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  []domain.User
}

// NewUserRepo returns an empty in-memory user repository.
func NewUserRepo() *UserRepo {
	return &UserRepo{nextID: 1}
}

func (r *UserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == user.Email {
			// mirror the unique index on users.email
			return &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_email_key"}
		}
	}
	user.ID = r.nextID
	r.nextID++
	user.CreatedAt = time.Now()
	r.users = append(r.users, *user)
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].ID == id {
			user := r.users[i]
			return &user, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].Email == email {
			user := r.users[i]
			return &user, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) List(_ context.Context, skip, limit int) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if skip >= len(r.users) {
		return nil, nil
	}
	end := skip + limit
	if end > len(r.users) {
		end = len(r.users)
	}
	out := make([]domain.User, end-skip)
	copy(out, r.users[skip:end])
	return out, nil
}

func (r *UserRepo) Update(_ context.Context, id int64, patch repository.UserPatch) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].ID != id {
			continue
		}
		if patch.Email != nil {
			r.users[i].Email = *patch.Email
		}
		if patch.Name != nil {
			r.users[i].Name = *patch.Name
		}
		if patch.Role != nil {
			r.users[i].Role = *patch.Role
		}
		user := r.users[i]
		return &user, nil
	}
	return nil, nil
}

// TicketRepo is an in-memory repository.TicketRepository. Joins resolve
// against the paired UserRepo.
type TicketRepo struct {
	mu      sync.Mutex
	nextID  int64
	tickets []domain.Ticket
	Users   *UserRepo
}

// NewTicketRepo returns an empty in-memory ticket repository backed by
// the given user repository for requester joins.
func NewTicketRepo(users *UserRepo) *TicketRepo {
	return &TicketRepo{nextID: 1, Users: users}
}

func (r *TicketRepo) Create(_ context.Context, ticket *domain.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ticket.ID = r.nextID
	r.nextID++
	now := time.Now()
	ticket.CreatedAt = now
	ticket.UpdatedAt = now
	r.tickets = append(r.tickets, *ticket)
	return nil
}

func (r *TicketRepo) GetByID(_ context.Context, id int64) (*domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.tickets {
		if r.tickets[i].ID == id {
			ticket := r.tickets[i]
			return &ticket, nil
		}
	}
	return nil, nil
}

func (r *TicketRepo) GetWithRequester(ctx context.Context, id int64) (*repository.TicketWithRequester, error) {
	ticket, err := r.GetByID(ctx, id)
	if err != nil || ticket == nil {
		return nil, err
	}
	requester, err := r.Users.GetByID(ctx, ticket.RequesterID)
	if err != nil || requester == nil {
		return nil, err
	}
	return &repository.TicketWithRequester{Ticket: *ticket, Requester: *requester}, nil
}

func (r *TicketRepo) List(_ context.Context, skip, limit int) ([]domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if skip >= len(r.tickets) {
		return nil, nil
	}
	end := skip + limit
	if end > len(r.tickets) {
		end = len(r.tickets)
	}
	out := make([]domain.Ticket, end-skip)
	copy(out, r.tickets[skip:end])
	return out, nil
}

func (r *TicketRepo) ListByRequester(_ context.Context, userID int64) ([]domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Ticket
	for _, ticket := range r.tickets {
		if ticket.RequesterID == userID {
			out = append(out, ticket)
		}
	}
	return out, nil
}

func (r *TicketRepo) ListByAssignee(_ context.Context, userID int64) ([]domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Ticket
	for _, ticket := range r.tickets {
		if ticket.AssigneeID != nil && *ticket.AssigneeID == userID {
			out = append(out, ticket)
		}
	}
	return out, nil
}

func (r *TicketRepo) Update(_ context.Context, id int64, patch repository.TicketPatch) (*domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.tickets {
		if r.tickets[i].ID != id {
			continue
		}
		if patch.Title != nil {
			r.tickets[i].Title = *patch.Title
		}
		if patch.Description != nil {
			r.tickets[i].Description = *patch.Description
		}
		if patch.Status != nil {
			r.tickets[i].Status = *patch.Status
		}
		if patch.Priority != nil {
			r.tickets[i].Priority = *patch.Priority
		}
		if patch.AssigneeID != nil {
			assignee := *patch.AssigneeID
			r.tickets[i].AssigneeID = &assignee
		}
		// refreshed even when the patch is empty
		r.tickets[i].UpdatedAt = time.Now()
		ticket := r.tickets[i]
		return &ticket, nil
	}
	return nil, nil
}

// Len reports how many tickets are stored.
func (r *TicketRepo) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.tickets)
}

// CommentRepo is an in-memory repository.CommentRepository.
type CommentRepo struct {
	mu       sync.Mutex
	nextID   int64
	Comments []domain.Comment
}

// NewCommentRepo returns an empty in-memory comment repository.
func NewCommentRepo() *CommentRepo {
	return &CommentRepo{nextID: 1}
}

func (r *CommentRepo) Create(_ context.Context, comment *domain.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	comment.ID = r.nextID
	r.nextID++
	comment.CreatedAt = time.Now()
	r.Comments = append(r.Comments, *comment)
	return nil
}
