package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aniq93/Customer-Support-Agent/internal/domain"
)

// CommentRepository persists ticket comments. Comments are create-only;
// no read or mutation paths exist in this design.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
}

type commentRepository struct {
	pool *pgxpool.Pool
}

// NewCommentRepository returns a Postgres-backed implementation.
func NewCommentRepository(pool *pgxpool.Pool) CommentRepository {
	return &commentRepository{pool: pool}
}

func (r *commentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	const query = `
        INSERT INTO comments (body, is_internal, ticket_id, author_id)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		comment.Body,
		comment.IsInternal,
		comment.TicketID,
		comment.AuthorID,
	).Scan(&comment.ID, &comment.CreatedAt)
}
