package service

import (
	"context"

	"github.com/aniq93/Customer-Support-Agent/internal/domain"
	"github.com/aniq93/Customer-Support-Agent/internal/repository"
)

// CommentService persists ticket comments. Create-only: comments are
// never listed, updated or deleted by this core, and the service does
// not verify that ticket or author ids resolve.
type CommentService struct {
	comments repository.CommentRepository
}

// CommentCreateInput describes comment creation payload.
type CommentCreateInput struct {
	Body       string
	IsInternal bool
	TicketID   int64
	AuthorID   int64
}

// NewCommentService constructs the service.
func NewCommentService(commentRepo repository.CommentRepository) *CommentService {
	return &CommentService{comments: commentRepo}
}

// Create persists a new comment.
func (s *CommentService) Create(ctx context.Context, input CommentCreateInput) (*domain.Comment, error) {
	comment := &domain.Comment{
		Body:       input.Body,
		IsInternal: input.IsInternal,
		TicketID:   input.TicketID,
		AuthorID:   input.AuthorID,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}
