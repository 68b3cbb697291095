package dto

import "time"

// CreateCommentRequest payload. IsInternal defaults to false: a
// customer-visible reply.
type CreateCommentRequest struct {
	Body       string `json:"body"`
	IsInternal bool   `json:"is_internal"`
	TicketID   int64  `json:"ticket_id"`
	AuthorID   int64  `json:"author_id"`
}

// CommentResponse is what the API returns for a comment.
type CommentResponse struct {
	ID         int64     `json:"id"`
	Body       string    `json:"body"`
	IsInternal bool      `json:"is_internal"`
	TicketID   int64     `json:"ticket_id"`
	AuthorID   int64     `json:"author_id"`
	CreatedAt  time.Time `json:"created_at"`
}
