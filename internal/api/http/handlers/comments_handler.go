package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aniq93/Customer-Support-Agent/internal/api/dto"
	"github.com/aniq93/Customer-Support-Agent/internal/domain"
	"github.com/aniq93/Customer-Support-Agent/internal/service"
	apperrors "github.com/aniq93/Customer-Support-Agent/pkg/util"
)

// CommentsHandler exposes the single comment endpoint. Comments are
// create-only in this design.
type CommentsHandler struct {
	service *service.CommentService
}

// NewCommentsHandler constructs handler.
func NewCommentsHandler(commentService *service.CommentService) *CommentsHandler {
	return &CommentsHandler{service: commentService}
}

// CreateComment handles POST /comments/.
func (h *CommentsHandler) CreateComment(c *fiber.Ctx) error {
	var req dto.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Body == "" {
		return apperrors.NewValidationError("body required", nil)
	}
	if req.TicketID == 0 || req.AuthorID == 0 {
		return apperrors.NewValidationError("ticket_id and author_id required", nil)
	}

	comment, err := h.service.Create(c.Context(), service.CommentCreateInput{
		Body:       req.Body,
		IsInternal: req.IsInternal,
		TicketID:   req.TicketID,
		AuthorID:   req.AuthorID,
	})
	if err != nil {
		return err
	}
	return c.JSON(commentResponse(comment))
}

func commentResponse(comment *domain.Comment) dto.CommentResponse {
	return dto.CommentResponse{
		ID:         comment.ID,
		Body:       comment.Body,
		IsInternal: comment.IsInternal,
		TicketID:   comment.TicketID,
		AuthorID:   comment.AuthorID,
		CreatedAt:  comment.CreatedAt,
	}
}
