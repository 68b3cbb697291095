package handlers

import (
	"net/mail"

	"github.com/gofiber/fiber/v2"

	"github.com/aniq93/Customer-Support-Agent/internal/api/dto"
	"github.com/aniq93/Customer-Support-Agent/internal/domain"
	"github.com/aniq93/Customer-Support-Agent/internal/repository"
	"github.com/aniq93/Customer-Support-Agent/internal/service"
	apperrors "github.com/aniq93/Customer-Support-Agent/pkg/util"
)

// UsersHandler exposes user CRUD endpoints.
type UsersHandler struct {
	service *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(userService *service.UserService) *UsersHandler {
	return &UsersHandler{service: userService}
}

// CreateUser handles POST /users/.
func (h *UsersHandler) CreateUser(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Name == "" {
		return apperrors.NewValidationError("email and name required", nil)
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return apperrors.NewValidationError("malformed email", map[string]any{"email": req.Email})
	}
	if req.Role != "" && !req.Role.Valid() {
		return apperrors.NewValidationError("invalid role", map[string]any{"role": req.Role})
	}

	user, err := h.service.Create(c.Context(), service.UserCreateInput{
		Email: req.Email,
		Name:  req.Name,
		Role:  req.Role,
	})
	if err != nil {
		return err
	}
	return c.JSON(userResponse(user))
}

// ListUsers handles GET /users/.
func (h *UsersHandler) ListUsers(c *fiber.Ctx) error {
	skip, limit := parsePagination(c)
	users, err := h.service.List(c.Context(), skip, limit)
	if err != nil {
		return err
	}
	items := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		items = append(items, userResponse(&users[i]))
	}
	return c.JSON(items)
}

// GetUser handles GET /users/:id.
func (h *UsersHandler) GetUser(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	user, err := h.service.Get(c.Context(), id)
	if err != nil {
		return err
	}
	if user == nil {
		return apperrors.NewNotFound("user", nil)
	}
	return c.JSON(userResponse(user))
}

// GetUserByEmail handles GET /users/email/:email.
func (h *UsersHandler) GetUserByEmail(c *fiber.Ctx) error {
	email := c.Params("email")
	user, err := h.service.GetByEmail(c.Context(), email)
	if err != nil {
		return err
	}
	if user == nil {
		return apperrors.NewNotFound("user", nil)
	}
	return c.JSON(userResponse(user))
}

// UpdateUser handles PUT /users/:id.
func (h *UsersHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email != nil {
		if _, err := mail.ParseAddress(*req.Email); err != nil {
			return apperrors.NewValidationError("malformed email", map[string]any{"email": *req.Email})
		}
	}
	if req.Name != nil && *req.Name == "" {
		return apperrors.NewValidationError("name must not be empty", nil)
	}
	if req.Role != nil && !req.Role.Valid() {
		return apperrors.NewValidationError("invalid role", map[string]any{"role": *req.Role})
	}

	user, err := h.service.Update(c.Context(), id, repository.UserPatch{
		Email: req.Email,
		Name:  req.Name,
		Role:  req.Role,
	})
	if err != nil {
		return err
	}
	if user == nil {
		return apperrors.NewNotFound("user", nil)
	}
	return c.JSON(userResponse(user))
}

func userResponse(user *domain.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}
