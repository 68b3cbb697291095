package service

import (
	"context"

	"github.com/aniq93/Customer-Support-Agent/internal/domain"
	"github.com/aniq93/Customer-Support-Agent/internal/repository"
)

const (
	defaultListSkip  = 0
	defaultListLimit = 100
)

// UserService coordinates user CRUD. It holds no state between calls;
// every entity lives entirely in storage.
type UserService struct {
	users repository.UserRepository
}

// UserCreateInput describes user creation payload.
type UserCreateInput struct {
	Email string
	Name  string
	Role  domain.UserRole
}

// NewUserService constructs the service.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{users: userRepo}
}

// Create persists a new user. No uniqueness pre-check is performed; a
// duplicate email surfaces as the storage constraint violation.
func (s *UserService) Create(ctx context.Context, input UserCreateInput) (*domain.User, error) {
	user := &domain.User{
		Email: input.Email,
		Name:  input.Name,
		Role:  input.Role,
	}
	if user.Role == "" {
		user.Role = domain.RoleCustomer
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Get returns the user, or nil when the id does not resolve.
func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// GetByEmail returns the user with the exact email, or nil.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.users.GetByEmail(ctx, email)
}

// List returns users in insertion order with offset/limit pagination.
func (s *UserService) List(ctx context.Context, skip, limit int) ([]domain.User, error) {
	skip, limit = normalizePagination(skip, limit)
	return s.users.List(ctx, skip, limit)
}

// Update applies only the fields set in the patch. Returns nil when the
// id does not resolve; no write happens in that case.
func (s *UserService) Update(ctx context.Context, id int64, patch repository.UserPatch) (*domain.User, error) {
	return s.users.Update(ctx, id, patch)
}

func normalizePagination(skip, limit int) (int, int) {
	if skip < 0 {
		skip = defaultListSkip
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	return skip, limit
}
