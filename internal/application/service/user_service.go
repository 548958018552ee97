package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/nftpro1212/frons-pos/internal/domain/entity"
	"github.com/nftpro1212/frons-pos/internal/domain/repository"
	"github.com/nftpro1212/frons-pos/pkg/apperror"
	"github.com/nftpro1212/frons-pos/pkg/pagination"
	"github.com/nftpro1212/frons-pos/pkg/utils"
)

// UserService handles staff management operations
type UserService struct {
	userRepo       repository.UserRepository
	roleRepo       repository.RoleRepository
	permissionRepo repository.PermissionRepository
}

// NewUserService creates a new user service
func NewUserService(
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	permissionRepo repository.PermissionRepository,
) *UserService {
	return &UserService{
		userRepo:       userRepo,
		roleRepo:       roleRepo,
		permissionRepo: permissionRepo,
	}
}

// ListUsersInput represents the input for listing users
type ListUsersInput struct {
	Page    int
	PerPage int
	Search  string
}

// ListUsersOutput represents the output for listing users
type ListUsersOutput struct {
	Users      []entity.User
	Total      int64
	Page       int
	PerPage    int
	TotalPages int
}

// ListUsers returns a paginated list of staff with their roles
func (s *UserService) ListUsers(ctx context.Context, input *ListUsersInput) (*ListUsersOutput, error) {
	params := &pagination.PaginationParams{
		Page:    input.Page,
		PerPage: input.PerPage,
	}
	params.Validate()

	users, total, err := s.userRepo.List(ctx, params, input.Search)
	if err != nil {
		return nil, err
	}

	totalPages := int(total) / params.PerPage
	if int(total)%params.PerPage > 0 {
		totalPages++
	}

	return &ListUsersOutput{
		Users:      users,
		Total:      total,
		Page:       params.Page,
		PerPage:    params.PerPage,
		TotalPages: totalPages,
	}, nil
}

// GetUser returns a user by ID with roles and permissions
func (s *UserService) GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetWithRoles(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrNotFound
	}
	return user, nil
}

// CreateUserInput represents an admin creating a staff account
type CreateUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	RoleIDs   []uint
}

// CreateUser creates a staff account and assigns its roles
func (s *UserService) CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error) {
	existing, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Email already registered")
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Username:  usernameFromEmail(input.Email),
		Email:     input.Email,
		Password:  hashedPassword,
		Active:    true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	for _, roleID := range input.RoleIDs {
		role, err := s.roleRepo.GetByID(ctx, roleID)
		if err != nil {
			return nil, err
		}
		if role == nil {
			continue
		}
		if err := s.userRepo.AssignRole(ctx, user.ID, roleID); err != nil {
			return nil, err
		}
	}

	return s.userRepo.GetWithRoles(ctx, user.ID)
}

// UpdateUserRolesInput represents the input for updating user roles
type UpdateUserRolesInput struct {
	UserID  uuid.UUID
	RoleIDs []uint
}

// UpdateUserRoles replaces the roles assigned to a user
func (s *UserService) UpdateUserRoles(ctx context.Context, input *UpdateUserRolesInput) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrNotFound
	}

	userWithRoles, err := s.userRepo.GetWithRoles(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	desiredRoles := make(map[uint]bool)
	for _, roleID := range input.RoleIDs {
		desiredRoles[roleID] = true
	}

	currentRoles := make(map[uint]bool)
	for _, role := range userWithRoles.Roles {
		currentRoles[role.ID] = true
	}

	for _, role := range userWithRoles.Roles {
		if !desiredRoles[role.ID] {
			if err := s.userRepo.RemoveRole(ctx, input.UserID, role.ID); err != nil {
				return nil, err
			}
		}
	}

	for roleID := range desiredRoles {
		if !currentRoles[roleID] {
			role, err := s.roleRepo.GetByID(ctx, roleID)
			if err != nil {
				return nil, err
			}
			if role == nil {
				continue
			}
			if err := s.userRepo.AssignRole(ctx, input.UserID, roleID); err != nil {
				return nil, err
			}
		}
	}

	return s.userRepo.GetWithRoles(ctx, input.UserID)
}

// SetActive enables or disables a staff account. Disabled accounts
// cannot log in but their historical orders and payments remain.
func (s *UserService) SetActive(ctx context.Context, userID uuid.UUID, active bool) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrNotFound
	}

	user.Active = active
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser soft deletes a user
func (s *UserService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.ErrNotFound
	}

	return s.userRepo.Delete(ctx, userID)
}

// ListRoles returns all available roles
func (s *UserService) ListRoles(ctx context.Context) ([]entity.Role, error) {
	return s.roleRepo.List(ctx)
}

// ListPermissions returns all available permissions
func (s *UserService) ListPermissions(ctx context.Context) ([]entity.Permission, error) {
	return s.permissionRepo.List(ctx)
}
