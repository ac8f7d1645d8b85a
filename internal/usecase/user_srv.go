package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/ytanya/FreshNoodle/internal/data/repository"
	"github.com/ytanya/FreshNoodle/internal/dto/request"
	"github.com/ytanya/FreshNoodle/internal/dto/response"
	"github.com/ytanya/FreshNoodle/pkg/utils"

	"go.uber.org/zap"
)

type UserService interface {
	GetProfile(ctx context.Context, userID int64) (*response.UserResponse, error)
	GetAllUsers(ctx context.Context) ([]response.UserResponse, error)
	UpdateUser(ctx context.Context, userID int64, req *request.UpdateUserRequest) error
	UpdateUserRoles(ctx context.Context, userID int64, roleIDs []int64) error
	GetRoles(ctx context.Context) ([]response.RoleResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, roleRepo repository.RoleRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		roleRepo: roleRepo,
		log:      log,
	}
}

func (us *userService) GetProfile(ctx context.Context, userID int64) (*response.UserResponse, error) {
	user, err := us.userRepo.FindByIDWithRoles(ctx, userID, false)
	if err != nil {
		us.log.Error("Failed to get profile", zap.Error(err), zap.Int64("user_id", userID))
		return nil, fmt.Errorf("failed to get profile")
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

// GetAllUsers returns every user, inactive ones included. Administration
// screens need the full picture.
func (us *userService) GetAllUsers(ctx context.Context) ([]response.UserResponse, error) {
	users, err := us.userRepo.FindAllWithRoles(ctx)
	if err != nil {
		us.log.Error("Failed to get all users", zap.Error(err))
		return nil, fmt.Errorf("failed to get users")
	}

	responses := make([]response.UserResponse, len(users))
	for i, user := range users {
		responses[i] = response.UserToResponse(user)
	}

	return responses, nil
}

func (us *userService) UpdateUser(ctx context.Context, userID int64, req *request.UpdateUserRequest) error {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		us.log.Warn("Update user validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Load target, inactive included
	user, err := us.userRepo.FindByID(ctx, userID, true)
	if err != nil {
		us.log.Error("Failed to find user", zap.Error(err), zap.Int64("user_id", userID))
		return fmt.Errorf("failed to update user")
	}
	if user == nil {
		return fmt.Errorf("user not found")
	}

	// 3. Re-check email uniqueness when it changes
	if user.Email != req.Email {
		existing, err := us.userRepo.FindByEmail(ctx, req.Email, true)
		if err != nil {
			us.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
			return fmt.Errorf("failed to update user")
		}
		if existing != nil {
			return fmt.Errorf("email already exists")
		}
	}

	// 4. Same for username
	if user.Username != req.Username {
		existing, err := us.userRepo.FindByUsername(ctx, req.Username, true)
		if err != nil {
			us.log.Error("Failed to check username", zap.Error(err), zap.String("username", req.Username))
			return fmt.Errorf("failed to update user")
		}
		if existing != nil {
			return fmt.Errorf("username already exists")
		}
	}

	// 5. Apply and persist
	user.Username = req.Username
	user.Email = req.Email
	user.Phone = req.Phone
	user.IsActive = req.IsActive

	if err := us.userRepo.Update(ctx, user); err != nil {
		us.log.Error("Failed to update user", zap.Error(err), zap.Int64("user_id", userID))
		return fmt.Errorf("failed to update user")
	}

	us.log.Info("User updated", zap.Int64("user_id", userID))
	return nil
}

func (us *userService) UpdateUserRoles(ctx context.Context, userID int64, roleIDs []int64) error {
	// 1. Target must exist
	user, err := us.userRepo.FindByID(ctx, userID, true)
	if err != nil {
		us.log.Error("Failed to find user", zap.Error(err), zap.Int64("user_id", userID))
		return fmt.Errorf("failed to update roles")
	}
	if user == nil {
		return fmt.Errorf("user not found")
	}

	// 2. Only active roles may be newly assigned
	inactiveNames, err := us.roleRepo.FindInactiveNames(ctx, roleIDs)
	if err != nil {
		us.log.Error("Failed to check roles", zap.Error(err), zap.Int64s("role_ids", roleIDs))
		return fmt.Errorf("failed to update roles")
	}
	if len(inactiveNames) > 0 {
		return fmt.Errorf("cannot assign inactive roles: %s", strings.Join(inactiveNames, ", "))
	}

	// 3. Replace the assignment set in the given order
	if err := us.roleRepo.ReplaceForUser(ctx, userID, roleIDs); err != nil {
		us.log.Error("Failed to replace roles", zap.Error(err), zap.Int64("user_id", userID))
		return fmt.Errorf("failed to update roles")
	}

	us.log.Info("User roles updated",
		zap.Int64("user_id", userID),
		zap.Int64s("role_ids", roleIDs))
	return nil
}

func (us *userService) GetRoles(ctx context.Context) ([]response.RoleResponse, error) {
	roles, err := us.roleRepo.FindAll(ctx, true)
	if err != nil {
		us.log.Error("Failed to get roles", zap.Error(err))
		return nil, fmt.Errorf("failed to get roles")
	}

	responses := make([]response.RoleResponse, len(roles))
	for i, role := range roles {
		responses[i] = response.RoleToResponse(role)
	}

	return responses, nil
}
