package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ytanya/FreshNoodle/internal/data/entity"
	"github.com/ytanya/FreshNoodle/internal/data/repository"
	"github.com/ytanya/FreshNoodle/internal/dto/request"
	"github.com/ytanya/FreshNoodle/internal/dto/response"
	"github.com/ytanya/FreshNoodle/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error)
	RequestPasswordReset(ctx context.Context, email string) error
	VerifyResetCode(ctx context.Context, email, code string) (bool, error)
	CompletePasswordReset(ctx context.Context, req *request.CompleteResetRequest) error
	AdminResetPassword(ctx context.Context, userID int64, newPassword string) error
	Logout(ctx context.Context) error
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger

	// swappable in tests
	now          func() time.Time
	generateCode func() string
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:         repo,
		config:       config,
		log:          log,
		now:          func() time.Time { return time.Now().UTC() },
		generateCode: utils.GenerateResetCode,
	}
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Find user with roles, inactive included, so every failure below
	// collapses into the same message
	user, err := s.repo.User.FindByUsernameWithRoles(ctx, req.Username, true)
	if err != nil {
		s.log.Error("Failed to find user for login", zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("failed to find user")
	}

	// 3. Absent, inactive and wrong-password all look identical to the caller
	if user == nil || !user.IsActive || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Authentication failure", zap.String("username", req.Username))
		return nil, fmt.Errorf("invalid username or password")
	}

	// 4. Issue token
	token, err := utils.GenerateToken(user.ID, user.Username, user.Email, user.RoleNames(), s.config.JWT)
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.Int64("user_id", user.ID))
		return nil, fmt.Errorf("failed to issue token")
	}

	s.log.Info("User logged in",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username))

	return &response.AuthResponse{
		Token: token,
		User:  response.UserToResponse(user),
	}, nil
}

func (s *authService) CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create user validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Username must be unique across active AND inactive users
	existing, err := s.repo.User.FindByUsername(ctx, req.Username, true)
	if err != nil {
		s.log.Error("Failed to check username", zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("failed to check username")
	}
	if existing != nil {
		return nil, fmt.Errorf("username already exists")
	}

	// 3. Same for email
	existing, err = s.repo.User.FindByEmail(ctx, req.Email, true)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to check email")
	}
	if existing != nil {
		return nil, fmt.Errorf("email already exists")
	}

	// 4. Enforce password policy
	if msg := utils.ValidatePassword(req.Password); msg != "" {
		return nil, errors.New(msg)
	}

	// 5. Only active roles may be newly assigned
	inactiveNames, err := s.repo.Role.FindInactiveNames(ctx, req.RoleIDs)
	if err != nil {
		s.log.Error("Failed to check roles", zap.Error(err), zap.Int64s("role_ids", req.RoleIDs))
		return nil, fmt.Errorf("failed to check roles")
	}
	if len(inactiveNames) > 0 {
		return nil, fmt.Errorf("cannot assign inactive roles: %s", strings.Join(inactiveNames, ", "))
	}

	// 6. Hash password
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password")
	}

	// 7. Persist user
	user := &entity.User{
		Username:     req.Username,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: hash,
		CreatedAt:    s.now(),
		IsActive:     true,
	}
	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to create user")
	}

	// 8. Bulk-insert role assignments in the given order
	if err := s.repo.Role.AssignRoles(ctx, user.ID, req.RoleIDs); err != nil {
		s.log.Error("Failed to assign roles", zap.Error(err), zap.Int64("user_id", user.ID))
		return nil, fmt.Errorf("failed to assign roles")
	}

	s.log.Info("New user created by admin action",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username))

	created, err := s.repo.User.FindByIDWithRoles(ctx, user.ID, true)
	if err != nil || created == nil {
		s.log.Error("Failed to reload created user", zap.Error(err), zap.Int64("user_id", user.ID))
		return nil, fmt.Errorf("failed to create user")
	}

	resp := response.UserToResponse(created)
	return &resp, nil
}

// RequestPasswordReset starts the self-service flow. It reports success even
// for unknown emails so callers cannot probe which accounts exist.
func (s *authService) RequestPasswordReset(ctx context.Context, email string) error {
	// 1. Find user
	user, err := s.repo.User.FindByEmail(ctx, email, false)
	if err != nil {
		s.log.Error("Failed to find user for reset", zap.Error(err), zap.String("email", email))
		return fmt.Errorf("failed to process request")
	}
	if user == nil {
		s.log.Info("Password reset requested for unknown email", zap.String("email", email))
		return nil
	}

	// 2. Create ledger entry
	now := s.now()
	req := &entity.PasswordResetRequest{
		UserID:           user.ID,
		RequestedAt:      now,
		VerificationCode: s.generateCode(),
		ExpiresAt:        now.Add(time.Duration(s.config.Reset.ExpiryMinutes) * time.Minute),
	}
	if err := s.repo.ResetRequest.Create(ctx, req); err != nil {
		s.log.Error("Failed to create reset request", zap.Error(err), zap.Int64("user_id", user.ID))
		return fmt.Errorf("failed to process request")
	}

	// 3. The log sink stands in for the email channel
	s.log.Info("Password reset requested",
		zap.String("email", email),
		zap.String("verification_code", req.VerificationCode),
		zap.Time("expires_at", req.ExpiresAt))

	return nil
}

// VerifyResetCode is a read-only check; the code stays usable until
// completion or expiry.
func (s *authService) VerifyResetCode(ctx context.Context, email, code string) (bool, error) {
	user, err := s.repo.User.FindByEmail(ctx, email, false)
	if err != nil {
		s.log.Error("Failed to find user for code check", zap.Error(err), zap.String("email", email))
		return false, fmt.Errorf("failed to verify code")
	}
	if user == nil {
		return false, nil
	}

	req, err := s.repo.ResetRequest.FindActive(ctx, user.ID, code, s.now())
	if err != nil {
		s.log.Error("Failed to check reset code", zap.Error(err), zap.Int64("user_id", user.ID))
		return false, fmt.Errorf("failed to verify code")
	}

	return req != nil, nil
}

func (s *authService) CompletePasswordReset(ctx context.Context, req *request.CompleteResetRequest) error {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Complete reset validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Re-match user and code
	user, err := s.repo.User.FindByEmail(ctx, req.Email, false)
	if err != nil {
		s.log.Error("Failed to find user for reset completion", zap.Error(err), zap.String("email", req.Email))
		return fmt.Errorf("failed to reset password")
	}
	if user == nil {
		return fmt.Errorf("invalid or expired verification code")
	}

	resetReq, err := s.repo.ResetRequest.FindActive(ctx, user.ID, req.Code, s.now())
	if err != nil {
		s.log.Error("Failed to match reset request", zap.Error(err), zap.Int64("user_id", user.ID))
		return fmt.Errorf("failed to reset password")
	}
	if resetReq == nil {
		return fmt.Errorf("invalid or expired verification code")
	}

	// 3. Enforce password policy before touching any state
	if msg := utils.ValidatePassword(req.NewPassword); msg != "" {
		return errors.New(msg)
	}

	// 4. Hash and persist password + completion as one unit. The conditional
	// completion inside makes sure a concurrent call cannot also win.
	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return fmt.Errorf("failed to process password")
	}

	err = s.repo.ResetRequest.CompleteWithNewPassword(ctx, resetReq.ID, user.ID, hash, s.now())
	if errors.Is(err, repository.ErrRequestNotCompletable) {
		s.log.Warn("Reset request completed concurrently", zap.Int64("request_id", resetReq.ID))
		return fmt.Errorf("invalid or expired verification code")
	}
	if err != nil {
		s.log.Error("Failed to complete reset", zap.Error(err), zap.Int64("request_id", resetReq.ID))
		return fmt.Errorf("failed to reset password")
	}

	s.log.Info("Password reset completed",
		zap.String("email", req.Email),
		zap.Int64("user_id", user.ID))

	return nil
}

// AdminResetPassword bypasses the code ledger and force-completes every
// outstanding request of the user, verified or not.
func (s *authService) AdminResetPassword(ctx context.Context, userID int64, newPassword string) error {
	// 1. Target must exist; admins see inactive users too
	user, err := s.repo.User.FindByID(ctx, userID, true)
	if err != nil {
		s.log.Error("Failed to find user for admin reset", zap.Error(err), zap.Int64("user_id", userID))
		return fmt.Errorf("failed to reset password")
	}
	if user == nil {
		return fmt.Errorf("user not found")
	}

	// 2. Enforce password policy
	if msg := utils.ValidatePassword(newPassword); msg != "" {
		return errors.New(msg)
	}

	// 3. Store new hash
	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return fmt.Errorf("failed to process password")
	}
	if err := s.repo.User.UpdatePassword(ctx, userID, hash); err != nil {
		s.log.Error("Failed to store password", zap.Error(err), zap.Int64("user_id", userID))
		return fmt.Errorf("failed to reset password")
	}

	// 4. Invalidate any pending self-service flow
	if err := s.repo.ResetRequest.CompleteAllForUser(ctx, userID, s.now()); err != nil {
		s.log.Error("Failed to complete outstanding requests", zap.Error(err), zap.Int64("user_id", userID))
		return fmt.Errorf("failed to reset password")
	}

	s.log.Info("Password reset by admin action", zap.Int64("user_id", userID))
	return nil
}

// Logout is a server-side no-op: tokens are stateless and stay valid until
// expiry. The endpoint exists for client-side state cleanup.
func (s *authService) Logout(ctx context.Context) error {
	s.log.Info("User logged out")
	return nil
}
