package usecase

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/ytanya/FreshNoodle/internal/data/entity"
	"github.com/ytanya/FreshNoodle/internal/data/repository"
	"github.com/ytanya/FreshNoodle/internal/dto/request"
	"github.com/ytanya/FreshNoodle/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeStore is an in-memory stand-in for the user, role and reset-request
// repositories. The completion CAS runs under one mutex, mirroring the
// row-level atomicity the real conditional UPDATE gives.
type fakeStore struct {
	mu sync.Mutex

	nextUserID  int64
	users       map[int64]*entity.User
	roles       map[int64]*entity.Role
	assignments map[int64][]int64

	nextRequestID int64
	requests      []*entity.PasswordResetRequest
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:       make(map[int64]*entity.User),
		roles:       make(map[int64]*entity.Role),
		assignments: make(map[int64][]int64),
	}
}

// ---------------- UserRepository ----------------

func (f *fakeStore) Create(ctx context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextUserID++
	user.ID = f.nextUserID
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeStore) FindByID(ctx context.Context, id int64, includeInactive bool) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok || (!includeInactive && !user.IsActive) {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (f *fakeStore) FindByUsername(ctx context.Context, username string, includeInactive bool) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Username == username {
			if !includeInactive && !user.IsActive {
				return nil, nil
			}
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) FindByEmail(ctx context.Context, email string, includeInactive bool) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Email == email {
			if !includeInactive && !user.IsActive {
				return nil, nil
			}
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) FindByUsernameWithRoles(ctx context.Context, username string, includeInactive bool) (*entity.User, error) {
	user, err := f.FindByUsername(ctx, username, includeInactive)
	if err != nil || user == nil {
		return user, err
	}
	f.attachRoles(user)
	return user, nil
}

func (f *fakeStore) FindByIDWithRoles(ctx context.Context, id int64, includeInactive bool) (*entity.User, error) {
	user, err := f.FindByID(ctx, id, includeInactive)
	if err != nil || user == nil {
		return user, err
	}
	f.attachRoles(user)
	return user, nil
}

func (f *fakeStore) FindAllWithRoles(ctx context.Context) ([]*entity.User, error) {
	f.mu.Lock()
	ids := make([]int64, 0, len(f.users))
	for id := range f.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	users := make([]*entity.User, 0, len(ids))
	for _, id := range ids {
		copied := *f.users[id]
		users = append(users, &copied)
	}
	f.mu.Unlock()

	for _, user := range users {
		f.attachRoles(user)
	}
	return users, nil
}

func (f *fakeStore) Update(ctx context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.users[user.ID]
	if !ok {
		return nil
	}
	stored.Username = user.Username
	stored.Email = user.Email
	stored.Phone = user.Phone
	stored.IsActive = user.IsActive
	return nil
}

func (f *fakeStore) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if user, ok := f.users[userID]; ok {
		user.PasswordHash = passwordHash
	}
	return nil
}

func (f *fakeStore) attachRoles(user *entity.User) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user.Roles = nil
	for _, roleID := range f.assignments[user.ID] {
		if role, ok := f.roles[roleID]; ok {
			user.Roles = append(user.Roles, *role)
		}
	}
}

// ---------------- RoleRepository ----------------

func (f *fakeStore) FindAll(ctx context.Context, includeInactive bool) ([]*entity.Role, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var roles []*entity.Role
	for _, role := range f.roles {
		if !includeInactive && !role.IsActive {
			continue
		}
		copied := *role
		roles = append(roles, &copied)
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i].ID < roles[j].ID })
	return roles, nil
}

func (f *fakeStore) FindInactiveNames(ctx context.Context, roleIDs []int64) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var names []string
	for _, id := range roleIDs {
		if role, ok := f.roles[id]; ok && !role.IsActive {
			names = append(names, role.Name)
		}
	}
	return names, nil
}

func (f *fakeStore) AssignRoles(ctx context.Context, userID int64, roleIDs []int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.assignments[userID] = append(f.assignments[userID], roleIDs...)
	return nil
}

func (f *fakeStore) ReplaceForUser(ctx context.Context, userID int64, roleIDs []int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.assignments[userID] = append([]int64(nil), roleIDs...)
	return nil
}

// ---------------- ResetRequestRepository ----------------

func (f *fakeStore) CreateRequest(ctx context.Context, request *entity.PasswordResetRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextRequestID++
	request.ID = f.nextRequestID
	stored := *request
	f.requests = append(f.requests, &stored)
	return nil
}

func (f *fakeStore) FindActive(ctx context.Context, userID int64, code string, now time.Time) (*entity.PasswordResetRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var best *entity.PasswordResetRequest
	for _, req := range f.requests {
		if req.UserID != userID || req.VerificationCode != code || req.IsCompleted || !req.ExpiresAt.After(now) {
			continue
		}
		if best == nil || req.RequestedAt.After(best.RequestedAt) {
			best = req
		}
	}
	if best == nil {
		return nil, nil
	}
	copied := *best
	return &copied, nil
}

func (f *fakeStore) CompleteWithNewPassword(ctx context.Context, requestID, userID int64, passwordHash string, now time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, req := range f.requests {
		if req.ID != requestID {
			continue
		}
		if req.IsCompleted {
			return repository.ErrRequestNotCompletable
		}
		req.IsCompleted = true
		completedAt := now
		req.CompletedAt = &completedAt
		if user, ok := f.users[userID]; ok {
			user.PasswordHash = passwordHash
		}
		return nil
	}
	return repository.ErrRequestNotCompletable
}

func (f *fakeStore) CompleteAllForUser(ctx context.Context, userID int64, now time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, req := range f.requests {
		if req.UserID == userID && !req.IsCompleted {
			req.IsCompleted = true
			completedAt := now
			req.CompletedAt = &completedAt
		}
	}
	return nil
}

// resetAdapter maps the ResetRequestRepository interface onto fakeStore,
// whose Create is already taken by the user side.
type resetAdapter struct{ *fakeStore }

func (a resetAdapter) Create(ctx context.Context, request *entity.PasswordResetRequest) error {
	return a.CreateRequest(ctx, request)
}

// ---------------- helpers ----------------

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestAuthService(store *fakeStore) (*authService, *testClock) {
	clock := &testClock{now: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)}

	config := &utils.Config{
		JWT: utils.JWTConfig{
			Secret:      "test-secret-key",
			ExpiryHours: 24,
			Issuer:      "FreshNoodleAPI",
			Audience:    "FreshNoodleClient",
		},
		Reset: utils.ResetConfig{ExpiryMinutes: 15},
	}

	svc := &authService{
		repo: &repository.Repository{
			User:         store,
			Role:         store,
			ResetRequest: resetAdapter{store},
		},
		config:       config,
		log:          zap.NewNop(),
		now:          clock.Now,
		generateCode: func() string { return "482913" },
	}
	return svc, clock
}

func seedUser(t *testing.T, store *fakeStore, username, email, password string, active bool) *entity.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)

	user := &entity.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		IsActive:     active,
	}
	require.NoError(t, store.Create(context.Background(), user))
	return user
}

func seedRole(store *fakeStore, id int64, name string, active bool) {
	store.roles[id] = &entity.Role{ID: id, Name: name, IsActive: active}
}

// ---------------- Login ----------------

func TestAuthService_Login(t *testing.T) {
	store := newFakeStore()
	svc, _ := newTestAuthService(store)

	user := seedUser(t, store, "bob", "bob@x.com", "Str0ng!Pass", true)
	seedRole(store, 1, "Admin", true)
	seedRole(store, 2, "Accounting", true)
	require.NoError(t, store.AssignRoles(context.Background(), user.ID, []int64{2, 1}))

	resp, err := svc.Login(context.Background(), &request.LoginRequest{
		Username: "bob",
		Password: "Str0ng!Pass",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	assert.Equal(t, user.ID, resp.User.ID)
	assert.Equal(t, "bob", resp.User.Username)
	assert.Equal(t, []string{"Accounting", "Admin"}, resp.User.Roles)

	claims, err := utils.ParseToken(resp.Token, svc.config.JWT)
	require.NoError(t, err)
	tokenUserID, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, user.ID, tokenUserID)
	assert.Equal(t, "bob", claims.Username)
	assert.Equal(t, "bob@x.com", claims.Email)
	assert.Equal(t, []string{"Accounting", "Admin"}, claims.Roles)
	assert.NotEmpty(t, claims.ID)
}

func TestAuthService_Login_Failures(t *testing.T) {
	store := newFakeStore()
	svc, _ := newTestAuthService(store)

	seedUser(t, store, "bob", "bob@x.com", "Str0ng!Pass", true)
	seedUser(t, store, "carol", "carol@x.com", "Str0ng!Pass", false)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"unknown username", "ghost", "Str0ng!Pass"},
		{"wrong password", "bob", "Wr0ng!Pass"},
		{"deactivated account", "carol", "Str0ng!Pass"},
	}

	// Every failure mode collapses into the same message
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), &request.LoginRequest{
				Username: tt.username,
				Password: tt.password,
			})
			require.Error(t, err)
			assert.EqualError(t, err, "invalid username or password")
		})
	}
}

// ---------------- CreateUser ----------------

func TestAuthService_CreateUser(t *testing.T) {
	store := newFakeStore()
	svc, _ := newTestAuthService(store)

	seedRole(store, 1, "Admin", true)
	seedRole(store, 2, "Accounting", true)

	resp, err := svc.CreateUser(context.Background(), &request.CreateUserRequest{
		Username: "bob",
		Email:    "bob@x.com",
		Password: "Str0ng!Pass",
		RoleIDs:  []int64{2, 1},
	})
	require.NoError(t, err)

	assert.Equal(t, "bob", resp.Username)
	assert.True(t, resp.IsActive)
	assert.Equal(t, []string{"Accounting", "Admin"}, resp.Roles)

	stored, err := store.FindByID(context.Background(), resp.ID, false)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "Str0ng!Pass", stored.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("Str0ng!Pass", stored.PasswordHash))
}

func TestAuthService_CreateUser_Rejections(t *testing.T) {
	store := newFakeStore()
	svc, _ := newTestAuthService(store)

	seedRole(store, 1, "Admin", true)
	seedRole(store, 3, "Archived", false)

	// taken by a deactivated user; uniqueness still applies
	seedUser(t, store, "bob", "bob@x.com", "Str0ng!Pass", false)

	tests := []struct {
		name    string
		req     *request.CreateUserRequest
		wantErr string
	}{
		{
			name: "username taken by inactive user",
			req: &request.CreateUserRequest{
				Username: "bob", Email: "new@x.com", Password: "Str0ng!Pass",
			},
			wantErr: "username already exists",
		},
		{
			name: "email taken by inactive user",
			req: &request.CreateUserRequest{
				Username: "newbob", Email: "bob@x.com", Password: "Str0ng!Pass",
			},
			wantErr: "email already exists",
		},
		{
			name: "weak password",
			req: &request.CreateUserRequest{
				Username: "newbob", Email: "new@x.com", Password: "weakpass",
			},
			wantErr: "Password must contain at least one uppercase letter.",
		},
		{
			name: "inactive role",
			req: &request.CreateUserRequest{
				Username: "newbob", Email: "new@x.com", Password: "Str0ng!Pass",
				RoleIDs: []int64{1, 3},
			},
			wantErr: "cannot assign inactive roles: Archived",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateUser(context.Background(), tt.req)
			require.Error(t, err)
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

// ---------------- password reset flow ----------------

func TestAuthService_RequestPasswordReset(t *testing.T) {
	store := newFakeStore()
	svc, clock := newTestAuthService(store)

	user := seedUser(t, store, "bob", "bob@x.com", "Str0ng!Pass", true)

	require.NoError(t, svc.RequestPasswordReset(context.Background(), "bob@x.com"))

	require.Len(t, store.requests, 1)
	req := store.requests[0]
	assert.Equal(t, user.ID, req.UserID)
	assert.Equal(t, "482913", req.VerificationCode)
	assert.Equal(t, clock.Now(), req.RequestedAt)
	assert.Equal(t, clock.Now().Add(15*time.Minute), req.ExpiresAt)
	assert.False(t, req.IsCompleted)
}

func TestAuthService_RequestPasswordReset_UnknownEmail(t *testing.T) {
	store := newFakeStore()
	svc, _ := newTestAuthService(store)

	// succeeds without leaving a trace, so callers cannot probe for accounts
	require.NoError(t, svc.RequestPasswordReset(context.Background(), "nobody@x.com"))
	assert.Empty(t, store.requests)
}

func TestAuthService_VerifyResetCode(t *testing.T) {
	store := newFakeStore()
	svc, clock := newTestAuthService(store)

	seedUser(t, store, "bob", "bob@x.com", "Str0ng!Pass", true)
	require.NoError(t, svc.RequestPasswordReset(context.Background(), "bob@x.com"))

	valid, err := svc.VerifyResetCode(context.Background(), "bob@x.com", "482913")
	require.NoError(t, err)
	assert.True(t, valid)

	// read-only: the code survives verification
	valid, err = svc.VerifyResetCode(context.Background(), "bob@x.com", "482913")
	require.NoError(t, err)
	assert.True(t, valid)

	valid, err = svc.VerifyResetCode(context.Background(), "bob@x.com", "000000")
	require.NoError(t, err)
	assert.False(t, valid)

	valid, err = svc.VerifyResetCode(context.Background(), "nobody@x.com", "482913")
	require.NoError(t, err)
	assert.False(t, valid)

	// 15-minute window passed
	clock.Advance(16 * time.Minute)
	valid, err = svc.VerifyResetCode(context.Background(), "bob@x.com", "482913")
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestAuthService_CompletePasswordReset(t *testing.T) {
	store := newFakeStore()
	svc, _ := newTestAuthService(store)

	user := seedUser(t, store, "bob", "bob@x.com", "Str0ng!Pass", true)
	require.NoError(t, svc.RequestPasswordReset(context.Background(), "bob@x.com"))

	err := svc.CompletePasswordReset(context.Background(), &request.CompleteResetRequest{
		Email:       "bob@x.com",
		Code:        "482913",
		NewPassword: "N3w!Secret",
	})
	require.NoError(t, err)

	stored, err := store.FindByID(context.Background(), user.ID, true)
	require.NoError(t, err)
	assert.True(t, utils.CheckPasswordHash("N3w!Secret", stored.PasswordHash))
	assert.False(t, utils.CheckPasswordHash("Str0ng!Pass", stored.PasswordHash))

	// the code is consumed; replay must fail
	err = svc.CompletePasswordReset(context.Background(), &request.CompleteResetRequest{
		Email:       "bob@x.com",
		Code:        "482913",
		NewPassword: "An0ther!Pass",
	})
	require.Error(t, err)
	assert.EqualError(t, err, "invalid or expired verification code")
	assert.True(t, utils.CheckPasswordHash("N3w!Secret", store.users[user.ID].PasswordHash))
}

func TestAuthService_CompletePasswordReset_WeakPasswordLeavesCodeUsable(t *testing.T) {
	store := newFakeStore()
	svc, _ := newTestAuthService(store)

	seedUser(t, store, "bob", "bob@x.com", "Str0ng!Pass", true)
	require.NoError(t, svc.RequestPasswordReset(context.Background(), "bob@x.com"))

	err := svc.CompletePasswordReset(context.Background(), &request.CompleteResetRequest{
		Email:       "bob@x.com",
		Code:        "482913",
		NewPassword: "weakpass",
	})
	require.Error(t, err)
	assert.EqualError(t, err, "Password must contain at least one uppercase letter.")

	// the failed attempt must not burn the code
	valid, err := svc.VerifyResetCode(context.Background(), "bob@x.com", "482913")
	require.NoError(t, err)
	assert.True(t, valid)
}

func TestAuthService_CompletePasswordReset_Expired(t *testing.T) {
	store := newFakeStore()
	svc, clock := newTestAuthService(store)

	seedUser(t, store, "bob", "bob@x.com", "Str0ng!Pass", true)
	require.NoError(t, svc.RequestPasswordReset(context.Background(), "bob@x.com"))

	clock.Advance(16 * time.Minute)

	err := svc.CompletePasswordReset(context.Background(), &request.CompleteResetRequest{
		Email:       "bob@x.com",
		Code:        "482913",
		NewPassword: "N3w!Secret",
	})
	require.Error(t, err)
	assert.EqualError(t, err, "invalid or expired verification code")
}

func TestAuthService_CompletePasswordReset_ConcurrentSingleWinner(t *testing.T) {
	store := newFakeStore()
	svc, _ := newTestAuthService(store)

	seedUser(t, store, "bob", "bob@x.com", "Str0ng!Pass", true)
	require.NoError(t, svc.RequestPasswordReset(context.Background(), "bob@x.com"))

	const attempts = 8
	errs := make([]error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = svc.CompletePasswordReset(context.Background(), &request.CompleteResetRequest{
				Email:       "bob@x.com",
				Code:        "482913",
				NewPassword: "N3w!Secret",
			})
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			assert.EqualError(t, err, "invalid or expired verification code")
		}
	}
	assert.Equal(t, 1, winners)
}

// ---------------- admin reset ----------------

func TestAuthService_AdminResetPassword(t *testing.T) {
	store := newFakeStore()
	svc, _ := newTestAuthService(store)

	user := seedUser(t, store, "bob", "bob@x.com", "Str0ng!Pass", true)

	// two outstanding self-service requests
	require.NoError(t, svc.RequestPasswordReset(context.Background(), "bob@x.com"))
	require.NoError(t, svc.RequestPasswordReset(context.Background(), "bob@x.com"))
	require.Len(t, store.requests, 2)

	require.NoError(t, svc.AdminResetPassword(context.Background(), user.ID, "Adm1n!Reset"))

	stored, err := store.FindByID(context.Background(), user.ID, true)
	require.NoError(t, err)
	assert.True(t, utils.CheckPasswordHash("Adm1n!Reset", stored.PasswordHash))

	// every outstanding request got force-completed
	for _, req := range store.requests {
		assert.True(t, req.IsCompleted)
		assert.NotNil(t, req.CompletedAt)
	}

	// the old self-service code is dead
	valid, err := svc.VerifyResetCode(context.Background(), "bob@x.com", "482913")
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestAuthService_AdminResetPassword_Rejections(t *testing.T) {
	store := newFakeStore()
	svc, _ := newTestAuthService(store)

	user := seedUser(t, store, "bob", "bob@x.com", "Str0ng!Pass", true)

	err := svc.AdminResetPassword(context.Background(), 999, "Adm1n!Reset")
	require.Error(t, err)
	assert.EqualError(t, err, "user not found")

	err = svc.AdminResetPassword(context.Background(), user.ID, "short")
	require.Error(t, err)
	assert.EqualError(t, err, "Password must be at least 8 characters long.")

	// untouched on failure
	stored, findErr := store.FindByID(context.Background(), user.ID, true)
	require.NoError(t, findErr)
	assert.True(t, utils.CheckPasswordHash("Str0ng!Pass", stored.PasswordHash))
}

func TestAuthService_AdminResetPassword_InactiveUser(t *testing.T) {
	store := newFakeStore()
	svc, _ := newTestAuthService(store)

	user := seedUser(t, store, "carol", "carol@x.com", "Str0ng!Pass", false)

	// admins may reset deactivated accounts
	require.NoError(t, svc.AdminResetPassword(context.Background(), user.ID, "Adm1n!Reset"))

	stored, err := store.FindByID(context.Background(), user.ID, true)
	require.NoError(t, err)
	assert.True(t, utils.CheckPasswordHash("Adm1n!Reset", stored.PasswordHash))
}
