package usecase

import (
	"context"
	"testing"

	"github.com/ytanya/FreshNoodle/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestUserService(store *fakeStore) UserService {
	return NewUserService(store, store, zap.NewNop())
}

func TestUserService_UpdateUser(t *testing.T) {
	store := newFakeStore()
	svc := newTestUserService(store)

	user := seedUser(t, store, "bob", "bob@x.com", "Str0ng!Pass", true)
	seedUser(t, store, "carol", "carol@x.com", "Str0ng!Pass", false)

	err := svc.UpdateUser(context.Background(), user.ID, &request.UpdateUserRequest{
		Username: "bobby",
		Email:    "bobby@x.com",
		IsActive: false,
	})
	require.NoError(t, err)

	stored, err := store.FindByID(context.Background(), user.ID, true)
	require.NoError(t, err)
	assert.Equal(t, "bobby", stored.Username)
	assert.Equal(t, "bobby@x.com", stored.Email)
	assert.False(t, stored.IsActive)
}

func TestUserService_UpdateUser_Rejections(t *testing.T) {
	store := newFakeStore()
	svc := newTestUserService(store)

	user := seedUser(t, store, "bob", "bob@x.com", "Str0ng!Pass", true)
	seedUser(t, store, "carol", "carol@x.com", "Str0ng!Pass", false)

	tests := []struct {
		name    string
		userID  int64
		req     *request.UpdateUserRequest
		wantErr string
	}{
		{
			name:    "unknown user",
			userID:  999,
			req:     &request.UpdateUserRequest{Username: "ghost", Email: "ghost@x.com"},
			wantErr: "user not found",
		},
		{
			name:   "email taken by inactive user",
			userID: user.ID,
			req:    &request.UpdateUserRequest{Username: "bob", Email: "carol@x.com", IsActive: true},
			// uniqueness spans deactivated accounts too
			wantErr: "email already exists",
		},
		{
			name:    "username taken by inactive user",
			userID:  user.ID,
			req:     &request.UpdateUserRequest{Username: "carol", Email: "bob@x.com", IsActive: true},
			wantErr: "username already exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.UpdateUser(context.Background(), tt.userID, tt.req)
			require.Error(t, err)
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestUserService_UpdateUserRoles(t *testing.T) {
	store := newFakeStore()
	svc := newTestUserService(store)

	user := seedUser(t, store, "bob", "bob@x.com", "Str0ng!Pass", true)
	seedRole(store, 1, "Admin", true)
	seedRole(store, 2, "Accounting", true)
	seedRole(store, 3, "Archived", false)

	require.NoError(t, store.AssignRoles(context.Background(), user.ID, []int64{1}))

	// replace, not append; order preserved
	require.NoError(t, svc.UpdateUserRoles(context.Background(), user.ID, []int64{2, 1}))

	stored, err := store.FindByIDWithRoles(context.Background(), user.ID, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"Accounting", "Admin"}, stored.RoleNames())

	// inactive roles may not be newly assigned
	err = svc.UpdateUserRoles(context.Background(), user.ID, []int64{1, 3})
	require.Error(t, err)
	assert.EqualError(t, err, "cannot assign inactive roles: Archived")

	// assignment set untouched on failure
	stored, err = store.FindByIDWithRoles(context.Background(), user.ID, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"Accounting", "Admin"}, stored.RoleNames())

	err = svc.UpdateUserRoles(context.Background(), 999, []int64{1})
	require.Error(t, err)
	assert.EqualError(t, err, "user not found")
}

func TestUserService_GetProfile(t *testing.T) {
	store := newFakeStore()
	svc := newTestUserService(store)

	user := seedUser(t, store, "bob", "bob@x.com", "Str0ng!Pass", true)
	seedRole(store, 1, "Admin", true)
	require.NoError(t, store.AssignRoles(context.Background(), user.ID, []int64{1}))

	profile, err := svc.GetProfile(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob", profile.Username)
	assert.Equal(t, []string{"Admin"}, profile.Roles)

	_, err = svc.GetProfile(context.Background(), 999)
	require.Error(t, err)
	assert.EqualError(t, err, "user not found")
}
