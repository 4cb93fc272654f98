package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/api"
	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/shared/apperr"
	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/store"
)

type mockUsersBackend struct {
	mock.Mock
}

func (m *mockUsersBackend) ListUsers(ctx context.Context) ([]api.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]api.User), args.Error(1)
}

func (m *mockUsersBackend) UpdateUserRole(ctx context.Context, id api.ID, role string) (api.User, error) {
	args := m.Called(ctx, id, role)
	return args.Get(0).(api.User), args.Error(1)
}

func (m *mockUsersBackend) DeleteUser(ctx context.Context, id api.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func seedUsers(t *testing.T, b *mockUsersBackend, s *store.UsersSlice) {
	t.Helper()
	b.On("ListUsers", mock.Anything).Return([]api.User{
		{ID: "1", FirstName: "Wajd", Email: "admin@example.com", Role: "admin", CreatedAt: "2026-03-01T00:00:00Z"},
		{ID: "2", FirstName: "Lina", Email: "lina@example.com", Role: "user", CreatedAt: "2026-05-10T00:00:00Z"},
	}, nil).Once()
	assert.NoError(t, s.FetchAll(context.Background()))
}

func TestUsersUpdateRoleMergesPartialEcho(t *testing.T) {
	b := new(mockUsersBackend)
	s := store.NewUsersSlice(b)
	seedUsers(t, b, s)

	// Backend echoes only {id, role}; the rest of the user must survive.
	b.On("UpdateUserRole", mock.Anything, api.ID("2"), "admin").
		Return(api.User{ID: "2", Role: "admin"}, nil).Once()

	assert.NoError(t, s.UpdateRole(context.Background(), "2", "admin"))

	snap := s.Snapshot()
	assert.Equal(t, "admin", snap.Items[1].Role)
	assert.Equal(t, "Lina", snap.Items[1].FirstName)
	assert.Equal(t, "lina@example.com", snap.Items[1].Email)
	assert.Equal(t, "2026-05-10T00:00:00Z", snap.Items[1].CreatedAt)
}

func TestUsersUpdateRoleFailureKeepsRole(t *testing.T) {
	b := new(mockUsersBackend)
	s := store.NewUsersSlice(b)
	seedUsers(t, b, s)

	b.On("UpdateUserRole", mock.Anything, api.ID("2"), "admin").
		Return(api.User{}, apperr.ForbiddenErr("You cannot change this role.")).Once()

	assert.Error(t, s.UpdateRole(context.Background(), "2", "admin"))

	snap := s.Snapshot()
	assert.Equal(t, "user", snap.Items[1].Role)
	assert.Equal(t, "You cannot change this role.", snap.Update.Err)
}

func TestUsersDeleteRemovesItem(t *testing.T) {
	b := new(mockUsersBackend)
	s := store.NewUsersSlice(b)
	seedUsers(t, b, s)

	b.On("DeleteUser", mock.Anything, api.ID("1")).Return(nil).Once()
	assert.NoError(t, s.Delete(context.Background(), "1"))

	snap := s.Snapshot()
	assert.Len(t, snap.Items, 1)
	assert.Equal(t, api.ID("2"), snap.Items[0].ID)
}
