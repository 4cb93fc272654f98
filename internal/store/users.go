package store

import (
	"context"
	"sync"

	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/api"
)

type UsersBackend interface {
	ListUsers(ctx context.Context) ([]api.User, error)
	UpdateUserRole(ctx context.Context, id api.ID, role string) (api.User, error)
	DeleteUser(ctx context.Context, id api.ID) error
}

// UsersSlice: users are never created from the console; only role changes
// and deletes mutate the list.
type UsersSlice struct {
	mu      sync.Mutex
	backend UsersBackend

	items []api.User

	list OpState
	upd  OpState
	del  OpState
}

func NewUsersSlice(b UsersBackend) *UsersSlice {
	return &UsersSlice{
		backend: b,
		list:    OpState{Status: StatusIdle},
		upd:     OpState{Status: StatusIdle},
		del:     OpState{Status: StatusIdle},
	}
}

type UsersSnapshot struct {
	Items  []api.User
	List   OpState
	Update OpState
	Delete OpState
}

func (s *UsersSlice) Snapshot() UsersSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]api.User, len(s.items))
	copy(items, s.items)
	return UsersSnapshot{Items: items, List: s.list, Update: s.upd, Delete: s.del}
}

func (s *UsersSlice) FetchAll(ctx context.Context) error {
	s.mu.Lock()
	if s.list.Loading() {
		s.mu.Unlock()
		return ErrInFlight
	}
	s.list = OpState{Status: StatusLoading}
	s.mu.Unlock()

	items, err := s.backend.ListUsers(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		if canceled(err) {
			s.list = OpState{Status: StatusIdle}
			return err
		}
		s.list = OpState{Status: StatusFailed, Err: errMessage(err)}
		return err
	}
	s.items = items
	s.list = OpState{Status: StatusSucceeded}
	return nil
}

// UpdateRole merges the server-returned user over the stored one (the
// backend sometimes echoes only {id, role}); unknown users are inserted at
// the head.
func (s *UsersSlice) UpdateRole(ctx context.Context, id api.ID, role string) error {
	s.mu.Lock()
	if s.upd.Loading() {
		s.mu.Unlock()
		return ErrInFlight
	}
	s.upd = OpState{Status: StatusLoading}
	s.mu.Unlock()

	updated, err := s.backend.UpdateUserRole(ctx, id, role)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		if canceled(err) {
			s.upd = OpState{Status: StatusIdle}
			return err
		}
		s.upd = OpState{Status: StatusFailed, Err: errMessage(err)}
		return err
	}

	if idx := s.indexOf(updated.ID); idx >= 0 {
		s.items[idx] = mergeUser(s.items[idx], updated)
	} else {
		s.items = append([]api.User{updated}, s.items...)
	}
	s.upd = OpState{Status: StatusSucceeded}
	return nil
}

func (s *UsersSlice) Delete(ctx context.Context, id api.ID) error {
	s.mu.Lock()
	if s.del.Loading() {
		s.mu.Unlock()
		return ErrInFlight
	}
	s.del = OpState{Status: StatusLoading}
	s.mu.Unlock()

	err := s.backend.DeleteUser(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		if canceled(err) {
			s.del = OpState{Status: StatusIdle}
			return err
		}
		s.del = OpState{Status: StatusFailed, Err: errMessage(err)}
		return err
	}

	if idx := s.indexOf(id); idx >= 0 {
		s.items = append(s.items[:idx], s.items[idx+1:]...)
	}
	s.del = OpState{Status: StatusSucceeded}
	return nil
}

func (s *UsersSlice) ClearErrors() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, op := range []*OpState{&s.list, &s.upd, &s.del} {
		if op.Status == StatusFailed {
			*op = OpState{Status: StatusIdle}
		}
	}
}

func (s *UsersSlice) indexOf(id api.ID) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

// mergeUser: güncellenen alanlar (en azından role) eskiyle birleşir.
func mergeUser(base, updated api.User) api.User {
	out := base
	if updated.FirstName != "" {
		out.FirstName = updated.FirstName
	}
	if updated.LastName != "" {
		out.LastName = updated.LastName
	}
	if updated.Email != "" {
		out.Email = updated.Email
	}
	if updated.Role != "" {
		out.Role = updated.Role
	}
	if updated.CreatedAt != "" {
		out.CreatedAt = updated.CreatedAt
	}
	return out
}
