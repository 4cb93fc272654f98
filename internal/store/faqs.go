package store

import (
	"context"
	"sync"

	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/api"
)

type FaqsBackend interface {
	ListFaqs(ctx context.Context) ([]api.Faq, error)
	CreateFaq(ctx context.Context, form api.FaqForm) (api.Faq, error)
	UpdateFaq(ctx context.Context, id api.ID, form api.FaqForm) (api.Faq, error)
	SetFaqActive(ctx context.Context, id api.ID, active bool) error
	DeleteFaq(ctx context.Context, id api.ID) error
}

// FaqsSlice: full CRUD plus the optimistic active toggle.
type FaqsSlice struct {
	mu      sync.Mutex
	backend FaqsBackend

	items []api.Faq

	list   OpState
	submit OpState
	del    OpState

	togglingID api.ID
}

func NewFaqsSlice(b FaqsBackend) *FaqsSlice {
	return &FaqsSlice{
		backend: b,
		list:    OpState{Status: StatusIdle},
		submit:  OpState{Status: StatusIdle},
		del:     OpState{Status: StatusIdle},
	}
}

type FaqsSnapshot struct {
	Items      []api.Faq
	List       OpState
	Submit     OpState
	Delete     OpState
	TogglingID api.ID
}

func (s *FaqsSlice) Snapshot() FaqsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]api.Faq, len(s.items))
	copy(items, s.items)
	return FaqsSnapshot{Items: items, List: s.list, Submit: s.submit, Delete: s.del, TogglingID: s.togglingID}
}

// Get returns one FAQ from the in-memory list (the backend exposes no
// detail endpoint; the edit page reads from the fetched list).
func (s *FaqsSlice) Get(id api.ID) (api.Faq, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := s.indexOf(id); idx >= 0 {
		return s.items[idx], true
	}
	return api.Faq{}, false
}

func (s *FaqsSlice) FetchAll(ctx context.Context) error {
	s.mu.Lock()
	if s.list.Loading() {
		s.mu.Unlock()
		return ErrInFlight
	}
	s.list = OpState{Status: StatusLoading}
	s.mu.Unlock()

	items, err := s.backend.ListFaqs(ctx)

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

func (s *FaqsSlice) Add(ctx context.Context, form api.FaqForm) error {
	s.mu.Lock()
	if s.submit.Loading() {
		s.mu.Unlock()
		return ErrInFlight
	}
	s.submit = OpState{Status: StatusLoading}
	s.mu.Unlock()

	f, err := s.backend.CreateFaq(ctx, form)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		if canceled(err) {
			s.submit = OpState{Status: StatusIdle}
			return err
		}
		s.submit = OpState{Status: StatusFailed, Err: errMessage(err)}
		return err
	}
	if f.ID != "" {
		s.items = append([]api.Faq{f}, s.items...)
	}
	s.submit = OpState{Status: StatusSucceeded}
	return nil
}

func (s *FaqsSlice) Update(ctx context.Context, id api.ID, form api.FaqForm) error {
	s.mu.Lock()
	if s.submit.Loading() {
		s.mu.Unlock()
		return ErrInFlight
	}
	s.submit = OpState{Status: StatusLoading}
	s.mu.Unlock()

	f, err := s.backend.UpdateFaq(ctx, id, form)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		if canceled(err) {
			s.submit = OpState{Status: StatusIdle}
			return err
		}
		s.submit = OpState{Status: StatusFailed, Err: errMessage(err)}
		return err
	}

	if idx := s.indexOf(id); idx >= 0 {
		if f.CreatedAt == "" {
			f.CreatedAt = s.items[idx].CreatedAt
		}
		if f.Attachments == nil {
			f.Attachments = s.items[idx].Attachments
		}
		s.items[idx] = f
	}
	s.submit = OpState{Status: StatusSucceeded}
	return nil
}

// ToggleActive flips isActive optimistically; failure restores the
// pre-toggle value exactly.
func (s *FaqsSlice) ToggleActive(ctx context.Context, id api.ID) error {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return nil
	}
	if s.togglingID != "" {
		s.mu.Unlock()
		return ErrInFlight
	}
	prev := s.items[idx].IsActive
	s.items[idx].IsActive = !prev // optimistic flip
	s.togglingID = id
	s.mu.Unlock()

	err := s.backend.SetFaqActive(ctx, id, !prev)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.togglingID = ""
	if err != nil {
		if idx := s.indexOf(id); idx >= 0 {
			s.items[idx].IsActive = prev // rollback
		}
		if !canceled(err) {
			s.submit = OpState{Status: StatusFailed, Err: errMessage(err)}
		}
		return err
	}
	return nil
}

func (s *FaqsSlice) Delete(ctx context.Context, id api.ID) error {
	s.mu.Lock()
	if s.del.Loading() {
		s.mu.Unlock()
		return ErrInFlight
	}
	s.del = OpState{Status: StatusLoading}
	s.mu.Unlock()

	err := s.backend.DeleteFaq(ctx, id)

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

func (s *FaqsSlice) ClearErrors() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, op := range []*OpState{&s.list, &s.submit, &s.del} {
		if op.Status == StatusFailed {
			*op = OpState{Status: StatusIdle}
		}
	}
}

func (s *FaqsSlice) indexOf(id api.ID) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}
