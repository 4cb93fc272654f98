package store

import (
	"context"
	"sync"

	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/api"
)

type ReviewsBackend interface {
	ListReviews(ctx context.Context) ([]api.Review, error)
	CreateReview(ctx context.Context, rating int, comment string) (api.Review, error)
	UpdateReview(ctx context.Context, id api.ID, rating int, comment string) (api.Review, error)
	SetReviewApproval(ctx context.Context, id api.ID, approved bool) (api.Review, error)
	DeleteReview(ctx context.Context, id api.ID) error
}

// ReviewsSlice moderates customer reviews. The approval toggle is
// optimistic: the flag flips locally before the call and must flip back
// exactly when the server rejects it.
type ReviewsSlice struct {
	mu      sync.Mutex
	backend ReviewsBackend

	items []api.Review

	list   OpState
	submit OpState

	// per-item busy markers for the switches/buttons
	approvingID api.ID
	deletingID  api.ID
}

func NewReviewsSlice(b ReviewsBackend) *ReviewsSlice {
	return &ReviewsSlice{
		backend: b,
		list:    OpState{Status: StatusIdle},
		submit:  OpState{Status: StatusIdle},
	}
}

type ReviewsSnapshot struct {
	Items       []api.Review
	List        OpState
	Submit      OpState
	ApprovingID api.ID
	DeletingID  api.ID
}

func (s *ReviewsSlice) Snapshot() ReviewsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]api.Review, len(s.items))
	copy(items, s.items)
	return ReviewsSnapshot{
		Items:       items,
		List:        s.list,
		Submit:      s.submit,
		ApprovingID: s.approvingID,
		DeletingID:  s.deletingID,
	}
}

func (s *ReviewsSlice) FetchAll(ctx context.Context) error {
	s.mu.Lock()
	if s.list.Loading() {
		s.mu.Unlock()
		return ErrInFlight
	}
	s.list = OpState{Status: StatusLoading}
	s.mu.Unlock()

	items, err := s.backend.ListReviews(ctx)

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

// Add posts a new review (the admin-side test form) and prepends it.
func (s *ReviewsSlice) Add(ctx context.Context, rating int, comment string) error {
	s.mu.Lock()
	if s.submit.Loading() {
		s.mu.Unlock()
		return ErrInFlight
	}
	s.submit = OpState{Status: StatusLoading}
	s.mu.Unlock()

	r, err := s.backend.CreateReview(ctx, rating, comment)

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
	if r.ID != "" {
		s.items = append([]api.Review{r}, s.items...)
	}
	s.submit = OpState{Status: StatusSucceeded}
	return nil
}

// Edit replaces rating/comment by id with the server-returned copy.
func (s *ReviewsSlice) Edit(ctx context.Context, id api.ID, rating int, comment string) error {
	s.mu.Lock()
	if s.submit.Loading() {
		s.mu.Unlock()
		return ErrInFlight
	}
	s.submit = OpState{Status: StatusLoading}
	s.mu.Unlock()

	r, err := s.backend.UpdateReview(ctx, id, rating, comment)

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
		if r.ID == "" {
			r = s.items[idx]
			r.Rating = rating
			r.Comment = comment
		}
		s.items[idx] = r
	}
	s.submit = OpState{Status: StatusSucceeded}
	return nil
}

// ToggleApproved flips isApproved optimistically, then confirms with the
// server; on failure the pre-toggle value is restored exactly.
func (s *ReviewsSlice) ToggleApproved(ctx context.Context, id api.ID) error {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return nil
	}
	if s.approvingID != "" {
		s.mu.Unlock()
		return ErrInFlight
	}
	prev := s.items[idx]
	next := !prev.IsApproved
	s.items[idx].IsApproved = next // optimistic flip
	s.approvingID = id
	s.mu.Unlock()

	confirmed, err := s.backend.SetReviewApproval(ctx, id, next)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.approvingID = ""

	idx = s.indexOf(id)
	if idx < 0 {
		return err // deleted meanwhile; nothing to restore
	}
	if err != nil {
		s.items[idx] = prev // rollback
		if !canceled(err) {
			s.submit = OpState{Status: StatusFailed, Err: errMessage(err)}
		}
		return err
	}
	if confirmed.ID != "" {
		s.items[idx] = confirmed
	}
	return nil
}

func (s *ReviewsSlice) Delete(ctx context.Context, id api.ID) error {
	s.mu.Lock()
	if s.deletingID != "" {
		s.mu.Unlock()
		return ErrInFlight
	}
	s.deletingID = id
	s.mu.Unlock()

	err := s.backend.DeleteReview(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.deletingID = ""
	if err != nil {
		if !canceled(err) {
			s.submit = OpState{Status: StatusFailed, Err: errMessage(err)}
		}
		return err
	}
	if idx := s.indexOf(id); idx >= 0 {
		s.items = append(s.items[:idx], s.items[idx+1:]...)
	}
	return nil
}

func (s *ReviewsSlice) ClearErrors() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submit.Status == StatusFailed {
		s.submit = OpState{Status: StatusIdle}
	}
	if s.list.Status == StatusFailed {
		s.list = OpState{Status: StatusIdle}
	}
}

func (s *ReviewsSlice) indexOf(id api.ID) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}
