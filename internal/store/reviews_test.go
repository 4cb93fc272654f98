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

type mockReviewsBackend struct {
	mock.Mock
}

func (m *mockReviewsBackend) ListReviews(ctx context.Context) ([]api.Review, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]api.Review), args.Error(1)
}

func (m *mockReviewsBackend) CreateReview(ctx context.Context, rating int, comment string) (api.Review, error) {
	args := m.Called(ctx, rating, comment)
	return args.Get(0).(api.Review), args.Error(1)
}

func (m *mockReviewsBackend) UpdateReview(ctx context.Context, id api.ID, rating int, comment string) (api.Review, error) {
	args := m.Called(ctx, id, rating, comment)
	return args.Get(0).(api.Review), args.Error(1)
}

func (m *mockReviewsBackend) SetReviewApproval(ctx context.Context, id api.ID, approved bool) (api.Review, error) {
	args := m.Called(ctx, id, approved)
	return args.Get(0).(api.Review), args.Error(1)
}

func (m *mockReviewsBackend) DeleteReview(ctx context.Context, id api.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func seedReviews(t *testing.T, b *mockReviewsBackend, s *store.ReviewsSlice) {
	t.Helper()
	b.On("ListReviews", mock.Anything).Return([]api.Review{
		{ID: "r1", Rating: 5, Comment: "Great!", IsApproved: false},
		{ID: "r2", Rating: 2, Comment: "Meh.", IsApproved: true},
	}, nil).Once()
	assert.NoError(t, s.FetchAll(context.Background()))
}

func TestReviewsToggleApprovedConfirmed(t *testing.T) {
	b := new(mockReviewsBackend)
	s := store.NewReviewsSlice(b)
	seedReviews(t, b, s)

	confirmed := api.Review{ID: "r1", Rating: 5, Comment: "Great!", IsApproved: true}
	b.On("SetReviewApproval", mock.Anything, api.ID("r1"), true).Return(confirmed, nil).Once()

	assert.NoError(t, s.ToggleApproved(context.Background(), "r1"))

	snap := s.Snapshot()
	assert.True(t, snap.Items[0].IsApproved)
	assert.Empty(t, snap.ApprovingID)
	b.AssertExpectations(t)
}

func TestReviewsToggleApprovedRollsBackOnFailure(t *testing.T) {
	b := new(mockReviewsBackend)
	s := store.NewReviewsSlice(b)
	seedReviews(t, b, s)

	b.On("SetReviewApproval", mock.Anything, api.ID("r2"), false).
		Return(api.Review{}, apperr.UnavailableErr("Failed to reach the server.")).Once()

	err := s.ToggleApproved(context.Background(), "r2")
	assert.Error(t, err)

	snap := s.Snapshot()
	assert.True(t, snap.Items[1].IsApproved, "the flag reverts to its pre-toggle value")
	assert.Equal(t, "Failed to reach the server.", snap.Submit.Err)
	assert.Empty(t, snap.ApprovingID)
}

func TestReviewsToggleApprovedMessageOnlyResponseKeepsOptimisticValue(t *testing.T) {
	b := new(mockReviewsBackend)
	s := store.NewReviewsSlice(b)
	seedReviews(t, b, s)

	// Zero-ID confirmation: server said OK without echoing the review.
	b.On("SetReviewApproval", mock.Anything, api.ID("r1"), true).Return(api.Review{}, nil).Once()

	assert.NoError(t, s.ToggleApproved(context.Background(), "r1"))
	assert.True(t, s.Snapshot().Items[0].IsApproved)
}

func TestReviewsToggleUnknownIDIsNoop(t *testing.T) {
	b := new(mockReviewsBackend)
	s := store.NewReviewsSlice(b)
	seedReviews(t, b, s)

	assert.NoError(t, s.ToggleApproved(context.Background(), "ghost"))
	b.AssertNotCalled(t, "SetReviewApproval", mock.Anything, mock.Anything, mock.Anything)
}

func TestReviewsAddPrependsAndFailureLeavesListAlone(t *testing.T) {
	b := new(mockReviewsBackend)
	s := store.NewReviewsSlice(b)
	seedReviews(t, b, s)

	created := api.Review{ID: "r3", Rating: 4, Comment: "Nice."}
	b.On("CreateReview", mock.Anything, 4, "Nice.").Return(created, nil).Once()
	assert.NoError(t, s.Add(context.Background(), 4, "Nice."))
	assert.Equal(t, api.ID("r3"), s.Snapshot().Items[0].ID)

	b.On("CreateReview", mock.Anything, 1, "nope").
		Return(api.Review{}, apperr.InvalidErr("Rating must be between 1 and 5.", nil)).Once()
	assert.Error(t, s.Add(context.Background(), 1, "nope"))

	snap := s.Snapshot()
	assert.Len(t, snap.Items, 3)
	assert.Equal(t, "Rating must be between 1 and 5.", snap.Submit.Err)
}

func TestReviewsDeleteRemovesItem(t *testing.T) {
	b := new(mockReviewsBackend)
	s := store.NewReviewsSlice(b)
	seedReviews(t, b, s)

	b.On("DeleteReview", mock.Anything, api.ID("r1")).Return(nil).Once()
	assert.NoError(t, s.Delete(context.Background(), "r1"))

	snap := s.Snapshot()
	assert.Len(t, snap.Items, 1)
	assert.Equal(t, api.ID("r2"), snap.Items[0].ID)
}
