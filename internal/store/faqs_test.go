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

type mockFaqsBackend struct {
	mock.Mock
}

func (m *mockFaqsBackend) ListFaqs(ctx context.Context) ([]api.Faq, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]api.Faq), args.Error(1)
}

func (m *mockFaqsBackend) CreateFaq(ctx context.Context, form api.FaqForm) (api.Faq, error) {
	args := m.Called(ctx, form)
	return args.Get(0).(api.Faq), args.Error(1)
}

func (m *mockFaqsBackend) UpdateFaq(ctx context.Context, id api.ID, form api.FaqForm) (api.Faq, error) {
	args := m.Called(ctx, id, form)
	return args.Get(0).(api.Faq), args.Error(1)
}

func (m *mockFaqsBackend) SetFaqActive(ctx context.Context, id api.ID, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}

func (m *mockFaqsBackend) DeleteFaq(ctx context.Context, id api.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func seedFaqs(t *testing.T, b *mockFaqsBackend, s *store.FaqsSlice) {
	t.Helper()
	b.On("ListFaqs", mock.Anything).Return([]api.Faq{
		{ID: "f1", Question: "Shipping?", Category: "SHIPPING", IsActive: true, CreatedAt: "2026-01-02T10:00:00Z"},
		{ID: "f2", Question: "Returns?", Category: "RETURNS", IsActive: false, CreatedAt: "2026-02-03T10:00:00Z"},
	}, nil).Once()
	assert.NoError(t, s.FetchAll(context.Background()))
}

func TestFaqsToggleActiveRollsBackOnFailure(t *testing.T) {
	b := new(mockFaqsBackend)
	s := store.NewFaqsSlice(b)
	seedFaqs(t, b, s)

	b.On("SetFaqActive", mock.Anything, api.ID("f1"), false).
		Return(apperr.UnavailableErr("Failed to reach the server.")).Once()

	err := s.ToggleActive(context.Background(), "f1")
	assert.Error(t, err)

	snap := s.Snapshot()
	assert.True(t, snap.Items[0].IsActive, "failed toggle restores the old flag")
	assert.Equal(t, "Failed to reach the server.", snap.Submit.Err)
	assert.Empty(t, snap.TogglingID)
}

func TestFaqsToggleActiveSuccess(t *testing.T) {
	b := new(mockFaqsBackend)
	s := store.NewFaqsSlice(b)
	seedFaqs(t, b, s)

	b.On("SetFaqActive", mock.Anything, api.ID("f2"), true).Return(nil).Once()

	assert.NoError(t, s.ToggleActive(context.Background(), "f2"))
	assert.True(t, s.Snapshot().Items[1].IsActive)
}

func TestFaqsUpdatePreservesCreatedAt(t *testing.T) {
	b := new(mockFaqsBackend)
	s := store.NewFaqsSlice(b)
	seedFaqs(t, b, s)

	form := api.FaqForm{Question: "Shipping times?", Answer: "3-5 days.", Category: "SHIPPING", IsActive: true}
	// Server echoes the form without createdAt (local-copy fallback path).
	b.On("UpdateFaq", mock.Anything, api.ID("f1"), form).
		Return(api.Faq{ID: "f1", Question: form.Question, Answer: form.Answer, Category: form.Category, IsActive: true}, nil).Once()

	assert.NoError(t, s.Update(context.Background(), "f1", form))

	snap := s.Snapshot()
	assert.Equal(t, "Shipping times?", snap.Items[0].Question)
	assert.Equal(t, "2026-01-02T10:00:00Z", snap.Items[0].CreatedAt)
}

func TestFaqsAddFailureLeavesListUnchanged(t *testing.T) {
	b := new(mockFaqsBackend)
	s := store.NewFaqsSlice(b)
	seedFaqs(t, b, s)

	b.On("CreateFaq", mock.Anything, mock.Anything).
		Return(api.Faq{}, apperr.InvalidErr("Question is required.", nil)).Once()

	assert.Error(t, s.Add(context.Background(), api.FaqForm{}))

	snap := s.Snapshot()
	assert.Len(t, snap.Items, 2)
	assert.Equal(t, "Question is required.", snap.Submit.Err)
}

func TestFaqsGetAndDelete(t *testing.T) {
	b := new(mockFaqsBackend)
	s := store.NewFaqsSlice(b)
	seedFaqs(t, b, s)

	f, ok := s.Get("f2")
	assert.True(t, ok)
	assert.Equal(t, "Returns?", f.Question)

	_, ok = s.Get("ghost")
	assert.False(t, ok)

	b.On("DeleteFaq", mock.Anything, api.ID("f2")).Return(nil).Once()
	assert.NoError(t, s.Delete(context.Background(), "f2"))
	assert.Len(t, s.Snapshot().Items, 1)
}
