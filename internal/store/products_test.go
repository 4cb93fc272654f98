package store_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/api"
	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/shared/apperr"
	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/store"
)

// mockProductsBackend is a mock implementation of store.ProductsBackend.
type mockProductsBackend struct {
	mock.Mock
}

func (m *mockProductsBackend) ListProducts(ctx context.Context) ([]api.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]api.Product), args.Error(1)
}

func (m *mockProductsBackend) GetProduct(ctx context.Context, id api.ID) (api.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(api.Product), args.Error(1)
}

func (m *mockProductsBackend) CreateProduct(ctx context.Context, form api.ProductForm) (api.Product, error) {
	args := m.Called(ctx, form)
	return args.Get(0).(api.Product), args.Error(1)
}

func (m *mockProductsBackend) UpdateProduct(ctx context.Context, id api.ID, patch api.ProductPatch) (api.Product, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(api.Product), args.Error(1)
}

func (m *mockProductsBackend) DeleteProduct(ctx context.Context, id api.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func seededProducts() []api.Product {
	return []api.Product{
		{ID: "p1", Name: "Shirt", Price: 29.9, Stock: 3},
		{ID: "p2", Name: "Shoes", Price: 119, Stock: 1},
	}
}

func TestProductsFetchAllReplacesList(t *testing.T) {
	b := new(mockProductsBackend)
	s := store.NewProductsSlice(b)

	b.On("ListProducts", mock.Anything).Return(seededProducts(), nil).Once()

	assert.NoError(t, s.FetchAll(context.Background()))

	snap := s.Snapshot()
	assert.Len(t, snap.Items, 2)
	assert.Equal(t, store.StatusSucceeded, snap.List.Status)
	b.AssertExpectations(t)
}

func TestProductsFetchAllFailureKeepsOldItems(t *testing.T) {
	b := new(mockProductsBackend)
	s := store.NewProductsSlice(b)

	b.On("ListProducts", mock.Anything).Return(seededProducts(), nil).Once()
	assert.NoError(t, s.FetchAll(context.Background()))

	b.On("ListProducts", mock.Anything).Return(nil, apperr.UnavailableErr("Failed to reach the server.")).Once()
	assert.Error(t, s.FetchAll(context.Background()))

	snap := s.Snapshot()
	assert.Len(t, snap.Items, 2, "stale data stays visible next to the error")
	assert.Equal(t, store.StatusFailed, snap.List.Status)
	assert.Equal(t, "Failed to reach the server.", snap.List.Err)
}

func TestProductsAddFailureLeavesListUnchanged(t *testing.T) {
	b := new(mockProductsBackend)
	s := store.NewProductsSlice(b)

	b.On("ListProducts", mock.Anything).Return(seededProducts(), nil).Once()
	assert.NoError(t, s.FetchAll(context.Background()))
	before := s.Snapshot().Items

	b.On("CreateProduct", mock.Anything, mock.Anything).
		Return(api.Product{}, apperr.InvalidErr("Price must be positive.", nil)).Once()

	_, err := s.Add(context.Background(), api.ProductForm{Name: "Bad", Price: -1})
	assert.Error(t, err)

	snap := s.Snapshot()
	assert.Equal(t, before, snap.Items)
	assert.Equal(t, store.StatusFailed, snap.Add.Status)
	assert.Equal(t, "Price must be positive.", snap.Add.Err)
}

func TestProductsAddPrependsServerCopy(t *testing.T) {
	b := new(mockProductsBackend)
	s := store.NewProductsSlice(b)

	b.On("ListProducts", mock.Anything).Return(seededProducts(), nil).Once()
	assert.NoError(t, s.FetchAll(context.Background()))

	created := api.Product{ID: "p3", Name: "Hat", Price: 9.5}
	b.On("CreateProduct", mock.Anything, mock.Anything).Return(created, nil).Once()

	got, err := s.Add(context.Background(), api.ProductForm{Name: "Hat", Price: 9.5})
	assert.NoError(t, err)
	assert.Equal(t, created, got)

	snap := s.Snapshot()
	assert.Len(t, snap.Items, 3)
	assert.Equal(t, api.ID("p3"), snap.Items[0].ID)
}

func TestProductsUpdateFallsBackToLocalPatch(t *testing.T) {
	b := new(mockProductsBackend)
	s := store.NewProductsSlice(b)

	b.On("ListProducts", mock.Anything).Return(seededProducts(), nil).Once()
	assert.NoError(t, s.FetchAll(context.Background()))

	// Backend confirmed the write without echoing the object.
	b.On("UpdateProduct", mock.Anything, api.ID("p1"), mock.Anything).Return(api.Product{}, nil).Once()

	name := "Renamed"
	price := 49.0
	err := s.Update(context.Background(), "p1", api.ProductPatch{Name: &name, Price: &price})
	assert.NoError(t, err)

	snap := s.Snapshot()
	assert.Equal(t, "Renamed", snap.Items[0].Name)
	assert.Equal(t, 49.0, snap.Items[0].Price)
	assert.Equal(t, 3, snap.Items[0].Stock, "unpatched fields keep their value")
}

func TestProductsUpdateSyncsCurrent(t *testing.T) {
	b := new(mockProductsBackend)
	s := store.NewProductsSlice(b)

	b.On("GetProduct", mock.Anything, api.ID("p1")).
		Return(api.Product{ID: "p1", Name: "Shirt"}, nil).Once()
	assert.NoError(t, s.FetchOne(context.Background(), "p1"))

	updated := api.Product{ID: "p1", Name: "Shirt v2", Price: 31}
	b.On("UpdateProduct", mock.Anything, api.ID("p1"), mock.Anything).Return(updated, nil).Once()
	assert.NoError(t, s.Update(context.Background(), "p1", api.ProductPatch{}))

	snap := s.Snapshot()
	assert.NotNil(t, snap.Current)
	assert.Equal(t, "Shirt v2", snap.Current.Name)
}

func TestProductsDeleteRemovesAndClearsCurrent(t *testing.T) {
	b := new(mockProductsBackend)
	s := store.NewProductsSlice(b)

	b.On("GetProduct", mock.Anything, api.ID("p1")).
		Return(api.Product{ID: "p1", Name: "Shirt"}, nil).Once()
	assert.NoError(t, s.FetchOne(context.Background(), "p1"))

	b.On("DeleteProduct", mock.Anything, api.ID("p1")).Return(nil).Once()
	assert.NoError(t, s.Delete(context.Background(), "p1"))

	snap := s.Snapshot()
	assert.Empty(t, snap.Items)
	assert.Nil(t, snap.Current)
	assert.Equal(t, store.StatusSucceeded, snap.Delete.Status)
}

func TestProductsDeleteFailureKeepsItem(t *testing.T) {
	b := new(mockProductsBackend)
	s := store.NewProductsSlice(b)

	b.On("ListProducts", mock.Anything).Return(seededProducts(), nil).Once()
	assert.NoError(t, s.FetchAll(context.Background()))

	b.On("DeleteProduct", mock.Anything, api.ID("p1")).
		Return(apperr.NotFoundErr("Product not found.")).Once()
	assert.Error(t, s.Delete(context.Background(), "p1"))

	snap := s.Snapshot()
	assert.Len(t, snap.Items, 2)
	assert.Equal(t, "Product not found.", snap.Delete.Err)
}

func TestProductsAddRejectsConcurrentSubmit(t *testing.T) {
	b := new(mockProductsBackend)
	s := store.NewProductsSlice(b)

	release := make(chan struct{})
	started := make(chan struct{})
	b.On("CreateProduct", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) {
			close(started)
			<-release
		}).
		Return(api.Product{ID: "p9"}, nil).Once()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = s.Add(context.Background(), api.ProductForm{Name: "slow"})
	}()

	<-started
	_, err := s.Add(context.Background(), api.ProductForm{Name: "second"})
	assert.ErrorIs(t, err, store.ErrInFlight)

	close(release)
	wg.Wait()
}

func TestProductsCancellationResetsToIdle(t *testing.T) {
	b := new(mockProductsBackend)
	s := store.NewProductsSlice(b)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	b.On("ListProducts", mock.Anything).Return(nil, context.Canceled).Once()

	err := s.FetchAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	snap := s.Snapshot()
	assert.Equal(t, store.StatusIdle, snap.List.Status)
	assert.Empty(t, snap.List.Err, "a torn-down page must not leave an error behind")
}
