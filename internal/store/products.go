package store

import (
	"context"
	"sync"

	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/api"
)

type ProductsBackend interface {
	ListProducts(ctx context.Context) ([]api.Product, error)
	GetProduct(ctx context.Context, id api.ID) (api.Product, error)
	CreateProduct(ctx context.Context, form api.ProductForm) (api.Product, error)
	UpdateProduct(ctx context.Context, id api.ID, patch api.ProductPatch) (api.Product, error)
	DeleteProduct(ctx context.Context, id api.ID) error
}

// ProductsSlice owns the product list plus a separate "current" slot for the
// item being viewed/edited. Handlers run on concurrent goroutines, so every
// transition happens under the slice lock; the network call itself does not.
type ProductsSlice struct {
	mu      sync.Mutex
	backend ProductsBackend

	items   []api.Product
	current *api.Product

	list OpState
	add  OpState
	upd  OpState
	del  OpState
}

func NewProductsSlice(b ProductsBackend) *ProductsSlice {
	return &ProductsSlice{
		backend: b,
		list:    OpState{Status: StatusIdle},
		add:     OpState{Status: StatusIdle},
		upd:     OpState{Status: StatusIdle},
		del:     OpState{Status: StatusIdle},
	}
}

// ProductsSnapshot is a consistent copy for rendering.
type ProductsSnapshot struct {
	Items   []api.Product
	Current *api.Product
	List    OpState
	Add     OpState
	Update  OpState
	Delete  OpState
}

func (s *ProductsSlice) Snapshot() ProductsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]api.Product, len(s.items))
	copy(items, s.items)

	var cur *api.Product
	if s.current != nil {
		c := *s.current
		cur = &c
	}
	return ProductsSnapshot{
		Items:   items,
		Current: cur,
		List:    s.list,
		Add:     s.add,
		Update:  s.upd,
		Delete:  s.del,
	}
}

// FetchAll replaces the whole list. The backend does not paginate; paging is
// computed over this in-memory slice (pkg/view).
func (s *ProductsSlice) FetchAll(ctx context.Context) error {
	s.mu.Lock()
	if s.list.Loading() {
		s.mu.Unlock()
		return ErrInFlight
	}
	s.list = OpState{Status: StatusLoading}
	s.mu.Unlock()

	items, err := s.backend.ListProducts(ctx)

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

// FetchOne loads a single product into the current slot, and upserts it at
// the head of the list when it is not there yet.
func (s *ProductsSlice) FetchOne(ctx context.Context, id api.ID) error {
	s.mu.Lock()
	if s.list.Loading() {
		s.mu.Unlock()
		return ErrInFlight
	}
	s.list = OpState{Status: StatusLoading}
	s.current = nil
	s.mu.Unlock()

	p, err := s.backend.GetProduct(ctx, id)

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

	s.current = &p
	if s.indexOf(p.ID) < 0 {
		s.items = append([]api.Product{p}, s.items...)
	}
	s.list = OpState{Status: StatusSucceeded}
	return nil
}

// Add creates the product and prepends the server-returned copy. A failed
// create leaves the list untouched.
func (s *ProductsSlice) Add(ctx context.Context, form api.ProductForm) (api.Product, error) {
	s.mu.Lock()
	if s.add.Loading() {
		s.mu.Unlock()
		return api.Product{}, ErrInFlight
	}
	s.add = OpState{Status: StatusLoading}
	s.mu.Unlock()

	p, err := s.backend.CreateProduct(ctx, form)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		if canceled(err) {
			s.add = OpState{Status: StatusIdle}
			return api.Product{}, err
		}
		s.add = OpState{Status: StatusFailed, Err: errMessage(err)}
		return api.Product{}, err
	}

	if p.ID != "" {
		s.items = append([]api.Product{p}, s.items...)
	}
	s.add = OpState{Status: StatusSucceeded}
	return p, nil
}

// Update patches by id. When the backend returns a usable product it
// replaces the list entry (and current, if it matches); when the response
// has no usable body the patch is applied locally as a fallback.
func (s *ProductsSlice) Update(ctx context.Context, id api.ID, patch api.ProductPatch) error {
	s.mu.Lock()
	if s.upd.Loading() {
		s.mu.Unlock()
		return ErrInFlight
	}
	s.upd = OpState{Status: StatusLoading}
	s.mu.Unlock()

	updated, err := s.backend.UpdateProduct(ctx, id, patch)

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

	if updated.ID == "" {
		updated = s.applyPatchLocal(id, patch)
	}
	if idx := s.indexOf(updated.ID); idx >= 0 {
		s.items[idx] = updated
	}
	if s.current != nil && s.current.ID == updated.ID {
		cur := updated
		s.current = &cur
	}
	s.upd = OpState{Status: StatusSucceeded}
	return nil
}

// Delete removes by id and clears current when it matched.
func (s *ProductsSlice) Delete(ctx context.Context, id api.ID) error {
	s.mu.Lock()
	if s.del.Loading() {
		s.mu.Unlock()
		return ErrInFlight
	}
	s.del = OpState{Status: StatusLoading}
	s.mu.Unlock()

	err := s.backend.DeleteProduct(ctx, id)

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
	if s.current != nil && s.current.ID == id {
		s.current = nil
	}
	s.del = OpState{Status: StatusSucceeded}
	return nil
}

// ClearCurrent: detail sayfası kapanınca slot temizlenir.
func (s *ProductsSlice) ClearCurrent() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	if s.list.Status != StatusLoading {
		s.list = OpState{Status: StatusIdle}
	}
}

func (s *ProductsSlice) ClearErrors() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, op := range []*OpState{&s.list, &s.add, &s.upd, &s.del} {
		if op.Status == StatusFailed {
			*op = OpState{Status: StatusIdle}
		}
	}
}

func (s *ProductsSlice) indexOf(id api.ID) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

// applyPatchLocal merges patch fields over the stored item (fallback when
// the server confirms the write without echoing the object).
func (s *ProductsSlice) applyPatchLocal(id api.ID, patch api.ProductPatch) api.Product {
	var base api.Product
	if idx := s.indexOf(id); idx >= 0 {
		base = s.items[idx]
	} else if s.current != nil && s.current.ID == id {
		base = *s.current
	} else {
		base = api.Product{ID: id}
	}

	if patch.Name != nil {
		base.Name = *patch.Name
	}
	if patch.Description != nil {
		base.Description = *patch.Description
	}
	if patch.Price != nil {
		base.Price = *patch.Price
	}
	if patch.Stock != nil {
		base.Stock = *patch.Stock
	}
	base.ID = id
	return base
}
