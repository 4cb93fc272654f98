// Package store is the console's centralized state container: four
// independently-testable slices, one per entity type, each owning its
// in-memory list and per-operation status flags. It mirrors the state the
// dashboard pages render and is refilled wholesale from the backend; there
// is no client-side persistence behind it.
package store

// Backend is everything the store needs from the dashboard API. The
// api.Client satisfies it; tests substitute mocks per slice.
type Backend interface {
	ProductsBackend
	UsersBackend
	ReviewsBackend
	FaqsBackend
}

type Store struct {
	Products *ProductsSlice
	Users    *UsersSlice
	Reviews  *ReviewsSlice
	Faqs     *FaqsSlice
}

func New(b Backend) *Store {
	return &Store{
		Products: NewProductsSlice(b),
		Users:    NewUsersSlice(b),
		Reviews:  NewReviewsSlice(b),
		Faqs:     NewFaqsSlice(b),
	}
}
