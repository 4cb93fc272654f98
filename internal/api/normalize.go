package api

import (
	"encoding/json"
)

// The backend wraps responses inconsistently: sometimes `{product: {...}}`,
// sometimes `{data: {...}}`, sometimes the bare object, and ids show up as
// `id` or `_id`. Everything is normalized here, at the client boundary, so
// the store never has to guess (see the slice code in internal/store).

// unwrap returns the value under the first matching envelope key, or the
// raw body itself when no envelope is present.
func unwrap(raw json.RawMessage, keys ...string) json.RawMessage {
	var env map[string]json.RawMessage
	if err := json.Unmarshal(raw, &env); err != nil {
		return raw
	}
	for _, k := range keys {
		if v, ok := env[k]; ok && len(v) > 0 && string(v) != "null" {
			return v
		}
	}
	return raw
}

func decodeProduct(raw json.RawMessage) (Product, error) {
	var p Product
	if err := json.Unmarshal(unwrap(raw, "product", "data"), &p); err != nil {
		return Product{}, err
	}
	p.normalizeID()
	return p, nil
}

func decodeProducts(raw json.RawMessage) ([]Product, error) {
	var items []Product
	// Liste cevabı tekil "product" anahtarıyla da gelebiliyor.
	if err := json.Unmarshal(unwrap(raw, "products", "product", "data"), &items); err != nil {
		return nil, err
	}
	for i := range items {
		items[i].normalizeID()
	}
	return items, nil
}

func decodeUser(raw json.RawMessage) (User, error) {
	var u User
	if err := json.Unmarshal(unwrap(raw, "user", "data"), &u); err != nil {
		return User{}, err
	}
	u.normalizeID()
	return u, nil
}

func decodeUsers(raw json.RawMessage) ([]User, error) {
	var items []User
	if err := json.Unmarshal(unwrap(raw, "users", "data"), &items); err != nil {
		return nil, err
	}
	for i := range items {
		items[i].normalizeID()
	}
	return items, nil
}

func decodeReview(raw json.RawMessage) (Review, error) {
	var r Review
	if err := json.Unmarshal(unwrap(raw, "review", "data"), &r); err != nil {
		return Review{}, err
	}
	return r, nil
}

func decodeReviews(raw json.RawMessage) ([]Review, error) {
	var items []Review
	if err := json.Unmarshal(unwrap(raw, "reviews", "data"), &items); err != nil {
		return nil, err
	}
	return items, nil
}

func decodeFaq(raw json.RawMessage) (Faq, error) {
	var f Faq
	if err := json.Unmarshal(unwrap(raw, "faq", "data"), &f); err != nil {
		return Faq{}, err
	}
	return f, nil
}

func decodeFaqs(raw json.RawMessage) ([]Faq, error) {
	var items []Faq
	if err := json.Unmarshal(unwrap(raw, "faqs", "data"), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// unmarshalList decodes a possibly-enveloped JSON array into dst.
func unmarshalList(raw json.RawMessage, envelopeKey string, dst any) error {
	return json.Unmarshal(unwrap(raw, envelopeKey, "data"), dst)
}

func (p *Product) normalizeID() {
	if p.ID == "" {
		p.ID = p.AltID
	}
	p.AltID = ""
}

func (u *User) normalizeID() {
	if u.ID == "" {
		u.ID = u.AltID
	}
	u.AltID = ""
}
