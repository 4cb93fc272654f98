package api

import (
	"context"
	"net/http"

	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/shared/apperr"
)

// FaqForm is the JSON body for FAQ create/update.
type FaqForm struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
	IsActive bool   `json:"isActive"`
}

func (c *Client) ListFaqs(ctx context.Context) ([]Faq, error) {
	raw, err := c.getJSON(ctx, "/dashboard/faq")
	if err != nil {
		return nil, err
	}
	items, err := decodeFaqs(raw)
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	return items, nil
}

func (c *Client) CreateFaq(ctx context.Context, form FaqForm) (Faq, error) {
	raw, err := c.sendJSON(ctx, http.MethodPost, "/dashboard/faq", form)
	if err != nil {
		return Faq{}, err
	}
	f, err := decodeFaq(raw)
	if err != nil {
		return Faq{}, apperr.Wrap(err)
	}
	return f, nil
}

func (c *Client) UpdateFaq(ctx context.Context, id ID, form FaqForm) (Faq, error) {
	raw, err := c.sendJSON(ctx, http.MethodPut, "/dashboard/faq/"+id.String(), form)
	if err != nil {
		return Faq{}, err
	}

	// Update cevabı da envelope/message karışık dönebiliyor; ID'siz gövdede
	// formdan lokal bir kopya kurarız.
	f, decErr := decodeFaq(raw)
	if decErr != nil || f.ID == "" {
		f = Faq{ID: id, Question: form.Question, Answer: form.Answer, Category: form.Category, IsActive: form.IsActive}
	}
	return f, nil
}

// SetFaqActive flips only the active flag (optimistic toggle on the store
// side; rollback on failure).
func (c *Client) SetFaqActive(ctx context.Context, id ID, active bool) error {
	_, err := c.sendJSON(ctx, http.MethodPut, "/dashboard/faq/"+id.String(), map[string]bool{"isActive": active})
	return err
}

func (c *Client) DeleteFaq(ctx context.Context, id ID) error {
	return c.delete(ctx, "/dashboard/faq/"+id.String())
}
