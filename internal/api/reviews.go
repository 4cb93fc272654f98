package api

import (
	"context"
	"net/http"

	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/shared/apperr"
)

func (c *Client) ListReviews(ctx context.Context) ([]Review, error) {
	raw, err := c.getJSON(ctx, "/dashboard/webReview")
	if err != nil {
		return nil, err
	}
	items, err := decodeReviews(raw)
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	return items, nil
}

// CreateReview posts through the public review endpoint; the console keeps
// it around as a moderation test tool.
func (c *Client) CreateReview(ctx context.Context, rating int, comment string) (Review, error) {
	payload := map[string]any{"rating": rating, "comment": comment}
	raw, err := c.sendJSON(ctx, http.MethodPost, "/webSit", payload)
	if err != nil {
		return Review{}, err
	}
	r, err := decodeReview(raw)
	if err != nil {
		return Review{}, apperr.Wrap(err)
	}
	return r, nil
}

// UpdateReview edits rating/comment by full PUT.
func (c *Client) UpdateReview(ctx context.Context, id ID, rating int, comment string) (Review, error) {
	payload := map[string]any{"id": id, "rating": rating, "comment": comment}
	raw, err := c.sendJSON(ctx, http.MethodPut, "/dashboard/webReview/"+id.String(), payload)
	if err != nil {
		return Review{}, err
	}
	r, err := decodeReview(raw)
	if err != nil {
		return Review{}, apperr.Wrap(err)
	}
	return r, nil
}

// SetReviewApproval flips the moderation flag on the server. The store does
// the optimistic local flip and rolls back when this call fails.
func (c *Client) SetReviewApproval(ctx context.Context, id ID, approved bool) (Review, error) {
	payload := map[string]any{"isApproved": approved}
	raw, err := c.sendJSON(ctx, http.MethodPut, "/dashboard/webReview/"+id.String(), payload)
	if err != nil {
		return Review{}, err
	}

	// Onay cevabı message-only olabilir; ID'siz gövdede optimistik değer kalır.
	r, decErr := decodeReview(raw)
	if decErr != nil || r.ID == "" {
		return Review{}, nil
	}
	return r, nil
}

func (c *Client) DeleteReview(ctx context.Context, id ID) error {
	return c.delete(ctx, "/dashboard/webReview/"+id.String())
}
