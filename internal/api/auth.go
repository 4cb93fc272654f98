package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/shared/apperr"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a bearer token. The caller owns storing
// the token (signed cookie); the client never keeps it.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	raw, err := c.sendJSON(ctx, http.MethodPost, "/login", loginRequest{Email: email, Password: password})
	if err != nil {
		return "", err
	}

	var res loginResponse
	if err := json.Unmarshal(raw, &res); err != nil {
		return "", apperr.Wrap(err)
	}
	if res.Token == "" {
		// 200 ama token yok: backend sözleşmesi bozulmuş demektir
		return "", apperr.UnauthorizedErr("Login failed: no token returned.")
	}
	return res.Token, nil
}
