package viegrand

import (
	"context"
	"net/http"
	"net/url"
)

// FindUserByPrivateKey looks up the account a private key belongs to.
func (c *Client) FindUserByPrivateKey(ctx context.Context, privateKey string) (*User, error) {
	var u User
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/users/by-private-key/" + url.PathEscape(privateKey),
	}, &u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
