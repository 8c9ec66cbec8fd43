package viegrand

import (
	"context"
	"net/http"
	"net/url"
)

// GetPremiumStatus fetches the subscription record for email.
func (c *Client) GetPremiumStatus(ctx context.Context, email string) (*PremiumStatus, error) {
	var s PremiumStatus
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/premium/status",
		query:  url.Values{"email": {email}},
	}, &s)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
