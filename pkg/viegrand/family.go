package viegrand

import (
	"context"
	"fmt"
	"net/http"
)

// AddFamilyMember links a relative to an elderly account via POST /family/members.
// A 409 answer means the two accounts are already linked.
func (c *Client) AddFamilyMember(ctx context.Context, req AddFamilyMemberRequest) (*FamilyMember, error) {
	var m FamilyMember
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/family/members",
		body:   req,
	}, &m)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// RemoveFamilyMember deletes a family link by id.
func (c *Client) RemoveFamilyMember(ctx context.Context, id int64) error {
	return c.do(ctx, request{
		method: http.MethodDelete,
		path:   fmt.Sprintf("/family/members/%d", id),
	}, nil)
}
