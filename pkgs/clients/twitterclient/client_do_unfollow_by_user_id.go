package twitterclient

import (
	"context"
	"fmt"
)

// DoUnfollowByUserId removes the friendship with the specified user
func (c *Client) DoUnfollowByUserId(ctx context.Context, userId uint64) error {
	resp, err := c.restyClient.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"user_id": fmt.Sprintf("%d", userId),
		}).
		Post(c.host + API_FRIENDSHIPS_DESTROY)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("friendships/destroy returned %s for user %d", resp.Status(), userId)
	}
	return nil
}
