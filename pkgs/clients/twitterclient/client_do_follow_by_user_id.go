package twitterclient

import (
	"context"
	"fmt"
)

// DoFollowByUserId sends a follow request to the specified user
func (c *Client) DoFollowByUserId(ctx context.Context, userId uint64) error {
	resp, err := c.restyClient.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"user_id": fmt.Sprintf("%d", userId),
		}).
		Post(c.host + API_FRIENDSHIPS_CREATE)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("friendships/create returned %s for user %d", resp.Status(), userId)
	}
	return nil
}
