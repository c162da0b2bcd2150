package twitterclient

import (
	"context"
	"fmt"

	"github.com/tidwall/gjson"
)

// GetUserByScreenName retrieves a user profile by handle, including
// the free-text location and the most recent status when present.
func (c *Client) GetUserByScreenName(ctx context.Context, screenName string) (*User, error) {
	resp, err := c.restyClient.R().
		SetContext(ctx).
		SetQueryParam("screen_name", screenName).
		Get(c.host + API_USERS_SHOW)
	if err != nil {
		return nil, fmt.Errorf("failed to get user [%s]: %v", screenName, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("users/show returned %s for [%s]", resp.Status(), screenName)
	}

	return parseUserJson(gjson.ParseBytes(resp.Body()))
}
