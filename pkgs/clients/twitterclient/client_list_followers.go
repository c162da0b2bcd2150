package twitterclient

import (
	"context"
	"fmt"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

// ListFollowers retrieves one page of followers for the given handle.
// Pass cursor -1 for the first page; a zero next cursor means the
// listing is exhausted.
func (c *Client) ListFollowers(ctx context.Context, screenName string, cursor int64) ([]*User, int64, error) {
	logger := log.WithFields(log.Fields{
		"caller":      "Client.ListFollowers",
		"screen_name": screenName,
		"cursor":      cursor,
	})

	resp, err := c.restyClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"screen_name": screenName,
			"count":       strconv.Itoa(DEFAULT_FOLLOWERS_PAGE_SIZE),
			"cursor":      strconv.FormatInt(cursor, 10),
		}).
		Get(c.host + API_FOLLOWERS_LIST)
	if err != nil {
		logger.WithError(err).Error("failed to get followers page")
		return nil, 0, err
	}
	if resp.IsError() {
		return nil, 0, fmt.Errorf("followers/list returned %s for [%s]", resp.Status(), screenName)
	}

	body := resp.Body()
	users := make([]*User, 0)
	for _, userJson := range gjson.GetBytes(body, "users").Array() {
		u, err := parseUserJson(userJson)
		if err != nil {
			logger.WithError(err).Debugln("skipping unparsable follower")
			continue
		}
		users = append(users, u)
	}

	return users, gjson.GetBytes(body, "next_cursor").Int(), nil
}
