package twitterclient

import (
	"context"
	"fmt"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

// SearchParams bounds a single page of the search endpoint. The
// endpoint has no page token; callers page backwards by lowering MaxId.
type SearchParams struct {
	Query   string
	Count   int
	Lang    string
	MaxId   uint64 // inclusive upper bound on tweet ids, 0 to disable
	SinceId uint64 // exclusive lower bound on tweet ids, 0 to disable
}

// SearchTweets retrieves one page of tweets matching the params,
// newest first.
func (c *Client) SearchTweets(ctx context.Context, params SearchParams) ([]*Tweet, error) {
	logger := log.WithFields(log.Fields{
		"caller": "Client.SearchTweets",
		"query":  params.Query,
		"max_id": params.MaxId,
	})

	count := params.Count
	if count <= 0 {
		count = DEFAULT_SEARCH_PAGE_SIZE
	}

	query := map[string]string{
		"q":     params.Query,
		"count": strconv.Itoa(count),
	}
	if params.Lang != "" {
		query["lang"] = params.Lang
	}
	if params.MaxId != 0 {
		query["max_id"] = strconv.FormatUint(params.MaxId, 10)
	}
	if params.SinceId != 0 {
		query["since_id"] = strconv.FormatUint(params.SinceId, 10)
	}

	resp, err := c.restyClient.R().
		SetContext(ctx).
		SetQueryParams(query).
		Get(c.host + API_SEARCH_TWEETS)
	if err != nil {
		logger.WithError(err).Error("failed to get search page")
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("search/tweets returned %s for [%s]", resp.Status(), params.Query)
	}

	tweets := make([]*Tweet, 0)
	for _, tweetJson := range gjson.GetBytes(resp.Body(), "statuses").Array() {
		t, err := parseTweetJson(tweetJson)
		if err != nil {
			logger.WithError(err).Debugln("skipping unparsable tweet")
			continue
		}
		tweets = append(tweets, t)
	}
	return tweets, nil
}
