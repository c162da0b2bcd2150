package acquisitor

import (
	"context"
	"fmt"

	"github.com/chanchavia/acquisitor/pkgs/clients/twitterclient"
	"github.com/chanchavia/acquisitor/pkgs/model"
	log "github.com/sirupsen/logrus"
)

// RegisterSearch records every tweet matching the phrase, paging the
// search endpoint backwards by tweet id until it is drained or the
// configured result cap is reached. Tweets and search edges already on
// record are reused, so overlapping re-runs create no duplicates.
func (a *Acquisitor) RegisterSearch(ctx context.Context, phrase string, lang string) error {
	logger := a.logger("Acquisitor.RegisterSearch").WithFields(log.Fields{
		"phrase": phrase,
		"lang":   lang,
	})

	keyword, err := a.keywordRepo.GetOrCreate(a.db, phrase)
	if err != nil {
		return err
	}

	var total int64
	var maxId uint64
	for total < a.cfg.MaxSearchResults {
		page, err := a.client.SearchTweets(ctx, twitterclient.SearchParams{
			Query: phrase,
			Count: a.cfg.SearchPageSize,
			Lang:  lang,
			MaxId: maxId,
		})
		if err != nil {
			return fmt.Errorf("failed to search [%s]: %w", phrase, err)
		}
		if len(page) == 0 {
			logger.Infoln("no more tweets found")
			break
		}

		for _, apiTweet := range page {
			if err := a.registerTweet(apiTweet, keyword, lang); err != nil {
				return err
			}
		}

		total += int64(len(page))
		maxId = nextSearchPage(page)
	}

	logger.WithField("tweets", total).Infoln("search is registered")
	return nil
}

// nextSearchPage returns the max_id bound for the page following the
// given one. The endpoint has no page token, so backward pagination
// asks for ids strictly below the oldest id seen so far.
func nextSearchPage(page []*twitterclient.Tweet) uint64 {
	return page[len(page)-1].TweetId - 1
}

func (a *Acquisitor) registerTweet(apiTweet *twitterclient.Tweet, keyword *model.Keyword, lang string) error {
	if apiTweet.User == nil {
		return fmt.Errorf("tweet %d carries no author", apiTweet.TweetId)
	}
	author, err := a.getOrCreateUser(apiTweet.User)
	if err != nil {
		return err
	}

	tweet, err := a.tweetRepo.GetByTweetId(a.db, apiTweet.TweetId)
	if err != nil {
		return err
	}
	if tweet == nil {
		tweet = &model.Tweet{
			TweetId:         apiTweet.TweetId,
			AuthorId:        author.Id,
			CreatedAt:       apiTweet.CreatedAt,
			FavouritesCount: apiTweet.FavoriteCount,
			RetweetsCount:   apiTweet.RetweetCount,
			Text:            apiTweet.Text,
			Reply:           apiTweet.IsReply,
		}
		if err := a.tweetRepo.Create(a.db, tweet); err != nil {
			return err
		}
	}

	edge, err := a.searchRepo.Get(a.db, keyword.Id, tweet.Id)
	if err != nil {
		return err
	}
	if edge != nil {
		return nil
	}
	return a.searchRepo.Create(a.db, &model.Search{
		KeywordId: keyword.Id,
		TweetId:   tweet.Id,
		Lang:      lang,
	})
}
