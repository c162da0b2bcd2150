package twitterclient

import (
	"fmt"
	"time"

	"github.com/tidwall/gjson"
)

////////////////////////////////////////////////////////////////////////////////

// User represents an account as returned by the API.
type User struct {
	TwitterId       uint64    // External unique identifier
	ScreenName      string    // Handle
	Name            string    // Display name
	Description     string    // Profile description
	Location        string    // Free-text profile location, may be blank
	Lang            string    // Account language
	CreatedAt       time.Time // Account creation date
	FollowersCount  int
	FriendsCount    int // Number of accounts this user follows
	FavouritesCount int
	StatusesCount   int
	Status          *Tweet // Most recent status, nil when absent
}

func (user *User) Title() string {
	return fmt.Sprintf("%s(%s)", user.Name, user.ScreenName)
}

// Tweet represents a status as returned by the API.
type Tweet struct {
	TweetId       uint64
	User          *User // Author, nil when embedded as User.Status
	CreatedAt     time.Time
	FavoriteCount int
	RetweetCount  int
	Text          string
	IsReply       bool
}

////////////////////////////////////////////////////////////////////////////////

// parseUserJson parses a user object from an API JSON response.
func parseUserJson(userJson gjson.Result) (*User, error) {
	if !userJson.Get("id_str").Exists() {
		return nil, fmt.Errorf("missing user id in: %s", userJson.String())
	}
	createdAt, err := time.Parse(TIME_LAYOUT, userJson.Get("created_at").String())
	if err != nil {
		return nil, fmt.Errorf("failed to parse user created_at: %v", err)
	}

	usr := &User{
		TwitterId:       userJson.Get("id").Uint(),
		ScreenName:      userJson.Get("screen_name").String(),
		Name:            userJson.Get("name").String(),
		Description:     userJson.Get("description").String(),
		Location:        userJson.Get("location").String(),
		Lang:            userJson.Get("lang").String(),
		CreatedAt:       createdAt,
		FollowersCount:  int(userJson.Get("followers_count").Int()),
		FriendsCount:    int(userJson.Get("friends_count").Int()),
		FavouritesCount: int(userJson.Get("favourites_count").Int()),
		StatusesCount:   int(userJson.Get("statuses_count").Int()),
	}

	if status := userJson.Get("status"); status.Exists() && status.Type != gjson.Null {
		tweet, err := parseTweetJson(status)
		if err == nil {
			usr.Status = tweet
		}
	}
	return usr, nil
}

// parseTweetJson parses a status object from an API JSON response.
func parseTweetJson(tweetJson gjson.Result) (*Tweet, error) {
	if !tweetJson.Get("id_str").Exists() {
		return nil, fmt.Errorf("missing tweet id in: %s", tweetJson.String())
	}
	createdAt, err := time.Parse(TIME_LAYOUT, tweetJson.Get("created_at").String())
	if err != nil {
		return nil, fmt.Errorf("failed to parse tweet created_at: %v", err)
	}

	tweet := &Tweet{
		TweetId:       tweetJson.Get("id").Uint(),
		CreatedAt:     createdAt,
		FavoriteCount: int(tweetJson.Get("favorite_count").Int()),
		RetweetCount:  int(tweetJson.Get("retweet_count").Int()),
		Text:          tweetJson.Get("text").String(),
		// non-replies carry an explicit null
		IsReply: tweetJson.Get("in_reply_to_status_id").Type != gjson.Null,
	}

	if user := tweetJson.Get("user"); user.Exists() && user.Type != gjson.Null {
		author, err := parseUserJson(user)
		if err == nil {
			tweet.User = author
		}
	}
	return tweet, nil
}
