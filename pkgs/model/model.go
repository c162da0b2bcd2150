package model

import (
	"database/sql"
	"fmt"
	"time"
)

type Country struct {
	Id        int64     `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

type City struct {
	Id        int64     `db:"id"`
	Name      string    `db:"name"`
	CountryId int64     `db:"country_id"`
	CreatedAt time.Time `db:"created_at"`
}

// User is a snapshot of a remote account at first encounter. Rows are
// never updated afterwards.
type User struct {
	Id              int64         `db:"id"`
	TwitterId       uint64        `db:"twitter_id"`
	Handle          string        `db:"handle"`
	Name            string        `db:"name"`
	Description     string        `db:"description"`
	CityId          sql.NullInt64 `db:"city_id"`
	CreatedAt       time.Time     `db:"created_at"`
	DaysSinceTweet  sql.NullInt64 `db:"days_since_tweet"`
	FollowersCount  int           `db:"followers_count"`
	FollowingCount  int           `db:"following_count"`
	FavouritesCount int           `db:"favourites_count"`
	StatusesCount   int           `db:"statuses_count"`
	RecordedAt      time.Time     `db:"recorded_at"`
}

// Follower is a directed edge: follower follows followed.
type Follower struct {
	FollowerId int64     `db:"follower_id"`
	FollowedId int64     `db:"followed_id"`
	CreatedAt  time.Time `db:"created_at"`
}

type Keyword struct {
	Id        int64     `db:"id"`
	Text      string    `db:"text"`
	CreatedAt time.Time `db:"created_at"`
}

type Tweet struct {
	Id              int64     `db:"id"`
	TweetId         uint64    `db:"tweet_id"`
	AuthorId        int64     `db:"author_id"`
	CreatedAt       time.Time `db:"created_at"`
	FavouritesCount int       `db:"favourites_count"`
	RetweetsCount   int       `db:"retweets_count"`
	Text            string    `db:"text"`
	Reply           bool      `db:"reply"`
	RecordedAt      time.Time `db:"recorded_at"`
}

// Search marks that a tweet was found while searching a keyword.
type Search struct {
	KeywordId int64     `db:"keyword_id"`
	TweetId   int64     `db:"tweet_id"`
	Lang      string    `db:"lang"`
	CreatedAt time.Time `db:"created_at"`
}

func (c *Country) String() string {
	return fmt.Sprintf("Country(%s)", c.Name)
}

func (c *City) String() string {
	return fmt.Sprintf("City(%s, %d)", c.Name, c.CountryId)
}

func (u *User) String() string {
	return fmt.Sprintf("User(%d, %s)", u.TwitterId, u.Handle)
}
