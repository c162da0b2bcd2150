package tweetrepo

import (
	"database/sql"

	"github.com/chanchavia/acquisitor/pkgs/model"
	"github.com/jmoiron/sqlx"
)

type Repo struct{}

func New() *Repo {
	return &Repo{}
}

// GetByTweetId looks up a tweet by its external identifier.
func (r *Repo) GetByTweetId(db *sqlx.DB, tweetId uint64) (*model.Tweet, error) {
	stmt := `SELECT * FROM tweets WHERE tweet_id=?`
	result := &model.Tweet{}
	err := db.Get(result, stmt, tweetId)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *Repo) Create(db *sqlx.DB, tweet *model.Tweet) error {
	stmt := `INSERT INTO tweets(tweet_id, author_id, created_at, favourites_count, retweets_count, text, reply)
			 VALUES(:tweet_id, :author_id, :created_at, :favourites_count, :retweets_count, :text, :reply)`
	res, err := db.NamedExec(stmt, tweet)
	if err != nil {
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}

	tweet.Id = id
	return nil
}

func (r *Repo) GetByAuthorId(db *sqlx.DB, authorId int64) ([]*model.Tweet, error) {
	stmt := `SELECT * FROM tweets WHERE author_id=? ORDER BY created_at DESC`
	var tweets []*model.Tweet
	err := db.Select(&tweets, stmt, authorId)
	return tweets, err
}

func (r *Repo) CountAll(db *sqlx.DB) (int, error) {
	var count int
	err := db.Get(&count, `SELECT COUNT(*) FROM tweets`)
	return count, err
}
