package searchrepo

import (
	"database/sql"

	"github.com/chanchavia/acquisitor/pkgs/model"
	"github.com/jmoiron/sqlx"
)

type Repo struct{}

func New() *Repo {
	return &Repo{}
}

// Get looks up the (keyword, tweet) edge.
func (r *Repo) Get(db *sqlx.DB, keywordId int64, tweetId int64) (*model.Search, error) {
	stmt := `SELECT * FROM searches WHERE keyword_id=? AND tweet_id=?`
	result := &model.Search{}
	err := db.Get(result, stmt, keywordId, tweetId)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *Repo) Create(db *sqlx.DB, search *model.Search) error {
	stmt := `INSERT INTO searches(keyword_id, tweet_id, lang) VALUES(:keyword_id, :tweet_id, :lang)`
	_, err := db.NamedExec(stmt, search)
	return err
}

func (r *Repo) GetByKeywordId(db *sqlx.DB, keywordId int64) ([]*model.Search, error) {
	stmt := `SELECT * FROM searches WHERE keyword_id=?`
	var edges []*model.Search
	err := db.Select(&edges, stmt, keywordId)
	return edges, err
}
