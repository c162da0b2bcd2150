package userrepo

import (
	"database/sql"

	"github.com/chanchavia/acquisitor/pkgs/model"
	"github.com/jmoiron/sqlx"
)

type Repo struct{}

func New() *Repo {
	return &Repo{}
}

func (r *Repo) GetByTwitterId(db *sqlx.DB, twitterId uint64) (*model.User, error) {
	stmt := `SELECT * FROM users WHERE twitter_id=?`
	result := &model.User{}
	err := db.Get(result, stmt, twitterId)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *Repo) GetByHandle(db *sqlx.DB, handle string) (*model.User, error) {
	stmt := `SELECT * FROM users WHERE handle=?`
	result := &model.User{}
	err := db.Get(result, stmt, handle)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *Repo) GetById(db *sqlx.DB, id int64) (*model.User, error) {
	stmt := `SELECT * FROM users WHERE id=?`
	result := &model.User{}
	err := db.Get(result, stmt, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *Repo) Create(db *sqlx.DB, usr *model.User) error {
	stmt := `INSERT INTO users(twitter_id, handle, name, description, city_id, created_at, days_since_tweet, followers_count, following_count, favourites_count, statuses_count)
			 VALUES(:twitter_id, :handle, :name, :description, :city_id, :created_at, :days_since_tweet, :followers_count, :following_count, :favourites_count, :statuses_count)`
	res, err := db.NamedExec(stmt, usr)
	if err != nil {
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}

	usr.Id = id
	return nil
}

func (r *Repo) CountAll(db *sqlx.DB) (int, error) {
	var count int
	err := db.Get(&count, `SELECT COUNT(*) FROM users`)
	return count, err
}
