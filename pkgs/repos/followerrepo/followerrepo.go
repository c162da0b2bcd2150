package followerrepo

import (
	"database/sql"

	"github.com/chanchavia/acquisitor/pkgs/model"
	"github.com/jmoiron/sqlx"
)

type Repo struct{}

func New() *Repo {
	return &Repo{}
}

// Get looks up the directed edge (follower, followed).
func (r *Repo) Get(db *sqlx.DB, followerId int64, followedId int64) (*model.Follower, error) {
	stmt := `SELECT * FROM followers WHERE follower_id=? AND followed_id=?`
	result := &model.Follower{}
	err := db.Get(result, stmt, followerId, followedId)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *Repo) Create(db *sqlx.DB, edge *model.Follower) error {
	stmt := `INSERT INTO followers(follower_id, followed_id) VALUES(:follower_id, :followed_id)`
	_, err := db.NamedExec(stmt, edge)
	return err
}

func (r *Repo) GetByFollowedId(db *sqlx.DB, followedId int64) ([]*model.Follower, error) {
	stmt := `SELECT * FROM followers WHERE followed_id=?`
	var edges []*model.Follower
	err := db.Select(&edges, stmt, followedId)
	return edges, err
}
