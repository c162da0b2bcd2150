package keywordrepo

import (
	"database/sql"

	"github.com/chanchavia/acquisitor/pkgs/model"
	"github.com/jmoiron/sqlx"
)

type Repo struct{}

func New() *Repo {
	return &Repo{}
}

func (r *Repo) GetByText(db *sqlx.DB, text string) (*model.Keyword, error) {
	stmt := `SELECT * FROM keywords WHERE text=?`
	result := &model.Keyword{}
	err := db.Get(result, stmt, text)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *Repo) Create(db *sqlx.DB, keyword *model.Keyword) error {
	stmt := `INSERT INTO keywords(text) VALUES(:text)`
	res, err := db.NamedExec(stmt, keyword)
	if err != nil {
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}

	keyword.Id = id
	return nil
}

// GetOrCreate returns the keyword row for a search phrase, inserting
// it on first reference.
func (r *Repo) GetOrCreate(db *sqlx.DB, text string) (*model.Keyword, error) {
	keyword, err := r.GetByText(db, text)
	if err != nil || keyword != nil {
		return keyword, err
	}

	keyword = &model.Keyword{Text: text}
	if err := r.Create(db, keyword); err != nil {
		return nil, err
	}
	return keyword, nil
}
