package countryrepo

import (
	"database/sql"

	"github.com/chanchavia/acquisitor/pkgs/model"
	"github.com/jmoiron/sqlx"
)

type Repo struct{}

func New() *Repo {
	return &Repo{}
}

func (r *Repo) GetByName(db *sqlx.DB, name string) (*model.Country, error) {
	stmt := `SELECT * FROM countries WHERE name=?`
	result := &model.Country{}
	err := db.Get(result, stmt, name)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *Repo) Create(db *sqlx.DB, country *model.Country) error {
	stmt := `INSERT INTO countries(name) VALUES(:name)`
	res, err := db.NamedExec(stmt, country)
	if err != nil {
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}

	country.Id = id
	return nil
}

// GetOrCreate returns the country row for name, inserting it on first
// reference.
func (r *Repo) GetOrCreate(db *sqlx.DB, name string) (*model.Country, error) {
	country, err := r.GetByName(db, name)
	if err != nil || country != nil {
		return country, err
	}

	country = &model.Country{Name: name}
	if err := r.Create(db, country); err != nil {
		return nil, err
	}
	return country, nil
}
