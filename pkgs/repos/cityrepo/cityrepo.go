package cityrepo

import (
	"database/sql"

	"github.com/chanchavia/acquisitor/pkgs/model"
	"github.com/jmoiron/sqlx"
)

type Repo struct{}

func New() *Repo {
	return &Repo{}
}

func (r *Repo) Get(db *sqlx.DB, name string, countryId int64) (*model.City, error) {
	stmt := `SELECT * FROM cities WHERE name=? AND country_id=?`
	result := &model.City{}
	err := db.Get(result, stmt, name, countryId)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *Repo) GetById(db *sqlx.DB, id int64) (*model.City, error) {
	stmt := `SELECT * FROM cities WHERE id=?`
	result := &model.City{}
	err := db.Get(result, stmt, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *Repo) Create(db *sqlx.DB, city *model.City) error {
	stmt := `INSERT INTO cities(name, country_id) VALUES(:name, :country_id)`
	res, err := db.NamedExec(stmt, city)
	if err != nil {
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}

	city.Id = id
	return nil
}

// GetOrCreate returns the city row keyed on (name, country_id),
// inserting it on first reference.
func (r *Repo) GetOrCreate(db *sqlx.DB, name string, countryId int64) (*model.City, error) {
	city, err := r.Get(db, name, countryId)
	if err != nil || city != nil {
		return city, err
	}

	city = &model.City{Name: name, CountryId: countryId}
	if err := r.Create(db, city); err != nil {
		return nil, err
	}
	return city, nil
}
