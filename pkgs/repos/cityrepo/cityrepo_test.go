package cityrepo

import (
	"fmt"
	"os"
	"testing"

	"github.com/chanchavia/acquisitor/pkgs/model"
	"github.com/chanchavia/acquisitor/pkgs/repos/countryrepo"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

func opentmpdb() *sqlx.DB {
	tmpFile, err := os.CreateTemp("", "")
	if err != nil {
		panic(err)
	}

	db, err := sqlx.Connect("sqlite3", fmt.Sprintf("file:%s?_journal_mode=WAL", tmpFile.Name()))
	if err != nil {
		panic(err)
	}

	model.CreateTables(db)
	return db
}

func createCountry(db *sqlx.DB, name string) *model.Country {
	country, err := countryrepo.New().GetOrCreate(db, name)
	if err != nil {
		panic(err)
	}
	return country
}

func TestCreateAndGet(t *testing.T) {
	db := opentmpdb()
	defer db.Close()
	repo := New()

	france := createCountry(db, "France")

	city := &model.City{Name: "Paris", CountryId: france.Id}
	if err := repo.Create(db, city); err != nil {
		t.Fatal(err)
	}
	if city.Id == 0 {
		t.Error("id not assigned on create")
	}

	record, err := repo.Get(db, "Paris", france.Id)
	if err != nil {
		t.Fatal(err)
	}
	if record == nil || record.Id != city.Id || record.CountryId != france.Id {
		t.Error("record mismatch after create city")
	}

	record, err = repo.GetById(db, city.Id)
	if err != nil {
		t.Fatal(err)
	}
	if record == nil || record.Name != "Paris" {
		t.Error("record mismatch on get by id")
	}
}

func TestSameNameDifferentCountry(t *testing.T) {
	db := opentmpdb()
	defer db.Close()
	repo := New()

	france := createCountry(db, "France")
	states := createCountry(db, "United States")

	french, err := repo.GetOrCreate(db, "Paris", france.Id)
	if err != nil {
		t.Fatal(err)
	}
	american, err := repo.GetOrCreate(db, "Paris", states.Id)
	if err != nil {
		t.Fatal(err)
	}
	if french.Id == american.Id {
		t.Error("cities in different countries must be distinct rows")
	}

	again, err := repo.GetOrCreate(db, "Paris", france.Id)
	if err != nil {
		t.Fatal(err)
	}
	if again.Id != french.Id {
		t.Error("get or create produced two rows for the same (name, country)")
	}
}

func TestUniqueNameCountryPair(t *testing.T) {
	db := opentmpdb()
	defer db.Close()
	repo := New()

	spain := createCountry(db, "Spain")
	if err := repo.Create(db, &model.City{Name: "Valencia", CountryId: spain.Id}); err != nil {
		t.Fatal(err)
	}
	if err := repo.Create(db, &model.City{Name: "Valencia", CountryId: spain.Id}); err == nil {
		t.Error("expected unique violation on duplicate (name, country)")
	}
}
