package keywordrepo

import (
	"fmt"
	"os"
	"testing"

	"github.com/chanchavia/acquisitor/pkgs/model"
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

func TestCreateAndGet(t *testing.T) {
	db := opentmpdb()
	defer db.Close()
	repo := New()

	keyword := &model.Keyword{Text: "hello world"}
	if err := repo.Create(db, keyword); err != nil {
		t.Fatal(err)
	}
	if keyword.Id == 0 {
		t.Error("id not assigned on create")
	}

	record, err := repo.GetByText(db, "hello world")
	if err != nil {
		t.Fatal(err)
	}
	if record == nil || record.Id != keyword.Id {
		t.Error("record mismatch after create keyword")
	}

	record, err = repo.GetByText(db, "missing")
	if err != nil {
		t.Fatal(err)
	}
	if record != nil {
		t.Error("expected no record for unknown phrase")
	}
}

func TestGetOrCreate(t *testing.T) {
	db := opentmpdb()
	defer db.Close()
	repo := New()

	first, err := repo.GetOrCreate(db, "hello world")
	if err != nil {
		t.Fatal(err)
	}
	second, err := repo.GetOrCreate(db, "hello world")
	if err != nil {
		t.Fatal(err)
	}
	if first.Id != second.Id {
		t.Error("get or create produced two rows for the same phrase")
	}

	var count int
	if err := db.Get(&count, `SELECT COUNT(*) FROM keywords`); err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("keywords count = %d want 1", count)
	}
}
