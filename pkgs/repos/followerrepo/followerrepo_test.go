package followerrepo

import (
	"fmt"
	"os"
	"testing"

	"github.com/chanchavia/acquisitor/pkgs/model"
	"github.com/chanchavia/acquisitor/pkgs/repos/userrepo"
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

func createUser(db *sqlx.DB, n int) *model.User {
	usr := &model.User{
		TwitterId: uint64(1000 + n),
		Handle:    fmt.Sprintf("user%d", n),
		Name:      fmt.Sprintf("User %d", n),
	}
	if err := userrepo.New().Create(db, usr); err != nil {
		panic(err)
	}
	return usr
}

func TestCreateAndGet(t *testing.T) {
	db := opentmpdb()
	defer db.Close()
	repo := New()

	alice := createUser(db, 1)
	bob := createUser(db, 2)

	edge, err := repo.Get(db, alice.Id, bob.Id)
	if err != nil {
		t.Fatal(err)
	}
	if edge != nil {
		t.Error("expected no edge before create")
	}

	if err := repo.Create(db, &model.Follower{FollowerId: alice.Id, FollowedId: bob.Id}); err != nil {
		t.Fatal(err)
	}

	edge, err = repo.Get(db, alice.Id, bob.Id)
	if err != nil {
		t.Fatal(err)
	}
	if edge == nil || edge.FollowerId != alice.Id || edge.FollowedId != bob.Id {
		t.Error("record mismatch after create edge")
	}

	// the edge is directed
	edge, err = repo.Get(db, bob.Id, alice.Id)
	if err != nil {
		t.Fatal(err)
	}
	if edge != nil {
		t.Error("reverse edge should not exist")
	}
}

func TestDuplicateEdge(t *testing.T) {
	db := opentmpdb()
	defer db.Close()
	repo := New()

	alice := createUser(db, 1)
	bob := createUser(db, 2)

	if err := repo.Create(db, &model.Follower{FollowerId: alice.Id, FollowedId: bob.Id}); err != nil {
		t.Fatal(err)
	}
	if err := repo.Create(db, &model.Follower{FollowerId: alice.Id, FollowedId: bob.Id}); err == nil {
		t.Error("expected primary key violation on duplicate edge")
	}
}

func TestGetByFollowedId(t *testing.T) {
	db := opentmpdb()
	defer db.Close()
	repo := New()

	seed := createUser(db, 0)
	n := 4
	for i := 1; i <= n; i++ {
		follower := createUser(db, i)
		if err := repo.Create(db, &model.Follower{FollowerId: follower.Id, FollowedId: seed.Id}); err != nil {
			t.Fatal(err)
		}
	}

	edges, err := repo.GetByFollowedId(db, seed.Id)
	if err != nil {
		t.Fatal(err)
	}
	if len(edges) != n {
		t.Errorf("edge count = %d want %d", len(edges), n)
	}
}
