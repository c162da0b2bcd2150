// Package acquisitor drives the ingestion pipeline: it pulls pages
// from the API client and persists users, follower edges, tweets and
// search edges with deduplication.
package acquisitor

import (
	"context"

	"github.com/chanchavia/acquisitor/pkgs/clients/twitterclient"
	"github.com/chanchavia/acquisitor/pkgs/geo"
	"github.com/chanchavia/acquisitor/pkgs/repos/followerrepo"
	"github.com/chanchavia/acquisitor/pkgs/repos/keywordrepo"
	"github.com/chanchavia/acquisitor/pkgs/repos/searchrepo"
	"github.com/chanchavia/acquisitor/pkgs/repos/tweetrepo"
	"github.com/chanchavia/acquisitor/pkgs/repos/userrepo"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	log "github.com/sirupsen/logrus"
)

////////////////////////////////////////////////////////////////////////////////

// TwitterClient is the surface of the API client the pipeline needs.
// Rate-limit waiting is the client's responsibility; errors returned
// from it abort the run.
type TwitterClient interface {
	GetUserByScreenName(ctx context.Context, screenName string) (*twitterclient.User, error)
	ListFollowers(ctx context.Context, screenName string, cursor int64) ([]*twitterclient.User, int64, error)
	SearchTweets(ctx context.Context, params twitterclient.SearchParams) ([]*twitterclient.Tweet, error)
	DoFollowByUserId(ctx context.Context, userId uint64) error
	DoUnfollowByUserId(ctx context.Context, userId uint64) error
}

////////////////////////////////////////////////////////////////////////////////

const (
	DEFAULT_SEARCH_PAGE_SIZE   = twitterclient.DEFAULT_SEARCH_PAGE_SIZE
	DEFAULT_MAX_SEARCH_RESULTS = 10_000_000
)

type Config struct {
	SearchPageSize   int
	MaxSearchResults int64
}

type Acquisitor struct {
	cfg      Config
	db       *sqlx.DB
	client   TwitterClient
	resolver *geo.Resolver
	runId    string

	userRepo     *userrepo.Repo
	followerRepo *followerrepo.Repo
	keywordRepo  *keywordrepo.Repo
	tweetRepo    *tweetrepo.Repo
	searchRepo   *searchrepo.Repo
}

func New(cfg Config, db *sqlx.DB, client TwitterClient, resolver *geo.Resolver) *Acquisitor {
	if cfg.SearchPageSize <= 0 {
		cfg.SearchPageSize = DEFAULT_SEARCH_PAGE_SIZE
	}
	if cfg.MaxSearchResults <= 0 {
		cfg.MaxSearchResults = DEFAULT_MAX_SEARCH_RESULTS
	}

	return &Acquisitor{
		cfg:      cfg,
		db:       db,
		client:   client,
		resolver: resolver,
		runId:    uuid.NewString(),

		userRepo:     userrepo.New(),
		followerRepo: followerrepo.New(),
		keywordRepo:  keywordrepo.New(),
		tweetRepo:    tweetrepo.New(),
		searchRepo:   searchrepo.New(),
	}
}

func (a *Acquisitor) logger(caller string) *log.Entry {
	return log.WithFields(log.Fields{"run_id": a.runId, "caller": caller})
}
