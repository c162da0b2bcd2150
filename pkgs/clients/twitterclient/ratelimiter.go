package twitterclient

import (
	"context"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"
)

////////////////////////////////////////////////////////////////////////////////
// Rate Limiting Structures and Logic
////////////////////////////////////////////////////////////////////////////////

// The API publishes per-endpoint quotas through X-Rate-Limit-* response
// headers. The limiter tracks them per request path and sleeps through
// the reset window once a path is nearly drained, the same waiting
// behavior the ingestion pipeline expects from its client.

// pathLimit holds the rate limit state of a single endpoint path.
type pathLimit struct {
	resetTime time.Time
	remaining int
	limit     int
}

// exhausted reports whether another request would cross the quota.
func (pl *pathLimit) exhausted() bool {
	threshold := max(2*pl.limit/100, 1)
	return pl.remaining <= threshold && time.Now().Before(pl.resetTime)
}

type rateLimiter struct {
	mtx    sync.Mutex
	limits map[string]*pathLimit
}

func newRateLimiter() *rateLimiter {
	return &rateLimiter{limits: make(map[string]*pathLimit)}
}

// check blocks until a request to the path may proceed. Waiting is
// bounded only by context cancellation.
func (rl *rateLimiter) check(ctx context.Context, u *url.URL) error {
	rl.mtx.Lock()
	defer rl.mtx.Unlock()

	limit, ok := rl.limits[u.Path]
	if !ok || time.Now().After(limit.resetTime) {
		return nil
	}
	if !limit.exhausted() {
		limit.remaining--
		return nil
	}

	insurance := 5 * time.Second
	log.
		WithFields(log.Fields{
			"path":  u.Path,
			"until": limit.resetTime.Add(insurance),
		}).
		Warnln("[RateLimiter] start sleeping")

	select {
	case <-time.After(time.Until(limit.resetTime) + insurance):
		delete(rl.limits, u.Path)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// update records the rate limit headers of a response.
func (rl *rateLimiter) update(u *url.URL, resp *resty.Response) {
	limit := makePathLimit(resp)
	if limit == nil {
		return // no rate limit information
	}

	rl.mtx.Lock()
	defer rl.mtx.Unlock()
	rl.limits[u.Path] = limit
}

// makePathLimit creates a path limit from HTTP response headers.
func makePathLimit(resp *resty.Response) *pathLimit {
	header := resp.Header()
	limit := header.Get("X-Rate-Limit-Limit")
	remaining := header.Get("X-Rate-Limit-Remaining")
	resetTime := header.Get("X-Rate-Limit-Reset")
	if limit == "" || remaining == "" || resetTime == "" {
		return nil
	}

	limitNum, err := strconv.Atoi(limit)
	if err != nil {
		return nil
	}
	remainingNum, err := strconv.Atoi(remaining)
	if err != nil {
		return nil
	}
	resetTimeNum, err := strconv.ParseInt(resetTime, 10, 64)
	if err != nil {
		return nil
	}

	return &pathLimit{
		resetTime: time.Unix(resetTimeNum, 0),
		remaining: remainingNum,
		limit:     limitNum,
	}
}
