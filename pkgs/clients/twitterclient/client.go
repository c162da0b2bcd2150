package twitterclient

import (
	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

////////////////////////////////////////////////////////////////////////////////

// Client wraps the v1.1 REST API with application-only authentication
// and transparent rate-limit waiting.
type Client struct {
	restyClient *resty.Client
	rateLimiter *rateLimiter
	pacer       *rate.Limiter
	host        string
}

func New() *Client {
	return &Client{
		restyClient: resty.New(),
		host:        API_HOST,
	}
}

////////////////////////////////////////////////////////////////////////////////

func (c *Client) SetLogger(logger *log.Logger) {
	c.restyClient.SetLogger(logger)
}

// SetHost overrides the API host, mainly for tests.
func (c *Client) SetHost(host string) {
	c.host = host
}

// SetRequestRate spaces requests at most rps per second, on top of the
// header-driven rate limiter.
func (c *Client) SetRequestRate(rps float64) {
	if rps <= 0 {
		return
	}
	c.pacer = rate.NewLimiter(rate.Limit(rps), 1)
}
