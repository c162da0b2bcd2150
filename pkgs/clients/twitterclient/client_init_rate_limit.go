package twitterclient

import (
	"net/url"

	"github.com/go-resty/resty/v2"
)

// SetRateLimit installs the rate-limit hooks on the underlying HTTP
// client. Idempotent.
func (c *Client) SetRateLimit() {
	if c.rateLimiter != nil {
		return
	}
	c.rateLimiter = newRateLimiter()

	c.restyClient.OnBeforeRequest(func(client *resty.Client, req *resty.Request) error {
		if c.pacer != nil {
			if err := c.pacer.Wait(req.Context()); err != nil {
				return err
			}
		}

		u, err := url.Parse(req.URL)
		if err != nil {
			return err
		}
		return c.rateLimiter.check(req.Context(), u)
	})

	c.restyClient.OnAfterResponse(func(client *resty.Client, resp *resty.Response) error {
		if resp.Request != nil && resp.Request.RawRequest != nil {
			c.rateLimiter.update(resp.Request.RawRequest.URL, resp)
		}
		return nil
	})
}
