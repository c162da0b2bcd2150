package twitterclient

import (
	"context"
	"fmt"

	"github.com/tidwall/gjson"
)

// Authenticate performs the application-only OAuth2 flow and installs
// the resulting bearer token on every subsequent request.
func (c *Client) Authenticate(ctx context.Context, consumerKey string, consumerSecret string) error {
	resp, err := c.restyClient.R().
		SetContext(ctx).
		SetBasicAuth(consumerKey, consumerSecret).
		SetFormData(map[string]string{"grant_type": "client_credentials"}).
		Post(c.host + API_OAUTH2_TOKEN)
	if err != nil {
		return fmt.Errorf("failed to request bearer token: %v", err)
	}
	if resp.IsError() {
		return fmt.Errorf("token endpoint returned %s", resp.Status())
	}

	token := gjson.GetBytes(resp.Body(), "access_token").String()
	if token == "" {
		return fmt.Errorf("token endpoint returned no access_token")
	}

	c.restyClient.SetAuthToken(token)
	return nil
}
