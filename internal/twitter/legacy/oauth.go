package legacy

import (
	"context"
	"net/http"

	"github.com/dghubble/oauth1"
)

// Credentials are the OAuth1 user context keys, required by the v1.1
// endpoints that act on behalf of an account.
type Credentials struct {
	ConsumerKey    string
	ConsumerSecret string
	AccessToken    string
	AccessSecret   string
}

func (c Credentials) Complete() bool {
	return c.ConsumerKey != "" && c.ConsumerSecret != "" && c.AccessToken != "" && c.AccessSecret != ""
}

// NewUserContextHTTPClient signs every request with creds before handing it
// to base.
func NewUserContextHTTPClient(creds Credentials, base http.RoundTripper) *http.Client {
	ctx := context.WithValue(context.Background(), oauth1.HTTPClient, &http.Client{Transport: base})
	return oauth1.NewConfig(creds.ConsumerKey, creds.ConsumerSecret).
		Client(ctx, oauth1.NewToken(creds.AccessToken, creds.AccessSecret))
}
