package twitter

import (
	"fmt"
	"net/http"
)

type Authorizer struct {
	Token string
}

func (a Authorizer) Add(req *http.Request) {
	req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", a.Token))
}

// AuthorizedTransport adds the bearer token to requests made by clients
// that do not accept an Authorizer, like the v1.1 one.
type AuthorizedTransport struct {
	Authorizer   Authorizer
	RoundTripper http.RoundTripper
}

func (t *AuthorizedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	authorized := req.Clone(req.Context())
	t.Authorizer.Add(authorized)
	return t.transport().RoundTrip(authorized) //nolint:wrapcheck
}

func (t *AuthorizedTransport) transport() http.RoundTripper {
	if t.RoundTripper == nil {
		return http.DefaultTransport
	}
	return t.RoundTripper
}
