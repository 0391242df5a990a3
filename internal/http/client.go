// Package http abstracts the client fetching remote media so it can be
// replaced in tests.
package http

import "net/http"

var _ Client = (*http.Client)(nil)

//go:generate mockery --name=Client
type Client interface {
	Do(req *http.Request) (*http.Response, error)
}
