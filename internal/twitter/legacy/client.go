// Package legacy reads statuses and users from the v1.1 REST API, whose
// payloads have the exact shape of the models package.
package legacy

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dghubble/go-twitter/twitter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/gentle-breeze49/birdkit/internal/logger"
	"github.com/gentle-breeze49/birdkit/internal/observability"
	"github.com/gentle-breeze49/birdkit/internal/twitter/models"
)

// v1.1 error codes meaning the requested resource does not exist.
const (
	errorCodeNoStatus   = 144
	errorCodeNoUser     = 50
	errorCodeNoResource = 34
)

var ErrNotFound = errors.New("twitter resource not found")

type StatusService interface {
	Show(id int64, params *twitter.StatusShowParams) (*twitter.Tweet, *http.Response, error)
	Lookup(ids []int64, params *twitter.StatusLookupParams) ([]twitter.Tweet, *http.Response, error)
}

type UserShower interface {
	Show(params *twitter.UserShowParams) (*twitter.User, *http.Response, error)
}

type Client interface {
	ShowStatus(ctx context.Context, id int64) (*models.Status, error)
	LookupStatuses(ctx context.Context, ids []int64) ([]*models.Status, error)
	ShowUser(ctx context.Context, screenName string) (*models.User, error)
}

type legacyClient struct {
	log      logger.Logger
	statuses StatusService
	users    UserShower
}

func NewClient(log logger.Logger, statuses StatusService, users UserShower) *legacyClient {
	return &legacyClient{
		log:      log,
		statuses: statuses,
		users:    users,
	}
}

// NewFromHTTPClient builds the client on top of dghubble/go-twitter, the
// http client being in charge of authentication.
func NewFromHTTPClient(log logger.Logger, httpClient *http.Client) *legacyClient {
	client := twitter.NewClient(httpClient)
	return NewClient(log, client.Statuses, client.Users)
}

func (c *legacyClient) ShowStatus(ctx context.Context, id int64) (*models.Status, error) {
	span := observability.StartSpan(ctx, "twitter.status.show", map[string]any{"status.id": id})
	tweet, _, err := c.statuses.Show(id, &twitter.StatusShowParams{
		IncludeMyRetweet: twitter.Bool(true),
		IncludeEntities:  twitter.Bool(true),
	})
	observability.FinishSpan(span)
	if err != nil {
		return nil, c.apiError(err, "unable to fetch status")
	}
	return reencode(tweet, models.NewStatusFromJSON)
}

func (c *legacyClient) LookupStatuses(ctx context.Context, ids []int64) ([]*models.Status, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	span := observability.StartSpan(ctx, "twitter.status.lookup", map[string]any{"status.count": len(ids)})
	tweets, _, err := c.statuses.Lookup(ids, &twitter.StatusLookupParams{
		IncludeEntities: twitter.Bool(true),
	})
	observability.FinishSpan(span)
	if err != nil {
		return nil, c.apiError(err, "unable to lookup statuses")
	}
	statuses := make([]*models.Status, 0, len(tweets))
	for i := range tweets {
		status, err := reencode(&tweets[i], models.NewStatusFromJSON)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, status)
	}
	c.log.WithFields(logrus.Fields{
		"requested": len(ids),
		"found":     len(statuses),
	}).Trace("statuses looked up")
	return statuses, nil
}

func (c *legacyClient) ShowUser(ctx context.Context, screenName string) (*models.User, error) {
	span := observability.StartSpan(ctx, "twitter.user.show", map[string]any{"user.screen_name": screenName})
	user, _, err := c.users.Show(&twitter.UserShowParams{
		ScreenName:      screenName,
		IncludeEntities: twitter.Bool(false),
	})
	observability.FinishSpan(span)
	if err != nil {
		return nil, c.apiError(err, "unable to fetch user")
	}
	return reencode(user, models.NewUserFromJSON)
}

func (c *legacyClient) apiError(err error, message string) error {
	var apiErr twitter.APIError
	if errors.As(err, &apiErr) {
		for _, detail := range apiErr.Errors {
			switch detail.Code {
			case errorCodeNoStatus, errorCodeNoUser, errorCodeNoResource:
				c.log.WithField("code", detail.Code).Debug(detail.Message)
				return errors.Wrap(ErrNotFound, message)
			}
		}
	}
	observability.CaptureError(err, map[string]string{"twitter.api": "v1.1"})
	return errors.Wrap(err, message)
}

// reencode turns a decoded v1.1 object back into its JSON payload to build
// the model from it.
func reencode[T any, M any](value *T, build func([]byte) (*M, error)) (*M, error) {
	if value == nil {
		return nil, errors.New("empty response from twitter")
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return nil, errors.Wrap(err, "unable to encode twitter response")
	}
	return build(payload)
}
