package twitter

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/g8rswimmer/go-twitter/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/gentle-breeze49/birdkit/internal/cache"
	"github.com/gentle-breeze49/birdkit/internal/config"
	"github.com/gentle-breeze49/birdkit/internal/logger"
	"github.com/gentle-breeze49/birdkit/internal/observability"
	"github.com/gentle-breeze49/birdkit/internal/twitter/models"
	"github.com/gentle-breeze49/birdkit/internal/twitter/repository"
	"github.com/gentle-breeze49/birdkit/internal/twitter/text"
)

const (
	TwitterErrorTypeNotFound = "https://api.twitter.com/2/problems/resource-not-found"
)

type UsernameNotFoundError struct {
	Username string
}

func (u UsernameNotFoundError) Error() string {
	return fmt.Sprintf("twitter user %s not found", u.Username)
}

//go:generate mockery --with-expecter --name=Backend
type Backend interface {
	UserNameLookup(
		ctx context.Context,
		usernames []string,
		opts twitter.UserLookupOpts,
	) (*twitter.UserLookupResponse, error)
	TweetLookup(
		ctx context.Context,
		ids []string,
		opts twitter.TweetLookupOpts,
	) (*twitter.TweetLookupResponse, error)
}

//go:generate mockery --name=TwitterClient
type TwitterClient interface {
	GetUser(ctx context.Context, username string) (*models.User, error)
	// GetStatuses returns the statuses in the order of ids, unknown ids are
	// left out.
	GetStatuses(ctx context.Context, ids []int64) ([]*models.Status, error)
	// PrepareStatus returns the length the API will count for text, or a
	// *text.LengthError when it is too long to be posted.
	PrepareStatus(text string) (int, error)
}

//nolint:gochecknoglobals
var userFields = []twitter.UserField{
	twitter.UserFieldDescription,
	twitter.UserFieldName,
	twitter.UserFieldProfileImageURL,
	twitter.UserFieldCreatedAt,
	twitter.UserFieldPublicMetrics,
	twitter.UserFieldLocation,
	twitter.UserFieldProtected,
	twitter.UserFieldVerified,
	twitter.UserFieldURL,
}

//nolint:gochecknoglobals
var tweetFields = []twitter.TweetField{
	twitter.TweetFieldCreatedAt,
	twitter.TweetFieldAuthorID,
	twitter.TweetFieldEntities,
	twitter.TweetFieldPublicMetrics,
	twitter.TweetFieldLanguage,
	twitter.TweetFieldPossiblySensitve,
	twitter.TweetFieldSource,
	twitter.TweetFieldReferencedTweets,
	twitter.TweetFieldInReplyToUserID,
}

type twitterClient struct {
	twitter        Backend
	log            logger.Logger
	cache          cache.Cache[models.User]
	statuses       repository.StatusRepository
	shortURLLength int
	characterLimit int
}

func NewClient(
	conf config.Config,
	log logger.Logger,
	cache cache.Cache[models.User],
	statuses repository.StatusRepository,
	backend Backend,
) *twitterClient {
	return &twitterClient{
		cache:          cache,
		log:            log,
		statuses:       statuses,
		twitter:        backend,
		shortURLLength: conf.ShortURLLength,
		characterLimit: conf.CharacterLimit,
	}
}

func (c *twitterClient) GetUser(ctx context.Context, username string) (*models.User, error) {
	cacheKey := strings.Join([]string{"twitter", "user", strings.ToLower(username)}, "/")
	fromCache, err := c.cache.Get(ctx, cacheKey)
	if err == nil {
		c.log.WithField("key", cacheKey).Trace("twitter user cache hit")
		return fromCache, nil
	}
	if !errors.Is(err, cache.ErrMiss) {
		return nil, errors.Wrap(err, "error while retrieving twitter user from cache")
	}
	c.log.WithField("key", cacheKey).Trace("twitter user cache miss")

	lookup, err := c.twitter.UserNameLookup(ctx, []string{username}, twitter.UserLookupOpts{
		UserFields: userFields,
	})
	if err != nil {
		observability.CaptureError(err, map[string]string{"twitter.api": "v2"})
		return nil, errors.Wrap(err, "unable to fetch twitter user")
	}
	if lookup == nil || lookup.Raw == nil {
		return nil, errors.New("unable to fetch twitter user: empty response")
	}

	for _, e := range lookup.Raw.Errors {
		if e.Type == TwitterErrorTypeNotFound {
			return nil, UsernameNotFoundError{username}
		}
	}

	if len(lookup.Raw.Errors) != 0 || len(lookup.Raw.Users) == 0 {
		return nil, errors.New("unable to fetch twitter user")
	}

	user, err := userFromV2(lookup.Raw.Users[0])
	if err != nil {
		return nil, err
	}

	err = c.cache.Set(ctx, cacheKey, *user)
	if err != nil {
		c.log.WithError(err).Warn("unable to save twitter user to cache")
	}

	return user, nil
}

func (c *twitterClient) GetStatuses(ctx context.Context, ids []int64) ([]*models.Status, error) {
	found := make(map[int64]*models.Status, len(ids))
	var missing []string
	for _, id := range ids {
		if _, seen := found[id]; seen {
			continue
		}
		status, err := c.statuses.GetStatus(ctx, id)
		if err != nil {
			return nil, errors.Wrap(err, "error while retrieving status from repository")
		}
		found[id] = status
		if status == nil {
			missing = append(missing, strconv.FormatInt(id, 10))
		}
	}
	c.log.WithFields(logrus.Fields{
		"requested": len(ids),
		"missing":   len(missing),
	}).Trace("statuses looked up in repository")

	if len(missing) > 0 {
		fetched, err := c.lookupStatuses(ctx, missing)
		if err != nil {
			return nil, err
		}
		for _, status := range fetched {
			found[status.ID] = status
			if err := c.statuses.Store(ctx, status); err != nil {
				c.log.WithError(err).WithField("id", status.ID).Warn("unable to store status")
			}
		}
	}

	statuses := make([]*models.Status, 0, len(ids))
	for _, id := range ids {
		if status := found[id]; status != nil {
			statuses = append(statuses, status)
		}
	}
	return statuses, nil
}

func (c *twitterClient) lookupStatuses(ctx context.Context, ids []string) ([]*models.Status, error) {
	lookup, err := c.twitter.TweetLookup(ctx, ids, twitter.TweetLookupOpts{
		Expansions:  []twitter.Expansion{twitter.ExpansionAuthorID},
		TweetFields: tweetFields,
		UserFields:  userFields,
	})
	if err != nil {
		observability.CaptureError(err, map[string]string{"twitter.api": "v2"})
		return nil, errors.Wrap(err, "unable to fetch twitter statuses")
	}
	if lookup == nil || lookup.Raw == nil {
		return nil, errors.New("unable to fetch twitter statuses: empty response")
	}

	for _, e := range lookup.Raw.Errors {
		if e.Type != TwitterErrorTypeNotFound {
			return nil, errors.Errorf("unable to fetch twitter statuses: %s", e.Detail)
		}
		c.log.WithField("detail", e.Detail).Debug("twitter status not found")
	}

	authors := map[string]*twitter.UserObj{}
	if lookup.Raw.Includes != nil {
		for _, user := range lookup.Raw.Includes.Users {
			authors[user.ID] = user
		}
	}

	statuses := make([]*models.Status, 0, len(lookup.Raw.Tweets))
	for _, tweet := range lookup.Raw.Tweets {
		status, err := statusFromV2(tweet, authors)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}

func (c *twitterClient) PrepareStatus(status string) (int, error) {
	length, err := text.CheckLength(status, c.shortURLLength, c.characterLimit)
	if err != nil {
		c.log.WithFields(logrus.Fields{
			"length": length,
			"limit":  c.characterLimit,
		}).Debug("status rejected")
		return length, err
	}
	return length, nil
}
