package twitter

import (
	"strconv"
	"time"

	"github.com/g8rswimmer/go-twitter/v2"
	"github.com/pkg/errors"

	"github.com/gentle-breeze49/birdkit/internal/twitter/models"
)

type ReferenceType string

const (
	ReferenceTypeRetweet   ReferenceType = "retweeted"
	ReferenceTypeRepliedTo ReferenceType = "replied_to"
)

// createdAtFromV2 converts the RFC3339 dates of the v2 API into the layout
// used by the v1.1 payloads.
func createdAtFromV2(createdAt string) (string, error) {
	if createdAt == "" {
		return "", nil
	}
	parsed, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return "", errors.Wrapf(err, "unable to parse creation date %q", createdAt)
	}
	return parsed.UTC().Format(models.CreatedAtLayout), nil
}

func parseID(id string) (int64, error) {
	if id == "" {
		return 0, nil
	}
	parsed, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid twitter id %q", id)
	}
	return parsed, nil
}

func userFromV2(user *twitter.UserObj) (*models.User, error) {
	id, err := parseID(user.ID)
	if err != nil {
		return nil, err
	}
	createdAt, err := createdAtFromV2(user.CreatedAt)
	if err != nil {
		return nil, errors.Wrap(err, "unable to parse user creation date from twitter")
	}
	result := &models.User{
		ID:              id,
		Name:            user.Name,
		ScreenName:      user.UserName,
		Description:     user.Description,
		Location:        user.Location,
		ProfileImageURL: user.ProfileImageURL,
		Protected:       user.Protected,
		Verified:        user.Verified,
		URL:             user.URL,
		CreatedAt:       createdAt,
	}
	if user.PublicMetrics != nil {
		result.FollowersCount = int64(user.PublicMetrics.Followers)
		result.FriendsCount = int64(user.PublicMetrics.Following)
		result.StatusesCount = int64(user.PublicMetrics.Tweets)
		result.ListedCount = int64(user.PublicMetrics.Listed)
	}
	return result, nil
}

func statusFromV2(tweet *twitter.TweetObj, authors map[string]*twitter.UserObj) (*models.Status, error) {
	id, err := parseID(tweet.ID)
	if err != nil {
		return nil, err
	}
	createdAt, err := createdAtFromV2(tweet.CreatedAt)
	if err != nil {
		return nil, errors.Wrap(err, "unable to parse status creation date from twitter")
	}
	inReplyToUserID, err := parseID(tweet.InReplyToUserID)
	if err != nil {
		return nil, err
	}
	status := &models.Status{
		ID:                id,
		IDStr:             tweet.ID,
		Text:              tweet.Text,
		CreatedAt:         createdAt,
		Lang:              tweet.Language,
		Source:            tweet.Source,
		PossiblySensitive: tweet.PossiblySensitive,
		InReplyToUserID:   inReplyToUserID,
	}

	if author, exist := authors[tweet.AuthorID]; exist {
		if status.User, err = userFromV2(author); err != nil {
			return nil, errors.Wrap(err, "unable to convert status author")
		}
	}

	if tweet.PublicMetrics != nil {
		status.RetweetCount = int64(tweet.PublicMetrics.Retweets)
		status.FavoriteCount = int64(tweet.PublicMetrics.Likes)
	}

	if tweet.Entities != nil {
		for _, u := range tweet.Entities.URLs {
			status.URLs = append(status.URLs, &models.URL{URL: u.URL, ExpandedURL: u.ExpandedURL})
		}
		for _, tag := range tweet.Entities.HashTags {
			status.Hashtags = append(status.Hashtags, &models.Hashtag{Text: tag.Tag})
		}
		for _, mention := range tweet.Entities.Mentions {
			status.UserMentions = append(status.UserMentions, &models.User{ScreenName: mention.UserName})
		}
	}

	for _, ref := range tweet.ReferencedTweets {
		refID, err := parseID(ref.ID)
		if err != nil {
			return nil, err
		}
		switch ReferenceType(ref.Type) {
		case ReferenceTypeRetweet:
			status.RetweetedStatus = &models.Status{ID: refID, IDStr: ref.ID}
		case ReferenceTypeRepliedTo:
			status.InReplyToStatusID = refID
		}
	}
	return status, nil
}
