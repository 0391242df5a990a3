package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
)

// CreatedAtLayout is the layout of the v1.1 created_at fields.
const CreatedAtLayout = time.RubyDate

const relativeTimeFudge = 1.25

//nolint:gochecknoglobals
var wallClock = func() int64 { return time.Now().Unix() }

// Status is a tweet as returned by the v1.1 API.
//
// Entities are flattened: URLs, UserMentions, Hashtags and Media come from
// the entities object, extended_entities media taking precedence.
// CurrentUserRetweet only keeps the id of the retweet made by the
// authenticated user.
type Status struct {
	Contributors        []any          `mapstructure:"contributors"`
	Coordinates         map[string]any `mapstructure:"coordinates"`
	CreatedAt           string         `mapstructure:"created_at"`
	CurrentUserRetweet  int64          `mapstructure:"-"`
	FavoriteCount       int64          `mapstructure:"favorite_count"`
	Favorited           bool           `mapstructure:"favorited"`
	Geo                 map[string]any `mapstructure:"geo"`
	Hashtags            []*Hashtag     `mapstructure:"-"`
	ID                  int64          `mapstructure:"id"`
	IDStr               string         `mapstructure:"id_str"`
	InReplyToScreenName string         `mapstructure:"in_reply_to_screen_name"`
	InReplyToStatusID   int64          `mapstructure:"in_reply_to_status_id"`
	InReplyToUserID     int64          `mapstructure:"in_reply_to_user_id"`
	Lang                string         `mapstructure:"lang"`
	Location            string         `mapstructure:"location"`
	Media               []*Media       `mapstructure:"-"`
	Place               map[string]any `mapstructure:"place"`
	PossiblySensitive   bool           `mapstructure:"possibly_sensitive"`
	RetweetCount        int64          `mapstructure:"retweet_count"`
	Retweeted           bool           `mapstructure:"retweeted"`
	RetweetedStatus     *Status        `mapstructure:"-"`
	Scopes              map[string]any `mapstructure:"scopes"`
	Source              string         `mapstructure:"source"`
	Text                string         `mapstructure:"text"`
	Truncated           bool           `mapstructure:"truncated"`
	URLs                []*URL         `mapstructure:"-"`
	User                *User          `mapstructure:"-"`
	UserMentions        []*User        `mapstructure:"-"`
	WithheldCopyright   bool           `mapstructure:"withheld_copyright"`
	WithheldInCountries []string       `mapstructure:"withheld_in_countries"`
	WithheldScope       string         `mapstructure:"withheld_scope"`

	now         int64
	memoizedNow int64
}

func NewStatusFromJSON(payload []byte) (*Status, error) {
	data, err := DecodeJSON(payload)
	if err != nil {
		return nil, err
	}
	return NewStatusFromJSONDict(data)
}

func NewStatusFromJSONDict(data map[string]any) (*Status, error) {
	status := &Status{}
	if err := decodeFields(data, status); err != nil {
		return nil, errors.Wrap(err, "unable to decode status")
	}
	if err := status.decodeNested(data); err != nil {
		return nil, errors.Wrap(err, "unable to decode status")
	}
	return status, nil
}

func (s *Status) decodeNested(data map[string]any) error {
	if raw, exist := data["now"]; exist && raw != nil {
		if err := mapstructure.WeakDecode(raw, &s.now); err != nil {
			return errors.Wrap(err, "invalid now")
		}
	}

	userData, exist, err := nestedDict(data, "user")
	if err != nil {
		return err
	}
	if exist {
		if s.User, err = NewUserFromJSONDict(userData); err != nil {
			return err
		}
	}

	retweetedData, exist, err := nestedDict(data, "retweeted_status")
	if err != nil {
		return err
	}
	if exist {
		if s.RetweetedStatus, err = NewStatusFromJSONDict(retweetedData); err != nil {
			return errors.Wrap(err, "unable to decode retweeted status")
		}
	}

	if s.CurrentUserRetweet, err = currentUserRetweetID(data["current_user_retweet"]); err != nil {
		return err
	}

	// Entities are read from the API shape first, the flattened keys
	// produced by AsDict are accepted when there is no entities object.
	entities, exist, err := nestedDict(data, "entities")
	if err != nil {
		return err
	}
	if !exist {
		entities = data
	}
	if s.URLs, err = decodeList(entities, "urls", NewURLFromJSONDict); err != nil {
		return err
	}
	if s.UserMentions, err = decodeList(entities, "user_mentions", NewUserFromJSONDict); err != nil {
		return err
	}
	if s.Hashtags, err = decodeList(entities, "hashtags", NewHashtagFromJSONDict); err != nil {
		return err
	}
	if s.Media, err = decodeList(entities, "media", NewMediaFromJSONDict); err != nil {
		return err
	}

	extended, exist, err := nestedDict(data, "extended_entities")
	if err != nil {
		return err
	}
	if exist {
		if _, hasMedia := extended["media"]; hasMedia {
			if s.Media, err = decodeList(extended, "media", NewMediaFromJSONDict); err != nil {
				return err
			}
		}
	}
	return nil
}

// currentUserRetweetID accepts the {"id": ...} object sent by the API as
// well as a bare id.
func currentUserRetweetID(raw any) (int64, error) {
	if nested, ok := raw.(map[string]any); ok {
		raw = nested["id"]
	}
	if raw == nil {
		return 0, nil
	}
	var id int64
	if err := mapstructure.WeakDecode(raw, &id); err != nil {
		return 0, errors.Wrap(err, "invalid current_user_retweet")
	}
	return id, nil
}

// CreatedAtInSeconds returns the creation date of the status as a unix
// timestamp.
func (s *Status) CreatedAtInSeconds() (int64, error) {
	createdAt, err := time.Parse(CreatedAtLayout, s.CreatedAt)
	if err != nil {
		return 0, errors.Wrapf(err, "unable to parse status creation date %q", s.CreatedAt)
	}
	return createdAt.Unix(), nil
}

// Now returns the unix time RelativeCreatedAt is computed against. Unless
// set with SetNow, it is the wall clock at the first call.
func (s *Status) Now() int64 {
	if s.now != 0 {
		return s.now
	}
	if s.memoizedNow == 0 {
		s.memoizedNow = wallClock()
	}
	return s.memoizedNow
}

func (s *Status) SetNow(now int64) {
	s.now = now
}

// RelativeCreatedAt describes how long ago the status was posted, such as
// "about 3 hours ago".
func (s *Status) RelativeCreatedAt() (string, error) {
	createdAt, err := s.CreatedAtInSeconds()
	if err != nil {
		return "", err
	}
	delta := s.Now() - createdAt
	seconds := float64(delta)
	const (
		minute = 60
		hour   = 60 * minute
		day    = 24 * hour
	)
	switch {
	case seconds < relativeTimeFudge:
		return "about a second ago", nil
	case seconds < minute/relativeTimeFudge:
		return fmt.Sprintf("about %d seconds ago", delta), nil
	case seconds < minute*relativeTimeFudge:
		return "about a minute ago", nil
	case seconds < hour/relativeTimeFudge:
		return fmt.Sprintf("about %d minutes ago", delta/minute), nil
	case seconds < hour*relativeTimeFudge:
		return "about an hour ago", nil
	case seconds < day/relativeTimeFudge:
		return fmt.Sprintf("about %d hours ago", delta/hour), nil
	case seconds < day*relativeTimeFudge:
		return "about a day ago", nil
	}
	return fmt.Sprintf("about %d days ago", delta/day), nil
}

// SourceName returns the name of the client used to post the status. The
// API sends it as an html link, anything else is returned as is.
func (s *Status) SourceName() string {
	if !strings.Contains(s.Source, "<") {
		return s.Source
	}
	document, err := goquery.NewDocumentFromReader(strings.NewReader(s.Source))
	if err != nil {
		return s.Source
	}
	link := document.Find("a").First()
	if link.Length() == 0 {
		return strings.TrimSpace(document.Text())
	}
	return strings.TrimSpace(link.Text())
}

func (s *Status) AsDict() map[string]any {
	d := dict{}
	d.setRaw("contributors", s.Contributors)
	d.setRaw("coordinates", s.Coordinates)
	d.setString("created_at", s.CreatedAt)
	d.setInt("current_user_retweet", s.CurrentUserRetweet)
	d.setInt("favorite_count", s.FavoriteCount)
	d.setBool("favorited", s.Favorited)
	d.setRaw("geo", s.Geo)
	d.setRaw("hashtags", dictList(s.Hashtags))
	d.setInt("id", s.ID)
	d.setString("id_str", s.IDStr)
	d.setString("in_reply_to_screen_name", s.InReplyToScreenName)
	d.setInt("in_reply_to_status_id", s.InReplyToStatusID)
	d.setInt("in_reply_to_user_id", s.InReplyToUserID)
	d.setString("lang", s.Lang)
	d.setString("location", s.Location)
	d.setRaw("media", dictList(s.Media))
	d.setInt("now", s.now)
	d.setRaw("place", s.Place)
	d.setBool("possibly_sensitive", s.PossiblySensitive)
	d.setInt("retweet_count", s.RetweetCount)
	d.setBool("retweeted", s.Retweeted)
	if s.RetweetedStatus != nil {
		d["retweeted_status"] = s.RetweetedStatus.AsDict()
	}
	d.setRaw("scopes", s.Scopes)
	d.setString("source", s.Source)
	d.setString("text", s.Text)
	d.setBool("truncated", s.Truncated)
	d.setRaw("urls", dictList(s.URLs))
	if s.User != nil {
		d["user"] = s.User.AsDict()
	}
	d.setRaw("user_mentions", dictList(s.UserMentions))
	d.setBool("withheld_copyright", s.WithheldCopyright)
	d.setRaw("withheld_in_countries", s.WithheldInCountries)
	d.setString("withheld_scope", s.WithheldScope)
	return d
}

func (s *Status) AsJSONString() string {
	return toJSONString(s.AsDict())
}

func (s *Status) Equal(other *Status) bool {
	return s != nil && other != nil && equal(s, other)
}

func (s *Status) String() string {
	if s.User != nil {
		return fmt.Sprintf("Status(ID=%d, ScreenName=%s, Created=%s)", s.ID, s.User.ScreenName, s.CreatedAt)
	}
	return fmt.Sprintf("Status(ID=%d, Created=%s)", s.ID, s.CreatedAt)
}
