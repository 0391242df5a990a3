package models_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gentle-breeze49/birdkit/internal/twitter/models"
	"github.com/gentle-breeze49/birdkit/tests"
)

func TestNewStatusFromJSON(t *testing.T) {
	status, err := models.NewStatusFromJSON(tests.GetFixture(t, "status"))
	require.NoError(t, err)

	require.Equal(t, int64(1050118621198921728), status.ID)
	require.Equal(t, "TwitterAPI", status.User.ScreenName)
	require.Equal(t, int64(1050118000000000000), status.RetweetedStatus.ID)
	require.Equal(t, "Twitter", status.RetweetedStatus.User.ScreenName)
	require.Equal(t, int64(1050119000000000000), status.CurrentUserRetweet)
	require.Len(t, status.Media, 1)
	require.Equal(t, int64(1050118612345678901), status.Media[0].ID)
	require.Equal(t, []*models.User{{ID: 12, Name: "jack", ScreenName: "jack"}}, status.UserMentions)

	tests.AssertJSON(t, "status", status.AsJSONString())
}

func TestNewStatusFromJSONDict_Entities(t *testing.T) {
	cases := []struct {
		name          string
		payload       string
		expectedMedia []string
		err           string
	}{
		{
			name:          "entities media",
			payload:       `{"entities": {"media": [{"display_url": "a"}, {"display_url": "b"}]}}`,
			expectedMedia: []string{"a", "b"},
		},
		{
			name:          "extended entities override entities",
			payload:       `{"entities": {"media": [{"display_url": "a"}]}, "extended_entities": {"media": [{"display_url": "b"}, {"display_url": "c"}]}}`,
			expectedMedia: []string{"b", "c"},
		},
		{
			name:          "extended entities without media",
			payload:       `{"entities": {"media": [{"display_url": "a"}]}, "extended_entities": {}}`,
			expectedMedia: []string{"a"},
		},
		{
			name:    "media is not a list",
			payload: `{"entities": {"media": {"display_url": "a"}}}`,
			err:     "media must be a list, got map[string]interface {}",
		},
		{
			name:    "media item is not an object",
			payload: `{"entities": {"media": ["a"]}}`,
			err:     "media[0] must be an object, got string",
		},
		{
			name:    "invalid current user retweet",
			payload: `{"current_user_retweet": {"id": "abc"}}`,
			err:     "invalid current_user_retweet",
		},
		{
			name:    "invalid retweeted status",
			payload: `{"retweeted_status": {"user": []}}`,
			err:     "unable to decode retweeted status",
		},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			status, err := models.NewStatusFromJSONDict(decode(t, tt.payload))
			if tt.err != "" {
				require.ErrorContains(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			var displayURLs []string
			for _, media := range status.Media {
				displayURLs = append(displayURLs, media.DisplayURL)
			}
			require.Equal(t, tt.expectedMedia, displayURLs)
		})
	}
}

func TestStatus_AsDictIsReadBack(t *testing.T) {
	status, err := models.NewStatusFromJSON(tests.GetFixture(t, "status"))
	require.NoError(t, err)

	readBack, err := models.NewStatusFromJSONDict(status.AsDict())
	require.NoError(t, err)
	require.True(t, status.Equal(readBack))
}

func TestStatus_CreatedAtInSeconds(t *testing.T) {
	status := &models.Status{CreatedAt: "Wed Oct 10 20:19:24 +0000 2018"}
	seconds, err := status.CreatedAtInSeconds()
	require.NoError(t, err)
	require.Equal(t, int64(1539202764), seconds)

	status = &models.Status{CreatedAt: "Wed Oct 10 22:19:24 +0200 2018"}
	seconds, err = status.CreatedAtInSeconds()
	require.NoError(t, err)
	require.Equal(t, int64(1539202764), seconds)

	status = &models.Status{CreatedAt: "yesterday"}
	_, err = status.CreatedAtInSeconds()
	require.ErrorContains(t, err, `unable to parse status creation date "yesterday"`)
}

func TestStatus_RelativeCreatedAt(t *testing.T) {
	const createdAt = int64(1539202764)
	cases := []struct {
		name     string
		delta    int64
		expected string
	}{
		{name: "now", delta: 0, expected: "about a second ago"},
		{name: "one second", delta: 1, expected: "about a second ago"},
		{name: "seconds", delta: 2, expected: "about 2 seconds ago"},
		{name: "last seconds", delta: 47, expected: "about 47 seconds ago"},
		{name: "about a minute", delta: 48, expected: "about a minute ago"},
		{name: "almost two minutes", delta: 74, expected: "about a minute ago"},
		{name: "minutes", delta: 75, expected: "about 1 minutes ago"},
		{name: "many minutes", delta: 2879, expected: "about 47 minutes ago"},
		{name: "about an hour", delta: 2880, expected: "about an hour ago"},
		{name: "hours", delta: 4500, expected: "about 1 hours ago"},
		{name: "many hours", delta: 69119, expected: "about 19 hours ago"},
		{name: "about a day", delta: 69120, expected: "about a day ago"},
		{name: "days", delta: 108000, expected: "about 1 days ago"},
		{name: "many days", delta: 10 * 86400, expected: "about 10 days ago"},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			status := &models.Status{CreatedAt: "Wed Oct 10 20:19:24 +0000 2018"}
			status.SetNow(createdAt + tt.delta)
			relative, err := status.RelativeCreatedAt()
			require.NoError(t, err)
			require.Equal(t, tt.expected, relative)
		})
	}
}

func TestStatus_Now(t *testing.T) {
	status := &models.Status{}
	now := status.Now()
	require.Positive(t, now)
	require.Equal(t, now, status.Now())
	require.NotContains(t, status.AsDict(), "now")

	status.SetNow(1539202764)
	require.Equal(t, int64(1539202764), status.Now())
	require.Equal(t, int64(1539202764), status.AsDict()["now"])
}

func TestStatus_SourceName(t *testing.T) {
	cases := []struct {
		name     string
		source   string
		expected string
	}{
		{
			name:     "link",
			source:   `<a href="http://twitter.com/download/iphone" rel="nofollow">Twitter for iPhone</a>`,
			expected: "Twitter for iPhone",
		},
		{
			name:     "plain text",
			source:   "web",
			expected: "web",
		},
		{
			name:     "empty",
			source:   "",
			expected: "",
		},
		{
			name:     "html without link",
			source:   "<b>TweetDeck</b>",
			expected: "TweetDeck",
		},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			status := &models.Status{Source: tt.source}
			require.Equal(t, tt.expected, status.SourceName())
		})
	}
}
