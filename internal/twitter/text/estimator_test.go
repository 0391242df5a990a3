package text

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateLength(t *testing.T) {
	tests := []struct {
		name           string
		status         string
		shortURLLength int
		want           int
	}{
		{
			name:           "empty status",
			status:         "",
			shortURLLength: DefaultShortURLLength,
			want:           0,
		},
		{
			name:           "no url",
			status:         "plain text, no links",
			shortURLLength: DefaultShortURLLength,
			want:           20,
		},
		{
			name:           "dot ending a sentence is not a url",
			status:         "end of sentence. next one",
			shortURLLength: DefaultShortURLLength,
			want:           25,
		},
		{
			name:           "unknown top level label",
			status:         "see file.txt",
			shortURLLength: DefaultShortURLLength,
			want:           12,
		},
		{
			name:           "single url",
			status:         "http://example.com/path",
			shortURLLength: DefaultShortURLLength,
			want:           23,
		},
		{
			name:           "long url is shortened",
			status:         "check https://example.com/a/very/long/path/to/something",
			shortURLLength: DefaultShortURLLength,
			want:           29,
		},
		{
			name:           "url without scheme",
			status:         "see www.example.com",
			shortURLLength: DefaultShortURLLength,
			want:           27,
		},
		{
			name:           "bare domain",
			status:         "a.com and b.org",
			shortURLLength: DefaultShortURLLength,
			want:           51,
		},
		{
			name:           "custom short url length",
			status:         "http://example.com/path",
			shortURLLength: 10,
			want:           10,
		},
		{
			name:           "case insensitive",
			status:         "Visit HTTPS://EXAMPLE.COM",
			shortURLLength: DefaultShortURLLength,
			want:           29,
		},
		{
			name:           "internationalized label",
			status:         "привет пример.рф",
			shortURLLength: DefaultShortURLLength,
			want:           30,
		},
		{
			name:           "numeric host",
			status:         "192.168.0.1",
			shortURLLength: DefaultShortURLLength,
			want:           23,
		},
		{
			name:           "query and fragment are part of the url",
			status:         "https://example.com/search?q=go&lang=en#top",
			shortURLLength: DefaultShortURLLength,
			want:           23,
		},
		{
			name:           "url right after an ellipsis",
			status:         "Check this out...google.com",
			shortURLLength: DefaultShortURLLength,
			want:           40,
		},
		{
			name:           "url after a lone dot",
			status:         "see .google.com",
			shortURLLength: DefaultShortURLLength,
			want:           28,
		},
		{
			name:           "top level label followed by a dash",
			status:         "visit google.com- now",
			shortURLLength: DefaultShortURLLength,
			want:           33,
		},
		{
			name:           "trailing punctuation is consumed by the tail",
			status:         "Go to example.com.",
			shortURLLength: DefaultShortURLLength,
			want:           29,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, EstimateLength(tt.status, tt.shortURLLength))
		})
	}
}

func TestEstimateLength_ShorterThanLiteral(t *testing.T) {
	url := "https://example.com/" + strings.Repeat("x", 40)
	status := "check " + url
	require.Greater(t, utf8.RuneCountInString(url), DefaultShortURLLength)
	require.Less(t, EstimateDefaultLength(status), utf8.RuneCountInString(status))
}

func TestEstimateLength_NoURLKeepsLength(t *testing.T) {
	for _, status := range []string{
		"hello",
		"nothing to see here",
		"émojis 🙂 and accents",
		"a sentence. Another sentence",
		"#hashtag @mention",
	} {
		assert.Equal(t, utf8.RuneCountInString(status), EstimateDefaultLength(status), status)
	}
}

func TestEstimateLength_Idempotent(t *testing.T) {
	status := "two links http://a.co/x and https://b.io/y?z=1"
	first := EstimateDefaultLength(status)
	require.Equal(t, first, EstimateDefaultLength(status))
	require.Equal(t, 10+23+5+23, first)
}

func TestIsURL(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"plain text, no links", false},
		{"see www.example.com", true},
		{"https://golang.org", true},
		{"example.community", true},
		{"example.comx", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			require.Equal(t, tt.want, IsURL(tt.text))
		})
	}
}

func TestFindURLs(t *testing.T) {
	matches := FindURLs("see http://a.co/x and https://b.io")
	require.Equal(t, []Match{
		{Text: "http://a.co/x", Length: 13},
		{Text: "https://b.io", Length: 12},
	}, matches)

	require.Empty(t, FindURLs("no links"))
}

func TestFindURLs_HostBoundaries(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Match
	}{
		{
			name: "ellipsis before the host",
			text: "Check this out...google.com",
			want: []Match{{Text: "google.com", Length: 10}},
		},
		{
			name: "lone dot before the host",
			text: "see .google.com",
			want: []Match{{Text: "google.com", Length: 10}},
		},
		{
			name: "subdomain matched once from its first label",
			text: "abc.example.com",
			want: []Match{{Text: "abc.example.com", Length: 15}},
		},
		{
			name: "dash after the top level label goes to the tail",
			text: "visit google.com- now",
			want: []Match{{Text: "google.com-", Length: 11}},
		},
		{
			name: "underscore after the top level label goes to the tail",
			text: "google.com_x",
			want: []Match{{Text: "google.com_x", Length: 12}},
		},
		{
			name: "unknown label with a dash",
			text: "foo.zzzz-bar",
		},
		{
			name: "decimal number is not an address",
			text: "pi is 3.14159",
		},
		{
			name: "ipv4 address",
			text: "ping 10.0.0.1",
			want: []Match{{Text: "10.0.0.1", Length: 8}},
		},
		{
			name: "mail address only charges the host",
			text: "mail bob@example.com",
			want: []Match{{Text: "example.com", Length: 11}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FindURLs(tt.text))
			require.Equal(t, tt.want != nil, IsURL(tt.text))
		})
	}
}

func TestCheckLength(t *testing.T) {
	length, err := CheckLength(strings.Repeat("a", 280), DefaultShortURLLength, DefaultCharacterLimit)
	require.NoError(t, err)
	require.Equal(t, 280, length)

	length, err = CheckLength(strings.Repeat("a", 281), DefaultShortURLLength, DefaultCharacterLimit)
	require.Equal(t, 281, length)
	require.True(t, errors.Is(err, ErrStatusTooLong))
	var lengthErr *LengthError
	require.True(t, errors.As(err, &lengthErr))
	require.Equal(t, DefaultCharacterLimit, lengthErr.Limit)

	longURL := "https://example.com/" + strings.Repeat("p", 300)
	length, err = CheckLength("look "+longURL, DefaultShortURLLength, DefaultCharacterLimit)
	require.NoError(t, err)
	require.Equal(t, 28, length)
}
