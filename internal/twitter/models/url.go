package models

import (
	"fmt"

	"github.com/pkg/errors"
)

// URL is a link entity of a status, URL being the shortened form.
type URL struct {
	ExpandedURL string `mapstructure:"expanded_url"`
	URL         string `mapstructure:"url"`
}

func NewURLFromJSONDict(data map[string]any) (*URL, error) {
	u := &URL{}
	if err := decodeFields(data, u); err != nil {
		return nil, errors.Wrap(err, "unable to decode url")
	}
	return u, nil
}

func (u *URL) AsDict() map[string]any {
	d := dict{}
	d.setString("expanded_url", u.ExpandedURL)
	d.setString("url", u.URL)
	return d
}

func (u *URL) AsJSONString() string {
	return toJSONString(u.AsDict())
}

func (u *URL) Equal(other *URL) bool {
	return u != nil && other != nil && equal(u, other)
}

func (u *URL) String() string {
	return fmt.Sprintf("URL(URL=%s, ExpandedURL=%s)", u.URL, u.ExpandedURL)
}
