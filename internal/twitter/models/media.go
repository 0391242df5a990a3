package models

import (
	"fmt"

	"github.com/pkg/errors"
)

// Media is an entry of the media entities attached to a status.
type Media struct {
	ID            int64  `mapstructure:"id"`
	ExpandedURL   string `mapstructure:"expanded_url"`
	DisplayURL    string `mapstructure:"display_url"`
	URL           string `mapstructure:"url"`
	MediaURLHTTPS string `mapstructure:"media_url_https"`
	MediaURL      string `mapstructure:"media_url"`
	Type          string `mapstructure:"type"`
}

func NewMediaFromJSONDict(data map[string]any) (*Media, error) {
	media := &Media{}
	if err := decodeFields(data, media); err != nil {
		return nil, errors.Wrap(err, "unable to decode media")
	}
	return media, nil
}

func (m *Media) AsDict() map[string]any {
	d := dict{}
	d.setInt("id", m.ID)
	d.setString("expanded_url", m.ExpandedURL)
	d.setString("display_url", m.DisplayURL)
	d.setString("url", m.URL)
	d.setString("media_url_https", m.MediaURLHTTPS)
	d.setString("media_url", m.MediaURL)
	d.setString("type", m.Type)
	return d
}

func (m *Media) AsJSONString() string {
	return toJSONString(m.AsDict())
}

func (m *Media) Equal(other *Media) bool {
	return m != nil && other != nil && equal(m, other)
}

func (m *Media) String() string {
	return fmt.Sprintf("Media(ID=%d, Type=%s, DisplayURL='%s')", m.ID, m.Type, m.DisplayURL)
}
