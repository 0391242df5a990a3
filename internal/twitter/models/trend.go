package models

import (
	"fmt"

	"github.com/pkg/errors"
)

// Trend is a trending topic. Events and PromotedContent are kept as
// returned by the API.
type Trend struct {
	Events          any    `mapstructure:"events"`
	Name            string `mapstructure:"name"`
	PromotedContent any    `mapstructure:"promoted_content"`
	Query           string `mapstructure:"query"`
	Timestamp       string `mapstructure:"timestamp"`
	URL             string `mapstructure:"url"`
	Volume          int64  `mapstructure:"volume"`
}

func NewTrendFromJSONDict(data map[string]any) (*Trend, error) {
	trend := &Trend{}
	if err := decodeFields(data, trend); err != nil {
		return nil, errors.Wrap(err, "unable to decode trend")
	}
	return trend, nil
}

func (t *Trend) AsDict() map[string]any {
	d := dict{}
	d.setRaw("events", t.Events)
	d.setString("name", t.Name)
	d.setRaw("promoted_content", t.PromotedContent)
	d.setString("query", t.Query)
	d.setString("timestamp", t.Timestamp)
	d.setString("url", t.URL)
	d.setInt("volume", t.Volume)
	return d
}

func (t *Trend) AsJSONString() string {
	return toJSONString(t.AsDict())
}

func (t *Trend) Equal(other *Trend) bool {
	return t != nil && other != nil && equal(t, other)
}

func (t *Trend) String() string {
	return fmt.Sprintf("Trend(Name=%s, Time=%s, URL=%s)", t.Name, t.Timestamp, t.URL)
}
