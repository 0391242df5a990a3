package models

import (
	"fmt"

	"github.com/pkg/errors"
)

type Hashtag struct {
	Text string `mapstructure:"text"`
}

func NewHashtagFromJSONDict(data map[string]any) (*Hashtag, error) {
	hashtag := &Hashtag{}
	if err := decodeFields(data, hashtag); err != nil {
		return nil, errors.Wrap(err, "unable to decode hashtag")
	}
	return hashtag, nil
}

func (h *Hashtag) AsDict() map[string]any {
	d := dict{}
	d.setString("text", h.Text)
	return d
}

func (h *Hashtag) AsJSONString() string {
	return toJSONString(h.AsDict())
}

func (h *Hashtag) Equal(other *Hashtag) bool {
	return h != nil && other != nil && equal(h, other)
}

func (h *Hashtag) String() string {
	return fmt.Sprintf("Hashtag(Text=%s)", h.Text)
}
