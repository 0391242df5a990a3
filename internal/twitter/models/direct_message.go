package models

import (
	"fmt"

	"github.com/pkg/errors"
)

const directMessagePreviewLength = 140

type DirectMessage struct {
	ID                  int64  `mapstructure:"id"`
	CreatedAt           string `mapstructure:"created_at"`
	SenderID            int64  `mapstructure:"sender_id"`
	SenderScreenName    string `mapstructure:"sender_screen_name"`
	RecipientID         int64  `mapstructure:"recipient_id"`
	RecipientScreenName string `mapstructure:"recipient_screen_name"`
	Text                string `mapstructure:"text"`
}

func NewDirectMessageFromJSONDict(data map[string]any) (*DirectMessage, error) {
	message := &DirectMessage{}
	if err := decodeFields(data, message); err != nil {
		return nil, errors.Wrap(err, "unable to decode direct message")
	}
	return message, nil
}

func (m *DirectMessage) AsDict() map[string]any {
	d := dict{}
	d.setInt("id", m.ID)
	d.setString("created_at", m.CreatedAt)
	d.setInt("sender_id", m.SenderID)
	d.setString("sender_screen_name", m.SenderScreenName)
	d.setInt("recipient_id", m.RecipientID)
	d.setString("recipient_screen_name", m.RecipientScreenName)
	d.setString("text", m.Text)
	return d
}

func (m *DirectMessage) AsJSONString() string {
	return toJSONString(m.AsDict())
}

func (m *DirectMessage) Equal(other *DirectMessage) bool {
	return m != nil && other != nil && equal(m, other)
}

func (m *DirectMessage) String() string {
	text := m.Text
	if runes := []rune(text); len(runes) > directMessagePreviewLength {
		text = string(runes[:directMessagePreviewLength]) + "[...]"
	}
	return fmt.Sprintf(
		"DirectMessage(ID=%d, Sender=%s, Time=%s, Text=%s)",
		m.ID,
		m.SenderScreenName,
		m.CreatedAt,
		text,
	)
}
