package models

import (
	"fmt"

	"github.com/pkg/errors"
)

type List struct {
	ID              int64  `mapstructure:"id"`
	Name            string `mapstructure:"name"`
	Slug            string `mapstructure:"slug"`
	Description     string `mapstructure:"description"`
	FullName        string `mapstructure:"full_name"`
	Mode            string `mapstructure:"mode"`
	URI             string `mapstructure:"uri"`
	MemberCount     int64  `mapstructure:"member_count"`
	SubscriberCount int64  `mapstructure:"subscriber_count"`
	Following       bool   `mapstructure:"following"`
	User            *User  `mapstructure:"-"`
}

func NewListFromJSONDict(data map[string]any) (*List, error) {
	list := &List{}
	if err := decodeFields(data, list); err != nil {
		return nil, errors.Wrap(err, "unable to decode list")
	}
	userData, exist, err := nestedDict(data, "user")
	if err != nil {
		return nil, errors.Wrap(err, "unable to decode list")
	}
	if exist {
		if list.User, err = NewUserFromJSONDict(userData); err != nil {
			return nil, errors.Wrap(err, "unable to decode list owner")
		}
	}
	return list, nil
}

func (l *List) AsDict() map[string]any {
	d := dict{}
	d.setInt("id", l.ID)
	d.setString("name", l.Name)
	d.setString("slug", l.Slug)
	d.setString("description", l.Description)
	d.setString("full_name", l.FullName)
	d.setString("mode", l.Mode)
	d.setString("uri", l.URI)
	d.setInt("member_count", l.MemberCount)
	d.setInt("subscriber_count", l.SubscriberCount)
	d.setBool("following", l.Following)
	if l.User != nil {
		d["user"] = l.User.AsDict()
	}
	return d
}

func (l *List) AsJSONString() string {
	return toJSONString(l.AsDict())
}

func (l *List) Equal(other *List) bool {
	return l != nil && other != nil && equal(l, other)
}

func (l *List) String() string {
	var owner string
	if l.User != nil {
		owner = l.User.ScreenName
	}
	return fmt.Sprintf("List(ID=%d, FullName=%s, Slug=%s, User=%s)", l.ID, l.FullName, l.Slug, owner)
}
