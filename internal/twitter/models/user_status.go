package models

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
)

const (
	ConnectionFollowing          = "following"
	ConnectionFollowedBy         = "followed_by"
	ConnectionFollowingReceived  = "following_received"
	ConnectionFollowingRequested = "following_requested"
	ConnectionBlocking           = "blocking"
	ConnectionMuting             = "muting"
)

// UserStatus is the abbreviated user returned by friendship lookups.
type UserStatus struct {
	Blocking           bool   `mapstructure:"blocking"`
	FollowedBy         bool   `mapstructure:"followed_by"`
	Following          bool   `mapstructure:"following"`
	FollowingReceived  bool   `mapstructure:"following_received"`
	FollowingRequested bool   `mapstructure:"following_requested"`
	ID                 int64  `mapstructure:"id"`
	IDStr              string `mapstructure:"id_str"`
	Muting             bool   `mapstructure:"muting"`
	Name               string `mapstructure:"name"`
	ScreenName         string `mapstructure:"screen_name"`
}

func NewUserStatusFromJSONDict(data map[string]any) (*UserStatus, error) {
	userStatus := &UserStatus{}
	if err := decodeFields(data, userStatus); err != nil {
		return nil, errors.Wrap(err, "unable to decode user status")
	}
	raw, exist := data["connections"]
	if !exist || raw == nil {
		return userStatus, nil
	}
	var connections []string
	if err := mapstructure.WeakDecode(raw, &connections); err != nil {
		return nil, errors.Wrap(err, "unable to decode user status connections")
	}
	for _, connection := range connections {
		if flag := userStatus.flag(connection); flag != nil {
			*flag = true
		}
	}
	return userStatus, nil
}

func (u *UserStatus) flag(connection string) *bool {
	switch connection {
	case ConnectionFollowing:
		return &u.Following
	case ConnectionFollowedBy:
		return &u.FollowedBy
	case ConnectionFollowingReceived:
		return &u.FollowingReceived
	case ConnectionFollowingRequested:
		return &u.FollowingRequested
	case ConnectionBlocking:
		return &u.Blocking
	case ConnectionMuting:
		return &u.Muting
	}
	return nil
}

// Connections lists the flags set on the user status.
func (u *UserStatus) Connections() []string {
	var connections []string
	for _, connection := range []string{
		ConnectionFollowing,
		ConnectionFollowedBy,
		ConnectionFollowingReceived,
		ConnectionFollowingRequested,
		ConnectionBlocking,
		ConnectionMuting,
	} {
		if *u.flag(connection) {
			connections = append(connections, connection)
		}
	}
	return connections
}

func (u *UserStatus) AsDict() map[string]any {
	d := dict{}
	d.setBool("blocking", u.Blocking)
	d.setBool("followed_by", u.FollowedBy)
	d.setBool("following", u.Following)
	d.setBool("following_received", u.FollowingReceived)
	d.setBool("following_requested", u.FollowingRequested)
	d.setInt("id", u.ID)
	d.setString("id_str", u.IDStr)
	d.setBool("muting", u.Muting)
	d.setString("name", u.Name)
	d.setString("screen_name", u.ScreenName)
	return d
}

func (u *UserStatus) AsJSONString() string {
	return toJSONString(u.AsDict())
}

func (u *UserStatus) Equal(other *UserStatus) bool {
	return u != nil && other != nil && equal(u, other)
}

func (u *UserStatus) String() string {
	return fmt.Sprintf(
		"UserStatus(ID=%d, Name=%s, Connections=[%s])",
		u.ID,
		u.ScreenName,
		strings.Join(u.Connections(), ", "),
	)
}
