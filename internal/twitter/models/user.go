package models

import (
	"fmt"

	"github.com/pkg/errors"
)

// User is a twitter account as returned by the v1.1 API. Status holds the
// last status of the account, untouched.
type User struct {
	ContributorsEnabled       bool           `mapstructure:"contributors_enabled"`
	CreatedAt                 string         `mapstructure:"created_at"`
	DefaultProfile            bool           `mapstructure:"default_profile"`
	DefaultProfileImage       bool           `mapstructure:"default_profile_image"`
	Description               string         `mapstructure:"description"`
	FavouritesCount           int64          `mapstructure:"favourites_count"`
	FollowersCount            int64          `mapstructure:"followers_count"`
	FriendsCount              int64          `mapstructure:"friends_count"`
	GeoEnabled                bool           `mapstructure:"geo_enabled"`
	ID                        int64          `mapstructure:"id"`
	Lang                      string         `mapstructure:"lang"`
	ListedCount               int64          `mapstructure:"listed_count"`
	Location                  string         `mapstructure:"location"`
	Name                      string         `mapstructure:"name"`
	Notifications             bool           `mapstructure:"notifications"`
	ProfileBackgroundColor    string         `mapstructure:"profile_background_color"`
	ProfileBackgroundImageURL string         `mapstructure:"profile_background_image_url"`
	ProfileBackgroundTile     bool           `mapstructure:"profile_background_tile"`
	ProfileBannerURL          string         `mapstructure:"profile_banner_url"`
	ProfileImageURL           string         `mapstructure:"profile_image_url"`
	ProfileLinkColor          string         `mapstructure:"profile_link_color"`
	ProfileSidebarFillColor   string         `mapstructure:"profile_sidebar_fill_color"`
	ProfileTextColor          string         `mapstructure:"profile_text_color"`
	Protected                 bool           `mapstructure:"protected"`
	ScreenName                string         `mapstructure:"screen_name"`
	Status                    map[string]any `mapstructure:"status"`
	StatusesCount             int64          `mapstructure:"statuses_count"`
	TimeZone                  string         `mapstructure:"time_zone"`
	URL                       string         `mapstructure:"url"`
	UTCOffset                 int64          `mapstructure:"utc_offset"`
	Verified                  bool           `mapstructure:"verified"`
}

func NewUserFromJSONDict(data map[string]any) (*User, error) {
	user := &User{}
	if err := decodeFields(data, user); err != nil {
		return nil, errors.Wrap(err, "unable to decode user")
	}
	return user, nil
}

func NewUserFromJSON(payload []byte) (*User, error) {
	data, err := DecodeJSON(payload)
	if err != nil {
		return nil, err
	}
	return NewUserFromJSONDict(data)
}

func (u *User) AsDict() map[string]any {
	d := dict{}
	d.setBool("contributors_enabled", u.ContributorsEnabled)
	d.setString("created_at", u.CreatedAt)
	d.setBool("default_profile", u.DefaultProfile)
	d.setBool("default_profile_image", u.DefaultProfileImage)
	d.setString("description", u.Description)
	d.setInt("favourites_count", u.FavouritesCount)
	d.setInt("followers_count", u.FollowersCount)
	d.setInt("friends_count", u.FriendsCount)
	d.setBool("geo_enabled", u.GeoEnabled)
	d.setInt("id", u.ID)
	d.setString("lang", u.Lang)
	d.setInt("listed_count", u.ListedCount)
	d.setString("location", u.Location)
	d.setString("name", u.Name)
	d.setBool("notifications", u.Notifications)
	d.setString("profile_background_color", u.ProfileBackgroundColor)
	d.setString("profile_background_image_url", u.ProfileBackgroundImageURL)
	d.setBool("profile_background_tile", u.ProfileBackgroundTile)
	d.setString("profile_banner_url", u.ProfileBannerURL)
	d.setString("profile_image_url", u.ProfileImageURL)
	d.setString("profile_link_color", u.ProfileLinkColor)
	d.setString("profile_sidebar_fill_color", u.ProfileSidebarFillColor)
	d.setString("profile_text_color", u.ProfileTextColor)
	d.setBool("protected", u.Protected)
	d.setString("screen_name", u.ScreenName)
	d.setRaw("status", u.Status)
	d.setInt("statuses_count", u.StatusesCount)
	d.setString("time_zone", u.TimeZone)
	d.setString("url", u.URL)
	d.setInt("utc_offset", u.UTCOffset)
	d.setBool("verified", u.Verified)
	return d
}

func (u *User) AsJSONString() string {
	return toJSONString(u.AsDict())
}

func (u *User) Equal(other *User) bool {
	return u != nil && other != nil && equal(u, other)
}

func (u *User) String() string {
	return fmt.Sprintf("User(ID=%d, ScreenName=%s)", u.ID, u.ScreenName)
}
