package models

import (
	"fmt"

	"github.com/pkg/errors"
)

// Category is a suggested users category.
type Category struct {
	Name string `mapstructure:"name"`
	Slug string `mapstructure:"slug"`
	Size int64  `mapstructure:"size"`
}

func NewCategoryFromJSONDict(data map[string]any) (*Category, error) {
	category := &Category{}
	if err := decodeFields(data, category); err != nil {
		return nil, errors.Wrap(err, "unable to decode category")
	}
	return category, nil
}

func (c *Category) AsDict() map[string]any {
	d := dict{}
	d.setString("name", c.Name)
	d.setString("slug", c.Slug)
	d.setInt("size", c.Size)
	return d
}

func (c *Category) AsJSONString() string {
	return toJSONString(c.AsDict())
}

func (c *Category) Equal(other *Category) bool {
	return c != nil && other != nil && equal(c, other)
}

func (c *Category) String() string {
	return fmt.Sprintf("Category(Name=%s, Slug=%s, Size=%d)", c.Name, c.Slug, c.Size)
}
