package models

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
)

// Model is implemented by every type of this package. AsDict only holds the
// populated fields, keyed by their API name.
type Model interface {
	AsDict() map[string]any
	AsJSONString() string
}

// DecodeJSON parses an API payload into a mapping. Integral numbers are
// kept as int64 so that 64 bits ids survive, other numbers become float64.
func DecodeJSON(payload []byte) (map[string]any, error) {
	decoder := json.NewDecoder(bytes.NewReader(payload))
	decoder.UseNumber()
	var data map[string]any
	if err := decoder.Decode(&data); err != nil {
		return nil, errors.Wrap(err, "unable to decode json payload")
	}
	normalized, _ := normalizeNumbers(data).(map[string]any)
	return normalized, nil
}

func normalizeNumbers(value any) any {
	switch value := value.(type) {
	case json.Number:
		if i, err := value.Int64(); err == nil {
			return i
		}
		f, _ := value.Float64()
		return f
	case map[string]any:
		for key, nested := range value {
			value[key] = normalizeNumbers(nested)
		}
		return value
	case []any:
		for i, nested := range value {
			value[i] = normalizeNumbers(nested)
		}
		return value
	}
	return value
}

// decodeFields fills the mapstructure tagged fields of target from data.
// Unknown keys are ignored and "42" is accepted where 42 is expected.
func decodeFields(data map[string]any, target any) error {
	if len(data) == 0 {
		return nil
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           target,
	})
	if err != nil {
		return errors.Wrap(err, "unable to create decoder")
	}
	return errors.WithStack(decoder.Decode(data))
}

func nestedDict(data map[string]any, key string) (map[string]any, bool, error) {
	raw, exist := data[key]
	if !exist || raw == nil {
		return nil, false, nil
	}
	nested, ok := raw.(map[string]any)
	if !ok {
		return nil, false, errors.Errorf("%s must be an object, got %T", key, raw)
	}
	return nested, true, nil
}

func decodeList[T any](data map[string]any, key string, build func(map[string]any) (*T, error)) ([]*T, error) {
	raw, exist := data[key]
	if !exist || raw == nil {
		return nil, nil
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, errors.Errorf("%s must be a list, got %T", key, raw)
	}
	result := make([]*T, 0, len(items))
	for i, item := range items {
		var itemData map[string]any
		if item != nil {
			itemData, ok = item.(map[string]any)
			if !ok {
				return nil, errors.Errorf("%s[%d] must be an object, got %T", key, i, item)
			}
		}
		built, err := build(itemData)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to decode %s[%d]", key, i)
		}
		result = append(result, built)
	}
	return result, nil
}

// dict accumulates the non zero fields of a model.
type dict map[string]any

func (d dict) setString(key, value string) {
	if value != "" {
		d[key] = value
	}
}

func (d dict) setInt(key string, value int64) {
	if value != 0 {
		d[key] = value
	}
}

func (d dict) setBool(key string, value bool) {
	if value {
		d[key] = value
	}
}

func (d dict) setRaw(key string, value any) {
	switch value := value.(type) {
	case nil:
		return
	case map[string]any:
		if len(value) == 0 {
			return
		}
	case []any:
		if len(value) == 0 {
			return
		}
	case []string:
		if len(value) == 0 {
			return
		}
	}
	d[key] = value
}

func dictList[M Model](items []M) []any {
	if len(items) == 0 {
		return nil
	}
	result := make([]any, 0, len(items))
	for _, item := range items {
		result = append(result, item.AsDict())
	}
	return result
}

func toJSONString(data map[string]any) string {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	// encoding/json writes map keys sorted.
	if err := encoder.Encode(data); err != nil {
		return "{}"
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

func equal(a, b Model) bool {
	return a.AsJSONString() == b.AsJSONString()
}
