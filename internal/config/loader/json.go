package loader

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/dshills/stringmod/internal/config"
)

// encodeJSON builds the object key by key so it keeps file order.
func encodeJSON(c *config.Config) ([]byte, error) {
	out := []byte("{}")
	for _, k := range config.Keys() {
		v, err := c.Get(k)
		if err != nil {
			return nil, err
		}
		var value any = v
		if k.IsChoice() {
			value = choiceOf(c, k)
		}
		out, err = sjson.SetBytes(out, k.String(), value)
		if err != nil {
			return nil, err
		}
	}
	return pretty.Pretty(out), nil
}

func choiceOf(c *config.Config, k config.Key) int {
	if k == config.KeyRadioCharArray {
		return c.RadioCharArray
	}
	return c.RadioWordArray
}

func decodeJSON(data []byte) ([]pair, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("invalid JSON")
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, errors.New("expected an object at the top level")
	}

	var (
		pairs []pair
		err   error
	)
	root.ForEach(func(name, v gjson.Result) bool {
		switch v.Type {
		case gjson.String, gjson.Number:
			pairs = append(pairs, pair{name.String(), v.String()})
		case gjson.Null:
			pairs = append(pairs, pair{name.String(), ""})
		default:
			err = fmt.Errorf("%s: %w", name.String(), ErrInvalidValue)
			return false
		}
		return true
	})
	return pairs, err
}
