package loader

import (
	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/stringmod/internal/config"
)

// document fixes the key order of the TOML and YAML encodings.
type document struct {
	AccelBraces     string `toml:"AccelBraces" yaml:"AccelBraces"`
	AccelBrackets   string `toml:"AccelBrackets" yaml:"AccelBrackets"`
	AccelQuotes     string `toml:"AccelQuotes" yaml:"AccelQuotes"`
	AccelCustom     string `toml:"AccelCustom" yaml:"AccelCustom"`
	AccelStr2Array  string `toml:"AccelStr2Array" yaml:"AccelStr2Array"`
	AccelStr2WArray string `toml:"AccelStr2WArray" yaml:"AccelStr2WArray"`
	CustomStart     string `toml:"CustomStart" yaml:"CustomStart"`
	CustomEnd       string `toml:"CustomEnd" yaml:"CustomEnd"`
	RadioCharArray  int    `toml:"RadioCharArray" yaml:"RadioCharArray"`
	RadioWordArray  int    `toml:"RadioWordArray" yaml:"RadioWordArray"`
}

func newDocument(c *config.Config) document {
	return document(*c)
}

func encodeTOML(c *config.Config) ([]byte, error) {
	return toml.Marshal(newDocument(c))
}

func decodeTOML(data []byte) ([]pair, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	pairs := make([]pair, 0, len(raw))
	for name, v := range raw {
		p, err := scalar(name, v)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, p)
	}
	return pairs, nil
}
