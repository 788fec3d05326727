package loader

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/dshills/stringmod/internal/config"
)

func encodeYAML(c *config.Config) ([]byte, error) {
	return yaml.Marshal(newDocument(c))
}

// decodeYAML walks the mapping node so values keep their document order.
func decodeYAML(data []byte) ([]pair, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if root.Kind == 0 {
		return nil, nil
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) != 1 || root.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("expected a mapping at the top level")
	}

	m := root.Content[0]
	pairs := make([]pair, 0, len(m.Content)/2)
	for i := 0; i+1 < len(m.Content); i += 2 {
		name, v := m.Content[i].Value, m.Content[i+1]
		if v.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%s: %w", name, ErrInvalidValue)
		}
		value := v.Value
		if v.Tag == "!!null" {
			value = ""
		}
		pairs = append(pairs, pair{name, value})
	}
	return pairs, nil
}
