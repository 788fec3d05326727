package keymap

import (
	"fmt"
	"strings"
)

// pathPrefix starts every accel path.
const pathPrefix = "<Actions>/"

// Path returns the accel path of action inside group.
func Path(group, action string) string {
	return pathPrefix + group + "/" + action
}

// SplitPath returns the group and action names of an accel path.
func SplitPath(path string) (group, action string, err error) {
	rest, ok := strings.CutPrefix(path, pathPrefix)
	if !ok {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}
	group, action, ok = strings.Cut(rest, "/")
	if !ok || group == "" || action == "" || strings.Contains(action, "/") {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}
	return group, action, nil
}
