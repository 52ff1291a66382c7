// internal/nodeid/parser.go
package nodeid

import (
	"fmt"
	"regexp"
	"strconv"
)

// keyRegex matches the canonical key form, e.g. `12v3`.
var keyRegex = regexp.MustCompile(`^(\d+)v(\d+)$`)

// Parse creates a Key by parsing its canonical string representation.
func Parse(raw string) (Key, error) {
	if raw == "" {
		return Key{}, fmt.Errorf("key cannot be empty")
	}

	matches := keyRegex.FindStringSubmatch(raw)
	if matches == nil {
		return Key{}, fmt.Errorf("invalid key format: %q", raw)
	}

	index, err := strconv.ParseUint(matches[1], 10, 32)
	if err != nil {
		return Key{}, fmt.Errorf("invalid key index in %q: %w", raw, err)
	}
	generation, err := strconv.ParseUint(matches[2], 10, 32)
	if err != nil {
		return Key{}, fmt.Errorf("invalid key generation in %q: %w", raw, err)
	}
	if generation == 0 {
		return Key{}, fmt.Errorf("invalid key %q: generation must be positive", raw)
	}

	return New(uint32(index), uint32(generation)), nil
}
