// internal/nodeid/key.go
package nodeid

import (
	"strconv"
	"strings"
)

// String serializes the Key into its canonical `<index>v<generation>` form.
// The null key renders as "null".
func (k Key) String() string {
	if k.IsNull() {
		return "null"
	}

	var sb strings.Builder
	sb.WriteString(strconv.FormatUint(uint64(k.Index), 10))
	sb.WriteRune('v')
	sb.WriteString(strconv.FormatUint(uint64(k.Generation), 10))
	return sb.String()
}

// Equal checks whether two keys address the same slot generation.
func (k Key) Equal(other Key) bool {
	return k == other
}

// MarshalText implements encoding.TextMarshaler so keys render cleanly in
// structured logs and JSON.
func (k Key) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
