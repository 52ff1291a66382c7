// internal/nodeid/types.go
package nodeid

// Key is the structured representation of a unique node identifier.
// It is modeled as an arena slot index plus the generation of that slot.
type Key struct {
	Index uint32
	// Generation starts at 1 for a freshly allocated slot. 0 marks the null key.
	Generation uint32
}

// New creates a key for the given slot and generation.
func New(index, generation uint32) Key {
	return Key{Index: index, Generation: generation}
}

// IsNull returns true if the key is the zero value and refers to nothing.
func (k Key) IsNull() bool {
	return k.Generation == 0
}
