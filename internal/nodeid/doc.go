// internal/nodeid/doc.go

/*
Package nodeid provides the stable, opaque key used to address nodes in the
sequencer's arena.

A key is a slot index paired with a generation counter. The canonical text
form is `<index>v<generation>`, e.g. `3v1`. The zero Key is the null key and
never refers to a node, so callers can use it as an "unset" sentinel.

This package centralizes all formatting and parsing logic for keys.
*/
package nodeid
