package gui

import "hash/fnv"

// ID correlates a widget across frames. It is derived deterministically
// from the widget's label (or an explicit caller value) combined with the
// id of the region that contains it, so the same (scope, label) pair maps
// to the same ID every frame. Two siblings with identical labels collide;
// that is a caller error resolved by supplying explicit ids.
type ID uint64

// MakeID hashes a label into an ID.
func MakeID(label string) ID {
	h := fnv.New64a()
	h.Write([]byte(label))
	return ID(h.Sum64())
}

// Child derives the id of a child labeled label inside the scope id.
func (id ID) Child(label string) ID {
	var buf [8]byte
	for i := range buf {
		buf[i] = byte(id >> (8 * i))
	}
	h := fnv.New64a()
	h.Write(buf[:])
	h.Write([]byte(label))
	return ID(h.Sum64())
}
