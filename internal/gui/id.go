package gui

import (
	"encoding/binary"
	"hash/fnv"
	"strconv"
)

// ID is a node identity that stays the same across frames as long as the
// node is declared with the same label under the same parent.
type ID uint64

// deriveID hashes a child key under its parent.
func deriveID(parent ID, key string) ID {
	h := fnv.New64a()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(parent))
	h.Write(buf[:])
	h.Write([]byte(key))
	return nonReserved(ID(h.Sum64()))
}

// nonReserved moves a hash off the values that mean "no node" and the root.
func nonReserved(id ID) ID {
	if id == 0 || id == rootID {
		return ^ID(0)
	}
	return id
}

// childKey is the hashing key of a node: its label, or its position among
// its siblings when unlabeled.
func childKey(label string, index int) string {
	if label != "" {
		return label
	}
	return "#" + strconv.Itoa(index)
}
