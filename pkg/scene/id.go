package scene

import (
	"crypto/sha256"
	"encoding/hex"
)

// NodeID is a content-addressed identifier: the hex SHA-256 of the node's
// path in the script (for example "shape/bolt" or "place/bolt/0").
// The zero value means "no node".
type NodeID string

// NewNodeID derives the ID for path. The same path always yields the same
// ID, so re-evaluating an unchanged script gives an identical scene.
func NewNodeID(path string) NodeID {
	sum := sha256.Sum256([]byte(path))
	return NodeID(hex.EncodeToString(sum[:]))
}

// Short returns the first 8 hex digits, enough to tell nodes apart in
// messages and mesh names.
func (id NodeID) Short() string {
	if len(id) <= 8 {
		return string(id)
	}
	return string(id[:8])
}

func (id NodeID) IsZero() bool { return id == "" }
