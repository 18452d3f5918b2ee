// Package idgen produces the opaque string identifiers assigned to new entities.
package idgen

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
)

// Generator returns a new unique identifier on every call. Implementations
// must never fail; stores call NewID inside their mutation path.
type Generator interface {
	NewID() string
}

// UUID generates version 7 UUIDs: a millisecond timestamp followed by random
// bits, so IDs sort by creation time and stay unique across reinstalls.
type UUID struct{}

// NewID returns a UUIDv7 string, falling back to a random v4 UUID if the
// clock-based generator fails.
func (UUID) NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Snowflake generates Twitter-style snowflake IDs from a single node.
// The node number must be between 0 and 1023.
type Snowflake struct {
	node *snowflake.Node
}

// NewSnowflake returns a Snowflake generator for the given node number.
func NewSnowflake(node int64) (*Snowflake, error) {
	n, err := snowflake.NewNode(node)
	if err != nil {
		return nil, fmt.Errorf("idgen.NewSnowflake: node %d: %w", node, err)
	}
	return &Snowflake{node: n}, nil
}

// NewID returns the next snowflake ID in base 10.
func (s *Snowflake) NewID() string {
	return s.node.Generate().String()
}

// Sequence is a deterministic Generator for tests: it returns Prefix followed
// by 1, 2, 3, ...
type Sequence struct {
	Prefix string

	mu sync.Mutex
	n  int
}

// NewID returns the next ID in the sequence.
func (s *Sequence) NewID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return s.Prefix + strconv.Itoa(s.n)
}
