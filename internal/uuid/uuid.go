// Package uuid hands out stable handles for creatures, modifier sources and
// conditions so identity checks never depend on pointer equality.
package uuid

import (
	"fmt"

	"github.com/google/uuid"
)

// Generator is an interface for generating IDs
type Generator interface {
	New() string
}

// GoogleUUIDGenerator implements the Generator interface using Google's UUID package
type GoogleUUIDGenerator struct{}

// New generates a new UUID string
func (g *GoogleUUIDGenerator) New() string {
	return uuid.New().String()
}

// NewGoogleUUIDGenerator creates a new GoogleUUIDGenerator
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}

// SequentialGenerator produces prefix-1, prefix-2, ... for reproducible battles
type SequentialGenerator struct {
	prefix string
	next   int
}

// NewSequentialGenerator creates a SequentialGenerator
func NewSequentialGenerator(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix}
}

// New returns the next ID in sequence
func (g *SequentialGenerator) New() string {
	g.next++
	return fmt.Sprintf("%s-%d", g.prefix, g.next)
}
