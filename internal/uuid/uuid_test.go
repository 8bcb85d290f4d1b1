package uuid_test

import (
	"testing"

	"github.com/KirkDiggler/creature-battle/internal/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSequentialGenerator(t *testing.T) {
	gen := uuid.NewSequentialGenerator("creature")

	assert.Equal(t, "creature-1", gen.New())
	assert.Equal(t, "creature-2", gen.New())
}

func TestGoogleUUIDGenerator_Unique(t *testing.T) {
	gen := uuid.NewGoogleUUIDGenerator()

	a := gen.New()
	b := gen.New()
	assert.NotEqual(t, a, b)
	assert.Len(t, a, 36)
}
