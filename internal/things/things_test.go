package things

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	name, ok := Name(1)
	assert.True(t, ok)
	assert.Equal(t, "Player1Start", name)

	name, ok = Name(3005)
	assert.True(t, ok)
	assert.Equal(t, "Cacodemon", name)

	_, ok = Name(14)
	assert.False(t, ok)
}

func TestDescribeUnknownCode(t *testing.T) {
	assert.Equal(t, "ExplosiveBarrel", Describe(2035))
	assert.Equal(t, "Unknown(12345)", Describe(12345))
}
