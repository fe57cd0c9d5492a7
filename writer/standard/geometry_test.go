package standard

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsFinderZone(t *testing.T) {
	const n = 25

	assert.True(t, IsFinderZone(0, 0, n))
	assert.True(t, IsFinderZone(6, 6, n))
	assert.False(t, IsFinderZone(7, 7, n))
	assert.True(t, IsFinderZone(0, n-1, n))
	assert.True(t, IsFinderZone(6, n-7, n))
	assert.False(t, IsFinderZone(7, n-1, n))
	assert.True(t, IsFinderZone(n-1, 0, n))
	assert.False(t, IsFinderZone(n-8, 0, n))

	// no eye in the bottom-right corner
	assert.False(t, IsFinderZone(n-1, n-1, n))
	assert.False(t, IsFinderZone(n-7, n-7, n))
}

func TestRoundedRect_Clamp(t *testing.T) {
	assert.Equal(t, 2.0, RoundedRect(0, 0, 10, 4, 100).R)
	assert.Equal(t, 3.0, RoundedRect(0, 0, 10, 40, 3).R)
	assert.Equal(t, 0.0, RoundedRect(0, 0, 10, 10, -1).R)
	assert.Equal(t, 0.0, RoundedRect(0, 0, 10, 10, math.NaN()).R)
}

func TestRoundedRect_Trace(t *testing.T) {
	r := &recorder{}
	FillRoundedRect(r, 10, 20, 30, 40, 5)

	if assert.Len(t, r.fills, 1) {
		path := r.fills[0].path
		assert.Equal(t, pathOp{name: "move", args: []float64{15, 20}}, path[0])
		assert.Equal(t, "close", path[len(path)-1].name)
	}
	assert.Equal(t, 4, r.ops("arc"))
	assert.Equal(t, 4, r.ops("line"))
}
