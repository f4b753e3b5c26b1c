package ipv4

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGlueMapSetTestClear(t *testing.T) {
	var g glueMap
	assert.False(t, g.test(8))

	g = g.set(8)
	assert.True(t, g.test(8))
	assert.False(t, g.test(9))

	g = g.clear(8)
	assert.False(t, g.test(8))
}

func TestGlueMapRange(t *testing.T) {
	g := glueMapRange(8, 10)
	assert.True(t, g.test(8))
	assert.True(t, g.test(9))
	assert.True(t, g.test(10))
	assert.False(t, g.test(7))
	assert.False(t, g.test(11))
	assert.Equal(t, 3, g.count())
}

func TestGlueMapRuns(t *testing.T) {
	g := glueMapRange(8, 10).union(glueMapRange(20, 22))

	runs := g.runs()
	assert.Equal(t, []lengthRange{
		{Lower: 8, Upper: 10},
		{Lower: 20, Upper: 22},
	}, runs)
}

func TestGlueMapBooleanOps(t *testing.T) {
	a := glueMapRange(0, 10)
	b := glueMapRange(5, 15)

	assert.Equal(t, glueMapRange(0, 15), a.union(b))
	assert.Equal(t, glueMapRange(5, 10), a.intersect(b))
	assert.Equal(t, glueMapRange(0, 4), a.sub(b))
}
