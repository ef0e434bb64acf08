package stateset_test

import (
	"testing"

	"github.com/foo-jin/mucalc/stateset"
	"github.com/stretchr/testify/assert"
)

func TestOfDedupsAndSorts(t *testing.T) {
	s := stateset.Of(3, 1, 2, 1, 3)
	assert.Equal(t, []stateset.State{1, 2, 3}, s.Slice())
	assert.Equal(t, 3, s.Len())
}

func TestContains(t *testing.T) {
	s := stateset.Of(1, 5, 9)
	assert.True(t, s.Contains(5))
	assert.False(t, s.Contains(6))
	assert.False(t, stateset.Empty().Contains(0))
}

func TestEqual(t *testing.T) {
	assert.True(t, stateset.Equal(stateset.Of(1, 2, 3), stateset.Of(3, 2, 1)))
	assert.False(t, stateset.Equal(stateset.Of(1, 2), stateset.Of(1, 2, 3)))
	assert.True(t, stateset.Equal(stateset.Empty(), stateset.Empty()))
}

func TestUnion(t *testing.T) {
	u := stateset.Union(stateset.Of(1, 2), stateset.Of(2, 3))
	assert.Equal(t, []stateset.State{1, 2, 3}, u.Slice())
}

func TestIntersect(t *testing.T) {
	i := stateset.Intersect(stateset.Of(1, 2, 3), stateset.Of(2, 3, 4))
	assert.Equal(t, []stateset.State{2, 3}, i.Slice())

	none := stateset.Intersect(stateset.Of(1, 2), stateset.Of(3, 4))
	assert.Equal(t, 0, none.Len())
}

func TestAdd(t *testing.T) {
	s := stateset.Of(1, 2).Add(2).Add(5)
	assert.Equal(t, []stateset.State{1, 2, 5}, s.Slice())
}

func TestString(t *testing.T) {
	assert.Equal(t, "{1, 2, 3}", stateset.Of(1, 2, 3).String())
	assert.Equal(t, "{}", stateset.Empty().String())
}
