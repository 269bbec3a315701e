package regs

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveSliceContiguous(t *testing.T) {
	positions, err := ResolveSlice(32, 8, 16, 1)

	assert.Nil(t, err)
	assert.Equal(t, []int{8, 9, 10, 11, 12, 13, 14, 15}, positions)
}

func TestResolveSliceStrided(t *testing.T) {
	positions, err := ResolveSlice(10, 0, 10, 3)

	assert.Nil(t, err)
	assert.Equal(t, []int{0, 3, 6, 9}, positions)
}

func TestResolveSliceOmittedEndpoints(t *testing.T) {
	positions, err := ResolveSlice(4, End, End, 1)

	assert.Nil(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, positions)
}

func TestResolveSliceNegativeEndpointsCountFromTheEnd(t *testing.T) {
	positions, err := ResolveSlice(8, -3, End, 1)

	assert.Nil(t, err)
	assert.Equal(t, []int{5, 6, 7}, positions)

	positions, err = ResolveSlice(8, 0, -4, 1)

	assert.Nil(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, positions)
}

func TestResolveSliceClampsEndpoints(t *testing.T) {
	positions, err := ResolveSlice(4, 2, 100, 1)

	assert.Nil(t, err)
	assert.Equal(t, []int{2, 3}, positions)

	positions, err = ResolveSlice(4, -100, 2, 1)

	assert.Nil(t, err)
	assert.Equal(t, []int{0, 1}, positions)
}

func TestResolveSliceNeverReturnsEmptySelections(t *testing.T) {
	_, err := ResolveSlice(32, 16, 8, 1)
	assert.ErrorIs(t, err, ErrRange)

	_, err = ResolveSlice(32, 40, 41, 1)
	assert.ErrorIs(t, err, ErrRange)

	_, err = ResolveSlice(0, End, End, 1)
	assert.ErrorIs(t, err, ErrRange)
}

func TestResolveSliceOversizedStepsSelectOnlyTheStart(t *testing.T) {
	positions, err := ResolveSlice(4, 1, 4, math.MaxInt)

	assert.Nil(t, err)
	assert.Equal(t, []int{1}, positions)

	positions, err = ResolveSlice(32, 0, 32, 100)

	assert.Nil(t, err)
	assert.Equal(t, []int{0}, positions)
}

func TestResolveSliceRejectsNonPositiveSteps(t *testing.T) {
	_, err := ResolveSlice(32, 0, 32, 0)
	assert.ErrorIs(t, err, ErrRange)

	_, err = ResolveSlice(32, 0, 32, -1)
	assert.ErrorIs(t, err, ErrRange)
}
