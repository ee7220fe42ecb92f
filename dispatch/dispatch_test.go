package dispatch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/jpsplus/dispatch"
	"github.com/katalvlaran/jpsplus/grid"
)

func hasBit(mask uint16, d grid.Direction) bool {
	return mask&(1<<uint(d)) != 0
}

func TestProbeMask_StartNode_AlwaysFull(t *testing.T) {
	mask := dispatch.ProbeMask(0xFF, grid.Right, false)
	assert.Equal(t, uint16(0xFF), mask)
}

func TestProbeMask_Cardinal_OpenTerrain_OnlyStraight(t *testing.T) {
	mask := dispatch.ProbeMask(0, grid.Right, true)
	assert.True(t, hasBit(mask, grid.Right))
	assert.False(t, hasBit(mask, grid.UpRight))
	assert.False(t, hasBit(mask, grid.DownRight))
}

func TestProbeMask_Cardinal_ForcedNeighbor(t *testing.T) {
	// Moving Right with Up blocked must add the UpRight diagonal probe.
	blocked := uint16(1) << uint(grid.Up)
	mask := dispatch.ProbeMask(blocked, grid.Right, true)
	assert.True(t, hasBit(mask, grid.Right))
	assert.True(t, hasBit(mask, grid.UpRight))
	assert.False(t, hasBit(mask, grid.DownRight))
}

func TestProbeMask_Diagonal_OpenTerrain_NaturalNeighbors(t *testing.T) {
	mask := dispatch.ProbeMask(0, grid.DownRight, true)
	assert.True(t, hasBit(mask, grid.DownRight))
	assert.True(t, hasBit(mask, grid.Down))
	assert.True(t, hasBit(mask, grid.Right))
	assert.False(t, hasBit(mask, grid.UpRight))
	assert.False(t, hasBit(mask, grid.DownLeft))
}

func TestProbeMask_Diagonal_ForcedNeighbor(t *testing.T) {
	// Moving DownRight with Up blocked (opposite of the Down component)
	// must add the UpRight forced diagonal.
	blocked := uint16(1) << uint(grid.Up)
	mask := dispatch.ProbeMask(blocked, grid.DownRight, true)
	assert.True(t, hasBit(mask, grid.UpRight))
}
