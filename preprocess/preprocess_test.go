package preprocess_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jpsplus/grid"
	"github.com/katalvlaran/jpsplus/preprocess"
)

func testGrid(t *testing.T) *grid.Grid {
	t.Helper()
	rows := make([][]bool, 6)
	for r := range rows {
		rows[r] = make([]bool, 6)
		for c := range rows[r] {
			rows[r][c] = true
		}
	}
	rows[3][3] = false
	g, err := grid.New(rows)
	require.NoError(t, err)

	return g
}

func TestBuild_NilGrid(t *testing.T) {
	_, err := preprocess.Build(nil)
	assert.ErrorIs(t, err, preprocess.ErrNilGrid)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	g := testGrid(t)
	m, err := preprocess.Build(g)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, preprocess.Save(&buf, g, m))

	loaded, err := preprocess.Load(&buf, g)
	require.NoError(t, err)

	n := g.Width() * g.Height()
	for idx := 0; idx < n; idx++ {
		coord := g.Coordinate(idx)
		if g.Blocked(coord.Row, coord.Col) {
			continue
		}
		for d := grid.Direction(0); d < grid.NumDirections; d++ {
			assert.Equal(t, m.DistantJump(idx, d), loaded.DistantJump(idx, d))
			assert.Equal(t, m.GoalBounds(idx, d), loaded.GoalBounds(idx, d))
		}
	}
}

func TestSaveLoadCompressed_RoundTrip(t *testing.T) {
	g := testGrid(t)
	m, err := preprocess.Build(g)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, preprocess.SaveCompressed(&buf, g, m))

	loaded, err := preprocess.LoadCompressed(&buf, g)
	require.NoError(t, err)

	idx := g.Index(0, 0)
	assert.Equal(t, m.DistantJump(idx, grid.Right), loaded.DistantJump(idx, grid.Right))
}

func TestSave_DimensionMismatch(t *testing.T) {
	g := testGrid(t)
	m, err := preprocess.Build(g)
	require.NoError(t, err)

	other, err := grid.NewUniform(3, 3)
	require.NoError(t, err)

	var buf bytes.Buffer
	assert.ErrorIs(t, preprocess.Save(&buf, other, m), preprocess.ErrDimensionMismatch)
}

func TestLoad_TruncatedFile(t *testing.T) {
	g := testGrid(t)
	m, err := preprocess.Build(g)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, preprocess.Save(&buf, g, m))

	truncated := bytes.NewReader(buf.Bytes()[:4])
	_, err = preprocess.Load(truncated, g)
	assert.ErrorIs(t, err, preprocess.ErrCorruptFile)
}
