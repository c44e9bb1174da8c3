package matfile_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netrel/core"
	"github.com/katalvlaran/netrel/matfile"
)

// write drops content into a temp artifact and returns its path.
func write(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graphs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const twoMatrices = `
A:
  - [0, 1, 0, 0]
  - [1, 0, 1, 0]
  - [0, 1, 0, 1]
  - [0, 0, 1, 0]
B:
  - [0, 1]
  - [1, 0]
`

func TestLoad(t *testing.T) {
	path := write(t, twoMatrices)

	m, err := matfile.Load(path, "A")
	require.NoError(t, err)
	r, c := m.Dims()
	assert.Equal(t, 4, r)
	assert.Equal(t, 4, c)
	assert.Equal(t, 1.0, m.At(0, 1))
	assert.Equal(t, 0.0, m.At(0, 3))

	// the same artifact serves the second key independently
	b, err := matfile.Load(path, "B")
	require.NoError(t, err)
	r, c = b.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 2, c)
}

// TestLoad_FeedsCore checks the loader end-to-end into graph construction.
func TestLoad_FeedsCore(t *testing.T) {
	m, err := matfile.Load(write(t, twoMatrices), "A")
	require.NoError(t, err)

	g, err := core.FromAdjacency(m)
	require.NoError(t, err)
	assert.Equal(t, 4, g.Order())
	assert.Equal(t, 3, g.EdgeCount())
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing_file", func(t *testing.T) {
		_, err := matfile.Load(filepath.Join(t.TempDir(), "absent.yaml"), "A")
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("bad_yaml", func(t *testing.T) {
		_, err := matfile.Load(write(t, "A: [not, a, matrix"), "A")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, matfile.ErrKeyNotFound)
	})

	t.Run("key_not_found", func(t *testing.T) {
		_, err := matfile.Load(write(t, twoMatrices), "Z")
		assert.ErrorIs(t, err, matfile.ErrKeyNotFound)
	})

	t.Run("empty_matrix", func(t *testing.T) {
		_, err := matfile.Load(write(t, "A: []"), "A")
		assert.ErrorIs(t, err, matfile.ErrEmptyMatrix)
	})

	t.Run("ragged_rows", func(t *testing.T) {
		ragged := `
A:
  - [0, 1]
  - [1]
`
		_, err := matfile.Load(write(t, ragged), "A")
		assert.ErrorIs(t, err, matfile.ErrRaggedMatrix)
	})
}

func TestLoad_ErrorsAreDistinguishable(t *testing.T) {
	// the sentinels must not alias each other
	sentinels := []error{matfile.ErrKeyNotFound, matfile.ErrEmptyMatrix, matfile.ErrRaggedMatrix}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel %v aliases %v", a, b)
			}
		}
	}
}
