// SPDX-License-Identifier: MIT

// Package matfile loads named adjacency matrices from a YAML artifact.
//
// The artifact is a mapping from matrix keys to row-major numeric matrices:
//
//	A:
//	  - [0, 1, 0]
//	  - [1, 0, 1]
//	  - [0, 1, 0]
//	B:
//	  - [0, 1]
//	  - [1, 0]
//
// One file can therefore hold several matrices side by side; Load picks one
// by key (the conventional default key is "A"). Only container-level shape
// is validated here: every row of the selected matrix must have the same
// length. Structural graph validation (squareness, symmetry, finite
// entries) belongs to core.FromAdjacency, which consumes the result.
package matfile

import (
	"errors"
	"fmt"
	"os"

	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"
)

// Sentinel errors for artifact loading.
var (
	// ErrKeyNotFound is returned when the artifact holds no matrix under
	// the requested key.
	ErrKeyNotFound = errors.New("matfile: matrix key not found")

	// ErrEmptyMatrix is returned when the selected matrix has no rows or
	// an empty first row.
	ErrEmptyMatrix = errors.New("matfile: matrix is empty")

	// ErrRaggedMatrix is returned when the rows of the selected matrix
	// have unequal lengths.
	ErrRaggedMatrix = errors.New("matfile: rows have unequal lengths")
)

// Load reads the YAML artifact at path and returns the matrix stored under
// key as a dense gonum matrix.
//
// I/O and YAML failures are wrapped with the path for context; shape
// problems surface as the package sentinels. Complexity: O(file size).
func Load(path, key string) (*mat.Dense, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("matfile: reading %s: %w", path, err)
	}

	var doc map[string][][]float64
	if err = yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("matfile: parsing %s: %w", path, err)
	}

	rows, ok := doc[key]
	if !ok {
		return nil, fmt.Errorf("matfile: %s: key %q: %w", path, key, ErrKeyNotFound)
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("matfile: %s: key %q: %w", path, key, ErrEmptyMatrix)
	}

	r, c := len(rows), len(rows[0])
	data := make([]float64, 0, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("matfile: %s: key %q: row %d has %d entries, row 0 has %d: %w",
				path, key, i, len(row), c, ErrRaggedMatrix)
		}
		data = append(data, row...)
	}

	return mat.NewDense(r, c, data), nil
}
