package builder_test

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/netrel/builder"
	"github.com/katalvlaran/netrel/core"
)

// edgeCount builds a graph from m and returns its edge count, failing the
// test if the matrix is not a valid adjacency.
func edgeCount(t *testing.T, m *mat.Dense) int {
	t.Helper()
	g, err := core.FromAdjacency(m)
	if err != nil {
		t.Fatalf("constructor emitted an invalid adjacency: %v", err)
	}
	return g.EdgeCount()
}

func TestPath(t *testing.T) {
	if _, err := builder.Path(1); !errors.Is(err, builder.ErrTooFewVertices) {
		t.Errorf("Path(1): want ErrTooFewVertices, got %v", err)
	}
	m, err := builder.Path(5)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := edgeCount(t, m), 4; got != want {
		t.Errorf("P_5 edges = %d; want %d", got, want)
	}
	if m.At(0, 4) != 0 {
		t.Error("P_5 must not close into a cycle")
	}
}

func TestCycle(t *testing.T) {
	if _, err := builder.Cycle(2); !errors.Is(err, builder.ErrTooFewVertices) {
		t.Errorf("Cycle(2): want ErrTooFewVertices, got %v", err)
	}
	m, err := builder.Cycle(5)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := edgeCount(t, m), 5; got != want {
		t.Errorf("C_5 edges = %d; want %d", got, want)
	}
	if m.At(0, 4) != 1 || m.At(4, 0) != 1 {
		t.Error("C_5 closing edge {4,0} missing")
	}
}

func TestComplete(t *testing.T) {
	if _, err := builder.Complete(1); !errors.Is(err, builder.ErrTooFewVertices) {
		t.Errorf("Complete(1): want ErrTooFewVertices, got %v", err)
	}
	m, err := builder.Complete(5)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := edgeCount(t, m), 10; got != want {
		t.Errorf("K_5 edges = %d; want %d", got, want)
	}
}

func TestTwoRoute(t *testing.T) {
	g, err := core.FromAdjacency(builder.TwoRoute())
	if err != nil {
		t.Fatal(err)
	}
	if got, want := g.Order(), 4; got != want {
		t.Errorf("order = %d; want %d", got, want)
	}
	if got, want := g.EdgeCount(), 4; got != want {
		t.Errorf("edges = %d; want %d", got, want)
	}
	// the two routes are node-disjoint: 1 and 2 are not adjacent
	if g.HasEdge(1, 2) || g.HasEdge(0, 3) {
		t.Error("unexpected chord in the two-route fixture")
	}
}

func TestRandomSparse(t *testing.T) {
	if _, err := builder.RandomSparse(1, 0.5, 1); !errors.Is(err, builder.ErrTooFewVertices) {
		t.Errorf("n=1: want ErrTooFewVertices, got %v", err)
	}
	if _, err := builder.RandomSparse(5, 1.5, 1); !errors.Is(err, builder.ErrInvalidProbability) {
		t.Errorf("p=1.5: want ErrInvalidProbability, got %v", err)
	}

	t.Run("deterministic_per_seed", func(t *testing.T) {
		a, err := builder.RandomSparse(20, 0.3, 42)
		if err != nil {
			t.Fatal(err)
		}
		b, err := builder.RandomSparse(20, 0.3, 42)
		if err != nil {
			t.Fatal(err)
		}
		if !mat.Equal(a, b) {
			t.Error("same seed must reproduce the same matrix")
		}
	})

	t.Run("extremes", func(t *testing.T) {
		empty, err := builder.RandomSparse(10, 0, 1)
		if err != nil {
			t.Fatal(err)
		}
		if got := edgeCount(t, empty); got != 0 {
			t.Errorf("G(10,0) edges = %d; want 0", got)
		}
		full, err := builder.RandomSparse(10, 1, 1)
		if err != nil {
			t.Fatal(err)
		}
		if got, want := edgeCount(t, full), 45; got != want {
			t.Errorf("G(10,1) edges = %d; want %d", got, want)
		}
	})
}
