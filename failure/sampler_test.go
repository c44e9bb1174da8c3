package failure_test

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/netrel/core"
	"github.com/katalvlaran/netrel/failure"
)

// buildPath returns the 4-node path graph 0-1-2-3.
func buildPath(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.FromAdjacency(mat.NewDense(4, 4, []float64{
		0, 1, 0, 0,
		1, 0, 1, 0,
		0, 1, 0, 1,
		0, 0, 1, 0,
	}))
	if err != nil {
		t.Fatalf("building path graph: %v", err)
	}
	return g
}

func TestSurvivors_Errors(t *testing.T) {
	if _, err := failure.Survivors(nil, 0.5); !errors.Is(err, failure.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := buildPath(t)
	for _, rate := range []float64{-0.1, 1.1} {
		if _, err := failure.Survivors(g, rate); !errors.Is(err, failure.ErrInvalidRate) {
			t.Errorf("rate %v: want ErrInvalidRate, got %v", rate, err)
		}
	}
}

func TestSurvivors_RateZeroKeepsAll(t *testing.T) {
	g := buildPath(t)
	got, err := failure.Survivors(g, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{0, 1, 2, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("Survivors(rate=0) = %v; want %v", got, want)
	}
}

func TestSurvivors_RateOneRemovesAll(t *testing.T) {
	g := buildPath(t)
	got, err := failure.Survivors(g, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Survivors(rate=1) = %v; want empty", got)
	}
}

// TestSurvivors_Deterministic verifies that an injected seeded source makes
// the draw reproducible, and that distinct calls on one source differ.
func TestSurvivors_Deterministic(t *testing.T) {
	g := buildPath(t)

	a, err := failure.Survivors(g, 0.5, failure.WithRand(rand.New(rand.NewSource(7))))
	if err != nil {
		t.Fatal(err)
	}
	b, err := failure.Survivors(g, 0.5, failure.WithRand(rand.New(rand.NewSource(7))))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed, different survivors: %v vs %v", a, b)
	}
}

// TestSurvivors_Frequency checks the empirical survival frequency against
// 1-rate over many draws, with a generous tolerance band.
func TestSurvivors_Frequency(t *testing.T) {
	g := buildPath(t)
	rng := rand.New(rand.NewSource(42))

	const trials = 10000
	const rate = 0.3
	total := 0
	for i := 0; i < trials; i++ {
		s, err := failure.Survivors(g, rate, failure.WithRand(rng))
		if err != nil {
			t.Fatal(err)
		}
		total += len(s)
	}
	freq := float64(total) / float64(trials*g.Order())
	if want, tol := 1-rate, 0.02; freq < want-tol || freq > want+tol {
		t.Errorf("survival frequency = %.4f; want %.2f ± %.2f", freq, want, tol)
	}
}
