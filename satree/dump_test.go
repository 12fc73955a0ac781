package satree_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/satree/satree"
)

func TestDumpText_S1(t *testing.T) {
	tree, err := satree.Build(pts(
		[]float64{3, 3}, []float64{5, 3}, []float64{2, 2}, []float64{4, 4},
	))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "{(4, 4)}({(3, 3)}({(2, 2)}),{(5, 3)})"
	if got := tree.DumpText(); got != want {
		t.Fatalf("DumpText() = %q, want %q", got, want)
	}
}

func TestDumpText_Determinism(t *testing.T) {
	input := pts(
		[]float64{1, 1}, []float64{3, 3}, []float64{5, 3}, []float64{3, 4},
		[]float64{6, 4}, []float64{-3, -3}, []float64{-3, -4}, []float64{-5, -3},
		[]float64{-4, -4}, []float64{-1, -1},
	)
	t1, err := satree.Build(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t2, err := satree.Build(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if t1.DumpText() != t2.DumpText() {
		t.Fatalf("identical input order must produce identical dumps")
	}
}

func TestDumpIndented_LineCountMatchesNodeCount(t *testing.T) {
	input := pts([]float64{3, 3}, []float64{5, 3}, []float64{2, 2}, []float64{4, 4})
	tree, err := satree.Build(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dump := tree.DumpIndented()
	lines := strings.Split(strings.TrimRight(dump, "\n"), "\n")
	if len(lines) != len(input) {
		t.Fatalf("expected %d lines, got %d:\n%s", len(input), len(lines), dump)
	}
}
