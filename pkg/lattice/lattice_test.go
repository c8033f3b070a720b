package lattice_test

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/polyform/tilekernel/pkg/lattice"
)

var allKinds = []lattice.Kind{lattice.Square, lattice.Hex, lattice.Triangle}

func TestForReturnsDistinctTransformCounts(t *testing.T) {
	want := map[lattice.Kind]int{lattice.Square: 8, lattice.Hex: 12, lattice.Triangle: 12}
	for _, k := range allKinds {
		l, err := lattice.For(k)
		if err != nil {
			t.Fatal(err)
		}
		if got := l.TransformCount(); got != want[k] {
			t.Errorf("%v: TransformCount() = %d, want %d", k, got, want[k])
		}
	}
}

func TestIdentityTransformIsNoOp(t *testing.T) {
	for _, k := range allKinds {
		l, err := lattice.For(k)
		if err != nil {
			t.Fatal(err)
		}
		cells := []lattice.Cell{{Row: 0, Col: 0}, {Row: 2, Col: 3}, {Row: -1, Col: 5}}
		for _, c := range cells {
			if got := l.ApplyCellTransform(0, c); got != c {
				t.Errorf("%v: identity transform moved %v to %v", k, c, got)
			}
		}
	}
}

func TestSharedEdgeIsSymmetric(t *testing.T) {
	for _, k := range allKinds {
		l, err := lattice.For(k)
		if err != nil {
			t.Fatal(err)
		}
		c := lattice.Cell{Row: 2, Col: 2}
		for _, n := range l.Neighbors(c) {
			dirFromA, dirFromB, ok := l.SharedEdge(c, n.Cell)
			if !ok {
				t.Fatalf("%v: SharedEdge(%v, %v) reported not-adjacent for a declared neighbor", k, c, n.Cell)
			}
			if dirFromA != n.Dir {
				t.Errorf("%v: SharedEdge dirFromA = %d, want %d", k, dirFromA, n.Dir)
			}
			backDirFromB, backDirFromA, ok := l.SharedEdge(n.Cell, c)
			if !ok || backDirFromB != dirFromB || backDirFromA != dirFromA {
				t.Errorf("%v: SharedEdge not symmetric for (%v,%v)", k, c, n.Cell)
			}
		}
	}
}

func TestVertexRoundTripAllLattices(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		kind := allKinds[rapid.IntRange(0, len(allKinds)-1).Draw(t, "kind")]
		l, err := lattice.For(kind)
		if err != nil {
			t.Fatal(err)
		}
		c := lattice.Cell{
			Row: rapid.IntRange(-20, 20).Draw(t, "row"),
			Col: rapid.IntRange(-20, 20).Draw(t, "col"),
		}
		transformIndex := rapid.IntRange(0, l.TransformCount()-1).Draw(t, "transform")

		vs := l.CellToVertices(c)
		transformed := make([]lattice.Vertex, len(vs))
		for i, v := range vs {
			transformed[i] = l.ApplyVertexTransform(transformIndex, v)
		}
		got, err := l.VerticesToCell(transformed)
		if err != nil {
			t.Fatalf("%v: VerticesToCell failed after transform %d on cell %v: %v", kind, transformIndex, c, err)
		}
		want := l.ApplyCellTransform(transformIndex, c)
		if got != want {
			t.Fatalf("%v: round-trip mismatch for cell %v transform %d: got %v, want %v", kind, c, transformIndex, got, want)
		}
	})
}

func TestTriangleParityFromCoordinates(t *testing.T) {
	l, err := lattice.For(lattice.Triangle)
	if err != nil {
		t.Fatal(err)
	}
	// Applying the identity transform must never change a cell's parity;
	// non-identity transforms are checked via the round-trip property.
	for row := -3; row <= 3; row++ {
		for col := -3; col <= 3; col++ {
			c := lattice.Cell{Row: row, Col: col}
			got := l.ApplyCellTransform(0, c)
			gotParity := (got.Row + got.Col) % 2
			wantParity := (row + col) % 2
			if gotParity != wantParity {
				t.Fatalf("identity transform changed parity of %v", c)
			}
		}
	}
}

func TestParseKindRoundTrip(t *testing.T) {
	for _, k := range allKinds {
		got, err := lattice.ParseKind(k.String())
		if err != nil {
			t.Fatal(err)
		}
		if got != k {
			t.Errorf("ParseKind(%q) = %v, want %v", k.String(), got, k)
		}
	}
}

func TestForUnknownKind(t *testing.T) {
	if _, err := lattice.For(lattice.Kind(99)); err == nil {
		t.Fatal("expected an error for an unknown lattice kind")
	}
}
