package tilewe_test

import (
	"testing"

	"golang.org/x/exp/slices"

	tw "tilewe-engine/tilewe"
)

// distinct fixed orientations per piece, as listed for the standard set
var wantOrientations = [tw.NumPieces]int{
	tw.O1: 1, tw.I2: 2, tw.I3: 2, tw.L3: 4, tw.I4: 2, tw.L4: 8, tw.Z4: 4, tw.O4: 1, tw.T4: 4,
	tw.F5: 8, tw.I5: 2, tw.L5: 8, tw.N5: 8, tw.P5: 8, tw.T5: 4, tw.U5: 4, tw.V5: 4, tw.W5: 4,
	tw.X5: 1, tw.Y5: 8, tw.Z5: 4,
}

func TestPieceSizes(t *testing.T) {
	g := tw.DefaultGeometry()
	total := 0
	for p := tw.Piece(0); p < tw.NumPieces; p++ {
		size := g.PieceSize(p)
		total += size
		for r := tw.Rotation(0); r < tw.NumRotations; r++ {
			if n := g.NumTiles(p, r); n != size {
				t.Fatalf("%s%s has %d tiles, north has %d", p, r, n, size)
			}
		}
	}
	if total != 89 {
		t.Fatalf("piece set covers %d tiles, want 89", total)
	}
	if g.PieceSize(tw.O1) != 1 || g.PieceSize(tw.T4) != 4 || g.PieceSize(tw.X5) != 5 {
		t.Fatalf("unexpected sizes O1=%d T4=%d X5=%d", g.PieceSize(tw.O1), g.PieceSize(tw.T4), g.PieceSize(tw.X5))
	}
}

func TestCanonicalRotations(t *testing.T) {
	g := tw.DefaultGeometry()
	total := 0
	for p := tw.Piece(0); p < tw.NumPieces; p++ {
		n := 0
		for r := tw.Rotation(0); r < tw.NumRotations; r++ {
			canon := g.Canonical(p, r)
			if canon > r {
				t.Fatalf("%s%s canonical %s comes after it", p, r, canon)
			}
			if !slices.Equal(g.Tiles(p, r), g.Tiles(p, canon)) {
				t.Fatalf("%s%s and its canonical %s differ", p, r, canon)
			}
			if g.IsCanonical(p, r) {
				n++
			}
		}
		if n != wantOrientations[p] {
			t.Errorf("%s: %d canonical rotations, want %d", p, n, wantOrientations[p])
		}
		total += n
	}
	if total != 91 {
		t.Fatalf("%d distinct orientations, want 91", total)
	}
}

func TestRotationDirections(t *testing.T) {
	g := tw.DefaultGeometry()
	// I2 stands upright as drawn and lies flat after a quarter turn.
	if got := g.Tiles(tw.I2, tw.North); !slices.Equal(got, []tw.Coord{{0, 0}, {0, 1}}) {
		t.Fatalf("I2n tiles %v", got)
	}
	if got := g.Tiles(tw.I2, tw.East); !slices.Equal(got, []tw.Coord{{0, 0}, {1, 0}}) {
		t.Fatalf("I2e tiles %v", got)
	}
	// T4 north has its stem below the bar; south has it above.
	if got := g.Tiles(tw.T4, tw.North); !slices.Equal(got, []tw.Coord{{1, 0}, {0, 1}, {1, 1}, {2, 1}}) {
		t.Fatalf("T4n tiles %v", got)
	}
	if got := g.Tiles(tw.T4, tw.South); !slices.Equal(got, []tw.Coord{{0, 0}, {1, 0}, {2, 0}, {1, 1}}) {
		t.Fatalf("T4s tiles %v", got)
	}
	// the mirrored west T4 points the way east does
	if g.Canonical(tw.T4, tw.WestF) != tw.East {
		t.Fatalf("T4wf canonical %s, want e", g.Canonical(tw.T4, tw.WestF))
	}
	if g.Canonical(tw.Z5, tw.South) != tw.North || g.Canonical(tw.Z5, tw.West) != tw.East {
		t.Fatalf("Z5 should be symmetric under a half turn")
	}
}

func TestContacts(t *testing.T) {
	g := tw.DefaultGeometry()
	if got := g.Contacts(tw.Z5, tw.North); !slices.Equal(got, []tw.Coord{{1, 0}, {2, 0}, {0, 2}, {1, 2}}) {
		t.Fatalf("Z5n contacts %v", got)
	}
	// every cell of the square touches two others at a right angle
	if n := g.NumContacts(tw.O4, tw.North); n != 4 {
		t.Fatalf("O4 has %d contacts, want 4", n)
	}
	// the middle of a bar and the hub of the cross are never contacts
	if n := g.NumContacts(tw.I3, tw.North); n != 2 {
		t.Fatalf("I3 has %d contacts, want 2", n)
	}
	if got := g.Contacts(tw.X5, tw.North); slices.Contains(got, tw.Coord{X: 1, Y: 1}) || len(got) != 4 {
		t.Fatalf("X5 contacts %v", got)
	}
	if g.MaxContacts() < 1 || g.MaxContacts() > 8 {
		t.Fatalf("max contacts %d does not fit three bits", g.MaxContacts())
	}
}

func TestOrientationTables(t *testing.T) {
	g := tw.DefaultGeometry()
	edge := []tw.Coord{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	diag := []tw.Coord{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}
	touches := func(cells []tw.Coord, c tw.Coord, offs []tw.Coord) bool {
		for _, off := range offs {
			if slices.Contains(cells, c.Add(off)) {
				return true
			}
		}
		return false
	}

	for p := tw.Piece(0); p < tw.NumPieces; p++ {
		for r := tw.Rotation(0); r < tw.NumRotations; r++ {
			o := g.Orientation(p, r)
			if o.Piece != p || o.Rotation != r {
				t.Fatalf("table entry %s%s labelled %s%s", p, r, o.Piece, o.Rotation)
			}
			for _, c := range o.Tiles {
				if c.X < 0 || c.Y < 0 || c.X >= o.Width || c.Y >= o.Height {
					t.Fatalf("%s%s tile %v outside %dx%d box", p, r, c, o.Width, o.Height)
				}
			}
			for _, c := range o.Contacts {
				if !slices.Contains(o.Tiles, c) {
					t.Fatalf("%s%s contact %v is not a tile", p, r, c)
				}
			}
			for _, c := range o.Corners {
				if slices.Contains(o.Tiles, c) || touches(o.Tiles, c, edge) || !touches(o.Tiles, c, diag) {
					t.Fatalf("%s%s corner %v is not a diagonal-only neighbour", p, r, c)
				}
			}
			for _, c := range o.Adjacent {
				if slices.Contains(o.Tiles, c) || !touches(o.Tiles, c, edge) {
					t.Fatalf("%s%s adjacent %v does not share an edge", p, r, c)
				}
			}
			if len(o.Corners) == 0 || len(o.Contacts) == 0 {
				t.Fatalf("%s%s has empty tables", p, r)
			}
		}
	}
	if n := g.NumCorners(tw.O1, tw.North); n != 4 {
		t.Fatalf("O1 has %d corners, want 4", n)
	}
}

func TestGeometryDeterministic(t *testing.T) {
	a, b := tw.NewGeometry(), tw.DefaultGeometry()
	for p := tw.Piece(0); p < tw.NumPieces; p++ {
		for r := tw.Rotation(0); r < tw.NumRotations; r++ {
			if !slices.Equal(a.Tiles(p, r), b.Tiles(p, r)) ||
				!slices.Equal(a.Contacts(p, r), b.Contacts(p, r)) ||
				!slices.Equal(a.Corners(p, r), b.Corners(p, r)) {
				t.Fatalf("%s%s differs between builds", p, r)
			}
		}
	}
}

func TestGeometryInvalidArguments(t *testing.T) {
	g := tw.DefaultGeometry()
	if g.NumTiles(tw.NoPiece, tw.North) != 0 || g.NumContacts(tw.O1, tw.NumRotations) != 0 {
		t.Fatalf("counts for invalid arguments should be 0")
	}
	if g.Tiles(tw.NumPieces, tw.North) != nil || g.Corners(tw.O1, -1) != nil {
		t.Fatalf("tables for invalid arguments should be nil")
	}
	if g.IsCanonical(tw.NoPiece, tw.North) {
		t.Fatalf("invalid piece reported canonical")
	}
}

func TestTablesAreCopies(t *testing.T) {
	g := tw.DefaultGeometry()
	tiles := g.Tiles(tw.L5, tw.North)
	tiles[0] = tw.Coord{X: 99, Y: 99}
	if g.Tiles(tw.L5, tw.North)[0] == tiles[0] {
		t.Fatalf("Tiles returned shared storage")
	}
}
