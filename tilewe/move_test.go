package tilewe_test

import (
	"errors"
	"testing"

	tw "tilewe-engine/tilewe"
)

func TestMoveRoundTrip(t *testing.T) {
	g := tw.DefaultGeometry()
	seen := make(map[uint32]bool)
	for p := tw.Piece(0); p < tw.NumPieces; p++ {
		for r := tw.Rotation(0); r < tw.NumRotations; r++ {
			for c := 0; c < g.NumContacts(p, r); c++ {
				for to := tw.Tile(0); to < tw.NumTiles; to++ {
					m, err := g.Encode(p, r, c, to)
					if err != nil {
						t.Fatalf("Encode(%s, %s, %d, %s): %v", p, r, c, to, err)
					}
					if m.IsNone() {
						t.Fatalf("Encode(%s, %s, %d, %s) gave NoMove", p, r, c, to)
					}
					dp, dr, dc, dt := m.Decode()
					if dp != p || dr != r || dc != c || dt != to {
						t.Fatalf("decode %s%s/%d/%s gave %s%s/%d/%s", p, r, c, to, dp, dr, dc, dt)
					}
					if seen[m.Uint32()] {
						t.Fatalf("duplicate encoding %#x", m.Uint32())
					}
					seen[m.Uint32()] = true

					back, err := tw.MoveFromUint32(m.Uint32())
					if err != nil || back != m {
						t.Fatalf("MoveFromUint32(%#x) = %v, %v", m.Uint32(), back, err)
					}
				}
			}
		}
	}
}

func TestEncodeRejectsBadFields(t *testing.T) {
	cases := []struct {
		name    string
		p       tw.Piece
		r       tw.Rotation
		contact int
		to      tw.Tile
	}{
		{"piece low", -1, tw.North, 0, tw.A1},
		{"piece high", tw.NumPieces, tw.North, 0, tw.A1},
		{"rotation", tw.O1, tw.NumRotations, 0, tw.A1},
		{"contact negative", tw.O1, tw.North, -1, tw.A1},
		{"contact past table", tw.I3, tw.North, 2, tw.A1},
		{"tile low", tw.O1, tw.North, 0, tw.NoTile},
		{"tile high", tw.O1, tw.North, 0, tw.NumTiles},
	}
	for _, tc := range cases {
		m, err := tw.NewMove(tc.p, tc.r, tc.contact, tc.to)
		if !errors.Is(err, tw.ErrMalformedMove) {
			t.Errorf("%s: err = %v, want ErrMalformedMove", tc.name, err)
		}
		if !m.IsNone() {
			t.Errorf("%s: got move %v, want NoMove", tc.name, m)
		}
	}
}

func TestNoMove(t *testing.T) {
	var zero tw.Move
	if zero != tw.NoMove || !zero.IsNone() || zero.Uint32() != 0 {
		t.Fatalf("zero Move is not NoMove")
	}
	if tw.NoMove.Piece() != tw.NoPiece || tw.NoMove.To() != tw.NoTile {
		t.Fatalf("NoMove decodes to %s at %s", tw.NoMove.Piece(), tw.NoMove.To())
	}
	if tw.NoMove.String() != "none" {
		t.Fatalf("NoMove prints as %q", tw.NoMove.String())
	}
	if m, err := tw.MoveFromUint32(0); err != nil || !m.IsNone() {
		t.Fatalf("MoveFromUint32(0) = %v, %v", m, err)
	}
	b := newBoard(t, 4)
	if b.IsLegal(tw.NoMove) {
		t.Fatalf("NoMove reported legal")
	}
	if err := b.Push(tw.NoMove); !errors.Is(err, tw.ErrIllegalMove) {
		t.Fatalf("Push(NoMove) err = %v", err)
	}
}

func TestMoveFromUint32Rejects(t *testing.T) {
	valid := tw.MustParseMove("Z5n-a3a20").Uint32()
	for _, u := range []uint32{
		valid &^ (1 << 20), // valid bit cleared
		valid | 1<<21,      // stray high bit
		valid | 7<<9,       // Z5n has four contacts
		valid | 21<<15,     // piece past Z5
		valid | 0x1FF,      // tile 511
	} {
		if m, err := tw.MoveFromUint32(u); !errors.Is(err, tw.ErrMalformedMove) {
			t.Errorf("MoveFromUint32(%#x) = %v, %v; want ErrMalformedMove", u, m, err)
		}
	}
}

func TestMoveNotation(t *testing.T) {
	cases := []struct {
		in, out string
		p       tw.Piece
		r       tw.Rotation
		to      tw.Tile
	}{
		{"Z5n-a3a20", "Z5n-a3a20", tw.Z5, tw.North, tw.A20},
		{"z5E-A1A1", "Z5e-a1a1", tw.Z5, tw.East, tw.A1},
		{"O1-a1t20", "O1n-a1t20", tw.O1, tw.North, tw.T20},
		{"T4wf-b3t20", "T4wf-b3t20", tw.T4, tw.WestF, tw.T20},
		{" I2e-b1k10 ", "I2e-b1k10", tw.I2, tw.East, tw.TileAt(10, 9)},
	}
	for _, tc := range cases {
		m, err := tw.ParseMove(tc.in)
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", tc.in, err)
		}
		if m.Piece() != tc.p || m.Rotation() != tc.r || m.To() != tc.to {
			t.Fatalf("ParseMove(%q) = %s%s to %s", tc.in, m.Piece(), m.Rotation(), m.To())
		}
		if got := m.String(); got != tc.out {
			t.Fatalf("ParseMove(%q).String() = %q, want %q", tc.in, got, tc.out)
		}
	}
}

func TestParseMoveErrors(t *testing.T) {
	cases := []struct {
		in   string
		want error
	}{
		{"", tw.ErrBadNotation},
		{"Z5n", tw.ErrBadNotation},
		{"Q9n-a1a1", tw.ErrBadNotation},
		{"Z5x-a1a1", tw.ErrBadNotation},
		{"Z5n-a3", tw.ErrBadNotation},
		{"Z5n-a3u1", tw.ErrBadNotation},
		{"Z5n-a3a21", tw.ErrBadNotation},
		{"Z5n-a1a1", tw.ErrMalformedMove}, // a1 is not a cell of Z5n
		{"T4s-c2a20", tw.ErrMalformedMove},
	}
	for _, tc := range cases {
		if _, err := tw.ParseMove(tc.in); !errors.Is(err, tc.want) {
			t.Errorf("ParseMove(%q) err = %v, want %v", tc.in, err, tc.want)
		}
	}
}

func TestTileNames(t *testing.T) {
	cases := []struct {
		name string
		tile tw.Tile
	}{
		{"a1", tw.A1}, {"t1", tw.T1}, {"a20", tw.A20}, {"t20", tw.T20}, {"c7", tw.TileAt(2, 6)},
	}
	for _, tc := range cases {
		if got := tc.tile.String(); got != tc.name {
			t.Errorf("%d.String() = %q, want %q", int(tc.tile), got, tc.name)
		}
		got, err := tw.ParseTile(tc.name)
		if err != nil || got != tc.tile {
			t.Errorf("ParseTile(%q) = %d, %v", tc.name, int(got), err)
		}
	}
	if got, err := tw.ParseTile("C07"); err != nil || got != tw.TileAt(2, 6) {
		t.Errorf("ParseTile(C07) = %d, %v", int(got), err)
	}
	for _, bad := range []string{"", "a", "a0", "u1", "a21", "11", "a-1"} {
		if _, err := tw.ParseTile(bad); !errors.Is(err, tw.ErrBadNotation) {
			t.Errorf("ParseTile(%q) err = %v", bad, err)
		}
	}
	if tw.TileAt(-1, 0) != tw.NoTile || tw.TileAt(0, 20) != tw.NoTile {
		t.Errorf("TileAt accepted off-board coordinates")
	}
}
