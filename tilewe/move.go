package tilewe

import "fmt"

// Move is an immutable placement handle: a piece in one rotation, with one of the
// orientation's contact cells pinned to an absolute tile. The zero value is NoMove.
type Move struct {
	v uint32
}

// NoMove is the "no placement" sentinel. It is never legal.
var NoMove = Move{}

// Bitfield layout within Move (from LSB to MSB)
const (
	moveToShift       = 0  // 9 bits
	moveContactShift  = 9  // 3 bits
	moveRotationShift = 12 // 3 bits
	movePieceShift    = 15 // 5 bits
	moveValidShift    = 20 // 1 bit

	moveToMask       = 0x1FF
	moveContactMask  = 0x7
	moveRotationMask = 0x7
	movePieceMask    = 0x1F

	maxContactIndex = moveContactMask
	moveBits        = moveValidShift + 1
)

func pack(p Piece, r Rotation, contact int, to Tile) Move {
	return Move{
		uint32(to)&moveToMask<<moveToShift |
			uint32(contact)&moveContactMask<<moveContactShift |
			uint32(r)&moveRotationMask<<moveRotationShift |
			uint32(p)&movePieceMask<<movePieceShift |
			1<<moveValidShift,
	}
}

// Encode validates the four fields against the tables and packs them. Field
// ranges are checked here; whether the footprint fits the board is a legality
// question, not an encoding one.
func (g *Geometry) Encode(p Piece, r Rotation, contact int, to Tile) (Move, error) {
	switch {
	case !p.Valid():
		return NoMove, fmt.Errorf("%w: piece %d", ErrMalformedMove, int(p))
	case !r.Valid():
		return NoMove, fmt.Errorf("%w: rotation %d", ErrMalformedMove, int(r))
	case contact < 0 || contact >= len(g.orients[p][r].Contacts):
		return NoMove, fmt.Errorf("%w: %s%s has no contact %d", ErrMalformedMove, p, r, contact)
	case !to.Valid():
		return NoMove, fmt.Errorf("%w: tile %d", ErrMalformedMove, int(to))
	}
	m := pack(p, r, contact, to)
	if dp, dr, dc, dt := m.Decode(); dp != p || dr != r || dc != contact || dt != to {
		return NoMove, fmt.Errorf("%w: fields do not round-trip", ErrMalformedMove)
	}
	return m, nil
}

// EncodeAt is Encode with the contact given as a relative coordinate of the
// orientation instead of an index.
func (g *Geometry) EncodeAt(p Piece, r Rotation, contact Coord, to Tile) (Move, error) {
	if !g.valid(p, r) {
		return NoMove, fmt.Errorf("%w: piece %d rotation %d", ErrMalformedMove, int(p), int(r))
	}
	idx := g.orients[p][r].ContactIndex(contact)
	if idx < 0 {
		return NoMove, fmt.Errorf("%w: %s is not a contact of %s%s", ErrMalformedMove, contact, p, r)
	}
	return g.Encode(p, r, idx, to)
}

// NewMove encodes a move against the default tables.
func NewMove(p Piece, r Rotation, contact int, to Tile) (Move, error) {
	return DefaultGeometry().Encode(p, r, contact, to)
}

// MoveFromUint32 restores a move persisted with Uint32. Values that do not
// re-encode to themselves are rejected.
func MoveFromUint32(u uint32) (Move, error) {
	if u == 0 {
		return NoMove, nil
	}
	if u>>moveBits != 0 || u&(1<<moveValidShift) == 0 {
		return NoMove, fmt.Errorf("%w: raw value %#x", ErrMalformedMove, u)
	}
	m := Move{u}
	p, r, c, t := m.Decode()
	enc, err := NewMove(p, r, c, t)
	if err != nil {
		return NoMove, err
	}
	if enc != m {
		return NoMove, fmt.Errorf("%w: raw value %#x", ErrMalformedMove, u)
	}
	return m, nil
}

// Uint32 returns the stable integer form of the move. NoMove is 0.
func (m Move) Uint32() uint32 { return m.v }

// IsNone reports whether m is NoMove.
func (m Move) IsNone() bool { return m.v == 0 }

// Piece returns the placed piece.
func (m Move) Piece() Piece {
	if m.IsNone() {
		return NoPiece
	}
	return Piece((m.v >> movePieceShift) & movePieceMask)
}

// Rotation returns the orientation of the placed piece.
func (m Move) Rotation() Rotation { return Rotation((m.v >> moveRotationShift) & moveRotationMask) }

// Contact returns the index into the orientation's Contacts.
func (m Move) Contact() int { return int((m.v >> moveContactShift) & moveContactMask) }

// To returns the absolute tile the contact cell lands on.
func (m Move) To() Tile {
	if m.IsNone() {
		return NoTile
	}
	return Tile((m.v >> moveToShift) & moveToMask)
}

// Decode splits the move into its four fields.
func (m Move) Decode() (Piece, Rotation, int, Tile) {
	return m.Piece(), m.Rotation(), m.Contact(), m.To()
}

// Footprint appends the absolute tiles covered by m to dst. ok is false when m is
// not a valid encoding or part of the piece would fall off the board; dst is then
// returned unchanged.
func (g *Geometry) Footprint(m Move, dst []Tile) (out []Tile, ok bool) {
	if m.IsNone() {
		return dst, false
	}
	p, r, c, to := m.Decode()
	if !g.valid(p, r) || !to.Valid() {
		return dst, false
	}
	o := &g.orients[p][r]
	if c >= len(o.Contacts) {
		return dst, false
	}
	origin := to.Coords().Sub(o.Contacts[c])
	n := len(dst)
	for _, rel := range o.Tiles {
		t := TileOf(origin.Add(rel))
		if t == NoTile {
			return dst[:n], false
		}
		dst = append(dst, t)
	}
	return dst, true
}

// origin returns the absolute coordinate of the orientation's bounding-box origin.
func (g *Geometry) origin(m Move) (Coord, *Orientation) {
	o := &g.orients[m.Piece()][m.Rotation()]
	return m.To().Coords().Sub(o.Contacts[m.Contact()]), o
}
