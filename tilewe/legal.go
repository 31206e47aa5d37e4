package tilewe

// openFor reports whether t is empty and shares no edge with a tile of c.
func (b *Board) openFor(c Color, t Tile) bool {
	if b.tiles[t] != NoColor {
		return false
	}
	for _, n := range neighbours[t] {
		if b.tiles[n] == c {
			return false
		}
	}
	return true
}

// fits reports whether orientation o, with its bounding box at origin, lies on the
// board over empty tiles none of which touches c along an edge.
func (b *Board) fits(c Color, origin Coord, o *Orientation) bool {
	if origin.X < 0 || origin.Y < 0 || origin.X+o.Width > BoardSize || origin.Y+o.Height > BoardSize {
		return false
	}
	base := Tile(origin.Y*BoardSize + origin.X)
	for _, rel := range o.Tiles {
		if !b.openFor(c, base+Tile(rel.Y*BoardSize+rel.X)) {
			return false
		}
	}
	return true
}

// IsLegalFor reports whether c may play m now. It never fails: malformed moves,
// NoMove and out-of-range colors are simply not legal.
//
// A move is legal when c still holds the piece, the contact cell lands on one of
// c's open corners (before c's first placement those are its start corners), and
// every covered tile is on the board, empty and not edge-adjacent to c.
func (b *Board) IsLegalFor(c Color, m Move) bool {
	if c < 0 || int(c) >= b.numPlayers || m.IsNone() {
		return false
	}
	p, r, ci, to := m.Decode()
	if !p.Valid() || !r.Valid() || !to.Valid() {
		return false
	}
	o := &b.geo.orients[p][r]
	if ci >= len(o.Contacts) {
		return false
	}
	pl := &b.players[c]
	if pl.pieces&(1<<p) == 0 || !pl.corners.Has(to) {
		return false
	}
	return b.fits(c, to.Coords().Sub(o.Contacts[ci]), o)
}

// IsLegal reports whether the color to move may play m.
func (b *Board) IsLegal(m Move) bool { return b.IsLegalFor(b.curTurn, m) }
