package tilewe

import "fmt"

// maxPieceSize bounds the footprint of any piece.
const maxPieceSize = 5

// cornerEdit is one change to an open-corner set, logged so Pop can reverse it.
type cornerEdit struct {
	color Color
	tile  Tile
	added bool
}

// undoRecord holds what Pop needs to restore the position before a move. Corner
// changes live in the board's shared edit log from editStart onwards.
type undoRecord struct {
	move      Move
	mover     Color
	footprint [maxPieceSize]Tile
	size      int
	editStart int

	prevTurn      Color
	prevFinished  bool
	prevHasPlayed bool
	prevCanPlay   [MaxPlayers]bool
	prevHash      uint64
}

func (b *Board) addCorner(c Color, t Tile) {
	if b.players[c].corners.Add(t) {
		b.edits = append(b.edits, cornerEdit{c, t, true})
	}
}

func (b *Board) removeCorner(c Color, t Tile) {
	if b.players[c].corners.Remove(t) {
		b.edits = append(b.edits, cornerEdit{c, t, false})
	}
}

// Push plays m for the color to move. The move must be legal; on any error the
// board is left exactly as it was.
func (b *Board) Push(m Move) error {
	if b.finished {
		return fmt.Errorf("%w: cannot play %s", ErrGameFinished, m)
	}
	if !b.IsLegalFor(b.curTurn, m) {
		return fmt.Errorf("%w: %s for %s", ErrIllegalMove, m, b.curTurn)
	}
	b.push(m)
	return nil
}

// push applies a move already known to be legal for the color to move.
func (b *Board) push(m Move) {
	c := b.curTurn
	pl := &b.players[c]
	origin, o := b.geo.origin(m)

	rec := undoRecord{
		move:          m,
		mover:         c,
		size:          len(o.Tiles),
		editStart:     len(b.edits),
		prevTurn:      b.curTurn,
		prevFinished:  b.finished,
		prevHasPlayed: pl.hasPlayed,
		prevHash:      b.hash,
	}
	for i := 0; i < b.numPlayers; i++ {
		rec.prevCanPlay[i] = b.players[i].canPlay
	}

	for i, rel := range o.Tiles {
		t := TileOf(origin.Add(rel))
		rec.footprint[i] = t
		b.tiles[t] = c
		b.hash ^= zobristTile[c][t]
	}
	footprint := rec.footprint[:rec.size]

	// Covered tiles stop being corners for everyone, and the mover loses every
	// corner that now shares an edge with its own piece.
	for _, t := range footprint {
		for q := 0; q < b.numPlayers; q++ {
			b.removeCorner(Color(q), t)
		}
		for _, n := range neighbours[t] {
			b.removeCorner(c, n)
		}
	}
	if !pl.hasPlayed {
		for _, t := range b.seeds(c) {
			b.removeCorner(c, t)
		}
		pl.hasPlayed = true
	}
	for _, rel := range o.Corners {
		if t := TileOf(origin.Add(rel)); t != NoTile && b.openFor(c, t) {
			b.addCorner(c, t)
		}
	}

	p := m.Piece()
	pl.pieces &^= 1 << p
	pl.score += rec.size
	b.hash ^= zobristPiece[c][p]

	b.history = append(b.history, rec)
	b.ply++
	b.advanceTurn(c)
}

// advanceTurn refreshes CanPlay and hands the turn to the first color after mover
// that can still move, finishing the game when none can. A color that could not
// move never regains a move (the board only fills up and only the mover gains
// corners), so only colors still able to play are rechecked.
func (b *Board) advanceTurn(mover Color) {
	anyPlay := false
	for c := Color(0); int(c) < b.numPlayers; c++ {
		pl := &b.players[c]
		if pl.canPlay {
			pl.canPlay = b.hasMoves(c)
		}
		anyPlay = anyPlay || pl.canPlay
	}
	if !anyPlay {
		b.finished = true
		return
	}
	for step := 1; step <= b.numPlayers; step++ {
		next := Color((int(mover) + step) % b.numPlayers)
		if b.players[next].canPlay {
			b.setTurn(next)
			return
		}
	}
}

func (b *Board) setTurn(c Color) {
	b.hash ^= zobristTurn[b.curTurn] ^ zobristTurn[c]
	b.curTurn = c
}

// Pop takes back the last move, restoring grid, corners, inventory, score, turn,
// ply and the finished flag exactly.
func (b *Board) Pop() error {
	n := len(b.history)
	if n == 0 {
		return ErrEmptyHistory
	}
	rec := b.history[n-1]
	b.history = b.history[:n-1]

	for _, t := range rec.footprint[:rec.size] {
		b.tiles[t] = NoColor
	}
	for i := len(b.edits) - 1; i >= rec.editStart; i-- {
		e := b.edits[i]
		if e.added {
			b.players[e.color].corners.Remove(e.tile)
		} else {
			b.players[e.color].corners.Add(e.tile)
		}
	}
	b.edits = b.edits[:rec.editStart]

	pl := &b.players[rec.mover]
	pl.pieces |= 1 << rec.move.Piece()
	pl.score -= rec.size
	pl.hasPlayed = rec.prevHasPlayed
	for i := 0; i < b.numPlayers; i++ {
		b.players[i].canPlay = rec.prevCanPlay[i]
	}

	b.curTurn = rec.prevTurn
	b.finished = rec.prevFinished
	b.hash = rec.prevHash
	b.ply--
	return nil
}
