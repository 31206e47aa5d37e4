package tilewe

// scan visits every legal move of c, corner by corner. Candidates are only built
// around c's open corners: each remaining piece, in each rotation (canonical ones
// only when unique is set), with each contact cell pinned on the corner. visit
// returns false to stop early; scan then returns false too.
func (b *Board) scan(c Color, unique bool, visit func(Move) bool) bool {
	pl := &b.players[c]
	if pl.pieces == 0 {
		return true
	}
	for wi, w := range pl.corners.w {
		for w != 0 {
			t := Tile(wi<<6 + popLSB(&w))
			at := t.Coords()
			for p := Piece(0); p < NumPieces; p++ {
				if pl.pieces&(1<<p) == 0 {
					continue
				}
				for r := Rotation(0); r < NumRotations; r++ {
					o := &b.geo.orients[p][r]
					if unique && o.Canonical != r {
						continue
					}
					for ci, cc := range o.Contacts {
						if b.fits(c, at.Sub(cc), o) && !visit(pack(p, r, ci, t)) {
							return false
						}
					}
				}
			}
		}
	}
	return true
}

func (b *Board) hasMoves(c Color) bool {
	return !b.scan(c, false, func(Move) bool { return false })
}

func (b *Board) countMoves(c Color, unique bool) int {
	n := 0
	b.scan(c, unique, func(Move) bool {
		n++
		return true
	})
	return n
}

// GenMovesInto appends every legal move of c to dst. Order follows the open
// corners ascending, then piece, rotation and contact, but callers should not
// depend on it.
func (b *Board) GenMovesInto(dst []Move, c Color) ([]Move, error) {
	if err := b.checkColor(c); err != nil {
		return dst, err
	}
	b.scan(c, false, func(m Move) bool {
		dst = append(dst, m)
		return true
	})
	return dst, nil
}

// GenMovesFor returns every legal move of c.
func (b *Board) GenMovesFor(c Color) ([]Move, error) {
	return b.GenMovesInto(make([]Move, 0, 256), c)
}

// GenMoves returns every legal move of the color to move.
func (b *Board) GenMoves() []Move {
	moves, _ := b.GenMovesFor(b.curTurn)
	return moves
}

// NumMovesFor returns len(GenMovesFor(c)) without building the list.
func (b *Board) NumMovesFor(c Color) (int, error) {
	if err := b.checkColor(c); err != nil {
		return 0, err
	}
	return b.countMoves(c, false), nil
}

// NumMoves returns the number of legal moves of the color to move.
func (b *Board) NumMoves() int { return b.countMoves(b.curTurn, false) }

// GenUniqueMovesFor returns the legal moves of c that use canonical rotations only,
// so every distinct placement shows up once per (contact, corner) pair.
func (b *Board) GenUniqueMovesFor(c Color) ([]Move, error) {
	if err := b.checkColor(c); err != nil {
		return nil, err
	}
	dst := make([]Move, 0, 128)
	b.scan(c, true, func(m Move) bool {
		dst = append(dst, m)
		return true
	})
	return dst, nil
}

// NumUniqueMovesFor returns len(GenUniqueMovesFor(c)).
func (b *Board) NumUniqueMovesFor(c Color) (int, error) {
	if err := b.checkColor(c); err != nil {
		return 0, err
	}
	return b.countMoves(c, true), nil
}
