package tilewe

// Perft counts the leaf nodes of the move tree of the given depth from the current
// position. A finished position contributes no nodes below depth 0.
func Perft(b *Board, depth int) uint64 {
	pc := perftCtx{bufs: make([][]Move, depth+1)}
	return perftRec(b, depth, &pc)
}

type perftCtx struct {
	bufs [][]Move
}

// bufFor returns a reusable move buffer for the given depth.
func (pc *perftCtx) bufFor(depth int) []Move {
	if pc.bufs[depth] == nil {
		pc.bufs[depth] = make([]Move, 0, 512)
	}
	return pc.bufs[depth][:0]
}

func perftRec(b *Board, depth int, pc *perftCtx) uint64 {
	if depth == 0 {
		return 1
	}
	if depth == 1 {
		return uint64(b.NumMoves())
	}
	moves, _ := b.GenMovesInto(pc.bufFor(depth), b.curTurn)
	pc.bufs[depth] = moves
	var nodes uint64
	for _, m := range moves {
		b.push(m)
		nodes += perftRec(b, depth-1, pc)
		_ = b.Pop()
	}
	return nodes
}

// PerftDivide returns the perft count below each root move.
func PerftDivide(b *Board, depth int) map[Move]uint64 {
	out := make(map[Move]uint64)
	if depth <= 0 {
		return out
	}
	pc := perftCtx{bufs: make([][]Move, depth)}
	for _, m := range b.GenMoves() {
		b.push(m)
		out[m] = perftRec(b, depth-1, &pc)
		_ = b.Pop()
	}
	return out
}
