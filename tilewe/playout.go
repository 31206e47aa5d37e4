package tilewe

import (
	"fmt"
	"math/rand"
)

// MaxPly bounds the length of any game: every color places each piece at most once.
const MaxPly = MaxPlayers * NumPieces

// PlayRandom plays uniformly random legal moves until the game is finished.
func (b *Board) PlayRandom(rng *rand.Rand) error {
	buf := make([]Move, 0, 512)
	for !b.finished {
		moves, _ := b.GenMovesInto(buf[:0], b.curTurn)
		buf = moves
		if len(moves) == 0 {
			// The turn only ever rests on a color that can move.
			return fmt.Errorf("%s to move at ply %d has no legal move", b.curTurn, b.ply)
		}
		if err := b.Push(moves[rng.Intn(len(moves))]); err != nil {
			return err
		}
	}
	return nil
}

// PlayRandomGame plays a uniformly random game for n players from the empty board
// and returns the finished board.
func PlayRandomGame(n int, rng *rand.Rand, opts ...Option) (*Board, error) {
	b, err := NewBoard(n, opts...)
	if err != nil {
		return nil, err
	}
	if err := b.PlayRandom(rng); err != nil {
		return b, err
	}
	return b, nil
}
