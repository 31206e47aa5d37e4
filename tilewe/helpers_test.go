package tilewe_test

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	tw "tilewe-engine/tilewe"
)

func newBoard(t *testing.T, n int, opts ...tw.Option) *tw.Board {
	t.Helper()
	b, err := tw.NewBoard(n, opts...)
	if err != nil {
		t.Fatalf("NewBoard(%d): %v", n, err)
	}
	return b
}

func mustPush(t *testing.T, b *tw.Board, s string) tw.Move {
	t.Helper()
	m, err := tw.ParseMove(s)
	if err != nil {
		t.Fatalf("ParseMove(%q): %v", s, err)
	}
	if err := b.Push(m); err != nil {
		t.Fatalf("Push(%s): %v", s, err)
	}
	return m
}

// snapshot captures everything Pop promises to restore.
func snapshot(b *tw.Board) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "turn=%d ply=%d finished=%v hash=%x scores=%v\n",
		b.CurrentPlayer(), b.Ply(), b.Finished(), b.Hash(), b.Scores())
	for c := tw.Color(0); int(c) < b.NumPlayers(); c++ {
		corners, _ := b.OpenCorners(c)
		pieces, _ := b.RemainingPieces(c)
		can, _ := b.CanPlay(c)
		fmt.Fprintf(&sb, "%s corners=%v pieces=%v can=%v\n", c, corners, pieces, can)
	}
	sb.WriteString(b.String())
	return sb.String()
}

// randomPrefix plays up to plies random moves on a fresh board.
func randomPrefix(t *testing.T, n int, seed int64, plies int) *tw.Board {
	t.Helper()
	b := newBoard(t, n)
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < plies && !b.Finished(); i++ {
		moves := b.GenMoves()
		if err := b.Push(moves[rng.Intn(len(moves))]); err != nil {
			t.Fatalf("push at ply %d: %v", i, err)
		}
	}
	return b
}

func footprint(t *testing.T, m tw.Move) []tw.Tile {
	t.Helper()
	tiles, ok := tw.DefaultGeometry().Footprint(m, nil)
	if !ok {
		t.Fatalf("footprint of %s falls off the board", m)
	}
	return tiles
}
