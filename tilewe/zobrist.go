package tilewe

import "math/rand"

// Zobrist hashing tables for tile ownership, placed pieces and the color to move.
var zobristTile [MaxPlayers][NumTiles]uint64 // color c owns tile t
var zobristPiece [MaxPlayers][NumPieces]uint64 // color c has placed piece p
var zobristTurn [MaxPlayers]uint64             // color c is to move

func init() {
	initZobrist()
}

func initZobrist() {
	// Use a fixed seed for reproducibility in tests
	rnd := rand.New(rand.NewSource(0x711E))

	for c := 0; c < MaxPlayers; c++ {
		for t := 0; t < NumTiles; t++ {
			zobristTile[c][t] = rnd.Uint64()
		}
	}
	for c := 0; c < MaxPlayers; c++ {
		for p := 0; p < NumPieces; p++ {
			zobristPiece[c][p] = rnd.Uint64()
		}
	}
	for c := 0; c < MaxPlayers; c++ {
		zobristTurn[c] = rnd.Uint64()
	}
}

// ComputeHash calculates the Zobrist key of the position from scratch.
func (b *Board) ComputeHash() uint64 {
	var key uint64
	for t, c := range b.tiles {
		if c != NoColor {
			key ^= zobristTile[c][t]
		}
	}
	for c := 0; c < b.numPlayers; c++ {
		placed := AllPieces &^ b.players[c].pieces
		for placed != 0 {
			p := popLSB32(&placed)
			key ^= zobristPiece[c][p]
		}
	}
	key ^= zobristTurn[b.curTurn]
	return key
}

func popLSB32(mask *uint32) int {
	x := uint64(*mask)
	idx := popLSB(&x)
	*mask = uint32(x)
	return idx
}
