package tilewe

import (
	"fmt"
	"strings"
)

// Piece is one of the 21 polyomino shapes every color owns once.
type Piece int

const (
	O1 Piece = iota
	I2
	I3
	L3
	I4
	L4
	Z4
	O4
	T4
	F5
	I5
	L5
	N5
	P5
	T5
	U5
	V5
	W5
	X5
	Y5
	Z5

	NumPieces = iota

	NoPiece Piece = -1
)

// AllPieces is the inventory mask of a fresh player.
const AllPieces uint32 = 1<<NumPieces - 1

var pieceNames = [NumPieces]string{
	"O1", "I2", "I3", "L3", "I4", "L4", "Z4", "O4", "T4",
	"F5", "I5", "L5", "N5", "P5", "T5", "U5", "V5", "W5", "X5", "Y5", "Z5",
}

// pieceShapes are drawn top row first, the way the pieces look on a board whose
// row 1 is at the bottom.
var pieceShapes = [NumPieces][]string{
	O1: {"#"},
	I2: {"#", "#"},
	I3: {"#", "#", "#"},
	L3: {"#.", "##"},
	I4: {"#", "#", "#", "#"},
	L4: {"#.", "#.", "##"},
	Z4: {"##.", ".##"},
	O4: {"##", "##"},
	T4: {"###", ".#."},
	F5: {".##", "##.", ".#."},
	I5: {"#", "#", "#", "#", "#"},
	L5: {"#.", "#.", "#.", "##"},
	N5: {".#", "##", "#.", "#."},
	P5: {"##", "##", "#."},
	T5: {"###", ".#.", ".#."},
	U5: {"#.#", "###"},
	V5: {"..#", "..#", "###"},
	W5: {"..#", ".##", "##."},
	X5: {".#.", "###", ".#."},
	Y5: {".#", "##", ".#", ".#"},
	Z5: {"##.", ".#.", ".##"},
}

// Valid reports whether p names a piece.
func (p Piece) Valid() bool { return p >= 0 && p < NumPieces }

func (p Piece) String() string {
	if !p.Valid() {
		return "none"
	}
	return pieceNames[p]
}

// ParsePiece reads a piece name such as "Z5" (case-insensitive).
func ParsePiece(s string) (Piece, error) {
	for p, name := range pieceNames {
		if strings.EqualFold(name, s) {
			return Piece(p), nil
		}
	}
	return NoPiece, fmt.Errorf("%w: unknown piece %q", ErrBadNotation, s)
}

// Rotation is one of the eight orientations of a piece. North is the shape as
// drawn, East/South/West are successive quarter turns and the F variants mirror
// the first four left to right.
type Rotation int

const (
	North Rotation = iota
	East
	South
	West
	NorthF
	EastF
	SouthF
	WestF

	NumRotations = iota
)

var rotationNames = [NumRotations]string{"n", "e", "s", "w", "nf", "ef", "sf", "wf"}

// Valid reports whether r names a rotation.
func (r Rotation) Valid() bool { return r >= 0 && r < NumRotations }

func (r Rotation) String() string {
	if !r.Valid() {
		return "?"
	}
	return rotationNames[r]
}

// ParseRotation reads a rotation name such as "wf".
func ParseRotation(s string) (Rotation, error) {
	s = strings.ToLower(s)
	for r, name := range rotationNames {
		if name == s {
			return Rotation(r), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown rotation %q", ErrBadNotation, s)
}
