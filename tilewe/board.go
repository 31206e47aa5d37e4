package tilewe

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// StartRule selects where a color may place its first piece.
type StartRule int

const (
	// StartOwnCorner gives every color its own grid corner (see StartCorner).
	StartOwnCorner StartRule = iota
	// StartAnyCorner lets every color open on any grid corner still free.
	StartAnyCorner
)

func (r StartRule) String() string {
	if r == StartAnyCorner {
		return "any"
	}
	return "own"
}

// player is the per-color state owned by a Board.
type player struct {
	score     int
	pieces    uint32 // bit p set while piece p is unplayed
	corners   TileSet
	hasPlayed bool
	canPlay   bool
}

// Board is the full game state: grid, players, turn and undo history.
// A Board is not safe for concurrent mutation.
type Board struct {
	geo  *Geometry
	rule StartRule

	numPlayers int
	tiles      [NumTiles]Color
	players    [MaxPlayers]player

	curTurn  Color
	ply      int
	finished bool

	history []undoRecord
	edits   []cornerEdit

	hash uint64
}

// Option configures NewBoard.
type Option func(*Board)

// WithGeometry makes the board read its orientation tables from g.
func WithGeometry(g *Geometry) Option {
	return func(b *Board) { b.geo = g }
}

// WithStartRule selects the opening rule.
func WithStartRule(r StartRule) Option {
	return func(b *Board) { b.rule = r }
}

// NewBoard creates an empty board for n players (1-4). Every color holds the full
// piece set and has its start corner(s) as open corners; Blue moves first.
func NewBoard(n int, opts ...Option) (*Board, error) {
	if n < 1 || n > MaxPlayers {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPlayerCount, n)
	}
	b := &Board{numPlayers: n, curTurn: Blue}
	for _, opt := range opts {
		opt(b)
	}
	if b.geo == nil {
		b.geo = DefaultGeometry()
	}
	for t := range b.tiles {
		b.tiles[t] = NoColor
	}
	for c := Color(0); int(c) < n; c++ {
		pl := &b.players[c]
		pl.pieces = AllPieces
		for _, t := range b.seeds(c) {
			pl.corners.Add(t)
		}
	}
	for c := Color(0); int(c) < n; c++ {
		b.players[c].canPlay = b.hasMoves(c)
	}
	b.hash = b.ComputeHash()
	return b, nil
}

// Replay rebuilds a board by playing moves in order on a fresh n-player board.
func Replay(n int, moves []Move, opts ...Option) (*Board, error) {
	b, err := NewBoard(n, opts...)
	if err != nil {
		return nil, err
	}
	for i, m := range moves {
		if err := b.Push(m); err != nil {
			return nil, fmt.Errorf("replay ply %d: %w", i, err)
		}
	}
	return b, nil
}

// seeds returns the start corners available to c before its first placement.
func (b *Board) seeds(c Color) []Tile {
	if b.rule == StartAnyCorner {
		return startCorners[:]
	}
	return startCorners[c : c+1]
}

func (b *Board) checkColor(c Color) error {
	if c < 0 || int(c) >= b.numPlayers {
		return fmt.Errorf("%w: %d with %d players", ErrPlayerOutOfRange, int(c), b.numPlayers)
	}
	return nil
}

// Geometry returns the tables the board was built with.
func (b *Board) Geometry() *Geometry { return b.geo }

// StartRule returns the opening rule in force.
func (b *Board) StartRule() StartRule { return b.rule }

// NumPlayers returns the number of colors in the game.
func (b *Board) NumPlayers() int { return b.numPlayers }

// CurrentPlayer returns the color to move. Once finished it stays on the color
// that made the last move.
func (b *Board) CurrentPlayer() Color { return b.curTurn }

// Ply returns the number of moves played.
func (b *Board) Ply() int { return b.ply }

// Finished reports whether no color has a legal move left.
func (b *Board) Finished() bool { return b.finished }

// Hash returns the incremental Zobrist key of the position.
func (b *Board) Hash() uint64 { return b.hash }

// History returns the moves played so far, oldest first.
func (b *Board) History() []Move {
	out := make([]Move, len(b.history))
	for i := range b.history {
		out[i] = b.history[i].move
	}
	return out
}

// LastMove returns the most recent move, or NoMove at the start.
func (b *Board) LastMove() Move {
	if len(b.history) == 0 {
		return NoMove
	}
	return b.history[len(b.history)-1].move
}

// ColorAt returns the owner of t, or NoColor for empty and off-board tiles.
func (b *Board) ColorAt(t Tile) Color {
	if !t.Valid() {
		return NoColor
	}
	return b.tiles[t]
}

// ColorAtXY is ColorAt by coordinates.
func (b *Board) ColorAtXY(x, y int) Color { return b.ColorAt(TileAt(x, y)) }

// Score returns the number of tiles c has placed.
func (b *Board) Score(c Color) (int, error) {
	if err := b.checkColor(c); err != nil {
		return 0, err
	}
	return b.players[c].score, nil
}

// Scores returns every color's score in turn order.
func (b *Board) Scores() []int {
	out := make([]int, b.numPlayers)
	for i := range out {
		out[i] = b.players[i].score
	}
	return out
}

// Winners returns the colors tied for the highest score. It is a plain scan and
// is meaningful at any point of the game.
func (b *Board) Winners() []Color { return winners(b.Scores()) }

func winners(scores []int) []Color {
	var out []Color
	best := -1
	for i, s := range scores {
		if s > best {
			out = out[:0]
			best = s
		}
		if s == best {
			out = append(out, Color(i))
		}
	}
	return out
}

// RemainingPieces returns the pieces c has not placed, in ascending order.
func (b *Board) RemainingPieces(c Color) ([]Piece, error) {
	if err := b.checkColor(c); err != nil {
		return nil, err
	}
	var out []Piece
	for p := Piece(0); p < NumPieces; p++ {
		if b.players[c].pieces&(1<<p) != 0 {
			out = append(out, p)
		}
	}
	return out, nil
}

// NumRemainingPieces returns how many pieces c still holds.
func (b *Board) NumRemainingPieces(c Color) (int, error) {
	pcs, err := b.RemainingPieces(c)
	return len(pcs), err
}

// HasPiece reports whether c still holds p.
func (b *Board) HasPiece(c Color, p Piece) (bool, error) {
	if err := b.checkColor(c); err != nil {
		return false, err
	}
	return p.Valid() && b.players[c].pieces&(1<<p) != 0, nil
}

// OpenCorners returns the tiles where c may anchor its next piece, ascending.
func (b *Board) OpenCorners(c Color) ([]Tile, error) {
	if err := b.checkColor(c); err != nil {
		return nil, err
	}
	return b.players[c].corners.Tiles(), nil
}

// NumOpenCorners returns the size of c's open-corner set.
func (b *Board) NumOpenCorners(c Color) (int, error) {
	if err := b.checkColor(c); err != nil {
		return 0, err
	}
	return b.players[c].corners.Len(), nil
}

// CanPlay reports whether c has at least one legal move.
func (b *Board) CanPlay(c Color) (bool, error) {
	if err := b.checkColor(c); err != nil {
		return false, err
	}
	return b.players[c].canPlay, nil
}

// Clone returns an independent copy of the board, history included.
func (b *Board) Clone() *Board {
	out := *b
	out.history = slices.Clone(b.history)
	out.edits = slices.Clone(b.edits)
	return &out
}

// recomputeCorners derives c's open corners from the grid alone.
func (b *Board) recomputeCorners(c Color) TileSet {
	var s TileSet
	if !b.players[c].hasPlayed {
		for _, t := range b.seeds(c) {
			if b.tiles[t] == NoColor {
				s.Add(t)
			}
		}
		return s
	}
	for t := Tile(0); t < NumTiles; t++ {
		if b.tiles[t] != c {
			continue
		}
		for _, d := range diagonals[t] {
			if b.openFor(c, d) {
				s.Add(d)
			}
		}
	}
	return s
}

// Validate checks the incremental state against values recomputed from the grid:
// open corners, scores, cached CanPlay, the finished flag and the hash.
func (b *Board) Validate() error {
	var counts [MaxPlayers]int
	for _, c := range b.tiles {
		if c != NoColor {
			counts[c]++
		}
	}
	anyPlay := false
	for c := Color(0); int(c) < b.numPlayers; c++ {
		pl := &b.players[c]
		if want := b.recomputeCorners(c); want != pl.corners {
			return fmt.Errorf("%s open corners %v, recomputed %v", c, pl.corners.Tiles(), want.Tiles())
		}
		if pl.score != counts[c] {
			return fmt.Errorf("%s score %d, grid holds %d tiles", c, pl.score, counts[c])
		}
		if can := b.hasMoves(c); can != pl.canPlay {
			return fmt.Errorf("%s cached can-play %v, recomputed %v", c, pl.canPlay, can)
		}
		anyPlay = anyPlay || pl.canPlay
	}
	if b.finished == anyPlay {
		return fmt.Errorf("finished flag %v with a player able to move: %v", b.finished, anyPlay)
	}
	if b.hash != b.ComputeHash() {
		return fmt.Errorf("hash %#x, recomputed %#x", b.hash, b.ComputeHash())
	}
	return nil
}

// String dumps the grid (row 20 on top) followed by scores and remaining pieces.
func (b *Board) String() string {
	var sb strings.Builder
	for y := BoardSize - 1; y >= 0; y-- {
		for x := 0; x < BoardSize; x++ {
			sb.WriteByte(b.tiles[TileAt(x, y)].Char())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	for c := Color(0); int(c) < b.numPlayers; c++ {
		fmt.Fprintf(&sb, "%c: %d (", c.Char(), b.players[c].score)
		pcs, _ := b.RemainingPieces(c)
		for _, p := range pcs {
			sb.WriteString(" " + p.String())
		}
		sb.WriteString(" )\n")
	}
	if b.finished {
		sb.WriteString("Finished, winners:")
		for _, c := range b.Winners() {
			sb.WriteString(" " + c.String())
		}
	} else {
		sb.WriteString("Turn: " + b.curTurn.String())
	}
	return sb.String()
}
