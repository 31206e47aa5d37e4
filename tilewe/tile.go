package tilewe

import (
	"fmt"
	"strconv"
)

// BoardSize is the side length of the square grid.
const BoardSize = 20

// NumTiles is the number of cells on the grid.
const NumTiles = BoardSize * BoardSize

// Tile identifies one cell of the grid (0-399), tile = y*BoardSize + x.
type Tile int

const NoTile Tile = -1

// Grid corners named the way the notation names them.
const (
	A1  Tile = 0
	T1  Tile = BoardSize - 1
	A20 Tile = (BoardSize - 1) * BoardSize
	T20 Tile = NumTiles - 1
)

// Coord is an (x, y) pair. Orientation tables use it for relative offsets.
type Coord struct {
	X, Y int
}

// Add returns the component-wise sum of c and o.
func (c Coord) Add(o Coord) Coord { return Coord{c.X + o.X, c.Y + o.Y} }

// Sub returns the component-wise difference c - o.
func (c Coord) Sub(o Coord) Coord { return Coord{c.X - o.X, c.Y - o.Y} }

// String names the coordinate like a tile ("a1" is 0,0). Negative offsets fall back
// to a plain pair.
func (c Coord) String() string {
	if c.X < 0 || c.Y < 0 || c.X >= 26 {
		return fmt.Sprintf("(%d,%d)", c.X, c.Y)
	}
	return string(rune('a'+c.X)) + strconv.Itoa(c.Y+1)
}

// InBounds reports whether (x, y) lies on the grid.
func InBounds(x, y int) bool {
	return x >= 0 && x < BoardSize && y >= 0 && y < BoardSize
}

// TileAt converts coordinates into a tile, or NoTile when off the grid.
func TileAt(x, y int) Tile {
	if !InBounds(x, y) {
		return NoTile
	}
	return Tile(y*BoardSize + x)
}

// TileOf converts a Coord into a tile, or NoTile when off the grid.
func TileOf(c Coord) Tile { return TileAt(c.X, c.Y) }

// Valid reports whether t is a tile of the grid.
func (t Tile) Valid() bool { return t >= 0 && t < NumTiles }

// X returns the column of the tile.
func (t Tile) X() int { return int(t) % BoardSize }

// Y returns the row of the tile.
func (t Tile) Y() int { return int(t) / BoardSize }

// Coords returns the (x, y) pair of the tile.
func (t Tile) Coords() Coord { return Coord{t.X(), t.Y()} }

// String produces the tile name, e.g. "a1" or "t20".
func (t Tile) String() string {
	if !t.Valid() {
		return "-"
	}
	return t.Coords().String()
}

// ParseTile reads a tile name such as "c7". Names are case-insensitive and the
// row may carry a leading zero ("A03").
func ParseTile(s string) (Tile, error) {
	c, err := parseCoord(s)
	if err != nil {
		return NoTile, err
	}
	t := TileOf(c)
	if t == NoTile {
		return NoTile, fmt.Errorf("%w: tile %q off the board", ErrBadNotation, s)
	}
	return t, nil
}

func parseCoord(s string) (Coord, error) {
	if len(s) < 2 {
		return Coord{}, fmt.Errorf("%w: tile %q too short", ErrBadNotation, s)
	}
	col := s[0] | 0x20 // lower case
	if col < 'a' || col > 'z' {
		return Coord{}, fmt.Errorf("%w: bad column in %q", ErrBadNotation, s)
	}
	row, err := strconv.Atoi(s[1:])
	if err != nil || row < 1 {
		return Coord{}, fmt.Errorf("%w: bad row in %q", ErrBadNotation, s)
	}
	return Coord{int(col - 'a'), row - 1}, nil
}

// Color is a player index (0-3). Colors take turns in ascending order.
type Color int

const (
	Blue   Color = 0
	Yellow Color = 1
	Red    Color = 2
	Green  Color = 3

	NoColor Color = -1
)

// MaxPlayers is the largest supported player count.
const MaxPlayers = 4

var colorNames = [MaxPlayers]string{"blue", "yellow", "red", "green"}

func (c Color) String() string {
	if c < 0 || c >= MaxPlayers {
		return "none"
	}
	return colorNames[c]
}

// Char returns the one-letter code used by Board.String.
func (c Color) Char() byte {
	if c < 0 || c >= MaxPlayers {
		return '.'
	}
	return "BYRG"[c]
}

// startCorners lists the designated start corner for each color, walking the grid
// corners in turn order.
var startCorners = [MaxPlayers]Tile{A1, A20, T20, T1}

// StartCorner returns the grid corner the color opens from under StartOwnCorner.
func StartCorner(c Color) Tile {
	if c < 0 || c >= MaxPlayers {
		return NoTile
	}
	return startCorners[c]
}

// neighbours[t] holds the in-bounds edge neighbours of each tile; diagonals[t] the
// in-bounds diagonal neighbours.
var (
	neighbours [NumTiles][]Tile
	diagonals  [NumTiles][]Tile
)

var (
	edgeOffsets   = [4]Coord{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	cornerOffsets = [4]Coord{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}
)

func init() {
	for t := Tile(0); t < NumTiles; t++ {
		c := t.Coords()
		for _, off := range edgeOffsets {
			if n := TileOf(c.Add(off)); n != NoTile {
				neighbours[t] = append(neighbours[t], n)
			}
		}
		for _, off := range cornerOffsets {
			if n := TileOf(c.Add(off)); n != NoTile {
				diagonals[t] = append(diagonals[t], n)
			}
		}
	}
}
