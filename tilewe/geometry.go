package tilewe

import "sync"

// Orientation is the precomputed geometry of one (piece, rotation) pair. All
// coordinates are offsets from the bottom-left cell of the rotated shape's bounding
// box.
type Orientation struct {
	Piece     Piece
	Rotation  Rotation
	Canonical Rotation // first rotation of the piece with the same cell grid
	Width     int
	Height    int

	Tiles    []Coord // occupied cells
	Contacts []Coord // cells that may sit on an open corner
	Corners  []Coord // cells touching the piece only diagonally
	Adjacent []Coord // cells sharing an edge with the piece
}

// ContactIndex returns the index of c in Contacts, or -1.
func (o *Orientation) ContactIndex(c Coord) int {
	for i, cc := range o.Contacts {
		if cc == c {
			return i
		}
	}
	return -1
}

// Geometry holds the orientation tables for the full piece set. It is immutable
// once built and may be shared by any number of boards.
type Geometry struct {
	orients     [NumPieces][NumRotations]Orientation
	maxContacts int
}

var (
	defaultGeometry     *Geometry
	defaultGeometryOnce sync.Once
)

// DefaultGeometry returns the process-wide tables, building them on first use.
func DefaultGeometry() *Geometry {
	defaultGeometryOnce.Do(func() { defaultGeometry = NewGeometry() })
	return defaultGeometry
}

// shapeGrid is a rotated piece as cells[y][x], y = 0 being the bottom row.
type shapeGrid [][]bool

func (g shapeGrid) height() int { return len(g) }
func (g shapeGrid) width() int  { return len(g[0]) }

func (g shapeGrid) at(x, y int) bool {
	if y < 0 || y >= len(g) || x < 0 || x >= len(g[y]) {
		return false
	}
	return g[y][x]
}

func newGrid(w, h int) shapeGrid {
	g := make(shapeGrid, h)
	for y := range g {
		g[y] = make([]bool, w)
	}
	return g
}

// rotate turns the grid a quarter counter-clockwise: (x, y) -> (y, W-1-x).
func (g shapeGrid) rotate() shapeGrid {
	w, h := g.width(), g.height()
	out := newGrid(h, w)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out[w-1-x][y] = g[y][x]
		}
	}
	return out
}

// mirror flips the grid left to right.
func (g shapeGrid) mirror() shapeGrid {
	w, h := g.width(), g.height()
	out := newGrid(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out[y][w-1-x] = g[y][x]
		}
	}
	return out
}

func (g shapeGrid) equal(o shapeGrid) bool {
	if g.width() != o.width() || g.height() != o.height() {
		return false
	}
	for y := range g {
		for x := range g[y] {
			if g[y][x] != o[y][x] {
				return false
			}
		}
	}
	return true
}

func gridFromRows(rows []string) shapeGrid {
	h := len(rows)
	g := newGrid(len(rows[0]), h)
	for r, row := range rows {
		for x, ch := range row {
			g[h-1-r][x] = ch == '#'
		}
	}
	return g
}

// NewGeometry builds the orientation tables. The result depends on nothing but the
// piece set, so every call produces identical tables.
func NewGeometry() *Geometry {
	geo := &Geometry{}
	for p := Piece(0); p < NumPieces; p++ {
		var grids [NumRotations]shapeGrid
		grids[North] = gridFromRows(pieceShapes[p])
		grids[East] = grids[North].rotate()
		grids[South] = grids[East].rotate()
		grids[West] = grids[South].rotate()
		for r := North; r <= West; r++ {
			grids[r+NorthF] = grids[r].mirror()
		}

		for r := Rotation(0); r < NumRotations; r++ {
			canon := r
			for prev := Rotation(0); prev < r; prev++ {
				if grids[prev].equal(grids[r]) {
					canon = prev
					break
				}
			}
			o := buildOrientation(p, r, grids[r])
			o.Canonical = canon
			geo.orients[p][r] = o
			if len(o.Contacts) > geo.maxContacts {
				geo.maxContacts = len(o.Contacts)
			}
		}
	}
	if geo.maxContacts > maxContactIndex+1 {
		panic("tilewe: contact table does not fit the move encoding")
	}
	return geo
}

func buildOrientation(p Piece, r Rotation, g shapeGrid) Orientation {
	o := Orientation{Piece: p, Rotation: r, Width: g.width(), Height: g.height()}
	for y := 0; y < o.Height; y++ {
		for x := 0; x < o.Width; x++ {
			if !g[y][x] {
				continue
			}
			o.Tiles = append(o.Tiles, Coord{x, y})

			var vert, horiz int
			if g.at(x, y-1) {
				vert++
			}
			if g.at(x, y+1) {
				vert++
			}
			if g.at(x-1, y) {
				horiz++
			}
			if g.at(x+1, y) {
				horiz++
			}
			if vert+horiz <= 1 || (vert == 1 && horiz == 1) {
				o.Contacts = append(o.Contacts, Coord{x, y})
			}
		}
	}

	// Scan the bounding box grown by one cell so the tables come out ordered.
	for y := -1; y <= o.Height; y++ {
		for x := -1; x <= o.Width; x++ {
			if g.at(x, y) {
				continue
			}
			c := Coord{x, y}
			edge, diag := false, false
			for _, off := range edgeOffsets {
				if n := c.Add(off); g.at(n.X, n.Y) {
					edge = true
				}
			}
			for _, off := range cornerOffsets {
				if n := c.Add(off); g.at(n.X, n.Y) {
					diag = true
				}
			}
			switch {
			case edge:
				o.Adjacent = append(o.Adjacent, c)
			case diag:
				o.Corners = append(o.Corners, c)
			}
		}
	}
	return o
}

// Orientation returns the table entry for (p, r). It panics on out-of-range
// arguments like an array index would.
func (g *Geometry) Orientation(p Piece, r Rotation) *Orientation {
	return &g.orients[p][r]
}

func (g *Geometry) valid(p Piece, r Rotation) bool { return p.Valid() && r.Valid() }

// NumTiles returns the cell count of (p, r), or 0 for invalid arguments.
func (g *Geometry) NumTiles(p Piece, r Rotation) int {
	if !g.valid(p, r) {
		return 0
	}
	return len(g.orients[p][r].Tiles)
}

// NumContacts returns the contact count of (p, r), or 0 for invalid arguments.
func (g *Geometry) NumContacts(p Piece, r Rotation) int {
	if !g.valid(p, r) {
		return 0
	}
	return len(g.orients[p][r].Contacts)
}

// NumCorners returns the diagonal corner count of (p, r), or 0 for invalid arguments.
func (g *Geometry) NumCorners(p Piece, r Rotation) int {
	if !g.valid(p, r) {
		return 0
	}
	return len(g.orients[p][r].Corners)
}

// Tiles returns a copy of the relative occupied cells of (p, r).
func (g *Geometry) Tiles(p Piece, r Rotation) []Coord {
	if !g.valid(p, r) {
		return nil
	}
	return append([]Coord(nil), g.orients[p][r].Tiles...)
}

// Contacts returns a copy of the relative contact cells of (p, r).
func (g *Geometry) Contacts(p Piece, r Rotation) []Coord {
	if !g.valid(p, r) {
		return nil
	}
	return append([]Coord(nil), g.orients[p][r].Contacts...)
}

// Corners returns a copy of the relative diagonal corner cells of (p, r).
func (g *Geometry) Corners(p Piece, r Rotation) []Coord {
	if !g.valid(p, r) {
		return nil
	}
	return append([]Coord(nil), g.orients[p][r].Corners...)
}

// Canonical returns the first rotation of p with the same cells as r.
func (g *Geometry) Canonical(p Piece, r Rotation) Rotation {
	return g.orients[p][r].Canonical
}

// IsCanonical reports whether r is the first rotation of p with its cell grid.
func (g *Geometry) IsCanonical(p Piece, r Rotation) bool {
	return g.valid(p, r) && g.orients[p][r].Canonical == r
}

// PieceSize returns the number of cells of p.
func (g *Geometry) PieceSize(p Piece) int { return g.NumTiles(p, North) }

// MaxContacts returns the largest contact count over all orientations.
func (g *Geometry) MaxContacts() int { return g.maxContacts }
