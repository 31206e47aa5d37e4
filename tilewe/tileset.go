package tilewe

import "math/bits"

const tileSetWords = (NumTiles + 63) / 64

// TileSet is a fixed-size bitset over the grid. The zero value is empty and sets
// compare with ==.
type TileSet struct {
	w [tileSetWords]uint64
}

// Add inserts t and reports whether it was absent.
func (s *TileSet) Add(t Tile) bool {
	i, bit := uint(t)>>6, uint64(1)<<(uint(t)&63)
	if s.w[i]&bit != 0 {
		return false
	}
	s.w[i] |= bit
	return true
}

// Remove deletes t and reports whether it was present.
func (s *TileSet) Remove(t Tile) bool {
	i, bit := uint(t)>>6, uint64(1)<<(uint(t)&63)
	if s.w[i]&bit == 0 {
		return false
	}
	s.w[i] &^= bit
	return true
}

// Has reports membership. Off-grid tiles are never members.
func (s *TileSet) Has(t Tile) bool {
	if !t.Valid() {
		return false
	}
	return s.w[uint(t)>>6]&(uint64(1)<<(uint(t)&63)) != 0
}

// Len returns the number of members.
func (s *TileSet) Len() int {
	n := 0
	for _, w := range s.w {
		n += bits.OnesCount64(w)
	}
	return n
}

// Empty reports whether the set has no members.
func (s *TileSet) Empty() bool {
	for _, w := range s.w {
		if w != 0 {
			return false
		}
	}
	return true
}

// Each calls fn for every member in ascending order.
func (s *TileSet) Each(fn func(Tile)) {
	for i, w := range s.w {
		for w != 0 {
			fn(Tile(i<<6 + popLSB(&w)))
		}
	}
}

// Tiles returns the members in ascending order.
func (s *TileSet) Tiles() []Tile {
	out := make([]Tile, 0, s.Len())
	s.Each(func(t Tile) { out = append(out, t) })
	return out
}

// popLSB removes and returns the least significant set bit from the mask.
func popLSB(mask *uint64) int {
	idx := bits.TrailingZeros64(*mask)
	*mask &= *mask - 1
	return idx
}
