package main

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	eng "tilewe-engine/tilewe"
)

// summary aggregates finished games per color.
type summary struct {
	players int
	games   int
	failed  int
	plies   int
	wins    []float64 // ties split the point
	points  []int
	lengths map[int]int // game length in plies -> count
}

func newSummary(players int) *summary {
	return &summary{
		players: players,
		wins:    make([]float64, players),
		points:  make([]int, players),
		lengths: make(map[int]int),
	}
}

func (s *summary) add(r result) {
	s.games++
	s.plies += r.plies
	s.lengths[r.plies]++
	for i, p := range r.scores {
		s.points[i] += p
	}
	for _, c := range r.winners {
		s.wins[c] += 1 / float64(len(r.winners))
	}
}

func (s *summary) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "games: %d  failed: %d\n", s.games, s.failed)
	if s.games == 0 {
		return sb.String()
	}
	fmt.Fprintf(&sb, "avg length: %.1f plies\n", float64(s.plies)/float64(s.games))
	for c := eng.Color(0); int(c) < s.players; c++ {
		fmt.Fprintf(&sb, "%-7s wins %6.1f (%5.1f%%)  avg score %5.1f\n", c,
			s.wins[c], 100*s.wins[c]/float64(s.games), float64(s.points[c])/float64(s.games))
	}
	lengths := maps.Keys(s.lengths)
	slices.Sort(lengths)
	fmt.Fprintf(&sb, "shortest %d, longest %d plies\n", lengths[0], lengths[len(lengths)-1])
	return sb.String()
}
