package tilewe

import (
	"fmt"
	"strings"
)

// String renders the move as <piece><rotation>-<contact><to>, e.g. "Z5n-a3a20":
// Z5 facing north, its contact cell at relative a3 placed on tile a20.
func (m Move) String() string {
	if m.IsNone() {
		return "none"
	}
	p, r, ci, to := m.Decode()
	if !p.Valid() || !r.Valid() {
		return fmt.Sprintf("move(%#x)", m.v)
	}
	contact := "?"
	if o := DefaultGeometry().Orientation(p, r); ci < len(o.Contacts) {
		contact = o.Contacts[ci].String()
	}
	return p.String() + r.String() + "-" + contact + to.String()
}

// ParseMove reads the notation produced by Move.String. The rotation may be
// omitted ("O1-a1a1" means north) and case is ignored.
func ParseMove(s string) (Move, error) {
	return DefaultGeometry().ParseMove(s)
}

// ParseMove reads move notation against g.
func (g *Geometry) ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	head, tail, ok := strings.Cut(s, "-")
	if !ok || len(head) < 2 {
		return NoMove, fmt.Errorf("%w: move %q", ErrBadNotation, s)
	}
	p, err := ParsePiece(head[:2])
	if err != nil {
		return NoMove, err
	}
	r := North
	if len(head) > 2 {
		if r, err = ParseRotation(head[2:]); err != nil {
			return NoMove, err
		}
	}

	// tail is two tile names back to back; the second starts at the next letter.
	split := -1
	for i := 1; i < len(tail); i++ {
		if ch := tail[i] | 0x20; ch >= 'a' && ch <= 'z' {
			split = i
			break
		}
	}
	if split < 0 {
		return NoMove, fmt.Errorf("%w: move %q needs contact and target tiles", ErrBadNotation, s)
	}
	contact, err := parseCoord(tail[:split])
	if err != nil {
		return NoMove, err
	}
	to, err := ParseTile(tail[split:])
	if err != nil {
		return NoMove, err
	}
	m, err := g.EncodeAt(p, r, contact, to)
	if err != nil {
		return NoMove, fmt.Errorf("move %q: %w", s, err)
	}
	return m, nil
}

// MustParseMove is ParseMove that panics on error, for tests and fixed tables.
func MustParseMove(s string) Move {
	m, err := ParseMove(s)
	if err != nil {
		panic(err)
	}
	return m
}
