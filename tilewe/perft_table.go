package tilewe

import "unsafe"

const perftClusterSize = 4

// PerftTable caches subtree node counts by position key and depth. Keys are the
// board's Zobrist hash, so one table must only serve boards with the same player
// count and start rule.
type PerftTable struct {
	entries      []perftEntry
	clusterCount uint64

	probes, hits uint64
}

type perftEntry struct {
	hash  uint64
	depth int32
	nodes uint64
}

// NewPerftTable allocates a table of roughly sizeMB megabytes (at least one cluster).
func NewPerftTable(sizeMB int) *PerftTable {
	entrySize := uint64(unsafe.Sizeof(perftEntry{}))
	clusterCount := uint64(sizeMB) * 1024 * 1024 / (entrySize * perftClusterSize)
	if clusterCount == 0 {
		clusterCount = 1
	}
	return &PerftTable{
		entries:      make([]perftEntry, clusterCount*perftClusterSize),
		clusterCount: clusterCount,
	}
}

// Clear drops every entry and resets the counters.
func (t *PerftTable) Clear() {
	for i := range t.entries {
		t.entries[i] = perftEntry{}
	}
	t.probes, t.hits = 0, 0
}

// Stats returns how many lookups were made and how many found a count.
func (t *PerftTable) Stats() (probes, hits uint64) { return t.probes, t.hits }

func (t *PerftTable) probe(hash uint64, depth int) (uint64, bool) {
	t.probes++
	base := int(hash%t.clusterCount) * perftClusterSize
	for i := 0; i < perftClusterSize; i++ {
		e := &t.entries[base+i]
		if e.hash == hash && int(e.depth) == depth {
			t.hits++
			return e.nodes, true
		}
	}
	return 0, false
}

// store keeps deeper subtrees: an empty slot is used first, then the shallowest
// entry of the cluster is replaced.
func (t *PerftTable) store(hash uint64, depth int, nodes uint64) {
	base := int(hash%t.clusterCount) * perftClusterSize
	target := base
	for i := 0; i < perftClusterSize; i++ {
		e := &t.entries[base+i]
		if e.depth == 0 {
			target = base + i
			break
		}
		if e.depth < t.entries[target].depth {
			target = base + i
		}
	}
	t.entries[target] = perftEntry{hash: hash, depth: int32(depth), nodes: nodes}
}

// PerftCached is Perft with subtree counts shared through t, so transposed
// positions (the same placements reached in another order) are counted once.
func PerftCached(b *Board, depth int, t *PerftTable) uint64 {
	pc := perftCtx{bufs: make([][]Move, depth+1)}
	return perftCachedRec(b, depth, &pc, t)
}

func perftCachedRec(b *Board, depth int, pc *perftCtx, t *PerftTable) uint64 {
	if depth <= 1 {
		return perftRec(b, depth, pc)
	}
	if nodes, ok := t.probe(b.hash, depth); ok {
		return nodes
	}
	moves, _ := b.GenMovesInto(pc.bufFor(depth), b.curTurn)
	pc.bufs[depth] = moves
	var nodes uint64
	for _, m := range moves {
		b.push(m)
		nodes += perftCachedRec(b, depth-1, pc, t)
		_ = b.Pop()
	}
	t.store(b.hash, depth, nodes)
	return nodes
}
