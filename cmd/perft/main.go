package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	eng "tilewe-engine/tilewe"
)

func main() {
	players := flag.Int("players", 4, "Number of players (1-4)")
	start := flag.String("start", "own", "Start rule: own (each color its corner) or any (any free grid corner)")
	moves := flag.String("moves", "", "Moves to play before counting, separated by spaces or commas")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	hashMB := flag.Int("hash", 0, "Share subtree counts through a table of this many MB (0 disables)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	memProf := flag.String("memprofile", "", "Write heap profile to file after run")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(2)
	}
	defer func() { _ = logger.Sync() }()

	if *depth <= 0 {
		logger.Error("-depth must be > 0", zap.Int("depth", *depth))
		os.Exit(2)
	}

	board, err := setup(*players, *start, *moves)
	if err != nil {
		logger.Error("setting up position", zap.Error(err))
		os.Exit(2)
	}

	// Optional divide output
	if *divide {
		div := eng.PerftDivide(board, *depth)
		byName := make(map[string]uint64, len(div))
		var sum uint64
		for _, m := range maps.Keys(div) {
			byName[m.String()] = div[m]
			sum += div[m]
		}
		// Sort moves for stable output
		names := maps.Keys(byName)
		slices.Sort(names)
		for _, name := range names {
			fmt.Printf("%s: %d\n", name, byName[name])
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	// Optional CPU profiling
	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			logger.Error("creating cpuprofile", zap.Error(err))
			os.Exit(2)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			logger.Error("start cpu profile", zap.Error(err))
			os.Exit(2)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	// Timing loop
	var table *eng.PerftTable
	if *hashMB > 0 {
		table = eng.NewPerftTable(*hashMB)
	}
	var totalNodes uint64
	begin := time.Now()
	for i := 0; i < *repeat; i++ {
		if table != nil {
			table.Clear()
			totalNodes += eng.PerftCached(board, *depth, table)
		} else {
			totalNodes += eng.Perft(board, *depth)
		}
	}
	elapsed := time.Since(begin)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)
	logger.Debug("perft done",
		zap.Int("players", *players),
		zap.Int("ply", board.Ply()),
		zap.Int("depth", *depth),
		zap.Uint64("nodes", totalNodes),
		zap.Duration("elapsed", elapsed),
	)
	if table != nil {
		probes, hits := table.Stats()
		logger.Debug("perft table", zap.Uint64("probes", probes), zap.Uint64("hits", hits))
	}

	// Optional heap profile after run
	if *memProf != "" {
		f, err := os.Create(*memProf)
		if err != nil {
			logger.Error("creating memprofile", zap.Error(err))
			os.Exit(2)
		}
		if err := pprof.WriteHeapProfile(f); err != nil {
			logger.Error("write heap profile", zap.Error(err))
			os.Exit(2)
		}
		_ = f.Close()
	}
}

// setup builds the position to count from: a fresh board with the moves replayed.
func setup(players int, start, moves string) (*eng.Board, error) {
	rule, err := parseStartRule(start)
	if err != nil {
		return nil, err
	}
	var played []eng.Move
	for _, tok := range strings.FieldsFunc(moves, func(r rune) bool { return r == ',' || r == ' ' }) {
		m, err := eng.ParseMove(tok)
		if err != nil {
			return nil, err
		}
		played = append(played, m)
	}
	return eng.Replay(players, played, eng.WithStartRule(rule))
}

func parseStartRule(s string) (eng.StartRule, error) {
	switch strings.ToLower(s) {
	case "own", "":
		return eng.StartOwnCorner, nil
	case "any":
		return eng.StartAnyCorner, nil
	}
	return eng.StartOwnCorner, fmt.Errorf("unknown start rule %q (want own or any)", s)
}
