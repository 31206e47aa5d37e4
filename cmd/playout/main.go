package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	eng "tilewe-engine/tilewe"
)

// result is the outcome of one random game.
type result struct {
	id      uuid.UUID
	plies   int
	scores  []int
	winners []eng.Color
	err     error
}

func main() {
	games := flag.Int("games", 100, "Number of games to play")
	players := flag.Int("players", 4, "Number of players (1-4)")
	workers := flag.Int("workers", 4, "Number of games played concurrently")
	seed := flag.Int64("seed", 0, "Base random seed (0 picks one from the clock)")
	start := flag.String("start", "own", "Start rule: own or any")
	verbose := flag.Bool("verbose", false, "Log every game at debug level")
	flag.Parse()

	var logger *zap.Logger
	var err error
	if *verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(2)
	}
	defer func() { _ = logger.Sync() }()

	rule := eng.StartOwnCorner
	switch strings.ToLower(*start) {
	case "own":
	case "any":
		rule = eng.StartAnyCorner
	default:
		logger.Error("unknown start rule", zap.String("start", *start))
		os.Exit(2)
	}
	if *players < 1 || *players > eng.MaxPlayers {
		logger.Error("bad player count", zap.Int("players", *players))
		os.Exit(2)
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	if *workers < 1 {
		*workers = 1
	}

	// Every board shares the one immutable table set.
	geo := eng.DefaultGeometry()

	jobs := make(chan int)
	results := make(chan result)
	var wg sync.WaitGroup
	for w := 0; w < *workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results <- playOne(*players, *seed+int64(i), eng.WithGeometry(geo), eng.WithStartRule(rule))
			}
		}()
	}
	go func() {
		for i := 0; i < *games; i++ {
			jobs <- i
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	begin := time.Now()
	sum := newSummary(*players)
	for r := range results {
		if r.err != nil {
			logger.Error("game failed", zap.String("game_id", r.id.String()), zap.Error(r.err))
			sum.failed++
			continue
		}
		logger.Debug("game finished",
			zap.String("game_id", r.id.String()),
			zap.Int("players", *players),
			zap.Int("ply", r.plies),
			zap.Ints("scores", r.scores),
			zap.Stringers("winners", r.winners),
		)
		sum.add(r)
	}
	elapsed := time.Since(begin)

	logger.Info("playout complete",
		zap.Int("games", sum.games),
		zap.Int("failed", sum.failed),
		zap.Int64("seed", *seed),
		zap.String("start", rule.String()),
		zap.Duration("elapsed", elapsed),
	)
	fmt.Print(sum.String())
	if sum.failed > 0 {
		os.Exit(1)
	}
}

// playOne plays a full random game; the seed alone decides it.
func playOne(players int, seed int64, opts ...eng.Option) result {
	r := result{id: uuid.New()}
	b, err := eng.PlayRandomGame(players, rand.New(rand.NewSource(seed)), opts...)
	if err != nil {
		r.err = err
		return r
	}
	if err := b.Validate(); err != nil {
		r.err = fmt.Errorf("final position: %w", err)
		return r
	}
	r.plies = b.Ply()
	r.scores = b.Scores()
	r.winners = b.Winners()
	return r
}
