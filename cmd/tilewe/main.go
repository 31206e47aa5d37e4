package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
)

func main() {
	verbose := flag.Bool("verbose", false, "Log every command at debug level")
	seed := flag.Int64("seed", 0, "Seed for the random command (0 picks one from the clock)")
	flag.Parse()

	cfg := zap.NewProductionConfig()
	if *verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	logger, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(2)
	}
	defer func() { _ = logger.Sync() }()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	s := newSession(os.Stdout, logger, *seed)
	if err := s.run(os.Stdin); err != nil {
		logger.Error("reading input", zap.Error(err))
		os.Exit(1)
	}
}
