package main

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
)

// run executes a command and prints its combined output. Returns exit code.
func run(name string, args ...string) int {
	cmd := exec.Command(name, args...)
	cmd.Env = os.Environ()
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	fmt.Print(out.String())
	if err == nil {
		return 0
	}
	if ee, ok := err.(*exec.ExitError); ok {
		return ee.ExitCode()
	}
	fmt.Fprintf(os.Stderr, "error running %s: %v\n", name, err)
	return 1
}

func main() {
	// Run all benchmarks in bench/ with benchmem.
	// Usage: go run ./cmd/benchrun
	// Print a simple header explaining Go's benchmark columns
	// Format: BenchmarkName  Iterations  ns/op  B/op  allocs/op
	fmt.Println("Columns: BENCHMARK  N  ns/op  B/op  allocs/op")
	code := run("go", "test", "./bench", "-run", "^$", "-bench", ".", "-benchmem", "-benchtime=1s")
	if code != 0 {
		os.Exit(code)
	}

	// Also run perft performance tests (macro throughput) with one-line outputs
	fmt.Println("\nPerft Performance:")
	fmt.Println("TEST \t\tDepth \t\tNodes \t\tTime \tNPS")
	// Empty 4-player board, blue to open
	run("go", "run", "./cmd/perft", "-depth", "1", "-label", "Initial")
	run("go", "run", "./cmd/perft", "-depth", "2", "-label", "Initial")
	run("go", "run", "./cmd/perft", "-depth", "3", "-label", "Initial")
	run("go", "run", "./cmd/perft", "-depth", "3", "-hash", "64", "-label", "InitialHashed")
	// Any-corner opening for two players
	run("go", "run", "./cmd/perft", "-players", "2", "-start", "any", "-depth", "2", "-label", "AnyCorner")
	// Early middlegame after one round of openings
	_ = run("go", "run", "./cmd/perft",
		"-moves", "I5n-a1a1,I5n-a5a20,I5n-a5t20,I5n-a1t1,L5e-a1b6",
		"-depth", "2", "-label", "Opening")
	os.Exit(0)
}
