// Command mqsolve reads a challenge file describing a system of quadratic
// GF(2) equations, searches for a solution, and reports the result.
//
// Usage:
//
//	mqsolve --file cha.txt
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/mqsolve/mqsolve/challenge"
	"github.com/mqsolve/mqsolve/internal/log"
	"github.com/mqsolve/mqsolve/solver"
	"github.com/mqsolve/mqsolve/verify"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := pflag.NewFlagSet("mqsolve", pflag.ContinueOnError)
	file := flags.StringP("file", "f", "cha.txt", "challenge file to read")
	timeout := flags.Duration("timeout", 0, "abort before solving if this long has already elapsed (0 disables)")
	verbose := flags.BoolP("verbose", "v", false, "enable debug logging")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	if *verbose {
		log.SetVerbose(os.Stderr)
	}

	ctx := context.Background()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	f, err := os.Open(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mqsolve: %v\n", err)
		return 2
	}
	defer f.Close()

	sys, err := challenge.Read(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mqsolve: %v\n", err)
		return 2
	}

	sol, err := solver.SolveStore(ctx, sys.Store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mqsolve: %v\n", err)
		return 2
	}
	if sol == nil {
		fmt.Println("no solution found")
		return 1
	}

	fmt.Printf("found valid solution: %d\n", sol.Step)
	fmt.Printf("solution: %v\n", sol.X)

	if verify.Verify(sys.Store, sol.X) {
		fmt.Println("solution valid")
	} else {
		fmt.Println("solution invalid")
		return 1
	}
	return 0
}
