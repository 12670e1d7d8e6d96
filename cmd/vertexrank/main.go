// Command vertexrank ranks the vertices of every connected component of an
// undirected edge list by degree, closeness, betweenness or Katz centrality.
//
// Usage:
//
//	vertexrank <edge-file> <metric> [alpha] [flags]
//
// Run "vertexrank --help" for the flags.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
