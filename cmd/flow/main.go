// Package main provides the flow CLI for laying out declarative UI documents.
//
// Usage:
//
//	flow compute FILE...     Lay out documents and print every frame
//	flow preview FILE        Interactive terminal preview that relayouts on resize
//	flow serve               HTTP layout service
//	flow tree FILE           Render the node hierarchy as a Graphviz diagram
//
// Examples:
//
//	flow compute card.toml --width 320 --height 200
//	flow compute a.toml b.json --format json
//	flow preview dashboard.toml
//	flow serve --addr :8080
//	flow tree card.toml -o card.svg
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

const version = "0.1.0"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130) // Standard shell convention for SIGINT
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	c := newCLI(stderr)
	root := c.rootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.ExecuteContext(ctx)
}
