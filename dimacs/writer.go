// SPDX-License-Identifier: MIT
// Package: flowgen/dimacs
//
// writer.go — DIMACS writer.
//
// Contract:
//   • Output is buffered; Write flushes before returning.
//   • The first write error sticks: later lines are skipped and the error is
//     returned wrapped with the "Write" prefix.
//   • Never panics.

package dimacs

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/flowgen/network"
)

// ErrNilArgument indicates a nil writer or graph.
var ErrNilArgument = errors.New("dimacs: nil writer or graph")

// Option customizes Write.
type Option func(*config)

type config struct {
	quiet      bool
	header     []string
	separators bool
}

// WithQuiet suppresses all comment lines.
func WithQuiet() Option {
	return func(c *config) { c.quiet = true }
}

// WithHeader sets the comment block printed before the problem line. Lines
// are given without the leading "c ".
func WithHeader(lines []string) Option {
	return func(c *config) { c.header = lines }
}

// WithSeparators toggles the "c <group> arcs" lines between arc groups
// (default on).
func WithSeparators(on bool) Option {
	return func(c *config) { c.separators = on }
}

// lineWriter keeps the first error and turns later writes into no-ops.
type lineWriter struct {
	w   *bufio.Writer
	err error
}

func (lw *lineWriter) printf(format string, args ...any) {
	if lw.err != nil {
		return
	}
	_, lw.err = fmt.Fprintf(lw.w, format, args...)
}

// Write renders g to w.
func Write(w io.Writer, g *network.Graph, opts ...Option) error {
	if w == nil || g == nil {
		return fmt.Errorf("Write: %w", ErrNilArgument)
	}
	cfg := config{separators: true}
	for _, o := range opts {
		o(&cfg)
	}

	lw := &lineWriter{w: bufio.NewWriter(w)}
	problem := g.Problem()

	if !cfg.quiet {
		for _, line := range cfg.header {
			comment(lw, line)
		}
		lw.printf("c\nc  *** %s ***\nc\n", problem)
	}
	lw.printf("p %s %d %d\n", problem.Token(), g.NodeCount(), g.ArcCount())

	for _, n := range g.Nodes() {
		switch problem {
		case network.MaxFlow:
			switch n.Role {
			case network.Source:
				lw.printf("n %d s\n", n.ID)
			case network.Sink:
				lw.printf("n %d t\n", n.ID)
			}
		case network.Assignment:
			if n.Role == network.Source {
				lw.printf("n %d\n", n.ID)
			}
		default:
			if n.Supply != 0 {
				lw.printf("n %d %d\n", n.ID, n.Supply)
			}
		}
	}

	group := ""
	for _, a := range g.Arcs() {
		if !cfg.quiet && cfg.separators && a.Group != "" && a.Group != group {
			lw.printf("c %s arcs\n", a.Group)
		}
		group = a.Group

		switch problem {
		case network.MaxFlow:
			lw.printf("a %d %d %d\n", a.From, a.To, a.Upper)
		case network.Assignment:
			lw.printf("a %d %d %d\n", a.From, a.To, a.Cost)
		default:
			lw.printf("a %d %d %d %d %d\n", a.From, a.To, a.Lower, a.Upper, a.Cost)
		}
	}

	if lw.err == nil {
		lw.err = lw.w.Flush()
	}
	if lw.err != nil {
		return fmt.Errorf("Write: %w", lw.err)
	}

	return nil
}

func comment(lw *lineWriter, line string) {
	if line == "" {
		lw.printf("c\n")
		return
	}
	lw.printf("c %s\n", line)
}
