// Command flowgen writes random network flow instances in DIMACS format.
//
//	flowgen netgen 42 10 2 2 20 10 99 100
//	flowgen -f grid.min -check grid 7 5 8
//	flowgen -n 16 -j 4 -f batch.min netgen 1
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/katalvlaran/flowgen/batch"
	"github.com/katalvlaran/flowgen/dimacs"
	"github.com/katalvlaran/flowgen/flow"
	"github.com/katalvlaran/flowgen/network"
	"github.com/katalvlaran/flowgen/params"
	"github.com/katalvlaran/flowgen/rng"
)

const (
	okExitCode = iota
	configExitCode
	infeasibleExitCode
	densityExitCode
	seedExitCode
	ioExitCode
)

// version is reported by -v / -version.
const version = "v0.1.0"

var errIO = errors.New("i/o failure")

// options holds the parsed flags.
type options struct {
	quiet      bool
	file       string
	count      int
	jobs       int
	check      bool
	allowShort bool
	verbose    bool
	version    bool
}

// instance is one job plus what is needed to render its header.
type instance struct {
	job    batch.Job
	header []string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns its exit code.
func run(args []string, stdout, stderr io.Writer) int {
	var opts options
	fs := flag.NewFlagSet("flowgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&opts.quiet, "q", false, "silence the result message and diagnostics")
	fs.BoolVar(&opts.quiet, "quiet", false, "same as -q")
	fs.StringVar(&opts.file, "f", "", "output file path (stdout if empty)")
	fs.StringVar(&opts.file, "file", "", "same as -f")
	fs.IntVar(&opts.count, "n", 1, "number of instances, with consecutive seeds")
	fs.IntVar(&opts.jobs, "j", 1, "instances generated concurrently (0 = unbounded)")
	fs.BoolVar(&opts.check, "check", false, "verify feasibility with a max-flow run")
	fs.BoolVar(&opts.allowShort, "allow-short", false, "netgen: accept fewer arcs than requested")
	fs.BoolVar(&opts.verbose, "verbose", false, "verbose diagnostics")
	fs.BoolVar(&opts.version, "v", false, "print the version and exit")
	fs.BoolVar(&opts.version, "version", false, "same as -v")
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usageText)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return okExitCode
		}

		return configExitCode
	}
	if opts.version {
		fmt.Fprintf(stdout, "flowgen %s\n", version)
		return okExitCode
	}

	diagSink := stderr
	if opts.quiet {
		diagSink = io.Discard
	}
	diag := log.New(diagSink, "", 0)

	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return configExitCode
	}
	method, rest := rest[0], rest[1:]
	if len(rest) > 0 && rest[0] == "help" {
		switch method {
		case "netgen":
			fmt.Fprint(stdout, netgenHelp)
			return okExitCode
		case "grid":
			fmt.Fprint(stdout, gridHelp)
			return okExitCode
		}
	}
	if opts.count < 1 {
		diag.Printf("-n must be at least 1, got %d", opts.count)
		return configExitCode
	}

	insts, err := plan(method, rest, opts)
	if err != nil {
		diag.Printf("%v", err)
		return exitCode(err)
	}
	if opts.verbose {
		diag.Printf("Started as:\n  flowgen %s", strings.Join(args, " "))
		for _, line := range insts[0].header {
			diag.Printf("  %s", strings.TrimSpace(line))
		}
	}

	start := time.Now()
	jobs := make([]batch.Job, len(insts))
	for i, in := range insts {
		jobs[i] = in.job
	}
	results, err := batch.Generate(context.Background(), jobs, opts.jobs)
	if err != nil {
		diag.Printf("%v", err)
		return exitCode(err)
	}
	if opts.verbose {
		diag.Printf("Generated %d instance(s) in %v", len(results), time.Since(start))
	}

	for i, r := range results {
		if opts.verbose && r.Job.Netgen != nil && r.Graph.ArcCount() < r.Job.Netgen.Density {
			diag.Printf("seed %d: placed %d of %d arcs", r.Job.Seed(), r.Graph.ArcCount(), r.Job.Netgen.Density)
		}
		if opts.check {
			if err = check(r.Graph, diag, opts.verbose); err != nil {
				diag.Printf("seed %d: %v", r.Job.Seed(), err)
				return exitCode(err)
			}
		}
		path := outputPath(opts.file, r.Job.Seed(), len(results))
		if err = emit(path, stdout, r.Graph, insts[i].header); err != nil {
			diag.Printf("%v", err)
			return exitCode(err)
		}
		if !opts.quiet && path != "" {
			fmt.Fprintf(stdout, "Network successfully written to %s\n", path)
		}
	}

	return okExitCode
}

// plan parses the positional arguments of method and expands them into
// opts.count instances with consecutive seeds.
func plan(method string, args []string, opts options) ([]instance, error) {
	switch method {
	case "netgen":
		p, err := parseNetgen(args)
		if err != nil {
			return nil, err
		}
		p.AllowShortfall = opts.allowShort
		seeds, err := batch.Seeds(p.Seed, opts.count)
		if err != nil {
			return nil, err
		}
		insts := make([]instance, 0, len(seeds))
		for _, job := range batch.NetgenJobs(p, seeds) {
			v, err := params.ValidateNetgen(*job.Netgen)
			if err != nil {
				return nil, err
			}
			insts = append(insts, instance{job: job, header: dimacs.NetgenHeader(v)})
		}

		return insts, nil
	case "grid":
		p, err := parseGrid(args)
		if err != nil {
			return nil, err
		}
		seeds, err := batch.Seeds(p.Seed, opts.count)
		if err != nil {
			return nil, err
		}
		insts := make([]instance, 0, len(seeds))
		for _, job := range batch.GridJobs(p, seeds) {
			v, err := params.ValidateGrid(*job.Grid)
			if err != nil {
				return nil, err
			}
			insts = append(insts, instance{job: job, header: dimacs.GridHeader(v)})
		}

		return insts, nil
	default:
		return nil, fmt.Errorf("unknown method %q (want netgen or grid): %w", method, network.ErrConfiguration)
	}
}

// check runs the feasibility verifier over the skeleton. Max-flow grids have
// no skeleton and no supply to guarantee, so there is nothing to verify.
func check(g *network.Graph, diag *log.Logger, verbose bool) error {
	if len(g.SkeletonArcs()) == 0 {
		if verbose {
			diag.Printf("check: no skeleton arcs, skipped")
		}
		return nil
	}
	rep, err := flow.Feasible(g, flow.DefaultOptions())
	if err != nil {
		return err
	}
	if verbose {
		diag.Printf("check: routed %d of %d over %d arcs (%v)", rep.Routed, rep.Required, rep.Arcs, rep.Algorithm)
	}
	if !rep.Feasible() {
		return fmt.Errorf("routed %d of %d: %w", rep.Routed, rep.Required, network.ErrInfeasible)
	}

	return nil
}

// outputPath returns the file for one instance. With several instances the
// seed is inserted before the extension.
func outputPath(file string, seed int64, count int) string {
	if file == "" || count == 1 {
		return file
	}
	ext := filepath.Ext(file)

	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(file, ext), seed, ext)
}

func emit(path string, stdout io.Writer, g *network.Graph, header []string) (err error) {
	w := stdout
	if path != "" {
		f, cerr := os.Create(path)
		if cerr != nil {
			return fmt.Errorf("%w: %w", errIO, cerr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("%w: %w", errIO, cerr)
			}
		}()
		w = f
	}
	if err = dimacs.Write(w, g, dimacs.WithHeader(header)); err != nil {
		return fmt.Errorf("%w: %w", errIO, err)
	}

	return nil
}

// exitCode maps an error onto the documented exit codes.
func exitCode(err error) int {
	switch {
	case err == nil:
		return okExitCode
	case errors.Is(err, errIO):
		return ioExitCode
	case errors.Is(err, rng.ErrBadSeed):
		return seedExitCode
	case errors.Is(err, network.ErrDensityUnachievable):
		return densityExitCode
	case errors.Is(err, network.ErrInfeasible):
		return infeasibleExitCode
	default:
		return configExitCode
	}
}
