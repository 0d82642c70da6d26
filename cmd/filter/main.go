package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/ironsheep/image-filter/internal/bitmap"
	"github.com/ironsheep/image-filter/internal/filter"
	"github.com/ironsheep/image-filter/internal/stats"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// Exit codes
const (
	exitOK = iota
	exitInvalidFilter
	exitMultipleFilters
	exitUsage
	exitInput
	exitOutput
	exitFormat
	exitFilter
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("filter", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.SortFlags = false

	selected := make(map[filter.Mode]*bool)
	for _, m := range filter.Modes() {
		selected[m] = fs.BoolP(m.String(), m.Flag(), false, "apply the "+m.String()+" filter")
	}
	named := fs.StringP("filter", "f", "", "apply the named filter (grayscale, reflect, blur, edges)")
	showStats := fs.Bool("stats", false, "print a JSON color summary of the result to stdout")
	showVersion := fs.BoolP("version", "v", false, "print version information")
	showHelp := fs.BoolP("help", "h", false, "print this help message")

	fs.Usage = func() {
		fmt.Fprintln(stderr, "filter - apply an image filter to a bitmap")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Usage: filter [-g|-r|-b|-e|--filter NAME] [--stats] infile outfile")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Options:")
		fmt.Fprint(stderr, fs.FlagUsages())
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Environment variables:")
		fmt.Fprintln(stderr, "  FILTER_LOG_LEVEL=debug    Enable debug logging")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintln(stderr, "Invalid filter.")
		return exitInvalidFilter
	}

	if *showVersion {
		fmt.Fprintf(stdout, "filter %s\n", Version)
		fmt.Fprintf(stdout, "  Build time: %s\n", BuildTime)
		fmt.Fprintf(stdout, "  Git commit: %s\n", GitCommit)
		return exitOK
	}
	if *showHelp {
		fs.Usage()
		return exitOK
	}

	var modes []filter.Mode
	for _, m := range filter.Modes() {
		if *selected[m] {
			modes = append(modes, m)
		}
	}
	if *named != "" {
		m, err := filter.ParseMode(*named)
		if err != nil {
			fmt.Fprintln(stderr, "Invalid filter.")
			return exitInvalidFilter
		}
		modes = append(modes, m)
	}
	if len(modes) > 1 {
		fmt.Fprintln(stderr, "Only one filter allowed.")
		return exitMultipleFilters
	}
	if len(modes) == 0 || fs.NArg() != 2 {
		fmt.Fprintln(stderr, "Usage: filter [flag] infile outfile")
		return exitUsage
	}

	logger := log.New(io.Discard, "", log.Ldate|log.Ltime|log.Lshortfile)
	if os.Getenv("FILTER_LOG_LEVEL") == "debug" {
		logger.SetOutput(stderr)
		logger.Printf("filter v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	return apply(modes[0], fs.Arg(0), fs.Arg(1), *showStats, stdout, stderr, logger)
}

// apply loads infile, runs the filter and writes outfile.
func apply(mode filter.Mode, infile, outfile string, showStats bool, stdout, stderr io.Writer, logger *log.Logger) int {
	for _, path := range []string{infile, outfile} {
		if _, err := bitmap.FormatFromPath(path); err != nil {
			fmt.Fprintln(stderr, "Unsupported file format.")
			return exitFormat
		}
	}

	start := time.Now()
	g, err := bitmap.Load(infile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) || errors.Is(err, os.ErrPermission) {
			fmt.Fprintf(stderr, "Could not open %s.\n", infile)
			return exitInput
		}
		logger.Printf("load %s: %v", infile, err)
		fmt.Fprintln(stderr, "Unsupported file format.")
		return exitFormat
	}
	logger.Printf("decoded %s: %dx%d", infile, g.Width(), g.Height())

	if err := filter.Apply(mode, g); err != nil {
		fmt.Fprintf(stderr, "Could not apply %s: %v\n", mode, err)
		return exitFilter
	}
	logger.Printf("applied %s in %v", mode, time.Since(start))

	if err := bitmap.Save(outfile, g); err != nil {
		fmt.Fprintf(stderr, "Could not create %s.\n", outfile)
		logger.Printf("save %s: %v", outfile, err)
		return exitOutput
	}
	logger.Printf("wrote %s", outfile)

	if showStats {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(stats.Summarize(g, 5)); err != nil {
			fmt.Fprintf(stderr, "Could not write stats: %v\n", err)
			return exitOutput
		}
	}
	return exitOK
}
