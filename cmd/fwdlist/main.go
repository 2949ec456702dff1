package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/xerrors"

	"fwdlist_code/scenario"
)

type options struct {
	Scenario string `short:"s" long:"scenario" env:"FWDLIST_SCENARIO" description:"YAML scenario to run instead of the built-in demonstration"`
	Verbose  bool   `short:"v" long:"verbose" env:"FWDLIST_VERBOSE" description:"log every step"`
	Positional struct {
		Values []string `positional-arg-name:"value"`
	} `positional-args:"yes"`
}

func main() {
	// a missing .env is fine, the environment and flags still apply
	_ = godotenv.Load()

	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "cannot run fwdlist: %s\n", err)
		os.Exit(1)
	}
}

func parseArgs(args []string) (*options, []int, error) {
	var opts options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.ParseArgs(args); err != nil {
		return nil, nil, err
	}
	if opts.Scenario != "" && len(opts.Positional.Values) > 0 {
		return nil, nil, fmt.Errorf("cannot use --scenario together with values")
	}
	values := make([]int, 0, len(opts.Positional.Values))
	for _, arg := range opts.Positional.Values {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid value %q: not an integer", arg)
		}
		values = append(values, v)
	}
	return &opts, values, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func loadScenario(path string) (*scenario.Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := scenario.Load(f)
	if err != nil {
		return nil, xerrors.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func run(args []string, stdout io.Writer) error {
	opts, values, err := parseArgs(args)
	if err != nil {
		return err
	}
	logger, err := newLogger(opts.Verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	s := scenario.Default(values)
	if opts.Scenario != "" {
		s, err = loadScenario(opts.Scenario)
		if err != nil {
			return err
		}
		logger.Info("loaded scenario", zap.String("path", opts.Scenario), zap.Int("steps", len(s.Steps)))
	}

	results, err := scenario.NewRunner(logger).Run(s)
	for _, r := range results {
		switch {
		case r.Err != nil:
			fmt.Fprintf(stdout, "%s: error: %v\n", r.Step.Op, r.Err)
		case r.Output != "":
			fmt.Fprintf(stdout, "%s: %s\n", r.Step.Op, r.Output)
		}
	}
	return err
}
