// Command pwcheck validates passwords with fail-fast and accumulating
// composition and prints the outcome of each.
//
//	pwcheck [-mode failfast|accumulate|both] [-min 6] [-parallel] [password ...]
//
// Without arguments passwords are read from stdin, one per line. Defaults
// come from PWCHECK_* environment variables.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ib-77/ropcheck/internal/config"
	"github.com/ib-77/ropcheck/pkg/logger"
	"github.com/ib-77/ropcheck/internal/password"
	"github.com/ib-77/ropcheck/pkg/rop/check"
	"github.com/ib-77/ropcheck/pkg/rop/core"
	"github.com/ib-77/ropcheck/pkg/rop/solo"
)

const (
	exitOK       = 0
	exitRejected = 1
	exitUsage    = 2
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	fs := flag.NewFlagSet("pwcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.Mode, "mode", cfg.Mode, "composition: failfast, accumulate or both")
	fs.IntVar(&cfg.MinLength, "min", cfg.MinLength, "minimum password length")
	fs.BoolVar(&cfg.Parallel, "parallel", cfg.Parallel, "evaluate accumulating checks concurrently")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	cfg.Mode = strings.ToLower(cfg.Mode)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	log, err := logger.NewZapLogger(cfg.LoggerConfig())
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	ctx = logger.WithLogger(ctx, log.With(logger.String("mode", cfg.Mode)))
	ctx = core.WithWorkerOptions(ctx, cfg.Workers)

	inputs := fs.Args()
	if len(inputs) == 0 {
		if inputs, err = readLines(stdin); err != nil {
			log.Error("read passwords", logger.Error(err))
			return exitUsage
		}
	}

	set := password.NewSet(cfg.MinLength).WithParallel(cfg.Parallel)
	code := exitOK
	for _, in := range inputs {
		for _, mode := range cfg.Modes() {
			res, err := set.Run(ctx, mode, in)
			if err != nil {
				log.Error("run checks", logger.Error(err))
				return exitUsage
			}

			line := solo.Finally(ctx, res,
				func(_ context.Context, v string) string {
					return fmt.Sprintf("%-10s %q: ok", mode, v)
				},
				func(_ context.Context, err error) string {
					return fmt.Sprintf("%-10s %q: %s", mode, in, strings.Join(check.Reasons(err), ", "))
				})
			fmt.Fprintln(stdout, line)

			if res.IsFailure() {
				code = exitRejected
			}
		}
	}

	log.Debug("done", logger.Int("passwords", len(inputs)))
	return code
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}
