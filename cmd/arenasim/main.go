package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"arena/internal/combat"
	"arena/internal/config"
	"arena/internal/logging"
	"arena/internal/report"
	"arena/internal/scenario"
	"arena/internal/util"
)

type options struct {
	config.RunConfig
	Lang string
}

func parseFlags(fs *flag.FlagSet, args []string) (options, error) {
	defaults, err := config.LoadRunConfig()
	if err != nil {
		return options{}, err
	}
	opts := options{RunConfig: defaults}
	fs.StringVar(&opts.Roster, "roster", defaults.Roster, "roster yaml (empty = built-in deathmatch)")
	fs.StringVar(&opts.Out, "out", defaults.Out, "output file (single) or summary file (batch)")
	fs.Int64Var(&opts.Seed, "seed", defaults.Seed, "seed")
	fs.IntVar(&opts.Runs, "n", defaults.Runs, "number of battles")
	fs.IntVar(&opts.Workers, "workers", defaults.Workers, "parallel battles in batch mode")
	fs.StringVar(&opts.LogLevel, "log-level", defaults.LogLevel, "debug|info|warn|error")
	fs.BoolVar(&opts.Events, "log", defaults.Events, "save the full event log when n==1")
	fs.StringVar(&opts.Lang, "lang", "en", "language for the printed report")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if opts.Runs < 1 {
		opts.Runs = 1
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	return opts, nil
}

func main() {
	opts, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	log, err := logging.New(opts.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(opts, log, os.Stdout); err != nil {
		log.Fatal("arena run failed", zap.Error(err))
	}
}

func loadRoster(path string) (*config.RosterConfig, error) {
	if path == "" {
		return config.DefaultRoster(), nil
	}
	return config.LoadRoster(path)
}

func run(opts options, log *zap.Logger, stdout io.Writer) error {
	rc, err := loadRoster(opts.Roster)
	if err != nil {
		return err
	}
	tag, err := language.Parse(opts.Lang)
	if err != nil {
		return fmt.Errorf("lang %q: %w", opts.Lang, err)
	}

	if opts.Runs == 1 {
		b, res, err := scenario.Run(rc, opts.Seed, combat.WithLogger(log), combat.WithRecord(opts.Events))
		if err != nil {
			return err
		}
		if err := os.WriteFile(opts.Out, combat.MarshalPretty(res), 0644); err != nil {
			return fmt.Errorf("write %s: %w", opts.Out, err)
		}
		if err := report.WriteBattle(stdout, tag, res, b.Arena.Fighters()); err != nil {
			return err
		}
		log.Info("single battle finished", zap.Int("turns", res.Turns), zap.String("out", opts.Out))
		return nil
	}

	summary, err := runBatch(rc, opts, log)
	if err != nil {
		return err
	}
	if err := os.WriteFile(opts.Out, combat.MarshalPretty(summary), 0644); err != nil {
		return fmt.Errorf("write %s: %w", opts.Out, err)
	}
	if err := report.WriteSummary(stdout, tag, summary); err != nil {
		return err
	}
	log.Info("batch finished", zap.Int("runs", opts.Runs), zap.String("out", filepath.Base(opts.Out)))
	return nil
}

// runBatch plays opts.Runs independent battles on a fixed pool of workers.
// Each battle gets its own arena and seed, only the tally is shared.
func runBatch(rc *config.RosterConfig, opts options, log *zap.Logger) (report.Summary, error) {
	names := make([]string, len(rc.Fighters))
	for i, f := range rc.Fighters {
		names[i] = f.Name
	}
	tally := report.NewTally(names)

	var (
		mu       sync.Mutex
		firstErr error
	)
	wg := sync.WaitGroup{}
	jobs := make(chan int, opts.Runs)
	for w := 0; w < opts.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				b, res, err := scenario.Run(rc, util.RunSeed(opts.Seed, i), combat.WithLogger(log.With(zap.Int("run", i))))
				mu.Lock()
				if err != nil {
					if firstErr == nil {
						firstErr = err
					}
				} else {
					tally.Add(res, b.Names)
				}
				mu.Unlock()
			}
		}()
	}
	for i := 0; i < opts.Runs; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return report.Summary{}, firstErr
	}
	return tally.Summary(), nil
}
