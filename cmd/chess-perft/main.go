// chess-perft counts move paths from a position and optionally checks the
// counts against a reference move generator.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/lgbarn/chess-replica-go/internal/config"
	"github.com/lgbarn/chess-replica-go/internal/engine"
	"github.com/lgbarn/chess-replica-go/internal/output"
	"github.com/lgbarn/chess-replica-go/internal/perft"
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	var w output.ReportWriter = output.NewTextWriter(os.Stdout)
	if *jsonOutput {
		w = output.NewJSONWriter(os.Stdout)
	}

	report, err := run(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := writeReport(w, report); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(report.Mismatches) > 0 {
		os.Exit(3)
	}
}

// run performs the count described by cfg.Perft.
func run(cfg *config.Config) (*output.Report, error) {
	pc := cfg.Perft
	log := cfg.Logger()

	fenText := pc.FEN
	if fenText == "" {
		fenText = engine.InitialFEN
	}
	g, err := engine.NewGameFromFEN(fenText)
	if err != nil {
		return nil, err
	}

	report := &output.Report{FEN: fenText, Depth: pc.Depth}
	start := time.Now()
	if pc.Divide || pc.Workers > 1 {
		entries := perft.DivideParallel(g, pc.Depth, pc.Workers)
		report.Nodes = perft.Total(entries)
		if pc.Depth == 0 {
			report.Nodes = 1
		}
		if pc.Divide {
			report.Entries = entries
		}
	} else {
		report.Nodes = perft.Count(g, pc.Depth)
	}
	report.Elapsed = time.Since(start)
	log.Printf(config.Lifecycle, "perft depth %d: %d nodes in %v", pc.Depth, report.Nodes, report.Elapsed)

	if pc.Verify && pc.Depth > 0 {
		report.Verified = true
		report.Mismatches, err = perft.Compare(fenText, pc.Depth)
		if err != nil {
			return nil, err
		}
		log.Printf(config.Lifecycle, "reference comparison: %d mismatches", len(report.Mismatches))
	}
	return report, nil
}

func writeReport(w output.ReportWriter, r *output.Report) error {
	if err := w.WriteReport(r); err != nil {
		return err
	}
	return w.Close()
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-perft [options]\n\nOptions:\n")
	flag.PrintDefaults()
}

