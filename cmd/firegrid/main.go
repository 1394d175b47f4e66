// Command firegrid runs batches of random escape scenarios and compares
// the three heuristics on each, or serves the HTTP harness when
// FIREGRID_HTTP_ADDR is set. Scenario size, batch size, seed and fire
// mode come from the environment (see package config).
package main

import (
	"fmt"
	"log"

	"github.com/katalvlaran/firegrid/config"
	"github.com/katalvlaran/firegrid/fire"
	"github.com/katalvlaran/firegrid/httpapi"
	"github.com/katalvlaran/firegrid/mazegen"
	"github.com/katalvlaran/firegrid/search"
)

func main() {
	cfg := config.Load()

	if cfg.HTTPAddr != "" {
		serve(cfg)

		return
	}
	batch(cfg)
}

// serve runs the HTTP harness until the process is stopped.
func serve(cfg config.Config) {
	router := httpapi.NewRouter(httpapi.Config{
		Addr:        cfg.HTTPAddr,
		Controllers: []httpapi.Controller{httpapi.NewScenarioController()},
	})
	log.Printf("[FIREGRID] [INFO] serving HTTP harness on %s", cfg.HTTPAddr)
	if err := router.Run(); err != nil {
		log.Fatalf("[FIREGRID] [FATAL] HTTP harness: %v", err)
	}
}

// batch generates cfg.Tests random scenarios and runs every heuristic on
// each under the configured fire mode, reporting outcome, arrival step,
// explored nodes and elapsed time per heuristic.
func batch(cfg config.Config) {
	mode, err := fire.ParseMode(cfg.FireMode)
	if err != nil {
		log.Fatalf("[FIREGRID] [FATAL] %v", err)
	}

	heuristics := []search.Heuristic{search.Zero, search.Manhattan, search.Euclidean}

	for i := 1; i <= cfg.Tests; i++ {
		var opts []mazegen.Option
		if cfg.Seed != 0 {
			// Distinct but reproducible maze per test.
			opts = append(opts, mazegen.WithSeed(cfg.Seed+int64(i)))
		}
		g, err := mazegen.Generate(cfg.Rows, cfg.Cols, opts...)
		if err != nil {
			log.Fatalf("[FIREGRID] [FATAL] generate: %v", err)
		}

		fmt.Printf("test %d/%d (%dx%d, fire=%s)\n", i, cfg.Tests, g.Rows(), g.Cols(), mode)
		for _, h := range heuristics {
			res, err := search.Search(g, search.WithHeuristic(h), search.WithFireMode(mode))
			if err != nil {
				log.Fatalf("[FIREGRID] [FATAL] search: %v", err)
			}
			fmt.Printf("  %-10s: %s\n", h, summarize(res))
		}
	}
}

// summarize renders one search outcome the way the batch report prints it.
func summarize(res search.Result) string {
	if !res.Found {
		return fmt.Sprintf("N  no safe route  nodes=%d  %.3fms", res.NodesExplored, res.ElapsedMillis)
	}
	last := res.Path[len(res.Path)-1]

	return fmt.Sprintf("Y  escaped at t=%d at (%d,%d)  nodes=%d  %.3fms",
		last.Time, last.Cell.Row, last.Cell.Col, res.NodesExplored, res.ElapsedMillis)
}
