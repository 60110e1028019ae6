package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/kmckay/chipmult/internal/game"
	"github.com/kmckay/chipmult/internal/simulator"
)

type CLI struct {
	Deals          int     `default:"100000" help:"Number of hands to deal and score"`
	HandSize       int     `default:"5" help:"Cards per dealt hand"`
	Seed           int64   `default:"0" help:"RNG seed (0 for time-based)"`
	ModifierChance float64 `default:"0" help:"Chance each card carries a random modifier"`
	Workers        int     `default:"0" help:"Worker goroutines (0 for NumCPU)"`
	Verbose        bool    `short:"v" help:"Verbose logging"`
}

var headerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("14"))

func main() {
	var cli CLI
	ctx := kong.Parse(&cli)

	logger := log.New(os.Stderr)
	if cli.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	seed := cli.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
		logger.Info("Using time-based seed", "seed", seed)
	}

	sim := simulator.New(simulator.Config{
		Deals:          cli.Deals,
		HandSize:       cli.HandSize,
		Seed:           seed,
		ModifierChance: cli.ModifierChance,
		Workers:        cli.Workers,
		Logger:         logger,
	})

	start := time.Now()
	results, err := sim.Run()
	if err != nil {
		log.Fatal("Simulation failed", "error", err)
	}
	elapsed := time.Since(start)

	fmt.Println(headerStyle.Render(fmt.Sprintf("Scored %d hands in %s", results.Deals, elapsed.Round(time.Millisecond))))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "HAND\tCOUNT\tFREQ\tAVG SCORE\tBEST")
	for _, handType := range game.HandTypes {
		stats, ok := results.ByType[handType]
		if !ok {
			continue
		}
		avg := stats.TotalScore / float64(stats.Count)
		freq := float64(stats.Count) / float64(results.Deals) * 100
		fmt.Fprintf(w, "%s\t%d\t%.3f%%\t%.1f\t%.0f\n",
			handType, stats.Count, freq, avg, stats.BestScore)
	}
	w.Flush()

	fmt.Printf("\nAverage score: %.2f\n", results.Average)
	ctx.Exit(0)
}
