package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"go.uber.org/zap"

	"github.com/autochthonia/plentimon"
)

func main() {
	sims := flag.Int("sims", 1000, "simulations per preset")
	logFile := flag.String("log", "rolls.log", "roll log output path")
	flag.Parse()

	if flag.NArg() == 0 || *sims < 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [-sims N] [-log FILE] PRESET.yaml...\n", os.Args[0])
		os.Exit(2)
	}

	initLogger(*logFile)
	defer closeLogger()

	for _, path := range flag.Args() {
		file, err := loadPresets(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("=== %s ===\n", path)
		for _, name := range file.names() {
			if err := simulate(name, file.Rolls[name], *sims); err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
				os.Exit(1)
			}
		}
	}
}

type simStats struct {
	p68     int
	p95     int
	mean    float64
	botches int
}

func simulate(name string, preset RollPreset, sims int) error {
	cfg := preset.config()
	stats, err := runSimulations(name, preset.Dice, cfg, sims)
	if err != nil {
		return err
	}
	fmt.Printf("%s (%dd10): 68th: %d, 95th: %d, mean: %.2f, botches: %d/%d\n",
		name, preset.Dice, stats.p68, stats.p95, stats.mean, stats.botches, sims)
	return nil
}

func runSimulations(name string, dice int, cfg plentimon.RollConfig, sims int) (simStats, error) {
	successes := make([]int, 0, sims)
	total := 0
	botches := 0

	for i := 0; i < sims; i++ {
		res, err := plentimon.Roll(dice, cfg)
		if err != nil {
			return simStats{}, err
		}
		// Full detail only for the first run, like a dry run worth reading.
		if i == 0 && rollLogger != nil {
			rollLogger.Info("roll",
				zap.String("preset", name),
				zap.Ints("result", res.Result),
				zap.Int("successes", res.Successes),
				zap.Bool("botch", res.Botch),
			)
		}
		successes = append(successes, res.Successes)
		total += res.Successes
		if res.Botch {
			botches++
		}
	}

	sort.Ints(successes)
	index68 := int((1 - 0.68) * float64(len(successes)))
	index95 := int((1 - 0.95) * float64(len(successes)))

	return simStats{
		p68:     successes[index68],
		p95:     successes[index95],
		mean:    float64(total) / float64(sims),
		botches: botches,
	}, nil
}
