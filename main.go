package main

import (
	"flag"
	"fmt"
	"multiply/experiments"
	"multiply/game"
	"multiply/searcher"
	"multiply/tui"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	number := flag.Int("number", game.MinStartNumber,
		fmt.Sprintf("starting number (%d-%d)", game.MinStartNumber, game.MaxStartNumber))
	first := flag.String("first", game.Human.String(), "who moves first: human or computer")
	algorithm := flag.String("algorithm", string(searcher.AlphaBeta), "search algorithm: minimax or alpha-beta")
	depth := flag.Int("depth", searcher.DefaultDepth, "search depth; 0 evaluates the position without moving")
	experiment := flag.String("experiment", "",
		fmt.Sprintf("run a headless experiment and exit: %s", strings.Join(experiments.Names(), ", ")))
	outDir := flag.String("out", "experiments", "output root for experiment records")
	seed := flag.Uint64("seed", 1, "seed for the random baseline agent")
	debug := flag.Bool("debug", false, "verbose logging")
	flag.Parse()

	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	firstPlayer, err := parsePlayer(*first)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid -first")
	}
	alg, err := searcher.ParseAlgorithm(*algorithm)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid -algorithm")
	}
	if *number < game.MinStartNumber || *number > game.MaxStartNumber {
		log.Fatal().Msgf("-number must be between %d and %d", game.MinStartNumber, game.MaxStartNumber)
	}
	if *depth < 0 {
		log.Fatal().Msg("-depth must not be negative")
	}

	if *experiment != "" {
		if err := experiments.Run(*experiment, *outDir, *seed); err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
		return
	}

	// Interactive mode: keep log output off the terminal the TUI draws on.
	if *debug {
		f, err := os.Create("multiply.log")
		if err != nil {
			log.Fatal().Err(err).Msg("failed to open log file")
		}
		defer f.Close()
		log.Logger = log.Output(f)
	} else {
		zerolog.SetGlobalLevel(zerolog.Disabled)
	}

	if err := tui.Run(*number, firstPlayer, alg, *depth); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func parsePlayer(name string) (game.Player, error) {
	switch strings.ToLower(name) {
	case game.Human.String():
		return game.Human, nil
	case game.Computer.String():
		return game.Computer, nil
	}
	return 0, fmt.Errorf("unknown player %q", name)
}
