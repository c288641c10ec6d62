package main

import (
	"flag"
	"os"
	"time"

	"gambit/cli"
	"gambit/game"
	"gambit/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

func main() {
	simulations := flag.Int("simulations", searcher.DefaultSimulations, "Number of playouts per engine move")
	depth := flag.Int("depth", searcher.DefaultMaxPlayoutDepth, "Max playout depth in plies")
	seed := flag.Uint64("seed", 0, "Playout RNG seed (0 = time-based)")
	pretty := flag.Bool("pretty", false, "Render the board with colors and Unicode pieces")
	fen := flag.String("fen", "", "Starting position as FEN (default: standard start)")
	configPath := flag.String("config", "", "Path to a JSON config file")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	setupLogger(*debug)

	cfg := Config{}
	if *configPath != "" {
		var err error
		cfg, err = loadConfig(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("could not load config")
		}
	}
	applyFlagOverrides(&cfg, *simulations, *depth, *seed, *pretty)

	options := []searcher.Option{
		searcher.WithSimulations(cfg.Simulations),
		searcher.WithMaxPlayoutDepth(cfg.MaxPlayoutDepth),
	}
	if cfg.Seed != 0 {
		options = append(options, searcher.WithRand(rand.New(rand.NewSource(cfg.Seed))))
	}
	engine := searcher.NewMCTS(options...)

	state := game.NewGame()
	if *fen != "" {
		var err error
		state, err = game.FromFEN(*fen)
		if err != nil {
			log.Fatal().Err(err).Msg("could not parse starting position")
		}
	}

	if err := cli.New(os.Stdin, os.Stdout, engine, state, cfg.Pretty).Run(); err != nil {
		log.Fatal().Err(err).Msg("input error")
	}
}

// Flags override config file values when they differ from their defaults.
func applyFlagOverrides(cfg *Config, simulations, depth int, seed uint64, pretty bool) {
	if simulations != searcher.DefaultSimulations || cfg.Simulations == 0 {
		cfg.Simulations = simulations
	}
	if depth != searcher.DefaultMaxPlayoutDepth || cfg.MaxPlayoutDepth == 0 {
		cfg.MaxPlayoutDepth = depth
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if pretty {
		cfg.Pretty = true
	}
}

func setupLogger(debug bool) {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	log.Logger = zerolog.New(output).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}
