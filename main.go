package main

import (
	"flag"
	"fmt"
	"os"

	"cartographer/config"
	"cartographer/engine"
	"cartographer/experiments/metrics"
	"cartographer/searcher"

	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "path to YAML run config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	writer, err := metrics.NewWriter(cfg.OutputDir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create metrics writer")
	}

	mcts := createMCTS(cfg)
	options := []engine.SelfPlayOption{engine.WithTopK(cfg.TopK)}
	if cfg.HiddenDeck {
		options = append(options, engine.WithHiddenDeck())
	}
	if len(cfg.SeasonTimes) > 0 {
		options = append(options, engine.WithSeasonTimes(cfg.SeasonTimes))
	}
	selfPlay := engine.NewSelfPlay(mcts, options...)

	fmt.Printf("Running %d self-play game(s)...\n", cfg.Games)
	var games []metrics.GameMetric
	for i := 0; i < cfg.Games; i++ {
		seed := cfg.Seed + int64(i)
		gameMetric, moves := selfPlay.Run(seed)
		games = append(games, gameMetric)
		if err := writer.WriteMoveRecords(gameMetric.ID, engine.MoveMetrics(moves)); err != nil {
			log.Error().Err(err).Msg("failed to write move records")
		}
		fmt.Printf("Game %d (seed %d): score %d in %d moves\n", i+1, seed, gameMetric.Score, gameMetric.TotalMoves)
	}

	if err := writer.WriteGameRecords(games); err != nil {
		log.Error().Err(err).Msg("failed to write game records")
		os.Exit(1)
	}
	fmt.Printf("Records written to %s\n", writer.BaseDir())
}

func createMCTS(cfg config.Config) *searcher.MCTS {
	options := []searcher.Option{searcher.WithMetrics()}

	if cfg.Episodes > 0 {
		options = append(options, searcher.WithEpisodes(cfg.Episodes))
	}
	if cfg.DurationMS > 0 {
		options = append(options, searcher.WithDuration(cfg.Duration()))
	}
	if cfg.Cutoff > 0 {
		options = append(options, searcher.WithCutoff(cfg.Cutoff))
	}

	return searcher.NewMCTS(cfg.Goroutines, options...)
}
