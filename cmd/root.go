package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"lol-predictor/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "lol-predictor",
	Short: "League of Legends win prediction pipeline",
	Long: `Collect ranked match timelines from the Riot API, reduce them to
15-minute team statistics, and train a classifier predicting the winner
from the early game.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(matchesCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(prepareCmd)
	rootCmd.AddCommand(trainCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(pushCmd)
}

// newLogger builds the process logger. Pipeline runs are interactive, so the
// development encoder is the right default.
func newLogger() (*zap.SugaredLogger, error) {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

// setup loads configuration, prepares the data directory and builds the
// logger shared by every subcommand.
func setup() (*config.Config, *zap.SugaredLogger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, nil, fmt.Errorf("create data dir: %w", err)
	}
	log, err := newLogger()
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}

// Artifact paths inside the data directory.
func summonerIDsPath(dir string) string { return filepath.Join(dir, "summoner_ids.txt") }
func puuidsPath(dir string) string      { return filepath.Join(dir, "puuids.txt") }
func matchIDsPath(dir string) string    { return filepath.Join(dir, "match_ids.txt") }
func corpusPath(dir string) string      { return filepath.Join(dir, "match_data.csv") }
func snapshotPath(dir string) string    { return filepath.Join(dir, "corpus.db") }
func progressPath(dir string) string    { return filepath.Join(dir, "processed_ids.txt") }
func deadLetterPath(dir string) string  { return filepath.Join(dir, "dead_letter.jsonl") }

func preparedPath(dir, part string) string {
	if part == "" {
		return filepath.Join(dir, "prepared_data.csv")
	}
	return filepath.Join(dir, fmt.Sprintf("prepared_data_%s.csv", part))
}
