package cmd

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcanaland/deckbuilder/internal/catalog"
	"github.com/arcanaland/deckbuilder/internal/config"
	"github.com/arcanaland/deckbuilder/internal/library"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "deckbuilder",
	Short: "Tool for building balanced decks from a card catalog",
	Long: `Deckbuilder draws random, rule-valid decks from a card catalog.
Each deck holds Major Arcana cards plus two complete minor suits, and copies
drawn for one deck are no longer available to the next.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		setupLogger(verbose)
	},
}

func init() {
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log every draw")
	RootCmd.PersistentFlags().StringP("catalog", "c", "", "Path to a catalog CSV (defaults to the configured or built-in catalog)")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

func setupLogger(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

// loadConfig loads the config and applies the --catalog flag
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	if path, _ := cmd.Flags().GetString("catalog"); path != "" {
		cfg.Catalog = path
	}
	return cfg, nil
}

// loadLibrary loads the catalog named by cfg into a fresh library
func loadLibrary(cfg *config.Config, rng *rand.Rand) (*library.Library, error) {
	records, err := catalog.Load(cfg.ResolveCatalogPath())
	if err != nil {
		return nil, fmt.Errorf("error loading catalog: %w", err)
	}
	cards, err := catalog.Cards(records)
	if err != nil {
		return nil, fmt.Errorf("error loading catalog: %w", err)
	}
	lib := library.New(cards, rng)
	lib.SetLogger(slog.Default())
	return lib, nil
}
