package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/arcanaland/deckbuilder/internal/builder"
	"github.com/arcanaland/deckbuilder/internal/config"
	"github.com/arcanaland/deckbuilder/internal/deck"
	"github.com/arcanaland/deckbuilder/internal/report"
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a batch of decks and write them to a report",
	Long: `Build draws decks from the catalog one after another and appends each to the
report as soon as it is built. When the catalog runs out of cards, the decks
already written are kept and the command fails.

Use --seed to repeat a run and --balance to reshuffle decks that are far
above the batch's mean power once the batch is complete.

Examples:
  deckbuilder build
  deckbuilder build --decks 3 --seed 42 --output -
  deckbuilder build --catalog ./MystickCardLibrary.csv --balance`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		applyBuildFlags(cmd, cfg)
		if err := cfg.Validate(); err != nil {
			return err
		}

		seed := cfg.Seed
		if seed == 0 {
			seed = rand.Uint64()
		}
		rng := rand.New(rand.NewPCG(seed, seed))

		lib, err := loadLibrary(cfg, rng)
		if err != nil {
			return err
		}
		b := builder.New(lib, cfg.Rules, rng)
		b.SetLogger(slog.Default())

		out, colorize, closeOut, err := openOutput(cmd.OutOrStdout(), cfg.Output)
		if err != nil {
			return err
		}
		defer closeOut()

		rep := report.New(out, colorize)
		if err := rep.WriteHeader(seed, cfg.Decks); err != nil {
			return err
		}
		slog.Info("building decks", "run", rep.RunID(), "seed", seed, "count", cfg.Decks)

		decks, err := buildBatch(b, rep, cfg.Decks)
		if err != nil {
			slog.Error("deck generation aborted", "built", len(decks), "error", err)
			return err
		}

		if cfg.Balance {
			balanced, result := b.BalanceDecks(decks)
			slog.Info("balanced decks", "mean", result.Mean, "reshuffled", result.Reshuffled,
				"rebuilt", result.Rebuilt, "converged", result.Converged)

			if err := rep.WriteSection("Balanced"); err != nil {
				return err
			}
			if err := rep.WriteDecks(balanced); err != nil {
				return err
			}
		}

		if cfg.Output != "-" {
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d decks to %s\n", rep.Written(), cfg.Output)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(buildCmd)

	buildCmd.Flags().IntP("decks", "n", 0, "Number of decks to build")
	buildCmd.Flags().Uint64P("seed", "s", 0, "Random seed, 0 picks one")
	buildCmd.Flags().BoolP("balance", "b", false, "Reshuffle over-powered decks after building")
	buildCmd.Flags().StringP("output", "o", "", "Report file, - for stdout")
}

// applyBuildFlags overrides config values with the flags given on the command line
func applyBuildFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("decks") {
		cfg.Decks, _ = flags.GetInt("decks")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Changed("balance") {
		cfg.Balance, _ = flags.GetBool("balance")
	}
	if flags.Changed("output") {
		cfg.Output, _ = flags.GetString("output")
	}
	if cfg.Output == "" {
		cfg.Output = "-"
	}
}

// buildBatch builds n decks, writing each to rep as it is built.
// It stops at the first failure and returns the decks built so far.
func buildBatch(b *builder.Builder, rep *report.Report, n int) ([]*deck.Deck, error) {
	decks := make([]*deck.Deck, 0, n)
	for i := 0; i < n; i++ {
		d, err := b.BuildDeck(strconv.Itoa(i))
		if err != nil {
			return decks, fmt.Errorf("error building deck %d: %w", i, err)
		}
		decks = append(decks, d)

		if err := rep.WriteDeck(d); err != nil {
			return decks, err
		}
	}
	return decks, nil
}

// openOutput opens the report sink, stdout for "-". Colors are used only
// on a terminal.
func openOutput(stdout io.Writer, path string) (io.Writer, bool, func(), error) {
	if path == "-" {
		f, ok := stdout.(*os.File)
		return stdout, ok && report.IsTerminal(f), func() {}, nil
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, false, nil, fmt.Errorf("error creating report file: %w", err)
	}
	return file, false, func() { file.Close() }, nil
}
