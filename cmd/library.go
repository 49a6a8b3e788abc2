package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arcanaland/deckbuilder/internal/card"
	"github.com/arcanaland/deckbuilder/internal/catalog"
	"github.com/arcanaland/deckbuilder/internal/config"
	"github.com/spf13/cobra"
)

// libraryCmd represents the library command group
var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Inspect and set up the card library",
	Long:  `Commands for inspecting the card catalog and setting up the data directory.`,
}

// libraryListCmd represents the library ls command
var libraryListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List copies available per suit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		lib, err := loadLibrary(cfg, nil)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if lib.Len() == 0 {
			fmt.Fprintln(out, "No cards found in the catalog.")
			return nil
		}

		source := cfg.ResolveCatalogPath()
		if source == "" {
			source = "built-in catalog"
		}
		fmt.Fprintf(out, "Catalog: %s (%d cards)\n\n", source, lib.Len())

		majors, _ := lib.AvailableRanksInSuit(card.MajorArcana)
		fmt.Fprintf(out, "  %-14s %4d copies, %2d ranks\n", card.MajorArcana, lib.Remaining(card.MajorArcana), len(majors))

		for _, suit := range lib.Suits() {
			ranks, _ := lib.AvailableRanksInSuit(suit)
			remaining := lib.Remaining(suit)

			marker := " "
			if remaining >= cfg.Rules.MaxSuitCards && len(ranks) >= cfg.Rules.MaxSuitCards {
				marker = "*"
			}
			fmt.Fprintf(out, "%s %-14s %4d copies, %2d ranks\n", marker, suit, remaining, len(ranks))
		}

		fmt.Fprintf(out, "\n* suit can fill a deck (%d ranks needed)\n", cfg.Rules.MaxSuitCards)
		return nil
	},
}

// libraryInitCmd represents the library init command
var libraryInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the config file and the default catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		catalogPath := config.GetDefaultCatalogPath()

		// Create the data directory if it doesn't exist
		if err := os.MkdirAll(filepath.Dir(catalogPath), 0755); err != nil {
			return fmt.Errorf("error creating data directory: %w", err)
		}

		if _, err := os.Stat(catalogPath); os.IsNotExist(err) {
			if err := os.WriteFile(catalogPath, catalog.DefaultCSV(), 0644); err != nil {
				return fmt.Errorf("error writing catalog: %w", err)
			}
			fmt.Fprintln(out, "Default catalog written to:", catalogPath)
		} else {
			fmt.Fprintln(out, "Catalog already exists at:", catalogPath)
		}
		fmt.Fprintln(out, "Edit it or point --catalog at your own CSV.")

		// Initialize config
		if _, err := config.LoadConfig(); err != nil {
			return fmt.Errorf("error initializing config: %w", err)
		}

		fmt.Fprintln(out, "Config file initialized at:", config.GetConfigFilePath())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(libraryCmd)
	libraryCmd.AddCommand(libraryListCmd)
	libraryCmd.AddCommand(libraryInitCmd)
}
