package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neon-snake/internal/config"
	"github.com/vovakirdan/neon-snake/internal/core"
	"github.com/vovakirdan/neon-snake/internal/platform/tui"
	"github.com/vovakirdan/neon-snake/internal/storage"
)

var (
	flagReset bool
	flagPlain bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores",
	Long: `Display the best score of every variant, or of one variant.
On a terminal the scores are shown as an interactive table.

Examples:
  snake scores
  snake scores classic
  snake scores --plain
  snake scores neon --reset`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Clear the high score of the given variant")
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print plain text instead of the table view")
}

func runScores(cmd *cobra.Command, args []string) error {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	if flagReset {
		if len(args) == 0 {
			return fmt.Errorf("--reset needs a variant")
		}
		if err := store.ClearHighScore(args[0]); err != nil {
			return err
		}
		fmt.Printf("High score of %s cleared.\n", args[0])
		return nil
	}

	entries, err := store.AllHighScores()
	if err != nil {
		return fmt.Errorf("error retrieving scores: %w", err)
	}

	variants := config.Variants()
	if len(args) == 1 {
		variants, entries = filterVariant(args[0], variants, entries)
	}

	if !flagPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		rt := core.RuntimeConfig{}
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			rt.ScreenW, rt.ScreenH = w, h
		}
		rt = rt.Normalized()
		return tui.RunHighScores(entries, variants, rt.ScreenW, rt.ScreenH)
	}

	printScores(tui.HighScoreRows(entries, variants))
	return nil
}

// filterVariant keeps only the named variant.
func filterVariant(id string, variants []config.VariantInfo, entries []storage.HighScoreEntry) ([]config.VariantInfo, []storage.HighScoreEntry) {
	var keptVariants []config.VariantInfo
	for _, v := range variants {
		if v.ID == id {
			keptVariants = append(keptVariants, v)
		}
	}
	var keptEntries []storage.HighScoreEntry
	for _, e := range entries {
		if e.Variant == id {
			keptEntries = append(keptEntries, e)
		}
	}
	return keptVariants, keptEntries
}

func printScores(rows []table.Row) {
	fmt.Println("High Scores")
	fmt.Println()

	if len(rows) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-10s  %-20s  %-8s  %s\n", "Variant", "Title", "Best", "Updated")
	fmt.Printf("  %-10s  %-20s  %-8s  %s\n", "-------", "-----", "----", "-------")

	for _, row := range rows {
		fmt.Printf("  %-10s  %-20s  %-8s  %s\n", row[0], row[1], row[2], row[3])
	}
}
