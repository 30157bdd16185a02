package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snakes-ladders/internal/board"
	"github.com/vovakirdan/snakes-ladders/internal/registry"
)

var flagBoardsVerbose bool

var boardsCmd = &cobra.Command{
	Use:   "boards",
	Short: "List all available boards",
	Long:  `Shows the board presets that can be passed to --board.`,
	Args:  cobra.NoArgs,
	Run:   runBoards,
}

func init() {
	boardsCmd.Flags().BoolVarP(&flagBoardsVerbose, "verbose", "v", false, "Show every snake and ladder")
}

func runBoards(cmd *cobra.Command, args []string) {
	boards := registry.List()

	if len(boards) == 0 {
		fmt.Println("No boards available.")
		return
	}

	fmt.Println("Available boards:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, b := range boards {
		if len(b.ID) > maxIDLen {
			maxIDLen = len(b.ID)
		}
	}

	fmt.Printf("  %-*s  %-14s  %-5s  %s\n", maxIDLen, "ID", "Title", "Goal", "Ladders/Snakes")
	fmt.Printf("  %-*s  %-14s  %-5s  %s\n", maxIDLen, "--", "-----", "----", "--------------")

	for _, info := range boards {
		cfg, err := registry.Create(info.ID)
		if err != nil {
			continue
		}
		b, err := board.New(cfg)
		if err != nil {
			logger.Warn("preset does not validate", "board", info.ID, "error", err)
			continue
		}
		fmt.Printf("  %-*s  %-14s  %-5d  %d/%d\n", maxIDLen, info.ID, info.Title, b.Goal(),
			len(cfg.Ladders), len(cfg.Snakes))

		if flagBoardsVerbose {
			for _, m := range b.Modifiers() {
				fmt.Printf("  %-*s    %-6s %3d -> %d\n", maxIDLen, "", m.Kind, m.From, m.To)
			}
		}
	}

	fmt.Println()
	fmt.Println("Run 'ladders play --board <id>' to play on a board.")
}
