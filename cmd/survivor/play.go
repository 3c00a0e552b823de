package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vkoshelev/tui-survivor/internal/config"
	"github.com/vkoshelev/tui-survivor/internal/core"
	"github.com/vkoshelev/tui-survivor/internal/platform/tui"
	"github.com/vkoshelev/tui-survivor/internal/storage"
	"github.com/vkoshelev/tui-survivor/internal/survivor"
)

var (
	flagConfig   string
	flagSavePath string
	flagNewRun   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the game",
	Long: `Start the game. A run in progress resumes from its last round
boundary; pick "New Game" in the menu (or pass --new) to start over.

Controls:
  W/A/S/D      - Move
  Arrows/Mouse - Aim
  Space        - Fire
  1/2/3        - Switch weapon slot
  P/Esc        - Pause
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Examples:
  survivor play
  survivor play --new
  survivor play --seed 42
  survivor play --config ./my-worlds.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom world catalog YAML")
	playCmd.Flags().StringVar(&flagSavePath, "save", "~/.survivor/save.json", "Path to save file")
	playCmd.Flags().BoolVar(&flagNewRun, "new", false, "Discard the existing save before starting")
}

func runPlay(cmd *cobra.Command, args []string) {
	// A broken catalog is fatal: the game must not run on a table it
	// only half-read.
	catalog, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading world catalog: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open the save store
	var saves survivor.SaveStore
	fileSaves, err := storage.NewFileSaveStore(flagSavePath, catalog, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open save file: %v\n", err)
		// Continue without saving - game still works
	} else {
		if flagNewRun {
			if clearErr := fileSaves.Clear(); clearErr != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not discard save: %v\n", clearErr)
			}
		}
		saves = fileSaves
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the session
	runErr := tui.Run(catalog, store, saves, cfg, os.Getenv("USER"), nil)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
