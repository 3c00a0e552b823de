// survivor is a terminal arena survival game: outlast rounds of enemies,
// collect weapons and upgrades, and climb the leaderboard.
//
// Usage:
//
//	survivor play            - Start the game
//	survivor worlds          - List the worlds in the catalog
//	survivor scores          - Show the leaderboard
//	survivor serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.survivor/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "survivor",
	Short: "Survivor - Outlast the arena in your terminal",
	Long: `Survivor is a terminal arena survival game. Enemies pour in round
after round; clear each round's quota, spend coins between rounds, beat
every world's boss and push the leaderboard in endless mode.

Available commands:
  play     - Start the game
  worlds   - Show the world catalog
  scores   - View the leaderboard
  serve    - Start SSH server for remote play

Examples:
  survivor play
  survivor play --seed 42
  survivor worlds
  survivor serve --ssh :2222
  survivor scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (simulation steps per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.survivor/survivor.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(worldsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
