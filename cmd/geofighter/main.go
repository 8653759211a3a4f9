// geofighter is a terminal arcade reaction game: shapes are launched into
// the air, tap the colored ones and avoid the black ones.
//
// Usage:
//
//	geofighter                   - Play (same as "geofighter play")
//	geofighter play              - Play a round
//	geofighter scores            - Show the round history and best score
//	geofighter reset-scores      - Forget every recorded score
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible spawns
//	--db <path>         - Set database path (default: ~/.geofighter/scores.db)
//	--store <backend>   - Score backend: sqlite or gdata
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const appName = "geofighter"

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagStore    string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "Geometry Fighter - tap the shapes, dodge the black ones",
	Long: `Geometry Fighter launches shapes into the air. Click the colored
ones to score; clicking a black one costs a life. Three lives per round.

Available commands:
  play          - Play (default)
  scores        - View the round history
  reset-scores  - Delete recorded scores

Examples:
  geofighter
  geofighter play --seed 7 --stats
  geofighter play --config ./my-geofighter.yaml
  geofighter scores --interactive`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.geofighter/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", storeSQLite, "Score backend: sqlite or gdata")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	addPlayFlags(rootCmd)
	addPlayFlags(playCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(resetScoresCmd)
}
