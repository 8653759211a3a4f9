package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/geometry-fighter/internal/audio"
	"github.com/vovakirdan/geometry-fighter/internal/config"
	"github.com/vovakirdan/geometry-fighter/internal/core"
	"github.com/vovakirdan/geometry-fighter/internal/game"
	"github.com/vovakirdan/geometry-fighter/internal/platform/tui"
)

var (
	flagConfig string
	flagMute   bool
	flagStats  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Geometry Fighter",
	Long: `Start the game on the title screen.

Controls:
  Click        - Tap a shape (or start a round)
  Space/Enter  - Tap at the mouse cursor
  F            - Toggle the statistics line
  Q/Esc        - Quit

Examples:
  geofighter play
  geofighter play --mute --fps 30
  geofighter play --store gdata
  geofighter play --config ./my-geofighter.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
	cmd.Flags().BoolVar(&flagStats, "stats", false, "Show fps and object counts")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, logFile, err := newLogger(true)
	if err != nil {
		return err
	}
	defer logFile.Close()

	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Stats:    flagStats,
		Mute:     flagMute,
	}

	opts := tui.Options{
		Runtime: rt,
		Game:    gameCfg,
		Logger:  logger,
	}

	backend, err := openBackend()
	if err != nil {
		// Continue without storage - the best score lives in memory only
		logger.Warn("scores unavailable", "store", flagStore, "err", err)
		opts.Scores = &game.MemoryScores{}
	} else {
		defer backend.Close()
		opts.Scores = backend.best
		opts.Rounds = backend.rounds
	}

	if !rt.Mute && gameCfg.Audio.Enabled {
		player := audio.NewPlayer(gameCfg.Audio, logger)
		if err := player.Init(); err != nil {
			logger.Warn("sound disabled", "err", err)
		}
		defer player.Close()
		opts.Audio = player
	}

	logger.Info("starting", "seed", rt.Seed, "fps", rt.TickRate, "store", flagStore)
	return tui.Run(opts)
}
