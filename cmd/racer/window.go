package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-racer/internal/audio"
	"github.com/vovakirdan/tui-racer/internal/core"
	"github.com/vovakirdan/tui-racer/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Race in a desktop window",
	Long: `Open a 400x600 window and start racing immediately.

Controls:
  Arrows/WASD  - Steer
  P            - Pause
  R            - Restart
  Enter/Space  - Race again after game over
  Q/Esc        - Quit`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runWindow(_ *cobra.Command, _ []string) {
	cfg, preset, err := loadRacerConfig()
	if err != nil {
		fail("%v", err)
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}

	title := "Lane Racer"
	if preset != "" {
		title += " - " + preset.Title()
	}

	logger, closeLog, err := newLogger(os.Stderr, "racer")
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	player, closeAudio := audio.Open(cfg.Audio, logger)
	defer closeAudio()

	runErr := window.Run(window.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Audio:  player,
		Logger: logger,
		Title:  title,
	})
	if runErr != nil {
		closeAudio()
		closeLog()
		fail("running game: %v", runErr)
	}
}
