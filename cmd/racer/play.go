package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-racer/internal/audio"
	"github.com/vovakirdan/tui-racer/internal/core"
	"github.com/vovakirdan/tui-racer/internal/platform/tui"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Race in the terminal",
	Long: `Open the title screen, pick a difficulty and race.

Controls:
  Arrows/WASD  - Steer
  P            - Pause
  R            - Restart
  Enter        - Race again after game over
  B/Esc        - Back to the title screen (paused or game over)
  Ctrl+S       - Save a screenshot to ~/.racer/screenshots
  Q/Ctrl+C     - Quit

Difficulty options:
  normal - Traffic falls at 2 to 4 pixels per tick
  hard   - Traffic falls at 5 to 8 pixels per tick

Examples:
  racer play
  racer play --difficulty hard
  racer play --mute --seed 7`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, preset, err := loadRacerConfig()
	if err != nil {
		fail("%v", err)
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}

	// The terminal belongs to the UI; logs go nowhere unless --log-file is set.
	logger, closeLog, err := newLogger(io.Discard, "racer")
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	player, closeAudio := audio.Open(cfg.Audio, logger)
	defer closeAudio()

	runErr := tui.Run(tui.SessionOptions{
		Config: cfg,
		Preset: preset,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Audio:  player,
		Logger: logger,
	})
	if runErr != nil {
		closeAudio()
		closeLog()
		fail("running game: %v", runErr)
	}
}
