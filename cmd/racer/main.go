// racer is a lane racer: steer a car down a scrolling four-lane road,
// dodge falling traffic and finish before the fuel runs out.
//
// Usage:
//
//	racer play      - Race in the terminal
//	racer window    - Race in a desktop window
//	racer serve     - Start SSH server for remote play
//	racer config    - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible races
//	--config <path>       - Custom racer config YAML
//	--difficulty <preset> - normal or hard
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-racer/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "racer",
	Short: "Lane Racer - dodge traffic before the tank runs dry",
	Long: `Lane Racer is an arcade lane racer for the terminal and the desktop.

Steer with the arrow keys or WASD. Every tick scores a point and burns fuel;
touching another car ends the race.

Available commands:
  play     - Race in this terminal
  window   - Race in a desktop window
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  racer play
  racer play --difficulty hard
  racer window --seed 42
  racer serve --ssh :2222
  racer config --config ./my-racer.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom racer config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadRacerConfig loads the config file and applies --difficulty on top.
func loadRacerConfig() (config.RacerConfig, config.DifficultyPreset, error) {
	cfg, err := config.LoadRacer(flagConfig)
	if err != nil {
		return config.RacerConfig{}, "", err
	}

	preset := config.ParsePreset(flagDifficulty)
	if flagDifficulty != "" && preset == "" {
		return config.RacerConfig{}, "", fmt.Errorf("unknown difficulty %q (want normal or hard)", flagDifficulty)
	}
	config.ApplyRacerPreset(&cfg, preset)
	return cfg, preset, nil
}

// newLogger writes to --log-file when given, otherwise to fallback.
// The returned func closes the log file.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	out, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
