package main

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"balloonpet/internal/audio"
	"balloonpet/internal/config"
	"balloonpet/internal/ui"
)

const Version = "v0.1.0"

type options struct {
	configPath string
	seed       int64
	mute       bool
	logFile    string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "balloonpet",
		Short:         "A balloon pet that floats on your terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", defaultConfigPath(), "Path to config file")
	rootCmd.Flags().Int64Var(&opts.seed, "seed", 0, "Seed for the starting mood (0 uses the config, then the clock)")
	rootCmd.Flags().BoolVar(&opts.mute, "mute", false, "Start with sound off")
	rootCmd.Flags().StringVar(&opts.logFile, "log-file", "balloonpet.log", "Log file (empty discards logs)")

	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(versionCmd)
	return rootCmd
}

func newConfigCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			data, err := cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), Version)
	},
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "balloonpet", "config.toml")
}

// loadConfig reads the config file and applies command line overrides
func loadConfig(opts *options) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return cfg, err
	}
	if opts.mute {
		cfg.Audio.Muted = true
	}
	if opts.seed != 0 {
		cfg.Seed = opts.seed
	}
	return cfg, nil
}

func run(opts *options) error {
	if opts.logFile != "" {
		f, err := tea.LogToFile(opts.logFile, "balloonpet")
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("starting balloonpet %s (seed %d)", Version, seed)

	player := audio.NewPlayer(cfg.AudioSettings())
	if err := player.Initialize(); err != nil {
		log.Printf("audio unavailable, running silently: %v", err)
	}
	defer player.Close()

	model, err := ui.NewModel(ui.Options{
		Config: cfg,
		Audio:  player,
		Rand:   rand.New(rand.NewSource(seed)),
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run program: %w", err)
	}
	return nil
}
