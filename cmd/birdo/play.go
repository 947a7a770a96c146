package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tuigames/birdo/internal/platform/audio"
	"github.com/tuigames/birdo/internal/platform/tui"
	"github.com/tuigames/birdo/internal/sim"
	"github.com/tuigames/birdo/internal/storage"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the current terminal.

Controls:
  Space/Up/W - Flap
  Enter      - Start from the menu
  M/Esc      - Back to menu
  Q/Ctrl+C   - Quit

Examples:
  birdo play
  birdo play --seed 42
  birdo play --config ./my-birdo.yaml
  birdo play --mute`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	var snd sim.Audio = sim.NopAudio{}
	if cfg.Audio.Enabled && !flagMute {
		speaker, audioErr := audio.Open()
		if audioErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: audio unavailable: %v\n", audioErr)
		} else {
			snd = speaker
			defer speaker.Close()
		}
	}

	runErr := tui.Run(&cfg, flagSeed, store, snd)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
