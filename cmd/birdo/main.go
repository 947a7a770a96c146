// birdo is a terminal flappy-bird game with a built-in reinforcement
// learning environment.
//
// Usage:
//
//	birdo play               - Play in the terminal
//	birdo agent              - Run scripted policies against the environment
//	birdo scores             - Show high scores and agent episodes
//	birdo serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Override the tick rate from the config
//	--seed <value>  - Set RNG seed for reproducible pipe sequences
//	--db <path>     - Set database path (default: ~/.birdo/birdo.db)
//	--config <path> - Path to a custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tuigames/birdo/internal/config"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "birdo",
	Short: "Birdo - flappy bird in your terminal, with an RL environment",
	Long: `Birdo is a terminal rendition of flappy bird built on a deterministic
simulation core. The same core backs an episodic reinforcement learning
environment, so scripted or learned policies can play the exact game a
human plays.

Available commands:
  play     - Play in the terminal
  agent    - Run a policy against the environment
  scores   - View high scores and agent episodes
  serve    - Start SSH server for remote play

Examples:
  birdo play
  birdo play --seed 42
  birdo agent --policy gap --episodes 20
  birdo scores --interactive
  birdo serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.birdo/birdo.db", "Path to database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(agentCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the game config and applies the global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}

	if flagFPS > 0 {
		cfg.Screen.TickRate = flagFPS
	}
	return cfg, nil
}
