package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/tuigames/birdo/internal/env"
	"github.com/tuigames/birdo/internal/storage"
)

var (
	flagEpisodes int
	flagPolicy   string
	flagMaxTicks int
	flagFlapProb float64
	flagNoSave   bool
)

var agentCmd = &cobra.Command{
	Use:   "agent",
	Short: "Run a policy against the environment",
	Long: `Run scripted policies against the reinforcement learning environment
and record the episode results.

Policies:
  gap    - Flap to keep the bird inside the upcoming gap
  random - Flap with a fixed probability each tick

Examples:
  birdo agent
  birdo agent --policy gap --episodes 50
  birdo agent --policy random --flap-prob 0.08
  birdo agent --seed 42 --max-ticks 5000`,
	Run: runAgent,
}

func init() {
	agentCmd.Flags().IntVar(&flagEpisodes, "episodes", 10, "Number of episodes to run")
	agentCmd.Flags().StringVar(&flagPolicy, "policy", "gap", "Policy: gap or random")
	agentCmd.Flags().IntVar(&flagMaxTicks, "max-ticks", 10000, "Truncate an episode after this many ticks")
	agentCmd.Flags().Float64Var(&flagFlapProb, "flap-prob", 0.1, "Flap probability for the random policy")
	agentCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record episodes in the database")
}

func runAgent(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "birdo-agent",
	})

	cfg, err := loadConfig()
	if err != nil {
		logger.Fatal("could not load config", "error", err)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var policy env.Policy
	switch flagPolicy {
	case "gap":
		policy = env.NewGapPolicy()
	case "random":
		policy = env.NewRandomPolicy(seed, flagFlapProb)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown policy %q (want gap or random)\n", flagPolicy)
		os.Exit(1)
	}

	var store *storage.Store
	if !flagNoSave {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("could not open database, episodes will not be recorded", "error", err)
		} else {
			defer store.Close()
		}
	}

	e := env.New(&cfg, seed)
	logger.Info("running episodes",
		"policy", policy.Name(),
		"episodes", flagEpisodes,
		"seed", seed,
	)

	var totalScore, bestScore, totalTicks int
	for ep := 1; ep <= flagEpisodes; ep++ {
		obs, _ := e.Reset(0)

		var reward float64
		var score, ticks int
		truncated := true
		for ticks < flagMaxTicks {
			res, stepErr := e.Step(policy.Act(obs))
			if stepErr != nil {
				logger.Fatal("step failed", "episode", ep, "error", stepErr)
			}

			reward += res.Reward
			obs = res.Observation
			score = res.Info.Score
			ticks++

			if res.Terminated {
				truncated = false
				break
			}
		}

		logger.Info("episode finished",
			"episode", ep,
			"ticks", ticks,
			"score", score,
			"reward", reward,
			"truncated", truncated,
		)

		if store != nil {
			if _, saveErr := store.SaveEpisode(storage.EpisodeEntry{
				Policy: policy.Name(),
				Ticks:  ticks,
				Score:  score,
				Reward: reward,
			}); saveErr != nil {
				logger.Warn("could not record episode", "error", saveErr)
			}
		}

		totalScore += score
		totalTicks += ticks
		if score > bestScore {
			bestScore = score
		}
	}

	logger.Info("run complete",
		"policy", policy.Name(),
		"episodes", flagEpisodes,
		"best_score", bestScore,
		"avg_score", float64(totalScore)/float64(flagEpisodes),
		"avg_ticks", float64(totalTicks)/float64(flagEpisodes),
	)
}
