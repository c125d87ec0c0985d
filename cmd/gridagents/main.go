// Command gridagents runs experiments of learning agents sharing a
// gridworld.
package main

import (
	"context"
	"fmt"
	"image/color"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	_ "github.com/samuelfneumann/gridagents/agent/linear/discrete/esarsa"
	_ "github.com/samuelfneumann/gridagents/agent/linear/discrete/qlearning"
	"github.com/samuelfneumann/gridagents/environment/render"
	"github.com/samuelfneumann/gridagents/experiment"
	"github.com/samuelfneumann/gridagents/experiment/checkpointer"
	"github.com/samuelfneumann/gridagents/experiment/trackers"
	"github.com/samuelfneumann/gridagents/utils/progressbar"
)

// configEnv names the environment variable holding the default
// experiment configuration file
const configEnv = "GRIDAGENTS_CONFIG"

var (
	configFile string
	steps      uint
	seed       uint64
	renderDir  string
	outDir     string
	checkpoint int
	cellSize   int
)

func main() {
	for _, envFile := range []string{".env", "../../.env"} {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	rootCmd := &cobra.Command{
		Use:   "gridagents",
		Short: "Run learning agents in a shared gridworld",
	}
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c",
		os.Getenv(configEnv), "experiment configuration file, defaults to $"+
			configEnv)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run an experiment",
		RunE:  runExperiment,
	}
	runCmd.Flags().UintVar(&steps, "steps", 0,
		"number of ticks to run, overrides the configuration if non-zero")
	runCmd.Flags().Uint64Var(&seed, "seed", 0,
		"random seed, overrides the configuration if non-zero")
	runCmd.Flags().StringVar(&renderDir, "render", "",
		"directory to write a PNG frame of the grid to after each tick")
	runCmd.Flags().StringVar(&outDir, "out", ".",
		"directory to save tracked data and agent checkpoints to")
	runCmd.Flags().IntVar(&checkpoint, "checkpoint", 0,
		"checkpoint agents every this many steps, 0 to disable")
	runCmd.Flags().IntVar(&cellSize, "cell-size", 32,
		"side length of rendered cells in pixels")

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Check that an experiment configuration is valid",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig()
			if err != nil {
				return err
			}
			log.Printf("%v: valid %v with %d agent(s)", configFile, c.Type,
				len(c.AgentConf))
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, validateCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (experiment.Config, error) {
	if configFile == "" {
		return experiment.Config{}, fmt.Errorf("no configuration file, "+
			"set --config or $%v", configEnv)
	}

	c, err := experiment.Load(configFile)
	if err != nil {
		return experiment.Config{}, err
	}
	if err := c.Validate(); err != nil {
		return experiment.Config{}, err
	}
	return c, nil
}

func runExperiment(cmd *cobra.Command, args []string) error {
	c, err := loadConfig()
	if err != nil {
		return err
	}
	if steps != 0 {
		c.MaxSteps = steps
	}
	if seed != 0 {
		c.Seed = seed
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("could not create output directory: %v", err)
	}

	returns := trackers.NewReturn(filepath.Join(outDir, "returns.bin"))
	lengths := trackers.NewEpisodeLength(filepath.Join(outDir,
		"lengths.bin"))

	exp, agents, err := c.CreateExp(
		[]trackers.Tracker{returns, lengths}, nil)
	if err != nil {
		return err
	}

	if checkpoint > 0 {
		for i, a := range agents {
			name := filepath.Join(outDir, fmt.Sprintf("agent%d-", i))
			check, err := checkpointer.NewNStep(checkpoint, a,
				checkpointer.FilenameEnumerator(0, name, ".bin"))
			if err != nil {
				return err
			}
			exp.AddCheckpointer(check)
		}
	}

	if renderDir != "" {
		if err := os.MkdirAll(renderDir, 0o755); err != nil {
			return fmt.Errorf("could not create render directory: %v", err)
		}
		png, err := render.NewPNG(cellSize, checkpointer.FilenameEnumerator(0,
			filepath.Join(renderDir, "frame"), ".png"))
		if err != nil {
			return err
		}
		exp.SetRenderer(png, color.RGBA{R: 200, G: 200, B: 200, A: 255})
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	bar := progressbar.NewManualProgressBar(os.Stderr, 50, int(c.MaxSteps))
	for exp.Ticks() < c.MaxSteps {
		if ctx.Err() != nil {
			log.Printf("interrupted after %d ticks", exp.Ticks())
			break
		}
		if err := exp.Tick(); err != nil {
			return fmt.Errorf("experiment failed: %v", err)
		}
		bar.Increment()
		bar.Display()
	}
	fmt.Fprintln(os.Stderr)

	if err := exp.Save(); err != nil {
		return err
	}
	log.Printf("saved data to %v", outDir)
	return nil
}
