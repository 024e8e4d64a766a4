package main

import (
	"fmt"
	"strings"

	"github.com/automoto/dino/shared/leveldata"
	"github.com/automoto/dino/shared/rules"
	"github.com/automoto/dino/sim"
	"github.com/spf13/cobra"
)

var (
	flagFrames int
	flagInput  string
)

var runCmd = &cobra.Command{
	Use:   "run <path|name>",
	Short: "Run one attempt at a level with scripted input",
	Long: `Runs the simulation for one attempt without drawing and prints
the outcome, score, lives and event counts.

The input script is a list of tokens: buttons followed by a frame count.
R, L and J hold right, left and jump; Q quits; . waits. Buttons combine.

Examples:
  dinotool run level1 --frames 300 --input "R60 RJ15 R120"
  dinotool run mylevels/test.txt --input ".30 L10"`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().IntVar(&flagFrames, "frames", 3600, "Maximum frames to simulate")
	runCmd.Flags().StringVar(&flagInput, "input", "", "Input script")
}

// RunResult is what one headless attempt produced.
type RunResult struct {
	Outcome sim.Outcome
	Frames  int
	Score   int
	Lives   int
	Events  map[sim.EventKind]int
}

func runRun(cmd *cobra.Command, args []string) error {
	lvl, err := loadLevel(args[0])
	if err != nil {
		return err
	}
	steps, err := ParseScript(flagInput)
	if err != nil {
		return err
	}
	res := Run(lvl, NewScript(steps), flagFrames)

	fmt.Printf("outcome %s after %d frames\n", res.Outcome, res.Frames)
	fmt.Printf("score %d  lives %d\n", res.Score, res.Lives)
	fmt.Println(formatEvents(res.Events))
	return nil
}

// Run plays a single attempt until it ends or maxFrames pass.
func Run(lvl *leveldata.Level, script *Script, maxFrames int) RunResult {
	ctx := sim.NewContext(rules.Session.StartingLives)
	a := sim.NewAttempt(ctx, sim.NewGrid(lvl))
	res := RunResult{Events: make(map[sim.EventKind]int)}

	for res.Frames < maxFrames {
		out := a.Step(script.Next(), nil)
		res.Frames++
		for _, ev := range ctx.DrainEvents() {
			res.Events[ev.Kind]++
		}
		if out != sim.OutcomeNone {
			res.Outcome = out
			break
		}
	}
	if res.Outcome == sim.OutcomeDied {
		ctx.LoseLife()
	}
	res.Score = ctx.Score()
	res.Lives = ctx.Lives()
	return res
}

func formatEvents(events map[sim.EventKind]int) string {
	if len(events) == 0 {
		return "no events"
	}
	var parts []string
	for k := sim.EventKind(0); k <= sim.EventIceCracked; k++ {
		if n := events[k]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s=%d", k, n))
		}
	}
	return strings.Join(parts, "  ")
}
