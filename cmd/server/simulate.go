package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/KirkDiggler/rpg-abilities/internal/catalog"
	"github.com/KirkDiggler/rpg-abilities/internal/engine"
	"github.com/KirkDiggler/rpg-abilities/internal/entities/physics"
	"github.com/KirkDiggler/rpg-abilities/internal/errors"
	"github.com/KirkDiggler/rpg-abilities/internal/simulation"
)

var (
	simAbilityID     string
	simFrame         time.Duration
	simJitter        time.Duration
	simHold          time.Duration
	simFollowUps     []time.Duration
	simAirborneAfter time.Duration
	simAirborne      bool
	simBody          string
	simMaxEnergy     int32
	simEnergy        int32
	simMaxFrames     int
	simJSON          bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run one catalog ability from activation to its end",
	Long: `Run one catalog ability through the gate and the execution state machine with
scripted input, printing every tick. Jitter varies tick lengths with dice rolls.`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	flags := simulateCmd.Flags()
	flags.StringVar(&simAbilityID, "ability", "", "Catalog ability ID (required)")
	flags.DurationVar(&simFrame, "frame", simulation.DefaultFrame, "Nominal tick length")
	flags.DurationVar(&simJitter, "jitter", 0, "Maximum tick length variation either way")
	flags.DurationVar(&simHold, "hold", 0, "Hold the ability input for this long")
	flags.DurationSliceVar(&simFollowUps, "follow-up", nil, "Follow-up press times (repeatable)")
	flags.DurationVar(&simAirborneAfter, "airborne-after", 0, "Leave the ground at this time")
	flags.BoolVar(&simAirborne, "airborne", false, "Start in the air")
	flags.StringVar(&simBody, "body", string(physics.BodyHumanoid), "Body kind of the caster")
	flags.Int32Var(&simMaxEnergy, "max-energy", 1000, "Energy pool size")
	flags.Int32Var(&simEnergy, "energy", 0, "Starting energy (0 starts full)")
	flags.IntVar(&simMaxFrames, "max-frames", simulation.DefaultMaxFrames, "Stop after this many ticks")
	flags.BoolVar(&simJSON, "json", false, "Output in JSON format")

	_ = simulateCmd.MarkFlagRequired("ability") // nolint:errcheck // safe to ignore in init
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	body := physics.BodyKind(simBody)
	if !body.IsValid() {
		return errors.InvalidArgumentf("unknown body kind %q", simBody)
	}

	c, err := catalog.Load(viper.GetString(keyCatalogPath))
	if err != nil {
		return err
	}

	a, err := c.Ability(simAbilityID)
	if err != nil {
		return err
	}

	abilityEngine, err := engine.New(&engine.Config{Tuning: c.Tuning()})
	if err != nil {
		return err
	}

	runner, err := simulation.NewRunner(&simulation.Config{
		Engine: abilityEngine,
		Roller: dice.DefaultRoller,
	})
	if err != nil {
		return err
	}

	result, err := runner.Run(cmd.Context(), &simulation.RunInput{
		Ability:   a,
		MaxEnergy: simMaxEnergy,
		Energy:    simEnergy,
		Script: simulation.Script{
			Frame:         simFrame,
			Jitter:        simJitter,
			HoldFor:       simHold,
			FollowUps:     simFollowUps,
			AirborneAfter: simAirborneAfter,
			Physics: physics.Snapshot{
				OnGround: !simAirborne,
				Body:     physics.Body{Kind: body},
			},
			MaxFrames: simMaxFrames,
		},
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if simJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printRun(out, simAbilityID, result)
	return nil
}

func printRun(out io.Writer, id string, result *simulation.RunOutput) {
	if !result.Admitted {
		fmt.Fprintf(out, "%s rejected: %s (energy %d)\n", id, result.Reason, result.Energy)
		return
	}

	fmt.Fprintf(out, "%-5s %-9s %-8s %-6s %-34s %s\n", "TICK", "AT", "DT", "ENERGY", "TYPE", "EFFECTS")
	for _, f := range result.Frames {
		fmt.Fprintf(out, "%-5d %-9s %-8s %-6d %-34s %s\n",
			f.Index, f.At.Round(time.Millisecond), f.Dt.Round(time.Millisecond), f.Energy, f.Type, summarize(f))
	}

	status := string(result.End)
	if result.Truncated {
		status = "truncated"
	}
	fmt.Fprintf(out, "\n%s: %s after %s, energy %d\n", id, status, result.Elapsed.Round(time.Millisecond), result.Energy)
}

func summarize(f simulation.Frame) string {
	e := f.Effects
	if e.IsEmpty() {
		return ""
	}

	var parts []string
	if n := len(e.Attacks); n > 0 {
		parts = append(parts, fmt.Sprintf("attacks=%d", n))
	}
	if n := len(e.Projectiles); n > 0 {
		parts = append(parts, fmt.Sprintf("projectiles=%d", n))
	}
	if n := len(e.Shockwaves); n > 0 {
		parts = append(parts, fmt.Sprintf("shockwaves=%d", n))
	}
	if e.ShockwaveRadius > 0 {
		parts = append(parts, fmt.Sprintf("radius=%.1f", e.ShockwaveRadius))
	}
	if e.Movement != nil {
		parts = append(parts, "movement")
	}
	for _, change := range e.EnergyChanges {
		parts = append(parts, fmt.Sprintf("energy%+d(%s)", change.Amount, change.Source))
	}
	return fmt.Sprint(parts)
}
