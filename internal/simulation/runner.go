// Package simulation drives a single ability from the gate to its end against
// a scripted input, frame by frame.
package simulation

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-abilities/internal/energy"
	"github.com/KirkDiggler/rpg-abilities/internal/engine"
	"github.com/KirkDiggler/rpg-abilities/internal/entities/ability"
	"github.com/KirkDiggler/rpg-abilities/internal/entities/physics"
	"github.com/KirkDiggler/rpg-abilities/internal/errors"
	"github.com/KirkDiggler/rpg-abilities/internal/states"
)

// Defaults applied to zero script fields
const (
	DefaultFrame     = time.Second / 60
	DefaultMaxFrames = 10000
)

// Script is the input a simulated player provides
type Script struct {
	// Frame is the nominal tick length
	Frame time.Duration

	// Jitter varies each tick by up to this much either way, rolled on the
	// configured dice roller. Zero keeps every tick at Frame.
	Jitter time.Duration

	// HoldFor keeps the ability input held from the start for this long
	HoldFor time.Duration

	// FollowUps are follow-up presses, each delivered on the first tick that
	// starts at or after its time
	FollowUps []time.Duration

	// AirborneAfter leaves the ground at this time. Zero stays grounded.
	AirborneAfter time.Duration

	// Physics is the snapshot at the start of the run
	Physics physics.Snapshot

	// MaxFrames bounds runs that would otherwise never end
	MaxFrames int
}

// RunInput is one simulation request
type RunInput struct {
	Ability   ability.Ability
	MaxEnergy int32

	// Energy is the starting pool value. Zero starts full.
	Energy int32
	Script Script
}

// Frame is the record of one tick
type Frame struct {
	Index   int                 `json:"index"`
	At      time.Duration       `json:"at"`
	Dt      time.Duration       `json:"dt"`
	Held    bool                `json:"held"`
	Section states.StageSection `json:"section"`
	Type    string              `json:"type"`
	Effects states.Effects      `json:"effects"`
	Energy  int32               `json:"energy"`
}

// RunOutput is the full simulation result
type RunOutput struct {
	Admitted bool                `json:"admitted"`
	Reason   engine.RejectReason `json:"reason,omitempty"`
	Frames   []Frame             `json:"frames"`
	End      states.EndReason    `json:"end"`
	Elapsed  time.Duration       `json:"elapsed"`
	Energy   int32               `json:"energy"`

	// Truncated is set when MaxFrames ran out before the ability ended
	Truncated bool `json:"truncated,omitempty"`
}

// Config holds the runner dependencies
type Config struct {
	Engine engine.Engine

	// Roller rolls tick jitter. Nil uses dice.DefaultRoller.
	Roller dice.Roller
}

// Validate checks the config
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	return vb.Build()
}

// Runner executes simulations. It keeps no state between runs.
type Runner struct {
	engine engine.Engine
	roller dice.Roller
}

// NewRunner creates a Runner
func NewRunner(cfg *Config) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.DefaultRoller
	}

	return &Runner{
		engine: cfg.Engine,
		roller: roller,
	}, nil
}

// Run starts the ability and ticks it until it ends or the frame budget runs out
func (r *Runner) Run(ctx context.Context, input *RunInput) (*RunOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Ability == nil {
		return nil, errors.InvalidArgument("ability is required")
	}

	script := withDefaults(input.Script)
	if script.Jitter < 0 || script.Jitter >= script.Frame {
		return nil, errors.InvalidArgumentf("jitter must be in [0, %s), got %s", script.Frame, script.Jitter)
	}

	pool, err := newPool(input)
	if err != nil {
		return nil, err
	}

	started, err := r.engine.StartAbility(ctx, &engine.StartAbilityInput{
		Ability:  input.Ability,
		Physics:  script.Physics,
		Energy:   pool,
		Wielding: true,
	})
	if err != nil {
		return nil, err
	}

	output := &RunOutput{
		Admitted: started.Admitted,
		Reason:   started.Reason,
		Energy:   pool.Current(),
	}
	if !started.Admitted {
		return output, nil
	}

	state := started.State
	followUps := script.FollowUps
	var at time.Duration

	for i := 0; i < script.MaxFrames; i++ {
		if err := ctx.Err(); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeCanceled, "simulation canceled")
		}

		dt, err := r.frame(script)
		if err != nil {
			return nil, err
		}

		snapshot := script.Physics
		if script.AirborneAfter > 0 && at >= script.AirborneAfter {
			snapshot.OnGround = false
		}

		followUp := false
		for len(followUps) > 0 && followUps[0] <= at {
			followUp = true
			followUps = followUps[1:]
		}

		held := at < script.HoldFor
		advanced, err := r.engine.AdvanceAbility(ctx, &engine.AdvanceAbilityInput{
			State: state,
			Tick: states.Input{
				Dt:       dt,
				Physics:  snapshot,
				Held:     held,
				FollowUp: followUp,
				Energy:   pool,
			},
		})
		if err != nil {
			return nil, err
		}

		frame := Frame{
			Index:   i,
			At:      at,
			Dt:      dt,
			Held:    held,
			Effects: advanced.Update.Effects,
			Energy:  pool.Current(),
		}
		at += dt

		if advanced.Update.Ended() {
			abilityType, _ := engine.Classify(state)
			frame.Section = state.Section()
			frame.Type = abilityType.String()
			output.Frames = append(output.Frames, frame)
			output.End = advanced.Update.End
			break
		}

		state = advanced.Update.State
		abilityType, _ := engine.Classify(state)
		frame.Section = state.Section()
		frame.Type = abilityType.String()
		output.Frames = append(output.Frames, frame)
	}

	output.Elapsed = at
	output.Energy = pool.Current()
	output.Truncated = output.End == states.EndNone

	slog.Debug("Simulation finished",
		"kind", input.Ability.Kind(),
		"frames", len(output.Frames),
		"elapsed", output.Elapsed,
		"end", output.End,
	)

	return output, nil
}

// frame returns the next tick length. With jitter the offset is a die roll
// mapped onto [-jitter, +jitter] in whole milliseconds.
func (r *Runner) frame(script Script) (time.Duration, error) {
	spread := int(script.Jitter / time.Millisecond)
	if spread == 0 {
		return script.Frame, nil
	}

	roll, err := r.roller.Roll(2*spread + 1)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll frame jitter")
	}
	offset := time.Duration(roll-1-spread) * time.Millisecond
	return script.Frame + offset, nil
}

func withDefaults(script Script) Script {
	if script.Frame <= 0 {
		script.Frame = DefaultFrame
	}
	if script.MaxFrames <= 0 {
		script.MaxFrames = DefaultMaxFrames
	}
	return script
}

func newPool(input *RunInput) (*energy.Ledger, error) {
	if input.Energy == 0 {
		return energy.NewLedger(input.MaxEnergy)
	}
	return energy.NewLedgerAt(input.Energy, input.MaxEnergy)
}
