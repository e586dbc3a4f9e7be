// Package states holds the runtime execution state of an in-progress
// ability and advances it tick by tick.
package states

import (
	"math"
	"time"

	"github.com/KirkDiggler/rpg-abilities/internal/energy"
	"github.com/KirkDiggler/rpg-abilities/internal/entities/ability"
	"github.com/KirkDiggler/rpg-abilities/internal/entities/physics"
)

// State is the live execution state of one ability. Like ability.Ability the
// set of implementations is closed and they are held as values. Tick never
// mutates its receiver; it returns the next state in the Update.
type State interface {
	Kind() ability.Kind
	Section() StageSection
	Interruptible() bool
	Tick(in *Input) Update
	state()
}

// Input is the per-tick context supplied by the driver
type Input struct {
	Dt      time.Duration
	Physics physics.Snapshot

	// Held is true while the ability's input is held down
	Held bool

	// FollowUp is true when a follow-up press was registered this tick
	FollowUp bool

	// Energy is the entity's pool, used for continuous costs and gains
	Energy energy.Pool

	// Tuning overrides the shared movement and effect values; nil uses
	// DefaultTuning
	Tuning *Tuning
}

func (in *Input) tuning() Tuning {
	return in.Tuning.WithDefaults()
}

// EndReason says why a state stopped running
type EndReason string

// End reasons
const (
	EndNone      EndReason = ""
	EndCompleted EndReason = "completed"
	EndAborted   EndReason = "aborted"
)

// Update is the result of one tick. State is nil once End is set.
type Update struct {
	State   State
	Effects Effects
	End     EndReason
}

// Ended reports whether the state is terminal
func (u Update) Ended() bool {
	return u.End != EndNone
}

func running(s State, effects Effects) Update {
	return Update{State: s, Effects: effects}
}

func ended(reason EndReason, effects Effects) Update {
	return Update{Effects: effects, End: reason}
}

// step advances timer by dt inside a stage lasting length. When the stage is
// over it reports true and the timer restarts at zero. A zero length stage is
// over on its first tick.
func step(timer, dt time.Duration, length ability.Duration) (time.Duration, bool) {
	timer += dt
	if timer >= length.Std() {
		return 0, true
	}
	return timer, false
}

// fraction returns elapsed/total clamped to [0, 1]. A zero total is complete.
func fraction(elapsed time.Duration, total ability.Duration) float32 {
	if total <= 0 {
		return 1
	}
	f := float32(float64(elapsed) / float64(total.Std()))
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}

func lerp(from, to, t float32) float32 {
	return from + (to-from)*t
}

func lerpUint(from, to uint32, t float32) uint32 {
	return uint32(math.Round(float64(lerp(float32(from), float32(to), t))))
}

// drainFor is the energy a per-second drain costs over dt, rounded to the
// nearest whole point.
func drainFor(perSecond uint32, dt time.Duration) int32 {
	return int32(math.Round(float64(perSecond) * dt.Seconds()))
}

// debit takes amount from the pool, recording it on success. A missing pool
// cannot pay anything but zero.
func debit(in *Input, amount int32, effects *Effects) bool {
	if amount == 0 {
		return true
	}
	if in.Energy == nil {
		return false
	}
	if err := in.Energy.TryChangeBy(-amount, energy.SourceAbility); err != nil {
		return false
	}
	effects.energyChanged(-amount, energy.SourceAbility)
	return true
}

// credit gives amount to the pool, saturating at its maximum
func credit(in *Input, amount int32, effects *Effects) {
	if amount == 0 || in.Energy == nil {
		return
	}
	in.Energy.ChangeBy(amount, energy.SourceHitEnemy)
	effects.energyChanged(amount, energy.SourceHitEnemy)
}
