package states

import "github.com/KirkDiggler/rpg-abilities/internal/entities/ability"

// BasicBlock holds a block while the input stays down. It has no timer.
type BasicBlock struct{}

func (BasicBlock) Kind() ability.Kind    { return ability.KindBasicBlock }
func (BasicBlock) Section() StageSection { return StageNone }
func (BasicBlock) Interruptible() bool   { return true }
func (BasicBlock) state()                {}

// Tick ends the block once the input is released
func (s BasicBlock) Tick(in *Input) Update {
	if !in.Held {
		return ended(EndCompleted, Effects{})
	}
	return running(s, Effects{})
}
