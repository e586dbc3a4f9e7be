// Package energy is the bounded per-entity resource pool abilities spend and
// gain.
package energy

//go:generate mockgen -destination=mock/mock_pool.go -package=energymock github.com/KirkDiggler/rpg-abilities/internal/energy Pool

// Source records why a change was made
type Source string

// Change sources
const (
	SourceAbility  Source = "ability"
	SourceHitEnemy Source = "hit_enemy"
	SourceRegen    Source = "regen"
	SourceRevive   Source = "revive"
	SourceUnknown  Source = "unknown"
)

// Pool is an energy counter bounded to [0, Maximum]
type Pool interface {
	// Current returns the current amount
	Current() int32

	// Maximum returns the upper bound
	Maximum() int32

	// TryChangeBy applies delta only if the result stays within bounds.
	// Otherwise it returns an OutOfRange error and nothing changes.
	TryChangeBy(delta int32, source Source) error

	// ChangeBy applies delta, saturating at the bounds
	ChangeBy(delta int32, source Source)
}

// Change is a delta that was applied to a pool
type Change struct {
	Amount int32  `json:"amount"`
	Source Source `json:"source"`
}
