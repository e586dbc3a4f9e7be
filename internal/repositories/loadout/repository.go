// Package loadout provides persistence for entity loadouts
package loadout

//go:generate mockgen -destination=mock/mock_repository.go -package=loadoutmock github.com/KirkDiggler/rpg-abilities/internal/repositories/loadout Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-abilities/internal/entities/equipment"
)

// Repository defines the interface for loadout persistence
type Repository interface {
	// Get retrieves the loadout for an entity
	// Returns errors.InvalidArgument for an empty entity ID
	// Returns errors.NotFound if no loadout is stored
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update stores the loadout for an entity, creating it if needed
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes the loadout for an entity
	// Returns errors.InvalidArgument for an empty entity ID
	// Returns errors.NotFound if no loadout is stored
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// GetInput defines the input for getting a loadout
type GetInput struct {
	EntityID string
}

// GetOutput defines the output for getting a loadout
type GetOutput struct {
	EntityID  string
	Loadout   *equipment.Loadout
	UpdatedAt time.Time
}

// UpdateInput defines the input for storing a loadout
type UpdateInput struct {
	EntityID string
	Loadout  *equipment.Loadout
}

// UpdateOutput defines the output for storing a loadout
type UpdateOutput struct {
	EntityID  string
	Loadout   *equipment.Loadout
	UpdatedAt time.Time
}

// DeleteInput defines the input for deleting a loadout
type DeleteInput struct {
	EntityID string
}

// DeleteOutput defines the output for deleting a loadout
type DeleteOutput struct{}
