// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-abilities/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-abilities/internal/errors"
	"github.com/KirkDiggler/rpg-abilities/internal/repositories/loadout"
	loadoutmock "github.com/KirkDiggler/rpg-abilities/internal/repositories/loadout/mock"
)

// ExpectLoadoutGet sets up a mock expectation for reading a stored loadout
func ExpectLoadoutGet(
	ctx context.Context, mockRepo *loadoutmock.MockRepository,
	entityID string, l *equipment.Loadout, err error,
) *gomock.Call {
	if err != nil {
		return mockRepo.EXPECT().
			Get(ctx, loadout.GetInput{EntityID: entityID}).
			Return(nil, err)
	}
	return mockRepo.EXPECT().
		Get(ctx, loadout.GetInput{EntityID: entityID}).
		Return(&loadout.GetOutput{EntityID: entityID, Loadout: l}, nil)
}

// ExpectNoStoredLoadout sets up a mock expectation for an entity with nothing
// stored, the state of every first registration
func ExpectNoStoredLoadout(ctx context.Context, mockRepo *loadoutmock.MockRepository, entityID string) *gomock.Call {
	return ExpectLoadoutGet(ctx, mockRepo, entityID, nil,
		errors.NotFoundf("loadout for entity %s not found", entityID))
}

// ExpectLoadoutUpdate sets up a mock expectation for storing any loadout for
// the entity. The stored loadout is echoed back.
func ExpectLoadoutUpdate(ctx context.Context, mockRepo *loadoutmock.MockRepository, entityID string) *gomock.Call {
	return mockRepo.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input loadout.UpdateInput) (*loadout.UpdateOutput, error) {
			if input.EntityID != entityID {
				return nil, errors.InvalidArgumentf("unexpected entity %s", input.EntityID)
			}
			return &loadout.UpdateOutput{EntityID: input.EntityID, Loadout: input.Loadout}, nil
		})
}

// ExpectLoadoutUpdateError sets up a mock expectation for a failed store
func ExpectLoadoutUpdateError(ctx context.Context, mockRepo *loadoutmock.MockRepository, err error) *gomock.Call {
	return mockRepo.EXPECT().
		Update(ctx, gomock.Any()).
		Return(nil, err)
}
