// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/pvm-hub/internal/catalog"
	catalogmock "github.com/KirkDiggler/pvm-hub/internal/catalog/mock"
	"github.com/KirkDiggler/pvm-hub/internal/entities/gear"
	"github.com/KirkDiggler/pvm-hub/internal/equipment"
	"github.com/KirkDiggler/pvm-hub/internal/errors"
	"github.com/KirkDiggler/pvm-hub/internal/repositories/presets"
	presetsmock "github.com/KirkDiggler/pvm-hub/internal/repositories/presets/mock"
)

// ExpectItemGet sets up a catalog lookup that returns item
func ExpectItemGet(ctx context.Context, mockCatalog *catalogmock.MockCatalog, item gear.Item) *gomock.Call {
	return mockCatalog.EXPECT().
		Get(ctx, catalog.GetInput{ID: item.ID}).
		Return(&catalog.GetOutput{Item: item}, nil)
}

// ExpectItemMissing sets up a catalog lookup that finds nothing
func ExpectItemMissing(ctx context.Context, mockCatalog *catalogmock.MockCatalog, id string) *gomock.Call {
	return mockCatalog.EXPECT().
		Get(ctx, catalog.GetInput{ID: id}).
		Return(nil, errors.NotFoundf("item %s not found", id))
}

// ExpectSearch sets up one catalog search
func ExpectSearch(
	ctx any, mockCatalog *catalogmock.MockCatalog, input catalog.SearchInput, items []gear.Item,
) *gomock.Call {
	return mockCatalog.EXPECT().
		Search(ctx, input).
		Return(&catalog.SearchOutput{Items: items}, nil)
}

// ExpectPresetGet sets up a mock expectation for loading a preset
func ExpectPresetGet(
	ctx context.Context, mockRepo *presetsmock.MockRepository, preset equipment.Build, err error,
) *gomock.Call {
	if err != nil {
		return mockRepo.EXPECT().
			Get(ctx, presets.GetInput{ID: preset.ID}).
			Return(nil, err)
	}
	return mockRepo.EXPECT().
		Get(ctx, presets.GetInput{ID: preset.ID}).
		Return(&presets.GetOutput{Preset: preset}, nil)
}

// ExpectPresetSave sets up a save that assigns id to new presets and echoes the rest
func ExpectPresetSave(ctx context.Context, mockRepo *presetsmock.MockRepository, id string) *gomock.Call {
	return mockRepo.EXPECT().
		Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input presets.SaveInput) (*presets.SaveOutput, error) {
			saved := input.Preset
			created := saved.ID == ""
			if created {
				saved.ID = id
			}
			return &presets.SaveOutput{Preset: saved, Created: created}, nil
		})
}
