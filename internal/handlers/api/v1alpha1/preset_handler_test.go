package v1alpha1_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pvmv1alpha1 "github.com/KirkDiggler/pvm-hub/internal/api/v1alpha1"
	"github.com/KirkDiggler/pvm-hub/internal/entities/gear"
	"github.com/KirkDiggler/pvm-hub/internal/equipment"
	"github.com/KirkDiggler/pvm-hub/internal/errors"
	"github.com/KirkDiggler/pvm-hub/internal/handlers/api/v1alpha1"
	"github.com/KirkDiggler/pvm-hub/internal/orchestrators/preset"
	presetmock "github.com/KirkDiggler/pvm-hub/internal/orchestrators/preset/mock"
	"github.com/KirkDiggler/pvm-hub/internal/stats"
	"github.com/KirkDiggler/pvm-hub/internal/testutils"
)

type PresetHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockPresets *presetmock.MockService
	handler     *v1alpha1.PresetHandler
	ctx         context.Context
}

func TestPresetHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PresetHandlerTestSuite))
}

func (s *PresetHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockPresets = presetmock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	var err error
	s.handler, err = v1alpha1.NewPresetHandler(&v1alpha1.PresetHandlerConfig{PresetService: s.mockPresets})
	s.Require().NoError(err)
}

func (s *PresetHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *PresetHandlerTestSuite) TestGetPreset() {
	saved := testutils.MeleePreset()
	saved.ID = "preset_1"
	summary := stats.ForBuild(saved)

	s.mockPresets.EXPECT().
		GetPreset(s.ctx, &preset.GetPresetInput{PresetID: "preset_1"}).
		Return(&preset.GetPresetOutput{Preset: saved, Stats: summary}, nil)

	resp, err := s.handler.GetPreset(s.ctx, &pvmv1alpha1.GetPresetRequest{PresetID: "preset_1"})
	s.Require().NoError(err)
	s.Equal(saved, resp.Preset)
	s.Equal(summary, resp.Stats)
}

func (s *PresetHandlerTestSuite) TestGetPresetErrors() {
	_, err := s.handler.GetPreset(s.ctx, &pvmv1alpha1.GetPresetRequest{})
	s.Equal(codes.InvalidArgument, status.Code(err))

	s.mockPresets.EXPECT().
		GetPreset(s.ctx, gomock.Any()).
		Return(nil, errors.NotFound("preset not found"))

	_, err = s.handler.GetPreset(s.ctx, &pvmv1alpha1.GetPresetRequest{PresetID: "preset_404"})
	s.Equal(codes.NotFound, status.Code(err))
}

func (s *PresetHandlerTestSuite) TestSavePresetValidationError() {
	s.mockPresets.EXPECT().
		SavePreset(s.ctx, gomock.Any()).
		Return(nil, errors.NewValidationBuilder().RequiredField("name").Build())

	_, err := s.handler.SavePreset(s.ctx, &pvmv1alpha1.SavePresetRequest{Preset: equipment.NewBuild()})
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *PresetHandlerTestSuite) TestSavePreset() {
	build := testutils.MeleePreset()
	s.mockPresets.EXPECT().
		SavePreset(s.ctx, &preset.SavePresetInput{Preset: build}).
		DoAndReturn(func(_ context.Context, input *preset.SavePresetInput) (*preset.SavePresetOutput, error) {
			saved := input.Preset
			saved.ID = "preset_1"
			return &preset.SavePresetOutput{Preset: saved, Created: true}, nil
		})

	resp, err := s.handler.SavePreset(s.ctx, &pvmv1alpha1.SavePresetRequest{Preset: build})
	s.Require().NoError(err)
	s.True(resp.Created)
	s.Equal("preset_1", resp.Preset.ID)
}

func (s *PresetHandlerTestSuite) TestDeletePresetPassesConfirmation() {
	s.mockPresets.EXPECT().
		DeletePreset(s.ctx, &preset.DeletePresetInput{PresetID: "preset_1"}).
		Return(nil, errors.FailedPrecondition("delete must be confirmed"))

	_, err := s.handler.DeletePreset(s.ctx, &pvmv1alpha1.DeletePresetRequest{PresetID: "preset_1"})
	s.Equal(codes.FailedPrecondition, status.Code(err))

	s.mockPresets.EXPECT().
		DeletePreset(s.ctx, &preset.DeletePresetInput{PresetID: "preset_1", Confirmed: true}).
		Return(&preset.DeletePresetOutput{}, nil)

	_, err = s.handler.DeletePreset(s.ctx, &pvmv1alpha1.DeletePresetRequest{PresetID: "preset_1", Confirmed: true})
	s.NoError(err)
}

func (s *PresetHandlerTestSuite) TestEquipItem() {
	helm := testutils.Item("masterwork_helm")
	build := equipment.NewBuild().SetSlot(gear.SlotHead, &helm)

	s.mockPresets.EXPECT().
		EquipItem(s.ctx, &preset.EquipItemInput{
			Build:  equipment.NewBuild(),
			Slot:   gear.SlotHead,
			ItemID: helm.ID,
		}).
		Return(&preset.EquipItemOutput{Build: build, Stats: stats.ForBuild(build)}, nil)

	resp, err := s.handler.EquipItem(s.ctx, &pvmv1alpha1.EquipItemRequest{
		Build:  equipment.NewBuild(),
		Slot:   gear.SlotHead,
		ItemID: helm.ID,
	})
	s.Require().NoError(err)
	s.Equal(65, resp.Stats.TotalArmour)

	_, err = s.handler.EquipItem(s.ctx, &pvmv1alpha1.EquipItemRequest{ItemID: helm.ID})
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *PresetHandlerTestSuite) TestSetInventoryItemOutOfRange() {
	s.mockPresets.EXPECT().
		SetInventoryItem(s.ctx, gomock.Any()).
		Return(nil, errors.IndexOutOfRange(28, equipment.InventorySize))

	_, err := s.handler.SetInventoryItem(s.ctx, &pvmv1alpha1.SetInventoryItemRequest{Index: 28, ItemID: "rocktail"})
	s.Equal(codes.OutOfRange, status.Code(err))
}

func (s *PresetHandlerTestSuite) TestListPresets() {
	s.mockPresets.EXPECT().
		ListPresets(s.ctx, &preset.ListPresetsInput{}).
		Return(&preset.ListPresetsOutput{Presets: []equipment.Build{testutils.MeleePreset()}}, nil)

	resp, err := s.handler.ListPresets(s.ctx, &pvmv1alpha1.ListPresetsRequest{})
	s.Require().NoError(err)
	s.Len(resp.Presets, 1)
}
