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
	"github.com/KirkDiggler/pvm-hub/internal/orchestrators/simulator"
	simulatormock "github.com/KirkDiggler/pvm-hub/internal/orchestrators/simulator/mock"
	"github.com/KirkDiggler/pvm-hub/internal/stats"
	"github.com/KirkDiggler/pvm-hub/internal/testutils"
)

type SimulatorHandlerTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockSimulator *simulatormock.MockService
	handler       *v1alpha1.SimulatorHandler
	ctx           context.Context
}

func TestSimulatorHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SimulatorHandlerTestSuite))
}

func (s *SimulatorHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockSimulator = simulatormock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	var err error
	s.handler, err = v1alpha1.NewSimulatorHandler(&v1alpha1.SimulatorHandlerConfig{SimulatorService: s.mockSimulator})
	s.Require().NoError(err)
}

func (s *SimulatorHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *SimulatorHandlerTestSuite) TestSimulate() {
	mace := testutils.Item("drygore_mains_longsword")
	g := equipment.Gear{gear.SlotWeapon: mace}
	loadout := map[gear.Slot]string{gear.SlotWeapon: mace.ID}

	s.mockSimulator.EXPECT().
		Simulate(s.ctx, &simulator.SimulateInput{Loadout: loadout}).
		Return(&simulator.SimulateOutput{Gear: g, Stats: stats.Aggregate(g)}, nil)

	resp, err := s.handler.Simulate(s.ctx, &pvmv1alpha1.SimulateRequest{Loadout: loadout})
	s.Require().NoError(err)
	s.Equal(65, resp.Stats.TotalStrength)
	s.Equal(130, resp.Stats.TotalAttack.Crush)
	s.Equal(g, resp.Gear)
}

func (s *SimulatorHandlerTestSuite) TestSimulateCatalogUnavailable() {
	s.mockSimulator.EXPECT().
		Simulate(s.ctx, gomock.Any()).
		Return(nil, errors.CatalogUnavailable(context.DeadlineExceeded))

	_, err := s.handler.Simulate(s.ctx, &pvmv1alpha1.SimulateRequest{})
	s.Equal(codes.Unavailable, status.Code(err))
}

func (s *SimulatorHandlerTestSuite) TestEquipItemRequiresSlot() {
	_, err := s.handler.EquipItem(s.ctx, &pvmv1alpha1.SimulatorEquipItemRequest{ItemID: "rocktail"})
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *SimulatorHandlerTestSuite) TestEquipItemClears() {
	s.mockSimulator.EXPECT().
		EquipItem(s.ctx, &simulator.EquipItemInput{Slot: gear.SlotWeapon}).
		Return(&simulator.EquipItemOutput{Gear: equipment.Gear{}}, nil)

	resp, err := s.handler.EquipItem(s.ctx, &pvmv1alpha1.SimulatorEquipItemRequest{Slot: gear.SlotWeapon})
	s.Require().NoError(err)
	s.Empty(resp.Gear)
	s.True(resp.Stats.IsZero())
}
