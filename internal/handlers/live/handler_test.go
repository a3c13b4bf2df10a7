package live_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/pvm-hub/internal/catalog"
	catalogmock "github.com/KirkDiggler/pvm-hub/internal/catalog/mock"
	"github.com/KirkDiggler/pvm-hub/internal/entities/gear"
	"github.com/KirkDiggler/pvm-hub/internal/equipment"
	"github.com/KirkDiggler/pvm-hub/internal/errors"
	"github.com/KirkDiggler/pvm-hub/internal/handlers/live"
	"github.com/KirkDiggler/pvm-hub/internal/orchestrators/preset"
	presetmock "github.com/KirkDiggler/pvm-hub/internal/orchestrators/preset/mock"
	"github.com/KirkDiggler/pvm-hub/internal/testutils"
)

const readTimeout = 2 * time.Second

type HandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockPresets *presetmock.MockService
	server      *httptest.Server
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockPresets = presetmock.NewMockService(s.ctrl)

	c, err := catalog.NewInMemory(nil)
	s.Require().NoError(err)
	s.serve(c)
}

func (s *HandlerTestSuite) TearDownTest() {
	s.server.Close()
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) serve(c catalog.Catalog) {
	if s.server != nil {
		s.server.Close()
	}
	h, err := live.NewHandler(&live.HandlerConfig{
		Catalog:       c,
		PresetService: s.mockPresets,
		QuietPeriod:   10 * time.Millisecond,
	})
	s.Require().NoError(err)
	s.server = httptest.NewServer(h)
}

func (s *HandlerTestSuite) dial(mode string) *websocket.Conn {
	url := "ws" + strings.TrimPrefix(s.server.URL, "http") + live.Path + "?mode=" + mode
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = ws.Close() })

	hello := s.next(ws, live.EventBuild)
	var state live.StatePayload
	s.Require().NoError(json.Unmarshal(hello.Payload, &state))
	s.True(state.Stats.IsZero())
	return ws
}

func (s *HandlerTestSuite) send(ws *websocket.Conn, kind live.MessageType, payload any) {
	msg := live.Message{Type: kind}
	if payload != nil {
		data, err := json.Marshal(payload)
		s.Require().NoError(err)
		msg.Payload = data
	}
	s.Require().NoError(ws.WriteJSON(msg))
}

// next reads until a message of the given type arrives
func (s *HandlerTestSuite) next(ws *websocket.Conn, kind live.MessageType) live.Message {
	s.Require().NoError(ws.SetReadDeadline(time.Now().Add(readTimeout)))
	for {
		var msg live.Message
		s.Require().NoError(ws.ReadJSON(&msg), "waiting for %s", kind)
		if msg.Type == kind {
			return msg
		}
	}
}

func (s *HandlerTestSuite) nextError(ws *websocket.Conn) live.ErrorPayload {
	var payload live.ErrorPayload
	s.Require().NoError(json.Unmarshal(s.next(ws, live.EventError).Payload, &payload))
	return payload
}

func (s *HandlerTestSuite) TestNewHandlerRequiresDependencies() {
	_, err := live.NewHandler(&live.HandlerConfig{PresetService: s.mockPresets})
	s.True(errors.IsInvalidArgument(err))

	_, err = live.NewHandler(&live.HandlerConfig{QuietPeriod: -time.Second})
	s.True(errors.IsInvalidArgument(err))
	fields, ok := errors.ValidationFields(err)
	s.Require().True(ok)
	s.Equal([]string{"is required"}, fields["Catalog"])
	s.Equal([]string{"is required"}, fields["PresetService"])
	s.Equal([]string{"must not be negative"}, fields["QuietPeriod"])

	_, err = live.NewHandler(nil)
	s.Error(err)
}

func (s *HandlerTestSuite) TestSlowLookupDoesNotBlockOtherRequests() {
	mockCatalog := catalogmock.NewMockCatalog(s.ctrl)
	s.serve(mockCatalog)
	ws := s.dial("preset")

	release := make(chan struct{})
	mace := testutils.Item("drygore_mains_longsword")
	mockCatalog.EXPECT().
		Get(gomock.Any(), catalog.GetInput{ID: mace.ID}).
		DoAndReturn(func(ctx context.Context, _ catalog.GetInput) (*catalog.GetOutput, error) {
			select {
			case <-release:
				return &catalog.GetOutput{Item: mace}, nil
			case <-ctx.Done():
				return nil, errors.FromContext(ctx.Err(), "lookup abandoned")
			}
		})

	s.send(ws, live.MessageOpenSelector, live.OpenSelectorPayload{Slot: gear.SlotWeapon})
	s.next(ws, live.EventSelector)

	// not in the latest results, so the catalog is asked
	s.send(ws, live.MessageSelectItem, live.SelectItemPayload{ItemID: mace.ID})
	s.Require().NoError(ws.WriteMessage(websocket.TextMessage, []byte(`{"type":"teleport"}`)))

	payload := s.nextError(ws)
	s.Equal(live.MessageType("teleport"), payload.Request)
	s.Equal(errors.CodeInvalidArgument, payload.Code)

	close(release)

	var state live.StatePayload
	s.Require().NoError(json.Unmarshal(s.next(ws, live.EventBuild).Payload, &state))
	s.Nil(state.Target)
	item, ok := state.Build.Item(gear.SlotWeapon)
	s.True(ok)
	s.Equal(mace.Name, item.Name)
}

func (s *HandlerTestSuite) TestRejectsUnknownMode() {
	url := "ws" + strings.TrimPrefix(s.server.URL, "http") + live.Path + "?mode=pvp"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	s.Require().Error(err)
	s.Require().NotNil(resp)
	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *HandlerTestSuite) TestSearchAndSelect() {
	ws := s.dial("preset")

	s.send(ws, live.MessageOpenSelector, live.OpenSelectorPayload{Slot: gear.SlotWeapon})
	s.next(ws, live.EventSelector)

	s.send(ws, live.MessageSearch, live.SearchPayload{Query: "drygore"})
	var results live.SearchResultsPayload
	s.Require().NoError(json.Unmarshal(s.next(ws, live.EventSearchResults).Payload, &results))
	s.Equal("drygore", results.Query)
	s.Require().Len(results.Items, 1)
	s.Equal("drygore_mains_longsword", results.Items[0].ID)
	s.Require().NotNil(results.Target)
	s.Equal(gear.SlotWeapon, results.Target.Slot)

	s.send(ws, live.MessageSelectItem, live.SelectItemPayload{ItemID: "drygore_mains_longsword"})
	var state live.StatePayload
	s.Require().NoError(json.Unmarshal(s.next(ws, live.EventBuild).Payload, &state))
	s.Nil(state.Target)
	s.Equal(65, state.Stats.TotalStrength)
	s.Equal(130, state.Stats.TotalAttack.Crush)

	item, ok := state.Build.Item(gear.SlotWeapon)
	s.True(ok)
	s.Equal("Drygore mace", item.Name)
}

func (s *HandlerTestSuite) TestInventoryCell() {
	ws := s.dial("preset")

	s.send(ws, live.MessageOpenSelector, live.OpenSelectorPayload{Slot: gear.SlotInventory, Index: 27})
	s.next(ws, live.EventSelector)

	s.send(ws, live.MessageSelectItem, live.SelectItemPayload{ItemID: "rocktail"})
	var state live.StatePayload
	s.Require().NoError(json.Unmarshal(s.next(ws, live.EventBuild).Payload, &state))
	s.Equal(1, state.Build.InventoryCount())
	s.True(state.Stats.IsZero())
}

func (s *HandlerTestSuite) TestSearchFailureOffersRetry() {
	mockCatalog := catalogmock.NewMockCatalog(s.ctrl)
	s.serve(mockCatalog)
	ws := s.dial("simulator")

	mace := testutils.Item("drygore_mains_longsword")
	mockCatalog.EXPECT().
		Search(gomock.Any(), catalog.SearchInput{Query: "dry", Slot: gear.SlotWeapon}).
		Return(nil, errors.CatalogUnavailable(context.DeadlineExceeded))
	mockCatalog.EXPECT().
		Search(gomock.Any(), catalog.SearchInput{Query: "dry", Slot: gear.SlotWeapon}).
		Return(&catalog.SearchOutput{Items: []gear.Item{mace}}, nil)

	s.send(ws, live.MessageOpenSelector, live.OpenSelectorPayload{Slot: gear.SlotWeapon})
	s.send(ws, live.MessageSearch, live.SearchPayload{Query: "dry"})

	var failed live.SearchResultsPayload
	s.Require().NoError(json.Unmarshal(s.next(ws, live.EventSearchResults).Payload, &failed))
	s.Equal(errors.MsgCatalogRetry, failed.Error)
	s.True(failed.Retryable)
	s.Empty(failed.Items)

	s.send(ws, live.MessageRetrySearch, nil)

	var retried live.SearchResultsPayload
	s.Require().NoError(json.Unmarshal(s.next(ws, live.EventSearchResults).Payload, &retried))
	s.Empty(retried.Error)
	s.Require().Len(retried.Items, 1)
	s.Greater(retried.Seq, failed.Seq)
}

func (s *HandlerTestSuite) TestSimulatorHasNoPresets() {
	ws := s.dial("simulator")

	s.send(ws, live.MessageLoadPreset, live.PresetPayload{PresetID: "preset_1"})
	payload := s.nextError(ws)
	s.Equal(live.MessageLoadPreset, payload.Request)
	s.Equal(errors.CodeFailedPrecondition, payload.Code)
}

func (s *HandlerTestSuite) TestLoadPreset() {
	saved := testutils.MeleePreset()
	saved.ID = "preset_1"
	s.mockPresets.EXPECT().
		GetPreset(gomock.Any(), &preset.GetPresetInput{PresetID: "preset_1"}).
		Return(&preset.GetPresetOutput{Preset: saved}, nil)

	ws := s.dial("preset")
	s.send(ws, live.MessageLoadPreset, live.PresetPayload{PresetID: "preset_1"})

	var state live.StatePayload
	s.Require().NoError(json.Unmarshal(s.next(ws, live.EventBuild).Payload, &state))
	s.Equal("preset_1", state.Build.ID)
	s.Equal(5, state.Build.InventoryCount())
	s.Equal(65+32+10, state.Stats.TotalStrength)
}

func (s *HandlerTestSuite) TestSavePresetResetsEditor() {
	s.mockPresets.EXPECT().
		SavePreset(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *preset.SavePresetInput) (*preset.SavePresetOutput, error) {
			saved := input.Preset
			saved.ID = "preset_1"
			return &preset.SavePresetOutput{Preset: saved, Created: true}, nil
		})

	ws := s.dial("preset")
	s.send(ws, live.MessageSavePreset, live.DetailsPayload{Name: "Telos melee", Description: "dw"})

	var saved live.StatePayload
	s.Require().NoError(json.Unmarshal(s.next(ws, live.EventSaved).Payload, &saved))
	s.Equal("preset_1", saved.Build.ID)
	s.Equal("Telos melee", saved.Build.Name)

	var reset live.StatePayload
	s.Require().NoError(json.Unmarshal(s.next(ws, live.EventBuild).Payload, &reset))
	s.Equal(equipment.NewBuild().Name, reset.Build.Name)
	s.Empty(reset.Build.ID)
}

func (s *HandlerTestSuite) TestSavePresetValidationFields() {
	s.mockPresets.EXPECT().
		SavePreset(gomock.Any(), gomock.Any()).
		Return(nil, errors.NewValidationBuilder().RequiredField("name").Build())

	ws := s.dial("preset")
	s.send(ws, live.MessageSavePreset, live.DetailsPayload{})

	payload := s.nextError(ws)
	s.Equal(errors.CodeInvalidArgument, payload.Code)
	s.Equal([]string{"is required"}, payload.Fields["name"])
}

func (s *HandlerTestSuite) TestBadRequests() {
	ws := s.dial("preset")

	testCases := []struct {
		name     string
		frame    string
		expected errors.Code
	}{
		{name: "malformed json", frame: `{"type":`, expected: errors.CodeInvalidArgument},
		{name: "unknown type", frame: `{"type":"teleport"}`, expected: errors.CodeInvalidArgument},
		{name: "missing payload", frame: `{"type":"search"}`, expected: errors.CodeInvalidArgument},
		{name: "no selector", frame: `{"type":"clear_target"}`, expected: errors.CodeFailedPrecondition},
		{
			name:     "cell out of range",
			frame:    `{"type":"open_selector","payload":{"slot":"Inventory","index":28}}`,
			expected: errors.CodeOutOfRange,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Require().NoError(ws.WriteMessage(websocket.TextMessage, []byte(tc.frame)))
			s.Equal(tc.expected, s.nextError(ws).Code)
		})
	}
}
