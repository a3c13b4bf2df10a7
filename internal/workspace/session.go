// Package workspace holds the editing state of one preset or simulator
// workspace: the build being edited, the open item selector and its search box.
//
// A Session is owned by a single client connection. Every state change is
// reported through the OnEvent callback.
package workspace

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/pvm-hub/internal/catalog"
	"github.com/KirkDiggler/pvm-hub/internal/entities/gear"
	"github.com/KirkDiggler/pvm-hub/internal/equipment"
	"github.com/KirkDiggler/pvm-hub/internal/errors"
	"github.com/KirkDiggler/pvm-hub/internal/orchestrators/preset"
	"github.com/KirkDiggler/pvm-hub/internal/search"
	"github.com/KirkDiggler/pvm-hub/internal/stats"
)

// Mode selects which workspace a session backs
type Mode string

const (
	// ModePreset edits gear and inventory and can load and save presets
	ModePreset Mode = "preset"
	// ModeSimulator edits gear only and is never persisted
	ModeSimulator Mode = "simulator"
)

// Modes lists the valid modes
var Modes = []string{string(ModePreset), string(ModeSimulator)}

// Target is what an open selector will change: an equip slot, or an
// inventory cell when Slot is gear.SlotInventory.
type Target struct {
	Slot  gear.Slot `json:"slot"`
	Index int       `json:"index,omitempty"`
}

// SlotTarget targets an equip slot
func SlotTarget(slot gear.Slot) Target {
	return Target{Slot: slot}
}

// CellTarget targets an inventory cell
func CellTarget(index int) Target {
	return Target{Slot: gear.SlotInventory, Index: index}
}

// IsInventory reports whether t is an inventory cell
func (t Target) IsInventory() bool {
	return t.Slot == gear.SlotInventory
}

// EventType names a session event
type EventType string

const (
	EventBuild         EventType = "build"
	EventSelector      EventType = "selector"
	EventSearchResults EventType = "search_results"
	EventSaved         EventType = "saved"
)

// Event reports a change. Search result events carry only Target and Results.
type Event struct {
	Type  EventType
	Build equipment.Build
	Stats stats.Summary
	// Target is the open selector, nil when none is open
	Target  *Target
	Results *search.Result
}

// Config holds the dependencies for a session
type Config struct {
	Mode    Mode
	Catalog catalog.Catalog
	// Presets is required in ModePreset
	Presets     preset.Service
	QuietPeriod time.Duration
	OnEvent     func(Event)
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateEnum("Mode", string(c.Mode), Modes, vb)
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Mode == ModePreset && c.Presets == nil {
		vb.RequiredField("Presets")
	}
	if c.QuietPeriod < 0 {
		vb.Field("QuietPeriod", "must not be negative")
	}

	return vb.Build()
}

// Session is one workspace's editing state. It is safe for concurrent use.
type Session struct {
	mode    Mode
	catalog catalog.Catalog
	presets preset.Service
	quiet   time.Duration
	onEvent func(Event)

	mu     sync.Mutex
	ctx    context.Context
	build  equipment.Build
	target *Target
	box    *search.Box
	// selectorGen changes whenever a selector opens or closes
	selectorGen uint64
	closed      bool

	resultsMu sync.Mutex
	results   map[string]gear.Item

	emitMu sync.Mutex
}

// NewSession creates a session with an empty build. Searches run under ctx;
// cancelling it stops them.
func NewSession(ctx context.Context, cfg *Config) (*Session, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Session{
		mode:    cfg.Mode,
		catalog: cfg.Catalog,
		presets: cfg.Presets,
		quiet:   cfg.QuietPeriod,
		onEvent: cfg.OnEvent,
		ctx:     ctx,
		build:   equipment.NewBuild(),
		results: map[string]gear.Item{},
	}, nil
}

// Mode returns the session's mode
func (s *Session) Mode() Mode {
	return s.mode
}

// Build returns a copy of the build being edited
func (s *Session) Build() equipment.Build {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.build.Clone()
}

// Stats returns the combat stats of the build being edited
func (s *Session) Stats() stats.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return stats.ForBuild(s.build)
}

// Target returns the open selector's target
func (s *Session) Target() (Target, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.target == nil {
		return Target{}, false
	}
	return *s.target, true
}

// OpenSelector opens an item selector for target, replacing any open one.
// Slot targets search that slot; inventory targets search carry-only items.
func (s *Session) OpenSelector(target Target) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkOpenLocked(); err != nil {
		return err
	}
	if err := s.validateTarget(target); err != nil {
		return err
	}

	s.closeSelectorLocked()

	t := target
	box, err := search.NewBox(s.ctx, &search.Config{
		Catalog:     s.catalog,
		QuietPeriod: s.quiet,
		Slot:        target.Slot,
		OnResult: func(r search.Result) {
			s.storeResults(r.Items)
			s.emit(Event{Type: EventSearchResults, Target: &t, Results: &r})
		},
	})
	if err != nil {
		return errors.Wrap(err, "failed to open selector")
	}

	s.box = box
	s.target = &t
	s.selectorGen++
	s.emitStateLocked(EventSelector)
	return nil
}

// Search records a keystroke in the open selector
func (s *Session) Search(query string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkSelectorLocked(); err != nil {
		return err
	}
	s.box.SetQuery(query)
	return nil
}

// RetrySearch reruns the open selector's query immediately
func (s *Session) RetrySearch() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkSelectorLocked(); err != nil {
		return err
	}
	s.box.Retry()
	return nil
}

// SelectItem puts an item into the selector's target and closes the selector.
// Items from the latest results are used as delivered; any other id is looked
// up in the catalog.
func (s *Session) SelectItem(ctx context.Context, itemID string) error {
	if itemID == "" {
		return errors.InvalidArgument("item ID is required")
	}

	s.mu.Lock()
	if err := s.checkSelectorLocked(); err != nil {
		s.mu.Unlock()
		return err
	}
	gen := s.selectorGen
	s.mu.Unlock()

	item, ok := s.cachedResult(itemID)
	if !ok {
		resolved, err := catalog.Resolve(ctx, s.catalog, itemID)
		if err != nil {
			return err
		}
		item = *resolved
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkSelectorLocked(); err != nil {
		return err
	}
	if s.selectorGen != gen {
		return errors.New(errors.CodeAborted, "selector changed while the item was being looked up")
	}

	if err := s.applyLocked(&item); err != nil {
		return err
	}
	s.closeSelectorLocked()
	s.emitStateLocked(EventBuild)
	return nil
}

// ClearTarget empties the selector's target and closes the selector
func (s *Session) ClearTarget() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkSelectorLocked(); err != nil {
		return err
	}
	if err := s.applyLocked(nil); err != nil {
		return err
	}
	s.closeSelectorLocked()
	s.emitStateLocked(EventBuild)
	return nil
}

// CloseSelector closes the open selector without changing the build
func (s *Session) CloseSelector() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.target == nil {
		return
	}
	s.closeSelectorLocked()
	s.emitStateLocked(EventSelector)
}

// SetDetails updates the build's name and description
func (s *Session) SetDetails(name, description string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkPresetModeLocked(); err != nil {
		return err
	}
	s.build.Name = name
	s.build.Description = description
	s.emitStateLocked(EventBuild)
	return nil
}

// LoadPreset replaces the build with a saved preset
func (s *Session) LoadPreset(ctx context.Context, presetID string) error {
	s.mu.Lock()
	if err := s.checkPresetModeLocked(); err != nil {
		s.mu.Unlock()
		return err
	}
	s.mu.Unlock()

	out, err := s.presets.GetPreset(ctx, &preset.GetPresetInput{PresetID: presetID})
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkOpenLocked(); err != nil {
		return err
	}
	s.closeSelectorLocked()
	s.build = out.Preset.Clone()
	s.emitStateLocked(EventBuild)
	return nil
}

// SavePreset saves the build under name and description, then resets the
// editor. On failure the build keeps the new details and nothing is reset.
func (s *Session) SavePreset(ctx context.Context, name, description string) (equipment.Build, error) {
	s.mu.Lock()
	if err := s.checkPresetModeLocked(); err != nil {
		s.mu.Unlock()
		return equipment.Build{}, err
	}
	s.build.Name = name
	s.build.Description = description
	snapshot := s.build.Clone()
	s.mu.Unlock()

	out, err := s.presets.SavePreset(ctx, &preset.SavePresetInput{Preset: snapshot})
	if err != nil {
		return equipment.Build{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return out.Preset, nil
	}
	s.emit(Event{
		Type:  EventSaved,
		Build: out.Preset.Clone(),
		Stats: stats.ForBuild(out.Preset),
	})
	s.resetLocked()
	slog.DebugContext(ctx, "Workspace reset after save", "preset_id", out.Preset.ID)
	return out.Preset, nil
}

// DeletePreset deletes a saved preset. Deleting the preset being edited also
// resets the editor.
func (s *Session) DeletePreset(ctx context.Context, presetID string, confirmed bool) error {
	s.mu.Lock()
	if err := s.checkPresetModeLocked(); err != nil {
		s.mu.Unlock()
		return err
	}
	s.mu.Unlock()

	_, err := s.presets.DeletePreset(ctx, &preset.DeletePresetInput{
		PresetID:  presetID,
		Confirmed: confirmed,
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed && s.build.ID == presetID {
		s.resetLocked()
	}
	return nil
}

// Reset returns to an empty build with blank details
func (s *Session) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkOpenLocked(); err != nil {
		return err
	}
	s.resetLocked()
	return nil
}

// Close tears the session down. Pending searches are cancelled and no events
// are delivered afterwards. It is safe to call more than once.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closeSelectorLocked()
	s.closed = true
}

func (s *Session) validateTarget(target Target) error {
	if target.IsInventory() {
		if s.mode != ModePreset {
			return errors.InvalidArgument("the simulator has no inventory")
		}
		if target.Index < 0 || target.Index >= equipment.InventorySize {
			return errors.IndexOutOfRange(target.Index, equipment.InventorySize)
		}
		return nil
	}
	if !target.Slot.Equippable() {
		return errors.InvalidArgumentf("%q is not an equip slot", target.Slot)
	}
	return nil
}

func (s *Session) applyLocked(item *gear.Item) error {
	t := *s.target
	if t.IsInventory() {
		build, err := s.build.SetInventoryCell(t.Index, item)
		if err != nil {
			return err
		}
		s.build = build
		return nil
	}
	s.build = s.build.SetSlot(t.Slot, item)
	return nil
}

func (s *Session) resetLocked() {
	s.closeSelectorLocked()
	s.build = equipment.NewBuild()
	s.emitStateLocked(EventBuild)
}

// closeSelectorLocked closes the box before dropping its results so no
// callback can repopulate them.
func (s *Session) closeSelectorLocked() {
	if s.box != nil {
		s.box.Close()
		s.box = nil
	}
	if s.target != nil {
		s.target = nil
		s.selectorGen++
	}
	s.storeResults(nil)
}

func (s *Session) checkOpenLocked() error {
	if s.closed {
		return errors.FailedPrecondition("session is closed")
	}
	return nil
}

func (s *Session) checkSelectorLocked() error {
	if err := s.checkOpenLocked(); err != nil {
		return err
	}
	if s.target == nil || s.box == nil {
		return errors.FailedPrecondition("no item selector is open")
	}
	return nil
}

func (s *Session) checkPresetModeLocked() error {
	if err := s.checkOpenLocked(); err != nil {
		return err
	}
	if s.mode != ModePreset {
		return errors.FailedPreconditionf("%s workspace has no presets", s.mode)
	}
	return nil
}

func (s *Session) storeResults(items []gear.Item) {
	s.resultsMu.Lock()
	defer s.resultsMu.Unlock()

	s.results = make(map[string]gear.Item, len(items))
	for _, item := range items {
		s.results[item.ID] = item
	}
}

func (s *Session) cachedResult(id string) (gear.Item, bool) {
	s.resultsMu.Lock()
	defer s.resultsMu.Unlock()

	item, ok := s.results[strings.TrimSpace(id)]
	return item, ok
}

func (s *Session) emitStateLocked(kind EventType) {
	ev := Event{
		Type:  kind,
		Build: s.build.Clone(),
		Stats: stats.ForBuild(s.build),
	}
	if s.target != nil {
		t := *s.target
		ev.Target = &t
	}
	s.emit(ev)
}

func (s *Session) emit(ev Event) {
	if s.onEvent == nil {
		return
	}
	s.emitMu.Lock()
	defer s.emitMu.Unlock()
	s.onEvent(ev)
}
