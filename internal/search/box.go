// Package search runs debounced, cancellable catalog searches for a single
// search box.
//
// A Box accepts keystrokes through SetQuery. Each change restarts a quiet
// period; when it elapses the catalog is queried. A newer keystroke cancels both
// the pending timer and any request already in flight, and results that arrive
// for an older generation are dropped. After Close nothing is delivered.
package search

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/pvm-hub/internal/catalog"
	"github.com/KirkDiggler/pvm-hub/internal/entities/gear"
	"github.com/KirkDiggler/pvm-hub/internal/errors"
)

// DefaultQuietPeriod is the pause after the last keystroke before a search runs
const DefaultQuietPeriod = 300 * time.Millisecond

// Result is one delivered search outcome
type Result struct {
	// Seq is the generation this result answers. It increases with every change.
	Seq   uint64
	Query string
	Slot  gear.Slot
	Items []gear.Item
	// Err is set when the catalog failed. Items is empty in that case.
	Err error
}

// Failed reports whether the search failed
func (r Result) Failed() bool {
	return r.Err != nil
}

// Config holds the dependencies for a search box
type Config struct {
	Catalog     catalog.Catalog
	QuietPeriod time.Duration
	// Slot is the initial filter. Empty searches every slot.
	Slot gear.Slot
	// OnResult receives every current result. It is called with the box's lock
	// held and must not call back into the box.
	OnResult func(Result)
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.OnResult == nil {
		vb.RequiredField("OnResult")
	}
	if c.QuietPeriod < 0 {
		vb.Field("QuietPeriod", "must not be negative")
	}
	if c.Slot != "" && !c.Slot.Valid() {
		vb.InvalidField("Slot", string(c.Slot))
	}

	return vb.Build()
}

// Box is a debounced search over the catalog. It is safe for concurrent use.
type Box struct {
	catalog  catalog.Catalog
	quiet    time.Duration
	onResult func(Result)

	mu       sync.Mutex
	ctx      context.Context
	stop     context.CancelFunc
	query    string
	slot     gear.Slot
	seq      uint64
	timer    *time.Timer
	inflight context.CancelFunc
	closed   bool
}

// NewBox creates a search box. Cancelling ctx has the same effect as Close.
func NewBox(ctx context.Context, cfg *Config) (*Box, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	quiet := cfg.QuietPeriod
	if quiet == 0 {
		quiet = DefaultQuietPeriod
	}

	boxCtx, stop := context.WithCancel(ctx)
	return &Box{
		catalog:  cfg.Catalog,
		quiet:    quiet,
		onResult: cfg.OnResult,
		ctx:      boxCtx,
		stop:     stop,
		slot:     cfg.Slot,
	}, nil
}

// Query returns the current query text
func (b *Box) Query() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.query
}

// Slot returns the current slot filter
func (b *Box) Slot() gear.Slot {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.slot
}

// SetQuery records a keystroke. A blank query delivers an empty result at once
// without touching the catalog.
func (b *Box) SetQuery(query string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.query = query
	b.restartLocked(b.quiet)
}

// SetFilter changes the slot filter and reruns the current query
func (b *Box) SetFilter(slot gear.Slot) error {
	if slot != "" && !slot.Valid() {
		return errors.InvalidArgumentf("unknown slot filter %q", slot)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return errors.FailedPrecondition("search box is closed")
	}
	b.slot = slot
	b.restartLocked(b.quiet)
	return nil
}

// Retry reruns the current query without waiting for the quiet period
func (b *Box) Retry() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.restartLocked(0)
}

// Close cancels any pending or running search. It is safe to call more than once.
func (b *Box) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	b.seq++
	b.cancelLocked()
	b.stop()
}

// Closed reports whether Close was called or the parent context ended
func (b *Box) Closed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.closed || b.ctx.Err() != nil
}

// restartLocked starts a new generation. Must be called with b.mu held.
func (b *Box) restartLocked(delay time.Duration) {
	b.seq++
	b.cancelLocked()
	if b.ctx.Err() != nil {
		return
	}

	seq := b.seq
	if strings.TrimSpace(b.query) == "" {
		b.onResult(Result{Seq: seq, Query: b.query, Slot: b.slot, Items: []gear.Item{}})
		return
	}

	b.timer = time.AfterFunc(delay, func() { b.run(seq) })
}

func (b *Box) cancelLocked() {
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	if b.inflight != nil {
		b.inflight()
		b.inflight = nil
	}
}

func (b *Box) run(seq uint64) {
	b.mu.Lock()
	if !b.currentLocked(seq) {
		b.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(b.ctx)
	b.inflight = cancel
	b.timer = nil
	input := catalog.SearchInput{Query: b.query, Slot: b.slot}
	b.mu.Unlock()

	defer cancel()
	out, err := b.catalog.Search(ctx, input)

	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.currentLocked(seq) || ctx.Err() != nil {
		slog.Debug("Discarding stale search result", "seq", seq, "query", input.Query)
		return
	}
	b.inflight = nil

	result := Result{Seq: seq, Query: input.Query, Slot: input.Slot, Items: []gear.Item{}}
	if err != nil {
		slog.Warn("Search failed", "query", input.Query, "slot", input.Slot, "error", err)
		result.Err = err
	} else {
		result.Items = out.Items
	}
	b.onResult(result)
}

func (b *Box) currentLocked(seq uint64) bool {
	return !b.closed && seq == b.seq && b.ctx.Err() == nil
}
