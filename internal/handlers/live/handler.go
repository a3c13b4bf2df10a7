// Package live serves the workspace editor over a websocket. Each connection
// owns one workspace session; the server pushes every state change as an event.
package live

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/KirkDiggler/pvm-hub/internal/catalog"
	"github.com/KirkDiggler/pvm-hub/internal/errors"
	"github.com/KirkDiggler/pvm-hub/internal/orchestrators/preset"
	"github.com/KirkDiggler/pvm-hub/internal/workspace"
)

// Path is where the handler is mounted
const Path = "/ws/workspace"

// HandlerConfig holds dependencies for the live handler
type HandlerConfig struct {
	Catalog       catalog.Catalog
	PresetService preset.Service
	QuietPeriod   time.Duration
	// CheckOrigin defaults to allowing every origin
	CheckOrigin func(r *http.Request) bool
}

// Validate ensures all required dependencies are provided
func (c *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.PresetService == nil {
		vb.RequiredField("PresetService")
	}
	if c.QuietPeriod < 0 {
		vb.Field("QuietPeriod", "must not be negative")
	}
	return vb.Build()
}

// Handler upgrades requests to websockets and runs a session per connection
type Handler struct {
	catalog  catalog.Catalog
	presets  preset.Service
	quiet    time.Duration
	upgrader websocket.Upgrader
}

// NewHandler creates a new live workspace handler
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	checkOrigin := cfg.CheckOrigin
	if checkOrigin == nil {
		checkOrigin = func(*http.Request) bool { return true }
	}

	return &Handler{
		catalog: cfg.Catalog,
		presets: cfg.PresetService,
		quiet:   cfg.QuietPeriod,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     checkOrigin,
		},
	}, nil
}

// ServeHTTP runs one workspace connection until the client goes away
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	mode := workspace.Mode(r.URL.Query().Get("mode"))
	if mode == "" {
		mode = workspace.ModePreset
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("mode", string(mode), workspace.Modes, vb)
	if err := vb.Build(); err != nil {
		http.Error(w, errors.GetMessage(err), errors.GetCode(err).HTTPStatus())
		return
	}

	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("Websocket upgrade failed", "error", err)
		return
	}

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	c := newConn(ws)
	go c.writePump()
	defer c.close()

	session, err := workspace.NewSession(ctx, &workspace.Config{
		Mode:        mode,
		Catalog:     h.catalog,
		Presets:     h.presets,
		QuietPeriod: h.quiet,
		OnEvent: func(ev workspace.Event) {
			msg, err := eventMessage(ev)
			if err != nil {
				slog.Error("Failed to encode workspace event", "type", ev.Type, "error", err)
				return
			}
			c.enqueue(msg)
		},
	})
	if err != nil {
		c.enqueue(errorMessage("", err))
		return
	}
	defer session.Close()

	slog.InfoContext(ctx, "Workspace connected", "mode", mode, "remote", ws.RemoteAddr().String())

	hello, err := newMessage(EventBuild, StatePayload{Build: session.Build(), Stats: session.Stats()})
	if err == nil {
		c.enqueue(hello)
	}

	// requests that wait on the catalog or preset storage get their own
	// goroutine so the read loop keeps serving the selector and search box
	var inflight sync.WaitGroup

	c.configureRead()
	for {
		data, err := c.readFrame()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.DebugContext(ctx, "Websocket read failed", "error", err)
			}
			break
		}

		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			c.enqueue(errorMessage("", errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed message")))
			continue
		}
		if suspends(msg.Type) {
			inflight.Add(1)
			go func() {
				defer inflight.Done()
				if err := h.dispatch(ctx, session, msg); err != nil {
					c.enqueue(errorMessage(msg.Type, err))
				}
			}()
			continue
		}
		if err := h.dispatch(ctx, session, msg); err != nil {
			c.enqueue(errorMessage(msg.Type, err))
		}
	}

	cancel()
	inflight.Wait()

	slog.InfoContext(ctx, "Workspace disconnected", "mode", mode)
}

// suspends reports whether a request may wait on I/O
func suspends(kind MessageType) bool {
	switch kind {
	case MessageSelectItem, MessageLoadPreset, MessageSavePreset, MessageDeletePreset:
		return true
	}
	return false
}

// dispatch applies one client request to the session. State changes come back
// through the session's events; only failures are answered directly.
func (h *Handler) dispatch(ctx context.Context, session *workspace.Session, msg Message) error {
	switch msg.Type {
	case MessageOpenSelector:
		var p OpenSelectorPayload
		if err := decodePayload(msg, &p); err != nil {
			return err
		}
		return session.OpenSelector(workspace.Target{Slot: p.Slot, Index: p.Index})

	case MessageSearch:
		var p SearchPayload
		if err := decodePayload(msg, &p); err != nil {
			return err
		}
		return session.Search(p.Query)

	case MessageRetrySearch:
		return session.RetrySearch()

	case MessageSelectItem:
		var p SelectItemPayload
		if err := decodePayload(msg, &p); err != nil {
			return err
		}
		return session.SelectItem(ctx, p.ItemID)

	case MessageClearTarget:
		return session.ClearTarget()

	case MessageCloseSelector:
		session.CloseSelector()
		return nil

	case MessageSetDetails:
		var p DetailsPayload
		if err := decodePayload(msg, &p); err != nil {
			return err
		}
		return session.SetDetails(p.Name, p.Description)

	case MessageLoadPreset:
		var p PresetPayload
		if err := decodePayload(msg, &p); err != nil {
			return err
		}
		return session.LoadPreset(ctx, p.PresetID)

	case MessageSavePreset:
		var p DetailsPayload
		if err := decodePayload(msg, &p); err != nil {
			return err
		}
		_, err := session.SavePreset(ctx, p.Name, p.Description)
		return err

	case MessageDeletePreset:
		var p PresetPayload
		if err := decodePayload(msg, &p); err != nil {
			return err
		}
		return session.DeletePreset(ctx, p.PresetID, p.Confirmed)

	case MessageReset:
		return session.Reset()

	default:
		return errors.InvalidArgumentf("unknown message type %q", msg.Type)
	}
}
