package live

import (
	"encoding/json"

	"github.com/KirkDiggler/pvm-hub/internal/entities/gear"
	"github.com/KirkDiggler/pvm-hub/internal/equipment"
	"github.com/KirkDiggler/pvm-hub/internal/errors"
	"github.com/KirkDiggler/pvm-hub/internal/stats"
	"github.com/KirkDiggler/pvm-hub/internal/workspace"
)

// MessageType names a client request or a pushed event
type MessageType string

// Client requests
const (
	MessageOpenSelector  MessageType = "open_selector"
	MessageSearch        MessageType = "search"
	MessageRetrySearch   MessageType = "retry_search"
	MessageSelectItem    MessageType = "select_item"
	MessageClearTarget   MessageType = "clear_target"
	MessageCloseSelector MessageType = "close_selector"
	MessageSetDetails    MessageType = "set_details"
	MessageLoadPreset    MessageType = "load_preset"
	MessageSavePreset    MessageType = "save_preset"
	MessageDeletePreset  MessageType = "delete_preset"
	MessageReset         MessageType = "reset"
)

// Pushed events
const (
	EventBuild         MessageType = "build"
	EventSelector      MessageType = "selector"
	EventSearchResults MessageType = "search_results"
	EventSaved         MessageType = "saved"
	EventError         MessageType = "error"
)

// Message is the envelope of every frame in both directions
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// OpenSelectorPayload opens a selector on an equip slot or inventory cell
type OpenSelectorPayload struct {
	Slot  gear.Slot `json:"slot"`
	Index int       `json:"index,omitempty"`
}

type SearchPayload struct {
	Query string `json:"query"`
}

type SelectItemPayload struct {
	ItemID string `json:"itemId"`
}

type DetailsPayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type PresetPayload struct {
	PresetID  string `json:"presetId"`
	Confirmed bool   `json:"confirmed,omitempty"`
}

// StatePayload carries the build for build, selector and saved events
type StatePayload struct {
	Build  equipment.Build   `json:"build"`
	Stats  stats.Summary     `json:"stats"`
	Target *workspace.Target `json:"target,omitempty"`
}

// SearchResultsPayload is one search outcome. A failed search has no items and
// a retryable error message.
type SearchResultsPayload struct {
	Target    *workspace.Target `json:"target,omitempty"`
	Seq       uint64            `json:"seq"`
	Query     string            `json:"query"`
	Items     []gear.Item       `json:"items"`
	Error     string            `json:"error,omitempty"`
	Retryable bool              `json:"retryable,omitempty"`
}

// ErrorPayload reports a request that failed
type ErrorPayload struct {
	Request MessageType `json:"request,omitempty"`
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
	// Fields holds per-field validation failures
	Fields map[string][]string `json:"fields,omitempty"`
}

func newMessage(kind MessageType, payload any) (Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Message{}, errors.WrapWithCode(err, errors.CodeInternal, "failed to encode payload")
	}
	return Message{Type: kind, Payload: data}, nil
}

func decodePayload(msg Message, v any) error {
	if len(msg.Payload) == 0 {
		return errors.InvalidArgumentf("%s requires a payload", msg.Type)
	}
	if err := json.Unmarshal(msg.Payload, v); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed payload")
	}
	return nil
}

// eventMessage converts a session event into its wire form
func eventMessage(ev workspace.Event) (Message, error) {
	switch ev.Type {
	case workspace.EventSearchResults:
		r := ev.Results
		payload := SearchResultsPayload{
			Target: ev.Target,
			Seq:    r.Seq,
			Query:  r.Query,
			Items:  r.Items,
		}
		if r.Failed() {
			payload.Items = []gear.Item{}
			payload.Error = errors.MsgCatalogRetry
			payload.Retryable = true
		}
		return newMessage(EventSearchResults, payload)
	case workspace.EventBuild, workspace.EventSelector, workspace.EventSaved:
		return newMessage(MessageType(ev.Type), StatePayload{
			Build:  ev.Build,
			Stats:  ev.Stats,
			Target: ev.Target,
		})
	default:
		return Message{}, errors.Internalf("unknown event type %q", ev.Type)
	}
}

func errorMessage(request MessageType, err error) Message {
	payload := ErrorPayload{
		Request: request,
		Code:    errors.GetCode(err),
		Message: errors.GetMessage(err),
	}
	if fields, ok := errors.ValidationFields(err); ok {
		payload.Fields = fields
	}

	msg, encodeErr := newMessage(EventError, payload)
	if encodeErr != nil {
		return Message{Type: EventError}
	}
	return msg
}
