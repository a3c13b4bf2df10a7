// Package draft is the client for the text generation service that writes
// boss guide drafts
package draft

//go:generate mockgen -destination=mock/mock_generator.go -package=draftmock github.com/KirkDiggler/pvm-hub/internal/clients/draft Generator

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/KirkDiggler/pvm-hub/internal/errors"
)

const (
	DefaultBaseURL         = "https://generativelanguage.googleapis.com/"
	DefaultModel           = "gemini-3-flash-preview"
	DefaultTemperature     = 0.7
	DefaultMaxOutputTokens = 1500
	DefaultTimeout         = 60 * time.Second

	// DefaultStyle is the tone used when the caller does not pick one
	DefaultStyle = "detailed and beginner-friendly"

	// MsgEmptyResponse is the failure reason when the service answers with no text
	MsgEmptyResponse = "The AI response was empty."
	// MsgNotConfigured is the failure reason when no API key is set
	MsgNotConfigured = "Gemini API key is not configured."
)

// Finish reasons that end a draft normally. Anything else stopped it early.
const (
	FinishStop      = string(genai.FinishReasonStop)
	FinishMaxTokens = string(genai.FinishReasonMaxTokens)
)

// Generator produces markdown guide drafts
type Generator interface {
	// Generate writes a draft for one boss
	// Returns errors.FailedPrecondition when the client has no API key
	// Returns errors.Unavailable when the service cannot be reached or fails
	// Returns errors.Internal when the service answers without text
	Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error)
}

// GenerateInput defines the input for generating a draft
type GenerateInput struct {
	BossName string
	// Style is the requested tone, e.g. "casual". Empty uses DefaultStyle.
	Style string
}

// GenerateOutput defines the output for generating a draft
type GenerateOutput struct {
	Text string
	// FinishReason is reported by the service, e.g. "STOP", "MAX_TOKENS" or "SAFETY"
	FinishReason string
}

// Config configures the Gemini client
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	// Temperature nil uses DefaultTemperature; zero is a valid setting
	Temperature     *float64
	MaxOutputTokens int
	// Timeout bounds each request
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Validate sets defaults and checks ranges
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Temperature == nil {
		cfg.Temperature = genai.Ptr(float64(DefaultTemperature))
	}
	if cfg.MaxOutputTokens == 0 {
		cfg.MaxOutputTokens = DefaultMaxOutputTokens
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	vb := errors.NewValidationBuilder()
	if *cfg.Temperature < 0 || *cfg.Temperature > 2 {
		vb.Field("Temperature", "must be between 0 and 2")
	}
	if cfg.MaxOutputTokens < 0 {
		vb.Field("MaxOutputTokens", "must not be negative")
	}
	if cfg.Timeout < 0 {
		vb.Field("Timeout", "must not be negative")
	}
	return vb.Build()
}

type client struct {
	// models is nil when no API key is configured
	models          *genai.Models
	model           string
	temperature     float32
	maxOutputTokens int32
}

// New creates a Gemini-backed Generator. A missing API key is allowed; every
// call then fails with errors.FailedPrecondition.
func New(cfg *Config) (Generator, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid draft client config")
	}

	c := &client{
		model:           cfg.Model,
		temperature:     float32(*cfg.Temperature),
		maxOutputTokens: int32(cfg.MaxOutputTokens),
	}
	if cfg.APIKey == "" {
		return c, nil
	}

	timeout := cfg.Timeout
	gc, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.HTTPClient,
		HTTPOptions: genai.HTTPOptions{
			BaseURL: cfg.BaseURL,
			Timeout: &timeout,
		},
	})
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to create gemini client")
	}
	c.models = gc.Models

	return c, nil
}

// BuildPrompt returns the instruction sent for a boss
func BuildPrompt(bossName, style string) string {
	if strings.TrimSpace(style) == "" {
		style = DefaultStyle
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Generate a PvM guide draft for the RuneScape boss %q.\n", bossName)
	b.WriteString("Include sections like:\n")
	for _, section := range []string{
		"Introduction/Overview",
		"Recommended Gear (general tiers/styles, not specific items)",
		"Recommended Inventory (general types of items like food, potions)",
		"Key Mechanics/Strategy",
		"Example Rotation (basic ability usage)",
		"Tips for Beginners",
	} {
		fmt.Fprintf(&b, "- %s\n", section)
	}
	fmt.Fprintf(&b, "\nAdopt a %s tone. The guide should be comprehensive but concise, "+
		"using markdown for formatting (e.g., headings, bullet points).", style)
	return b.String()
}

// Generate calls models.generateContent for one prompt
func (c *client) Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error) {
	if input == nil || strings.TrimSpace(input.BossName) == "" {
		return nil, errors.InvalidArgument("boss name is required")
	}
	if c.models == nil {
		return nil, errors.FailedPrecondition(MsgNotConfigured)
	}

	start := time.Now()
	resp, err := c.models.GenerateContent(ctx, c.model,
		genai.Text(BuildPrompt(input.BossName, input.Style)),
		&genai.GenerateContentConfig{
			Temperature:     genai.Ptr(c.temperature),
			MaxOutputTokens: c.maxOutputTokens,
		},
	)
	if err != nil {
		return nil, c.serviceError(ctx, err)
	}

	out := &GenerateOutput{Text: resp.Text()}
	if len(resp.Candidates) > 0 {
		out.FinishReason = string(resp.Candidates[0].FinishReason)
	}

	slog.InfoContext(ctx, "Draft generated",
		"boss", input.BossName,
		"model", c.model,
		"finish_reason", out.FinishReason,
		"chars", len(out.Text),
		"duration", time.Since(start),
	)

	if strings.TrimSpace(out.Text) == "" {
		e := errors.Internal(MsgEmptyResponse)
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			e = e.WithMeta("block_reason", string(resp.PromptFeedback.BlockReason))
		}
		if out.FinishReason != "" {
			e = e.WithMeta("finish_reason", out.FinishReason)
		}
		return nil, e
	}

	return out, nil
}

func (c *client) serviceError(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return errors.FromContext(ctx.Err(), "draft generation abandoned")
	}

	var apiErr genai.APIError
	if !stderrors.As(err, &apiErr) {
		if stderrors.Is(err, context.DeadlineExceeded) {
			return errors.WrapWithCode(err, errors.CodeDeadlineExceeded, "draft service timed out")
		}
		return errors.WrapWithCode(err, errors.CodeUnavailable, "draft service unreachable")
	}

	message := apiErr.Message
	if message == "" {
		message = http.StatusText(apiErr.Code)
	}

	code := errors.CodeUnavailable
	switch apiErr.Code {
	case http.StatusBadRequest:
		code = errors.CodeInvalidArgument
	case http.StatusUnauthorized, http.StatusForbidden:
		code = errors.CodeFailedPrecondition
	case http.StatusNotFound:
		code = errors.CodeNotFound
	case http.StatusTooManyRequests:
		code = errors.CodeResourceExhausted
	}

	return errors.WrapWithCodef(err, code, "draft service returned %d: %s", apiErr.Code, message).
		WithMeta("http_status", apiErr.Code).
		WithMeta("status", apiErr.Status)
}
