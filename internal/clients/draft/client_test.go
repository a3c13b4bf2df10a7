package draft_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"google.golang.org/genai"

	"github.com/KirkDiggler/pvm-hub/internal/clients/draft"
	"github.com/KirkDiggler/pvm-hub/internal/errors"
)

type capturedRequest struct {
	Path   string
	APIKey string
	Body   map[string]any
}

type ClientTestSuite struct {
	suite.Suite
	server   *httptest.Server
	handler  http.HandlerFunc
	captured capturedRequest
	client   draft.Generator
	ctx      context.Context
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.captured = capturedRequest{}
	s.handler = s.respondWith(http.StatusOK, `{"candidates":[{"content":{"parts":[{"text":"## Overview\n"},{"text":"Bring food."}]},"finishReason":"STOP"}]}`)

	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.captured.Path = r.URL.Path
		s.captured.APIKey = r.Header.Get("x-goog-api-key")
		_ = json.NewDecoder(r.Body).Decode(&s.captured.Body)
		s.handler(w, r)
	}))

	var err error
	s.client, err = draft.New(&draft.Config{
		APIKey:  "test-key",
		BaseURL: s.server.URL,
		Model:   "test-model",
	})
	s.Require().NoError(err)
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *ClientTestSuite) respondWith(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func (s *ClientTestSuite) TestGenerateJoinsCandidateParts() {
	out, err := s.client.Generate(s.ctx, &draft.GenerateInput{BossName: "Telos"})
	s.Require().NoError(err)
	s.Equal("## Overview\nBring food.", out.Text)
	s.Equal("STOP", out.FinishReason)
}

func (s *ClientTestSuite) TestGenerateSendsModelKeyAndParameters() {
	_, err := s.client.Generate(s.ctx, &draft.GenerateInput{BossName: "Telos", Style: "casual"})
	s.Require().NoError(err)

	s.Equal("/v1beta/models/test-model:generateContent", s.captured.Path)
	s.Equal("test-key", s.captured.APIKey)

	cfg, ok := s.captured.Body["generationConfig"].(map[string]any)
	s.Require().True(ok)
	s.InDelta(0.7, cfg["temperature"], 0.0001)
	s.InDelta(1500, cfg["maxOutputTokens"], 0.0001)

	contents := s.captured.Body["contents"].([]any)
	parts := contents[0].(map[string]any)["parts"].([]any)
	prompt := parts[0].(map[string]any)["text"].(string)
	s.Contains(prompt, `"Telos"`)
	s.Contains(prompt, "Adopt a casual tone.")
}

func (s *ClientTestSuite) TestGenerateWithoutKeyFailsWithoutCallingService() {
	client, err := draft.New(&draft.Config{BaseURL: s.server.URL})
	s.Require().NoError(err)

	_, err = client.Generate(s.ctx, &draft.GenerateInput{BossName: "Telos"})
	s.True(errors.IsFailedPrecondition(err))
	s.Equal(draft.MsgNotConfigured, errors.GetMessage(err))
	s.Empty(s.captured.Path)
}

func (s *ClientTestSuite) TestGenerateRequiresBoss() {
	_, err := s.client.Generate(s.ctx, &draft.GenerateInput{BossName: "  "})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.client.Generate(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ClientTestSuite) TestGenerateEmptyResponse() {
	s.handler = s.respondWith(http.StatusOK, `{"candidates":[{"content":{"parts":[]},"finishReason":"SAFETY"}]}`)

	_, err := s.client.Generate(s.ctx, &draft.GenerateInput{BossName: "Telos"})
	s.True(errors.IsInternal(err))
	s.Equal(draft.MsgEmptyResponse, errors.GetMessage(err))
	s.Equal("SAFETY", errors.GetMeta(err)["finish_reason"])
}

func (s *ClientTestSuite) TestGenerateBlockedPrompt() {
	s.handler = s.respondWith(http.StatusOK, `{"promptFeedback":{"blockReason":"OTHER"}}`)

	_, err := s.client.Generate(s.ctx, &draft.GenerateInput{BossName: "Telos"})
	s.Equal(draft.MsgEmptyResponse, errors.GetMessage(err))
	s.Equal("OTHER", errors.GetMeta(err)["block_reason"])
}

func (s *ClientTestSuite) TestGenerateStatusCodes() {
	testCases := []struct {
		name   string
		status int
		check  func(error) bool
	}{
		{name: "bad request", status: http.StatusBadRequest, check: errors.IsInvalidArgument},
		{name: "forbidden", status: http.StatusForbidden, check: errors.IsFailedPrecondition},
		{name: "unknown model", status: http.StatusNotFound, check: errors.IsNotFound},
		{name: "rate limited", status: http.StatusTooManyRequests, check: func(err error) bool {
			return errors.GetCode(err) == errors.CodeResourceExhausted
		}},
		{name: "server error", status: http.StatusInternalServerError, check: errors.IsUnavailable},
		{name: "overloaded", status: http.StatusServiceUnavailable, check: errors.IsUnavailable},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.handler = s.respondWith(tc.status,
				fmt.Sprintf(`{"error":{"code":%d,"message":"nope","status":"X"}}`, tc.status))

			_, err := s.client.Generate(s.ctx, &draft.GenerateInput{BossName: "Telos"})
			s.Require().Error(err)
			s.True(tc.check(err))
			s.Contains(err.Error(), "nope")
			s.Equal(tc.status, errors.GetMeta(err)["http_status"])
			s.Equal("X", errors.GetMeta(err)["status"])
		})
	}
}

func (s *ClientTestSuite) TestGenerateUnreachable() {
	client, err := draft.New(&draft.Config{APIKey: "k", BaseURL: "http://127.0.0.1:1"})
	s.Require().NoError(err)

	_, err = client.Generate(s.ctx, &draft.GenerateInput{BossName: "Telos"})
	s.True(errors.IsUnavailable(err))
}

func (s *ClientTestSuite) TestGenerateCanceled() {
	release := make(chan struct{})
	s.handler = func(w http.ResponseWriter, _ *http.Request) {
		<-release
	}
	defer close(release)

	ctx, cancel := context.WithTimeout(s.ctx, 50*time.Millisecond)
	defer cancel()

	_, err := s.client.Generate(ctx, &draft.GenerateInput{BossName: "Telos"})
	s.True(errors.IsDeadlineExceeded(err))
}

func (s *ClientTestSuite) TestConfigValidate() {
	cfg := &draft.Config{}
	s.Require().NoError(cfg.Validate())
	s.Equal(draft.DefaultBaseURL, cfg.BaseURL)
	s.Equal(draft.DefaultModel, cfg.Model)
	s.Require().NotNil(cfg.Temperature)
	s.InDelta(draft.DefaultTemperature, *cfg.Temperature, 0.0001)
	s.Equal(draft.DefaultMaxOutputTokens, cfg.MaxOutputTokens)
	s.Equal(draft.DefaultTimeout, cfg.Timeout)

	zero := &draft.Config{Temperature: genai.Ptr(0.0)}
	s.Require().NoError(zero.Validate())
	s.Zero(*zero.Temperature)

	bad := &draft.Config{Temperature: genai.Ptr(3.0)}
	s.True(errors.IsInvalidArgument(bad.Validate()))
}

func (s *ClientTestSuite) TestGenerateSendsZeroTemperature() {
	client, err := draft.New(&draft.Config{
		APIKey:      "test-key",
		BaseURL:     s.server.URL,
		Model:       "test-model",
		Temperature: genai.Ptr(0.0),
	})
	s.Require().NoError(err)

	_, err = client.Generate(s.ctx, &draft.GenerateInput{BossName: "Telos"})
	s.Require().NoError(err)

	cfg, ok := s.captured.Body["generationConfig"].(map[string]any)
	s.Require().True(ok)
	s.Contains(cfg, "temperature")
	s.InDelta(0, cfg["temperature"], 0.0001)
}

func (s *ClientTestSuite) TestGenerateReportsSafetyStopWithPartialText() {
	s.handler = s.respondWith(http.StatusOK,
		`{"candidates":[{"content":{"parts":[{"text":"## Overview\nThe boss"}]},"finishReason":"SAFETY"}]}`)

	out, err := s.client.Generate(s.ctx, &draft.GenerateInput{BossName: "Telos"})
	s.Require().NoError(err)
	s.Equal("## Overview\nThe boss", out.Text)
	s.Equal("SAFETY", out.FinishReason)
}

func (s *ClientTestSuite) TestBuildPrompt() {
	prompt := draft.BuildPrompt("Vorago", "")
	s.True(strings.HasPrefix(prompt, `Generate a PvM guide draft for the RuneScape boss "Vorago".`))
	s.Contains(prompt, "- Recommended Gear (general tiers/styles, not specific items)")
	s.Contains(prompt, "- Tips for Beginners")
	s.Contains(prompt, "Adopt a "+draft.DefaultStyle+" tone.")
}
