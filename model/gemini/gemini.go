// Package gemini implements model.Model against the Google Generative
// Language REST API (generateContent). The adapter performs exactly one HTTP
// call per Generate invocation with no retry; transport failures and
// structurally invalid responses both surface as errors.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/curewell/carepartner/model"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-1.0-pro"
)

// EnvAPIKey is the environment variable the adapter reads its credential from.
const EnvAPIKey = "GEMINI_API_KEY"

// Options configure the Gemini model adapter. BaseURL and HTTPClient exist
// primarily for tests against a local server.
type Options struct {
	Model      string
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

// Model wraps the Generative Language generateContent endpoint behind the
// generic model.Model interface.
type Model struct {
	client *http.Client
	opts   Options
}

// NewModel creates a new Gemini model. The API key defaults to the
// GEMINI_API_KEY environment variable; a missing key does not fail here but
// is reported via Info().Configured so callers can refuse to dispatch.
func NewModel(optFns ...func(o *Options)) *Model {
	opts := Options{
		Model:   defaultModel,
		APIKey:  os.Getenv(EnvAPIKey),
		BaseURL: defaultBaseURL,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	client := opts.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	return &Model{client: client, opts: opts}
}

// Wire types for the generateContent request/response bodies.
type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
	SafetySettings   []safetySetting  `json:"safetySettings,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type safetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content *candidateContent `json:"content"`
}

type candidateContent struct {
	Parts []part `json:"parts"`
}

// Generate implements model.Model. It composes the wire request, performs a
// single POST and validates that the response carries extractable candidate
// text. Any deviation (transport failure, non-2xx status, empty candidate
// list, missing text field) is returned as an error.
func (m *Model) Generate(ctx context.Context, req model.Request) (model.Response, error) {
	body := generateRequest{
		Contents: []content{{Parts: []part{{Text: req.Prompt}}}},
		GenerationConfig: generationConfig{
			Temperature:     req.Config.Temperature,
			TopK:            req.Config.TopK,
			TopP:            req.Config.TopP,
			MaxOutputTokens: req.Config.MaxOutputTokens,
		},
		SafetySettings: buildSafetySettings(req.SafetySettings),
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return model.Response{}, fmt.Errorf("gemini encode request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		strings.TrimSuffix(m.opts.BaseURL, "/"), m.opts.Model, m.opts.APIKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return model.Response{}, fmt.Errorf("gemini build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(httpReq)
	if err != nil {
		return model.Response{}, fmt.Errorf("gemini request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused; the body is not trusted.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return model.Response{}, fmt.Errorf("gemini api status %d", resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return model.Response{}, fmt.Errorf("gemini decode response: %w", err)
	}

	text, ok := extractText(out)
	if !ok {
		return model.Response{}, fmt.Errorf("gemini response missing candidate text")
	}
	return model.Response{Text: text}, nil
}

// buildSafetySettings converts normalized settings to the wire shape.
func buildSafetySettings(settings []model.SafetySetting) []safetySetting {
	if len(settings) == 0 {
		return nil
	}
	out := make([]safetySetting, len(settings))
	for i, s := range settings {
		out[i] = safetySetting{Category: s.Category, Threshold: s.Threshold}
	}
	return out
}

// extractText returns candidates[0].content.parts[0].text if present.
func extractText(r generateResponse) (string, bool) {
	if len(r.Candidates) == 0 {
		return "", false
	}
	c := r.Candidates[0]
	if c.Content == nil || len(c.Content.Parts) == 0 {
		return "", false
	}
	if c.Content.Parts[0].Text == "" {
		return "", false
	}
	return c.Content.Parts[0].Text, true
}

// Info returns metadata describing this Gemini model implementation.
func (m *Model) Info() model.Info {
	return model.Info{
		Name:       m.opts.Model,
		Provider:   "gemini",
		Configured: m.opts.APIKey != "",
	}
}
