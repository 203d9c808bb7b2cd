package model

import (
	"context"
	"fmt"
	"sync"
)

// GenerationConfig bounds a single generation call. Values map directly onto
// the Generative Language API; other providers apply the nearest equivalent.
type GenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

// DefaultGenerationConfig returns the fixed sampling parameters used for
// medical-advice queries: bounded output, moderate temperature.
func DefaultGenerationConfig() GenerationConfig {
	return GenerationConfig{
		Temperature:     0.7,
		TopK:            40,
		TopP:            0.95,
		MaxOutputTokens: 150,
	}
}

// Harm categories recognized by the content-safety filter.
const (
	HarmCategoryHarassment       = "HARM_CATEGORY_HARASSMENT"
	HarmCategoryHateSpeech       = "HARM_CATEGORY_HATE_SPEECH"
	HarmCategorySexuallyExplicit = "HARM_CATEGORY_SEXUALLY_EXPLICIT"
	HarmCategoryDangerousContent = "HARM_CATEGORY_DANGEROUS_CONTENT"
)

// HarmBlockMediumAndAbove blocks content rated medium severity or higher.
const HarmBlockMediumAndAbove = "BLOCK_MEDIUM_AND_ABOVE"

// SafetySetting pairs a harm category with a blocking threshold.
type SafetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

// DefaultSafetySettings returns the fixed filter set: all four harm
// categories blocked at medium severity and above.
func DefaultSafetySettings() []SafetySetting {
	categories := []string{
		HarmCategoryHarassment,
		HarmCategoryHateSpeech,
		HarmCategorySexuallyExplicit,
		HarmCategoryDangerousContent,
	}
	settings := make([]SafetySetting, len(categories))
	for i, c := range categories {
		settings[i] = SafetySetting{Category: c, Threshold: HarmBlockMediumAndAbove}
	}
	return settings
}

// Request captures the composed model input produced by the query engine:
// the bounded policy prefix already concatenated with the user text, plus
// fixed generation parameters and safety thresholds.
type Request struct {
	Prompt         string           `json:"prompt"`
	Config         GenerationConfig `json:"config"`
	SafetySettings []SafetySetting  `json:"safety_settings,omitempty"`
}

// Response is the validated result of a generation call. Text is the raw
// extracted candidate text; normalization (trimming) is the engine's job.
type Response struct {
	Text string `json:"text"`
}

// Info contains metadata about a model implementation. Configured reports
// whether the adapter holds the access credential it needs; the engine
// refuses to dispatch against an unconfigured model.
type Info struct {
	Name       string `json:"name"`
	Provider   string `json:"provider"` // "gemini", "openai", "anthropic", ...
	Configured bool   `json:"configured"`
}

// Model is the minimal interface required by the query engine to drive
// generation. Generate is invoked exactly once per submit; implementations
// must honor ctx cancellation at the transport level.
type Model interface {
	Generate(ctx context.Context, req Request) (Response, error)

	// Info returns information about the model implementation.
	Info() Info
}

// MockModel is a lightweight in-memory Model useful for tests & examples.
// It records every Generate call so tests can assert exact call counts.
type MockModel struct {
	mu        sync.Mutex
	info      Info
	responses map[string]string
	err       error
	calls     int
}

// NewMockModel constructs a configured MockModel with the given name.
func NewMockModel(name string) *MockModel {
	return &MockModel{
		info:      Info{Name: name, Provider: "mock", Configured: true},
		responses: make(map[string]string),
	}
}

// AddResponse registers a deterministic canned completion for an exact prompt.
func (m *MockModel) AddResponse(prompt, response string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[prompt] = response
}

// FailWith makes every subsequent Generate call return err.
func (m *MockModel) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// SetConfigured overrides the configured flag, simulating a missing credential.
func (m *MockModel) SetConfigured(configured bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.info.Configured = configured
}

// Calls returns how many times Generate has been invoked.
func (m *MockModel) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// Generate implements Model; returns the canned completion for the prompt or
// a deterministic fallback.
func (m *MockModel) Generate(ctx context.Context, req Request) (Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return Response{}, m.err
	}
	if err := ctx.Err(); err != nil {
		return Response{}, err
	}
	if text, ok := m.responses[req.Prompt]; ok {
		return Response{Text: text}, nil
	}
	return Response{Text: fmt.Sprintf("Mock response to: %s", req.Prompt)}, nil
}

// Info implements Model interface.
func (m *MockModel) Info() Info {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.info
}
