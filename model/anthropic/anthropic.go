// Package anthropic provides a model wrapper for the Anthropic Claude API.
// Safety thresholds have no Messages API equivalent and are not forwarded.
package anthropic

import (
	"context"
	"fmt"
	"os"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/curewell/carepartner/model"
)

// EnvAPIKey is the environment variable the SDK reads its credential from.
const EnvAPIKey = "ANTHROPIC_API_KEY"

// Options configure the Anthropic model adapter (model id, API key).
type Options struct {
	Model  anthropic.Model
	APIKey string
}

// Model wraps the Anthropic Messages API behind the generic model.Model interface.
type Model struct {
	client     *anthropic.Client
	opts       Options
	configured bool
}

// NewModel creates a new Anthropic model using the official client.
func NewModel(optFns ...func(o *Options)) *Model {
	opts := Options{
		Model:  anthropic.ModelClaude3_5Sonnet20241022,
		APIKey: os.Getenv(EnvAPIKey),
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	var clientOpts []option.RequestOption
	if opts.APIKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(opts.APIKey))
	}
	client := anthropic.NewClient(clientOpts...)

	return &Model{client: &client, opts: opts, configured: opts.APIKey != ""}
}

// NewModelFromClient creates a new Anthropic model from an existing client.
// The caller is assumed to have supplied a credential to the client.
func NewModelFromClient(client *anthropic.Client, optFns ...func(o *Options)) *Model {
	opts := Options{
		Model: anthropic.ModelClaude3_5Sonnet20241022,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Model{client: client, opts: opts, configured: true}
}

// Generate implements model.Model with a single non-streaming message call.
func (m *Model) Generate(ctx context.Context, req model.Request) (model.Response, error) {
	params := anthropic.MessageNewParams{
		Model: m.opts.Model,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
		MaxTokens:   int64(req.Config.MaxOutputTokens),
		Temperature: anthropic.Float(req.Config.Temperature),
		TopP:        anthropic.Float(req.Config.TopP),
		TopK:        anthropic.Int(int64(req.Config.TopK)),
	}

	resp, err := m.client.Messages.New(ctx, params)
	if err != nil {
		return model.Response{}, fmt.Errorf("anthropic api error: %w", err)
	}

	for _, block := range resp.Content {
		if block.Type == "text" {
			if text := block.AsText().Text; text != "" {
				return model.Response{Text: text}, nil
			}
		}
	}
	return model.Response{}, fmt.Errorf("response contains no text content")
}

// Info returns metadata describing this Anthropic model implementation.
func (m *Model) Info() model.Info {
	return model.Info{
		Name:       string(m.opts.Model),
		Provider:   "anthropic",
		Configured: m.configured,
	}
}
