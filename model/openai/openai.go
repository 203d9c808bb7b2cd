// Package openai provides an implementation of model.Model using the OpenAI
// Chat Completions API. It adapts the normalized single-turn Request into the
// SDK's message format. Safety thresholds have no Chat Completions
// equivalent and are not forwarded; OpenAI applies its own moderation.
package openai

import (
	"context"
	"fmt"
	"os"

	"github.com/openai/openai-go"

	"github.com/curewell/carepartner/model"
)

// EnvAPIKey is the environment variable the SDK reads its credential from.
const EnvAPIKey = "OPENAI_API_KEY"

// Options configure the OpenAI model adapter. Fields mirror a subset of Chat
// Completion parameters intentionally kept minimal.
type Options struct {
	Model openai.ChatModel
}

// Model wraps the OpenAI Chat Completions API behind the generic model.Model interface.
type Model struct {
	client     *openai.Client
	opts       Options
	configured bool
}

// NewModel creates a new OpenAI model using the official client.
func NewModel(optFns ...func(o *Options)) *Model {
	client := openai.NewClient()
	m := NewModelFromClient(&client, optFns...)
	m.configured = os.Getenv(EnvAPIKey) != ""
	return m
}

// NewModelFromClient creates a new OpenAI model from an existing client. The
// caller is assumed to have supplied a credential to the client.
func NewModelFromClient(client *openai.Client, optFns ...func(o *Options)) *Model {
	opts := Options{
		Model: openai.ChatModelGPT4oMini,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Model{client: client, opts: opts, configured: true}
}

// Generate implements model.Model with a single non-streaming completion.
// TopK is not supported by the Chat Completions API and is ignored.
func (m *Model) Generate(ctx context.Context, req model.Request) (model.Response, error) {
	params := openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(req.Prompt),
		},
		Model:               m.opts.Model,
		Temperature:         openai.Float(req.Config.Temperature),
		TopP:                openai.Float(req.Config.TopP),
		MaxCompletionTokens: openai.Int(int64(req.Config.MaxOutputTokens)),
	}

	resp, err := m.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return model.Response{}, fmt.Errorf("openai api error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return model.Response{}, fmt.Errorf("no choices returned")
	}
	if resp.Choices[0].Message.Content == "" {
		return model.Response{}, fmt.Errorf("choice contains no text content")
	}
	return model.Response{Text: resp.Choices[0].Message.Content}, nil
}

// Info returns metadata describing this OpenAI model implementation.
func (m *Model) Info() model.Info {
	return model.Info{
		Name:       string(m.opts.Model),
		Provider:   "openai",
		Configured: m.configured,
	}
}
