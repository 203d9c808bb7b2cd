package engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/curewell/carepartner/core"
	"github.com/curewell/carepartner/logging"
	"github.com/curewell/carepartner/model"
)

// userFacingErrorMessage is the generic message recorded in the error phase.
// Failure causes are logged but not surfaced to the user in detail.
const userFacingErrorMessage = "Failed to process your request"

// Options configures an Engine instance using the functional options pattern.
type Options struct {
	// Config contains the fixed generation parameters applied to every request.
	// Defaults to model.DefaultGenerationConfig if not specified.
	Config model.GenerationConfig

	// SafetySettings contains the fixed content-safety thresholds applied to
	// every request. Defaults to model.DefaultSafetySettings.
	SafetySettings []model.SafetySetting

	// Prompt is the behavioral policy prefix. Defaults to PolicyPrompt.
	Prompt string

	// Logger provides structured logging. Defaults to NoOpLogger if nil.
	Logger logging.Logger
}

// Engine drives the request/response pipeline for single user queries
// against a session store and a model. It performs exactly one network call
// per Submit and never retries.
type Engine struct {
	store core.SessionStore
	model model.Model
	opts  Options
}

// New creates an Engine bound to a store and model with optional overrides.
func New(store core.SessionStore, m model.Model, optFns ...func(o *Options)) *Engine {
	opts := Options{
		Config:         model.DefaultGenerationConfig(),
		SafetySettings: model.DefaultSafetySettings(),
		Prompt:         PolicyPrompt,
		Logger:         logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Engine{store: store, model: m, opts: opts}
}

// Submit runs one query through the full pipeline:
//
//  1. Precondition checks: non-blank text, configured credential, no request
//     already in flight. Failures return before any store or network side
//     effect.
//  2. Commit the user turn and enter the pending phase (clearing any prior
//     error).
//  3. Compose the bounded request (policy prefix + query, fixed generation
//     parameters and safety thresholds) and dispatch it exactly once.
//  4. Validate and normalize the response, synthesize a report, append it and
//     return to idle.
//
// On any failure after dispatch the phase becomes an error with a generic
// message; the user turn stays in the log with no paired report. The returned
// report is also owned by the session log and must not be mutated.
func (e *Engine) Submit(ctx context.Context, rawText string) (*core.Report, error) {
	if strings.TrimSpace(rawText) == "" {
		return nil, &core.PreconditionError{Reason: "query text is blank"}
	}
	if !e.model.Info().Configured {
		return nil, &core.PreconditionError{Reason: "model access credential is missing"}
	}
	if e.store.Phase().Kind == core.PhasePending {
		return nil, core.ErrRequestInFlight
	}

	invocationID := core.NewID()
	if err := e.store.AppendUserTurn(rawText); err != nil {
		return nil, err
	}
	if err := e.store.SetPhase(core.Pending()); err != nil {
		return nil, err
	}

	info := e.model.Info()
	e.opts.Logger.Info("query submitted",
		"invocation_id", invocationID, "provider", info.Provider, "model", info.Name)

	req := model.Request{
		Prompt:         fmt.Sprintf("%s\n\nUser: %s\n\nAssistant:", e.opts.Prompt, rawText),
		Config:         e.opts.Config,
		SafetySettings: e.opts.SafetySettings,
	}

	start := time.Now()
	resp, err := e.model.Generate(ctx, req)
	if err != nil {
		return nil, e.fail(invocationID, err)
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return nil, e.fail(invocationID, fmt.Errorf("response text is blank"))
	}

	report := core.Report{
		ID:        core.NewReportID(),
		Query:     rawText,
		Response:  text,
		CreatedAt: time.Now(),
	}
	e.store.AppendReportTurn(report)
	_ = e.store.SetPhase(core.Idle())

	e.opts.Logger.Info("report synthesized",
		"invocation_id", invocationID, "report_id", report.ID, "duration", time.Since(start))
	return &report, nil
}

// fail records the error phase and wraps the cause as a ResponseError. The
// already committed user turn is intentionally left in the log.
func (e *Engine) fail(invocationID string, cause error) error {
	e.opts.Logger.Error("model call failed", "invocation_id", invocationID, "error", cause.Error())
	_ = e.store.SetPhase(core.Errored(userFacingErrorMessage))
	return &core.ResponseError{Err: cause}
}
