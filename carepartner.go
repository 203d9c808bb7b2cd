// Package carepartner provides a high-level façade over the session store,
// query engine and export capability behind a single-turn medical-advice
// assistant. Most applications interact with this package by:
//  1. Creating a CarePartner via New() (optionally overriding the model,
//     exporter or logger)
//  2. Submitting free-text queries with Submit
//  3. Rendering the session via Snapshot / Subscribe
//  4. Exporting individual reports as downloadable PDF artifacts
//
// The façade delegates orchestration to engine.Engine while keeping setup
// ergonomics concise. Defaults target the Gemini REST backend with the
// credential taken from the process environment; nothing persists across
// sessions.
package carepartner

import (
	"context"

	"github.com/curewell/carepartner/artifact"
	"github.com/curewell/carepartner/core"
	"github.com/curewell/carepartner/engine"
	"github.com/curewell/carepartner/export"
	"github.com/curewell/carepartner/logging"
	"github.com/curewell/carepartner/model"
	"github.com/curewell/carepartner/model/gemini"
	"github.com/curewell/carepartner/session"
)

// Options configures the CarePartner instance.
type Options struct {
	// Model is the generation backend. Defaults to the Gemini adapter
	// configured from GEMINI_API_KEY.
	Model model.Model

	// Exporter renders reports into downloadable artifacts. Defaults to the
	// PDF exporter.
	Exporter core.Exporter

	// GenerationConfig bounds every request. Defaults to the fixed
	// medical-advice parameters.
	GenerationConfig model.GenerationConfig

	// SafetySettings are the fixed content-safety thresholds. Defaults to
	// blocking all four harm categories at medium severity and above.
	SafetySettings []model.SafetySetting

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// CarePartner aggregates one session's store, engine and export services.
type CarePartner struct {
	sessionID string
	store     *session.Store
	engine    *engine.Engine
	exporter  core.Exporter
	artifacts *artifact.InMemoryStore
}

// New creates a CarePartner for a fresh session with optional overrides.
func New(optFns ...func(o *Options)) *CarePartner {
	opts := Options{
		Model:            gemini.NewModel(),
		Exporter:         export.NewPDFExporter(),
		GenerationConfig: model.DefaultGenerationConfig(),
		SafetySettings:   model.DefaultSafetySettings(),
		Logger:           logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	store := session.NewStore()
	eng := engine.New(store, opts.Model, func(o *engine.Options) {
		o.Config = opts.GenerationConfig
		o.SafetySettings = opts.SafetySettings
		o.Logger = opts.Logger
	})

	return &CarePartner{
		sessionID: core.NewID(),
		store:     store,
		engine:    eng,
		exporter:  opts.Exporter,
		artifacts: artifact.NewInMemoryStore(),
	}
}

// SessionID returns the identifier of this session.
func (c *CarePartner) SessionID() string { return c.sessionID }

// Submit runs one user query through the engine pipeline. See engine.Engine.Submit.
func (c *CarePartner) Submit(ctx context.Context, rawText string) (*core.Report, error) {
	return c.engine.Submit(ctx, rawText)
}

// Snapshot returns the ordered session turns and current phase for rendering.
func (c *CarePartner) Snapshot() core.Snapshot { return c.store.Snapshot() }

// Subscribe returns a channel signalled after every session mutation.
func (c *CarePartner) Subscribe() <-chan struct{} { return c.store.Subscribe() }

// ExportReport renders the report as a downloadable artifact and caches it
// for later retrieval by report id.
func (c *CarePartner) ExportReport(r core.Report) (core.Artifact, error) {
	a, err := c.exporter.Export(r)
	if err != nil {
		return core.Artifact{}, err
	}
	if err := c.artifacts.Save(r.ID, a); err != nil {
		return core.Artifact{}, err
	}
	return a, nil
}

// Artifact returns a previously exported artifact or artifact.ErrNotFound.
func (c *CarePartner) Artifact(reportID string) (core.Artifact, error) {
	return c.artifacts.Get(reportID)
}
