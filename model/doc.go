// Package model defines the normalized request/response structures and the
// Model interface used by the query engine to drive generation. Concrete
// provider adapters live in sub-packages (gemini, openai, anthropic) so the
// engine never needs per-provider branching.
package model
