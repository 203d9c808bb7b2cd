// Package export implements the core.Exporter contract: turning an immutable
// report into a downloadable single-page PDF artifact. Inline **bold** spans
// in the response are resolved to emphasized text and line breaks become
// paragraph breaks. Export is a pure read; the same report always renders to
// identical bytes.
package export
