// Package artifact provides an in-process cache for exported report
// artifacts keyed by report identifier, so a report rendered once can be
// downloaded again without re-exporting.
package artifact
