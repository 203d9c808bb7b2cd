package core

import (
	"strings"
	"testing"
)

func TestNewReportID_Format(t *testing.T) {
	id := NewReportID()
	if len(id) != reportIDLength {
		t.Fatalf("expected %d characters, got %d (%q)", reportIDLength, len(id), id)
	}
	for _, r := range id {
		if !strings.ContainsRune(reportIDAlphabet, r) {
			t.Fatalf("character %q outside alphabet in %q", r, id)
		}
	}
}

func TestNewReportID_Distinct(t *testing.T) {
	const n = 2000
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		id := NewReportID()
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate report id after %d mints: %s", i, id)
		}
		seen[id] = struct{}{}
	}
}
