package traversal

import "testing"

func TestFilterTruthTable(t *testing.T) {
	cases := map[string]struct {
		role            string
		hasText         bool
		collect         bool
		excluded        int
		nonInteractable int
		noText          int
	}{
		"group without text":  {"AXGroup", false, false, 1, 1, 1},
		"group with text":     {"AXGroup", true, true, 0, 0, 0},
		"button without text": {"AXButton", false, true, 0, 0, 0},
		"button with text":    {"AXButton", true, true, 0, 0, 0},
		"static text empty":   {"AXStaticText", false, false, 1, 1, 1},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			stats := newCollector()
			f := &filterPolicy{stats: stats}
			if got := f.shouldCollect(tc.role, tc.hasText, true); got != tc.collect {
				t.Fatalf("shouldCollect = %v, want %v", got, tc.collect)
			}
			if stats.stats.ExcludedCount != tc.excluded {
				t.Fatalf("excluded_count = %d, want %d", stats.stats.ExcludedCount, tc.excluded)
			}
			if stats.stats.ExcludedNonInteractable != tc.nonInteractable {
				t.Fatalf("excluded_non_interactable = %d, want %d", stats.stats.ExcludedNonInteractable, tc.nonInteractable)
			}
			if stats.stats.ExcludedNoText != tc.noText {
				t.Fatalf("excluded_no_text = %d, want %d", stats.stats.ExcludedNoText, tc.noText)
			}
		})
	}
}

func TestFilterVisibleOnlyExclusion(t *testing.T) {
	stats := newCollector()
	f := &filterPolicy{visibleOnly: true, stats: stats}

	if f.shouldCollect("AXButton", true, false) {
		t.Fatalf("invisible element collected in visible-only mode")
	}
	if stats.stats.ExcludedCount != 1 {
		t.Fatalf("excluded_count = %d, want 1", stats.stats.ExcludedCount)
	}
	// Geometry exclusion is not an interactability or text failure.
	if stats.stats.ExcludedNonInteractable != 0 || stats.stats.ExcludedNoText != 0 {
		t.Fatalf("reason counters moved for a geometry-only exclusion")
	}

	if !f.shouldCollect("AXButton", true, true) {
		t.Fatalf("visible element rejected in visible-only mode")
	}
}
