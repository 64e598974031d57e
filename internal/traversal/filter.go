package traversal

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// Roles that never respond to interaction on their own. Elements with one of
// these roles are only worth collecting when they carry text.
var nonInteractableRoles = mapset.NewThreadUnsafeSet(
	"AXGroup",
	"AXStaticText",
	"AXSeparator",
	"AXSplitGroup",
	"AXSplitter",
	"AXHeading",
	"AXScrollArea",
	"AXScrollBar",
	"AXToolbar",
	"AXOutline",
	"AXLayoutArea",
	"AXLayoutItem",
	"AXMatte",
	"AXRuler",
	"AXGrid",
	"AXList",
	"AXLevelIndicator",
	"AXUnknown",
)

func isNonInteractable(role string) bool {
	return nonInteractableRoles.Contains(role)
}

// filterPolicy decides collection and records exclusion counters as a side
// effect of every decision.
type filterPolicy struct {
	visibleOnly bool
	stats       *collector
}

// shouldCollect applies the interactability filter, then the visible-only
// requirement when that mode is on. Exclusion reasons are independent: a
// non-interactable element without text trips both reason counters.
func (f *filterPolicy) shouldCollect(role string, hasText, visible bool) bool {
	nonInteractable := isNonInteractable(role)
	passes := !nonInteractable || hasText
	if !passes {
		f.stats.recordExclusion(nonInteractable, !hasText)
		return false
	}
	if f.visibleOnly && !visible {
		f.stats.recordExclusion(false, false)
		return false
	}
	return true
}
