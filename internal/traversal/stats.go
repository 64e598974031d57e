package traversal

// collector owns the running counters for one traversal. Single-threaded;
// every method only ever increments.
type collector struct {
	stats Statistics
}

func newCollector() *collector {
	return &collector{stats: Statistics{RoleCounts: map[string]int{}}}
}

// recordRole counts every visited node by bare role, kept or not.
func (c *collector) recordRole(role string) {
	c.stats.RoleCounts[role]++
}

// recordVisible counts geometric visibility independent of filtering.
func (c *collector) recordVisible() {
	c.stats.VisibleElementsCount++
}

// recordExclusion bumps the overall exclusion counter plus whichever reason
// counters apply. Reasons are independent, not mutually exclusive.
func (c *collector) recordExclusion(nonInteractable, noText bool) {
	c.stats.ExcludedCount++
	if nonInteractable {
		c.stats.ExcludedNonInteractable++
	}
	if noText {
		c.stats.ExcludedNoText++
	}
}

// recordKept settles the text-presence counters for a newly deduplicated
// element.
func (c *collector) recordKept(hasText bool) {
	if hasText {
		c.stats.WithTextCount++
	} else {
		c.stats.WithoutTextCount++
	}
}

func (c *collector) setBrowserElements(n int) {
	c.stats.BrowserElementsCount = n
}

// snapshot finalises Count and returns the counters by value.
func (c *collector) snapshot(kept int) Statistics {
	c.stats.Count = kept
	return c.stats
}
