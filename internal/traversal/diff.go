package traversal

// AttributeChange describes one changed attribute of a surviving element.
type AttributeChange struct {
	AttributeName string `json:"attribute_name"`
	OldValue      string `json:"old_value,omitempty"`
	NewValue      string `json:"new_value,omitempty"`
}

// ElementChange is an element present in both traversals whose content
// changed between them.
type ElementChange struct {
	Element ElementData       `json:"element"`
	Changes []AttributeChange `json:"changes"`
}

// TraversalDiff compares two traversals of the same application, typically
// taken around an interaction.
type TraversalDiff struct {
	Added       []ElementData   `json:"added_elements"`
	Removed     []ElementData   `json:"removed_elements"`
	Modified    []ElementChange `json:"modified_elements"`
	StatsBefore Statistics      `json:"stats_before"`
	StatsAfter  Statistics      `json:"stats_after"`
}

// diffSlot is the looser identity used to pair up elements across the two
// traversals once exact matches are removed: same role at the same place.
type diffSlot struct {
	role     string
	x, y     float64
	w, h     float64
	hasFrame bool
}

func slotOf(e ElementData) diffSlot {
	s := diffSlot{role: e.Role}
	if hasFullFrame(e) {
		s.x, s.y, s.w, s.h = *e.X, *e.Y, *e.Width, *e.Height
		s.hasFrame = true
	}
	return s
}

// Diff reports elements that appeared, disappeared, or changed text between
// two traversals. Structurally identical elements cancel out first; of the
// rest, a removed and an added element sharing role and frame are reported
// as one text modification instead of a remove/add pair.
func Diff(before, after *ResponseData) TraversalDiff {
	d := TraversalDiff{StatsBefore: before.Stats, StatsAfter: after.Stats}

	beforeKeys := make(map[elementKey]int, len(before.Elements))
	for _, e := range before.Elements {
		beforeKeys[keyOf(e)]++
	}
	afterKeys := make(map[elementKey]int, len(after.Elements))
	for _, e := range after.Elements {
		afterKeys[keyOf(e)]++
	}

	var appeared, disappeared []ElementData
	for _, e := range after.Elements {
		if beforeKeys[keyOf(e)] > 0 {
			beforeKeys[keyOf(e)]--
			continue
		}
		appeared = append(appeared, e)
	}
	for _, e := range before.Elements {
		if afterKeys[keyOf(e)] > 0 {
			afterKeys[keyOf(e)]--
			continue
		}
		disappeared = append(disappeared, e)
	}

	removedBySlot := make(map[diffSlot][]int)
	for i, e := range disappeared {
		s := slotOf(e)
		removedBySlot[s] = append(removedBySlot[s], i)
	}
	consumed := make([]bool, len(disappeared))

	for _, e := range appeared {
		s := slotOf(e)
		if idxs := removedBySlot[s]; len(idxs) > 0 {
			old := disappeared[idxs[0]]
			consumed[idxs[0]] = true
			removedBySlot[s] = idxs[1:]
			d.Modified = append(d.Modified, ElementChange{
				Element: e,
				Changes: []AttributeChange{{
					AttributeName: "text",
					OldValue:      textOrEmpty(old),
					NewValue:      textOrEmpty(e),
				}},
			})
			continue
		}
		d.Added = append(d.Added, e)
	}

	for i, e := range disappeared {
		if !consumed[i] {
			d.Removed = append(d.Removed, e)
		}
	}
	return d
}

func textOrEmpty(e ElementData) string {
	if e.Text == nil {
		return ""
	}
	return *e.Text
}
