package traversal

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// sortElements orders the collected set top-to-bottom, left-to-right. A
// missing coordinate sorts after everything positioned; relative order among
// unpositioned elements follows insertion order.
func sortElements(elems []ElementData) {
	coord := func(v *float64) float64 {
		if v == nil {
			return math.Inf(1)
		}
		return *v
	}
	sort.SliceStable(elems, func(i, j int) bool {
		yi, yj := coord(elems[i].Y), coord(elems[j].Y)
		if yi != yj {
			return yi < yj
		}
		return coord(elems[i].X) < coord(elems[j].X)
	})
}

// assemble packages one finished walk into the caller-owned response.
func assemble(appName string, elems []ElementData, stats *collector, started time.Time) *ResponseData {
	sortElements(elems)
	if elems == nil {
		elems = []ElementData{}
	}
	return &ResponseData{
		AppName:               appName,
		Elements:              elems,
		Stats:                 stats.snapshot(len(elems)),
		ProcessingTimeSeconds: fmt.Sprintf("%.2f", time.Since(started).Seconds()),
	}
}
