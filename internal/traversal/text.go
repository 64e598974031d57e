package traversal

import (
	"strings"

	"github.com/RishaanDevz/MacosUseSDK/internal/ax"
)

// textAttributes is the fixed read order for text-bearing attributes. The
// order keeps output reproducible across runs.
var textAttributes = []string{
	ax.ValueAttribute,
	ax.TitleAttribute,
	ax.DescriptionAttribute,
	ax.LabelAttribute,
	ax.HelpAttribute,
}

// aggregateText joins every non-blank text attribute of n with single
// spaces. The second return is false when no attribute yielded text.
func aggregateText(p ax.Provider, n ax.Node) (string, bool) {
	var parts []string
	for _, kind := range textAttributes {
		if v, ok := p.Attribute(n, kind); ok {
			if trimmed := strings.TrimSpace(v); trimmed != "" {
				parts = append(parts, trimmed)
			}
		}
	}
	if len(parts) == 0 {
		return "", false
	}
	joined := strings.TrimSpace(strings.Join(parts, " "))
	return joined, joined != ""
}
