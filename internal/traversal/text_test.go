package traversal

import (
	"testing"

	"github.com/RishaanDevz/MacosUseSDK/internal/ax"
)

func TestAggregateTextJoinsInAttributeOrder(t *testing.T) {
	n := &fakeNode{attrs: map[string]string{
		ax.TitleAttribute: "Send",
		ax.ValueAttribute: "draft",
		ax.HelpAttribute:  "  sends the message  ",
	}}

	text, has := aggregateText(fakeProvider{}, n)
	if !has {
		t.Fatalf("expected text")
	}
	if text != "draft Send sends the message" {
		t.Fatalf("aggregated %q", text)
	}
}

func TestAggregateTextSkipsBlankAttributes(t *testing.T) {
	n := &fakeNode{attrs: map[string]string{
		ax.ValueAttribute: "   ",
		ax.TitleAttribute: "\t\n",
	}}

	if _, has := aggregateText(fakeProvider{}, n); has {
		t.Fatalf("blank attributes must not count as text")
	}
}

func TestAggregateTextAbsent(t *testing.T) {
	if _, has := aggregateText(fakeProvider{}, &fakeNode{}); has {
		t.Fatalf("node without attributes must have no text")
	}
}
