package browser

import (
	"encoding/json"
	"strings"
)

// interactiveSelectors matches elements that respond to interaction by
// structure or semantics. Class-name heuristics catch framework-styled
// controls that lack proper roles.
const pageScript = `(() => {
	try {
		const selectors = [
			"button", "a[href]", "input", "select", "textarea", "summary",
			"[role='button']", "[role='link']", "[role='tab']", "[role='menuitem']",
			"[role='checkbox']", "[role='radio']", "[role='switch']", "[role='option']",
			"[role='textbox']", "[role='combobox']", "[role='searchbox']",
			"[onclick]", "[tabindex]", "[contenteditable='true']",
			"[class*='button']", "[class*='btn']"
		];
		const actionWords = __ACTION_WORDS__;

		const visibleText = () => {
			if (document.body && typeof document.body.innerText === "string") {
				return document.body.innerText;
			}
			// Manual fallback: walk text nodes, skip hidden subtrees.
			const parts = [];
			const walker = document.createTreeWalker(document.body || document, NodeFilter.SHOW_TEXT);
			let node;
			while ((node = walker.nextNode())) {
				const el = node.parentElement;
				if (!el) continue;
				const style = window.getComputedStyle(el);
				if (style.display === "none" || style.visibility === "hidden" || style.opacity === "0") continue;
				const t = node.textContent.trim();
				if (t) parts.push(t);
			}
			return parts.join(" ");
		};

		const seen = new Set();
		const elements = [];
		const push = (el) => {
			if (!el || seen.has(el) || elements.length >= 500) return;
			seen.add(el);
			const rect = el.getBoundingClientRect();
			const img = el.querySelector ? el.querySelector("img[alt]") : null;
			elements.push({
				tagName: el.tagName.toLowerCase(),
				id: el.id || "",
				className: (typeof el.className === "string" ? el.className : "") || "",
				innerText: (el.innerText || el.textContent || "").trim().slice(0, 200),
				value: el.value || "",
				placeholder: el.getAttribute("placeholder") || "",
				ariaLabel: el.getAttribute("aria-label") || "",
				role: el.getAttribute("role") || "",
				href: el.getAttribute("href") || "",
				src: el.getAttribute("src") || "",
				title: el.getAttribute("title") || "",
				alt: el.getAttribute("alt") || "",
				imgAlt: img ? (img.getAttribute("alt") || "") : "",
				x: rect.x, y: rect.y, width: rect.width, height: rect.height
			});
		};

		for (const sel of selectors) {
			try {
				document.querySelectorAll(sel).forEach(push);
			} catch (e) {
				// bad selector support in this engine, skip
			}
		}

		// Secondary pass: framework-rendered pseudo-buttons. Short leaf text
		// matching an action keyword is treated as interactive even without
		// a role.
		document.querySelectorAll("div,span").forEach((el) => {
			if (el.children.length > 0 || seen.has(el)) return;
			const t = (el.innerText || "").trim().toLowerCase();
			if (!t || t.length > 30) return;
			if (actionWords.some((w) => t === w || t.startsWith(w + " "))) {
				push(el);
			}
		});

		return JSON.stringify({
			url: window.location.href,
			title: document.title,
			html: document.documentElement ? document.documentElement.outerHTML : "",
			text: visibleText(),
			elements: elements
		});
	} catch (e) {
		return JSON.stringify({ error: String(e) });
	}
})()`

// extractionScript binds the configured action keywords into the page
// script. Keywords are JSON-encoded so arbitrary configured strings cannot
// break out of the script.
func extractionScript(keywords []string) string {
	words, err := json.Marshal(keywords)
	if err != nil {
		words = []byte("[]")
	}
	return strings.Replace(pageScript, "__ACTION_WORDS__", string(words), 1)
}

// defaultActionKeywords covers the common pseudo-button labels. Site
// coverage is inherently incomplete; deployments extend the list through
// configuration.
var defaultActionKeywords = []string{
	"post", "tweet", "send", "submit", "reply", "share", "search",
	"sign in", "log in", "sign up", "subscribe", "follow",
	"next", "continue", "done", "save",
}
