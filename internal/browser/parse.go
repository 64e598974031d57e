package browser

import (
	"encoding/json"
	"strings"

	"github.com/RishaanDevz/MacosUseSDK/internal/ax"
)

// pageResult is the wire shape of the injected script's reply.
type pageResult struct {
	Error    string       `json:"error"`
	URL      string       `json:"url"`
	Title    string       `json:"title"`
	HTML     string       `json:"html"`
	Text     string       `json:"text"`
	Elements []rawElement `json:"elements"`
}

// rawElement carries every attribute the script read, including the ones
// used only to derive display text.
type rawElement struct {
	TagName     string  `json:"tagName"`
	ID          string  `json:"id"`
	ClassName   string  `json:"className"`
	InnerText   string  `json:"innerText"`
	Value       string  `json:"value"`
	Placeholder string  `json:"placeholder"`
	AriaLabel   string  `json:"ariaLabel"`
	Role        string  `json:"role"`
	Href        string  `json:"href"`
	Src         string  `json:"src"`
	Title       string  `json:"title"`
	Alt         string  `json:"alt"`
	ImgAlt      string  `json:"imgAlt"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
}

func parsePageResult(raw string) (*pageResult, error) {
	raw = strings.TrimSpace(raw)
	var result pageResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, &ax.ParseError{Err: err}
	}
	return &result, nil
}

// deriveText picks display text by a priority chain specific to the element
// kind: buttons and links lead with rendered text, form controls with
// current value then placeholder; everything falls back to the accessible
// label, a title or alt attribute, and finally the alt of a contained
// image. First non-blank wins.
func (r rawElement) deriveText() string {
	chain := []string{r.InnerText, r.AriaLabel, r.Title, r.Alt, r.ImgAlt}
	if r.isFormControl() {
		chain = []string{r.Value, r.Placeholder, r.AriaLabel, r.Title, r.Alt, r.ImgAlt}
	}
	for _, candidate := range chain {
		if trimmed := strings.TrimSpace(candidate); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

func (r rawElement) isFormControl() bool {
	switch r.TagName {
	case "input", "textarea", "select":
		return true
	}
	switch r.Role {
	case "textbox", "combobox", "searchbox":
		return true
	}
	return false
}

func (r rawElement) toElement() Element {
	el := Element{
		TagName:     r.TagName,
		ID:          r.ID,
		ClassName:   r.ClassName,
		Text:        r.deriveText(),
		Value:       r.Value,
		Placeholder: r.Placeholder,
		AriaLabel:   r.AriaLabel,
		Role:        r.Role,
		Href:        r.Href,
		Src:         r.Src,
	}
	// A zero rect means the script saw no layout box; keep the coordinates
	// absent rather than storing 0,0.
	if r.Width > 0 || r.Height > 0 {
		x, y, w, h := r.X, r.Y, r.Width, r.Height
		el.X, el.Y, el.Width, el.Height = &x, &y, &w, &h
	}
	return el
}
