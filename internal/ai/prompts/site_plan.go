package prompts

import (
	"encoding/json"
	"fmt"
	"strings"

	"sitegen_server/internal/types"
)

// SitePlanSystemPrompt fixes the reply shape for every site plan request.
func SitePlanSystemPrompt() string {
	return `
		You are a website planner. You never write code.

		Reply with ONE JSON object and nothing else, shaped exactly like this:

		{
		  "meta": {"title": "...", "description": "...", "lang": "en"},
		  "assets": {"images": [{"id": "hero-img", "prompt": "...", "url": null}]},
		  "sections": [
		    {"id": "hero", "type": "hero", "props": {"title": "...", "subtitle": "...", "cta": "...", "image": "hero-img"}},
		    {"id": "features", "type": "features", "props": {"title": "...", "items": [{"title": "...", "description": "..."}]}},
		    {"id": "contact", "type": "contact", "props": {"title": "...", "email": "...", "phone": "...", "address": "..."}}
		  ],
		  "style": {"colors": {"primary": "#...", "secondary": "#...", "background": "#...", "text": "#..."}, "font": "..."}
		}

		Rules:
		*   All four top-level keys are required. "assets.images" and "sections" may be empty arrays.
		*   Every section needs a unique "id" and a "type"; "props" is an object.
		*   Colors are CSS hex values.
		*   No markdown, no code fences, no commentary.
	`
}

var languageNames = map[string]string{
	"fa": "Persian (Farsi), written right-to-left",
	"en": "English",
}

const defaultTone = "friendly and professional"

var toneNames = map[string]string{
	"formal":  "formal and trustworthy",
	"casual":  "relaxed and friendly",
	"playful": "playful and energetic",
}

// SitePlanUserPrompt embeds the validated request and the rendering rules.
func SitePlanUserPrompt(req types.BuildRequest) (string, error) {
	raw, err := json.MarshalIndent(req, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal build request: %w", err)
	}

	lang := languageNames[req.Language]
	if lang == "" {
		lang = req.Language
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Plan a website for this request:\n\n---\n%s\n---\n\n", raw)
	b.WriteString("Rendering rules:\n")
	fmt.Fprintf(&b, "*   Write every visible text in %s and set meta.lang to %q.\n", lang, req.Language)
	fmt.Fprintf(&b, "*   Emit exactly these sections, in this order, one per entry: %s.\n", strings.Join(req.Sections, ", "))
	fmt.Fprintf(&b, "*   Use %s as style.colors.primary", req.Theme.Primary)
	if req.Theme.Secondary != "" {
		fmt.Fprintf(&b, " and %s as style.colors.secondary", req.Theme.Secondary)
	}
	b.WriteString(".\n")
	if req.Theme.DarkMode != nil && *req.Theme.DarkMode {
		b.WriteString("*   Pick a dark background and a light text color.\n")
	} else {
		b.WriteString("*   Pick a light background and a dark text color.\n")
	}
	if req.Theme.Font != "" {
		fmt.Fprintf(&b, "*   Use %q as style.font.\n", req.Theme.Font)
	}
	tone := defaultTone
	if req.Brand != nil {
		if req.Brand.Name != "" {
			fmt.Fprintf(&b, "*   The brand name is %q; use it in meta.title and the hero.\n", req.Brand.Name)
		}
		if t := toneNames[req.Brand.Tone]; t != "" {
			tone = t
		}
	}
	fmt.Fprintf(&b, "*   Keep the copy %s.\n", tone)
	b.WriteString("*   Do not invent image URLs. Describe each image in \"prompt\" and leave \"url\" null.\n")
	return b.String(), nil
}
