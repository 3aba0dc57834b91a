package types

// BuildRequest is what the user submits from the builder form.
type BuildRequest struct {
	Intent    string   `json:"intent" validate:"required,min=3,max=2000"`
	Framework string   `json:"framework" validate:"required,oneof=html react next plain-markup component-based full-framework"`
	Theme     Theme    `json:"theme"`
	Sections  []string `json:"sections" validate:"required,min=1,dive,oneof=hero features menu gallery pricing contact faq"`
	Language  string   `json:"language" validate:"required,oneof=fa en"`
	Brand     *Brand   `json:"brand,omitempty"`
}

type Theme struct {
	Primary   string `json:"primary" validate:"required"`
	Secondary string `json:"secondary,omitempty"`
	Font      string `json:"font,omitempty"`
	DarkMode  *bool  `json:"darkMode,omitempty"`
}

type Brand struct {
	Name string `json:"name,omitempty"`
	Tone string `json:"tone,omitempty" validate:"omitempty,oneof=formal casual playful"`
}

// SitePlan is the intermediate representation returned by the AI service.
type SitePlan struct {
	Meta     Meta      `json:"meta"`
	Assets   Assets    `json:"assets"`
	Sections []Section `json:"sections"`
	Style    Style     `json:"style"`
}

type Meta struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Lang        string `json:"lang"`
}

type Assets struct {
	Images []Image `json:"images"`
}

type Image struct {
	ID     string `json:"id"`
	Prompt string `json:"prompt,omitempty"`
	URL    string `json:"url,omitempty"`
}

// Section is one content block. Props is an open bag; see Content for typed access.
type Section struct {
	ID    string         `json:"id"`
	Type  string         `json:"type"`
	Props map[string]any `json:"props"`
}

type Style struct {
	Colors map[string]string `json:"colors"`
	Font   string            `json:"font,omitempty"`
}

// ImageByID returns the plan asset with the given id.
func (p SitePlan) ImageByID(id string) (Image, bool) {
	for _, img := range p.Assets.Images {
		if img.ID == id {
			return img, true
		}
	}
	return Image{}, false
}

// File is a single generated output file.
type File struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// GeneratedFiles is the generator output and the export request body.
type GeneratedFiles struct {
	Files []File `json:"files"`
}

// GenerateResult is what the generate endpoint returns and what the hand-off store keeps.
type GenerateResult struct {
	Plan  SitePlan       `json:"plan"`
	Files GeneratedFiles `json:"files"`
}
