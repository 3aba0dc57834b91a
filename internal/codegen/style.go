package codegen

import (
	"fmt"
	"net/url"
	"strings"

	"sitegen_server/internal/types"
)

// Fallback colors and font for plans that leave style entries out.
const (
	DefaultPrimary    = "#2563eb"
	DefaultSecondary  = "#9333ea"
	DefaultBackground = "#ffffff"
	DefaultText       = "#111827"
	DefaultFont       = "system-ui, sans-serif"
)

type palette struct {
	Primary    string
	Secondary  string
	Background string
	Text       string
	Font       string
}

func paletteOf(style types.Style) palette {
	return palette{
		Primary:    colorOr(style.Colors, "primary", DefaultPrimary),
		Secondary:  colorOr(style.Colors, "secondary", DefaultSecondary),
		Background: colorOr(style.Colors, "background", DefaultBackground),
		Text:       colorOr(style.Colors, "text", DefaultText),
		Font:       fontOf(style.Font),
	}
}

func colorOr(colors map[string]string, key, def string) string {
	if v := strings.TrimSpace(colors[key]); v != "" && safeCSSValue(v) {
		return v
	}
	return def
}

func fontOf(font string) string {
	font = strings.TrimSpace(font)
	if font == "" || !safeCSSValue(font) {
		return DefaultFont
	}
	if strings.ContainsAny(font, ",") {
		return font
	}
	return fmt.Sprintf("%q, %s", font, DefaultFont)
}

// safeCSSValue rejects values that could close a declaration or a style block.
func safeCSSValue(v string) bool {
	return !strings.ContainsAny(v, ";{}<>")
}

// direction is "rtl" for Persian plans and "ltr" for everything else.
func direction(lang string) string {
	l := strings.ToLower(strings.TrimSpace(lang))
	if l == "fa" || l == "persian" || l == "farsi" || strings.HasPrefix(l, "fa-") || strings.HasPrefix(l, "fa_") {
		return "rtl"
	}
	return "ltr"
}

func langOr(lang string) string {
	if strings.TrimSpace(lang) == "" {
		return "en"
	}
	return lang
}

// stylesheet is shared by the plain and component flavors.
func stylesheet(p palette) string {
	var b strings.Builder
	fmt.Fprintf(&b, `:root {
  --color-primary: %s;
  --color-secondary: %s;
  --color-background: %s;
  --color-text: %s;
  --font-body: %s;
}
`, p.Primary, p.Secondary, p.Background, p.Text, p.Font)
	b.WriteString(`
* { box-sizing: border-box; }
body { margin: 0; font-family: var(--font-body); background: var(--color-background); color: var(--color-text); line-height: 1.6; }
section { padding: 4rem 1.5rem; max-width: 1100px; margin: 0 auto; }
h1, h2, h3 { line-height: 1.2; }
.hero { text-align: center; padding: 6rem 1.5rem; }
.hero img { max-width: 100%; border-radius: 1rem; margin-top: 2rem; }
.btn { display: inline-block; padding: 0.75rem 1.75rem; border-radius: 999px; background: var(--color-primary); color: #fff; text-decoration: none; font-weight: 600; }
.btn:hover { background: var(--color-secondary); }
.features-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(220px, 1fr)); gap: 1.5rem; }
.feature-card { padding: 1.5rem; border-radius: 1rem; box-shadow: 0 4px 18px rgba(0, 0, 0, 0.08); }
.feature-card h3 { color: var(--color-primary); margin-top: 0; }
.contact ul { list-style: none; padding: 0; }
.generic pre { white-space: pre-wrap; background: rgba(0, 0, 0, 0.04); padding: 1rem; border-radius: 0.5rem; }
.reveal { opacity: 0; transform: translateY(16px); transition: opacity 0.6s ease, transform 0.6s ease; }
.reveal.visible { opacity: 1; transform: none; }
`)
	return b.String()
}

// imageSrc resolves a hero image id through the plan assets. Images without an
// absolute http(s) URL get a placeholder carrying their prompt text.
func imageSrc(plan types.SitePlan, id string) (src, alt string, ok bool) {
	if id == "" {
		return "", "", false
	}
	img, found := plan.ImageByID(id)
	if !found {
		return "", "", false
	}
	alt = img.Prompt
	if alt == "" {
		alt = img.ID
	}
	if webURL(img.URL) {
		return img.URL, alt, true
	}
	return "https://placehold.co/1200x600?text=" + url.QueryEscape(alt), alt, true
}

func webURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}
