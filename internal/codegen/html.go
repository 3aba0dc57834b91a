package codegen

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"sitegen_server/internal/types"
)

const mainJS = `// Fade sections in as they scroll into view.
document.addEventListener("DOMContentLoaded", function () {
  var targets = document.querySelectorAll(".reveal");
  if (!("IntersectionObserver" in window)) {
    targets.forEach(function (el) { el.classList.add("visible"); });
    return;
  }
  var observer = new IntersectionObserver(function (entries) {
    entries.forEach(function (entry) {
      if (entry.isIntersecting) {
        entry.target.classList.add("visible");
        observer.unobserve(entry.target);
      }
    });
  }, { threshold: 0.15 });
  targets.forEach(function (el) { observer.observe(el); });
});
`

func generateHTML(plan types.SitePlan) types.GeneratedFiles {
	var body strings.Builder
	for _, s := range plan.Sections {
		body.WriteString(sectionHTML(plan, s))
	}

	index := fmt.Sprintf(`<!DOCTYPE html>
<html lang="%s" dir="%s">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>%s</title>
  <meta name="description" content="%s">
  <link rel="stylesheet" href="styles.css">
</head>
<body>
<main>
%s</main>
<script src="main.js"></script>
</body>
</html>
`,
		esc(langOr(plan.Meta.Lang)), direction(plan.Meta.Lang),
		esc(plan.Meta.Title), esc(plan.Meta.Description),
		body.String())

	return files(
		"index.html", index,
		"styles.css", stylesheet(paletteOf(plan.Style)),
		"main.js", mainJS,
	)
}

// sectionHTML renders one section as a markup fragment.
func sectionHTML(plan types.SitePlan, s types.Section) string {
	id := esc(s.ID)
	switch c := s.Content().(type) {
	case types.HeroContent:
		var b strings.Builder
		fmt.Fprintf(&b, "<section id=\"%s\" class=\"hero reveal\">\n  <h1>%s</h1>\n", id, esc(c.Title))
		if c.Subtitle != "" {
			fmt.Fprintf(&b, "  <p>%s</p>\n", esc(c.Subtitle))
		}
		fmt.Fprintf(&b, "  <a class=\"btn\" href=\"#contact\">%s</a>\n", esc(c.CTA))
		if src, alt, ok := imageSrc(plan, c.ImageID); ok {
			fmt.Fprintf(&b, "  <img src=\"%s\" alt=\"%s\">\n", esc(src), esc(alt))
		}
		b.WriteString("</section>\n")
		return b.String()

	case types.FeaturesContent:
		var b strings.Builder
		fmt.Fprintf(&b, "<section id=\"%s\" class=\"features reveal\">\n  <h2>%s</h2>\n  <div class=\"features-grid\">\n", id, esc(c.Title))
		for _, item := range c.Items {
			fmt.Fprintf(&b, "    <div class=\"feature-card\">\n      <h3>%s</h3>\n      <p>%s</p>\n    </div>\n",
				esc(item.Title), esc(item.Description))
		}
		b.WriteString("  </div>\n</section>\n")
		return b.String()

	case types.ContactContent:
		var b strings.Builder
		fmt.Fprintf(&b, "<section id=\"%s\" class=\"contact reveal\">\n  <h2>%s</h2>\n  <ul>\n", id, esc(c.Title))
		if c.Email != "" {
			fmt.Fprintf(&b, "    <li><a href=\"mailto:%s\">%s</a></li>\n", esc(c.Email), esc(c.Email))
		}
		if c.Phone != "" {
			fmt.Fprintf(&b, "    <li><a href=\"tel:%s\">%s</a></li>\n", esc(c.Phone), esc(c.Phone))
		}
		if c.Address != "" {
			fmt.Fprintf(&b, "    <li>%s</li>\n", esc(c.Address))
		}
		b.WriteString("  </ul>\n</section>\n")
		return b.String()

	case types.UnknownContent:
		return fmt.Sprintf("<section id=\"%s\" class=\"generic reveal\" data-type=\"%s\">\n  <pre>%s</pre>\n</section>\n",
			id, esc(c.Type), esc(propsJSON(c.Props)))
	}
	return ""
}

// propsJSON serializes an open props map. Map keys come out sorted, so the
// result is stable across calls.
func propsJSON(props map[string]any) string {
	if props == nil {
		props = map[string]any{}
	}
	b, err := json.MarshalIndent(props, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", props)
	}
	return string(b)
}

func esc(s string) string { return html.EscapeString(s) }
