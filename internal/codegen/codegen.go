// Package codegen renders a validated site plan into the fixed file set of
// one output flavor. Generation is pure and total: missing plan fields get
// defaults, unknown section types get a generic fragment, nothing fails.
package codegen

import (
	"strings"

	"sitegen_server/internal/types"
)

// Flavor selects the output file layout.
type Flavor string

const (
	FlavorHTML  Flavor = "html"
	FlavorReact Flavor = "react"
	FlavorNext  Flavor = "next"
)

// ParseFlavor maps a request framework value, including the descriptive
// aliases, onto a Flavor.
func ParseFlavor(s string) (Flavor, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "html", "plain-markup":
		return FlavorHTML, true
	case "react", "component-based":
		return FlavorReact, true
	case "next", "nextjs", "full-framework":
		return FlavorNext, true
	}
	return "", false
}

// Paths lists the files a flavor always emits, in output order.
func Paths(f Flavor) []string {
	switch f {
	case FlavorReact:
		return []string{"package.json", "index.html", "src/main.jsx", "src/App.jsx", "src/index.css"}
	case FlavorNext:
		return []string{"package.json", "app/page.tsx", "app/layout.tsx", "app/globals.css", "tailwind.config.js"}
	default:
		return []string{"index.html", "styles.css", "main.js"}
	}
}

// Generate renders plan for flavor. An unrecognised flavor renders as plain HTML.
func Generate(plan types.SitePlan, flavor Flavor) types.GeneratedFiles {
	switch flavor {
	case FlavorReact:
		return generateReact(plan)
	case FlavorNext:
		return generateNext(plan)
	default:
		return generateHTML(plan)
	}
}

func files(pairs ...string) types.GeneratedFiles {
	out := types.GeneratedFiles{Files: make([]types.File, 0, len(pairs)/2)}
	for i := 0; i+1 < len(pairs); i += 2 {
		out.Files = append(out.Files, types.File{Path: pairs[i], Content: pairs[i+1]})
	}
	return out
}
