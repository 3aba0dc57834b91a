package utils

import (
	"path"
	"strings"
)

// DetermineFileType labels a generated file by its name, for metrics and logs.
func DetermineFileType(filename string) string {
	lower := strings.ToLower(filename)
	base := path.Base(lower)

	switch {
	case base == "package.json":
		return "Manifest"
	case strings.HasPrefix(base, "tailwind.config."), strings.HasPrefix(base, "vite.config."):
		return "Config"
	}

	switch path.Ext(lower) {
	case ".html":
		return "HTML"
	case ".css":
		return "CSS"
	case ".js", ".mjs":
		return "JavaScript"
	case ".jsx":
		return "JSX"
	case ".ts":
		return "TypeScript"
	case ".tsx":
		return "TSX"
	case ".json":
		return "JSON"
	case ".md":
		return "Markdown"
	case ".txt":
		return "Text"
	case ".svg":
		return "SVG"
	default:
		return "Unknown"
	}
}
