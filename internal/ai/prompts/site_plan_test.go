package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitegen_server/internal/types"
)

func TestSitePlanUserPrompt(t *testing.T) {
	dark := true
	req := types.BuildRequest{
		Intent:    "Persian tea house",
		Framework: "next",
		Theme:     types.Theme{Primary: "#0f766e", Secondary: "#f59e0b", Font: "Vazirmatn", DarkMode: &dark},
		Sections:  []string{"hero", "menu", "contact"},
		Language:  "fa",
		Brand:     &types.Brand{Name: "Chaikhaneh", Tone: "formal"},
	}

	p, err := SitePlanUserPrompt(req)
	require.NoError(t, err)

	assert.Contains(t, p, `"intent": "Persian tea house"`)
	assert.Contains(t, p, "Persian (Farsi)")
	assert.Contains(t, p, "hero, menu, contact")
	assert.Contains(t, p, "#0f766e")
	assert.Contains(t, p, "#f59e0b")
	assert.Contains(t, p, "dark background")
	assert.Contains(t, p, `"Vazirmatn"`)
	assert.Contains(t, p, `"Chaikhaneh"`)
	assert.Contains(t, p, "formal and trustworthy")
	assert.Contains(t, p, "leave \"url\" null")
}

func TestSitePlanUserPrompt_Minimal(t *testing.T) {
	p, err := SitePlanUserPrompt(types.BuildRequest{
		Intent:   "A bakery site",
		Theme:    types.Theme{Primary: "#000000"},
		Sections: []string{"hero"},
		Language: "en",
	})
	require.NoError(t, err)

	assert.Contains(t, p, "English")
	assert.Contains(t, p, "light background")
	assert.NotContains(t, p, "brand name")
	assert.Contains(t, p, "friendly and professional")
	assert.NotContains(t, p, "secondary")
}

func TestSitePlanSystemPrompt(t *testing.T) {
	s := SitePlanSystemPrompt()
	for _, key := range []string{`"meta"`, `"assets"`, `"sections"`, `"style"`, `"colors"`} {
		assert.Contains(t, s, key)
	}
}
