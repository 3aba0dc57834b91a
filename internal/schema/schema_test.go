package schema

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitegen_server/internal/types"
)

func validRequestJSON() string {
	return `{
		"intent": "A bakery site",
		"framework": "plain-markup",
		"theme": {"primary": "#000000"},
		"sections": ["hero"],
		"language": "en"
	}`
}

func TestValidateBuildRequest_Valid(t *testing.T) {
	req, err := ValidateBuildRequest([]byte(validRequestJSON()))
	require.NoError(t, err)

	assert.Equal(t, "A bakery site", req.Intent)
	assert.Equal(t, "plain-markup", req.Framework)
	assert.Equal(t, "#000000", req.Theme.Primary)
	assert.Equal(t, []string{"hero"}, req.Sections)
	assert.Equal(t, "en", req.Language)
	assert.Nil(t, req.Brand)
}

func TestValidateBuildRequest_RoundTripsWithoutCoercion(t *testing.T) {
	dark := true
	in := types.BuildRequest{
		Intent:    "  Persian coffee shop with a long menu  ",
		Framework: "next",
		Theme:     types.Theme{Primary: "#6b4f2a", Secondary: "#f5e6d3", Font: "Vazirmatn", DarkMode: &dark},
		Sections:  []string{"menu", "hero", "menu", "faq"},
		Language:  "fa",
		Brand:     &types.Brand{Name: "Kafe", Tone: "playful"},
	}
	raw, err := json.Marshal(in)
	require.NoError(t, err)

	out, err := ValidateBuildRequest(raw)
	require.NoError(t, err)
	assert.Equal(t, in, *out)
}

func TestValidateBuildRequest_EmptySections(t *testing.T) {
	raw := strings.Replace(validRequestJSON(), `["hero"]`, `[]`, 1)

	_, err := ValidateBuildRequest([]byte(raw))
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "sections", verr.Fields[0].Field)
}

func TestValidateBuildRequest_ReportsEveryViolation(t *testing.T) {
	raw := `{
		"intent": "ab",
		"framework": "angular",
		"theme": {},
		"sections": ["hero", "blog"],
		"language": "de",
		"brand": {"tone": "grumpy"}
	}`

	_, err := ValidateBuildRequest([]byte(raw))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	for _, field := range []string{"intent", "framework", "theme.primary", "sections[1]", "language", "brand.tone"} {
		assert.True(t, verr.Has(field), "expected violation on %s, got %v", field, verr.Fields)
	}
	assert.Len(t, verr.Fields, 6)
}

func TestValidateBuildRequest_TypeErrorsDoNotHideOthers(t *testing.T) {
	raw := `{
		"intent": 42,
		"framework": "vue",
		"theme": {"primary": 7, "darkMode": "yes"},
		"sections": [],
		"language": "de"
	}`

	_, err := ValidateBuildRequest([]byte(raw))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	for _, field := range []string{"intent", "framework", "theme.primary", "theme.darkMode", "sections", "language"} {
		assert.True(t, verr.Has(field), "expected violation on %s, got %v", field, verr.Fields)
	}
	// One entry per field: a wrong type is not also reported as missing.
	assert.Len(t, verr.Fields, 6)
}

func TestValidateBuildRequest_TypeErrorInsideArray(t *testing.T) {
	raw := `{
		"intent": "A bakery site",
		"framework": "html",
		"theme": {"primary": "#000"},
		"sections": ["hero", 3, "blog"],
		"language": "en"
	}`

	_, err := ValidateBuildRequest([]byte(raw))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	assert.True(t, verr.Has("sections[1]"), "fields: %v", verr.Fields)
	assert.True(t, verr.Has("sections[2]"), "fields: %v", verr.Fields)
	assert.Len(t, verr.Fields, 2)
}

func TestValidateBuildRequest_WrongTypeForObject(t *testing.T) {
	raw := `{
		"intent": "A bakery site",
		"framework": "html",
		"theme": "dark",
		"sections": ["hero"],
		"language": "xx"
	}`

	_, err := ValidateBuildRequest([]byte(raw))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	assert.True(t, verr.Has("theme"))
	assert.False(t, verr.Has("theme.primary"))
	assert.True(t, verr.Has("language"))
}

func TestValidateBuildRequest_IntentLength(t *testing.T) {
	tests := []struct {
		name   string
		intent string
		ok     bool
	}{
		{"min boundary", "abc", true},
		{"max boundary", strings.Repeat("a", 2000), true},
		{"too long", strings.Repeat("a", 2001), false},
		{"multibyte counts runes", strings.Repeat("ن", 2000), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := map[string]any{
				"intent":    tt.intent,
				"framework": "html",
				"theme":     map[string]any{"primary": "#fff"},
				"sections":  []string{"hero"},
				"language":  "en",
			}
			raw, _ := json.Marshal(in)
			_, err := ValidateBuildRequest(raw)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateBuildRequest_MalformedBody(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"empty", "", "body"},
		{"syntax", "{not json", "body"},
		{"wrong type", `{"intent": 42}`, "intent"},
		{"not an object", `["hero"]`, "body"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateBuildRequest([]byte(tt.body))
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.True(t, verr.Has(tt.field), "fields: %v", verr.Fields)
		})
	}
}

const validPlan = `{
	"meta": {"title": "Bakery", "description": "Fresh bread", "lang": "en"},
	"assets": {"images": [{"id": "hero-img", "prompt": "warm bread on a table"}]},
	"sections": [
		{"id": "s1", "type": "hero", "props": {"title": "Welcome Bakery"}},
		{"id": "s2", "type": "testimonials", "props": {"quotes": ["great"]}}
	],
	"style": {"colors": {"primary": "#000000"}}
}`

func TestValidateSitePlan_Valid(t *testing.T) {
	plan, err := ValidateSitePlan([]byte(validPlan))
	require.NoError(t, err)

	assert.Equal(t, "Bakery", plan.Meta.Title)
	require.Len(t, plan.Sections, 2)
	assert.Equal(t, "testimonials", plan.Sections[1].Type)
	assert.Equal(t, "#000000", plan.Style.Colors["primary"])
	assert.Len(t, plan.Assets.Images, 1)
}

func TestValidateSitePlan_EmptyCollectionsAllowed(t *testing.T) {
	raw := `{"meta": {"title": "t", "description": "d", "lang": "en"},
		"assets": {"images": []}, "sections": [], "style": {"colors": {}}}`

	plan, err := ValidateSitePlan([]byte(raw))
	require.NoError(t, err)
	assert.Empty(t, plan.Sections)
	assert.Empty(t, plan.Style.Colors)
}

func TestValidateSitePlan_StructuralErrors(t *testing.T) {
	raw := `{"meta": {"title": "t", "lang": 3},
		"assets": {"images": "none"},
		"sections": [{"type": "hero"}],
		"style": {"colors": {"primary": 1}}}`

	_, err := ValidateSitePlan([]byte(raw))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	for _, field := range []string{"meta.description", "meta.lang", "assets.images", "sections[0].id", "style.colors.primary"} {
		assert.True(t, verr.Has(field), "expected violation on %s, got %v", field, verr.Fields)
	}
}

func TestValidateSitePlan_MissingTopLevel(t *testing.T) {
	_, err := ValidateSitePlan([]byte(`{}`))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	for _, field := range []string{"meta", "assets", "sections", "style"} {
		assert.True(t, verr.Has(field), "expected violation on %s", field)
	}
}

func TestValidateSitePlan_NotJSON(t *testing.T) {
	_, err := ValidateSitePlan([]byte("Sure! Here is your plan"))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("body"))
}

func TestValidateGeneratedFiles(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		fields []string
	}{
		{"valid", `{"files": [{"path": "a.txt", "content": "hello"}, {"path": "src/App.jsx", "content": ""}]}`, nil},
		{"empty list", `{"files": []}`, nil},
		{"missing files", `{}`, []string{"files"}},
		{"empty path", `{"files": [{"path": "", "content": "x"}]}`, []string{"files[0].path"}},
		{"non-string content", `{"files": [{"path": "a", "content": 1}]}`, []string{"files[0].content"}},
		{"absolute path", `{"files": [{"path": "/etc/passwd", "content": "x"}]}`, []string{"files[0].path"}},
		{"parent segment", `{"files": [{"path": "ok.txt", "content": ""}, {"path": "../x", "content": ""}]}`, []string{"files[1].path"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files, err := ValidateGeneratedFiles([]byte(tt.body))
			if len(tt.fields) == 0 {
				require.NoError(t, err)
				require.NotNil(t, files)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			for _, f := range tt.fields {
				assert.True(t, verr.Has(f), "expected violation on %s, got %v", f, verr.Fields)
			}
		})
	}
}
