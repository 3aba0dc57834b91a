package types

import "strings"

// SectionKind is the closed set of section types the generator renders specially.
type SectionKind int

const (
	KindUnknown SectionKind = iota
	KindHero
	KindFeatures
	KindContact
)

func (k SectionKind) String() string {
	switch k {
	case KindHero:
		return "hero"
	case KindFeatures:
		return "features"
	case KindContact:
		return "contact"
	default:
		return "unknown"
	}
}

// Kind maps the free-form plan type onto a SectionKind. Tags match exactly;
// "Hero" is an unknown section.
func (s Section) Kind() SectionKind {
	switch s.Type {
	case "hero":
		return KindHero
	case "features":
		return KindFeatures
	case "contact":
		return KindContact
	default:
		return KindUnknown
	}
}

// SectionContent is implemented by HeroContent, FeaturesContent, ContactContent and UnknownContent.
type SectionContent interface {
	Kind() SectionKind
}

type HeroContent struct {
	Title    string
	Subtitle string
	CTA      string
	ImageID  string
}

type FeatureItem struct {
	Title       string
	Description string
}

type FeaturesContent struct {
	Title string
	Items []FeatureItem
}

type ContactContent struct {
	Title   string
	Email   string
	Phone   string
	Address string
}

// UnknownContent keeps the raw props of a section type the generator does not know.
type UnknownContent struct {
	Type  string
	Props map[string]any
}

func (HeroContent) Kind() SectionKind     { return KindHero }
func (FeaturesContent) Kind() SectionKind { return KindFeatures }
func (ContactContent) Kind() SectionKind  { return KindContact }
func (UnknownContent) Kind() SectionKind  { return KindUnknown }

// Default copy used when the plan leaves a field out.
const (
	DefaultHeroTitle     = "Welcome"
	DefaultHeroCTA       = "Get Started"
	DefaultFeaturesTitle = "Features"
	DefaultContactTitle  = "Contact Us"
)

// Content decodes the open props bag into typed content. It never fails:
// absent or mistyped fields fall back to their defaults.
func (s Section) Content() SectionContent {
	switch s.Kind() {
	case KindHero:
		return HeroContent{
			Title:    propString(s.Props, DefaultHeroTitle, "title", "headline"),
			Subtitle: propString(s.Props, "", "subtitle", "description"),
			CTA:      propString(s.Props, DefaultHeroCTA, "cta", "ctaText", "buttonText"),
			ImageID:  propString(s.Props, "", "image", "imageId"),
		}
	case KindFeatures:
		return FeaturesContent{
			Title: propString(s.Props, DefaultFeaturesTitle, "title"),
			Items: featureItems(s.Props["items"]),
		}
	case KindContact:
		return ContactContent{
			Title:   propString(s.Props, DefaultContactTitle, "title"),
			Email:   propString(s.Props, "", "email"),
			Phone:   propString(s.Props, "", "phone"),
			Address: propString(s.Props, "", "address"),
		}
	default:
		return UnknownContent{Type: s.Type, Props: s.Props}
	}
}

// propString returns the first non-empty string value among keys, or def.
func propString(props map[string]any, def string, keys ...string) string {
	for _, k := range keys {
		if v, ok := props[k].(string); ok && strings.TrimSpace(v) != "" {
			return v
		}
	}
	return def
}

func featureItems(raw any) []FeatureItem {
	list, ok := raw.([]any)
	if !ok {
		return []FeatureItem{}
	}
	items := make([]FeatureItem, 0, len(list))
	for _, entry := range list {
		switch v := entry.(type) {
		case map[string]any:
			items = append(items, FeatureItem{
				Title:       propString(v, "", "title", "name"),
				Description: propString(v, "", "description", "text"),
			})
		case string:
			items = append(items, FeatureItem{Title: v})
		}
	}
	return items
}
