package codegen

import (
	"encoding/json"
	"fmt"
	"strings"

	"sitegen_server/internal/types"
)

// classSet holds the class names a JSX flavor uses for each section part.
type classSet struct {
	hero         string
	heroImage    string
	button       string
	features     string
	grid         string
	card         string
	cardTitle    string
	contact      string
	contactList  string
	generic      string
	pre          string
	sectionTitle string
}

var reactClasses = classSet{
	hero:     "hero reveal",
	button:   "btn",
	features: "features reveal",
	grid:     "features-grid",
	card:     "feature-card",
	contact:  "contact reveal",
	generic:  "generic reveal",
}

var tailwindClasses = classSet{
	hero:         "py-24 px-6 text-center",
	heroImage:    "mx-auto mt-8 max-w-full rounded-2xl",
	button:       "inline-block rounded-full bg-primary px-7 py-3 font-semibold text-white hover:bg-secondary",
	features:     "mx-auto max-w-5xl py-16 px-6",
	grid:         "grid gap-6 sm:grid-cols-2 lg:grid-cols-3",
	card:         "rounded-2xl p-6 shadow-lg",
	cardTitle:    "mt-0 text-primary",
	contact:      "mx-auto max-w-5xl py-16 px-6",
	contactList:  "list-none p-0",
	generic:      "mx-auto max-w-5xl py-16 px-6",
	pre:          "whitespace-pre-wrap rounded-lg bg-black/5 p-4",
	sectionTitle: "mb-8 text-3xl font-bold",
}

// jsText renders s as a JSX expression holding a string literal.
func jsText(s string) string {
	return "{" + jsString(s) + "}"
}

func jsString(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		return `""`
	}
	return string(b)
}

func attr(name, value string) string {
	if value == "" {
		return ""
	}
	return fmt.Sprintf(" %s=%s", name, jsText(value))
}

// sectionJSX renders one section as a JSX element, indented for a return block.
func sectionJSX(plan types.SitePlan, s types.Section, cls classSet, indent string) string {
	var b strings.Builder
	w := func(depth int, format string, args ...any) {
		b.WriteString(indent + strings.Repeat("  ", depth))
		fmt.Fprintf(&b, format, args...)
		b.WriteByte('\n')
	}
	id := attr("id", s.ID)

	switch c := s.Content().(type) {
	case types.HeroContent:
		w(0, "<section%s%s>", id, attr("className", cls.hero))
		w(1, "<h1>%s</h1>", jsText(c.Title))
		if c.Subtitle != "" {
			w(1, "<p>%s</p>", jsText(c.Subtitle))
		}
		w(1, "<a href=\"#contact\"%s>%s</a>", attr("className", cls.button), jsText(c.CTA))
		if src, alt, ok := imageSrc(plan, c.ImageID); ok {
			w(1, "<img src=%s alt=%s%s />", jsText(src), jsText(alt), attr("className", cls.heroImage))
		}
		w(0, "</section>")

	case types.FeaturesContent:
		w(0, "<section%s%s>", id, attr("className", cls.features))
		w(1, "<h2%s>%s</h2>", attr("className", cls.sectionTitle), jsText(c.Title))
		w(1, "<div%s>", attr("className", cls.grid))
		for _, item := range c.Items {
			w(2, "<div%s>", attr("className", cls.card))
			w(3, "<h3%s>%s</h3>", attr("className", cls.cardTitle), jsText(item.Title))
			w(3, "<p>%s</p>", jsText(item.Description))
			w(2, "</div>")
		}
		w(1, "</div>")
		w(0, "</section>")

	case types.ContactContent:
		w(0, "<section%s%s>", id, attr("className", cls.contact))
		w(1, "<h2%s>%s</h2>", attr("className", cls.sectionTitle), jsText(c.Title))
		w(1, "<ul%s>", attr("className", cls.contactList))
		if c.Email != "" {
			w(2, "<li><a href=%s>%s</a></li>", jsText("mailto:"+c.Email), jsText(c.Email))
		}
		if c.Phone != "" {
			w(2, "<li><a href=%s>%s</a></li>", jsText("tel:"+c.Phone), jsText(c.Phone))
		}
		if c.Address != "" {
			w(2, "<li>%s</li>", jsText(c.Address))
		}
		w(1, "</ul>")
		w(0, "</section>")

	case types.UnknownContent:
		w(0, "<section%s%s%s>", id, attr("className", cls.generic), attr("data-type", c.Type))
		w(1, "<pre%s>%s</pre>", attr("className", cls.pre), jsText(propsJSON(c.Props)))
		w(0, "</section>")
	}
	return b.String()
}

func sectionsJSX(plan types.SitePlan, cls classSet, indent string) string {
	var b strings.Builder
	for _, s := range plan.Sections {
		b.WriteString(sectionJSX(plan, s, cls, indent))
	}
	return b.String()
}
