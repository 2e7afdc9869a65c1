package web

import (
	"html/template"
	"slices"
	"strconv"
	"strings"

	"github.com/umputun/portfolio/app/enum"
)

// heading renders <hN class="heading-N ..."> for level 1..4. Other levels render as 1.
// Optional attrs are "name=value" pairs, only id is accepted, e.g. "id=colors" for anchor links.
func heading(level int, class string, content any, attrs ...string) template.HTML {
	if level < 1 || level > 4 {
		level = 1
	}
	tag := "h" + strconv.Itoa(level)
	return element(tag, joinClass("heading-"+strconv.Itoa(level), class), content, pickAttrs(attrs, "id"))
}

// text renders a paragraph-style element. Unknown variants render as regular, unknown tags as p.
// Optional attrs accept id, and for when the tag is label.
func text(variant, as, class string, content any, attrs ...string) template.HTML {
	v, err := enum.ParseTextVariant(variant)
	if err != nil {
		v = enum.TextVariantRegular
	}
	tag, err := enum.ParseTextTag(as)
	if err != nil {
		tag = enum.TextTagP
	}
	allowed := []string{"id"}
	if tag == enum.TextTagLabel {
		allowed = append(allowed, "for")
	}
	return element(tag.String(), joinClass(v.Class(), class), content, pickAttrs(attrs, allowed...))
}

// attr is a single escaped-on-render element attribute.
type attr struct{ name, value string }

// pickAttrs keeps the allowed non-empty "name=value" pairs, in the order given.
// Later duplicates override earlier ones.
func pickAttrs(pairs []string, allowed ...string) []attr {
	var res []attr
	for _, p := range pairs {
		name, value, ok := strings.Cut(p, "=")
		name, value = strings.TrimSpace(name), strings.TrimSpace(value)
		if !ok || value == "" || !slices.Contains(allowed, name) {
			continue
		}
		replaced := false
		for i := range res {
			if res[i].name == name {
				res[i].value, replaced = value, true
			}
		}
		if !replaced {
			res = append(res, attr{name: name, value: value})
		}
	}
	return res
}

// element builds the tag around escaped content. Content already of type template.HTML,
// e.g. a nested atom, is kept as is.
func element(tag, class string, content any, attrs []attr) template.HTML {
	var inner string
	switch c := content.(type) {
	case template.HTML:
		inner = string(c)
	case string:
		inner = template.HTMLEscapeString(c)
	default:
		inner = template.HTMLEscaper(c)
	}
	var b strings.Builder
	b.WriteString("<" + tag)
	for _, a := range attrs {
		b.WriteString(" " + a.name + `="` + template.HTMLEscapeString(a.value) + `"`)
	}
	b.WriteString(` class="` + template.HTMLEscapeString(class) + `">`)
	return template.HTML(b.String() + inner + "</" + tag + ">") //nolint:gosec // escaped above
}

func joinClass(base, extra string) string {
	return strings.TrimSpace(base + " " + strings.TrimSpace(extra))
}
