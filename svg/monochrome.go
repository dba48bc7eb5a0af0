package svg

import "strings"

// Monochrome flattens a colored document into a single-color silhouette
// usable where multi-tone rendering is unsupported, such as browser
// pinned-tab icons. The reduction walks the element tree:
//
//   - fill and stroke attributes referencing a gradient through url(#id) are
//     replaced with the flat color;
//   - filter attribute references are removed;
//   - gradient and filter definitions are dropped from the defs section;
//   - any literal paint equal to darkColor is substituted with pure black.
//
// The source document is left untouched and the reduction is idempotent:
// applying it to its own output yields an identical document.
func Monochrome(doc *Document, flatColor, darkColor string) *Document {
	out := NewDocument(doc.width, doc.height)

	// Gradient and filter defs are dropped wholesale; nothing else is
	// registered by the composer, so the defs section ends up empty.
	// Re-registration cannot fail: the source registry already enforced
	// unique, non-empty ids.
	for _, def := range doc.defs {
		if def.name == "linearGradient" || def.name == "radialGradient" || def.name == "filter" {
			continue
		}
		_ = out.addDef(def.clone())
	}
	for _, el := range doc.elements {
		dup := el.clone()
		reduceElement(dup, flatColor, darkColor)
		out.elements = append(out.elements, dup)
	}
	return out
}

// reduceElement rewrites the paint attributes of a single element subtree.
func reduceElement(el *Element, flatColor, darkColor string) {
	for _, key := range []string{"fill", "stroke"} {
		val, ok := el.AttrVal(key)
		if !ok {
			continue
		}
		if _, isRef := refID(val); isRef {
			el.Attr(key, flatColor)
		} else if strings.EqualFold(val, darkColor) {
			el.Attr(key, "#000000")
		}
	}
	if _, ok := el.AttrVal("filter"); ok {
		el.removeAttr("filter")
	}
	for _, child := range el.children {
		reduceElement(child, flatColor, darkColor)
	}
}
