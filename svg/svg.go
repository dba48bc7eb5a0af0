// Package svg implements a minimal structural model for building, serializing
// and rewriting SVG documents. Unlike a streaming writer, the model keeps the
// whole element tree in memory, which makes two things possible: paint and
// filter definitions can be verified before any element references them, and
// post-processing (such as the monochrome reduction) can walk the tree instead
// of rewriting serialized markup.
package svg

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Attr is a single element attribute. Attributes keep their insertion order
// when the document is serialized.
type Attr struct {
	Key string
	Val string
}

// Element is a node of the document tree: a shape, a text span or a group.
type Element struct {
	name     string
	attrs    []Attr
	text     string
	children []*Element
}

// NewElement creates an element with the given tag name.
func NewElement(name string) *Element {
	return &Element{name: name}
}

// Name returns the element tag name.
func (e *Element) Name() string {
	return e.name
}

// Attr sets a raw attribute and returns the element for chaining.
// Setting an attribute twice overwrites the previous value in place.
func (e *Element) Attr(key, val string) *Element {
	for i, a := range e.attrs {
		if a.Key == key {
			e.attrs[i].Val = val
			return e
		}
	}
	e.attrs = append(e.attrs, Attr{Key: key, Val: val})
	return e
}

// AttrVal returns the attribute value and whether the attribute is set.
func (e *Element) AttrVal(key string) (string, bool) {
	for _, a := range e.attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// removeAttr deletes the attribute if present.
func (e *Element) removeAttr(key string) {
	for i, a := range e.attrs {
		if a.Key == key {
			e.attrs = append(e.attrs[:i], e.attrs[i+1:]...)
			return
		}
	}
}

// Fill sets the fill paint.
func (e *Element) Fill(paint string) *Element {
	return e.Attr("fill", paint)
}

// Stroke sets the stroke paint.
func (e *Element) Stroke(paint string) *Element {
	return e.Attr("stroke", paint)
}

// StrokeWidth sets the stroke width.
func (e *Element) StrokeWidth(w float64) *Element {
	return e.Attr("stroke-width", Ftoa(w))
}

// Linecap sets the stroke line cap style.
func (e *Element) Linecap(style string) *Element {
	return e.Attr("stroke-linecap", style)
}

// Linejoin sets the stroke line join style.
func (e *Element) Linejoin(join string) *Element {
	return e.Attr("stroke-linejoin", join)
}

// Opacity sets the element opacity.
func (e *Element) Opacity(o float64) *Element {
	return e.Attr("opacity", Ftoa(o))
}

// Filter references a registered filter definition by id.
func (e *Element) Filter(id string) *Element {
	return e.Attr("filter", URL(id))
}

// Append adds a child node and returns the parent for chaining.
func (e *Element) Append(children ...*Element) *Element {
	e.children = append(e.children, children...)
	return e
}

// Path creates a path element from the given path data.
func Path(data string) *Element {
	return NewElement("path").Attr("d", data)
}

// Polygon creates a polygon element from a serialized point list.
func Polygon(points string) *Element {
	return NewElement("polygon").Attr("points", points)
}

// Line creates a line element between two points.
func Line(x1, y1, x2, y2 float64) *Element {
	return NewElement("line").
		Attr("x1", Ftoa(x1)).Attr("y1", Ftoa(y1)).
		Attr("x2", Ftoa(x2)).Attr("y2", Ftoa(y2))
}

// Circle creates a circle element.
func Circle(cx, cy, r float64) *Element {
	return NewElement("circle").
		Attr("cx", Ftoa(cx)).Attr("cy", Ftoa(cy)).Attr("r", Ftoa(r))
}

// Rect creates a rectangle element.
func Rect(x, y, w, h float64) *Element {
	return NewElement("rect").
		Attr("x", Ftoa(x)).Attr("y", Ftoa(y)).
		Attr("width", Ftoa(w)).Attr("height", Ftoa(h))
}

// Text creates a text element at the given anchor point.
func Text(x, y float64, content string) *Element {
	el := NewElement("text").Attr("x", Ftoa(x)).Attr("y", Ftoa(y))
	el.text = content
	return el
}

// Group creates an empty group element.
func Group() *Element {
	return NewElement("g")
}

// URL formats a definition id as a url(#id) paint reference.
func URL(id string) string {
	return fmt.Sprintf("url(#%s)", id)
}

// Ftoa formats a coordinate value, trimming the fractional part when the
// value is a whole number. Values are rounded to three decimals to keep the
// serialized output stable.
func Ftoa(v float64) string {
	v = math.Round(v*1000) / 1000
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Document is a fixed-size SVG canvas holding an ordered list of elements and
// a defs section with the gradient and filter definitions they reference.
type Document struct {
	width    int
	height   int
	defs     []*Element
	defIDs   map[string]struct{}
	elements []*Element
}

// NewDocument creates an empty canvas of the given pixel dimensions.
func NewDocument(width, height int) *Document {
	return &Document{
		width:  width,
		height: height,
		defIDs: map[string]struct{}{},
	}
}

// Size returns the canvas pixel dimensions.
func (d *Document) Size() (int, int) {
	return d.width, d.height
}

// HasDef reports whether a definition with the given id is registered.
func (d *Document) HasDef(id string) bool {
	_, ok := d.defIDs[id]
	return ok
}

// addDef registers a definition element under its id attribute.
func (d *Document) addDef(def *Element) error {
	id, ok := def.AttrVal("id")
	if !ok || id == "" {
		return fmt.Errorf("svg: definition %q has no id", def.name)
	}
	if d.HasDef(id) {
		return fmt.Errorf("svg: duplicate definition id %q", id)
	}
	d.defs = append(d.defs, def)
	d.defIDs[id] = struct{}{}
	return nil
}

// Add appends elements to the document. An element (or any of its children)
// referencing an unregistered definition through a fill, stroke or filter
// attribute is rejected, which rules out dangling url(#id) references in the
// serialized output.
func (d *Document) Add(elements ...*Element) error {
	for _, el := range elements {
		if err := d.checkRefs(el); err != nil {
			return err
		}
	}
	d.elements = append(d.elements, elements...)
	return nil
}

// checkRefs walks the element subtree and verifies every url(#id) reference.
func (d *Document) checkRefs(el *Element) error {
	for _, key := range []string{"fill", "stroke", "filter"} {
		val, ok := el.AttrVal(key)
		if !ok {
			continue
		}
		id, isRef := refID(val)
		if isRef && !d.HasDef(id) {
			return fmt.Errorf("svg: element %q references unregistered definition %q", el.name, id)
		}
	}
	for _, child := range el.children {
		if err := d.checkRefs(child); err != nil {
			return err
		}
	}
	return nil
}

// refID extracts the definition id from a url(#id) value.
func refID(val string) (string, bool) {
	if strings.HasPrefix(val, "url(#") && strings.HasSuffix(val, ")") {
		return val[len("url(#") : len(val)-1], true
	}
	return "", false
}

// WriteTo serializes the document as SVG 1.1 markup.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, `<?xml version="1.0" encoding="utf-8"?>`+"\n")
	fmt.Fprintf(&buf,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%dpx" height="%dpx" viewBox="0 0 %d %d" version="1.1">`+"\n",
		d.width, d.height, d.width, d.height)

	if len(d.defs) > 0 {
		buf.WriteString("<defs>\n")
		for _, def := range d.defs {
			writeElement(&buf, def)
		}
		buf.WriteString("</defs>\n")
	}
	for _, el := range d.elements {
		writeElement(&buf, el)
	}
	buf.WriteString("</svg>\n")

	n, err := w.Write(buf.Bytes())
	return int64(n), err
}

// Bytes returns the serialized document.
func (d *Document) Bytes() []byte {
	var buf bytes.Buffer
	d.WriteTo(&buf)
	return buf.Bytes()
}

// WriteFile serializes the document into the named file.
func (d *Document) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("svg: unable to create %s: %v", path, err)
	}
	defer f.Close()

	if _, err := d.WriteTo(f); err != nil {
		return fmt.Errorf("svg: unable to write %s: %v", path, err)
	}
	return nil
}

// writeElement serializes a single element subtree.
func writeElement(buf *bytes.Buffer, el *Element) {
	buf.WriteByte('<')
	buf.WriteString(el.name)
	for _, a := range el.attrs {
		fmt.Fprintf(buf, ` %s="%s"`, a.Key, escape(a.Val))
	}
	if el.text == "" && len(el.children) == 0 {
		buf.WriteString(" />\n")
		return
	}
	buf.WriteByte('>')
	if el.text != "" {
		buf.WriteString(escape(el.text))
	}
	if len(el.children) > 0 {
		buf.WriteByte('\n')
		for _, child := range el.children {
			writeElement(buf, child)
		}
	}
	fmt.Fprintf(buf, "</%s>\n", el.name)
}

// escape replaces the XML metacharacters in attribute values and text nodes.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escape(s string) string {
	return escaper.Replace(s)
}

// clone makes a deep copy of the element subtree.
func (e *Element) clone() *Element {
	dup := &Element{
		name:  e.name,
		attrs: append([]Attr(nil), e.attrs...),
		text:  e.text,
	}
	for _, child := range e.children {
		dup.children = append(dup.children, child.clone())
	}
	return dup
}
