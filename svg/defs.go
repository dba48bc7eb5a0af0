package svg

// Direction selects the fixed start/end vector of a linear gradient.
type Direction int

// Supported gradient directions.
const (
	Horizontal Direction = iota
	Vertical
	Diagonal
)

// DefLinearGradient registers a two-stop linear gradient under the given id.
// The direction maps to fixed object-bounding-box coordinates. The gradient
// must be registered before any element references it through url(#id).
func (d *Document) DefLinearGradient(id, startColor, endColor string, dir Direction) error {
	grad := NewElement("linearGradient").Attr("id", id)

	switch dir {
	case Vertical:
		grad.Attr("x1", "0.5").Attr("y1", "0").Attr("x2", "0.5").Attr("y2", "1")
	case Diagonal:
		grad.Attr("x1", "0").Attr("y1", "0").Attr("x2", "1").Attr("y2", "1")
	default: // Horizontal
		grad.Attr("x1", "0").Attr("y1", "0.5").Attr("x2", "1").Attr("y2", "0.5")
	}

	grad.Append(
		NewElement("stop").Attr("offset", "0").Attr("stop-color", startColor),
		NewElement("stop").Attr("offset", "1").Attr("stop-color", endColor),
	)
	return d.addDef(grad)
}

// DefDropShadowFilter registers a drop shadow filter chain under the given id:
// a blurred, offset copy of the source alpha is composed back under the
// source graphic at reduced opacity.
func (d *Document) DefDropShadowFilter(id string, stdDeviation float64) error {
	filter := NewElement("filter").Attr("id", id)
	filter.Append(
		NewElement("feGaussianBlur").Attr("in", "SourceAlpha").Attr("stdDeviation", Ftoa(stdDeviation)),
		NewElement("feOffset").Attr("dx", "1").Attr("dy", "1"),
		NewElement("feComposite").Attr("in2", "SourceAlpha").Attr("operator", "arithmetic").
			Attr("k2", "-1").Attr("k3", "1"),
		NewElement("feColorMatrix").Attr("values", "0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0.3 0"),
		NewElement("feBlend").Attr("in", "SourceGraphic").Attr("mode", "normal"),
	)
	return d.addDef(filter)
}

// DefGlowFilter registers a glow filter chain under the given id. The source
// alpha is blurred by the given strength and the softened result is
// screen-blended with the source graphic.
func (d *Document) DefGlowFilter(id string, strength float64) error {
	filter := NewElement("filter").Attr("id", id)

	transfer := NewElement("feComponentTransfer").Append(
		NewElement("feFuncA").Attr("type", "linear").Attr("slope", "0.7"),
	)
	filter.Append(
		NewElement("feColorMatrix").Attr("type", "matrix").
			Attr("values", "0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 1 0"),
		NewElement("feGaussianBlur").Attr("stdDeviation", Ftoa(strength)),
		transfer,
		NewElement("feBlend").Attr("in", "SourceGraphic").Attr("mode", "screen"),
	)
	return d.addDef(filter)
}
