package assetgen

import "github.com/insightwave/assetgen/svg"

// iconSize is the canvas dimension shared by every UI icon.
const iconSize = 24

// IconBuilder composes one named UI icon for the given brand.
type IconBuilder func(Brand) (*svg.Document, error)

// UIIconNames lists the UI icons in their generation order.
var UIIconNames = []string{
	"send", "settings", "close", "menu", "user", "assistant", "attachment",
	"copy", "download", "edit", "delete", "theme", "notification",
}

// UIIcons maps each icon name to its builder. Every builder follows the same
// pattern: register the icon-scoped gradient (scoped ids avoid collisions
// when icons are later inlined into one page), add the icon geometry, done.
var UIIcons = map[string]IconBuilder{
	"send":         SendIcon,
	"settings":     SettingsIcon,
	"close":        CloseIcon,
	"menu":         MenuIcon,
	"user":         UserIcon,
	"assistant":    AssistantIcon,
	"attachment":   AttachmentIcon,
	"copy":         CopyIcon,
	"download":     DownloadIcon,
	"edit":         EditIcon,
	"delete":       DeleteIcon,
	"theme":        ThemeIcon,
	"notification": NotificationIcon,
}

// newIcon creates an icon canvas with its scoped gradient already registered.
func newIcon(id string, start, end Color, dir svg.Direction) (*svg.Document, error) {
	doc := svg.NewDocument(iconSize, iconSize)
	if err := doc.DefLinearGradient(id, string(start), string(end), dir); err != nil {
		return nil, err
	}
	return doc, nil
}

// SendIcon composes the send message icon: a paper plane polygon.
func SendIcon(b Brand) (*svg.Document, error) {
	doc, err := newIcon("sendGradient", b.Primary, b.Accent, svg.Horizontal)
	if err != nil {
		return nil, err
	}

	plane := svg.Polygon(polygonPoints([]Point{
		{2, 2},   // top left
		{22, 12}, // right point
		{2, 22},  // bottom left
		{8, 12},  // middle indentation
	})).Fill(svg.URL("sendGradient"))

	if err := doc.Add(plane); err != nil {
		return nil, err
	}
	return doc, nil
}

// SettingsIcon composes the settings icon: an eight-tooth gear with a hub.
func SettingsIcon(b Brand) (*svg.Document, error) {
	doc, err := newIcon("settingsGradient", b.Primary, b.Secondary, svg.Horizontal)
	if err != nil {
		return nil, err
	}

	const center = iconSize / 2.0
	gear := svg.Polygon(polygonPoints(
		GearPolygon(center, center, iconSize*0.4, iconSize*0.25, 8),
	)).Fill(svg.URL("settingsGradient"))
	hub := svg.Circle(center, center, iconSize*0.12).Fill("white")

	if err := doc.Add(gear, hub); err != nil {
		return nil, err
	}
	return doc, nil
}

// CloseIcon composes the close icon: two crossed diagonal lines.
func CloseIcon(b Brand) (*svg.Document, error) {
	doc, err := newIcon("closeGradient", b.Error, b.Secondary, svg.Horizontal)
	if err != nil {
		return nil, err
	}

	stroke := func(el *svg.Element) *svg.Element {
		return el.Stroke(svg.URL("closeGradient")).StrokeWidth(3).Linecap("round")
	}
	if err := doc.Add(
		stroke(svg.Line(4, 4, 20, 20)),
		stroke(svg.Line(4, 20, 20, 4)),
	); err != nil {
		return nil, err
	}
	return doc, nil
}

// MenuIcon composes the hamburger menu icon: three parallel horizontal lines.
func MenuIcon(b Brand) (*svg.Document, error) {
	doc, err := newIcon("menuGradient", b.Primary, b.Accent, svg.Horizontal)
	if err != nil {
		return nil, err
	}

	for _, y := range []float64{6, 12, 18} {
		line := svg.Line(4, y, 20, y).
			Stroke(svg.URL("menuGradient")).
			StrokeWidth(2).
			Linecap("round")
		if err := doc.Add(line); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// UserIcon composes the user icon: a head circle above a shoulder arc.
func UserIcon(b Brand) (*svg.Document, error) {
	doc, err := newIcon("userGradient", b.Primary, b.Secondary, svg.Horizontal)
	if err != nil {
		return nil, err
	}

	head := svg.Circle(12, 8, 5).Fill(svg.URL("userGradient"))
	body := svg.Path("M4,21 A8,5 0 0 1 20,21").
		Fill("none").
		Stroke(svg.URL("userGradient")).
		StrokeWidth(2)

	if err := doc.Add(head, body); err != nil {
		return nil, err
	}
	return doc, nil
}

// AssistantIcon composes the assistant icon: a rounded robot face with eyes,
// mouth and antenna.
func AssistantIcon(b Brand) (*svg.Document, error) {
	doc, err := newIcon("assistantGradient", b.Accent, b.Primary, svg.Horizontal)
	if err != nil {
		return nil, err
	}

	face := svg.Rect(4, 4, 16, 16).
		Attr("rx", "4").Attr("ry", "4").
		Fill(svg.URL("assistantGradient"))
	eye1 := svg.Circle(9, 10, 1.5).Fill("white")
	eye2 := svg.Circle(15, 10, 1.5).Fill("white")
	mouth := svg.Path("M8,16 L16,16").
		Stroke("white").StrokeWidth(1.5).Linecap("round")
	antenna := svg.Path("M12,4 L12,1 M9,2 L15,2").
		Stroke(svg.URL("assistantGradient")).
		StrokeWidth(1.5).
		Linecap("round")

	if err := doc.Add(face, eye1, eye2, mouth, antenna); err != nil {
		return nil, err
	}
	return doc, nil
}

// AttachmentIcon composes the attachment icon: a paperclip outline.
func AttachmentIcon(b Brand) (*svg.Document, error) {
	doc, err := newIcon("attachGradient", b.Primary, b.Secondary, svg.Horizontal)
	if err != nil {
		return nil, err
	}

	clip := svg.Path("M21.44,11.05l-9.19,9.19a6,6,0,0,1-8.49-8.49l9.19-9.19a4,4,0,0,1,5.66,5.66l-9.2,9.19a2,2,0,0,1-2.83-2.83l8.49-8.48").
		Fill("none").
		Stroke(svg.URL("attachGradient")).
		StrokeWidth(2).
		Linecap("round").
		Linejoin("round")

	if err := doc.Add(clip); err != nil {
		return nil, err
	}
	return doc, nil
}

// CopyIcon composes the copy icon: a clipboard behind a ruled sheet of paper.
func CopyIcon(b Brand) (*svg.Document, error) {
	doc, err := newIcon("copyGradient", b.Primary, b.Accent, svg.Horizontal)
	if err != nil {
		return nil, err
	}

	board := svg.Rect(7, 4, 12, 16).
		Attr("rx", "1").Attr("ry", "1").
		Fill("none").
		Stroke(svg.URL("copyGradient")).
		StrokeWidth(1.5)
	paper := svg.Rect(4, 7, 12, 16).
		Attr("rx", "1").Attr("ry", "1").
		Fill("white").
		Stroke(svg.URL("copyGradient")).
		StrokeWidth(1.5)

	rule := func(x1, y, x2 float64) *svg.Element {
		return svg.Line(x1, y, x2, y).
			Stroke(svg.URL("copyGradient")).
			StrokeWidth(1).
			Linecap("round")
	}
	if err := doc.Add(board, paper, rule(7, 12, 13), rule(7, 15, 13), rule(7, 18, 11)); err != nil {
		return nil, err
	}
	return doc, nil
}

// DownloadIcon composes the download icon: an arrow dropping onto a baseline.
func DownloadIcon(b Brand) (*svg.Document, error) {
	doc, err := newIcon("downloadGradient", b.Primary, b.Success, svg.Horizontal)
	if err != nil {
		return nil, err
	}

	arrow := svg.Path("M12,4 L12,16 M7,12 L12,17 L17,12").
		Fill("none").
		Stroke(svg.URL("downloadGradient")).
		StrokeWidth(2).
		Linecap("round")
	baseline := svg.Path("M4,20 L20,20").
		Stroke(svg.URL("downloadGradient")).
		StrokeWidth(2).
		Linecap("round")

	if err := doc.Add(arrow, baseline); err != nil {
		return nil, err
	}
	return doc, nil
}

// EditIcon composes the edit icon: a pencil outline with a tip detail.
func EditIcon(b Brand) (*svg.Document, error) {
	doc, err := newIcon("editGradient", b.Primary, b.Warning, svg.Horizontal)
	if err != nil {
		return nil, err
	}

	pencil := svg.Path("M17,3 L21,7 L7,21 L3,21 L3,17 L17,3 Z").
		Fill("none").
		Stroke(svg.URL("editGradient")).
		StrokeWidth(1.5).
		Linecap("round").
		Linejoin("round")
	tip := svg.Path("M15,5 L19,9").
		Stroke(svg.URL("editGradient")).
		StrokeWidth(1).
		Linecap("round")

	if err := doc.Add(pencil, tip); err != nil {
		return nil, err
	}
	return doc, nil
}

// DeleteIcon composes the delete icon: a trash can with lid and two ribs.
func DeleteIcon(b Brand) (*svg.Document, error) {
	doc, err := newIcon("deleteGradient", b.Error, b.Secondary, svg.Horizontal)
	if err != nil {
		return nil, err
	}

	can := svg.Path("M5,6 L19,6 L18,21 L6,21 L5,6 Z").
		Fill("none").
		Stroke(svg.URL("deleteGradient")).
		StrokeWidth(1.5).
		Linecap("round").
		Linejoin("round")
	lid := svg.Path("M3,6 L21,6 M9,3 L15,3 L15,6").
		Stroke(svg.URL("deleteGradient")).
		StrokeWidth(1.5).
		Linecap("round").
		Linejoin("round")

	rib := func(x float64) *svg.Element {
		return svg.Line(x, 10, x, 17).
			Stroke(svg.URL("deleteGradient")).
			StrokeWidth(1.5).
			Linecap("round")
	}
	if err := doc.Add(can, lid, rib(10), rib(14)); err != nil {
		return nil, err
	}
	return doc, nil
}

// ThemeIcon composes the theme icon: a painter's palette with color dots.
func ThemeIcon(b Brand) (*svg.Document, error) {
	doc, err := newIcon("themeGradient", b.Primary, b.Secondary, svg.Horizontal)
	if err != nil {
		return nil, err
	}

	dots := []struct {
		color Color
		pos   Point
	}{
		{b.Primary, Point{8, 8}},
		{b.Secondary, Point{12, 10}},
		{b.Accent, Point{8, 14}},
		{b.Success, Point{16, 8}},
	}
	for _, d := range dots {
		dot := svg.Circle(d.pos.X, d.pos.Y, 1.5).Fill(string(d.color))
		if err := doc.Add(dot); err != nil {
			return nil, err
		}
	}

	palette := svg.Path("M12,2 A10,10 0 1 0 17.5,21 A4,4 0 0 1 17.5,13 A4,4 0 0 1 21.5,13 C21.5,10 20,2 12,2 Z").
		Fill("none").
		Stroke(svg.URL("themeGradient")).
		StrokeWidth(1.5).
		Linecap("round").
		Linejoin("round")

	if err := doc.Add(palette); err != nil {
		return nil, err
	}
	return doc, nil
}

// NotificationIcon composes the notification icon: a bell with ringer and dot.
func NotificationIcon(b Brand) (*svg.Document, error) {
	doc, err := newIcon("notifyGradient", b.Warning, b.Accent, svg.Horizontal)
	if err != nil {
		return nil, err
	}

	bell := svg.Path("M18,8 A6,6 0 0 0 6,8 C6,18 3,20 3,20 L21,20 C21,20 18,18 18,8 Z").
		Fill("none").
		Stroke(svg.URL("notifyGradient")).
		StrokeWidth(1.5).
		Linecap("round").
		Linejoin("round")
	ringer := svg.Path("M12,20 L12,22").
		Stroke(svg.URL("notifyGradient")).
		StrokeWidth(1.5).
		Linecap("round")
	dot := svg.Circle(12, 3, 1).Fill(svg.URL("notifyGradient"))

	if err := doc.Add(bell, ringer, dot); err != nil {
		return nil, err
	}
	return doc, nil
}
