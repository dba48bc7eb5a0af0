package assetgen

import (
	"math"

	"github.com/insightwave/assetgen/svg"
)

// Logo canvas dimensions in pixels.
const (
	logoWidth  = 240
	logoHeight = 80
)

// Logo composes the InsightWave logo: two overlapping wave strokes, the
// bulb-and-rays insight motif and the two word-mark labels.
func Logo(b Brand) (*svg.Document, error) {
	doc := svg.NewDocument(logoWidth, logoHeight)

	if err := doc.DefLinearGradient("logoGradient",
		string(b.GradientStart), string(b.GradientEnd), svg.Horizontal); err != nil {
		return nil, err
	}
	if err := doc.DefGlowFilter("logoGlow", 3); err != nil {
		return nil, err
	}

	wave1 := WavePath(logoWidth, logoHeight/2, 0.35, 1.5, 0)
	wave2 := WavePath(logoWidth, logoHeight/2, 0.25, 1.8, math.Pi/2)

	wave1Path := svg.Path(polylineData(wave1, 0, 10)).
		Fill("none").
		Stroke(svg.URL("logoGradient")).
		StrokeWidth(6).
		Linecap("round").
		Filter("logoGlow")

	wave2Path := svg.Path(polylineData(wave2, 0, 25)).
		Fill("none").
		Stroke(svg.URL("logoGradient")).
		StrokeWidth(4).
		Linecap("round").
		Opacity(0.8)

	// The bulb with its eight radiating rays at 45 degree steps.
	bulb := svg.Group()
	for i := 0; i < 8; i++ {
		angle := float64(i) * math.Pi / 4
		bulb.Append(svg.Line(45, 30, 45+25*math.Cos(angle), 30+25*math.Sin(angle)).
			Stroke(svg.URL("logoGradient")).
			StrokeWidth(2).
			Opacity(0.6).
			Linecap("round"))
	}
	bulb.Append(svg.Circle(45, 30, 18).Fill(svg.URL("logoGradient")))

	labels := svg.Group().
		Attr("font-family", "Arial, sans-serif").
		Attr("font-weight", "bold").
		Append(
			svg.Text(75, 35, "Insight").Attr("font-size", "24").Fill(string(b.Primary)),
			svg.Text(75, 60, "Wave").Attr("font-size", "24").Fill(string(b.Accent)),
		)

	if err := doc.Add(wave1Path, wave2Path, bulb, labels); err != nil {
		return nil, err
	}
	return doc, nil
}
