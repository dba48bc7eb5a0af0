package assetgen

import (
	"math"

	"github.com/insightwave/assetgen/svg"
)

// appIconSize is the master app icon canvas dimension; every raster variant
// is derived from this single drawing.
const appIconSize = 512

// AppIcon composes the master 512px app icon: a rounded-square dark
// background, a single glowing wave stroke and the bulb-and-rays motif
// scaled up for the larger canvas.
func AppIcon(b Brand) (*svg.Document, error) {
	size := float64(appIconSize)

	doc := svg.NewDocument(appIconSize, appIconSize)

	if err := doc.DefLinearGradient("iconGradient",
		string(b.GradientStart), string(b.GradientEnd), svg.Diagonal); err != nil {
		return nil, err
	}
	if err := doc.DefGlowFilter("iconGlow", 4); err != nil {
		return nil, err
	}

	background := svg.Rect(0, 0, size, size).
		Attr("rx", svg.Ftoa(size/4)).
		Attr("ry", svg.Ftoa(size/4)).
		Fill(string(b.Dark))

	cx, cy := size/2, size/2

	waveWidth := int(size * 0.8)
	waveHeight := int(size * 0.5)
	waveStartX := (size - size*0.8) / 2
	waveStartY := cy + size*0.05

	wave := WavePath(waveWidth, waveHeight, 0.3, 1.5, 0)
	wavePath := svg.Path(polylineData(wave, waveStartX, waveStartY)).
		Fill("none").
		Stroke(svg.URL("iconGradient")).
		StrokeWidth(size / 25).
		Linecap("round").
		Filter("iconGlow")

	bulbCX := cx
	bulbCY := cy - size*0.15
	bulbR := size * 0.12

	bulb := svg.Circle(bulbCX, bulbCY, bulbR).
		Fill(svg.URL("iconGradient")).
		Filter("iconGlow")

	rays := svg.Group()
	for i := 0; i < 8; i++ {
		angle := float64(i) * math.Pi / 4
		innerR := bulbR * 1.1
		outerR := bulbR * 1.6

		rays.Append(svg.Line(
			bulbCX+innerR*math.Cos(angle), bulbCY+innerR*math.Sin(angle),
			bulbCX+outerR*math.Cos(angle), bulbCY+outerR*math.Sin(angle)).
			Stroke(svg.URL("iconGradient")).
			StrokeWidth(size / 60).
			Opacity(0.8).
			Linecap("round"))
	}

	if err := doc.Add(background, wavePath, bulb, rays); err != nil {
		return nil, err
	}
	return doc, nil
}
