package assetgen

import (
	"testing"

	"github.com/insightwave/assetgen/svg"
)

// solidDocument builds a drawing fully covered by a single color.
func solidDocument(t *testing.T, fill string) *svg.Document {
	t.Helper()

	doc := svg.NewDocument(16, 16)
	if err := doc.Add(svg.Rect(0, 0, 16, 16).Fill(fill)); err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestRasterize_ExactSize(t *testing.T) {
	doc := solidDocument(t, "#ff0000")

	for _, size := range []int{16, 32, 48, 180, 512} {
		img, err := Rasterize(doc.Bytes(), size)
		if err != nil {
			t.Fatalf("unable to rasterize at %d: %v", size, err)
		}
		if img.Bounds().Dx() != size || img.Bounds().Dy() != size {
			t.Errorf("expected a %dx%d raster, got %dx%d",
				size, size, img.Bounds().Dx(), img.Bounds().Dy())
		}
	}
}

func TestRasterize_PixelContent(t *testing.T) {
	doc := solidDocument(t, "#ff0000")

	img, err := Rasterize(doc.Bytes(), 32)
	if err != nil {
		t.Fatal(err)
	}

	c := img.NRGBAAt(16, 16)
	if c.R < 200 || c.G > 50 || c.B > 50 || c.A < 200 {
		t.Errorf("center pixel expected to be red, got %+v", c)
	}
}

func TestRasterize_Deterministic(t *testing.T) {
	doc, err := AppIcon(DefaultBrand())
	if err != nil {
		t.Fatal(err)
	}
	data := doc.Bytes()

	first, err := Rasterize(data, 48)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Rasterize(data, 48)
	if err != nil {
		t.Fatal(err)
	}

	if len(first.Pix) != len(second.Pix) {
		t.Fatal("raster buffers differ in size")
	}
	for i := range first.Pix {
		if first.Pix[i] != second.Pix[i] {
			t.Fatalf("raster output not deterministic, first difference at byte %d", i)
		}
	}
}

func TestRasterize_InvalidInput(t *testing.T) {
	if _, err := Rasterize([]byte("<svg"), 16); err == nil {
		t.Error("expected an error for malformed vector data")
	}
	doc := solidDocument(t, "#ff0000")
	if _, err := Rasterize(doc.Bytes(), 0); err == nil {
		t.Error("expected an error for a zero raster size")
	}
}
