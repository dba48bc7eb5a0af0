package assetgen

import "testing"

func TestGradientStops_Endpoints(t *testing.T) {
	b := DefaultBrand()

	for _, count := range []int{2, 3, 5, 10, 64} {
		stops := b.GradientStops(count)
		if len(stops) != count {
			t.Fatalf("expected %d stops, got %d", count, len(stops))
		}
		if stops[0] != b.GradientStart {
			t.Errorf("stop 0 expected to be the start color %s, got %s", b.GradientStart, stops[0])
		}
		if stops[count-1] != b.GradientEnd {
			t.Errorf("stop %d expected to be the end color %s, got %s", count-1, b.GradientEnd, stops[count-1])
		}
	}
}

func TestGradientStops_SingleStop(t *testing.T) {
	b := DefaultBrand()

	stops := b.GradientStops(1)
	if len(stops) != 1 {
		t.Fatalf("expected a single stop, got %d", len(stops))
	}
	if stops[0] != b.GradientStart {
		t.Errorf("a single stop expected to be the start color %s, got %s", b.GradientStart, stops[0])
	}
}

func TestGradientStops_MonotonicChannels(t *testing.T) {
	b := DefaultBrand()
	stops := b.GradientStops(8)

	prevR := -1
	for _, stop := range stops {
		r, _, bb, err := stop.RGB()
		if err != nil {
			t.Fatalf("unexpected parse error: %v", err)
		}
		// The default gradient goes from #4A6FFF to #00C2FF: the red channel
		// decreases while the blue channel stays saturated.
		if prevR != -1 && int(r) > prevR {
			t.Errorf("red channel expected to decrease, got %d after %d", r, prevR)
		}
		if bb != 0xFF {
			t.Errorf("blue channel expected to stay at 255, got %d", bb)
		}
		prevR = int(r)
	}
}

func TestColorRGB(t *testing.T) {
	r, g, b, err := Color("#4A6FFF").RGB()
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if r != 0x4A || g != 0x6F || b != 0xFF {
		t.Errorf("expected channels 4A/6F/FF, got %02X/%02X/%02X", r, g, b)
	}

	for _, invalid := range []Color{"", "4A6FFF", "#4A6F", "#GGGGGG"} {
		if _, _, _, err := invalid.RGB(); err == nil {
			t.Errorf("expected a parse error for %q", invalid)
		}
	}
}

func TestColorRoundTrip(t *testing.T) {
	// Formatting must reproduce the canonical uppercase literal, otherwise
	// interpolated gradient endpoints no longer compare equal to the
	// configured brand colors.
	for _, c := range []Color{"#4A6FFF", "#00C2FF", "#1A1D2B", "#000000"} {
		r, g, b, err := c.RGB()
		if err != nil {
			t.Fatalf("unexpected parse error: %v", err)
		}
		if got := rgbToColor(r, g, b); got != c {
			t.Errorf("round trip of %s produced %s", c, got)
		}
	}
}
