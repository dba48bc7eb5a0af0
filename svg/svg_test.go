package svg

import (
	"regexp"
	"strings"
	"testing"
)

func TestDocument_DefBeforeRef(t *testing.T) {
	doc := NewDocument(24, 24)

	el := Circle(12, 12, 8).Fill(URL("missing"))
	if err := doc.Add(el); err == nil {
		t.Fatal("expected an error for an unregistered fill reference")
	}

	if err := doc.DefLinearGradient("missing", "#000000", "#ffffff", Horizontal); err != nil {
		t.Fatalf("unexpected registration error: %v", err)
	}
	if err := doc.Add(el); err != nil {
		t.Fatalf("unexpected error after registration: %v", err)
	}
}

func TestDocument_NestedRefCheck(t *testing.T) {
	doc := NewDocument(24, 24)

	group := Group().Append(
		Line(0, 0, 10, 10).Stroke(URL("nope")),
	)
	if err := doc.Add(group); err == nil {
		t.Fatal("expected an error for an unregistered reference inside a group")
	}
}

func TestDocument_DuplicateDef(t *testing.T) {
	doc := NewDocument(24, 24)

	if err := doc.DefLinearGradient("grad", "#000000", "#ffffff", Vertical); err != nil {
		t.Fatalf("unexpected registration error: %v", err)
	}
	if err := doc.DefLinearGradient("grad", "#111111", "#eeeeee", Diagonal); err == nil {
		t.Fatal("expected an error for a duplicate definition id")
	}
}

// referencePattern extracts the ids used through url(#id) references.
var referencePattern = regexp.MustCompile(`url\(#([^)]+)\)`)

func TestDocument_SelfContainedReferences(t *testing.T) {
	doc := NewDocument(24, 24)
	if err := doc.DefLinearGradient("grad", "#4a6fff", "#00c2ff", Horizontal); err != nil {
		t.Fatal(err)
	}
	if err := doc.DefGlowFilter("glow", 3); err != nil {
		t.Fatal(err)
	}
	if err := doc.Add(
		Circle(12, 12, 8).Fill(URL("grad")).Filter("glow"),
		Line(0, 0, 24, 24).Stroke(URL("grad")),
	); err != nil {
		t.Fatal(err)
	}

	out := string(doc.Bytes())
	for _, m := range referencePattern.FindAllStringSubmatch(out, -1) {
		if !strings.Contains(out, `id="`+m[1]+`"`) {
			t.Errorf("reference %q has no matching definition in the output", m[1])
		}
	}
}

func TestDocument_Serialization(t *testing.T) {
	doc := NewDocument(240, 80)
	if err := doc.DefDropShadowFilter("shadow", 3); err != nil {
		t.Fatal(err)
	}
	if err := doc.Add(
		Rect(0, 0, 240, 80).Fill("#1a1d2b"),
		Text(75, 35, `Insight & "Wave" <beta>`).Fill("#4a6fff"),
	); err != nil {
		t.Fatal(err)
	}

	out := string(doc.Bytes())

	for _, want := range []string{
		`<svg xmlns="http://www.w3.org/2000/svg" width="240px" height="80px" viewBox="0 0 240 80" version="1.1">`,
		"<defs>",
		`<filter id="shadow">`,
		`<feGaussianBlur in="SourceAlpha" stdDeviation="3" />`,
		`<rect x="0" y="0" width="240" height="80" fill="#1a1d2b" />`,
		"Insight &amp; &quot;Wave&quot; &lt;beta&gt;",
		"</svg>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("serialized output missing %q:\n%s", want, out)
		}
	}

	// The defs section must precede the drawable elements.
	if strings.Index(out, "</defs>") > strings.Index(out, "<rect") {
		t.Error("defs section expected before the drawable elements")
	}
}

func TestFtoa(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{24, "24"},
		{0.5, "0.5"},
		{1.5, "1.5"},
		{20.48, "20.48"},
		{24.000000000000004, "24"},
		{61.44, "61.44"},
	}
	for _, c := range cases {
		if got := Ftoa(c.in); got != c.want {
			t.Errorf("Ftoa(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}
