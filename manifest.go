package assetgen

import (
	"encoding/json"
	"fmt"
	"os"
)

// ManifestIcon is one entry of the manifest "icons" array.
type ManifestIcon struct {
	Src   string `json:"src"`
	Sizes string `json:"sizes"`
	Type  string `json:"type"`
}

// manifestIconSizes lists the raster sizes referenced from the manifest.
var manifestIconSizes = []int{48, 72, 96, 144, 192, 256, 384, 512}

// ManifestIcons returns the fixed icon reference list matching the generated
// PNG set, in ascending size order.
func ManifestIcons() []ManifestIcon {
	icons := make([]ManifestIcon, 0, len(manifestIconSizes))
	for _, size := range manifestIconSizes {
		icons = append(icons, ManifestIcon{
			Src:   fmt.Sprintf("assets/images/app-icon-%d.png", size),
			Sizes: fmt.Sprintf("%dx%d", size, size),
			Type:  "image/png",
		})
	}
	return icons
}

// WriteManifest merges the generated icon references and the brand defaults
// into the manifest document at the given path. A missing or malformed file
// is tolerated by starting from an empty document. The seven metadata fields
// are set only when absent, preserving operator customization; the "icons"
// array is always replaced as a whole.
func WriteManifest(path string, b Brand) error {
	manifest := map[string]interface{}{}

	if data, err := os.ReadFile(path); err == nil {
		// A document that does not parse is discarded, not repaired.
		if err := json.Unmarshal(data, &manifest); err != nil {
			manifest = map[string]interface{}{}
		}
	}

	defaults := map[string]interface{}{
		"name":             b.Name,
		"short_name":       b.ShortName,
		"description":      b.Description,
		"theme_color":      string(b.Primary),
		"background_color": string(b.Dark),
		"display":          b.Display,
		"start_url":        b.StartURL,
	}
	for key, val := range defaults {
		if _, ok := manifest[key]; !ok {
			manifest[key] = val
		}
	}
	manifest["icons"] = ManifestIcons()

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("unable to encode the manifest: %v", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("unable to write the manifest: %v", err)
	}
	return nil
}
