package assetgen

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/insightwave/assetgen/svg"
	"github.com/insightwave/assetgen/utils"
)

// Output layout relative to the project root.
const (
	assetsDirName = "assets"
	iconsDirName  = "icons"
	imagesDirName = "images"

	manifestFileName = "manifest.json"
)

// appIconFile pairs a raster output file name with its pixel size.
type appIconFile struct {
	name string
	size int
}

// appIconFiles lists every raster variant derived from the master app icon:
// the PWA set plus the Apple touch and Microsoft tile variants.
var appIconFiles = []appIconFile{
	{"app-icon-16.png", 16},
	{"app-icon-32.png", 32},
	{"app-icon-48.png", 48},
	{"app-icon-72.png", 72},
	{"app-icon-96.png", 96},
	{"app-icon-144.png", 144},
	{"app-icon-192.png", 192},
	{"app-icon-256.png", 256},
	{"app-icon-384.png", 384},
	{"app-icon-512.png", 512},
	{"apple-touch-icon.png", 180},
	{"apple-touch-icon-precomposed.png", 180},
	{"ms-tile-image.png", 144},
}

// faviconSizes lists the raster sizes embedded into the favicon container,
// smallest first. The first entry doubles as the container's default size.
var faviconSizes = []int{16, 32, 48}

// Generator drives the one-shot asset generation pipeline. It owns a scratch
// directory for intermediate renders which is created on construction and
// removed by Close.
type Generator struct {
	// Brand is the immutable brand configuration fed to the composers.
	Brand Brand

	// Root is the project root; the assets tree and the manifest document
	// are created underneath it.
	Root string

	// Verbose enables the per-stage status lines.
	Verbose bool

	// Status receives the per-stage status lines, stderr by default. The
	// CLI redirects it while the spinner owns the terminal line.
	Status io.Writer

	scratch string
}

// NewGenerator creates a generator rooted at the given project directory
// using the default brand configuration.
func NewGenerator(root string) (*Generator, error) {
	scratch, err := os.MkdirTemp("", "assetgen")
	if err != nil {
		return nil, fmt.Errorf("unable to create the scratch directory: %v", err)
	}
	return &Generator{
		Brand:   DefaultBrand(),
		Root:    root,
		Status:  os.Stderr,
		scratch: scratch,
	}, nil
}

// Close removes the scratch directory. Cleanup is best effort: the directory
// holds only intermediate renders, so removal failures are ignored.
func (g *Generator) Close() {
	os.RemoveAll(g.scratch)
}

// iconsDir returns the vector asset output directory.
func (g *Generator) iconsDir() string {
	return filepath.Join(g.Root, assetsDirName, iconsDirName)
}

// imagesDir returns the raster asset output directory.
func (g *Generator) imagesDir() string {
	return filepath.Join(g.Root, assetsDirName, imagesDirName)
}

// Run executes the full pipeline: logo, UI icons, app icon rasters, favicon
// container, monochrome silhouette and manifest update. Any failure aborts
// the run; previously written files are left in place.
func (g *Generator) Run() error {
	for _, dir := range []string{g.iconsDir(), g.imagesDir()} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrap(err, "unable to create the output directory")
		}
	}

	if err := g.GenerateLogo(); err != nil {
		return errors.Wrap(err, "logo generation failed")
	}
	if err := g.GenerateUIIcons(); err != nil {
		return errors.Wrap(err, "UI icon generation failed")
	}
	if err := g.GenerateAppIcons(); err != nil {
		return errors.Wrap(err, "app icon generation failed")
	}
	if err := g.UpdateManifest(); err != nil {
		return errors.Wrap(err, "manifest update failed")
	}
	return nil
}

// GenerateLogo composes the vector logo and writes it into the icons
// directory.
func (g *Generator) GenerateLogo() error {
	doc, err := Logo(g.Brand)
	if err != nil {
		return err
	}

	path := filepath.Join(g.iconsDir(), "logo.svg")
	if err := doc.WriteFile(path); err != nil {
		return err
	}
	g.status("Created logo: %s", path)
	return nil
}

// GenerateUIIcons composes each UI icon and writes one vector file per icon
// into the icons directory.
func (g *Generator) GenerateUIIcons() error {
	for _, name := range UIIconNames {
		doc, err := UIIcons[name](g.Brand)
		if err != nil {
			return fmt.Errorf("unable to compose the %s icon: %v", name, err)
		}
		if err := doc.WriteFile(filepath.Join(g.iconsDir(), name+".svg")); err != nil {
			return err
		}
	}
	g.status("Created %d UI icons in %s", len(UIIconNames), g.iconsDir())
	return nil
}

// GenerateAppIcons renders the master app icon at every raster size, packs
// the favicon container and writes the monochrome pinned-tab silhouette.
func (g *Generator) GenerateAppIcons() error {
	doc, err := AppIcon(g.Brand)
	if err != nil {
		return err
	}

	// The master drawing is staged in the scratch directory; every raster
	// below derives from this single file.
	basePath := filepath.Join(g.scratch, "app-icon-base.svg")
	if err := doc.WriteFile(basePath); err != nil {
		return err
	}
	svgData, err := os.ReadFile(basePath)
	if err != nil {
		return fmt.Errorf("unable to read the staged app icon: %v", err)
	}

	for _, file := range appIconFiles {
		if err := writePNG(svgData, filepath.Join(g.imagesDir(), file.name), file.size); err != nil {
			return err
		}
	}

	if err := g.packFavicon(svgData); err != nil {
		return err
	}

	mono := svg.Monochrome(doc, "#000000", string(g.Brand.Dark))
	if err := mono.WriteFile(filepath.Join(g.imagesDir(), "safari-pinned-tab.svg")); err != nil {
		return err
	}

	g.status("Created %d app icons in %s", len(appIconFiles)+2, g.imagesDir())
	return nil
}

// packFavicon renders the favicon sizes and packs them into one container.
func (g *Generator) packFavicon(svgData []byte) error {
	images := make([]image.Image, 0, len(faviconSizes))
	for _, size := range faviconSizes {
		img, err := Rasterize(svgData, size)
		if err != nil {
			return err
		}
		images = append(images, img)
	}

	path := filepath.Join(g.imagesDir(), "favicon.ico")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create %s: %v", path, err)
	}
	defer f.Close()

	return EncodeICO(f, images)
}

// UpdateManifest merges the icon references and brand defaults into the
// manifest document at the project root.
func (g *Generator) UpdateManifest() error {
	path := filepath.Join(g.Root, manifestFileName)
	if err := WriteManifest(path, g.Brand); err != nil {
		return err
	}
	g.status("Updated %s with icon references", path)
	return nil
}

// status prints a per-stage progress line when verbose output is enabled.
func (g *Generator) status(format string, args ...interface{}) {
	if !g.Verbose || g.Status == nil {
		return
	}
	fmt.Fprintf(g.Status, "%s %s\n",
		utils.DecorateText("✔", utils.SuccessMessage),
		utils.DecorateText(fmt.Sprintf(format, args...), utils.DefaultMessage))
}
