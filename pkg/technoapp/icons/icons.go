// Package icons holds the vector artwork for screen and tab icons.
//
// Icons are embedded SVG documents rasterised on demand with oksvg, so the
// graphical shell can turn them into textures at whatever size the current
// window needs.
package icons

import (
	"bytes"
	"embed"
	"fmt"
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Ref names one of the embedded icons.
type Ref string

const (
	AccountBox  Ref = "account_box"
	CheckCircle Ref = "check_circle"
	Menu        Ref = "menu"
	Person      Ref = "person"
	Info        Ref = "info"
	Search      Ref = "search"
	PersonAdd   Ref = "person_add"
	Badge       Ref = "badge"
	Done        Ref = "done"
)

//go:embed svg/*.svg
var artwork embed.FS

var known = map[Ref]bool{
	AccountBox:  true,
	CheckCircle: true,
	Menu:        true,
	Person:      true,
	Info:        true,
	Search:      true,
	PersonAdd:   true,
	Badge:       true,
	Done:        true,
}

// All returns every known icon in a stable order.
func All() []Ref {
	return []Ref{AccountBox, CheckCircle, Menu, Person, Info, Search, PersonAdd, Badge, Done}
}

// Known reports whether ref has embedded artwork.
func (r Ref) Known() bool {
	return known[r]
}

// SVG returns the raw SVG document for ref.
func SVG(ref Ref) ([]byte, error) {
	if !ref.Known() {
		return nil, fmt.Errorf("icons: unknown icon %q", ref)
	}
	return artwork.ReadFile("svg/" + string(ref) + ".svg")
}

// Rasterize draws ref into a size x size RGBA image.
func Rasterize(ref Ref, size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("icons: invalid size %d", size)
	}

	data, err := SVG(ref)
	if err != nil {
		return nil, err
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("icons: parse %s: %w", ref, err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1)

	return img, nil
}
