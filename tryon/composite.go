// Package tryon renders a product image onto a shopper photo so the
// storefront can show an approximate fit without any client-side
// canvas work.
package tryon

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Placement controls how the garment sits on the photo. Scale and
// rotation are applied about the garment's center. OffsetX/OffsetY
// shift the garment in pixels from its default anchor.
type Placement struct {
	OffsetX  float64
	OffsetY  float64
	Scale    float64
	Rotation float64
}

// Default anchor: garment spans 60% of the photo width, centered
// horizontally, its top edge at 30% of the photo height.
const (
	garmentWidthRatio = 0.6
	garmentTopRatio   = 0.3
)

// Composite draws garment over base according to the placement and
// returns the combined image. A zero or negative scale is treated
// as 1.
func Composite(base, garment image.Image, p Placement) *image.NRGBA {
	if p.Scale <= 0 {
		p.Scale = 1
	}

	baseBounds := base.Bounds()
	baseW := float64(baseBounds.Dx())
	baseH := float64(baseBounds.Dy())

	gb := garment.Bounds()
	targetW := baseW * garmentWidthRatio * p.Scale
	targetH := targetW * float64(gb.Dy()) / float64(gb.Dx())

	fitted := imaging.Resize(garment, int(targetW+0.5), int(targetH+0.5), imaging.Lanczos)
	if p.Rotation != 0 {
		fitted = imaging.Rotate(fitted, -p.Rotation, color.Transparent)
	}

	// Center of the unscaled default placement, then offset.
	centerX := baseW/2 + p.OffsetX
	centerY := baseH*garmentTopRatio + targetH/2 + p.OffsetY

	fb := fitted.Bounds()
	pasteX := int(centerX - float64(fb.Dx())/2 + 0.5)
	pasteY := int(centerY - float64(fb.Dy())/2 + 0.5)

	out := imaging.Clone(base)
	return imaging.Overlay(out, fitted, image.Pt(pasteX, pasteY), 1.0)
}
