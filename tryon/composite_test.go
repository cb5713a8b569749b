package tryon

import (
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
)

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := imaging.New(w, h, c)
	return img
}

func TestCompositeKeepsBaseDimensions(t *testing.T) {
	base := solid(1000, 800, color.NRGBA{R: 255, A: 255})
	garment := solid(200, 400, color.NRGBA{B: 255, A: 255})

	out := Composite(base, garment, Placement{Scale: 1})

	b := out.Bounds()
	if b.Dx() != 1000 || b.Dy() != 800 {
		t.Fatalf("expected 1000x800 output, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestCompositeDefaultPlacement(t *testing.T) {
	base := solid(1000, 1000, color.NRGBA{R: 255, A: 255})
	garment := solid(100, 100, color.NRGBA{B: 255, A: 255})

	out := Composite(base, garment, Placement{Scale: 1})

	// Garment spans 60% of the width, centered, top edge at 30% height:
	// x in [200, 800), y in [300, 900).
	_, _, inB, _ := out.At(500, 500).RGBA()
	if inB == 0 {
		t.Fatal("expected garment pixel at the photo center")
	}

	r, _, outB, _ := out.At(50, 50).RGBA()
	if outB != 0 || r == 0 {
		t.Fatalf("expected untouched base pixel at the top-left corner, got r=%d b=%d", r, outB)
	}
}

func TestCompositeOffsetMovesGarment(t *testing.T) {
	base := solid(1000, 1000, color.NRGBA{R: 255, A: 255})
	garment := solid(100, 100, color.NRGBA{B: 255, A: 255})

	out := Composite(base, garment, Placement{OffsetX: 300, Scale: 1})

	// Shifted right: the old left edge region is base again.
	_, _, leftB, _ := out.At(250, 500).RGBA()
	if leftB != 0 {
		t.Fatal("expected base pixel left of the shifted garment")
	}
	_, _, rightB, _ := out.At(800, 500).RGBA()
	if rightB == 0 {
		t.Fatal("expected garment pixel after shifting right")
	}
}

func TestCompositeScaleGrowsGarment(t *testing.T) {
	base := solid(1000, 1000, color.NRGBA{R: 255, A: 255})
	garment := solid(100, 100, color.NRGBA{B: 255, A: 255})

	small := Composite(base, garment, Placement{Scale: 0.5})
	big := Composite(base, garment, Placement{Scale: 1.5})

	count := func(img *image.NRGBA) int {
		n := 0
		b := img.Bounds()
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				_, _, bl, _ := img.At(x, y).RGBA()
				if bl > 0 {
					n++
				}
			}
		}
		return n
	}

	if count(big) <= count(small) {
		t.Fatal("expected a larger scale to cover more pixels")
	}
}

func TestCompositeZeroScaleDefaultsToOne(t *testing.T) {
	base := solid(400, 400, color.NRGBA{R: 255, A: 255})
	garment := solid(100, 100, color.NRGBA{B: 255, A: 255})

	out := Composite(base, garment, Placement{})
	_, _, bl, _ := out.At(200, 180).RGBA()
	if bl == 0 {
		t.Fatal("expected garment drawn with default scale")
	}
}
