package imaging_test

import (
	"image"
	"image/color"
	"testing"

	"go.trai.ch/picon/internal/adapters/imaging"
)

// solidImage returns a w x h image filled with an opaque color.
func solidImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 200, G: 30, B: 30, A: 255})
		}
	}
	return img
}

func TestFitIntoFrame_OutputAlwaysFrameSized(t *testing.T) {
	tests := []struct {
		name         string
		srcW, srcH   int
		frameW       int
		frameH       int
		allowUpscale bool
	}{
		{name: "wide source downscaled", srcW: 1000, srcH: 100, frameW: 512, frameH: 250, allowUpscale: true},
		{name: "tall source downscaled", srcW: 100, srcH: 1000, frameW: 512, frameH: 250, allowUpscale: true},
		{name: "small source upscaled", srcW: 10, srcH: 10, frameW: 512, frameH: 250, allowUpscale: true},
		{name: "small source kept", srcW: 10, srcH: 10, frameW: 512, frameH: 250, allowUpscale: false},
		{name: "exact fit", srcW: 512, srcH: 250, frameW: 512, frameH: 250, allowUpscale: false},
		{name: "degenerate strip", srcW: 5000, srcH: 1, frameW: 100, frameH: 50, allowUpscale: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := imaging.FitIntoFrame(solidImage(tt.srcW, tt.srcH), tt.frameW, tt.frameH, tt.allowUpscale)
			b := got.Bounds()
			if b.Dx() != tt.frameW || b.Dy() != tt.frameH {
				t.Errorf("expected %dx%d frame, got %dx%d", tt.frameW, tt.frameH, b.Dx(), b.Dy())
			}
		})
	}
}

func TestFitIntoFrame_NoUpscaleKeepsOriginalSize(t *testing.T) {
	src := solidImage(10, 10)
	got := imaging.FitIntoFrame(src, 100, 100, false)

	// The 10x10 content sits centered; corners stay transparent.
	if _, _, _, a := got.At(0, 0).RGBA(); a != 0 {
		t.Error("expected transparent corner")
	}
	if _, _, _, a := got.At(50, 50).RGBA(); a == 0 {
		t.Error("expected opaque center")
	}
	// One pixel outside the centered 10x10 box is transparent.
	if _, _, _, a := got.At(50, 44).RGBA(); a != 0 {
		t.Error("content leaked outside original size, upscaling happened")
	}
}

func TestFitIntoFrame_UpscaleFillsLimitingAxis(t *testing.T) {
	got := imaging.FitIntoFrame(solidImage(10, 10), 100, 60, true)

	// Scale is limited by height: content is 60x60 centered horizontally.
	if _, _, _, a := got.At(50, 0).RGBA(); a == 0 {
		t.Error("expected content to reach the top edge")
	}
	if _, _, _, a := got.At(10, 30).RGBA(); a != 0 {
		t.Error("expected transparent margin left of the content")
	}
	if _, _, _, a := got.At(90, 30).RGBA(); a != 0 {
		t.Error("expected transparent margin right of the content")
	}
}

func TestFitIntoFrame_PreservesAspectRatio(t *testing.T) {
	// A 400x100 source in a 200x200 frame scales to 200x50.
	got := imaging.FitIntoFrame(solidImage(400, 100), 200, 200, true)

	if _, _, _, a := got.At(0, 100).RGBA(); a == 0 {
		t.Error("expected content at the horizontal extremes")
	}
	if _, _, _, a := got.At(100, 50).RGBA(); a != 0 {
		t.Error("expected transparent area above the centered strip")
	}
}

func TestFitIntoFrame_MinimumOnePixel(t *testing.T) {
	// Extreme aspect ratios would truncate a dimension to zero.
	got := imaging.FitIntoFrame(solidImage(10000, 1), 10, 10, true)
	b := got.Bounds()
	if b.Dx() != 10 || b.Dy() != 10 {
		t.Fatalf("expected 10x10 frame, got %dx%d", b.Dx(), b.Dy())
	}

	opaque := false
	for y := 0; y < 10 && !opaque; y++ {
		for x := 0; x < 10; x++ {
			if _, _, _, a := got.At(x, y).RGBA(); a != 0 {
				opaque = true
				break
			}
		}
	}
	if !opaque {
		t.Error("expected at least one visible pixel")
	}
}
