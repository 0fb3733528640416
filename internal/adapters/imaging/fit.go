// Package imaging implements bitmap decoding, the frame-fitting transform,
// and PNG encoding.
package imaging

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"go.trai.ch/picon/internal/core/ports"
)

var _ ports.Transformer = (*Transformer)(nil)

// Transformer implements ports.Transformer with FitIntoFrame.
type Transformer struct{}

// NewTransformer creates a new Transformer.
func NewTransformer() *Transformer {
	return &Transformer{}
}

// Fit implements ports.Transformer.
func (t *Transformer) Fit(src image.Image, frameW, frameH int, allowUpscale bool) *image.NRGBA {
	return FitIntoFrame(src, frameW, frameH, allowUpscale)
}

// FitIntoFrame scales src uniformly to fit a frameW x frameH frame and
// composites it centered on a fully transparent canvas of exactly that size.
// The scale factor is min(frameW/srcW, frameH/srcH), additionally capped at
// 1.0 when allowUpscale is false. Scaled dimensions are truncated but never
// drop below one pixel. Zero or negative frame dimensions violate the caller
// contract.
func FitIntoFrame(src image.Image, frameW, frameH int, allowUpscale bool) *image.NRGBA {
	bounds := src.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()

	scale := min(float64(frameW)/float64(srcW), float64(frameH)/float64(srcH))
	if !allowUpscale && scale > 1 {
		scale = 1
	}

	newW := max(1, int(float64(srcW)*scale))
	newH := max(1, int(float64(srcH)*scale))

	scaled := image.NewNRGBA(image.Rect(0, 0, newW, newH))
	xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), src, bounds, xdraw.Src, nil)

	frame := image.NewNRGBA(image.Rect(0, 0, frameW, frameH))
	x := (frameW - newW) / 2
	y := (frameH - newH) / 2
	xdraw.Draw(frame, image.Rect(x, y, x+newW, y+newH), scaled, image.Point{}, xdraw.Over)

	return frame
}
