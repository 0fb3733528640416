package ports

import "image"

// Transformer normalizes a bitmap onto a fixed-size transparent canvas.
//
//go:generate go run go.uber.org/mock/mockgen -source=transform.go -destination=mocks/mock_transform.go -package=mocks
type Transformer interface {
	// Fit scales src uniformly into a frameW x frameH frame and centers it
	// on a fully transparent canvas of exactly that size.
	Fit(src image.Image, frameW, frameH int, allowUpscale bool) *image.NRGBA
}

// Encoder persists a processed image to disk.
type Encoder interface {
	// EncodePNG writes img as an optimized PNG at path, creating parent
	// directories as needed.
	EncodePNG(path string, img image.Image) error
}
