package storage

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
)

// VariantSizes maps variant name to the bounding box edge in pixels.
var VariantSizes = map[string]int{"large": 1200, "medium": 600, "thumbnail": 300}

type ImageProcessor struct {
	Quality int
}

func NewImageProcessor() *ImageProcessor {
	return &ImageProcessor{Quality: 85}
}

// ProcessImage returns JPEG encoded variants keyed by variant name.
// Images smaller than a bounding box are not upscaled.
func (p *ImageProcessor) ProcessImage(data []byte) (map[string][]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("cannot decode image: %w", err)
	}

	bounds := img.Bounds()
	variants := make(map[string][]byte, len(VariantSizes))
	for name, size := range VariantSizes {
		resized := img
		if bounds.Dx() > size || bounds.Dy() > size {
			resized = imaging.Fit(img, size, size, imaging.Lanczos)
		}
		b := new(bytes.Buffer)
		if err := jpeg.Encode(b, resized, &jpeg.Options{Quality: p.Quality}); err != nil {
			return nil, fmt.Errorf("cannot encode %s: %w", name, err)
		}
		variants[name] = b.Bytes()
	}
	return variants, nil
}
