package game

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed assets/icon.svg
var iconSVGData []byte

// iconSizes are the window icon resolutions handed to the OS.
var iconSizes = []int{16, 32, 48, 64}

// WindowIcons rasterizes the embedded icon at every window icon size.
func WindowIcons() ([]image.Image, error) {
	icons := make([]image.Image, 0, len(iconSizes))
	for _, size := range iconSizes {
		img, err := svgToImage(iconSVGData, size, size)
		if err != nil {
			return nil, fmt.Errorf("failed to rasterize icon at %dpx: %w", size, err)
		}
		icons = append(icons, img)
	}
	return icons, nil
}

// svgToImage converts SVG data to an RGBA image
func svgToImage(svgData []byte, width, height int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgData))
	if err != nil {
		return nil, err
	}

	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	raster := rasterx.NewDasher(width, height, scanner)
	icon.Draw(raster, 1.0)

	return img, nil
}
