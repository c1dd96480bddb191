package ring

import (
	"image"
	"image/color"
	"math"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

const (
	thicknessFraction = 0.14
	marginFraction    = 0.04
)

var trackColor = color.NRGBA{R: 60, G: 60, B: 66, A: 255}

// Ring is a circular countdown indicator. The tinted arc starts at
// twelve o'clock and shrinks clockwise as the phase progresses; fyne has
// no arc primitive, so the ring is rasterized per pixel.
type Ring struct {
	mu       sync.Mutex
	raster   *canvas.Raster
	progress float64
	tint     color.NRGBA
}

// New creates a ring showing a full arc in the given tint.
func New(tint color.NRGBA) *Ring {
	ring := &Ring{tint: tint}
	ring.raster = canvas.NewRaster(ring.draw)
	ring.raster.SetMinSize(fyne.NewSize(180, 180))
	return ring
}

// Object returns the drawable canvas object.
func (ring *Ring) Object() fyne.CanvasObject {
	return ring.raster
}

// SetProgress updates the elapsed fraction (0..1) and redraws.
func (ring *Ring) SetProgress(progress float64) {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	ring.mu.Lock()
	ring.progress = progress
	ring.mu.Unlock()
	ring.raster.Refresh()
}

// SetTint updates the arc color and redraws.
func (ring *Ring) SetTint(tint color.NRGBA) {
	ring.mu.Lock()
	ring.tint = tint
	ring.mu.Unlock()
	ring.raster.Refresh()
}

func (ring *Ring) draw(width, height int) image.Image {
	ring.mu.Lock()
	progress := ring.progress
	tint := ring.tint
	ring.mu.Unlock()

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	if width == 0 || height == 0 {
		return img
	}

	side := float64(width)
	if float64(height) < side {
		side = float64(height)
	}
	centerX := float64(width) / 2
	centerY := float64(height) / 2
	outer := side/2 - side*marginFraction
	inner := outer - side*thicknessFraction
	if inner < 0 {
		inner = 0
	}

	// The arc covers the remaining fraction, measured clockwise from
	// twelve o'clock.
	sweep := (1 - progress) * 2 * math.Pi

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			dx := float64(x) - centerX
			dy := float64(y) - centerY
			distance := math.Hypot(dx, dy)
			if distance < inner || distance > outer {
				continue
			}
			angle := math.Atan2(dx, -dy)
			if angle < 0 {
				angle += 2 * math.Pi
			}
			if angle <= sweep {
				img.SetNRGBA(x, y, tint)
			} else {
				img.SetNRGBA(x, y, trackColor)
			}
		}
	}
	return img
}
