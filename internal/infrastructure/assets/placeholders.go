package assets

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

const sunSize = 80

// Palette holds the colors used for generated placeholder art
var Palette = struct {
	SkyTop    color.RGBA
	SkyBottom color.RGBA
	Sun       color.RGBA
	Dirt      color.RGBA
	DirtEdge  color.RGBA
	Grass     color.RGBA
	Player    color.RGBA
	PlayerEye color.RGBA
}{
	SkyTop:    color.RGBA{110, 170, 230, 255},
	SkyBottom: color.RGBA{200, 230, 250, 255},
	Sun:       color.RGBA{255, 210, 60, 255},
	Dirt:      color.RGBA{130, 85, 50, 255},
	DirtEdge:  color.RGBA{95, 60, 35, 255},
	Grass:     color.RGBA{70, 170, 60, 255},
	Player:    color.RGBA{230, 90, 140, 255},
	PlayerEye: color.RGBA{30, 30, 40, 255},
}

// Solid creates a w×h image of one color
func Solid(w, h int, col color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{col}, image.Point{}, draw.Src)
	return img
}

// BorderedTile creates a square tile with a border
func BorderedTile(size int, fill, border color.RGBA, borderWidth int) *image.RGBA {
	img := Solid(size, size, fill)
	for i := 0; i < borderWidth && i < size; i++ {
		for x := 0; x < size; x++ {
			img.Set(x, i, border)
			img.Set(x, size-1-i, border)
		}
		for y := 0; y < size; y++ {
			img.Set(i, y, border)
			img.Set(size-1-i, y, border)
		}
	}
	return img
}

// GrassTile creates a dirt tile with a grass strip on its top quarter
func GrassTile(size int) *image.RGBA {
	img := BorderedTile(size, Palette.Dirt, Palette.DirtEdge, 3)
	strip := image.Rect(0, 0, size, size/4)
	draw.Draw(img, strip, &image.Uniform{Palette.Grass}, image.Point{}, draw.Src)
	return img
}

// Gradient creates a vertical gradient from top to bottom
func Gradient(w, h int, top, bottom color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		t := 0.0
		if h > 1 {
			t = float64(y) / float64(h-1)
		}
		c := color.RGBA{
			R: lerp(top.R, bottom.R, t),
			G: lerp(top.G, bottom.G, t),
			B: lerp(top.B, bottom.B, t),
			A: 255,
		}
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// Disc creates a filled circle on a transparent square
func Disc(size int, col color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	r := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - r
			dy := float64(y) + 0.5 - r
			if dx*dx+dy*dy <= r*r {
				img.SetRGBA(x, y, col)
			}
		}
	}
	return img
}

// PlayerFrame creates a right-facing placeholder body for walk frame n.
// The legs alternate with the frame so the walk cycle stays visible.
func PlayerFrame(w, h, n int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	body := image.Rect(w/4, 0, w*3/4, h*3/4)
	draw.Draw(img, body, &image.Uniform{Palette.Player}, image.Point{}, draw.Src)

	// eye on the right side marks the facing direction
	eye := image.Rect(w*3/4-w/8, h/8, w*3/4-w/16, h/8+h/14+1)
	draw.Draw(img, eye, &image.Uniform{Palette.PlayerEye}, image.Point{}, draw.Src)

	stride := (n % 3) * w / 12
	left := image.Rect(w/4+stride, h*3/4, w/4+stride+w/8, h)
	right := image.Rect(w*3/4-w/8-stride, h*3/4, w*3/4-stride, h)
	draw.Draw(img, left, &image.Uniform{Palette.Player}, image.Point{}, draw.Src)
	draw.Draw(img, right, &image.Uniform{Palette.Player}, image.Point{}, draw.Src)
	return img
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}
