package images

import (
	"image"
	"image/color"
	"image/draw"
)

// Overlay renders the canvas shown to the user: display anchored at the
// north-west corner of a surface-sized background, with the selection
// outlined on top. Outline pixels falling outside the surface are dropped.
func Overlay(display image.Image, surface image.Point, sel image.Rectangle, bg, stroke color.Color, width int) *image.RGBA {
	if surface.X < 1 {
		surface.X = 1
	}
	if surface.Y < 1 {
		surface.Y = 1
	}
	dst := image.NewRGBA(image.Rectangle{Max: surface})
	draw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	if display != nil {
		db := display.Bounds()
		draw.Draw(dst, image.Rectangle{Max: db.Size()}, display, db.Min, draw.Over)
	}
	StrokeRect(dst, sel, stroke, width)
	return dst
}

// StrokeRect draws the inner border of r, width pixels thick, clipped to dst.
func StrokeRect(dst draw.Image, r image.Rectangle, c color.Color, width int) {
	if width < 1 {
		width = 1
	}
	if r.Empty() {
		return
	}
	src := image.NewUniform(c)
	edges := []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+width),
		image.Rect(r.Min.X, r.Max.Y-width, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+width, r.Max.Y),
		image.Rect(r.Max.X-width, r.Min.Y, r.Max.X, r.Max.Y),
	}
	for _, e := range edges {
		e = e.Intersect(dst.Bounds())
		if e.Empty() {
			continue
		}
		draw.Draw(dst, e, src, image.Point{}, draw.Src)
	}
}
