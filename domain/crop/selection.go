package crop

import "image"

// Selection is the fixed-size crop marker in display coordinates.
// Size never changes during a session; Pos is the top-left corner.
type Selection struct {
	Pos  image.Point
	Size image.Point
}

// Rect returns the selection as a rectangle in display coordinates.
func (s Selection) Rect() image.Rectangle {
	return image.Rectangle{Min: s.Pos, Max: s.Pos.Add(s.Size)}
}

// Clamped returns s with Pos limited to [0, surface-size] on each axis.
// When the surface is smaller than the selection the axis is pinned at 0,
// leaving the far edge outside the surface.
func (s Selection) Clamped(surface image.Point) Selection {
	s.Pos.X = clampAxis(s.Pos.X, surface.X-s.Size.X)
	s.Pos.Y = clampAxis(s.Pos.Y, surface.Y-s.Size.Y)
	return s
}

func clampAxis(v, max int) int {
	if v > max {
		v = max
	}
	if v < 0 {
		v = 0
	}
	return v
}

// ScaleFactors returns the per-axis ratio of source to display dimensions.
// A degenerate display yields 1 for that axis.
func ScaleFactors(source, display image.Point) (sx, sy float64) {
	sx, sy = 1, 1
	if display.X > 0 {
		sx = float64(source.X) / float64(display.X)
	}
	if display.Y > 0 {
		sy = float64(source.Y) / float64(display.Y)
	}
	return sx, sy
}

// MapToSource converts a display-space rectangle to source pixels by scaling
// each corner independently and truncating toward zero.
func MapToSource(r image.Rectangle, sx, sy float64) image.Rectangle {
	return image.Rect(
		int(float64(r.Min.X)*sx),
		int(float64(r.Min.Y)*sy),
		int(float64(r.Max.X)*sx),
		int(float64(r.Max.Y)*sy),
	)
}
