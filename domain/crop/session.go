package crop

import (
	"image"

	"github.com/disintegration/imaging"
)

// Fitter derives the display rendition of a source image for a surface size.
// Reset drops anything derived from a previous source.
type Fitter interface {
	Fit(src image.Image, bounds image.Point) image.Image
	Reset()
}

// LanczosFitter fits with imaging.Fit and keeps no state.
type LanczosFitter struct{}

func (LanczosFitter) Fit(src image.Image, bounds image.Point) image.Image {
	return imaging.Fit(src, bounds.X, bounds.Y, imaging.Lanczos)
}

func (LanczosFitter) Reset() {}

// Session holds the state of one interactive crop: the source image, its
// display rendition and the selection placed over it. It is not safe for
// concurrent use; all calls are expected from the UI event loop.
type Session struct {
	source  image.Image
	display image.Image
	surface image.Point
	sel     Selection
	offset  image.Point
	fit     Fitter
}

// NewSession returns an empty session whose selection has the given target size.
// A nil fitter selects LanczosFitter.
func NewSession(target image.Point, fit Fitter) *Session {
	if fit == nil {
		fit = LanczosFitter{}
	}
	return &Session{sel: Selection{Size: target}, fit: fit}
}

// Loaded reports whether a source image is present.
func (s *Session) Loaded() bool { return s != nil && s.source != nil }

func (s *Session) Source() image.Image  { return s.source }
func (s *Session) Display() image.Image { return s.display }
func (s *Session) Surface() image.Point { return s.surface }
func (s *Session) Selection() Selection { return s.sel }

// Open decodes path and loads it. On failure the session is left untouched.
func (s *Session) Open(path string) error {
	img, err := Decode(path)
	if err != nil {
		return err
	}
	s.Load(img)
	return nil
}

// Load replaces the source image, rebuilds the display rendition and moves the
// selection back to the origin.
func (s *Session) Load(src image.Image) {
	if src == nil {
		return
	}
	s.fit.Reset()
	s.source = src
	s.sel.Pos = image.Point{}
	s.offset = image.Point{}
	s.refit()
}

// Resize records a new surface size. With an image loaded the display
// rendition is rebuilt and the selection re-clamped. Non-positive sizes are
// ignored. It reports whether the session changed.
func (s *Session) Resize(w, h int) bool {
	if w <= 0 || h <= 0 {
		return false
	}
	next := image.Pt(w, h)
	if next == s.surface && s.display != nil {
		return false
	}
	s.surface = next
	if !s.Loaded() {
		return false
	}
	s.refit()
	s.sel = s.sel.Clamped(s.surface)
	return true
}

func (s *Session) refit() {
	if s.surface.X <= 0 || s.surface.Y <= 0 {
		s.display = s.source
		return
	}
	s.display = s.fit.Fit(s.source, s.surface)
}

// DragBegin records the pointer offset from the selection origin so that the
// selection keeps its grip point while moving.
func (s *Session) DragBegin(p image.Point) {
	if !s.Loaded() {
		return
	}
	s.offset = p.Sub(s.sel.Pos)
}

// DragMove places the selection at p minus the recorded offset, clamped to the
// surface.
func (s *Session) DragMove(p image.Point) {
	if !s.Loaded() {
		return
	}
	s.sel.Pos = p.Sub(s.offset)
	s.sel = s.sel.Clamped(s.surface)
}

// SourceRect maps the selection into source pixel coordinates.
func (s *Session) SourceRect() (image.Rectangle, error) {
	if !s.Loaded() || s.display == nil {
		return image.Rectangle{}, ErrNoImage
	}
	sx, sy := ScaleFactors(s.source.Bounds().Size(), s.display.Bounds().Size())
	return MapToSource(s.sel.Rect(), sx, sy), nil
}

// Crop cuts the selected region out of the source image and resizes it to the
// exact target size with a Lanczos filter.
func (s *Session) Crop() (image.Image, error) {
	r, err := s.SourceRect()
	if err != nil {
		return nil, err
	}
	region, err := ExtractRegion(s.source, r)
	if err != nil {
		return nil, err
	}
	return imaging.Resize(region, s.sel.Size.X, s.sel.Size.Y, imaging.Lanczos), nil
}
