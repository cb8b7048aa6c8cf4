package crop

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var target = image.Pt(700, 900)

// splitImage returns a w x h image, red left of w/2 and blue from w/2 on.
func splitImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBA{255, 0, 0, 255}
			if x >= w/2 {
				c = color.NRGBA{0, 0, 255, 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestSessionEmpty(t *testing.T) {
	s := NewSession(target, nil)
	assert.False(t, s.Loaded())

	assert.False(t, s.Resize(1000, 1000), "resize without image must be a no-op")
	s.DragBegin(image.Pt(5, 5))
	s.DragMove(image.Pt(50, 50))
	assert.Equal(t, image.Point{}, s.Selection().Pos)

	_, err := s.Crop()
	assert.ErrorIs(t, err, ErrNoImage)
}

func TestSessionLoadFitsDisplay(t *testing.T) {
	s := NewSession(target, nil)
	s.Resize(1000, 1000)
	s.Load(splitImage(2000, 3000))

	require.True(t, s.Loaded())
	assert.Equal(t, image.Pt(666, 1000), s.Display().Bounds().Size())
	assert.Equal(t, image.Pt(2000, 3000), s.Source().Bounds().Size())
	assert.Equal(t, image.Point{}, s.Selection().Pos)
}

func TestSessionLoadWithoutSurfaceShowsSource(t *testing.T) {
	s := NewSession(target, nil)
	src := splitImage(40, 30)
	s.Load(src)
	assert.Equal(t, src.Bounds(), s.Display().Bounds())
}

func TestSessionDragKeepsGrip(t *testing.T) {
	s := NewSession(image.Pt(70, 90), nil)
	s.Resize(400, 400)
	s.Load(splitImage(400, 400))

	s.DragBegin(image.Pt(10, 20))
	s.DragMove(image.Pt(60, 70))
	assert.Equal(t, image.Pt(50, 50), s.Selection().Pos)

	// Second drag grabs the selection at its new place.
	s.DragBegin(image.Pt(55, 55))
	s.DragMove(image.Pt(65, 45))
	assert.Equal(t, image.Pt(60, 40), s.Selection().Pos)

	s.DragMove(image.Pt(1000, -1000))
	assert.Equal(t, image.Pt(330, 0), s.Selection().Pos)
}

func TestSessionLoadResetsSelection(t *testing.T) {
	s := NewSession(image.Pt(10, 10), nil)
	s.Resize(100, 100)
	s.Load(splitImage(100, 100))
	s.DragBegin(image.Pt(0, 0))
	s.DragMove(image.Pt(40, 30))
	require.Equal(t, image.Pt(40, 30), s.Selection().Pos)

	s.Load(splitImage(50, 80))
	assert.Equal(t, image.Point{}, s.Selection().Pos)
	assert.True(t, s.Loaded())
}

func TestSessionResizeReclamps(t *testing.T) {
	s := NewSession(target, nil)
	s.Resize(1000, 1000)
	s.Load(splitImage(2000, 3000))
	s.DragBegin(image.Pt(0, 0))
	s.DragMove(image.Pt(1000, 1000))
	require.Equal(t, image.Pt(300, 100), s.Selection().Pos)

	assert.True(t, s.Resize(800, 950))
	assert.Equal(t, image.Pt(100, 50), s.Selection().Pos)
	assert.Equal(t, image.Pt(633, 950), s.Display().Bounds().Size())

	assert.False(t, s.Resize(800, 950), "same size should not rebuild")
	assert.False(t, s.Resize(0, 950))
}

func TestSessionCropMapsToSource(t *testing.T) {
	s := NewSession(target, nil)
	s.Resize(1000, 1000)
	s.Load(splitImage(2000, 3000))
	s.DragBegin(image.Pt(0, 0))
	s.DragMove(image.Pt(50, 50))

	sx, sy := ScaleFactors(image.Pt(2000, 3000), s.Display().Bounds().Size())
	r, err := s.SourceRect()
	require.NoError(t, err)
	assert.Equal(t, image.Pt(int(50*sx), int(50*sy)), r.Min)
	assert.Equal(t, image.Pt(int(750*sx), int(950*sy)), r.Max)

	out, err := s.Crop()
	require.NoError(t, err)
	require.Equal(t, target, out.Bounds().Size())

	nrgba, ok := out.(*image.NRGBA)
	require.True(t, ok)
	left := nrgba.NRGBAAt(10, 10)
	assert.Equal(t, uint8(255), left.R)
	assert.Equal(t, uint8(0), left.B)
	middle := nrgba.NRGBAAt(350, 10)
	assert.Equal(t, uint8(0), middle.R)
	assert.Equal(t, uint8(255), middle.B)
	// The selection reaches past the display image; that part is padding.
	assert.Equal(t, uint8(0), nrgba.NRGBAAt(690, 10).A)
}

func TestSessionCropSmallSource(t *testing.T) {
	s := NewSession(target, nil)
	s.Resize(1200, 1000)
	s.Load(splitImage(320, 240))

	out, err := s.Crop()
	require.NoError(t, err)
	assert.Equal(t, target, out.Bounds().Size())
}

type countingFitter struct {
	fits, resets int
}

func (f *countingFitter) Fit(src image.Image, bounds image.Point) image.Image {
	f.fits++
	return LanczosFitter{}.Fit(src, bounds)
}

func (f *countingFitter) Reset() { f.resets++ }

func TestSessionUsesFitter(t *testing.T) {
	f := &countingFitter{}
	s := NewSession(image.Pt(10, 10), f)
	s.Resize(50, 50)
	assert.Equal(t, 0, f.fits)
	s.Load(splitImage(100, 100))
	assert.Equal(t, 1, f.fits)
	assert.Equal(t, 1, f.resets)
	s.Resize(60, 60)
	assert.Equal(t, 2, f.fits)
}
