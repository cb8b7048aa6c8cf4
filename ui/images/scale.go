package images

import (
	"bytes"
	"image"
	"image/png"
	"strconv"

	"github.com/disintegration/imaging"
	lru "github.com/hashicorp/golang-lru/v2"
)

// fitCacheSize bounds the renditions kept while the window is being resized.
const fitCacheSize = 8

// EncodePNG encodes an image to PNG bytes for Tk photos. Errors are ignored and
// may return an empty slice.
func EncodePNG(img image.Image) []byte {
	if img == nil {
		return nil
	}
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	_ = enc.Encode(&buf, img)
	return buf.Bytes()
}

// ParseSurface converts the width and height fields of a Tk <Configure>
// event into a surface size. It reports false when either field is not an
// integer.
func ParseSurface(w, h string) (image.Point, bool) {
	x, err := strconv.Atoi(w)
	if err != nil {
		return image.Point{}, false
	}
	y, err := strconv.Atoi(h)
	if err != nil {
		return image.Point{}, false
	}
	return image.Pt(x, y), true
}

// Fitter produces Lanczos scale-to-fit renditions of one source image and
// remembers recent surface sizes, so dragging a window edge back and forth
// does not resample the full source each time. Reset forgets everything and
// must be called when the source changes.
type Fitter struct {
	cache *lru.Cache[image.Point, *image.NRGBA]
}

// NewFitter returns a Fitter with a small LRU of renditions.
func NewFitter() *Fitter {
	c, err := lru.New[image.Point, *image.NRGBA](fitCacheSize)
	if err != nil {
		return &Fitter{}
	}
	return &Fitter{cache: c}
}

// Fit scales src to fit within bounds preserving aspect ratio. Sources that
// already fit are returned at their native size.
func (f *Fitter) Fit(src image.Image, bounds image.Point) image.Image {
	if src == nil {
		return nil
	}
	if f != nil && f.cache != nil {
		if img, ok := f.cache.Get(bounds); ok {
			return img
		}
	}
	img := imaging.Fit(src, bounds.X, bounds.Y, imaging.Lanczos)
	if f != nil && f.cache != nil {
		f.cache.Add(bounds, img)
	}
	return img
}

// Reset drops all cached renditions.
func (f *Fitter) Reset() {
	if f != nil && f.cache != nil {
		f.cache.Purge()
	}
}
