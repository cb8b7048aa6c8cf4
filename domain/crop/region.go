package crop

import (
	"errors"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// ExtractRegion copies rect (relative to the image origin) out of src.
// Parts of rect that fall outside src are left transparent black, so the
// result always has rect's size. Returns an error for an empty rect.
func ExtractRegion(src image.Image, rect image.Rectangle) (*image.NRGBA, error) {
	if src == nil {
		return nil, errors.New("nil source")
	}
	if rect.Empty() {
		return nil, errors.New("empty region")
	}
	b := src.Bounds()
	rect = rect.Add(b.Min)
	if rect.In(b) {
		return imaging.Crop(src, rect), nil
	}
	dst := imaging.New(rect.Dx(), rect.Dy(), color.NRGBA{})
	inside := rect.Intersect(b)
	if inside.Empty() {
		return dst, nil
	}
	return imaging.Paste(dst, imaging.Crop(src, inside), inside.Min.Sub(rect.Min)), nil
}
