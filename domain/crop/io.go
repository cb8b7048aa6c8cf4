package crop

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	// BMP and TIFF come with imaging; WebP is registered here.
	_ "golang.org/x/image/webp"
)

// OutputName is the fixed file name of the saved crop.
const OutputName = "cropped_image.png"

// Extensions lists the file types offered by the file picker. Decode itself
// accepts every format registered with image.
var Extensions = []string{".jpg", ".jpeg", ".png", ".bmp"}

// Decode reads and decodes the image at path.
func Decode(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	return img, nil
}

// Save writes img as PNG to dir/OutputName, replacing any existing file, and
// returns the written path. The directory is created when missing.
func Save(img image.Image, dir string) (string, error) {
	path := filepath.Join(dir, OutputName)
	if img == nil {
		return path, &IOError{Path: path, Err: fmt.Errorf("nil image")}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return path, &IOError{Path: path, Err: err}
	}
	if err := imaging.Save(img, path); err != nil {
		return path, &IOError{Path: path, Err: err}
	}
	return path, nil
}
