package view

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/soocke/image-cropper-go/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders
	. "modernc.org/tk9.0"
)

// Largest preview shown on screen; the saved file keeps full size.
const (
	maxPreviewW = 560
	maxPreviewH = 720
)

// PreviewWindow shows the last cropped result in its own toplevel window.
type PreviewWindow interface {
	Show(img image.Image)
	Close()
}

type previewWindow struct {
	win   *ToplevelWidget
	label *LabelWidget
	photo *Img
}

// NewPreviewWindow creates the manager; the window opens on first Show.
func NewPreviewWindow() PreviewWindow {
	return &previewWindow{}
}

func (v *previewWindow) Show(img image.Image) {
	if img == nil {
		return
	}
	scaled := imaging.Fit(img, maxPreviewW, maxPreviewH, imaging.Lanczos)
	photo := NewPhoto(Data(images.EncodePNG(scaled)))
	if v.win == nil {
		win := App.Toplevel()
		win.WmTitle("Cropped Image")
		v.win = win
		v.label = win.Label(Image(photo), Borderwidth(1), Relief("sunken"))
		Grid(v.label, Row(0), Column(0), Padx("0.4m"), Pady("0.4m"))
		closeBtn := win.Button(Txt("Close [Esc]"), Command(v.Close))
		Grid(closeBtn, Row(1), Column(0), Sticky("we"), Padx("0.4m"), Pady("0.4m"))
		Bind(win, "<Escape>", Command(v.Close))
		WmProtocol(win.Window, "WM_DELETE_WINDOW", v.Close)
	} else {
		v.label.Configure(Image(photo))
	}
	if v.photo != nil {
		v.photo.Delete()
	}
	v.photo = photo
}

func (v *previewWindow) Close() {
	if v.win != nil {
		Destroy(v.win)
		v.win = nil
		v.label = nil
	}
	if v.photo != nil {
		v.photo.Delete()
		v.photo = nil
	}
}
