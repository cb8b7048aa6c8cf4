package view

import (
	"image"

	"github.com/soocke/image-cropper-go/assets"
	"github.com/soocke/image-cropper-go/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// CropCanvas shows the composed display image and reports pointer and size
// events in label-local pixel coordinates.
type CropCanvas interface {
	Update(img image.Image)
}

// CanvasHandlers receives the canvas events.
type CanvasHandlers struct {
	OnResize    func(w, h int)
	OnDragBegin func(x, y int)
	OnDragMove  func(x, y int)
}

type cropCanvas struct {
	label     *LabelWidget
	prevPhoto *Img // last Tk photo, deleted before replacement
}

// NewCropCanvas creates the canvas label at (row, 0) spanning cols columns.
// The image is anchored north-west with no border or padding so event
// coordinates equal image pixel coordinates.
func NewCropCanvas(row, cols int, h CanvasHandlers) CropCanvas {
	photo := NewPhoto(Data(assets.PlaceholderPNG))
	lbl := Label(Image(photo), Anchor("nw"), Borderwidth(0), Highlightthickness(0), Padx(0), Pady(0), Cursor("cross"), Background("gray"))
	Grid(lbl, Row(row), Column(0), Columnspan(cols), Sticky("nsew"))
	v := &cropCanvas{label: lbl, prevPhoto: photo}
	if h.OnResize != nil {
		Bind(lbl, "<Configure>", Command(func(e *Event) {
			if size, ok := images.ParseSurface(e.Width, e.Height); ok {
				h.OnResize(size.X, size.Y)
			}
		}))
	}
	if h.OnDragBegin != nil {
		Bind(lbl, "<ButtonPress-1>", Command(func(e *Event) { h.OnDragBegin(e.X, e.Y) }))
	}
	if h.OnDragMove != nil {
		Bind(lbl, "<B1-Motion>", Command(func(e *Event) { h.OnDragMove(e.X, e.Y) }))
	}
	return v
}

func (v *cropCanvas) Update(img image.Image) {
	if v.label == nil || img == nil {
		return
	}
	pngBytes := images.EncodePNG(img)
	// Replace previous photo to avoid retaining obsolete pixel buffers.
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	v.prevPhoto = NewPhoto(Data(pngBytes))
	v.label.Configure(Image(v.prevPhoto))
}
