package presenter

import (
	"image"
	"image/color"
	"log/slog"
	"os"
	"time"

	"github.com/soocke/image-cropper-go/domain/crop"
	"github.com/soocke/image-cropper-go/ui/images"
	"github.com/soocke/image-cropper-go/ui/model"
)

// Canvas colors for the composed display.
var (
	CanvasBackground = color.RGBA{128, 128, 128, 255}
	SelectionStroke  = color.RGBA{255, 0, 0, 255}
)

// SelectionStrokeWidth is the outline thickness in display pixels.
const SelectionStrokeWidth = 2

// CropView describes the UI surface driven by the presenter.
type CropView interface {
	// PickImage asks the user for an image path. Empty means cancelled.
	PickImage() string
	ShowCanvas(img image.Image)
	SetSaveEnabled(enabled bool)
	ShowPreview(img image.Image)
	ShowError(title string, err error)
	SetStatus(text string)
}

// CropPresenter turns toolkit events into session operations and pushes the
// results back to the view. Every method runs on the UI event loop.
type CropPresenter struct {
	session   *crop.Session
	actions   *model.ActionModel
	stats     *model.SessionModel
	status    *SessionPresenter
	view      CropView
	outputDir string
	logger    *slog.Logger
	now       func() time.Time
}

// NewCropPresenter returns a presenter writing crops into outputDir.
func NewCropPresenter(session *crop.Session, actions *model.ActionModel, stats *model.SessionModel, view CropView, outputDir string, logger *slog.Logger) *CropPresenter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CropPresenter{
		session:   session,
		actions:   actions,
		stats:     stats,
		status:    NewSessionPresenter(stats, view),
		view:      view,
		outputDir: outputDir,
		logger:    logger,
		now:       time.Now,
	}
}

func (p *CropPresenter) ready() bool {
	return p != nil && p.session != nil && p.view != nil
}

// OnLoad runs the file picker and loads the chosen image. Cancelling is a
// no-op; a decode failure is reported and the previous image stays.
func (p *CropPresenter) OnLoad() {
	if !p.ready() {
		return
	}
	path := p.view.PickImage()
	if path == "" {
		return
	}
	p.LoadPath(path)
}

// LoadPath loads path directly, bypassing the picker.
func (p *CropPresenter) LoadPath(path string) {
	if !p.ready() {
		return
	}
	if err := p.session.Open(path); err != nil {
		p.logger.Error("image load failed", "path", path, "error", err)
		p.view.ShowError("Could not open image", err)
		return
	}
	var fileSize int64
	if st, err := os.Stat(path); err == nil {
		fileSize = st.Size()
	}
	src := p.session.Source().Bounds().Size()
	p.stats.OnLoad(path, src, fileSize, p.now())
	p.actions.SetSaveEnabled(true)
	p.view.SetSaveEnabled(true)
	p.logger.Info("image loaded", "path", path, "width", src.X, "height", src.Y)
	p.render()
	p.status.ShowLoaded()
}

// OnDisplayResize handles a change of the drawing surface size.
func (p *CropPresenter) OnDisplayResize(w, h int) {
	if !p.ready() {
		return
	}
	if p.session.Resize(w, h) {
		p.logger.Debug("display resized", "width", w, "height", h)
		p.render()
	}
}

// OnDragBegin records where the pointer grabbed the selection.
func (p *CropPresenter) OnDragBegin(x, y int) {
	if !p.ready() {
		return
	}
	p.session.DragBegin(image.Pt(x, y))
}

// OnDragMove moves the selection with the pointer.
func (p *CropPresenter) OnDragMove(x, y int) {
	if !p.ready() || !p.session.Loaded() {
		return
	}
	before := p.session.Selection().Pos
	p.session.DragMove(image.Pt(x, y))
	if p.session.Selection().Pos != before {
		p.render()
	}
}

// OnSaveRequested crops the selection, previews it and writes it to the
// output directory. Write failures are shown and leave the session usable.
func (p *CropPresenter) OnSaveRequested() {
	if !p.ready() || !p.actions.SaveEnabled() {
		return
	}
	img, err := p.session.Crop()
	if err != nil {
		p.logger.Error("crop failed", "error", err)
		p.view.ShowError("Could not crop image", err)
		return
	}
	if r, err := p.session.SourceRect(); err == nil {
		p.logger.Debug("crop region", "source_rect", r.String())
	}
	p.view.ShowPreview(img)
	path, err := crop.Save(img, p.outputDir)
	if err != nil {
		p.logger.Error("image save failed", "path", path, "error", err)
		p.view.ShowError("Could not save image", err)
		p.status.ShowSaveFailed(path)
		return
	}
	p.stats.OnSave(path)
	p.logger.Info("image saved", "path", path)
	p.status.ShowSaved()
}

func (p *CropPresenter) render() {
	if !p.session.Loaded() {
		return
	}
	display := p.session.Display()
	surface := p.session.Surface()
	if surface.X <= 0 || surface.Y <= 0 {
		surface = display.Bounds().Size()
	}
	canvas := images.Overlay(display, surface, p.session.Selection().Rect(), CanvasBackground, SelectionStroke, SelectionStrokeWidth)
	p.view.ShowCanvas(canvas)
}
