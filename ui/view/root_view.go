package view

import (
	"image"
	"log/slog"

	"github.com/soocke/image-cropper-go/config"
	"github.com/soocke/image-cropper-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RootView composes the top-level application layout and wires UI callbacks.
// It implements the presenter's CropView contract.
type RootView struct {
	cfg    *config.Config
	logger *slog.Logger

	// Subviews
	Canvas  CropCanvas
	Output  OutputPanel
	Preview PreviewWindow

	// Widgets
	LoadBtn     *TButtonWidget
	SaveBtn     *TButtonWidget
	StatusLabel *TLabelWidget
}

// Handlers are invoked on user actions, always on the Tk event loop.
type Handlers struct {
	OnLoad          func()
	OnSaveRequested func()
	OnDisplayResize func(w, h int)
	OnDragBegin     func(x, y int)
	OnDragMove      func(x, y int)
	OnExit          func()
}

func NewRootView(cfg *config.Config, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, logger: logger}
}

// Build constructs the layout: the crop canvas fills row 0, the output panel
// and the button row sit below it.
func (rv *RootView) Build(h Handlers) {
	if rv == nil {
		return
	}
	GridRowConfigure(App, 0, Weight(1))
	GridColumnConfigure(App, 0, Weight(1))
	GridColumnConfigure(App, 1, Weight(1))

	rv.Canvas = NewCropCanvas(0, 2, CanvasHandlers{
		OnResize:    h.OnDisplayResize,
		OnDragBegin: h.OnDragBegin,
		OnDragMove:  h.OnDragMove,
	})
	rv.Output = NewOutputPanel(rv.cfg)
	row := rv.Output.Build(1)

	btnFrame := Frame()
	Grid(btnFrame, Row(row), Column(0), Columnspan(2), Sticky("we"), Padx("0.3m"), Pady("0.3m"))
	GridColumnConfigure(btnFrame.Window, 1, Weight(1))
	rv.LoadBtn = TButton(Txt("Load Image"), Command(h.OnLoad))
	Grid(rv.LoadBtn, In(btnFrame), Row(0), Column(0), Sticky("w"), Padx("2m"), Pady("2m"))
	rv.StatusLabel = TLabel(Txt("No image loaded"), Style(theme.StyleStateLabel))
	Grid(rv.StatusLabel, In(btnFrame), Row(0), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	rv.SaveBtn = TButton(Txt("Crop and Save"), Style(theme.StylePrimaryButton), Command(h.OnSaveRequested), State("disabled"))
	Grid(rv.SaveBtn, In(btnFrame), Row(0), Column(2), Sticky("e"), Padx("2m"), Pady("2m"))

	rv.Preview = NewPreviewWindow()
	if h.OnExit != nil {
		WmProtocol(App, "WM_DELETE_WINDOW", h.OnExit)
	}
}

// PickImage runs the file picker.
func (rv *RootView) PickImage() string { return pickImageFile() }

// ShowCanvas replaces the canvas contents.
func (rv *RootView) ShowCanvas(img image.Image) {
	if rv != nil && rv.Canvas != nil {
		rv.Canvas.Update(img)
	}
}

// SetSaveEnabled toggles the save button.
func (rv *RootView) SetSaveEnabled(enabled bool) {
	if rv == nil || rv.SaveBtn == nil {
		return
	}
	state := "disabled"
	if enabled {
		state = "normal"
	}
	rv.SaveBtn.Configure(State(state))
}

// ShowPreview opens or refreshes the preview window.
func (rv *RootView) ShowPreview(img image.Image) {
	if rv != nil && rv.Preview != nil {
		rv.Preview.Show(img)
	}
}

// ShowError reports err in a modal dialog.
func (rv *RootView) ShowError(title string, err error) {
	if rv != nil && rv.logger != nil {
		rv.logger.Debug("error dialog", "title", title, "error", err)
	}
	showError(title, err)
}

// SetStatus updates the status line.
func (rv *RootView) SetStatus(text string) {
	if rv != nil && rv.StatusLabel != nil {
		rv.StatusLabel.Configure(Txt(text))
	}
}
