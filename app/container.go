package app

import (
	"image"
	"log/slog"

	"github.com/soocke/image-cropper-go/config"
	"github.com/soocke/image-cropper-go/domain/crop"
	"github.com/soocke/image-cropper-go/ui/images"
	"github.com/soocke/image-cropper-go/ui/model"
	"github.com/soocke/image-cropper-go/ui/presenter"
	"github.com/soocke/image-cropper-go/ui/view"
)

var _ presenter.CropView = (*view.RootView)(nil)

// AppContainer assembles models, the crop session, the presenter and the root view.
type AppContainer struct {
	Config   *config.Config
	Logger   *slog.Logger
	Session  *crop.Session
	Actions  *model.ActionModel
	Stats    *model.SessionModel
	RootView *view.RootView

	// Presenters
	CropPresenter *presenter.CropPresenter
}

// BuildContainer constructs all components. No widgets are created here; the
// root view builds its layout in App.Start.
func BuildContainer(cfg *config.Config, logger *slog.Logger) *AppContainer {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	c := &AppContainer{Config: cfg, Logger: logger}
	target := image.Pt(cfg.TargetWidth, cfg.TargetHeight)
	c.Session = crop.NewSession(target, images.NewFitter())
	c.Actions = &model.ActionModel{}
	c.Stats = model.NewSessionModel()
	c.RootView = view.NewRootView(cfg, logger)
	c.CropPresenter = presenter.NewCropPresenter(c.Session, c.Actions, c.Stats, c.RootView, cfg.OutputFolder, logger)
	return c
}

// Handlers binds view callbacks to the crop presenter.
func (c *AppContainer) Handlers(onExit func()) view.Handlers {
	p := c.CropPresenter
	return view.Handlers{
		OnLoad:          p.OnLoad,
		OnSaveRequested: p.OnSaveRequested,
		OnDisplayResize: p.OnDisplayResize,
		OnDragBegin:     p.OnDragBegin,
		OnDragMove:      p.OnDragMove,
		OnExit:          onExit,
	}
}
