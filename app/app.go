package app

import (
	"fmt"
	"log/slog"

	. "modernc.org/tk9.0"

	"github.com/soocke/image-cropper-go/config"
	"github.com/soocke/image-cropper-go/ui/theme"
)

type app struct {
	config *config.Config
	logger *slog.Logger
	width  int
	height int
	c      *AppContainer
}

func NewApp(title string, width, height int, config *config.Config, logger *slog.Logger) *app {
	a := &app{config: config, logger: logger, width: width, height: height}
	a.c = BuildContainer(config, logger)

	App.WmTitle(title)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", width, height))
	return a
}

// Start builds the widgets and blocks in the Tk event loop until the main
// window is closed. All presenter calls happen on this loop.
func (a *app) Start() {
	theme.InitStyles()
	a.c.RootView.Build(a.c.Handlers(a.exitHandler))
	a.logger.Info("ready", "output_folder", a.config.OutputFolder,
		"target_width", a.config.TargetWidth, "target_height", a.config.TargetHeight)
	App.Wait()
}

func (a *app) exitHandler() {
	if a.c.RootView.Preview != nil {
		a.c.RootView.Preview.Close()
	}
	Destroy(App)
}
