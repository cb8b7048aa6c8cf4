package theme

// Centralized theming for the cropper UI. Provides palette constants and
// InitStyles to activate a base theme and configure the semantic styles used
// by the root view.

import (
	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Palette defines core semantic colors used across widgets.
const (
	ColorBg      = "#f7f9fb" // app background
	ColorSurface = "#ffffff" // panels
	ColorPrimary = "#2563eb" // save button
	ColorText    = "#1e293b"
)

// style names used with Style("primary.TButton") etc.
const (
	StylePrimaryButton = "primary.TButton"
	StyleStateLabel    = "state.TLabel"
)

// InitStyles activates the base theme and configures the named styles.
// Call once after the Tk app exists and before building widgets.
func InitStyles() {
	_ = ActivateTheme("azure light") // baseline metrics
	App.Configure(Background(ColorBg))

	StyleConfigure(StylePrimaryButton,
		Background(ColorPrimary),
		Foreground("white"),
		Padding("4p 3p"),
		Borderwidth(1),
		Relief("ridge"),
	)
	StyleConfigure(StyleStateLabel,
		Foreground(ColorText),
		Background(ColorSurface),
		Padding("4p 2p"),
	)
}
