package view

import (
	"github.com/soocke/image-cropper-go/domain/crop"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// pickImageFile opens the modal file dialog restricted to supported raster
// formats. It returns "" when the user cancels.
func pickImageFile() string {
	files := GetOpenFile(
		Title("Select an Image"),
		Filetypes([]FileType{{TypeName: "Image files", Extensions: crop.Extensions}}),
	)
	if len(files) == 0 {
		return ""
	}
	return files[0]
}

// showError pops a modal error box. A nil err shows nothing.
func showError(title string, err error) {
	if err == nil {
		return
	}
	MessageBox(Icon("error"), Title(title), Msg(err.Error()))
}
