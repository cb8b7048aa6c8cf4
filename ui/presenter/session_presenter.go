package presenter

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/soocke/image-cropper-go/ui/model"
)

// StatusView displays a single status line.
type StatusView interface {
	SetStatus(text string)
}

// SessionPresenter formats the session model into the status line.
type SessionPresenter struct {
	sess *model.SessionModel
	view StatusView
}

// NewSessionPresenter returns a new SessionPresenter.
func NewSessionPresenter(sess *model.SessionModel, view StatusView) *SessionPresenter {
	return &SessionPresenter{sess: sess, view: view}
}

// ShowLoaded reports the loaded image name, pixel size and file size.
func (p *SessionPresenter) ShowLoaded() {
	if p == nil || p.sess == nil || p.view == nil {
		return
	}
	p.view.SetStatus(LoadedStatus(p.sess.Values()))
}

// ShowSaved confirms the last written file.
func (p *SessionPresenter) ShowSaved() {
	if p == nil || p.sess == nil || p.view == nil {
		return
	}
	p.view.SetStatus(fmt.Sprintf("Image saved as '%s'.", p.sess.Values().LastSaved))
}

// ShowSaveFailed reports a failed write of path.
func (p *SessionPresenter) ShowSaveFailed(path string) {
	if p == nil || p.view == nil {
		return
	}
	p.view.SetStatus("Save failed: " + path)
}

// LoadedStatus renders "name: WxH, size" for info.
func LoadedStatus(info model.SessionInfo) string {
	if info.Name == "" {
		return "No image loaded"
	}
	status := fmt.Sprintf("%s: %d×%d", info.Name, info.SourceSize.X, info.SourceSize.Y)
	if info.FileSize > 0 {
		status += ", " + humanize.Bytes(uint64(info.FileSize))
	}
	return status
}
