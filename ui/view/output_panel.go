package view

import (
	"fmt"

	"github.com/soocke/image-cropper-go/config"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// OutputPanel shows where crops are written and at which size. The values
// are read once at startup and are not editable.
type OutputPanel interface {
	Build(row int) (next int)
}

type outputPanel struct {
	cfg *config.Config
}

// NewOutputPanel creates the view bound to cfg.
func NewOutputPanel(cfg *config.Config) OutputPanel {
	return &outputPanel{cfg: cfg}
}

func (v *outputPanel) Build(row int) int {
	if v.cfg == nil {
		return row
	}
	folder := Label(Txt("Output: "+v.cfg.OutputFolder), Anchor("w"))
	Grid(folder, Row(row), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
	size := Label(Txt(fmt.Sprintf("Size: %d×%d", v.cfg.TargetWidth, v.cfg.TargetHeight)), Anchor("e"))
	Grid(size, Row(row), Column(1), Sticky("e"), Padx("0.4m"), Pady("0.15m"))
	return row + 1
}
