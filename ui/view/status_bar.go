package view

import (
	"github.com/soocke/rti-acquire/ui/theme"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// StatusBar shows one line of preview status.
type StatusBar interface {
	SetStatus(text string)
}

type statusBar struct {
	lbl *TLabelWidget
}

// NewStatusBar creates the status label spanning the given row of parent.
func NewStatusBar(parent *FrameWidget, row, span int) StatusBar {
	s := &statusBar{lbl: TLabel(Txt("Paused"), Anchor("w"), Style(theme.StyleStatusLabel))}
	if parent != nil {
		Grid(s.lbl, In(parent), Row(row), Column(0), Columnspan(span), Sticky("we"), Padx("0.2m"))
	} else {
		Grid(s.lbl, Row(row), Column(0), Columnspan(span), Sticky("we"), Padx("0.2m"))
	}
	return s
}

func (s *statusBar) SetStatus(text string) {
	if s == nil || s.lbl == nil {
		return
	}
	s.lbl.Configure(Txt(text))
}
