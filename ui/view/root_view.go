package view

import (
	"image"
	"log/slog"

	"github.com/soocke/rti-acquire/config"
	"github.com/soocke/rti-acquire/domain/selection"
	"github.com/soocke/rti-acquire/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RootView composes the top-level application layout and wires UI callbacks.
// It owns high-level subviews but exposes minimal exported fields for presenters.
type RootView struct {
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger

	// Subviews
	Preview     PreviewCanvas
	Status      StatusBar
	ConfigPanel ConfigPanel

	// Widgets
	LiveBtn *TButtonWidget
	DarkBtn *TButtonWidget
	frame   *FrameWidget // preview surround, recoloured on theme toggle
}

// Handlers are the user actions the root view reports.
type Handlers struct {
	ToggleLive func()
	Clear      func()
	Exit       func()
	Pointer    func(selection.Event)
}

// UI abstracts the subset of view operations needed by presenters, enabling decoupling
// from the concrete RootView implementation.
type UI interface {
	ShowFrame(img image.Image)
	SetCursor(name string)
	SetLive(live bool)
	SetStatus(text string)
}

var _ UI = (*RootView)(nil)

func NewRootView(cfg *config.Config, cfgPath string, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, cfgPath: cfgPath, logger: logger}
}

// Build constructs the layout: preview on the left, controls and settings on
// the right with a settings window behind a button, status bar along the bottom. placeholder is shown until the
// first frame is painted.
func (rv *RootView) Build(placeholder image.Image, h Handlers) {
	if rv == nil {
		return
	}
	GridColumnConfigure(App, 0, Weight(1))
	GridRowConfigure(App, 0, Weight(1))

	rv.frame = Frame(Borderwidth(4), Relief("flat"), Background(theme.Current().Border))
	Grid(rv.frame, Row(0), Column(0), Sticky("nw"), Padx("0.4m"), Pady("0.4m"))
	rv.Preview = NewPreviewCanvas(rv.frame, placeholder, h.Pointer)

	side := Frame()
	Grid(side, Row(0), Column(1), Sticky("ne"), Padx("0.3m"), Pady("0.3m"))
	rv.LiveBtn = TButton(Txt("Start Live [Space]"), Style(theme.StylePrimaryButton), Command(h.ToggleLive))
	Grid(rv.LiveBtn, In(side), Row(0), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	clearBtn := TButton(Txt("Clear Selection [Esc]"), Command(h.Clear))
	Grid(clearBtn, In(side), Row(1), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	exitBtn := TButton(Txt("Exit"), Style(theme.StyleDangerButton), Command(h.Exit))
	Grid(exitBtn, In(side), Row(2), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))

	rv.ConfigPanel = NewConfigPanel(rv.cfg, rv.cfgPath, rv.logger)
	settingsBtn := TButton(Txt("Settings"), Command(rv.ConfigPanel.OpenOrFocus))
	Grid(settingsBtn, In(side), Row(3), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	rv.DarkBtn = TButton(Txt("Dark Mode"), Command(rv.toggleTheme))
	Grid(rv.DarkBtn, In(side), Row(4), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))

	rv.Status = NewStatusBar(nil, 1, 2)

	Bind(App, "<Escape>", Command(h.Clear))
	Bind(App, "<space>", Command(h.ToggleLive))
}

// toggleTheme switches palettes and recolours the widgets ttk styles do not cover.
func (rv *RootView) toggleTheme() {
	p := theme.ToggleDark()
	if rv.frame != nil {
		rv.frame.Configure(Background(p.Border))
	}
	if rv.DarkBtn != nil {
		if p.Dark {
			rv.DarkBtn.Configure(Txt("Light Mode"))
		} else {
			rv.DarkBtn.Configure(Txt("Dark Mode"))
		}
	}
}

// ShowFrame proxies to the preview canvas.
func (rv *RootView) ShowFrame(img image.Image) {
	if rv != nil && rv.Preview != nil {
		rv.Preview.ShowFrame(img)
	}
}

// SetCursor proxies to the preview canvas.
func (rv *RootView) SetCursor(name string) {
	if rv != nil && rv.Preview != nil {
		rv.Preview.SetCursor(name)
	}
}

// SetLive updates the live button and locks settings while the preview runs.
func (rv *RootView) SetLive(live bool) {
	if rv == nil {
		return
	}
	if rv.LiveBtn != nil {
		if live {
			rv.LiveBtn.Configure(Txt("Pause [Space]"))
		} else {
			rv.LiveBtn.Configure(Txt("Start Live [Space]"))
		}
	}
	if rv.ConfigPanel != nil {
		rv.ConfigPanel.SetEditable(!live)
	}
}

// SetStatus proxies to the status bar.
func (rv *RootView) SetStatus(text string) {
	if rv != nil && rv.Status != nil {
		rv.Status.SetStatus(text)
	}
}
