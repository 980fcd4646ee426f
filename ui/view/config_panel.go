package view

import (
	"log/slog"
	"strings"

	"github.com/soocke/rti-acquire/config"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// ConfigPanel is the settings window. It owns its widgets and writes back
// into *config.Config on ApplyChanges. Saved settings take effect on the next
// start. The window is a separate toplevel so typing in its fields does not
// trigger the main window key bindings.
type ConfigPanel interface {
	OpenOrFocus()
	SetEditable(enabled bool)
	ApplyChanges() // parses widget text into underlying config and persists
}

type configPanel struct {
	cfg      *config.Config
	cfgPath  string
	logger   *slog.Logger
	win      *ToplevelWidget
	applyBtn *ButtonWidget
	editable bool
	keys     []string
	widgets  map[string]*TextWidget // keyed by config field key
}

// NewConfigPanel creates the view bound to cfg.
func NewConfigPanel(cfg *config.Config, cfgPath string, logger *slog.Logger) ConfigPanel {
	return &configPanel{cfg: cfg, cfgPath: cfgPath, logger: logger, editable: true, widgets: make(map[string]*TextWidget)}
}

func (v *configPanel) OpenOrFocus() {
	if v.cfg == nil {
		return
	}
	if v.win != nil {
		WmGeometry(v.win.Window)
		return
	}
	win := App.Toplevel(Borderwidth(2))
	win.WmTitle("Settings")
	v.win = win
	v.keys = v.keys[:0]
	row := 0
	for _, f := range v.cfg.Fields() {
		lbl := win.Label(Txt(f.Label), Anchor("w"))
		Grid(lbl, Row(row), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
		w := win.Text(Height(1), Width(28))
		Grid(w, Row(row), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
		w.Delete("1.0", END)
		w.Insert("1.0", f.Value)
		v.keys = append(v.keys, f.Key)
		v.widgets[f.Key] = w
		row++
	}
	v.applyBtn = win.Button(Txt("Save Settings"), Command(func() { v.ApplyChanges() }))
	Grid(v.applyBtn, Row(row), Column(0), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	Bind(win, "<Escape>", Command(v.close))
	WmProtocol(win.Window, "WM_DELETE_WINDOW", v.close)
	v.SetEditable(v.editable)
}

func (v *configPanel) close() {
	if v.win != nil {
		Destroy(v.win)
		v.win = nil
		v.applyBtn = nil
		clear(v.widgets)
	}
}

func (v *configPanel) SetEditable(enabled bool) {
	v.editable = enabled
	state := "disabled"
	if enabled {
		state = "normal"
	}
	for _, w := range v.widgets {
		if w != nil {
			w.Configure(State(state))
		}
	}
	if v.applyBtn != nil {
		v.applyBtn.Configure(State(state))
	}
}

func (v *configPanel) text(w *TextWidget) string {
	if w == nil {
		return ""
	}
	parts := w.Get("1.0", END)
	return strings.Join(parts, "")
}

func (v *configPanel) ApplyChanges() {
	if v.cfg == nil || v.win == nil {
		return
	}
	cfg := *v.cfg // copy
	for _, key := range v.keys {
		if err := cfg.Set(key, v.text(v.widgets[key])); err != nil {
			if v.logger != nil {
				v.logger.Warn("settings: rejected value", "key", key, "error", err)
			}
			return
		}
	}
	if err := cfg.Validate(); err != nil {
		if v.logger != nil {
			v.logger.Warn("settings: invalid", "error", err)
		}
		return
	}
	*v.cfg = cfg
	if err := v.cfg.Save(v.cfgPath); err != nil {
		if v.logger != nil {
			v.logger.Error("config save failed", "error", err)
		}
	} else if v.logger != nil {
		v.logger.Info("config saved", "path", v.cfgPath)
	}
}
