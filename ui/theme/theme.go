package theme

// Palettes and ttk styles for the acquisition window. Views refer to the
// style names below; ToggleDark re-applies every style from the other palette.

import tk "modernc.org/tk9.0"

// ColorSelection is the default selection border; config border_color overrides it.
const ColorSelection = "#ff3030"

// Palette holds the resolved colours of one mode.
type Palette struct {
	Dark    bool
	AppBg   string
	Surface string // status bar
	Border  string // frame around the preview
	Primary string
	Danger  string
	Text    string
}

var (
	light = Palette{AppBg: "#f7f9fb", Surface: "#ffffff", Border: "#d0d7de", Primary: "#2563eb", Danger: "#dc2626", Text: "#1e293b"}
	dark  = Palette{Dark: true, AppBg: "#0f172a", Surface: "#1e293b", Border: "#334155", Primary: "#3b82f6", Danger: "#ef4444", Text: "#f1f5f9"}
)

// Style names used with Style(...).
const (
	StylePrimaryButton = "primary.TButton"
	StyleDangerButton  = "danger.TButton"
	StyleStatusLabel   = "status.TLabel"
)

var darkMode bool

// Current returns the palette of the active mode.
func Current() Palette {
	if darkMode {
		return dark
	}
	return light
}

// InitStyles applies the styles of the active mode.
func InitStyles() { apply(Current()) }

// ToggleDark flips the mode, re-applies the styles and returns the new
// palette so views can recolour plain Tk widgets that styles do not reach.
func ToggleDark() Palette {
	darkMode = !darkMode
	p := Current()
	apply(p)
	return p
}

func apply(p Palette) {
	_ = tk.ActivateTheme("azure light") // baseline metrics
	tk.App.Configure(tk.Background(p.AppBg))
	tk.StyleConfigure(StylePrimaryButton, tk.Background(p.Primary), tk.Foreground("white"), tk.Padding("4p 3p"), tk.Borderwidth(1), tk.Relief("ridge"))
	tk.StyleConfigure(StyleDangerButton, tk.Background(p.Danger), tk.Foreground("white"), tk.Padding("4p 3p"), tk.Borderwidth(1), tk.Relief("ridge"))
	tk.StyleConfigure(StyleStatusLabel, tk.Foreground(p.Text), tk.Background(p.Surface), tk.Padding("4p 2p"), tk.Borderwidth(1), tk.Relief("groove"))
}
