package presenter

import (
	"fmt"
	"image"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/soocke/rti-acquire/domain/preview"
	"github.com/soocke/rti-acquire/ui/model"
)

// LiveFlag reports whether the preview is live.
type LiveFlag interface{ Live() bool }

// StatsSource exposes the preview service counters.
type StatsSource interface{ Stats() preview.Stats }

// SelectionSource returns the current selection, if any.
type SelectionSource interface {
	Selection() (image.Rectangle, bool)
}

// StatusView displays the formatted status line.
type StatusView interface {
	SetStatus(text string)
}

// StatusPresenter formats live state, frame counters, session time and the
// selection into the status bar.
type StatusPresenter struct {
	sess  *model.SessionModel
	live  LiveFlag
	stats StatsSource
	sel   SelectionSource
	view  StatusView
	last  string
}

// NewStatusPresenter returns a new StatusPresenter.
func NewStatusPresenter(sess *model.SessionModel, live LiveFlag, stats StatsSource, sel SelectionSource, view StatusView) *StatusPresenter {
	return &StatusPresenter{sess: sess, live: live, stats: stats, sel: sel, view: view}
}

// Tick advances the session model and pushes the status line when it changed.
func (p *StatusPresenter) Tick(now time.Time) {
	if p == nil || p.sess == nil || p.live == nil || p.stats == nil || p.view == nil {
		return
	}
	live := p.live.Live()
	st := p.stats.Stats()
	p.sess.OnTick(live, st.Frames, now)
	var sel image.Rectangle
	ok := false
	if p.sel != nil {
		sel, ok = p.sel.Selection()
	}
	text := FormatStatus(live, st, p.sess.Values(), sel, ok)
	if text == p.last {
		return
	}
	p.last = text
	p.view.SetStatus(text)
}

// FormatStatus renders one status line.
func FormatStatus(live bool, st preview.Stats, sv model.SessionValues, sel image.Rectangle, hasSel bool) string {
	state := "Paused"
	if live {
		state = "Live"
	}
	selText := "no selection"
	if hasSel {
		selText = fmt.Sprintf("%dx%d+%d+%d", sel.Dx(), sel.Dy(), sel.Min.X, sel.Min.Y)
	}
	return fmt.Sprintf("%s | %.1f fps | %s frames (%s skipped) | session %s | %s",
		state, st.FPS, humanize.Comma(int64(sv.Frames)), humanize.Comma(int64(st.Skipped)), clock(sv.Session), selText)
}

func clock(d time.Duration) string {
	seconds := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
