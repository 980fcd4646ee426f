package presenter

import (
	"image"
	"image/color"
	"log/slog"

	"github.com/soocke/rti-acquire/domain/preview"
	"github.com/soocke/rti-acquire/domain/selection"
	"github.com/soocke/rti-acquire/ui/images"
)

// FrameSource supplies the most recent preview frame.
type FrameSource interface {
	LatestFrame() preview.FrameSnapshot
}

// SelectionView is the surface that shows the composed preview and the
// pointer cursor. ShowFrame must not retain img after it returns.
type SelectionView interface {
	ShowFrame(img image.Image)
	SetCursor(name string)
}

// SelectionOptions configures how the selection is painted.
type SelectionOptions struct {
	BorderWidth int
	Color       color.Color
	MaxWidth    int
	MaxHeight   int
	Blank       *image.RGBA // shown until the first frame arrives
}

// SelectionPresenter feeds pointer events to the overlay and repaints the
// preview with the selection border. Overlay redraw requests only mark the
// presenter dirty; the repaint happens once per Tick with the latest area.
type SelectionPresenter struct {
	overlay selection.Contract
	frames  FrameSource
	view    SelectionView
	opts    SelectionOptions
	logger  *slog.Logger

	dirty   bool
	lastSeq uint64
	paints  uint64
}

// NewSelectionPresenter registers the overlay listeners and schedules a first paint.
func NewSelectionPresenter(overlay selection.Contract, frames FrameSource, view SelectionView, opts SelectionOptions, logger *slog.Logger) *SelectionPresenter {
	if opts.Color == nil {
		opts.Color = color.RGBA{R: 0xff, G: 0x30, B: 0x30, A: 0xff}
	}
	if opts.BorderWidth <= 0 {
		opts.BorderWidth = selection.DefaultBorderWidth
	}
	p := &SelectionPresenter{overlay: overlay, frames: frames, view: view, opts: opts, logger: logger, dirty: true}
	if overlay != nil {
		overlay.OnRedraw(func(selection.Rect, bool) { p.dirty = true })
		overlay.OnCursor(func(c selection.CursorKind) {
			if p.view != nil {
				p.view.SetCursor(c.TkName())
			}
		})
	}
	return p
}

// HandlePointer forwards a pointer event to the overlay.
func (p *SelectionPresenter) HandlePointer(ev selection.Event) {
	if p == nil || p.overlay == nil {
		return
	}
	p.overlay.HandleEvent(ev)
}

// Clear hides the selection.
func (p *SelectionPresenter) Clear() {
	if p == nil || p.overlay == nil {
		return
	}
	p.overlay.Clear()
}

// Selection returns the finished rectangle in preview image coordinates.
// ok is false when nothing is selected.
func (p *SelectionPresenter) Selection() (image.Rectangle, bool) {
	if p == nil || p.overlay == nil || !p.overlay.Visible() {
		return image.Rectangle{}, false
	}
	a := p.overlay.Area()
	if a.Empty() {
		return image.Rectangle{}, false
	}
	return a.ImageRect(), true
}

// Tick repaints when the overlay asked for a redraw or a new frame arrived.
func (p *SelectionPresenter) Tick() {
	if p == nil || p.view == nil || p.overlay == nil {
		return
	}
	var frame image.Image
	if p.frames != nil {
		snap := p.frames.LatestFrame()
		if snap.Image != nil {
			frame = snap.Image
			if snap.Sequence != p.lastSeq {
				p.lastSeq = snap.Sequence
				p.dirty = true
			}
		}
	}
	if !p.dirty {
		return
	}
	if frame == nil {
		if p.opts.Blank == nil {
			return
		}
		frame = p.opts.Blank
	}
	p.dirty = false
	p.paint(frame)
}

// Paints reports how many repaints have been pushed to the view.
func (p *SelectionPresenter) Paints() uint64 {
	if p == nil {
		return 0
	}
	return p.paints
}

func (p *SelectionPresenter) paint(frame image.Image) {
	if p.opts.MaxWidth > 0 && p.opts.MaxHeight > 0 {
		frame = images.ScaleToFit(frame, p.opts.MaxWidth, p.opts.MaxHeight)
	}
	composed := images.Compose(frame, p.overlay.Area(), p.overlay.Visible(), p.opts.BorderWidth, p.opts.Color)
	if composed == nil {
		return
	}
	p.view.ShowFrame(composed)
	images.RecycleFrame(composed)
	p.paints++
	if p.logger != nil {
		p.logger.Debug("selection repaint", "seq", p.lastSeq, "area", p.overlay.Area().String(), "visible", p.overlay.Visible())
	}
}
