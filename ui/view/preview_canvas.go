package view

import (
	"image"

	"github.com/soocke/rti-acquire/domain/selection"
	"github.com/soocke/rti-acquire/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// PreviewCanvas shows the composed preview frame and reports pointer events
// in label-local pixel coordinates, which equal preview image pixels.
type PreviewCanvas interface {
	ShowFrame(img image.Image)
	SetCursor(name string)
}

type previewCanvas struct {
	label     *LabelWidget
	prevPhoto *Img // last Tk photo image instance
	cursor    string
}

// NewPreviewCanvas creates the preview label in parent, shows placeholder and
// binds button-1 press, drag, hover and release to onPointer.
func NewPreviewCanvas(parent *FrameWidget, placeholder image.Image, onPointer func(selection.Event)) PreviewCanvas {
	photo := NewPhoto(Data(images.EncodePNG(placeholder)))
	// Borderwidth 0 keeps label-local coordinates aligned with image pixels.
	label := Label(Image(photo), Borderwidth(0), Anchor("nw"))
	Grid(label, In(parent), Row(0), Column(0), Sticky("nw"))
	v := &previewCanvas{label: label, prevPhoto: photo}
	if onPointer != nil {
		Bind(label, "<ButtonPress-1>", Command(func(e *Event) { onPointer(selection.Press(eventPoint(e))) }))
		Bind(label, "<B1-Motion>", Command(func(e *Event) { onPointer(selection.Motion(eventPoint(e))) }))
		Bind(label, "<Motion>", Command(func(e *Event) { onPointer(selection.Motion(eventPoint(e))) }))
		Bind(label, "<ButtonRelease-1>", Command(func(e *Event) { onPointer(selection.Release(eventPoint(e))) }))
	}
	return v
}

// eventPoint extracts the widget-local pointer position (%x, %y).
func eventPoint(e *Event) (int, int) {
	if e == nil {
		return 0, 0
	}
	return e.X, e.Y
}

// ShowFrame replaces the label photo. img is encoded before returning.
func (v *previewCanvas) ShowFrame(img image.Image) {
	if v.label == nil || img == nil {
		return
	}
	pngBytes := images.EncodePNG(img)
	// Replace previous photo to avoid retaining obsolete pixel buffers.
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	v.prevPhoto = NewPhoto(Data(pngBytes))
	v.label.Configure(Image(v.prevPhoto))
}

func (v *previewCanvas) SetCursor(name string) {
	if v.label == nil || name == v.cursor {
		return
	}
	v.cursor = name
	v.label.Configure(Cursor(name))
}
