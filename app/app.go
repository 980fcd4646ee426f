package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/soocke/rti-acquire/debug"
	"github.com/soocke/rti-acquire/ui/theme"
	"github.com/soocke/rti-acquire/ui/view"
)

const (
	debugLogInterval = 5 * time.Second
	minTick          = 15 * time.Millisecond
)

// app owns the Tk main window and drives the presenter loop on the Tk thread.
type app struct {
	title   string
	c       *AppContainer
	logger  *slog.Logger
	tick    time.Duration
	afterID string
	cancel  context.CancelFunc
}

func NewApp(title string, c *AppContainer) *app {
	a := &app{title: title, c: c, logger: c.Logger}
	// Repaint at the frame rate so every captured frame can be shown once.
	a.tick = time.Duration(c.Config.FrameIntervalMS) * time.Millisecond
	if a.tick < minTick {
		a.tick = minTick
	}
	return a
}

// Start builds the window, starts the update loop and blocks until the
// window is closed.
func (a *app) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel
	defer cancel()

	theme.InitStyles()
	App.WmTitle(a.title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	w, h := a.c.Config.PreviewWidth+220, a.c.Config.PreviewHeight+60
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", w, h))

	sel := a.c.SelectionPresenter
	a.c.RootView.Build(a.c.Blank, view.Handlers{
		ToggleLive: a.c.PreviewPresenter.Toggle,
		Clear:      sel.Clear,
		Exit:       a.exitHandler,
		Pointer:    sel.HandlePointer,
	})

	if a.c.Config.Debug && a.logger != nil {
		debug.StartGoroutineLogger(ctx, debugLogInterval, a.logger)
		debug.StartMemLogger(ctx, debugLogInterval, a.logger)
	}

	a.c.Loop.Schedule = a.scheduleUpdate
	a.scheduleUpdate()

	App.Wait()
}

func (a *app) update() {
	defer func() {
		if r := recover(); r != nil {
			if a.logger != nil {
				a.logger.Error("update loop panic", "panic", r)
			}
			// Keep the loop alive; the next tick retries with fresh state.
			a.scheduleUpdate()
		}
	}()
	a.c.Loop.Tick()
}

func (a *app) exitHandler() {
	// Cancel scheduled after event if any.
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
		a.afterID = ""
	}
	a.c.PreviewPresenter.Disable()
	if a.cancel != nil {
		a.cancel()
	}
	if r, ok := a.c.SelectionPresenter.Selection(); ok && a.logger != nil {
		a.logger.Info("final selection", "rect", r.String())
	}
	Destroy(App)
}

func (a *app) scheduleUpdate() {
	// Schedule the next update using TclAfter to stay on Tk's event loop thread.
	a.afterID = TclAfter(a.tick, a.update)
}
