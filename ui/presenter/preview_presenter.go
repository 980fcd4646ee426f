package presenter

import (
	"log/slog"
)

// LiveModel provides live state access.
type LiveModel interface {
	Live() bool
	SetLive(bool)
}

// LifecycleContract narrows what the presenter needs from the preview service.
type LifecycleContract interface {
	Start() error
	Stop()
}

// PreviewView reflects the live state in the controls.
type PreviewView interface {
	SetLive(live bool)
}

// PreviewPresenter owns presentation logic for toggling the live preview.
type PreviewPresenter struct {
	model   LiveModel
	service LifecycleContract
	view    PreviewView
	logger  *slog.Logger
}

func NewPreviewPresenter(model LiveModel, service LifecycleContract, view PreviewView, logger *slog.Logger) *PreviewPresenter {
	return &PreviewPresenter{model: model, service: service, view: view, logger: logger}
}

// Enable starts the preview service. A failed start leaves the preview paused. Idempotent.
func (p *PreviewPresenter) Enable() error {
	if p == nil || p.model == nil || p.service == nil || p.view == nil {
		return nil
	}
	if p.model.Live() { // already live
		return nil
	}
	if err := p.service.Start(); err != nil {
		if p.logger != nil {
			p.logger.Error("start preview", "error", err)
		}
		return err
	}
	p.model.SetLive(true)
	p.view.SetLive(true)
	return nil
}

// Disable stops the preview service. The last frame stays on screen. Idempotent.
func (p *PreviewPresenter) Disable() {
	if p == nil || p.model == nil || p.service == nil || p.view == nil {
		return
	}
	if !p.model.Live() { // already paused
		return
	}
	p.service.Stop()
	p.model.SetLive(false)
	p.view.SetLive(false)
}

// Toggle flips live state delegating to Enable/Disable.
func (p *PreviewPresenter) Toggle() {
	if p == nil || p.model == nil {
		return
	}
	if p.model.Live() {
		p.Disable()
		return
	}
	_ = p.Enable()
}
