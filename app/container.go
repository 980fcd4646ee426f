package app

import (
	"image"
	"image/color"
	"log/slog"
	"time"

	"github.com/soocke/rti-acquire/config"
	"github.com/soocke/rti-acquire/domain/preview"
	"github.com/soocke/rti-acquire/domain/selection"
	"github.com/soocke/rti-acquire/ui/images"
	"github.com/soocke/rti-acquire/ui/model"
	"github.com/soocke/rti-acquire/ui/presenter"
	"github.com/soocke/rti-acquire/ui/theme"
	"github.com/soocke/rti-acquire/ui/view"
)

// Container assembles models, services, presenters and the root view.
type AppContainer struct {
	Config     *config.Config
	ConfigPath string
	Logger     *slog.Logger
	Preview    *model.PreviewModel
	Session    *model.SessionModel
	Overlay    *selection.Overlay
	PreviewSvc preview.Service
	Blank      *image.RGBA
	RootView   *view.RootView
	UI         view.UI

	// Presenters
	SelectionPresenter *presenter.SelectionPresenter
	PreviewPresenter   *presenter.PreviewPresenter
	StatusPresenter    *presenter.StatusPresenter
	Loop               *presenter.Loop
}

// BuildContainer constructs all components. It has no side effects; widgets
// are created later by RootView.Build, and the view proxies are nil-safe
// until then.
func BuildContainer(cfg *config.Config, logger *slog.Logger, cfgPath string) *AppContainer {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	c := &AppContainer{Config: cfg, ConfigPath: cfgPath, Logger: logger}
	c.Preview = &model.PreviewModel{}
	c.Session = model.NewSessionModel()
	c.Overlay = selection.NewOverlay(selection.Options{
		BorderWidth:     cfg.BorderWidth,
		CornerTolerance: cfg.CornerTolerance,
		Initial: selection.NewRect(cfg.InitialSelection.Left, cfg.InitialSelection.Top,
			cfg.InitialSelection.Width, cfg.InitialSelection.Height),
		Logger: logger,
	})
	c.PreviewSvc = preview.NewService(preview.Options{
		Source:        frameSource(cfg),
		Logger:        logger,
		FrameInterval: time.Duration(cfg.FrameIntervalMS) * time.Millisecond,
		FPSInterval:   time.Duration(cfg.FPSLogIntervalMS) * time.Millisecond,
	})
	c.Blank = preview.Blank(cfg.PreviewWidth, cfg.PreviewHeight)

	// View
	c.RootView = view.NewRootView(cfg, cfgPath, logger)
	c.UI = c.RootView

	// Presenters
	c.SelectionPresenter = presenter.NewSelectionPresenter(c.Overlay, c.PreviewSvc, c.UI, presenter.SelectionOptions{
		BorderWidth: cfg.BorderWidth,
		Color:       borderColor(cfg.BorderColor, logger),
		MaxWidth:    cfg.PreviewWidth,
		MaxHeight:   cfg.PreviewHeight,
		Blank:       c.Blank,
	}, logger)
	c.PreviewPresenter = presenter.NewPreviewPresenter(c.Preview, c.PreviewSvc, c.UI, logger)
	c.StatusPresenter = presenter.NewStatusPresenter(c.Session, c.Preview, c.PreviewSvc, c.SelectionPresenter, c.UI)
	// Schedule is set by the app once the Tk loop is running.
	c.Loop = presenter.NewLoop(c.SelectionPresenter, c.StatusPresenter, nil)
	return c
}

func frameSource(cfg *config.Config) preview.FrameSource {
	switch cfg.Source {
	case config.SourceJPEG:
		return preview.JPEGSource{Path: cfg.JPEGPath}
	case config.SourceGDI:
		return preview.GDISource{}
	default:
		return preview.ScreenSource{}
	}
}

func borderColor(s string, logger *slog.Logger) color.Color {
	c, err := images.ParseHexColor(s)
	if err == nil {
		return c
	}
	if logger != nil {
		logger.Warn("invalid border colour, using default", "value", s, "error", err)
	}
	c, _ = images.ParseHexColor(theme.ColorSelection)
	return c
}
