package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/jonalee1/adstock-visualization/internal/adapter/render"
	"github.com/jonalee1/adstock-visualization/internal/config"
	"github.com/jonalee1/adstock-visualization/internal/domain"
	"github.com/jonalee1/adstock-visualization/internal/lib/log"
	"github.com/jonalee1/adstock-visualization/internal/usecase/curve"
	"github.com/jonalee1/adstock-visualization/internal/usecase/series"
)

// App holds the shared dependencies for CLI commands.
type App struct {
	Config *config.Config
	Logger *zerolog.Logger

	// Threshold is the marginal return below which the diminishing-returns
	// annotation fires. Zero disables it.
	Threshold float64

	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// NewApp creates an App wired to the process standard streams.
func NewApp(cfg *config.Config, logger *zerolog.Logger) *App {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &App{
		Config:    cfg,
		Logger:    logger,
		Threshold: curve.DefaultDiminishingThreshold,
		In:        os.Stdin,
		Out:       os.Stdout,
		Err:       os.Stderr,
	}
}

// Service builds a series service from the current engine configuration
func (a *App) Service() *series.SeriesService {
	return series.NewSeriesService(log.Component(a.Logger, "series"), series.Options{
		Policy:     series.Policy(a.Config.Engine.Policy),
		MaxSamples: a.Config.Engine.MaxSamples,
	})
}

// Renderer builds a renderer from the current output configuration
func (a *App) Renderer() *render.Renderer {
	format, err := render.ParseFormat(a.Config.Output.Format)
	if err != nil {
		format = render.FormatAuto
	}
	return render.NewRenderer(a.Out, format, a.Config.Output.Precision)
}

// Compute runs one request through the service and renders the result with annotations
func (a *App) Compute(title string, req series.Request) error {
	result, err := a.Service().ComputeSeries(req)
	if err != nil {
		return fmt.Errorf("failed to compute %s: %w", title, err)
	}
	return a.Show(title, result)
}

// Show renders an already computed series
func (a *App) Show(title string, s *domain.Series) error {
	return a.Renderer().Render(render.Document{
		Title:       title,
		Series:      s,
		Annotations: series.Annotate(s, a.Threshold),
	})
}
