package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/OCharnyshevich/terrain-mesh/internal/config"
	"github.com/OCharnyshevich/terrain-mesh/pkg/terrain"
)

// App runs terrain generation for a configuration.
type App struct {
	cfg *config.Config
	log *slog.Logger
}

// New creates a new App with the given config and logger.
func New(cfg *config.Config, log *slog.Logger) *App {
	return &App{cfg: cfg, log: log}
}

// Run generates one terrain and logs a summary of every stage.
func (a *App) Run(ctx context.Context) (*terrain.Result, error) {
	params, err := a.cfg.Params()
	if err != nil {
		return nil, fmt.Errorf("build params: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	a.log.Info("generating terrain",
		"seed", params.Seed,
		"width", params.Sampling.Width,
		"height", params.Sampling.Height,
		"radius", params.Sampling.Radius,
		"noise", params.NoiseSource,
		"resolution", params.Noise.Resolution,
	)

	start := time.Now()
	res := terrain.Generate(params, terrain.WithLogger(a.log))

	if res.Mesh.Empty() {
		a.log.Warn("too few points to triangulate, mesh is empty", "points", res.Points.Len())
	}
	lo, hi := res.Field.MinMax()
	a.log.Info("terrain generated",
		"points", res.Points.Len(),
		"triangles", res.Mesh.TriangleCount(),
		"vertices", len(res.Mesh.Vertices),
		"minZ", res.Mesh.Bounds.Min.Z,
		"maxZ", res.Mesh.Bounds.Max.Z,
		"fieldMin", lo,
		"fieldMax", hi,
		"elapsed", time.Since(start),
	)
	return res, nil
}
