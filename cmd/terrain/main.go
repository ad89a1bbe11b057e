package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/OCharnyshevich/terrain-mesh/internal/app"
	"github.com/OCharnyshevich/terrain-mesh/internal/config"
)

func main() {
	cfg := config.DefaultConfig()

	var (
		configSrc   = flag.String("config", "", "config file path or go-getter URL (yaml or json)")
		writeConfig = flag.String("write-config", "", "write the effective config to this path")
		logLevel    = flag.String("log-level", "info", "log level: debug, info, warn, error")
	)
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed")
	flag.StringVar(&cfg.SeedPhrase, "seed-phrase", cfg.SeedPhrase, "phrase hashed into the seed (overrides -seed)")
	flag.Float64Var(&cfg.Radius, "radius", cfg.Radius, "minimum distance between sampled points")
	flag.Float64Var(&cfg.Width, "width", cfg.Width, "sampling region width")
	flag.Float64Var(&cfg.Height, "height", cfg.Height, "sampling region height")
	flag.IntVar(&cfg.Attempts, "attempts", cfg.Attempts, "rejection samples per active point")
	flag.BoolVar(&cfg.Border, "border", cfg.Border, "inject corner and edge points before sampling")
	flag.StringVar(&cfg.Noise, "noise", cfg.Noise, "noise primitive: simplex or perlin")
	flag.IntVar(&cfg.Resolution, "resolution", cfg.Resolution, "noise field resolution")
	flag.Float64Var(&cfg.NoiseScale, "noise-scale", cfg.NoiseScale, "noise scale")
	flag.IntVar(&cfg.Octaves, "octaves", cfg.Octaves, "noise octaves")
	flag.Float64Var(&cfg.Persistence, "persistence", cfg.Persistence, "amplitude falloff per octave")
	flag.Float64Var(&cfg.Lacunarity, "lacunarity", cfg.Lacunarity, "frequency growth per octave")
	flag.Float64Var(&cfg.UVScale, "uv-scale", cfg.UVScale, "UV projection scale")
	flag.Float64Var(&cfg.HeightMultiplier, "height-multiplier", cfg.HeightMultiplier, "vertical displacement multiplier")
	flag.Float64Var(&cfg.CleanupMargin, "cleanup-margin", cfg.CleanupMargin, "drop triangles within this distance of the region edge (0 = off)")
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		level = slog.LevelInfo
	}
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if *configSrc != "" {
		explicit := make(map[string]bool)
		flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

		fromFile, err := config.Open(ctx, *configSrc)
		if err != nil {
			log.Error("load config", "error", err)
			os.Exit(1)
		}
		config.Merge(cfg, fromFile, explicit)
		log.Info("loaded config", "source", *configSrc)
	}

	if _, err := app.New(cfg, log).Run(ctx); err != nil {
		log.Error("generate terrain", "error", err)
		os.Exit(1)
	}

	if *writeConfig != "" {
		if err := config.Save(*writeConfig, cfg); err != nil {
			log.Error("save config", "error", err)
			os.Exit(1)
		}
		log.Info("config written", "path", *writeConfig)
	}
}
