// SPDX-License-Identifier: MIT
// Command spatialdemo orbits a camera around a three-joint arm, blends the
// arm between two key poses and logs what the camera sees each frame.
//
// Settings come from SPATIAL_* environment variables; see internal/config.
package main

import (
	"os"

	"go.uber.org/zap"

	"github.com/katalvlaran/spatial/internal/config"
	"github.com/katalvlaran/spatial/internal/logging"
	"github.com/katalvlaran/spatial/internal/scene"
	"github.com/katalvlaran/spatial/scalar"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log := logging.NewDefault()
		log.Error("config", zap.Error(err))
		_ = log.Sync()
		os.Exit(2)
	}

	log, err := logging.New(logging.Config{
		Level:       cfg.Log.Level,
		Development: cfg.Log.Development,
		OutputPaths: []string{"stdout"},
	})
	if err != nil {
		log = logging.NewDefault()
		log.Warn("falling back to default logger", zap.Error(err))
	}
	defer func() { _ = log.Sync() }()

	prev := scalar.SetTolerance(cfg.Tolerance)
	log.Debug("tolerance", zap.Float32("previous", prev), zap.Float32("current", scalar.Tolerance()))

	if err := run(cfg, log.Named("demo")); err != nil {
		log.Error("demo failed", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *logging.Logger) error {
	cam := scene.Camera{
		FOV:    scalar.ToRadians(cfg.Camera.FOV),
		Aspect: cfg.Camera.Aspect,
		Near:   cfg.Camera.Near,
		Far:    cfg.Camera.Far,
		Height: cfg.Camera.Height,
		Radius: cfg.Camera.Radius,
	}
	arm := scene.Arm()

	for f := 0; f < cfg.Frames; f++ {
		t := float32(f) / float32(cfg.Frames-1)
		flog := log.With(zap.Int("frame", f), zap.Float32("t", t))

		viewProj, err := cam.ViewProjection(t * scalar.PiOverTwo)
		if err != nil {
			return err
		}

		poses, fallbacks, err := scene.Sample(arm, t)
		if err != nil {
			return err
		}
		if fallbacks > 0 {
			flog.Warn("degenerate rotation keys", zap.Int("joints", fallbacks))
		}

		worlds, err := scene.WorldMatrices(arm, poses)
		if err != nil {
			return err
		}

		for i, w := range worlds {
			scale, orientation, translation, err := w.Decompose()
			if err != nil {
				return err
			}
			angles, err := orientation.EulerAngles()
			if err != nil {
				return err
			}
			ndc, inFront := scene.Project(viewProj, translation)

			flog.Info("joint",
				zap.String("name", arm[i].Name),
				logging.Vector3("position", translation),
				logging.Vector3("scale", scale),
				logging.Vector3("euler_deg", angles.Scale(scalar.RadiansToDegrees)),
				logging.Vector3("ndc", ndc),
				zap.Bool("visible", inFront && scene.Visible(ndc)),
			)
			flog.Debug("world", zap.String("name", arm[i].Name), logging.Matrix("matrix", w))
		}
	}
	return nil
}
