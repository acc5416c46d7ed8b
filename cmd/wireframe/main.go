// SPDX-License-Identifier: MIT
// Command wireframe is the entry point for the polyline toolkit: an
// interactive shell and a scripted scene animator.
package main

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/wireframe/cli"
	"github.com/katalvlaran/wireframe/geometry"
	"github.com/katalvlaran/wireframe/polyline"
	"github.com/katalvlaran/wireframe/render"
)

// CLI is the kong command tree.
type CLI struct {
	Verbose bool `help:"Enable debug logging." short:"v"`

	Repl ReplCmd `cmd:"" default:"1" help:"Run the interactive polyline shell."`
	Demo DemoCmd `cmd:"" help:"Render an animated scene to stdout."`
}

// ReplCmd runs the interactive interpreter on stdin/stdout.
type ReplCmd struct{}

// Run starts the shell; diagnostics go to the global logger so the
// transcript stays clean.
func (r *ReplCmd) Run() error {
	return cli.New(os.Stdin, os.Stdout, log.Logger).Run()
}

// DemoCmd renders a scene (a YAML file or the built-in cube) as a sequence
// of frames, spinning the scene between frames.
type DemoCmd struct {
	Scene  string  `help:"YAML scene file; omit for the built-in cube." type:"existingfile" optional:""`
	Frames int     `help:"Number of animation frames." default:"8"`
	Spin   float64 `help:"Rotation per frame around the vertical axis, degrees." default:"15"`
}

// Run loads the scene, builds the polylines and prints one frame per spin
// step.
func (d *DemoCmd) Run() error {
	scene, err := loadScene(d.Scene)
	if err != nil {
		return err
	}

	lines := make([]*polyline.Polyline[float64], 0, len(scene.Lines))
	for _, sl := range scene.Lines {
		p := polyline.New[float64]()
		for _, sp := range sl.Points {
			if err = p.AddPoint(geometry.NewPoint3(sp.X, sp.Y, sp.Z), sp.nameByte()); err != nil {
				return fmt.Errorf("scene point %q: %w", sp.Name, err)
			}
		}
		lines = append(lines, p)
	}

	buf, err := render.New(scene.Width, scene.Height,
		render.Axonometric(scene.AngleDeg*math.Pi/180))
	if err != nil {
		return err
	}

	// Spin around the world Z axis, which the projection maps to screen-up.
	axis, err := geometry.NewVector(0.0, 0.0, 1.0)
	if err != nil {
		return err
	}
	spinRad := d.Spin * math.Pi / 180

	var frame int
	for frame = 0; frame < d.Frames; frame++ {
		if frame > 0 {
			for _, p := range lines {
				if err = p.Rotate(axis, spinRad); err != nil {
					return err
				}
			}
			buf.Clear()
		}
		for _, p := range lines {
			if err = buf.AddPolyline(p); err != nil {
				return err
			}
		}
		if _, err = buf.WriteTo(os.Stdout); err != nil {
			return err
		}
		fmt.Println()
	}

	log.Info().Int("frames", d.Frames).Int("lines", len(lines)).Msg("demo finished")

	return nil
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	var c CLI
	ctx := kong.Parse(&c,
		kong.Name("wireframe"),
		kong.Description("Fixed-shape matrices, named-point 3D polylines and an ASCII renderer."),
		kong.UsageOnError(),
	)
	if c.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if err := ctx.Run(); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}
