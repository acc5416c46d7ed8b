// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Frame defaults applied when a scene file leaves them unset.
const (
	defaultSceneWidth    = 100
	defaultSceneHeight   = 50
	defaultSceneAngleDeg = 40.0
)

// scenePoint is one named 3D point of a scene polyline.
type scenePoint struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Z    float64 `yaml:"z"`
	Name string  `yaml:"name"`
}

// nameByte reduces the YAML name to the single byte the polyline stores;
// an empty name becomes '*' so the point still renders.
func (p scenePoint) nameByte() byte {
	if p.Name == "" {
		return '*'
	}

	return p.Name[0]
}

// sceneLine is an ordered list of points forming one polyline.
type sceneLine struct {
	Points []scenePoint `yaml:"points"`
}

// scene is the top-level YAML document of the demo command.
type scene struct {
	Width    int         `yaml:"width"`
	Height   int         `yaml:"height"`
	AngleDeg float64     `yaml:"angle_deg"`
	Lines    []sceneLine `yaml:"lines"`
}

// applyDefaults fills unset frame parameters.
func (s *scene) applyDefaults() {
	if s.Width == 0 {
		s.Width = defaultSceneWidth
	}
	if s.Height == 0 {
		s.Height = defaultSceneHeight
	}
	if s.AngleDeg == 0 {
		s.AngleDeg = defaultSceneAngleDeg
	}
}

// loadScene reads and parses a YAML scene file; an empty path yields the
// built-in cube scene.
func loadScene(path string) (*scene, error) {
	if path == "" {
		return defaultScene(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene: %w", err)
	}

	var s scene
	if err = yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("parsing scene: %w", err)
	}
	s.applyDefaults()

	return &s, nil
}

// defaultScene is a cube of side 40 traced as two squares plus connecting
// edges, centered on the origin.
func defaultScene() *scene {
	const h = 20.0
	bottom := []scenePoint{
		{-h, -h, -h, "A"}, {h, -h, -h, "B"}, {h, h, -h, "C"}, {-h, h, -h, "D"}, {-h, -h, -h, "A"},
	}
	top := []scenePoint{
		{-h, -h, h, "E"}, {h, -h, h, "F"}, {h, h, h, "G"}, {-h, h, h, "H"}, {-h, -h, h, "E"},
	}
	pillars := []sceneLine{
		{Points: []scenePoint{{-h, -h, -h, "A"}, {-h, -h, h, "E"}}},
		{Points: []scenePoint{{h, -h, -h, "B"}, {h, -h, h, "F"}}},
		{Points: []scenePoint{{h, h, -h, "C"}, {h, h, h, "G"}}},
		{Points: []scenePoint{{-h, h, -h, "D"}, {-h, h, h, "H"}}},
	}

	s := &scene{Lines: append([]sceneLine{{Points: bottom}, {Points: top}}, pillars...)}
	s.applyDefaults()

	return s
}
