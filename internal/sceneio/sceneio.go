// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sceneio reads point cloud scene descriptions from YAML files
// and builds them into an [xyz.Scene].
package sceneio

import (
	"fmt"
	"image/color"
	"io"
	"math/rand/v2"
	"os"

	"cogentcore.org/pointgizmo/base/errors"
	"cogentcore.org/pointgizmo/math32"
	"cogentcore.org/pointgizmo/xyz"
	"github.com/mazznoer/csscolorparser"
	"gopkg.in/yaml.v3"
)

// Vec3 is a 3D vector written as a YAML sequence [x, y, z].
type Vec3 [3]float32

// V returns the vector as a [math32.Vector3].
func (v Vec3) V() math32.Vector3 {
	return math32.Vec3(v[0], v[1], v[2])
}

// Box is an axis aligned box in the local coordinates of a cloud.
type Box struct {
	Min Vec3 `yaml:"min"`
	Max Vec3 `yaml:"max"`
}

// Generate describes a random point cloud, uniform within a box of the
// given size centered on the origin.
type Generate struct {
	Count int   `yaml:"count"`
	Size  Vec3  `yaml:"size"`
	Seed  int64 `yaml:"seed"`
}

// Cloud is one point cloud of a scene.
type Cloud struct {
	Name      string    `yaml:"name"`
	Position  Vec3      `yaml:"position"`
	Color     string    `yaml:"color"`
	PointSize float32   `yaml:"point_size"`
	BBox      *Box      `yaml:"bbox"`
	Points    []Vec3    `yaml:"points"`
	Generate  *Generate `yaml:"generate"`
}

// Camera is the initial camera of a scene.
type Camera struct {
	Position Vec3    `yaml:"position"`
	Target   Vec3    `yaml:"target"`
	FOV      float32 `yaml:"fov"`
	Ortho    bool    `yaml:"ortho"`
}

// Scene is a scene description.
type Scene struct {
	Camera *Camera `yaml:"camera"`
	Clouds []Cloud `yaml:"clouds"`
}

// Read reads a scene description from YAML.
func Read(r io.Reader) (*Scene, error) {
	sd := &Scene{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(sd); err != nil {
		return nil, fmt.Errorf("sceneio: %w", err)
	}
	if err := sd.Validate(); err != nil {
		return nil, err
	}
	return sd, nil
}

// Open reads a scene description from the given YAML file.
func Open(filename string) (*Scene, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	sd, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return sd, nil
}

// Validate returns an error listing every inconsistency in the description.
func (sd *Scene) Validate() error {
	var errs []error
	if cm := sd.Camera; cm != nil && (cm.FOV < 0 || cm.FOV >= 180) {
		errs = append(errs, errors.New("sceneio: camera fov must be in [0, 180)"))
	}
	names := map[string]bool{}
	for i, cl := range sd.Clouds {
		if cl.Name == "" {
			errs = append(errs, fmt.Errorf("sceneio: cloud %d has no name", i))
		} else if names[cl.Name] {
			errs = append(errs, fmt.Errorf("sceneio: duplicate cloud name %q", cl.Name))
		}
		names[cl.Name] = true
		if len(cl.Points) == 0 && (cl.Generate == nil || cl.Generate.Count <= 0) {
			errs = append(errs, fmt.Errorf("sceneio: cloud %q has no points", cl.Name))
		}
	}
	return errors.Join(errs...)
}

// Default returns a demo scene of three random clouds.
func Default() *Scene {
	return &Scene{
		Camera: &Camera{Position: Vec3{4, 3, 10}, FOV: 45},
		Clouds: []Cloud{
			{Name: "red", Position: Vec3{-3, 0, 0}, Color: "tomato", Generate: &Generate{Count: 600, Size: Vec3{2, 2, 2}, Seed: 1}},
			{Name: "green", Position: Vec3{0, 0, 0}, Color: "mediumseagreen", Generate: &Generate{Count: 900, Size: Vec3{1.5, 3, 1.5}, Seed: 2}},
			{Name: "blue", Position: Vec3{3, 0, 0}, Color: "cornflowerblue", Generate: &Generate{Count: 400, Size: Vec3{2, 1, 3}, Seed: 3}},
		},
	}
}

// CloudPoints returns the points of the cloud, generating them if needed.
func (cl *Cloud) CloudPoints() []math32.Vector3 {
	if len(cl.Points) > 0 {
		pts := make([]math32.Vector3, len(cl.Points))
		for i, p := range cl.Points {
			pts[i] = p.V()
		}
		return pts
	}
	gen := cl.Generate
	if gen == nil {
		return nil
	}
	rnd := rand.New(rand.NewPCG(uint64(gen.Seed), uint64(gen.Seed)))
	half := gen.Size.V().MulScalar(0.5)
	pts := make([]math32.Vector3, gen.Count)
	for i := range pts {
		pts[i] = math32.Vec3(rnd.Float32()*2-1, rnd.Float32()*2-1, rnd.Float32()*2-1).Mul(half)
	}
	return pts
}

// Build adds the clouds to the given scene as solids with [xyz.Points]
// meshes, and sets up the camera. It returns the new solids in order.
func (sd *Scene) Build(sc *xyz.Scene) ([]*xyz.Solid, error) {
	if cm := sd.Camera; cm != nil {
		if cm.FOV > 0 {
			sc.Camera.FOV = cm.FOV
		}
		sc.Camera.Ortho = cm.Ortho
		sc.Camera.Pose.Pos = cm.Position.V()
		sc.Camera.LookAt(cm.Target.V(), math32.Vec3(0, 1, 0))
	}
	solids := make([]*xyz.Solid, 0, len(sd.Clouds))
	for _, cl := range sd.Clouds {
		clr := color.RGBA{255, 255, 255, 255}
		if cl.Color != "" {
			cc, err := csscolorparser.Parse(cl.Color)
			if err != nil {
				return solids, fmt.Errorf("sceneio: cloud %q: %w", cl.Name, err)
			}
			clr.R, clr.G, clr.B, clr.A = cc.RGBA255()
		}
		ms := xyz.NewPoints(cl.Name, cl.CloudPoints())
		sc.AddMesh(ms)
		sld := xyz.NewSolid(sc, cl.Name, ms).SetColor(clr)
		sld.Pose.Pos = cl.Position.V()
		if cl.PointSize > 0 {
			sld.Material.PointSize = cl.PointSize
		}
		if cl.BBox != nil {
			bb := math32.Box3{Min: cl.BBox.Min.V(), Max: cl.BBox.Max.V()}
			sld.BBox = &bb
		}
		solids = append(solids, sld)
	}
	return solids, nil
}
