package loaders

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/Eldriann/go-raytracer/pkg/core"
	"github.com/Eldriann/go-raytracer/pkg/geometry"
	"github.com/Eldriann/go-raytracer/pkg/lights"
	"github.com/Eldriann/go-raytracer/pkg/material"
	"github.com/Eldriann/go-raytracer/pkg/scene"
)

// Scene file schema. Colors are 8-bit RGB like the original scene files;
// they are converted to [0,1] floats on load.
type sceneFile struct {
	Camera   cameraFile    `json:"camera"`
	SkyColor colorFile     `json:"sky_color"`
	Elements []elementFile `json:"elements"`
	Lights   []lightFile   `json:"lights"`
}

type cameraFile struct {
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Fov    float64 `json:"fov"`
}

type colorFile struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

type vectorFile struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type elementFile struct {
	Shape    shapeFile    `json:"shape"`
	Material materialFile `json:"material"`
}

type shapeFile struct {
	Type   string     `json:"type"` // "sphere" or "plane"
	Origin vectorFile `json:"origin"`
	Radius float64    `json:"radius"`
	Point  vectorFile `json:"point"`
	Normal vectorFile `json:"normal"`
}

type materialFile struct {
	Color          colorFile `json:"color"`
	Albedo         *float64  `json:"albedo"` // Defaults to 1 when omitted
	Reflectiveness float64   `json:"reflectiveness"`
}

type lightFile struct {
	Type       string     `json:"type"` // "point" or "directional"
	Position   vectorFile `json:"position"`
	Direction  vectorFile `json:"direction"`
	Color      colorFile  `json:"color"`
	Brightness float64    `json:"brightness"`
}

func (c colorFile) toVec3() core.Vec3 {
	return core.NewVec3(float64(c.R)/255.0, float64(c.G)/255.0, float64(c.B)/255.0)
}

func (v vectorFile) toVec3() core.Vec3 {
	return core.NewVec3(v.X, v.Y, v.Z)
}

// LoadScene reads and parses a JSON scene file
func LoadScene(path string) (*scene.Scene, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	s, err := ParseScene(file)
	if err != nil {
		return nil, fmt.Errorf("failed to load scene %s: %w", path, err)
	}
	return s, nil
}

// ParseScene parses a JSON scene document into a validated scene
func ParseScene(r io.Reader) (*scene.Scene, error) {
	var sf sceneFile
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&sf); err != nil {
		return nil, fmt.Errorf("failed to decode scene JSON: %w", err)
	}

	s := &scene.Scene{
		Fov:        sf.Camera.Fov,
		Width:      sf.Camera.Width,
		Height:     sf.Camera.Height,
		Background: sf.SkyColor.toVec3(),
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	for i, element := range sf.Elements {
		shape, err := buildShape(element.Shape)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		s.Objects = append(s.Objects, scene.NewObject(shape, buildMaterial(element.Material)))
	}

	for i, light := range sf.Lights {
		built, err := buildLight(light)
		if err != nil {
			return nil, fmt.Errorf("light %d: %w", i, err)
		}
		s.Lights = append(s.Lights, built)
	}

	return s, nil
}

func buildShape(sf shapeFile) (geometry.Shape, error) {
	switch sf.Type {
	case "sphere":
		if sf.Radius <= 0 {
			return nil, fmt.Errorf("sphere radius must be positive, got %v", sf.Radius)
		}
		return geometry.NewSphere(sf.Origin.toVec3(), sf.Radius), nil
	case "plane":
		normal := sf.Normal.toVec3()
		if normal.LengthSquared() == 0 {
			return nil, fmt.Errorf("plane normal must be non-zero")
		}
		return geometry.NewPlane(sf.Point.toVec3(), normal), nil
	default:
		return nil, fmt.Errorf("unknown shape type %q", sf.Type)
	}
}

func buildMaterial(mf materialFile) material.Material {
	albedo := 1.0
	if mf.Albedo != nil {
		albedo = *mf.Albedo
	}
	return material.New(mf.Color.toVec3(), albedo, mf.Reflectiveness)
}

func buildLight(lf lightFile) (lights.Light, error) {
	switch lf.Type {
	case "point":
		return lights.NewPointLight(lf.Position.toVec3(), lf.Color.toVec3(), lf.Brightness), nil
	case "directional":
		direction := lf.Direction.toVec3()
		if direction.LengthSquared() == 0 {
			return nil, fmt.Errorf("directional light direction must be non-zero")
		}
		return lights.NewDirectionalLight(direction, lf.Color.toVec3(), lf.Brightness), nil
	default:
		return nil, fmt.Errorf("unknown light type %q", lf.Type)
	}
}
