package renderer

import (
	"fmt"
	"image"
	"time"

	"github.com/Eldriann/go-raytracer/pkg/core"
	"github.com/Eldriann/go-raytracer/pkg/integrator"
	"github.com/Eldriann/go-raytracer/pkg/scene"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Config contains rendering configuration
type Config struct {
	MaxDepth   int // Maximum reflection recursion depth
	TileSize   int // Size of each tile
	NumWorkers int // Number of parallel workers (0 = use CPU count)
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		MaxDepth:   3,
		TileSize:   64,
		NumWorkers: 0,
	}
}

// RenderStats tracks what a render pass did
type RenderStats struct {
	TotalPixels int
	TileCount   int
	Elapsed     time.Duration
}

// Raytracer renders a scene into a framebuffer
type Raytracer struct {
	scene      *scene.Scene
	camera     *Camera
	integrator *integrator.Whitted
	config     Config
	logger     core.Logger
}

// NewRaytracer creates a raytracer for the given scene. The scene is
// validated here so the render loop never sees degenerate camera parameters.
func NewRaytracer(s *scene.Scene, config Config, logger core.Logger) (*Raytracer, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene: %w", err)
	}

	camera, err := NewCamera(s.Fov, s.Width, s.Height)
	if err != nil {
		return nil, err
	}

	if config.TileSize <= 0 {
		config.TileSize = DefaultConfig().TileSize
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}

	return &Raytracer{
		scene:      s,
		camera:     camera,
		integrator: integrator.NewWhitted(config.MaxDepth),
		config:     config,
		logger:     logger,
	}, nil
}

// Render traces one ray per pixel across the worker pool and returns the
// completed framebuffer. Rendering is deterministic: the same scene always
// produces bit-identical buffers, whatever the worker count.
func (rt *Raytracer) Render() (*Framebuffer, RenderStats) {
	start := time.Now()

	fb := NewFramebuffer(rt.scene.Width, rt.scene.Height)
	tiles := NewTileGrid(rt.scene.Width, rt.scene.Height, rt.config.TileSize)

	pool := NewWorkerPool(rt, rt.config.NumWorkers, len(tiles))
	rt.logger.Printf("Rendering %dx%d, %d tiles on %d workers...\n",
		rt.scene.Width, rt.scene.Height, len(tiles), pool.NumWorkers())

	pool.Start()
	for i, bounds := range tiles {
		pool.SubmitTask(TileTask{Bounds: bounds, TaskID: i, Framebuffer: fb})
	}
	pool.Stop()

	stats := RenderStats{TileCount: len(tiles)}
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		stats.TotalPixels += result.Stats.TotalPixels
	}
	stats.Elapsed = time.Since(start)

	return fb, stats
}

// renderBounds traces every pixel within bounds into the framebuffer
func (rt *Raytracer) renderBounds(fb *Framebuffer, bounds image.Rectangle) RenderStats {
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			ray := rt.camera.GetRay(x, y)
			fb.SetPixel(x, y, rt.integrator.RayColor(ray, rt.scene, 0))
		}
	}
	return RenderStats{TotalPixels: bounds.Dx() * bounds.Dy()}
}
