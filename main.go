package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/Eldriann/go-raytracer/pkg/loaders"
	"github.com/Eldriann/go-raytracer/pkg/output"
	"github.com/Eldriann/go-raytracer/pkg/renderer"
	"github.com/Eldriann/go-raytracer/pkg/scene"
)

func main() {
	// Optional .env file supplies S3_* defaults
	_ = godotenv.Load()

	scenePath := flag.String("scene", "", "JSON scene file to render (empty = built-in demo scene)")
	outputPath := flag.String("output", "output.png", "Output image file; encoding picked from extension")
	pass := flag.Int("pass", 3, "Maximum reflection depth")
	workers := flag.Int("workers", 0, "Number of render workers (0 = CPU count)")
	previewPath := flag.String("preview", "", "Also write a downscaled preview to this path")
	previewWidth := flag.Int("preview-width", 256, "Preview width in pixels")
	bucket := flag.String("bucket", os.Getenv("S3_BUCKET"), "Upload the render to this S3 bucket after writing")
	key := flag.String("key", "", "S3 object key (default: output file name)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("go-raytracer")
		fmt.Println("Usage: go-raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	if *pass < 0 {
		fmt.Fprintln(os.Stderr, "pass must be a non-negative number")
		os.Exit(1)
	}

	selectedScene, err := createScene(*scenePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scene: %v\n", err)
		os.Exit(1)
	}

	config := renderer.DefaultConfig()
	config.MaxDepth = *pass
	config.NumWorkers = *workers

	raytracer, err := renderer.NewRaytracer(selectedScene, config, renderer.NewDefaultLogger())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fb, stats := raytracer.Render()
	fmt.Printf("Render completed in %v (%d pixels, %d tiles)\n",
		stats.Elapsed, stats.TotalPixels, stats.TileCount)

	img := fb.ToImage()
	if err := output.SaveImage(img, *outputPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Render saved as %s\n", *outputPath)

	if *previewPath != "" {
		if err := output.SavePreview(img, *previewPath, *previewWidth); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Preview saved as %s\n", *previewPath)
	}

	if *bucket != "" {
		objectKey := *key
		if objectKey == "" {
			objectKey = filepath.Base(*outputPath)
		}
		uploader, err := output.NewUploaderFromEnv(*bucket)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := uploader.UploadPNG(img, objectKey); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Uploaded to s3://%s/%s\n", *bucket, objectKey)
	}
}

// createScene loads a scene file, or the built-in demo scene when no path is
// given
func createScene(path string) (*scene.Scene, error) {
	if path == "" {
		fmt.Println("No scene file given, using built-in demo scene")
		return scene.NewDefaultScene(), nil
	}
	return loaders.LoadScene(path)
}
