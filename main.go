package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-sdf-plotter/pkg/canvas"
	"github.com/df07/go-sdf-plotter/pkg/field"
	"github.com/df07/go-sdf-plotter/pkg/marcher"
	"github.com/df07/go-sdf-plotter/pkg/renderer"
	"github.com/df07/go-sdf-plotter/pkg/scene"
	"github.com/df07/go-sdf-plotter/pkg/streamline"
	"github.com/df07/go-sdf-plotter/pkg/vec"
)

// Page units are physical: scenes are plotted at a page size in centimeters
// and a pen width in millimeters, converted to pixels by the DPI flag
const (
	inchPerCM = 1.0 / 2.54
	inchPerMM = 0.1 / 2.54
)

// Plotting parameters in page units
const (
	strokeWidthInMM = 0.15
	dSepMinInMM     = 0.27
	dSepMaxInMM     = 1.5
	dStepInMM       = 0.1
	seedBoxInMM     = 2.0
	hatchStepInMM   = 0.1
)

func main() {
	sceneName := flag.String("scene", "capsules", "Scene to render: one of "+fmt.Sprint(scene.Names())+" or 'waves'")
	widthCM := flag.Float64("width", 15.0, "Page width in centimeters")
	heightCM := flag.Float64("height", 15.0, "Page height in centimeters")
	dpi := flag.Float64("dpi", 150.0, "Output resolution in dots per inch")
	seed := flag.Int64("seed", 62809543637, "Random seed for streamline placement")
	saveField := flag.String("save-field", "", "Write the marched pixel properties to this file")
	loadField := flag.String("load-field", "", "Skip marching and read pixel properties from this file")
	debugImages := flag.Bool("debug", false, "Also write lightness, direction, and depth debug images")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("SDF Plotter")
		fmt.Println("Usage: sdf-plotter [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.png")
		return
	}

	width, height := plotSize(*widthCM, *heightCM, *dpi)

	outputDir := filepath.Join("output", *sceneName)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		return
	}
	timestamp := time.Now().Format("20060102_150405")
	outputPath := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))

	if *sceneName == "waves" {
		if err := renderWaves(*heightCM, *dpi, width, height, outputPath); err != nil {
			fmt.Printf("Error rendering waves: %v\n", err)
			return
		}
		fmt.Printf("Render saved as %s\n", outputPath)
		return
	}

	s, err := scene.ByName(*sceneName)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	strokeWidth := mmToPixels(strokeWidthInMM, *dpi)
	cfg := streamline.DefaultConfig()
	cfg.DSepMin = mmToPixels(dSepMinInMM, *dpi)
	cfg.DSepMax = mmToPixels(dSepMaxInMM, *dpi)
	cfg.DStep = mmToPixels(dStepInMM, *dpi)
	cfg.SeedBoxSize = int(mmToPixels(seedBoxInMM, *dpi))

	fmt.Printf("Rendering %q on a %d px x %d px canvas with a stroke width of %.2f px\n",
		*sceneName, width, height, strokeWidth)
	fmt.Printf("Streamline separation %.2f px to %.2f px, test factor %.2f, step %.2f px, seed box %d px\n",
		cfg.DSepMin, cfg.DSepMax, cfg.DTestFactor, cfg.DStep, cfg.SeedBoxSize)

	var f *field.Field
	if *loadField != "" {
		f, err = field.Load(*loadField)
		if err != nil {
			fmt.Printf("Error loading field: %v\n", err)
			return
		}
		if f.Width() != width || f.Height() != height {
			fmt.Printf("Loaded field is %d px x %d px, drawing at that size\n", f.Width(), f.Height())
			width, height = f.Width(), f.Height()
		}
	} else {
		start := time.Now()
		rm := marcher.NewRayMarcher(s.StepSizeFactor, s.Camera, s.LookAt, s.Up,
			s.FovYDegrees, float64(width)/float64(height))
		f = field.FromScene(rm, s.SDF, width, height, 0.0)
		fmt.Printf("Finished marching the scene in %v\n", time.Since(start))
	}

	if *saveField != "" {
		if err := f.Save(*saveField); err != nil {
			fmt.Printf("Error saving field: %v\n", err)
			return
		}
		fmt.Printf("Field saved as %s\n", *saveField)
	}
	if *debugImages {
		for name, img := range map[string]image.Image{
			"lightness": f.LightnessImage(),
			"direction": f.DirectionImage(),
			"depth":     f.DepthImage(),
		} {
			path := filepath.Join(outputDir, fmt.Sprintf("%s_%s.png", name, timestamp))
			if err := writePNG(path, img); err != nil {
				fmt.Printf("Error saving debug image: %v\n", err)
				return
			}
		}
	}

	start := time.Now()
	c := canvas.NewFromImage(f.BackgroundImage())
	rng := rand.New(rand.NewSource(*seed))
	renderer.RenderFlowFieldStreamlines(f, c, cfg, rng, strokeWidth, hslToRGB255(s.StreamlineHSL))

	hatchRGB := hslToRGB255(s.StreamlineHSL)
	for _, pass := range s.HatchPasses {
		renderer.RenderHatchLines(f, c, pass.LightnessThreshold, mmToPixels(hatchStepInMM, *dpi),
			hatchRGB, strokeWidth, pass.LineAngle, mmToPixels(pass.LineSepInMM, *dpi))
	}
	if s.DrawEdges {
		renderer.RenderEdges(f, c, hatchRGB, strokeWidth)
	}
	fmt.Printf("Finished drawing in %v\n", time.Since(start))

	if err := c.SavePNG(outputPath); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		return
	}
	fmt.Printf("Render saved as %s\n", outputPath)
}

// renderWaves draws the ridgeline waves artwork, which samples a heightmap
// directly instead of marching rays
func renderWaves(heightCM, dpi float64, width, height int, outputPath string) error {
	art := scene.NewWavesRidgelineArt()

	lineCount := int(math.Round(10.0 * heightCM / art.LineSepInMM))
	bufferCountNear := lineCount / 2
	bufferCountFar := 5 * lineCount
	segmentCount := int(math.Round(float64(width) / art.SegmentLengthInDots))
	lineWidth := mmToPixels(strokeWidthInMM, dpi)

	fmt.Printf("Drawing %d ridgelines with %d segments each on a %d px x %d px canvas\n",
		lineCount, segmentCount, width, height)

	start := time.Now()
	c := canvas.New(width, height)
	renderer.RenderHeightMapRidgelines(c, art.Region, lineCount, bufferCountNear, bufferCountFar,
		segmentCount, lineWidth, art.LineRGB, art.Gradient, art.Height)
	fmt.Printf("Finished drawing in %v\n", time.Since(start))

	return c.SavePNG(outputPath)
}

// plotSize converts a page size in centimeters to whole pixels
func plotSize(widthCM, heightCM, dpi float64) (int, int) {
	return int(math.Round(widthCM * inchPerCM * dpi)),
		int(math.Round(heightCM * inchPerCM * dpi))
}

// mmToPixels converts a length in millimeters to pixels
func mmToPixels(mm, dpi float64) float64 {
	return mm * inchPerMM * dpi
}

// hslToRGB255 converts an HSL color to an 8-bit RGB triple
func hslToRGB255(hsl vec.Vec3) canvas.RGB {
	rgb := vec.HSLToRGB(hsl)
	return canvas.RGB{
		uint8(math.Round(255.0 * vec.Clamp(rgb.X, 0, 1))),
		uint8(math.Round(255.0 * vec.Clamp(rgb.Y, 0, 1))),
		uint8(math.Round(255.0 * vec.Clamp(rgb.Z, 0, 1))),
	}
}

func writePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return png.Encode(file, img)
}
