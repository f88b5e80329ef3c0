package renderer

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-sdf-plotter/pkg/canvas"
	"github.com/df07/go-sdf-plotter/pkg/field"
	"github.com/df07/go-sdf-plotter/pkg/streamline"
	"github.com/df07/go-sdf-plotter/pkg/vec"
)

func uniformField(width, height int, p field.Properties) *field.Field {
	f := field.New(width, height)
	for iy := 0; iy < height; iy++ {
		for ix := 0; ix < width; ix++ {
			f.SetPixel(ix, iy, p)
		}
	}
	return f
}

func testConfig() streamline.Config {
	cfg := streamline.DefaultConfig()
	cfg.DSepMin = 3.0
	cfg.DSepMax = 8.0
	cfg.DStep = 1.0
	cfg.SeedBoxSize = 16
	return cfg
}

func TestOnJitteredGrid_SeedsStayInCells(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	const width, height = 120.0, 80.0
	const cellsX, cellsY = 6, 4
	cellWidth := width / cellsX
	cellHeight := height / cellsY

	count := 0
	cell := 0
	onJitteredGrid(width, height, cellsX, cellsY, rng, func(x, y float64) {
		ix := cell % cellsX
		iy := cell / cellsX
		if x < float64(ix)*cellWidth || x > float64(ix+1)*cellWidth {
			t.Errorf("Seed x=%v outside cell %d", x, cell)
		}
		if y < float64(iy)*cellHeight || y > float64(iy+1)*cellHeight {
			t.Errorf("Seed y=%v outside cell %d", y, cell)
		}
		cell++
		count++
	})
	if count != cellsX*cellsY {
		t.Errorf("Expected %d seeds, got %d", cellsX*cellsY, count)
	}
}

func TestPlaceStreamlines_Deterministic(t *testing.T) {
	f := uniformField(128, 64, field.Properties{Lightness: 0.3, Direction: 0, Depth: 5})
	cfg := testConfig()

	run := func() [][]vec.Vec2 {
		var lines [][]vec.Vec2
		PlaceStreamlines(f, cfg, rand.New(rand.NewSource(7)), func(points []vec.Vec2) {
			line := make([]vec.Vec2, len(points))
			copy(line, points)
			lines = append(lines, line)
		})
		return lines
	}

	first := run()
	second := run()

	if len(first) == 0 {
		t.Fatal("Expected at least one streamline on a uniform field")
	}
	if len(first) != len(second) {
		t.Fatalf("Run lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if len(first[i]) != len(second[i]) {
			t.Fatalf("Line %d lengths differ: %d vs %d", i, len(first[i]), len(second[i]))
		}
		for j := range first[i] {
			if first[i][j] != second[i][j] {
				t.Fatalf("Line %d point %d differs: %v vs %v", i, j, first[i][j], second[i][j])
			}
		}
	}
}

func TestPlaceStreamlines_CrossLineSeparation(t *testing.T) {
	f := uniformField(128, 64, field.Properties{Lightness: 0.3, Direction: 0, Depth: 5})
	cfg := testConfig()

	var lines [][]vec.Vec2
	PlaceStreamlines(f, cfg, rand.New(rand.NewSource(3)), func(points []vec.Vec2) {
		line := make([]vec.Vec2, len(points))
		copy(line, points)
		lines = append(lines, line)
	})
	if len(lines) < 2 {
		t.Fatalf("Expected multiple streamlines, got %d", len(lines))
	}

	// Every point is admitted at no less than the test distance from all
	// points of other streamlines
	dSep := streamline.SeparationFromLightness(cfg.DSepMin, cfg.DSepMax, 0.3)
	minAllowed := cfg.DTestFactor*dSep - 1e-9
	for a := 0; a < len(lines); a++ {
		for b := a + 1; b < len(lines); b++ {
			for _, pa := range lines[a] {
				for _, pb := range lines[b] {
					if d := pa.Distance(pb); d < minAllowed {
						t.Fatalf("Lines %d and %d come within %v (< %v)", a, b, d, minAllowed)
					}
				}
			}
		}
	}
}

func TestHatchLineEndpoints_AxisAligned(t *testing.T) {
	horizontal := hatchLineEndpoints(100, 50, 0, 10)
	if len(horizontal) != 5 {
		t.Errorf("Expected 5 horizontal lines, got %d", len(horizontal))
	}
	for _, e := range horizontal {
		if e[0].Y != e[1].Y || e[0].X != 0 || e[1].X != 100 {
			t.Errorf("Bad horizontal line %v", e)
		}
	}

	vertical := hatchLineEndpoints(100, 50, 0.5*math.Pi, 10)
	if len(vertical) != 10 {
		t.Errorf("Expected 10 vertical lines, got %d", len(vertical))
	}
	for _, e := range vertical {
		if e[0].X != e[1].X || e[0].Y != 0 || e[1].Y != 50 {
			t.Errorf("Bad vertical line %v", e)
		}
	}
}

func TestHatchLineEndpoints_DiagonalWithinCanvas(t *testing.T) {
	const width, height = 100.0, 60.0
	for _, angle := range []float64{0.25 * math.Pi, 0.75 * math.Pi, 0.4 * math.Pi} {
		for _, e := range hatchLineEndpoints(width, height, angle, 8) {
			for _, p := range e {
				if p.X < -1e-9 || p.X > width+1e-9 {
					t.Errorf("Angle %v: endpoint x out of canvas: %v", angle, p)
				}
			}
		}
	}
}

func TestRenderHatchLines_OnlyHatchedPixels(t *testing.T) {
	// Dark hatched band on the left half, dark unhatched on the right
	f := field.New(64, 64)
	for iy := 0; iy < 64; iy++ {
		for ix := 0; ix < 64; ix++ {
			f.SetPixel(ix, iy, field.Properties{
				Lightness: 0.1, Direction: 0, Depth: 1,
				IsHatched: ix < 32,
			})
		}
	}
	c := canvas.New(64, 64)
	c.Fill(canvas.RGB{255, 255, 255})
	RenderHatchLines(f, c, 0.5, 1.0, canvas.RGB{0, 0, 0}, 1.5, 0, 8)

	img := c.Image()
	darkLeft := 0
	darkRight := 0
	for iy := 0; iy < 64; iy++ {
		for ix := 0; ix < 64; ix++ {
			if r, _, _, _ := img.At(ix, iy).RGBA(); r>>8 < 128 {
				if ix < 30 {
					darkLeft++
				} else if ix > 34 {
					darkRight++
				}
			}
		}
	}
	if darkLeft == 0 {
		t.Error("Expected hatch strokes over the hatched region")
	}
	if darkRight > 0 {
		t.Errorf("Expected no strokes over the unhatched region, found %d dark pixels", darkRight)
	}
}

func TestRenderEdges_DepthCliff(t *testing.T) {
	// Depth doubles at x = 32: ln(depth) jumps by ln(2), far above threshold
	f := field.New(64, 64)
	for iy := 0; iy < 64; iy++ {
		for ix := 0; ix < 64; ix++ {
			depth := 10.0
			if ix >= 32 {
				depth = 20.0
			}
			f.SetPixel(ix, iy, field.Properties{Lightness: 0.5, Direction: 0, Depth: depth})
		}
	}
	c := canvas.New(64, 64)
	c.Fill(canvas.RGB{255, 255, 255})
	RenderEdges(f, c, canvas.RGB{0, 0, 0}, 2.0)

	img := c.Image()
	foundEdge := false
	for iy := 4; iy < 60; iy++ {
		for ix := 30; ix <= 33; ix++ {
			if r, _, _, _ := img.At(ix, iy).RGBA(); r>>8 < 128 {
				foundEdge = true
			}
		}
	}
	if !foundEdge {
		t.Error("Expected edge marks along the depth cliff")
	}

	// Uniform regions away from the cliff stay clean
	for iy := 8; iy < 56; iy++ {
		if r, _, _, _ := img.At(10, iy).RGBA(); r>>8 < 128 {
			t.Fatalf("Unexpected edge mark in a uniform region at (10,%d)", iy)
		}
	}
}

func TestDomainRegion_Lerp(t *testing.T) {
	region := NewDomainRegion(vec.NewVec2(0, 0), vec.NewVec2(0, 1), 90, 1, 3)

	const tolerance = 1e-9
	// Corners map to the trapezoid vertices
	if d := region.Lerp(0, 0).Distance(region.NearA); d > tolerance {
		t.Errorf("Lerp(0,0) is %v away from NearA", d)
	}
	if d := region.Lerp(1, 1).Distance(region.FarB); d > tolerance {
		t.Errorf("Lerp(1,1) is %v away from FarB", d)
	}
	// 90 degree FOV: the near segment spans 2*near*tan(45) = 2
	if w := region.NearA.Distance(region.NearB); math.Abs(w-2.0) > tolerance {
		t.Errorf("Expected near width 2, got %v", w)
	}
	if w := region.FarA.Distance(region.FarB); math.Abs(w-6.0) > tolerance {
		t.Errorf("Expected far width 6, got %v", w)
	}
}

func TestRenderHeightMapRidgelines_CoversCanvas(t *testing.T) {
	c := canvas.New(64, 48)
	c.Fill(canvas.RGB{255, 0, 0})
	region := NewDomainRegion(vec.NewVec2(0, -2), vec.NewVec2(0, 0), 60, 1, 10)
	gradient := canvas.NewLinearGradient(canvas.RGB{0, 0, 64}, canvas.RGB{0, 0, 192})

	RenderHeightMapRidgelines(c, region, 8, 2, 2, 16, 1.0, canvas.RGB{255, 255, 255}, gradient,
		func(uvDomain, tDomain, tScreen vec.Vec2) float64 { return 0.1 })

	// Every pixel below the topmost ridgeline must be covered by some fill
	img := c.Image()
	for _, y := range []int{24, 40, 47} {
		if r, _, _, _ := img.At(32, y).RGBA(); r>>8 == 255 {
			t.Errorf("Expected the background to be covered at y=%d", y)
		}
	}
}
