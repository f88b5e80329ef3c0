package streamline

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-sdf-plotter/pkg/field"
	"github.com/df07/go-sdf-plotter/pkg/vec"
)

// uniformField fills every pixel with the same properties
func uniformField(width, height int, p field.Properties) *field.Field {
	f := field.New(width, height)
	for iy := 0; iy < height; iy++ {
		for ix := 0; ix < width; ix++ {
			f.SetPixel(ix, iy, p)
		}
	}
	return f
}

func TestRegistry_IncreasingIDs(t *testing.T) {
	reg := NewRegistry(100, 100, 5)
	points := []vec.Vec2{vec.NewVec2(10, 10), vec.NewVec2(20, 20)}

	var lastID uint32
	for i := 0; i < 5; i++ {
		id := reg.AddStreamline(points)
		if id <= lastID {
			t.Fatalf("Expected strictly increasing ids, got %d after %d", id, lastID)
		}
		lastID = id
	}
	if lastID != 5 {
		t.Errorf("Expected ids to start at 1 and count up, last was %d", lastID)
	}
}

func TestRegistry_MatchesBruteForce(t *testing.T) {
	const width, height = 200.0, 150.0
	rng := rand.New(rand.NewSource(42))
	reg := NewRegistry(width, height, 7.5)

	// Register a handful of streamlines with random points
	type storedPoint struct {
		id    uint32
		point vec.Vec2
	}
	var stored []storedPoint
	for line := 0; line < 8; line++ {
		points := make([]vec.Vec2, 20)
		for i := range points {
			points[i] = vec.NewVec2(rng.Float64()*width, rng.Float64()*height)
		}
		id := reg.AddStreamline(points)
		for _, p := range points {
			stored = append(stored, storedPoint{id: id, point: p})
		}
	}

	bruteForce := func(q vec.Vec2, dSep, dSepRelaxed float64, exemptID uint32) bool {
		for _, s := range stored {
			threshold := dSep
			if s.id == exemptID {
				threshold = dSepRelaxed
			}
			if s.point.Distance(q) < threshold {
				return false
			}
		}
		return true
	}

	for trial := 0; trial < 500; trial++ {
		q := vec.NewVec2(rng.Float64()*width, rng.Float64()*height)
		dSep := 1.0 + rng.Float64()*14.0
		dSepRelaxed := 0.8 * dSep
		exemptID := uint32(rng.Intn(10))

		expected := bruteForce(q, dSep, dSepRelaxed, exemptID)
		if got := reg.IsPointAllowed(q, dSep, dSepRelaxed, exemptID); got != expected {
			t.Fatalf("Trial %d: grid says %v, brute force says %v (q=%v dSep=%v exempt=%d)",
				trial, got, expected, q, dSep, exemptID)
		}
	}
}

func TestSeparationFromLightness(t *testing.T) {
	tests := []struct {
		lightness float64
		expected  float64
	}{
		{lightness: 0.0, expected: 2.0},
		{lightness: 0.5, expected: 2.0 + 8.0*0.125},
		{lightness: 1.0, expected: 10.0},
	}
	for _, tt := range tests {
		const tolerance = 1e-12
		if result := SeparationFromLightness(2.0, 10.0, tt.lightness); math.Abs(result-tt.expected) > tolerance {
			t.Errorf("Lightness %v: expected %v, got %v", tt.lightness, tt.expected, result)
		}
	}
}

func TestTrace_StraightLine(t *testing.T) {
	// A uniform rightward direction field must yield a straight horizontal line
	cfg := DefaultConfig()
	cfg.DStep = 1.0
	f := uniformField(200, 50, field.Properties{Lightness: 0.5, Direction: 0, Depth: 10})
	reg := NewRegistry(200, 50, 0.5*cfg.DSepMax)

	line, ok := Trace(f, reg, 0, vec.NewVec2(100, 25), cfg)
	if !ok {
		t.Fatal("Expected a streamline on an unobstructed uniform field")
	}
	if len(line) <= cfg.MinSteps+1 {
		t.Fatalf("Accepted line too short: %d points", len(line))
	}

	const tolerance = 1e-9
	for i, p := range line {
		if math.Abs(p.Y-25.0) > tolerance {
			t.Fatalf("Point %d strayed off the horizontal: %v", i, p)
		}
		if i > 0 {
			if step := math.Abs(p.X - line[i-1].X); math.Abs(step-cfg.DStep) > tolerance {
				t.Fatalf("Uneven step between points %d and %d: %v", i-1, i, step)
			}
		}
	}
}

func TestTrace_RejectsMissingData(t *testing.T) {
	cfg := DefaultConfig()
	f := field.New(50, 50) // all pixels carry the sentinel
	reg := NewRegistry(50, 50, 0.5*cfg.DSepMax)

	if _, ok := Trace(f, reg, 0, vec.NewVec2(25, 25), cfg); ok {
		t.Error("Expected rejection on a field with no data")
	}
}

func TestTrace_RejectionLeavesRegistryUntouched(t *testing.T) {
	cfg := DefaultConfig()
	f := uniformField(200, 50, field.Properties{Lightness: 0.5, Direction: 0, Depth: 10})
	reg := NewRegistry(200, 50, 0.5*cfg.DSepMax)

	line, ok := Trace(f, reg, 0, vec.NewVec2(100, 25), cfg)
	if !ok {
		t.Fatal("Expected the first streamline to be accepted")
	}
	reg.AddStreamline(line)
	countAfterFirst := reg.PointCount()

	// A seed right on the existing line must be rejected by the separation
	// check, and a failed growth never registers anything
	if _, ok := Trace(f, reg, 0, vec.NewVec2(100, 25.5), cfg); ok {
		t.Error("Expected rejection of a seed on top of an existing streamline")
	}
	if reg.PointCount() != countAfterFirst {
		t.Errorf("Rejected growth changed the registry: %d -> %d", countAfterFirst, reg.PointCount())
	}
}

func TestTrace_StopsAtDepthDiscontinuity(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DStep = 1.0

	// Rightward flow with a depth cliff at x = 120
	f := field.New(200, 50)
	for iy := 0; iy < 50; iy++ {
		for ix := 0; ix < 200; ix++ {
			depth := 10.0
			if ix >= 120 {
				depth = 20.0
			}
			f.SetPixel(ix, iy, field.Properties{Lightness: 0.5, Direction: 0, Depth: depth})
		}
	}
	reg := NewRegistry(200, 50, 0.5*cfg.DSepMax)

	line, ok := Trace(f, reg, 0, vec.NewVec2(100, 25), cfg)
	if !ok {
		t.Fatal("Expected a streamline up to the depth cliff")
	}
	for _, p := range line {
		if p.X >= 120 {
			t.Fatalf("Streamline crossed the depth discontinuity at %v", p)
		}
	}
}

func TestTrace_TooShortRejected(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DStep = 1.0

	// Valid data only in a narrow 5-pixel band: both branches die immediately
	// at the sentinel border and the line cannot exceed MinSteps+1 points
	f := field.New(200, 50)
	for iy := 0; iy < 50; iy++ {
		for ix := 98; ix < 103; ix++ {
			f.SetPixel(ix, iy, field.Properties{Lightness: 0.5, Direction: 0, Depth: 10})
		}
	}
	reg := NewRegistry(200, 50, 0.5*cfg.DSepMax)

	if _, ok := Trace(f, reg, 0, vec.NewVec2(100, 25), cfg); ok {
		t.Error("Expected rejection of a streamline shorter than the minimum")
	}
	if reg.PointCount() != 0 {
		t.Errorf("Rejected streamline left %d points in the registry", reg.PointCount())
	}
}
