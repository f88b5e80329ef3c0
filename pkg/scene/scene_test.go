package scene

import (
	"math"
	"testing"

	"github.com/df07/go-sdf-plotter/pkg/vec"
)

func TestByName(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			s, err := ByName(name)
			if err != nil {
				t.Fatalf("ByName(%q) failed: %v", name, err)
			}
			if s.SDF == nil {
				t.Error("Scene has no SDF")
			}
			if s.FovYDegrees <= 0 {
				t.Errorf("Expected a positive field of view, got %v", s.FovYDegrees)
			}
			if s.StepSizeFactor <= 0 || s.StepSizeFactor > 1 {
				t.Errorf("Expected a step size factor in (0, 1], got %v", s.StepSizeFactor)
			}
			if s.Camera == s.LookAt {
				t.Error("Camera and look-at coincide")
			}
		})
	}

	if _, err := ByName("no-such-scene"); err == nil {
		t.Error("Expected an error for an unknown scene name")
	}
}

func TestCapsulesScene_GroundPlane(t *testing.T) {
	s := NewCapsulesScene()

	// Far from the capsules and the backdrop, the field is the plain ground
	// plane distance and carries the unblended ground material
	result := s.SDF.Evaluate(vec.NewVec3(8.0, 2.0, 2.0))
	if math.Abs(result.Distance-2.0) > 1e-12 {
		t.Errorf("Expected ground distance 2.0, got %v", result.Distance)
	}
	if !result.Material.IsShaded {
		t.Error("Expected the ground material to be shaded")
	}
	if result.Material.IsHatched {
		t.Error("Expected the ground material to be unhatched")
	}
}

func TestCapsulesScene_CapsuleInterior(t *testing.T) {
	s := NewCapsulesScene()

	// Inside the first capsule the distance is negative and the blend factor
	// has fully switched to the capsule material
	ground := s.SDF.Evaluate(vec.NewVec3(8.0, 2.0, 2.0)).Material
	inside := s.SDF.Evaluate(vec.NewVec3(1.0, 0.45, 0.25))
	if inside.Distance >= 0 {
		t.Errorf("Expected a negative distance inside a capsule, got %v", inside.Distance)
	}
	if inside.Material.Background == ground.Background {
		t.Error("Expected the capsule material to differ from the ground material")
	}
}

func TestPillarsScene_Signs(t *testing.T) {
	s := NewPillarsScene()

	tests := []struct {
		name     string
		p        vec.Vec3
		negative bool
	}{
		{"inside brick at origin", vec.NewVec3(0, 0, 0), true},
		{"in the air between bricks", vec.NewVec3(50.0, 0.325, 50.0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := s.SDF.Evaluate(tt.p)
			if tt.negative && result.Distance >= 0 {
				t.Errorf("Expected a negative distance, got %v", result.Distance)
			}
			if !tt.negative && result.Distance <= 0 {
				t.Errorf("Expected a positive distance, got %v", result.Distance)
			}
			if !result.Material.IsHatched || result.Material.IsShaded {
				t.Error("Expected an unshaded, hatched material")
			}
		})
	}
}

func TestPillarsScene_Deterministic(t *testing.T) {
	s := NewPillarsScene()
	p := vec.NewVec3(0.3, 4.1, -0.7)
	first := s.SDF.Evaluate(p)
	second := s.SDF.Evaluate(p)
	if first.Distance != second.Distance {
		t.Errorf("Evaluation is not deterministic: %v vs %v", first.Distance, second.Distance)
	}
}

func TestMeadowScene_AboveTheMeadow(t *testing.T) {
	s := NewMeadowScene()

	// Flowers top out around five units; high above everything the distance
	// stays comfortably positive
	result := s.SDF.Evaluate(vec.NewVec3(0.0, 10.0, 0.0))
	if result.Distance <= 1.0 {
		t.Errorf("Expected a distance above 1 high over the meadow, got %v", result.Distance)
	}
	if !result.Material.IsHatched {
		t.Error("Expected a hatched material")
	}
}

func TestHash2D(t *testing.T) {
	seen := make(map[float64]bool)
	for i := 0; i < 16; i++ {
		v := hash2D(vec.NewVec2(float64(i), float64(-i)), 0.3)
		if v < 0 || v >= 1 {
			t.Errorf("hash2D out of [0, 1): %v", v)
		}
		seen[v] = true
	}
	if len(seen) < 12 {
		t.Errorf("Expected mostly distinct hash values, got %d of 16", len(seen))
	}
}

func TestOceanScene_SurfaceDistance(t *testing.T) {
	s := NewOceanScene()

	const tolerance = 1e-12
	// All octaves vanish at the origin, so the surface sits at y = 0
	if d := s.SDF.Evaluate(vec.NewVec3(0.0, 0.5, 0.0)).Distance; math.Abs(d-0.5) > tolerance {
		t.Errorf("Expected distance 0.5 above a zero of the height field, got %v", d)
	}
	// At (pi/2, pi/2) only the first octave contributes, with value 1
	if d := s.SDF.Evaluate(vec.NewVec3(0.5*math.Pi, 1.0, 0.5*math.Pi)).Distance; math.Abs(d) > tolerance {
		t.Errorf("Expected distance 0 on the first swell crest, got %v", d)
	}
}

func TestWavesRidgelineArt(t *testing.T) {
	art := NewWavesRidgelineArt()

	if w := art.Region.NearA.Distance(art.Region.NearB); math.Abs(w-2.0) > 1e-12 {
		t.Errorf("Expected near segment width 2, got %v", w)
	}
	if art.Gradient == nil || art.Height == nil {
		t.Fatal("Expected a fill gradient and a height function")
	}

	uv := vec.NewVec2(0.4, 3.0)
	td := vec.NewVec2(0.4, 0.2)
	ts := vec.NewVec2(0.4, 0.87)
	first := art.Height(uv, td, ts)
	second := art.Height(uv, td, ts)
	if first != second {
		t.Errorf("Height function is not deterministic: %v vs %v", first, second)
	}
	if math.IsNaN(first) || math.IsInf(first, 0) {
		t.Errorf("Height function returned a non-finite value: %v", first)
	}
}
