package marcher

import (
	"math"
	"testing"

	"github.com/df07/go-sdf-plotter/pkg/sdf"
	"github.com/df07/go-sdf-plotter/pkg/vec"
)

func sphereScene(center vec.Vec3, radius float64) sdf.Scene {
	return sdf.SceneFunc(func(p vec.Vec3) sdf.Result {
		return sdf.NewResult(sdf.Sphere(sdf.Shift(p, center), radius), sdf.Material{})
	})
}

func planeScene() sdf.Scene {
	return sdf.SceneFunc(func(p vec.Vec3) sdf.Result {
		return sdf.NewResult(sdf.Plane(p, vec.NewVec3(0, 1, 0), 0), sdf.Material{})
	})
}

func testMarcher() *RayMarcher {
	return NewRayMarcher(1.0, vec.NewVec3(0, 0, -5), vec.NewVec3(0, 0, 0), vec.NewVec3(0, 1, 0), 60.0, 1.0)
}

func TestIntersectScene_SphereHit(t *testing.T) {
	rm := testMarcher()
	scene := sphereScene(vec.NewVec3(0, 0, 0), 1.0)

	hit, ok := rm.IntersectScene(scene, vec.NewVec2(0, 0))
	if !ok {
		t.Fatal("Expected the center ray to hit the sphere")
	}

	// The reported hit must lie within the hit threshold of the true surface
	if surfaceError := math.Abs(hit.Point.Length() - 1.0); surfaceError > 0.001 {
		t.Errorf("Hit point is %v from the surface, want < 0.001", surfaceError)
	}
	if math.Abs(hit.Distance-4.0) > 0.01 {
		t.Errorf("Expected marched length near 4, got %v", hit.Distance)
	}
}

func TestIntersectScene_Miss(t *testing.T) {
	rm := testMarcher()
	scene := sphereScene(vec.NewVec3(0, 0, 0), 1.0)

	// A ray aimed well above the sphere must terminate and report no hit
	if _, ok := rm.IntersectScene(scene, vec.NewVec2(0, 0.95)); ok {
		t.Error("Expected no intersection for a ray past the sphere")
	}
}

func TestSceneNormal_Plane(t *testing.T) {
	rm := NewRayMarcher(1.0, vec.NewVec3(0, 5, -5), vec.NewVec3(0, 0, 0), vec.NewVec3(0, 1, 0), 60.0, 1.0)
	scene := planeScene()

	for _, screen := range []vec.Vec2{vec.NewVec2(0, 0), vec.NewVec2(0.5, -0.3), vec.NewVec2(-0.7, -0.6)} {
		hit, ok := rm.IntersectScene(scene, screen)
		if !ok {
			t.Fatalf("Expected a plane hit at screen %v", screen)
		}
		normal := rm.SceneNormal(scene, hit.Point)
		if math.Abs(normal.X) > 1e-6 || math.Abs(normal.Y-1.0) > 1e-6 || math.Abs(normal.Z) > 1e-6 {
			t.Errorf("Expected plane normal (0,1,0) at %v, got %v", screen, normal)
		}
	}
}

func TestSceneNormalTetrahedron_MatchesCentralDiff(t *testing.T) {
	rm := testMarcher()
	scene := sphereScene(vec.NewVec3(0, 0, 0), 1.0)
	p := vec.NewVec3(0.6, 0.0, -0.8)

	central := rm.SceneNormal(scene, p)
	tetra := rm.SceneNormalTetrahedron(scene, p)

	const tolerance = 1e-3
	if central.Subtract(tetra).Length() > tolerance {
		t.Errorf("Normal estimates disagree: %v vs %v", central, tetra)
	}
}

func TestHeightMapNormal_Slope(t *testing.T) {
	rm := testMarcher()
	// height(x, z) = x gives a surface with normal (-1, 1, 0)/sqrt(2)
	scene := sdf.NewHeightMapScene(func(x, z float64) float64 { return x }, sdf.Material{})

	normal := rm.HeightMapNormal(scene, vec.NewVec3(2, 2, 0))
	expected := vec.NewVec3(-1, 1, 0).Normalize()

	const tolerance = 1e-6
	if normal.Subtract(expected).Length() > tolerance {
		t.Errorf("Expected %v, got %v", expected, normal)
	}
}

func TestVisibilityFactor_NormalFacingAway(t *testing.T) {
	rm := testMarcher()
	scene := planeScene()

	eye := vec.NewVec3(0, 10, 0)
	p := vec.NewVec3(0, 0, 0)
	normal := vec.NewVec3(0, -1, 0)

	if v := rm.VisibilityFactor(scene, eye, p, &normal, 48.0); v != 0.0 {
		t.Errorf("Expected 0 for a normal facing away from the eye, got %v", v)
	}
}

func TestVisibilityFactor_Occluded(t *testing.T) {
	rm := testMarcher()
	// Sphere between the surface point and the light blocks it completely
	scene := sphereScene(vec.NewVec3(0, 5, 0), 1.0)

	eye := vec.NewVec3(0, 10, 0)
	p := vec.NewVec3(0, 0, 0)
	normal := vec.NewVec3(0, 1, 0)

	if v := rm.VisibilityFactor(scene, eye, p, &normal, 48.0); v != 0.0 {
		t.Errorf("Expected 0 for an occluded light, got %v", v)
	}
}

func TestVisibilityFactor_Unobstructed(t *testing.T) {
	rm := testMarcher()
	// Sphere far off to the side never blocks the vertical shadow ray
	scene := sphereScene(vec.NewVec3(100, 5, 0), 1.0)

	eye := vec.NewVec3(0, 10, 0)
	p := vec.NewVec3(0, 0, 0)
	normal := vec.NewVec3(0, 1, 0)

	v := rm.VisibilityFactor(scene, eye, p, &normal, 48.0)
	if v <= 0.0 || v > 1.0 {
		t.Errorf("Expected visibility in (0, 1], got %v", v)
	}
}

func TestLightIntensity_AmbientOnlyInShadow(t *testing.T) {
	rm := testMarcher()
	// Occluder directly between p and the light forces full shadow
	scene := sphereScene(vec.NewVec3(0, 5, 0), 1.0)

	properties := sdf.NewReflectiveProperties(0.25, 0.0, 0.0, 0.8, 1.0)
	p := vec.NewVec3(0, 0, 0)
	normal := vec.NewVec3(0, 1, 0)
	light := vec.NewVec3(0, 10, 0)

	intensity := rm.LightIntensity(scene, properties, p, normal, light)
	if intensity != 0.25 {
		t.Errorf("Expected the bare ambient weight 0.25, got %v", intensity)
	}
}

func TestToScreenCoordinates_RoundTrip(t *testing.T) {
	rm := testMarcher()
	scene := sphereScene(vec.NewVec3(0, 0, 0), 1.0)

	// Projecting a hit point must recover the screen coordinate of its ray
	for _, screen := range []vec.Vec2{vec.NewVec2(0, 0), vec.NewVec2(0.2, -0.1), vec.NewVec2(-0.15, 0.25)} {
		hit, ok := rm.IntersectScene(scene, screen)
		if !ok {
			t.Fatalf("Expected a hit at screen %v", screen)
		}
		projected := rm.ToScreenCoordinates(hit.Point)
		if projected.Distance(screen) > 1e-6 {
			t.Errorf("Round trip failed for %v: got %v", screen, projected)
		}
	}
}
