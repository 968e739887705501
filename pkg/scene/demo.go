package scene

import (
	"math"

	"github.com/ruuda/luculentus/pkg/core"
	"github.com/ruuda/luculentus/pkg/geometry"
	"github.com/ruuda/luculentus/pkg/material"
)

// goldenRatio is used to lay the sunflower-seed spiral out with minimal
// clustering, grounded on original_source/Constants.h.
const goldenRatio = 1.618033988749895

// NewSunflowerScene rebuilds the demo scene from
// original_source/Raytracer.cpp's BuildScene: a black-body "sun" sphere
// ringed by paraboloid floor and walls, a spiral of coloured diffuse and
// glossy seeds, and a slowly orbiting, slightly motion-blurred camera.
// Two primitives used by the original (Circle sky disks and hexagonal
// glass prisms) have no equivalent in this package; sky light and the
// ring of prisms are reproduced with spheres instead, see DESIGN.md.
func NewSunflowerScene() *Scene {
	const sunRadius = 5.0

	sunPosition := core.NewVec3(0, 0, 0)
	sunSphere := geometry.NewSphere(sunPosition, sunRadius)
	sunEmissive := material.NewEmissive(6504.0, 1.0)
	s := &Scene{}
	s.Add(NewEmissiveObject(sunSphere, sunEmissive))

	floorNormal := core.NewVec3(0, 0, -1)
	floorPosition := core.NewVec3(0, 0, -sunRadius)
	floorParaboloid := geometry.NewParaboloid(floorPosition, floorNormal, sunRadius*sunRadius)
	grey := material.NewDiffuse(0.8)
	s.Add(NewObject(floorParaboloid, grey))

	wallLeftNormal := core.NewVec3(0, 0, 1)
	wallLeftPosition := core.NewVec3(1, 0, -sunRadius*sunRadius)
	wallLeftParaboloid := geometry.NewParaboloid(wallLeftPosition, wallLeftNormal, sunRadius*sunRadius)
	green := material.NewColouredDiffuse(0.9, 550.0, 40.0)
	s.Add(NewObject(wallLeftParaboloid, green))

	wallRightNormal := core.NewVec3(0, 0, 1)
	wallRightPosition := core.NewVec3(-1, 0, -sunRadius*sunRadius)
	wallRightParaboloid := geometry.NewParaboloid(wallRightPosition, wallRightNormal, sunRadius*sunRadius)
	red := material.NewColouredDiffuse(0.9, 660.0, 60.0)
	s.Add(NewObject(wallRightParaboloid, red))

	// Sky lights: the original uses flat Circle emitters; small emissive
	// spheres stand in here.
	const skyHeight = 30.0
	sky1Position := core.NewVec3(-sunRadius, 0, skyHeight)
	sky1Sphere := geometry.NewSphere(sky1Position, 5.0)
	sky1Emissive := material.NewEmissive(7600.0, 0.6)
	s.Add(NewEmissiveObject(sky1Sphere, sky1Emissive))

	sky2Position := core.NewVec3(-sunRadius*0.5, sunRadius*2.0+15.0, skyHeight)
	sky2Sphere := geometry.NewSphere(sky2Position, 15.0)
	sky2Emissive := material.NewEmissive(5000.0, 0.6)
	s.Add(NewEmissiveObject(sky2Sphere, sky2Emissive))

	ceilingPosition := core.NewVec3(0, 0, skyHeight*2.0)
	ceilingPlane := geometry.NewPlane(ceilingPosition, floorNormal)
	blue := material.NewColouredDiffuse(0.5, 470.0, 25.0)
	s.Add(NewObject(ceilingPlane, blue))

	gamma := math.Pi * 2.0 * (1.0 - 1.0/goldenRatio)
	const seedSize = 0.8
	const seedScale = 1.5
	firstSeed := int((sunRadius/seedScale+1)*(sunRadius/seedScale+1) + 0.5)
	const seeds = 100

	for i := firstSeed; i < firstSeed+seeds; i++ {
		phi := float64(i) * gamma
		r := math.Sqrt(float64(i)) * seedScale
		position := core.NewVec3(
			math.Cos(phi)*r,
			math.Sin(phi)*r,
			(r-sunRadius)*-0.5,
		).Add(sunPosition)

		sphere := geometry.NewSphere(position, seedSize)
		mat := material.NewColouredDiffuse(0.9, float64(i-firstSeed)/seeds*130.0+600.0, 60.0)
		s.Add(NewObject(sphere, mat))
	}

	glossLow := material.NewGlossyMirror(0.1)
	for i := firstSeed; i < firstSeed+seeds; i++ {
		phi := (float64(i) + 0.5) * gamma
		r := math.Sqrt(float64(i)+0.5) * seedScale
		position := core.NewVec3(
			math.Cos(phi)*r,
			math.Sin(phi)*r,
			(r-sunRadius)*-0.25,
		).Add(sunPosition)

		sphere := geometry.NewSphere(position, seedSize*0.5)
		s.Add(NewObject(sphere, glossLow))
	}

	// Ring of glass accents, standing in for the original's hexagonal
	// prisms (no such primitive exists here).
	const prisms = 11
	prismAngle := math.Pi * 2.0 / prisms
	const prismRadius = 17.0
	glass := material.NewSf10Glass()
	for i := 0; i < prisms; i++ {
		phi := float64(i) * prismAngle
		position := core.NewVec3(math.Cos(phi)*prismRadius, math.Sin(phi)*prismRadius, 4.0)
		sphere := geometry.NewSphere(position, 3.0)
		s.Add(NewObject(sphere, glass))
	}

	s.CameraStart = orbitCamera(0.0)
	s.CameraEnd = orbitCamera(1.0)

	return s
}

// orbitCamera reproduces original_source/Raytracer.cpp's GetCameraAtTime
// closure at a single instant t: the camera orbits (0,0,0) while dollying
// in very slightly, and is reoriented so the origin stays centred in
// frame.
func orbitCamera(t float64) *geometry.Camera {
	phi := math.Pi + math.Pi*0.01*t
	alpha := math.Pi*0.3 - math.Pi*0.01*t
	distance := 50.0 - 0.5*t

	position := core.NewVec3(
		math.Cos(alpha)*math.Sin(phi)*distance,
		math.Cos(alpha)*math.Cos(phi)*distance,
		math.Sin(alpha)*distance,
	)

	orientation := core.QuaternionFromAxisAngle(core.NewVec3(0, 0, -1), math.Pi+phi).
		Mul(core.QuaternionFromAxisAngle(core.NewVec3(1, 0, 0), -alpha))

	return geometry.NewCamera(
		position,
		math.Pi*0.35,
		position.Length()*0.9,
		2.0,
		0.012,
		orientation,
	)
}
