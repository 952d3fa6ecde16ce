package main

import (
	"fmt"

	"github.com/akmonengine/probe"
	"github.com/akmonengine/probe/geom"
	"github.com/akmonengine/probe/internal/config"
	"github.com/go-gl/mathgl/mgl64"
)

// buildMesh creates the object's mesh at the local origin; placement
// comes from the transform.
func buildMesh(obj config.Object) (*geom.Mesh, error) {
	switch obj.Shape {
	case "box":
		return geom.NewBoxMesh(mgl64.Vec3{}, vec3(obj.Size)), nil
	case "plane":
		return geom.NewPlaneMesh(mgl64.Vec3{}, obj.Width, obj.Depth), nil
	case "icosahedron":
		return geom.NewIcosahedronMesh(mgl64.Vec3{}, obj.Radius), nil
	default:
		return nil, fmt.Errorf("unknown shape %q for object %q", obj.Shape, obj.Name)
	}
}

func buildTransform(obj config.Object) geom.Transform {
	rotation := mgl64.AnglesToQuat(
		mgl64.DegToRad(obj.Rotation[0]),
		mgl64.DegToRad(obj.Rotation[1]),
		mgl64.DegToRad(obj.Rotation[2]),
		mgl64.XYZ,
	)

	return geom.NewTransformAt(vec3(obj.Position)).
		WithRotation(rotation).
		WithScale(vec3(obj.Scale))
}

func buildProbe(obj config.Object) (*probe.Probe, error) {
	mesh, err := buildMesh(obj)
	if err != nil {
		return nil, err
	}

	return probe.NewProbe(mesh, buildTransform(obj)), nil
}

func buildTarget(obj config.Object) (*probe.Target, error) {
	mesh, err := buildMesh(obj)
	if err != nil {
		return nil, err
	}

	return &probe.Target{
		Transform: buildTransform(obj),
		Source:    probe.StaticMesh{Mesh: mesh},
	}, nil
}

func vec3(v [3]float64) mgl64.Vec3 {
	return mgl64.Vec3{v[0], v[1], v[2]}
}
