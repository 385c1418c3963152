package render

import (
	"math"

	"github.com/taigrr/trophy/pkg/math3d"
)

// Light is a tagged-variant light source: directional, point, or spot.
// Each variant exposes its color, the unit surface-to-light direction at
// a given world point, and the scalar attenuation at that point.
type Light struct {
	Kind  Kind
	Color Color

	// Directional: Direction is the negated light direction (points from
	// the surface back toward the light) and is already unit length.
	// Point/Spot: Position is the light's world position.
	Direction math3d.Vec3
	Position  math3d.Vec3

	// Point.
	Intensity float64

	// Spot. CosCutoff is the cosine of the half-angle; Taper is the
	// falloff exponent applied inside the cone (past the cutoff the
	// attenuation is 0).
	CosCutoff float64
	Taper     float64
}

// Kind distinguishes the light variants.
type Kind int

const (
	KindDirectional Kind = iota
	KindPoint
	KindSpot
)

// NewDirectionalLight builds a directional light. direction is the
// direction the light travels (surface-ward); it is negated and
// normalized internally so DirectionAt always points back at the light.
func NewDirectionalLight(color Color, direction math3d.Vec3) Light {
	return Light{Kind: KindDirectional, Color: color, Direction: direction.Negate().Normalize()}
}

// NewPointLight builds a point light.
func NewPointLight(color Color, intensity float64, position math3d.Vec3) Light {
	return Light{Kind: KindPoint, Color: color, Intensity: intensity, Position: position}
}

// NewSpotLight builds a spot light. direction is the direction the cone
// points (surface-ward); angle is the half-cone angle in radians.
func NewSpotLight(color Color, angle, taper float64, direction, position math3d.Vec3) Light {
	return Light{
		Kind:      KindSpot,
		Color:     color,
		Direction: direction.Normalize(),
		Position:  position,
		CosCutoff: math.Cos(angle),
		Taper:     taper,
	}
}

// DirectionAt returns the unit surface-to-light direction at world point p.
func (l Light) DirectionAt(p math3d.Vec3) math3d.Vec3 {
	switch l.Kind {
	case KindPoint, KindSpot:
		return l.Position.Sub(p).Normalize()
	default:
		return l.Direction
	}
}

// AttenuationAt returns the scalar attenuation of the light at world
// point p.
func (l Light) AttenuationAt(p math3d.Vec3) float64 {
	switch l.Kind {
	case KindPoint:
		d2 := l.Position.Sub(p).LenSq()
		if d2 == 0 {
			return 0
		}
		return l.Intensity / d2
	case KindSpot:
		lightToSurface := p.Sub(l.Position).Normalize()
		cosTheta := lightToSurface.Dot(l.Direction)
		denom := 1 - l.CosCutoff
		if denom <= 0 {
			return 0
		}
		t := (cosTheta - l.CosCutoff) / denom
		if t <= 0 {
			return 0
		}
		return math.Pow(t, l.Taper)
	default:
		return 1
	}
}

// LightCollection is an ambient term plus an ordered list of lights.
type LightCollection struct {
	Ambient Color
	Lights  []Light
}
