// pkg/geom/geom.go
package geom

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Vec is a point or direction in world coordinates.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec {
	return Vec{v.X + o.X, v.Y + o.Y}
}

func (v Vec) Sub(o Vec) Vec {
	return Vec{v.X - o.X, v.Y - o.Y}
}

func (v Vec) Scale(f float64) Vec {
	return Vec{v.X * f, v.Y * f}
}

// SqDist returns the squared Euclidean distance between a and b.
func SqDist(a, b Vec) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Vec) float64 {
	return floats.Distance([]float64{a.X, a.Y}, []float64{b.X, b.Y}, 2)
}

// Normalize returns v scaled to unit length. The zero vector is returned unchanged.
func Normalize(v Vec) Vec {
	s := []float64{v.X, v.Y}
	n := floats.Norm(s, 2)
	if n == 0 {
		return v
	}
	floats.Scale(1/n, s)
	return Vec{s[0], s[1]}
}

// ApproxAim turns an offset into a direction the way ranged towers aim:
// the offset is first shrunk so that its larger axis has magnitude at most 1,
// then normalized.
func ApproxAim(offset Vec) Vec {
	scalar := math.Max(math.Abs(offset.X), math.Abs(offset.Y))
	if scalar > 1 {
		offset = offset.Scale(1 / scalar)
	}
	return Normalize(offset)
}

// Lerp performs linear interpolation between two points.
func Lerp(from, to Vec, t float64) Vec {
	return Vec{
		X: from.X + (to.X-from.X)*t,
		Y: from.Y + (to.Y-from.Y)*t,
	}
}

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	Min  Vec
	Size Vec
}

func (r Rect) Max() Vec {
	return r.Min.Add(r.Size)
}

func (r Rect) Center() Vec {
	return r.Min.Add(r.Size.Scale(0.5))
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Vec) bool {
	max := r.Max()
	return p.X >= r.Min.X && p.X <= max.X && p.Y >= r.Min.Y && p.Y <= max.Y
}
