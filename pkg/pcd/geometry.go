package pcd

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/stat"
)

// Centroid returns the arithmetic mean of the points.
func (c *Cloud) Centroid() (r3.Vec, error) {
	if c.Len() == 0 {
		return r3.Vec{}, fmt.Errorf("empty cloud has no centroid")
	}
	xs, ys, zs := c.axes()
	return r3.Vec{
		X: stat.Mean(xs, nil),
		Y: stat.Mean(ys, nil),
		Z: stat.Mean(zs, nil),
	}, nil
}

// Bounds returns the axis-aligned minimum and maximum corners.
func (c *Cloud) Bounds() (min, max r3.Vec, err error) {
	if c.Len() == 0 {
		return r3.Vec{}, r3.Vec{}, fmt.Errorf("empty cloud has no bounds")
	}
	xs, ys, zs := c.axes()
	min = r3.Vec{X: floats.Min(xs), Y: floats.Min(ys), Z: floats.Min(zs)}
	max = r3.Vec{X: floats.Max(xs), Y: floats.Max(ys), Z: floats.Max(zs)}
	return min, max, nil
}

// FilterMinSqDist returns a new cloud holding only the points whose
// squared distance from the origin exceeds minSq. The comparison is
// strict, a point exactly at the threshold is dropped.
func (c *Cloud) FilterMinSqDist(minSq float64) *Cloud {
	out := &Cloud{Color: c.Color}
	for _, p := range c.Points {
		if r3.Norm2(p) > minSq {
			out.Points = append(out.Points, p)
		}
	}
	return out
}

// OrientedBounds computes the extents of the cloud's PCA-aligned
// bounding box, sorted from largest to smallest.
func (c *Cloud) OrientedBounds() ([3]float64, error) {
	var extents [3]float64
	if c.Len() < 2 {
		return extents, fmt.Errorf("need at least 2 points for an oriented box, have %d", c.Len())
	}

	data := mat.NewDense(c.Len(), 3, nil)
	for i, p := range c.Points {
		data.SetRow(i, []float64{p.X, p.Y, p.Z})
	}

	var cov mat.SymDense
	stat.CovarianceMatrix(&cov, data, nil)

	var eig mat.EigenSym
	if ok := eig.Factorize(&cov, true); !ok {
		return extents, fmt.Errorf("covariance factorization failed")
	}
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	// Spread of the points along each principal axis.
	for axis := 0; axis < 3; axis++ {
		v := mat.Col(nil, axis, &vecs)
		lo, hi := math.Inf(1), math.Inf(-1)
		for _, p := range c.Points {
			d := p.X*v[0] + p.Y*v[1] + p.Z*v[2]
			if d < lo {
				lo = d
			}
			if d > hi {
				hi = d
			}
		}
		extents[axis] = hi - lo
	}

	sort.Sort(sort.Reverse(sort.Float64Slice(extents[:])))
	return extents, nil
}

func (c *Cloud) axes() (xs, ys, zs []float64) {
	xs = make([]float64, c.Len())
	ys = make([]float64, c.Len())
	zs = make([]float64, c.Len())
	for i, p := range c.Points {
		xs[i], ys[i], zs[i] = p.X, p.Y, p.Z
	}
	return xs, ys, zs
}
