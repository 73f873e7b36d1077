package perovsk

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/stat/distuv"
)

// RotateGroups applies an independent random rigid rotation, uniform
// over all 3D orientations, to each molecule group about the group's
// centroid. Sites outside the groups are untouched; species labels and
// the lattice never change. The caller owns rng, so runs reproduce
// under a fixed seed; use Copy first to keep the input structure.
func RotateGroups(s *Structure, groups [][]int, rng *rand.Rand) error {
	var inv Lattice
	var err error
	if s.Fractional {
		if inv, err = s.Lattice.Inv(); err != nil {
			return err
		}
	}
	for gi, group := range groups {
		if len(group) == 0 {
			return fmt.Errorf("group %d: %w", gi, ErrEmptyGroup)
		}
	}
	norm := distuv.Normal{Mu: 0, Sigma: 1, Src: rng}
	for _, group := range groups {
		rot := randRotation(norm)
		c := centroid(s, group)
		for _, i := range group {
			s.setCart(i, rot.Rotate(s.Cart(i).Sub(c)).Add(c), inv)
		}
	}
	return nil
}

// randRotation samples a rotation uniformly over SO(3): four iid
// gaussians normalized onto the unit quaternion sphere.
func randRotation(norm distuv.Normal) r3.Rotation {
	for {
		q := quat.Number{
			Real: norm.Rand(),
			Imag: norm.Rand(),
			Jmag: norm.Rand(),
			Kmag: norm.Rand(),
		}
		if n := quat.Abs(q); n > 0 {
			return r3.Rotation(quat.Scale(1/n, q))
		}
	}
}

// RotateGroupsAxis rotates each molecule group about a fixed axis
// through the group's center of mass, by an independent uniform random
// angle in [-maxAngle, +maxAngle] degrees. This is the constrained
// variant for molecules that should only reorient about a known
// direction, such as the N-N axis of formamidinium.
func RotateGroupsAxis(s *Structure, groups [][]int, axis r3.Vec, maxAngle float64, rng *rand.Rand) error {
	if r3.Norm(axis) == 0 {
		return fmt.Errorf("rotate: zero rotation axis")
	}
	axis = r3.Unit(axis)
	var inv Lattice
	var err error
	if s.Fractional {
		if inv, err = s.Lattice.Inv(); err != nil {
			return err
		}
	}
	centers := make([]r3.Vec, len(groups))
	for gi, group := range groups {
		if len(group) == 0 {
			return fmt.Errorf("group %d: %w", gi, ErrEmptyGroup)
		}
		if centers[gi], err = CenterOfMass(s, group); err != nil {
			return err
		}
	}
	for gi, group := range groups {
		theta := (2*rng.Float64() - 1) * maxAngle * math.Pi / 180
		rot := r3.NewRotation(theta, axis)
		c := centers[gi]
		for _, i := range group {
			s.setCart(i, rot.Rotate(s.Cart(i).Sub(c)).Add(c), inv)
		}
	}
	return nil
}

// Centroid returns the arithmetic mean of the Cartesian positions of
// the sites in group.
func Centroid(s *Structure, group []int) (r3.Vec, error) {
	if len(group) == 0 {
		return r3.Vec{}, ErrEmptyGroup
	}
	return centroid(s, group), nil
}

func centroid(s *Structure, group []int) r3.Vec {
	var c r3.Vec
	for _, i := range group {
		c = c.Add(s.Cart(i))
	}
	return c.Scale(1 / float64(len(group)))
}

// CenterOfMass returns the mass-weighted center of the sites in group,
// in Cartesian coordinates.
func CenterOfMass(s *Structure, group []int) (r3.Vec, error) {
	if len(group) == 0 {
		return r3.Vec{}, ErrEmptyGroup
	}
	var c r3.Vec
	var total float64
	for _, i := range group {
		wt, ok := AtomicWeight(s.Sites[i].Species)
		if !ok {
			return r3.Vec{}, fmt.Errorf("%w: %q", ErrUnknownSpecies, s.Sites[i].Species)
		}
		c = c.Add(s.Cart(i).Scale(wt))
		total += wt
	}
	return c.Scale(1 / total), nil
}
