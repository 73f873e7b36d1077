package perovsk

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Site is one atom in a structure: a species label and a position,
// fractional or Cartesian depending on the owning Structure.
type Site struct {
	Species string
	Pos     r3.Vec
}

// Lattice holds the three periodic repeat vectors of a cell, one per
// row of the cell matrix.
type Lattice [3]r3.Vec

// Cart converts fractional coordinates to Cartesian.
func (l Lattice) Cart(f r3.Vec) r3.Vec {
	return l[0].Scale(f.X).Add(l[1].Scale(f.Y)).Add(l[2].Scale(f.Z))
}

func (l Lattice) matrix() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		l[0].X, l[0].Y, l[0].Z,
		l[1].X, l[1].Y, l[1].Z,
		l[2].X, l[2].Y, l[2].Z,
	})
}

// Inv returns the inverse of the cell matrix as another Lattice, so
// that inv.Cart carries Cartesian vectors back to fractional ones.
func (l Lattice) Inv() (Lattice, error) {
	var m mat.Dense
	if err := m.Inverse(l.matrix()); err != nil {
		return Lattice{}, ErrSingularLattice
	}
	return Lattice{
		{X: m.At(0, 0), Y: m.At(0, 1), Z: m.At(0, 2)},
		{X: m.At(1, 0), Y: m.At(1, 1), Z: m.At(1, 2)},
		{X: m.At(2, 0), Y: m.At(2, 1), Z: m.At(2, 2)},
	}, nil
}

// Frac converts a Cartesian vector to fractional coordinates.
func (l Lattice) Frac(v r3.Vec) (r3.Vec, error) {
	inv, err := l.Inv()
	if err != nil {
		return r3.Vec{}, err
	}
	return inv.Cart(v), nil
}

// offsets of the cells neighboring the home cell
var images []r3.Vec

func init() {
	for i := -1.0; i <= 1; i++ {
		for j := -1.0; j <= 1; j++ {
			for k := -1.0; k <= 1; k++ {
				if i == 0 && j == 0 && k == 0 {
					continue
				}
				images = append(images, r3.Vec{X: i, Y: j, Z: k})
			}
		}
	}
}

// minImage maps a Cartesian displacement onto its shortest periodic
// image. Exact for displacements below half the smallest cell height,
// which bond cutoffs sit well under.
func minImage(l, inv Lattice, d r3.Vec) r3.Vec {
	f := inv.Cart(d)
	f = r3.Vec{
		X: f.X - math.Round(f.X),
		Y: f.Y - math.Round(f.Y),
		Z: f.Z - math.Round(f.Z),
	}
	best := l.Cart(f)
	for _, n := range images {
		if c := l.Cart(f.Add(n)); r3.Norm2(c) < r3.Norm2(best) {
			best = c
		}
	}
	return best
}

// Structure is an ordered set of atomic sites under periodic boundary
// conditions. Fractional says whether site positions are stored in
// fractional coordinates of the lattice; otherwise they are Cartesian.
type Structure struct {
	Lattice    Lattice
	Sites      []Site
	Fractional bool
}

// Copy returns a deep copy of s.
func (s *Structure) Copy() *Structure {
	c := *s
	c.Sites = make([]Site, len(s.Sites))
	copy(c.Sites, s.Sites)
	return &c
}

// Cart returns the Cartesian position of site i.
func (s *Structure) Cart(i int) r3.Vec {
	if s.Fractional {
		return s.Lattice.Cart(s.Sites[i].Pos)
	}
	return s.Sites[i].Pos
}

// setCart stores a Cartesian position in the structure's native
// representation. inv must be the inverse lattice when the structure
// is fractional.
func (s *Structure) setCart(i int, v r3.Vec, inv Lattice) {
	if s.Fractional {
		s.Sites[i].Pos = inv.Cart(v)
		return
	}
	s.Sites[i].Pos = v
}

// MinImage returns the minimum-image displacement from site i to site
// j in Cartesian coordinates.
func (s *Structure) MinImage(i, j int) (r3.Vec, error) {
	inv, err := s.Lattice.Inv()
	if err != nil {
		return r3.Vec{}, err
	}
	return minImage(s.Lattice, inv, s.Cart(j).Sub(s.Cart(i))), nil
}

// Distance returns the minimum-image distance between sites i and j.
func (s *Structure) Distance(i, j int) (float64, error) {
	d, err := s.MinImage(i, j)
	if err != nil {
		return 0, err
	}
	return r3.Norm(d), nil
}

// Angle returns the angle at vertex j of the triple i-j-k in degrees,
// measuring both arms through the minimum image.
func (s *Structure) Angle(i, j, k int) (float64, error) {
	inv, err := s.Lattice.Inv()
	if err != nil {
		return 0, err
	}
	v1 := minImage(s.Lattice, inv, s.Cart(i).Sub(s.Cart(j)))
	v2 := minImage(s.Lattice, inv, s.Cart(k).Sub(s.Cart(j)))
	return vecAngle(v1, v2), nil
}

// vecAngle returns the angle between v1 and v2 in degrees, clamping
// the cosine against floating-point overshoot.
func vecAngle(v1, v2 r3.Vec) float64 {
	cos := r3.Cos(v1, v2)
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return math.Acos(cos) * 180 / math.Pi
}

// Neighbors returns the indices of all sites within cutoff of site i
// under the minimum-image convention, excluding i itself.
func (s *Structure) Neighbors(i int, cutoff float64) ([]int, error) {
	inv, err := s.Lattice.Inv()
	if err != nil {
		return nil, err
	}
	return s.neighbors(inv, i, cutoff), nil
}

func (s *Structure) neighbors(inv Lattice, i int, cutoff float64) []int {
	var nbrs []int
	ic := s.Cart(i)
	for j := range s.Sites {
		if j == i {
			continue
		}
		if r3.Norm(minImage(s.Lattice, inv, s.Cart(j).Sub(ic))) < cutoff {
			nbrs = append(nbrs, j)
		}
	}
	return nbrs
}
