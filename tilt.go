package perovsk

import (
	"fmt"
	"log"

	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/stat"
)

// TiltAngles returns every B-X-B bridge angle in the structure, in
// degrees. A bridge is an xSpecies site with exactly two bSpecies
// sites within cutoff under the minimum-image convention; an X site
// with any other number of B neighbors forms no bridge and is skipped.
func TiltAngles(s *Structure, bSpecies, xSpecies string, cutoff float64) ([]float64, error) {
	inv, err := s.Lattice.Inv()
	if err != nil {
		return nil, err
	}
	var bs, xs []int
	for i, site := range s.Sites {
		switch site.Species {
		case bSpecies:
			bs = append(bs, i)
		case xSpecies:
			xs = append(xs, i)
		}
	}
	if len(bs) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoSuchSpecies, bSpecies)
	}
	if len(xs) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoSuchSpecies, xSpecies)
	}
	var angles []float64
	for _, x := range xs {
		xc := s.Cart(x)
		var bonded []int
		for _, b := range bs {
			if r3.Norm(minImage(s.Lattice, inv, s.Cart(b).Sub(xc))) < cutoff {
				bonded = append(bonded, b)
			}
		}
		if len(bonded) != 2 {
			if Verbose {
				log.Printf("%s site %d bridges %d %s sites, skipping\n",
					xSpecies, x, len(bonded), bSpecies)
			}
			continue
		}
		v1 := minImage(s.Lattice, inv, s.Cart(bonded[0]).Sub(xc))
		v2 := minImage(s.Lattice, inv, s.Cart(bonded[1]).Sub(xc))
		theta := vecAngle(v1, v2)
		if Verbose {
			log.Printf("%s(%d)-%s(%d)-%s(%d) angle %.3f\n",
				bSpecies, bonded[0], xSpecies, x, bSpecies, bonded[1], theta)
		}
		angles = append(angles, theta)
	}
	if len(angles) == 0 {
		return nil, fmt.Errorf("%w between %q and %q", ErrNoTriples, bSpecies, xSpecies)
	}
	return angles, nil
}

// AvgTiltAngle returns the average B-X-B bridge angle in degrees, the
// usual single-number descriptor of octahedral tilting. 180 means an
// untilted framework; anything lower means the octahedra have rotated
// away from the collinear arrangement.
func AvgTiltAngle(s *Structure, bSpecies, xSpecies string, cutoff float64) (float64, error) {
	angles, err := TiltAngles(s, bSpecies, xSpecies, cutoff)
	if err != nil {
		return 0, err
	}
	return stat.Mean(angles, nil), nil
}
