package perovsk

import (
	"fmt"
	"log"
)

// CationGroups finds the sites making up each organic A-cation: one
// group per centerSpecies site, holding that site plus every neighbor
// within cutoff under the minimum-image convention. For formamidinium
// or methylammonium the natural center is the carbon.
func CationGroups(s *Structure, centerSpecies string, cutoff float64) ([][]int, error) {
	inv, err := s.Lattice.Inv()
	if err != nil {
		return nil, err
	}
	var groups [][]int
	for i, site := range s.Sites {
		if site.Species != centerSpecies {
			continue
		}
		groups = append(groups, append([]int{i}, s.neighbors(inv, i, cutoff)...))
	}
	if len(groups) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoSuchSpecies, centerSpecies)
	}
	// cations of one species should all come out the same size
	if Verbose {
		for _, g := range groups[1:] {
			if len(g) != len(groups[0]) {
				log.Printf("cation groups differ in size: %d vs %d\n",
					len(g), len(groups[0]))
				break
			}
		}
	}
	return groups, nil
}
