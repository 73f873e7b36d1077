/*
Perovskite distortion helpers
-----------------------------
Analysis helpers for octahedral tilting in ABX3 perovskite supercells:
the average B-X-B bridge angle as a tilting descriptor, and random
reorientation of the organic A-site cations to break the artificial
polarity a periodic supercell imposes.

Structures arrive already parsed: an ordered list of sites plus the
three lattice vectors. All distances and angles honor the minimum-image
convention, so a framework split across the periodic boundary measures
the same as a contiguous one.
*/

package perovsk

import "errors"

// Verbose makes the helpers log per-bridge angles, skipped bridges,
// and suspect cation groups to stderr.
var Verbose bool

// Default bonding cutoffs in Angstroms: B-X for octahedral bridges and
// center-to-ligand for picking out an organic cation.
const (
	DefaultBXCutoff     = 3.8
	DefaultCationCutoff = 3.5
)

// Errors used throughout
var (
	ErrNoSuchSpecies   = errors.New("species not present in structure")
	ErrNoTriples       = errors.New("no B-X-B bridges within cutoff")
	ErrEmptyGroup      = errors.New("empty molecule group")
	ErrUnknownSpecies  = errors.New("no atomic weight tabulated for species")
	ErrSingularLattice = errors.New("lattice vectors do not span a cell")
)
