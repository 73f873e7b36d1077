package perovsk

// Standard atomic weights (IUPAC 2021) for the elements that show up
// in halide perovskite supercells and their organic cations.
var atomicWeights = map[string]float64{
	"H":  1.008,
	"C":  12.011,
	"N":  14.007,
	"O":  15.999,
	"P":  30.974,
	"S":  32.06,
	"F":  18.998,
	"Cl": 35.45,
	"Br": 79.904,
	"I":  126.904,
	"Li": 6.94,
	"Na": 22.990,
	"K":  39.098,
	"Rb": 85.468,
	"Cs": 132.905,
	"Mg": 24.305,
	"Ca": 40.078,
	"Sr": 87.62,
	"Ba": 137.327,
	"Ge": 72.630,
	"Sn": 118.710,
	"Pb": 207.2,
	"Bi": 208.980,
	"Ag": 107.868,
	"Cu": 63.546,
}

// AtomicWeight returns the standard atomic weight of an element symbol
// and whether the symbol is tabulated.
func AtomicWeight(species string) (float64, bool) {
	wt, ok := atomicWeights[species]
	return wt, ok
}
