package perovsk

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func approx(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

var cubic10 = Lattice{
	{X: 10},
	{Y: 10},
	{Z: 10},
}

func TestCartFrac(t *testing.T) {
	l := Lattice{
		{X: 6},
		{X: 1, Y: 6},
		{Y: 1, Z: 6},
	}
	f := r3.Vec{X: 0.25, Y: 0.5, Z: 0.75}
	c := l.Cart(f)
	want := r3.Vec{X: 2.0, Y: 3.75, Z: 4.5}
	if !approx(c.X, want.X, 1e-12) ||
		!approx(c.Y, want.Y, 1e-12) ||
		!approx(c.Z, want.Z, 1e-12) {
		t.Errorf("got %v, wanted %v\n", c, want)
	}
	back, err := l.Frac(c)
	if err != nil {
		t.Fatal(err)
	}
	if !approx(back.X, f.X, 1e-12) ||
		!approx(back.Y, f.Y, 1e-12) ||
		!approx(back.Z, f.Z, 1e-12) {
		t.Errorf("got %v, wanted %v\n", back, f)
	}
}

func TestFracSingular(t *testing.T) {
	l := Lattice{
		{X: 1},
		{Y: 1},
		{X: 1},
	}
	_, err := l.Frac(r3.Vec{X: 0.5})
	if !errors.Is(err, ErrSingularLattice) {
		t.Errorf("got %v, wanted %v\n", err, ErrSingularLattice)
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		msg  string
		s    *Structure
		want float64
	}{
		{
			msg: "within cell",
			s: &Structure{
				Lattice: cubic10,
				Sites: []Site{
					{"Pb", r3.Vec{X: 1, Y: 1, Z: 1}},
					{"Pb", r3.Vec{X: 4, Y: 1, Z: 1}},
				},
			},
			want: 3.0,
		},
		{
			msg: "across boundary",
			s: &Structure{
				Lattice: cubic10,
				Sites: []Site{
					{"Pb", r3.Vec{X: 1, Y: 1, Z: 1}},
					{"Pb", r3.Vec{X: 9, Y: 1, Z: 1}},
				},
			},
			want: 2.0,
		},
		{
			msg: "fractional across boundary",
			s: &Structure{
				Lattice: cubic10,
				Sites: []Site{
					{"Pb", r3.Vec{X: 0.1, Y: 0.1, Z: 0.1}},
					{"Pb", r3.Vec{X: 0.9, Y: 0.1, Z: 0.1}},
				},
				Fractional: true,
			},
			want: 2.0,
		},
	}
	for _, test := range tests {
		got, err := test.s.Distance(0, 1)
		if err != nil {
			t.Fatal(err)
		}
		if !approx(got, test.want, 1e-12) {
			t.Errorf("%s: got %v, wanted %v\n", test.msg, got, test.want)
		}
	}
}

func TestAngle(t *testing.T) {
	tests := []struct {
		msg  string
		x    r3.Vec
		b2   r3.Vec
		want float64
	}{
		{
			msg:  "linear bridge",
			x:    r3.Vec{X: 1},
			b2:   r3.Vec{X: 2},
			want: 180.0,
		},
		{
			msg:  "bent bridge",
			x:    r3.Vec{X: 1, Y: 0.5},
			b2:   r3.Vec{X: 2},
			want: 126.86989764584402,
		},
		{
			msg:  "bent bridge, B2 translated by a lattice vector",
			x:    r3.Vec{X: 1, Y: 0.5},
			b2:   r3.Vec{X: -18},
			want: 126.86989764584402,
		},
	}
	for _, test := range tests {
		s := &Structure{
			Lattice: Lattice{{X: 20}, {Y: 20}, {Z: 20}},
			Sites: []Site{
				{"Pb", r3.Vec{}},
				{"I", test.x},
				{"Pb", test.b2},
			},
		}
		got, err := s.Angle(0, 1, 2)
		if err != nil {
			t.Fatal(err)
		}
		if !approx(got, test.want, 1e-9) {
			t.Errorf("%s: got %v, wanted %v\n", test.msg, got, test.want)
		}
	}
}

func TestNeighbors(t *testing.T) {
	s := &Structure{
		Lattice: cubic10,
		Sites: []Site{
			{"C", r3.Vec{X: 0.5}},
			{"H", r3.Vec{X: 1.5}},
			{"H", r3.Vec{X: 9.8}},
			{"O", r3.Vec{X: 5, Y: 5, Z: 5}},
		},
	}
	got, err := s.Neighbors(0, 2.0)
	if err != nil {
		t.Fatal(err)
	}
	want := []int{1, 2}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, wanted %v\n", got, want)
	}
}
