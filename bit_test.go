package engrave

import (
	"errors"
	"math"
	"testing"
)

func TestVBit(t *testing.T) {
	bit, err := NewVBit(90, 2)
	if err != nil {
		t.Fatal(err)
	}
	// 90° included angle cuts as deep as its half-width.
	approxEq(t, 1, bit.Depth(), 1e-12)
	diff(t, 1.0, bit.HalfWidth())
	approxEq(t, 90, bit.AngleDegrees(), 1e-12)

	approxEq(t, 1, bit.CrossSection(0), 1e-12)
	approxEq(t, 0.5, bit.CrossSection(0.5), 1e-12)
	approxEq(t, 0.5, bit.CrossSection(-0.5), 1e-12)
	diff(t, 0.0, bit.CrossSection(1))
	diff(t, 0.0, bit.CrossSection(-3))
}

func TestVBitNarrowAngle(t *testing.T) {
	bit, err := NewVBit(30, 1)
	if err != nil {
		t.Fatal(err)
	}
	approxEq(t, 0.5/math.Tan(math.Pi/12), bit.Depth(), 1e-12)
}

func TestFlatBit(t *testing.T) {
	bit, err := NewFlatBit(3, 0.4)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 1.5, bit.HalfWidth())
	diff(t, 0.4, bit.Depth())
	diff(t, 0.4, bit.CrossSection(0))
	diff(t, 0.4, bit.CrossSection(1.4))
	diff(t, 0.0, bit.CrossSection(1.5))
}

func TestRoundBit(t *testing.T) {
	bit, err := NewRoundBit(0.5)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 0.5, bit.HalfWidth())
	diff(t, 0.5, bit.Depth())
	approxEq(t, 0.5, bit.CrossSection(0), 1e-12)
	approxEq(t, math.Sqrt(0.25-0.09), bit.CrossSection(0.3), 1e-12)
	diff(t, 0.0, bit.CrossSection(0.5))
}

func TestBitValidation(t *testing.T) {
	cases := map[string]error{}
	_, cases["v angle zero"] = NewVBit(0, 1)
	_, cases["v angle flat"] = NewVBit(180, 1)
	_, cases["v width zero"] = NewVBit(60, 0)
	_, cases["v width negative"] = NewVBit(60, -1)
	_, cases["flat width zero"] = NewFlatBit(0, 1)
	_, cases["flat depth zero"] = NewFlatBit(1, 0)
	_, cases["round radius zero"] = NewRoundBit(0)
	_, cases["round radius nan"] = NewRoundBit(math.NaN())

	for name, err := range cases {
		t.Run(name, func(t *testing.T) {
			var perr *InvalidParameterError
			if !errors.As(err, &perr) {
				t.Fatalf("got %v, want InvalidParameterError", err)
			}
		})
	}
}
