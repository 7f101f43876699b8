package cell_test

import (
	"testing"

	"github.com/haldun/bellman/cell"
)

func TestBitsRoundTrip(t *testing.T) {
	for _, v := range []cell.Value{cell.Off, cell.On, cell.UnknownStable, cell.Unknown} {
		bit0, bit1 := v.Bits()
		if got := cell.FromBits(bit0, bit1); got != v {
			t.Errorf("FromBits(%v.Bits()) = %v, want %v", v, got, v)
		}
	}
}

func TestIsKnown(t *testing.T) {
	cases := map[cell.Value]bool{
		cell.Off:           true,
		cell.On:            true,
		cell.Unknown:       false,
		cell.UnknownStable: false,
	}
	for v, want := range cases {
		if got := v.IsKnown(); got != want {
			t.Errorf("%v.IsKnown() = %v, want %v", v, got, want)
		}
	}
}

func TestStringDialect(t *testing.T) {
	cases := map[cell.Value]string{
		cell.Off:           ".",
		cell.On:            "*",
		cell.Unknown:       "?",
		cell.UnknownStable: "?",
	}
	for v, want := range cases {
		if got := v.String(); got != want {
			t.Errorf("%v.String() = %q, want %q", v, got, want)
		}
	}
}
