// Package cell defines the two-bit cell value used throughout the still-life
// search: a cell is either definitely Off, definitely On, or Unknown (with a
// flavour that records whether it must settle into the stable background).
package cell

// Value is a two-bit cell state. Bit1 (the high bit) marks uncertainty; bit0
// carries the live value when certain, or an uncertainty flavour when not.
// The encoding is chosen so the three-state Life step reduces to bitwise
// operations over two parallel bit-planes: see kernel.EvolveTile.
type Value uint8

const (
	// Off is a cell known to be dead.
	Off Value = 0b00
	// On is a cell known to be alive.
	On Value = 0b01
	// UnknownStable is a cell whose value is undetermined but which, in
	// every accepted solution, holds the same value at every generation —
	// it belongs to the still-life background.
	UnknownStable Value = 0b10
	// Unknown is a cell whose value is undetermined with no stability
	// guarantee (a successor cell not yet resolved by the search).
	Unknown Value = 0b11
)

// Bits decomposes v into its two bit-planes.
func (v Value) Bits() (bit0, bit1 bool) {
	return v&0b01 != 0, v&0b10 != 0
}

// FromBits recomposes a Value from its two bit-planes.
func FromBits(bit0, bit1 bool) Value {
	var v Value
	if bit0 {
		v |= 0b01
	}
	if bit1 {
		v |= 0b10
	}
	return v
}

// IsKnown reports whether v is definitely Off or definitely On.
func (v Value) IsKnown() bool {
	return v == Off || v == On
}

// String renders v using the Life 1.05 dialect's per-cell characters used by
// this program's solution dumps: '.' for Off, '*' for On, '?' for either
// unknown flavour.
func (v Value) String() string {
	switch v {
	case Off:
		return "."
	case On:
		return "*"
	default:
		return "?"
	}
}
