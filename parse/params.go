// Package parse reads the Life 1.05 dialect input file this program
// accepts: pattern blocks, filter blocks, and the `#S` parameter lines that
// configure the search. It owns the legacy parameter name mapping the
// original tool carried for backward compatibility.
package parse

import (
	"errors"
	"fmt"
)

// ErrUnknownParameter is returned when a `#S` line names a parameter this
// program doesn't recognize.
var ErrUnknownParameter = errors.New("parse: unknown parameter")

// ErrParameterRange is returned when a recognized parameter's value falls
// outside its legal range.
var ErrParameterRange = errors.New("parse: parameter out of range")

// ErrUnimplementedSymmetry is returned for the reserved-but-unimplemented
// `symmetry-diag` and `symmetry-diag-inverse` options.
var ErrUnimplementedSymmetry = errors.New("parse: symmetry mode not implemented")

// Symmetry names the mirror symmetry applied when the search commits a
// cell. Diagonal symmetry is a reserved name with no implementation: the
// parser rejects it outright rather than silently falling back to None.
type Symmetry int

const (
	SymmetryNone Symmetry = iota
	SymmetryHoriz
	SymmetryVert
)

// Params holds every tunable of a search run, defaulted exactly as the
// original program defaulted them, before any `#S` line is applied.
type Params struct {
	MinActivationGen                 uint
	MaxFirstActivationGen             uint
	MaxReactivationGen                uint
	explicitMaxReactivationGen        bool
	MaxActiveGensInARow               uint
	InactiveGensAtAccept              uint
	ActivePlusInactiveGensAtAccept    uint
	ContinueAfterAccept               bool
	MaxAddedStaticOncells             uint
	MaxFlippedCellsInActivation       uint
	MaxLocalComplexity                uint
	MaxLocalAreas                     uint
	MinLocalAreaSeparationSquared     uint
	MaxGlobalComplexity               uint
	OldResultNaming                   bool

	Symmetry    Symmetry
	SymmetryOfs uint
}

// MaxMaxLocalAreas bounds MaxLocalAreas; it sizes the fixed local-box array
// the complexity test uses.
const MaxMaxLocalAreas = 16

// minExtraGensToAllowReactivation is the default gap added to
// MaxFirstActivationGen to produce MaxReactivationGen when the input never
// sets it explicitly.
const minExtraGensToAllowReactivation = 12

// DefaultParams returns the parameter set the original tool starts from
// before any `#S` line is read.
func DefaultParams() Params {
	return Params{
		MinActivationGen:              2,
		MaxFirstActivationGen:         17,
		MaxReactivationGen:            17 + minExtraGensToAllowReactivation,
		MaxActiveGensInARow:           12,
		InactiveGensAtAccept:          6,
		MaxAddedStaticOncells:         32,
		MaxFlippedCellsInActivation:   8,
		MaxLocalComplexity:            1023,
		MaxLocalAreas:                 1,
		MinLocalAreaSeparationSquared: 10,
		MaxGlobalComplexity:           1023,
	}
}

// rangeSpec holds the legal range, the offset added to the stored value,
// and the destination field of a single recognized `#S` parameter.
type rangeSpec struct {
	min, max uint
	offset   uint
	dest     *uint
}

// boolSpec is the same for a 0/1 parameter.
type boolSpec struct {
	dest *bool
}

// Apply parses one `#S name value` line and applies it to p. It recognizes
// both the current parameter names and the legacy ones, exactly as
// original_source/bellman.c's match_parameter/read_param_cb did, including
// the legacy names' +1 offset (repair-interval, stable-interval, max-live,
// max-active) and the range checks those offsets are applied after.
func (p *Params) Apply(name, value string) error {
	ranges := map[string]rangeSpec{
		// Backward-compatible names. Their range is checked against the
		// raw value, with the offset applied only to the stored result —
		// matching match_parameter's addtovalue argument.
		"first-encounter":   {0, 1023, 0, &p.MinActivationGen},
		"last-encounter":    {0, 1023, 0, &p.MaxFirstActivationGen},
		"repair-interval":   {0, 1022, 1, &p.MaxActiveGensInARow},
		"stable-interval":   {0, 1022, 1, &p.InactiveGensAtAccept},
		"max-live":          {0, 1023, 1, &p.MaxAddedStaticOncells},
		"max-active":        {0, 1023, 1, &p.MaxFlippedCellsInActivation},

		// Current names.
		"min-activation-gen":                  {0, 1023, 0, &p.MinActivationGen},
		"max-first-activation-gen":            {0, 1023, 0, &p.MaxFirstActivationGen},
		"max-active-gens-in-a-row":            {1, 1023, 0, &p.MaxActiveGensInARow},
		"inactive-gens-at-accept":             {1, 1023, 0, &p.InactiveGensAtAccept},
		"active-plus-inactive-gens-at-accept": {0, 1023, 0, &p.ActivePlusInactiveGensAtAccept},
		"max-added-static-oncells":            {0, 1023, 0, &p.MaxAddedStaticOncells},
		"max-flipped-cells-in-activation":     {0, 1023, 0, &p.MaxFlippedCellsInActivation},
		"max-local-complexity":                {0, 1023, 0, &p.MaxLocalComplexity},
		"max-local-areas":                     {1, MaxMaxLocalAreas, 0, &p.MaxLocalAreas},
		"min-local-area-separation-squared":   {0, 8191, 0, &p.MinLocalAreaSeparationSquared},
		"max-global-complexity":               {0, 1023, 0, &p.MaxGlobalComplexity},
	}

	if name == "max-reactivation-gen" {
		spec := rangeSpec{0, 1023, 0, &p.MaxReactivationGen}
		if err := applyRange(spec, name, value); err != nil {
			return err
		}
		p.explicitMaxReactivationGen = true
		return nil
	}

	if spec, ok := ranges[name]; ok {
		return applyRange(spec, name, value)
	}

	bools := map[string]boolSpec{
		"continue-after-accept": {&p.ContinueAfterAccept},
		"old-result-naming":     {&p.OldResultNaming},
	}
	if spec, ok := bools[name]; ok {
		return applyBool(spec, name, value)
	}

	switch name {
	case "symmetry-horiz-odd", "symmetry-horiz-even", "symmetry-vert-odd", "symmetry-vert-even":
		coord, err := parseUint(value, 0, ^uint(0))
		if err != nil {
			return fmt.Errorf("%w: %s", ErrParameterRange, name)
		}
		switch name {
		case "symmetry-horiz-odd":
			p.Symmetry, p.SymmetryOfs = SymmetryHoriz, coord*2
		case "symmetry-horiz-even":
			p.Symmetry, p.SymmetryOfs = SymmetryHoriz, coord*2+1
		case "symmetry-vert-odd":
			p.Symmetry, p.SymmetryOfs = SymmetryVert, coord*2
		case "symmetry-vert-even":
			p.Symmetry, p.SymmetryOfs = SymmetryVert, coord*2+1
		}
		return nil
	case "symmetry-diag", "symmetry-diag-inverse":
		return fmt.Errorf("%w: %s", ErrUnimplementedSymmetry, name)
	}

	return fmt.Errorf("%w: %q", ErrUnknownParameter, name)
}

func applyRange(spec rangeSpec, name, value string) error {
	v, err := parseUint(value, spec.min, spec.max)
	if err != nil {
		return fmt.Errorf("%w: %s must be in [%d, %d]", ErrParameterRange, name, spec.min, spec.max)
	}
	*spec.dest = v + spec.offset
	return nil
}

func applyBool(spec boolSpec, name, value string) error {
	v, err := parseUint(value, 0, 1)
	if err != nil {
		return fmt.Errorf("%w: %s must be 0 or 1", ErrParameterRange, name)
	}
	*spec.dest = v == 1
	return nil
}

func parseUint(s string, min, max uint) (uint, error) {
	var v uint
	if _, err := fmt.Sscanf(s, "%d", &v); err != nil {
		return 0, err
	}
	if v < min || v > max {
		return 0, fmt.Errorf("value %d out of range [%d, %d]", v, min, max)
	}
	return v, nil
}

// Finish applies the defaults that depend on other parameters or on the
// filter's size, and must run only after every `#S` line has been applied:
// MaxReactivationGen's default (only set if never given explicitly),
// ActivePlusInactiveGensAtAccept's auto-disable below 2, and the derived
// MaxGens ceiling the evolving universe is pre-extended to.
func (p *Params) Finish(filterGens int) int {
	if !p.explicitMaxReactivationGen {
		p.MaxReactivationGen = p.MaxFirstActivationGen + minExtraGensToAllowReactivation
	}
	if p.ActivePlusInactiveGensAtAccept < 2 {
		p.ActivePlusInactiveGensAtAccept = 0
	}
	return MaxGenerations(*p, filterGens)
}

// MaxGenerations computes the generation the evolving universe must be
// pre-extended to before the search can run, per
// original_source/bellman.c:1324-1331.
func MaxGenerations(p Params, filterGens int) int {
	maxGens := int(p.MaxReactivationGen + p.MaxActiveGensInARow + p.InactiveGensAtAccept)
	if p.ActivePlusInactiveGensAtAccept != 0 {
		alt := int(p.MaxActiveGensInARow) + 1
		if int(p.ActivePlusInactiveGensAtAccept) > alt {
			alt = int(p.ActivePlusInactiveGensAtAccept)
		}
		if boundedAlt := int(p.MaxReactivationGen) + alt; boundedAlt < maxGens {
			maxGens = boundedAlt
		}
	}
	if maxGens < filterGens+1 {
		maxGens = filterGens + 1
	}
	return maxGens
}
