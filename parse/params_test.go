package parse_test

import (
	"errors"
	"testing"

	"github.com/haldun/bellman/parse"
)

func TestApplyRejectsUnknownParameter(t *testing.T) {
	p := parse.DefaultParams()
	err := p.Apply("not-a-real-parameter", "1")
	if !errors.Is(err, parse.ErrUnknownParameter) {
		t.Fatalf("Apply() error = %v, want ErrUnknownParameter", err)
	}
}

func TestApplyRejectsOutOfRange(t *testing.T) {
	p := parse.DefaultParams()
	err := p.Apply("max-local-areas", "17") // legal range is 1..16
	if !errors.Is(err, parse.ErrParameterRange) {
		t.Fatalf("Apply() error = %v, want ErrParameterRange", err)
	}
}

func TestApplyRejectsDiagonalSymmetry(t *testing.T) {
	p := parse.DefaultParams()
	if err := p.Apply("symmetry-diag", "3 4"); !errors.Is(err, parse.ErrUnimplementedSymmetry) {
		t.Fatalf("Apply(symmetry-diag) error = %v, want ErrUnimplementedSymmetry", err)
	}
}

func TestLegacyNamesMapWithOffset(t *testing.T) {
	p := parse.DefaultParams()
	if err := p.Apply("repair-interval", "5"); err != nil {
		t.Fatalf("Apply(repair-interval) error = %v", err)
	}
	if p.MaxActiveGensInARow != 6 {
		t.Fatalf("MaxActiveGensInARow = %d, want 6 (5 + legacy offset)", p.MaxActiveGensInARow)
	}

	p2 := parse.DefaultParams()
	if err := p2.Apply("stable-interval", "3"); err != nil {
		t.Fatalf("Apply(stable-interval) error = %v", err)
	}
	if p2.InactiveGensAtAccept != 4 {
		t.Fatalf("InactiveGensAtAccept = %d, want 4 (3 + legacy offset)", p2.InactiveGensAtAccept)
	}
}

func TestLegacyNameAliasesCurrentName(t *testing.T) {
	p := parse.DefaultParams()
	if err := p.Apply("first-encounter", "9"); err != nil {
		t.Fatalf("Apply(first-encounter) error = %v", err)
	}
	if p.MinActivationGen != 9 {
		t.Fatalf("MinActivationGen = %d, want 9", p.MinActivationGen)
	}
}

func TestFinishDefaultsMaxReactivationGen(t *testing.T) {
	p := parse.DefaultParams()
	if err := p.Apply("max-first-activation-gen", "20"); err != nil {
		t.Fatalf("Apply error = %v", err)
	}
	p.Finish(0)
	if p.MaxReactivationGen != 32 {
		t.Fatalf("MaxReactivationGen = %d, want 32 (20 + 12)", p.MaxReactivationGen)
	}
}

func TestFinishHonoursExplicitMaxReactivationGen(t *testing.T) {
	p := parse.DefaultParams()
	if err := p.Apply("max-first-activation-gen", "20"); err != nil {
		t.Fatalf("Apply error = %v", err)
	}
	if err := p.Apply("max-reactivation-gen", "50"); err != nil {
		t.Fatalf("Apply error = %v", err)
	}
	p.Finish(0)
	if p.MaxReactivationGen != 50 {
		t.Fatalf("MaxReactivationGen = %d, want 50 (explicit value preserved)", p.MaxReactivationGen)
	}
}

func TestFinishDisablesActivePlusInactiveBelowTwo(t *testing.T) {
	p := parse.DefaultParams()
	if err := p.Apply("active-plus-inactive-gens-at-accept", "1"); err != nil {
		t.Fatalf("Apply error = %v", err)
	}
	p.Finish(0)
	if p.ActivePlusInactiveGensAtAccept != 0 {
		t.Fatalf("ActivePlusInactiveGensAtAccept = %d, want 0 (disabled below 2)", p.ActivePlusInactiveGensAtAccept)
	}
}

func TestMaxGenerationsRespectsFilterLength(t *testing.T) {
	p := parse.DefaultParams()
	got := parse.MaxGenerations(p, 1000)
	if got != 1001 {
		t.Fatalf("MaxGenerations() = %d, want 1001 (filterGens + 1 dominates)", got)
	}
}
