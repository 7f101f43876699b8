// Package solution renders an accepted search result in the text dialect
// the rest of the ecosystem's tools read: `#S` parameter headers, a `#C`
// acceptance comment, and one `#P x y` tile block per static-background
// tile using '.'/'*'/'@'/'?' for OFF/ON/perturbation/unresolved cells.
package solution

import (
	"bytes"
	"crypto/sha3"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/haldun/bellman/cell"
	"github.com/haldun/bellman/parse"
	"github.com/haldun/bellman/tile"
	"github.com/haldun/bellman/universe"
)

// Writer emits accepted solutions to the filesystem.
type Writer struct {
	// Dir is the directory solution files are written to. Empty means the
	// current working directory.
	Dir string
}

// Name returns the filename a solution with the given 1-based index is
// written to. legacy selects the `-4` suffix old-result-naming asks for.
func (w Writer) Name(index int, legacy bool) string {
	name := fmt.Sprintf("result%06d.out", index)
	if legacy {
		name = fmt.Sprintf("result%06d-4.out", index)
	}
	if w.Dir == "" {
		return name
	}
	return filepath.Join(w.Dir, name)
}

// Write renders the solution to its named file and returns the path
// written to.
func (w Writer) Write(index int, params parse.Params, static, evolving *universe.Universe, acceptedGen int) (string, error) {
	path := w.Name(index, params.OldResultNaming)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if err := Render(f, params, static, evolving, acceptedGen); err != nil {
		return "", err
	}
	return path, nil
}

// header is the exact `#S` line order original_source/bellman.c's
// bellman_found_solution writes.
var header = []struct {
	name string
	get  func(parse.Params) uint
}{
	{"min-activation-gen", func(p parse.Params) uint { return p.MinActivationGen }},
	{"max-first-activation-gen", func(p parse.Params) uint { return p.MaxFirstActivationGen }},
	{"max-reactivation-gen", func(p parse.Params) uint { return p.MaxReactivationGen }},
	{"max-active-gens-in-a-row", func(p parse.Params) uint { return p.MaxActiveGensInARow }},
	{"inactive-gens-at-accept", func(p parse.Params) uint { return p.InactiveGensAtAccept }},
	{"active-plus-inactive-gens-at-accept", func(p parse.Params) uint { return p.ActivePlusInactiveGensAtAccept }},
}

var tailHeader = []struct {
	name string
	get  func(parse.Params) uint
}{
	{"max-added-static-oncells", func(p parse.Params) uint { return p.MaxAddedStaticOncells }},
	{"max-flipped-cells-in-activation", func(p parse.Params) uint { return p.MaxFlippedCellsInActivation }},
	{"max-local-complexity", func(p parse.Params) uint { return p.MaxLocalComplexity }},
	{"max-local-areas", func(p parse.Params) uint { return p.MaxLocalAreas }},
	{"min-local-area-separation-squared", func(p parse.Params) uint { return p.MinLocalAreaSeparationSquared }},
	{"max-global-complexity", func(p parse.Params) uint { return p.MaxGlobalComplexity }},
}

// Render writes a solution's full text — headers, acceptance comment, and
// tile blocks — to w.
func Render(w io.Writer, params parse.Params, static, evolving *universe.Universe, acceptedGen int) error {
	for _, h := range header {
		if _, err := fmt.Fprintf(w, "#S %s %d\n", h.name, h.get(params)); err != nil {
			return err
		}
	}
	continueAfterAccept := 0
	if params.ContinueAfterAccept {
		continueAfterAccept = 1
	}
	if _, err := fmt.Fprintf(w, "#S continue-after-accept %d\n", continueAfterAccept); err != nil {
		return err
	}
	for _, h := range tailHeader {
		if _, err := fmt.Fprintf(w, "#S %s %d\n", h.name, h.get(params)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "#C Solution accepted at generation %d\n", acceptedGen); err != nil {
		return err
	}
	return renderTiles(w, static, evolving)
}

// renderTiles writes only the `#P` tile blocks, with no header: the part
// Fingerprint hashes, so the same pattern fingerprints identically no
// matter what parameters or generation produced it.
func renderTiles(w io.Writer, static, evolving *universe.Universe) error {
	evolvingGen0 := evolving.FindGeneration(0, false)

	var row [tile.Width]byte
	var err error
	static.First.Each(func(t *tile.Tile) {
		if err != nil {
			return
		}
		var et *tile.Tile
		if evolvingGen0 != nil {
			et = evolvingGen0.FindTile(t.XPos, t.YPos, false)
		}
		if _, werr := fmt.Fprintf(w, "#P %d %d\n", t.XPos*tile.Width, t.YPos*tile.Height); werr != nil {
			err = werr
			return
		}
		for y := 0; y < tile.Height; y++ {
			for x := 0; x < tile.Width; x++ {
				row[x] = cellChar(t, et, x, y)
			}
			if _, werr := w.Write(row[:]); werr != nil {
				err = werr
				return
			}
			if _, werr := io.WriteString(w, "\n"); werr != nil {
				err = werr
				return
			}
		}
	})
	return err
}

// cellChar picks the dialect character for (x, y): the evolving-only
// perturbation mark is computed first, then overridden by the static
// tile's own value, exactly mirroring bellman.c's two sequential `if`s.
func cellChar(static, evolving *tile.Tile, x, y int) byte {
	c := byte('.')
	if evolving != nil && evolving.Get(x, y) == cell.On {
		c = '@'
	}
	switch static.Get(x, y) {
	case cell.On:
		c = '*'
	case cell.Off:
		// leave whatever the evolving check above produced
	default:
		c = '?'
	}
	return c
}

// Fingerprint returns a short hex digest of a solution's `#P` tile blocks,
// independent of the header's parameter values or accepted generation —
// the same committed pattern fingerprints identically whether it was found
// under different search parameters or rediscovered on a later run.
func Fingerprint(static, evolving *universe.Universe) (string, error) {
	var buf bytes.Buffer
	if err := renderTiles(&buf, static, evolving); err != nil {
		return "", err
	}
	h := sha3.NewSHAKE128()
	if _, err := h.Write(buf.Bytes()); err != nil {
		return "", err
	}
	sum := make([]byte, 16)
	if _, err := io.ReadFull(h, sum); err != nil {
		return "", err
	}
	return hex.EncodeToString(sum), nil
}
