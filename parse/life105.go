package parse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/haldun/bellman/cell"
	"github.com/haldun/bellman/universe"
)

// Pattern is everything a Life 1.05 input file resolves to: the four
// coexisting universes at generation 0, and the parameter set any `#S`
// lines adjusted.
type Pattern struct {
	Static, Evolving, Forbidden, Filter *universe.Universe
	Params                              Params
}

// ErrAsymmetricInput is returned when the configured symmetry's mirror
// positions disagree about a cell — kept here for callers that detect it
// while resolving a pattern; the search package is the one that actually
// raises it (see search.Wire), but it's declared alongside the other input
// rejection errors since it's reported the same way.
var ErrAsymmetricInput = errors.New("parse: input region is asymmetric under the configured symmetry")

// ErrUnstableCatalyst is returned when the fully-specified portion of the
// static background is already not a still life.
var ErrUnstableCatalyst = errors.New("parse: static background is not stable")

// ReadLife105 reads a Life 1.05 dialect input with this program's
// extensions: `#P x y` pattern blocks, `#F gen x y` filter blocks, `#C`
// comments, and `#S name value` parameter lines. See spec §6 for the
// per-character cell mapping.
func ReadLife105(r io.Reader) (*Pattern, error) {
	p := &Pattern{
		Static:    universe.New(cell.Off),
		Evolving:  universe.New(cell.Off),
		Forbidden: universe.New(cell.Off),
		Filter:    universe.New(cell.Unknown),
		Params:    DefaultParams(),
	}

	var (
		area       byte // 'P' or 'F', zero until the first block header
		gen        int
		originX    int
		originY    int
		row        int
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "#C"):
			continue
		case strings.HasPrefix(line, "#S"):
			fields := strings.Fields(line)
			if len(fields) != 3 {
				return nil, fmt.Errorf("parse: malformed #S line: %q", line)
			}
			if err := p.Params.Apply(fields[1], fields[2]); err != nil {
				return nil, err
			}
		case strings.HasPrefix(line, "#P"):
			fields := strings.Fields(line)
			if len(fields) != 3 {
				return nil, fmt.Errorf("parse: malformed #P line: %q", line)
			}
			x, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("parse: malformed #P line: %q", line)
			}
			y, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, fmt.Errorf("parse: malformed #P line: %q", line)
			}
			area, gen, originX, originY, row = 'P', 0, x, y, 0
		case strings.HasPrefix(line, "#F"):
			fields := strings.Fields(line)
			if len(fields) != 4 {
				return nil, fmt.Errorf("parse: malformed #F line: %q", line)
			}
			g, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("parse: malformed #F line: %q", line)
			}
			x, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, fmt.Errorf("parse: malformed #F line: %q", line)
			}
			y, err := strconv.Atoi(fields[3])
			if err != nil {
				return nil, fmt.Errorf("parse: malformed #F line: %q", line)
			}
			area, gen, originX, originY, row = 'F', g, x, y, 0
		case strings.HasPrefix(line, "#"):
			// Unrecognized header lines (including #N/#D title/description,
			// which this dialect otherwise ignores) don't advance a block.
			continue
		case area == 0:
			// Blank separator line before the first block.
			continue
		default:
			p.applyRow(area, gen, originX, originY, row, line)
			row++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Pattern) applyRow(area byte, gen, originX, originY, row int, line string) {
	y := originY + row
	for i, c := range line {
		x := originX + i
		switch area {
		case 'P':
			if gen != 0 {
				continue
			}
			var vs, ve, vf cell.Value
			switch c {
			case '.':
				vs, ve = cell.Off, cell.Off
			case '*':
				vs, ve = cell.On, cell.On
			case '@':
				vs, ve = cell.Off, cell.On
			case '?':
				vs, ve = cell.UnknownStable, cell.UnknownStable
			case '!':
				vf = cell.On
			default:
				continue
			}
			p.Static.FindGeneration(0, true).SetCell(x, y, vs)
			p.Evolving.FindGeneration(0, true).SetCell(x, y, ve)
			p.Forbidden.FindGeneration(0, true).SetCell(x, y, vf)
		case 'F':
			switch c {
			case '*':
				p.Filter.FindGeneration(gen, true).SetCell(x, y, cell.On)
			case '.', ' ':
				p.Filter.FindGeneration(gen, true).SetCell(x, y, cell.Off)
			}
		}
	}
}
