package search

// localComplexityFreeCells and globalComplexityFreeCells are the "free
// cells" constants the complexity score subtracts before charging for
// on-cell count: a box gets this many on-cells before its population starts
// contributing to the score.
const (
	localComplexityFreeCells  = 4
	globalComplexityFreeCells = 9
)

// box is a growable bounding box around a set of committed on-cells, scored
// for "visual compactness" per spec §4.4.
type box struct {
	xOn, xOff, yOn, yOff int // [xOn,xOff) x [yOn,yOff); empty when xOn > xOff
	onCount              int
}

func emptyBox() box { return box{xOn: 0, xOff: -1, yOn: 0, yOff: -1} }

// tryAdd returns the box that results from adding (x, y) to b, and whether
// its score stays within limit given freeCells. b itself is left unchanged;
// the caller commits the returned box only on success.
func (b box) tryAdd(x, y, limit, freeCells int) (box, bool) {
	nb := b
	nb.onCount++

	if b.xOn > b.xOff {
		nb.xOn, nb.xOff = x, x+1
	} else {
		if nb.xOn > x {
			nb.xOn = x
		}
		if nb.xOff < x+1 {
			nb.xOff = x + 1
		}
	}
	if b.yOn > b.yOff {
		nb.yOn, nb.yOff = y, y+1
	} else {
		if nb.yOn > y {
			nb.yOn = y
		}
		if nb.yOff < y+1 {
			nb.yOff = y + 1
		}
	}

	score := nb.onCount - freeCells
	if score < 0 {
		score = 0
	}
	longSide, shortSide := nb.xOff-nb.xOn, nb.yOff-nb.yOn
	if longSide < shortSide {
		longSide, shortSide = shortSide, longSide
	}
	score += 2*longSide + shortSide

	return nb, score <= limit
}

// complexityOK runs both the local and global complexity tests over the
// global (x, y) positions of cells, in insertion order, exactly as
// bellman.c's test_complexity did: boxes are rebuilt from scratch on every
// call rather than maintained incrementally, since the added-oncell list
// this runs over is already bounded (at most maxOnlistSize entries) and
// rebuilding is simpler than restoring box state on backtrack.
func complexityOK(cells [][2]int, maxAreas, maxLocalComplexity, maxGlobalComplexity int) PruneReason {
	boxes := make([]box, maxAreas)
	for i := range boxes {
		boxes[i] = emptyBox()
	}

	for _, c := range cells {
		placed := false
		for i := range boxes {
			if nb, ok := boxes[i].tryAdd(c[0], c[1], maxLocalComplexity, localComplexityFreeCells); ok {
				boxes[i] = nb
				placed = true
				break
			}
		}
		if !placed {
			return PruneTooComplexLocally
		}
	}

	global := emptyBox()
	for _, c := range cells {
		nb, ok := global.tryAdd(c[0], c[1], maxGlobalComplexity, globalComplexityFreeCells)
		if !ok {
			return PruneTooComplexGlobally
		}
		global = nb
	}

	return PruneNone
}
