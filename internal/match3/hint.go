package match3

// Swap is a pair of adjacent positions.
type Swap struct {
	A Position `json:"a" yaml:"a"`
	B Position `json:"b" yaml:"b"`
}

// LegalSwaps lists every adjacent swap that would create a match, scanning
// row-major and trying the right neighbour before the one below.
// The board is left unchanged.
func LegalSwaps(b *Board) []Swap {
	scratch := b.Clone()
	var out []Swap
	for r := 0; r < scratch.height; r++ {
		for c := 0; c < scratch.width; c++ {
			p := Position{r, c}
			for _, q := range []Position{p.Right(), p.Down()} {
				if !scratch.InBounds(q) || scratch.Get(p) == scratch.Get(q) {
					continue
				}
				scratch.Swap(p, q)
				if HasMatch(scratch) {
					out = append(out, Swap{A: p, B: q})
				}
				scratch.Swap(p, q)
			}
		}
	}
	return out
}

// FirstLegalSwap returns the first entry LegalSwaps would return.
// ok is false when the board is soft-locked.
func FirstLegalSwap(b *Board) (s Swap, ok bool) {
	scratch := b.Clone()
	for r := 0; r < scratch.height; r++ {
		for c := 0; c < scratch.width; c++ {
			p := Position{r, c}
			for _, q := range []Position{p.Right(), p.Down()} {
				if !scratch.InBounds(q) || scratch.Get(p) == scratch.Get(q) {
					continue
				}
				scratch.Swap(p, q)
				found := HasMatch(scratch)
				scratch.Swap(p, q)
				if found {
					return Swap{A: p, B: q}, true
				}
			}
		}
	}
	return Swap{}, false
}
