package mines

import "iter"

// neighbors yields the indices of the Moore neighborhood of cell i. Cells
// past the grid edge are skipped, the grid does not wrap.
func (p GameParams) neighbors(i int) iter.Seq[int] {
	return func(yield func(int) bool) {
		x, y := i%p.Width, i/p.Width
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				xx, yy := x+dx, y+dy
				if (dx == 0 && dy == 0) || !p.InBounds(xx, yy) {
					continue
				}
				if !yield(yy*p.Width + xx) {
					return
				}
			}
		}
	}
}
