package font

// shelfPacker places rectangles left to right on horizontal shelves, opening
// a new shelf below when the current one is full.
type shelfPacker struct {
	width, height int
	padding       int
	shelves       []shelf
}

type shelf struct {
	y, height, x int
}

func newShelfPacker(width, height, padding int) *shelfPacker {
	return &shelfPacker{width: width, height: height, padding: padding}
}

// reserve marks the region [0,w)x[0,h) at the atlas origin as used, on its
// own shelf.
func (p *shelfPacker) reserve(w, h int) {
	p.shelves = append(p.shelves, shelf{y: 0, height: h, x: w + p.padding})
}

func (p *shelfPacker) allocate(w, h int) (x, y int, ok bool) {
	pw := w + p.padding
	ph := h + p.padding

	for i := range p.shelves {
		s := &p.shelves[i]
		if s.x+pw > p.width {
			continue
		}
		if h > s.height {
			// Only the last shelf can grow.
			if i != len(p.shelves)-1 || s.y+ph > p.height {
				continue
			}
			s.height = h
		}
		x, y = s.x, s.y
		s.x += pw
		return x, y, true
	}

	newY := 0
	if n := len(p.shelves); n > 0 {
		last := p.shelves[n-1]
		newY = last.y + last.height + p.padding
	}
	if newY+ph > p.height || pw > p.width {
		return -1, -1, false
	}
	p.shelves = append(p.shelves, shelf{y: newY, height: h, x: pw})
	return 0, newY, true
}
