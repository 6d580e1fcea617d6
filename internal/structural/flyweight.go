package structural

import (
	"fmt"
	"io"
	"sync"
)

// Glyph carries the intrinsic state shared across every placement.
type Glyph struct {
	Rune rune
	Font string
}

// RenderAt combines the shared glyph with per-call extrinsic position.
func (g *Glyph) RenderAt(x, y int) string {
	return fmt.Sprintf("%q in %s at (%d,%d)", g.Rune, g.Font, x, y)
}

// GlyphFactory interns glyphs so equal intrinsic state is stored once.
type GlyphFactory struct {
	cache map[string]*Glyph
	mu    sync.Mutex
}

func NewGlyphFactory() *GlyphFactory {
	return &GlyphFactory{cache: make(map[string]*Glyph)}
}

func (f *GlyphFactory) Get(r rune, font string) *Glyph {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := fmt.Sprintf("%c|%s", r, font)
	if g, ok := f.cache[key]; ok {
		return g
	}
	g := &Glyph{Rune: r, Font: font}
	f.cache[key] = g
	return g
}

// Size counts unique interned glyphs.
func (f *GlyphFactory) Size() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.cache)
}

func DemoFlyweight(w io.Writer) error {
	factory := NewGlyphFactory()
	placements := []struct {
		r    rune
		font string
		x, y int
	}{
		{'a', "mono", 0, 0},
		{'b', "mono", 1, 0},
		{'a', "mono", 2, 0},
		{'a', "serif", 3, 0},
		{'b', "mono", 4, 0},
	}
	for _, p := range placements {
		g := factory.Get(p.r, p.font)
		fmt.Fprintln(w, g.RenderAt(p.x, p.y))
	}
	fmt.Fprintf(w, "placements: %d, interned glyphs: %d\n", len(placements), factory.Size())
	return nil
}
