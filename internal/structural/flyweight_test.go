package structural

import (
	"sync"
	"testing"
)

func TestEqualIntrinsicStateIsInternedOnce(t *testing.T) {
	factory := NewGlyphFactory()
	a1 := factory.Get('a', "mono")
	a2 := factory.Get('a', "mono")
	if a1 != a2 {
		t.Fatalf("expected shared glyph for equal intrinsic state")
	}

	serif := factory.Get('a', "serif")
	other := factory.Get('b', "mono")
	if serif == a1 || other == a1 {
		t.Fatalf("expected distinct glyphs for distinct intrinsic state")
	}
	if factory.Size() != 3 {
		t.Fatalf("expected 3 interned glyphs, got %d", factory.Size())
	}
}

func TestExtrinsicStateStaysPerCall(t *testing.T) {
	factory := NewGlyphFactory()
	g := factory.Get('x', "mono")
	first := g.RenderAt(1, 2)
	second := g.RenderAt(9, 9)
	if first == second {
		t.Fatalf("expected position to vary per render, got %q twice", first)
	}
}

func TestFactoryIsSafeUnderConcurrentGets(t *testing.T) {
	factory := NewGlyphFactory()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			factory.Get('z', "mono")
		}()
	}
	wg.Wait()
	if factory.Size() != 1 {
		t.Fatalf("expected one interned glyph after concurrent gets, got %d", factory.Size())
	}
}
