package deck

import (
	"testing"

	"linie1/pkg/engine/tiles"
)

func TestNew_PileHoldsAllSwappableCopies(t *testing.T) {
	catalog := tiles.DefaultCatalog()
	d := New(catalog, 1)

	want := 0
	for _, name := range catalog.Names() {
		tt, _ := catalog.Get(name)
		if tt.Swappable {
			want += tt.DeckCount
		}
	}
	if d.Remaining() != want {
		t.Errorf("pile holds %d tiles, want %d", d.Remaining(), want)
	}

	counts := d.Counts()
	for _, name := range catalog.Names() {
		tt, _ := catalog.Get(name)
		if tt.Swappable {
			if counts[name] != tt.DeckCount {
				t.Errorf("%s: %d copies, want %d", name, counts[name], tt.DeckCount)
			}
		} else if counts[name] != 0 {
			t.Errorf("tree tile %s in the draw pile", name)
		}
	}
}

func TestDraw_DepletesPile(t *testing.T) {
	d := New(tiles.DefaultCatalog(), 42)
	total := d.Remaining()

	for i := 0; i < total; i++ {
		if _, err := d.Draw(); err != nil {
			t.Fatalf("draw %d of %d: %v", i+1, total, err)
		}
	}
	if d.Remaining() != 0 {
		t.Errorf("%d tiles left after drawing everything", d.Remaining())
	}
	if _, err := d.Draw(); err == nil {
		t.Error("drawing from an empty pile succeeded")
	}
}

func TestDealHand(t *testing.T) {
	d := New(tiles.DefaultCatalog(), 7)
	hand := d.DealHand(5)
	if len(hand) != 5 {
		t.Errorf("dealt %d tiles, want 5", len(hand))
	}
	for _, name := range hand {
		if _, ok := tiles.DefaultCatalog().Get(name); !ok {
			t.Errorf("dealt unknown type %q", name)
		}
	}
}

func TestShuffle_SeedIsDeterministic(t *testing.T) {
	a := New(tiles.DefaultCatalog(), 99).DealHand(10)
	b := New(tiles.DefaultCatalog(), 99).DealHand(10)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed dealt different hands: %v vs %v", a, b)
		}
	}
}
