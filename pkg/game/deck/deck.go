// Package deck implements the tile draw pile. The pile is built from the
// catalog's per-type counts, shuffled once, and drawn from until empty;
// players never see how many tiles remain.
package deck

import (
	"fmt"
	"math/rand"
	"sort"

	"linie1/pkg/engine/tiles"
)

// Deck is a shuffled pile of tile type names
type Deck struct {
	pile []string
	rng  *rand.Rand
}

// New builds a deck from the catalog, with DeckCount copies of each
// swappable type, and shuffles it. Tree tiles start on the board and are
// never drawn.
func New(catalog *tiles.Catalog, seed int64) *Deck {
	var pile []string
	for _, name := range catalog.Names() {
		t, _ := catalog.Get(name)
		if !t.Swappable {
			continue
		}
		for i := 0; i < t.DeckCount; i++ {
			pile = append(pile, t.Name)
		}
	}

	d := &Deck{pile: pile, rng: rand.New(rand.NewSource(seed))}
	d.shuffle()
	return d
}

func (d *Deck) shuffle() {
	d.rng.Shuffle(len(d.pile), func(i, j int) {
		d.pile[i], d.pile[j] = d.pile[j], d.pile[i]
	})
}

// Draw removes and returns the top tile type name, or an error when the
// pile is exhausted.
func (d *Deck) Draw() (string, error) {
	if len(d.pile) == 0 {
		return "", fmt.Errorf("draw pile is empty")
	}
	top := d.pile[len(d.pile)-1]
	d.pile = d.pile[:len(d.pile)-1]
	return top, nil
}

// DealHand draws n tiles, stopping early if the pile runs out
func (d *Deck) DealHand(n int) []string {
	hand := make([]string, 0, n)
	for i := 0; i < n; i++ {
		name, err := d.Draw()
		if err != nil {
			break
		}
		hand = append(hand, name)
	}
	return hand
}

// Remaining returns the number of tiles left in the pile
func (d *Deck) Remaining() int {
	return len(d.pile)
}

// Counts returns how many copies of each type remain, keyed by name.
// Intended for devtools dumps, not gameplay.
func (d *Deck) Counts() map[string]int {
	counts := map[string]int{}
	for _, name := range d.pile {
		counts[name]++
	}
	return counts
}

// Names returns the distinct type names still in the pile, sorted
func (d *Deck) Names() []string {
	counts := d.Counts()
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
