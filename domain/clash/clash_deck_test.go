package clash

import (
	"errors"
	"slices"
	"testing"

	"github.com/luca-patrignani/elemental-clash/domain/deck"
)

func TestNewShuffledDeckDeterministic(t *testing.T) {
	a := NewShuffledDeck(deck.NewRand(2024)).Pile()
	b := NewShuffledDeck(deck.NewRand(2024)).Pile()
	if !slices.Equal(a, b) {
		t.Fatal("same seed produced different decks")
	}
	if len(a) != DeckSize {
		t.Fatalf("expected %d cards, got %d", DeckSize, len(a))
	}
	seen := map[Card]bool{}
	for _, c := range a {
		if seen[c] {
			t.Fatalf("card %s appears twice", c)
		}
		seen[c] = true
	}
	for _, s := range Suits {
		for r := uint8(MinRank); r <= MaxRank; r++ {
			if !seen[MustCard(s, r)] {
				t.Fatalf("missing %s", MustCard(s, r))
			}
		}
	}
}

func TestDrawOneUntilEmpty(t *testing.T) {
	d := NewShuffledDeck(deck.NewRand(5))
	first := d.Pile()[0]
	c, err := d.DrawOne()
	if err != nil {
		t.Fatal(err)
	}
	if c != first {
		t.Fatalf("expected front card %s, got %s", first, c)
	}
	for i := 1; i < DeckSize; i++ {
		if _, err := d.DrawOne(); err != nil {
			t.Fatalf("draw %d: %v", i, err)
		}
	}
	_, err = d.DrawOne()
	var empty *deck.EmptyDeckError
	if !errors.As(err, &empty) {
		t.Fatalf("expected EmptyDeckError, got %v", err)
	}
}

func TestPickRandomCardIsWithReplacement(t *testing.T) {
	rng := deck.NewRand(9)
	seen := map[Card]int{}
	for i := 0; i < 200; i++ {
		c := PickRandomCard(rng)
		if c.Rank() < MinRank || c.Rank() > MaxRank || c.Suit() > Clubs {
			t.Fatalf("invalid card sampled: %v", c)
		}
		seen[c]++
	}
	repeated := false
	for _, n := range seen {
		if n > 1 {
			repeated = true
		}
	}
	// 200 draws over 52 cards must repeat at least one card
	if !repeated {
		t.Fatal("expected repeated cards across independent draws")
	}
}
