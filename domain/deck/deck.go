package deck

import (
	"fmt"
	"math/rand/v2"
)

// EmptyDeckError is returned when a draw is attempted on a pile with no
// cards left. In full-game play it only means drawing stops.
type EmptyDeckError struct {
	Drawn int // cards drawn before the pile ran out
}

func (e *EmptyDeckError) Error() string {
	return fmt.Sprintf("deck is empty after %d draws", e.Drawn)
}

// Deck is a draw pile of raw card numbers. A fresh deck of size n holds
// the numbers 1..n in order; the front of the pile is drawn first.
type Deck struct {
	DeckSize int
	cards    []int
	drawn    int
}

// New creates an ordered deck holding 1..size.
func New(size int) *Deck {
	d := &Deck{DeckSize: size}
	d.PrepareDeck()
	return d
}

// PrepareDeck resets the pile to the ordered numbers 1..DeckSize.
func (d *Deck) PrepareDeck() {
	d.cards = make([]int, d.DeckSize)
	for i := range d.cards {
		d.cards[i] = i + 1
	}
	d.drawn = 0
}

// DrawCard removes and returns the front card of the pile.
func (d *Deck) DrawCard() (int, error) {
	if len(d.cards) == 0 {
		return 0, &EmptyDeckError{Drawn: d.drawn}
	}
	c := d.cards[0]
	d.cards = d.cards[1:]
	d.drawn++
	return c, nil
}

// Deal draws perPlayer cards for each of players, one card at a time in
// seat order like a dealer going around the table.
func (d *Deck) Deal(players, perPlayer int) ([][]int, error) {
	if players*perPlayer > len(d.cards) {
		return nil, fmt.Errorf("cannot deal %d cards to %d players: only %d left", perPlayer, players, len(d.cards))
	}
	hands := make([][]int, players)
	for range perPlayer {
		for p := range hands {
			c, err := d.DrawCard()
			if err != nil {
				return nil, err
			}
			hands[p] = append(hands[p], c)
		}
	}
	return hands, nil
}

// Remaining returns how many cards are left in the pile.
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Cards returns a copy of the pile from front to back.
func (d *Deck) Cards() []int {
	out := make([]int, len(d.cards))
	copy(out, d.cards)
	return out
}

// Shuffle permutes the remaining cards using rng. The same seed always
// yields the same order.
func (d *Deck) Shuffle(rng *rand.Rand) {
	perm := permutation(rng, len(d.cards))
	tmp := make([]int, len(d.cards))
	for i, p := range perm {
		tmp[i] = d.cards[p]
	}
	d.cards = tmp
}
