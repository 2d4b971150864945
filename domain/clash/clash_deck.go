package clash

import (
	"math/rand/v2"

	"github.com/luca-patrignani/elemental-clash/domain/deck"
)

// DeckSize is the number of cards in a standard deck.
const DeckSize = 52

// ClashDeck wraps a generic draw pile and converts its raw numbers to Cards.
// It is the without-replacement card source used in full games.
type ClashDeck struct {
	*deck.Deck
}

// NewClashDeck returns an ordered 52-card deck.
func NewClashDeck() ClashDeck {
	return ClashDeck{Deck: deck.New(DeckSize)}
}

// NewShuffledDeck returns all 52 cards in an order determined by rng.
// Passing generators with the same seed yields the same permutation.
func NewShuffledDeck(rng *rand.Rand) ClashDeck {
	d := NewClashDeck()
	d.Shuffle(rng)
	return d
}

// DrawOne removes and returns the front card. An empty pile returns a
// *deck.EmptyDeckError, which full-game callers treat as "stop drawing".
func (d ClashDeck) DrawOne() (Card, error) {
	raw, err := d.Deck.DrawCard()
	if err != nil {
		return Card{}, err
	}
	return IntToCard(raw)
}

// DealHands deals perPlayer cards to each of players in seat order.
func (d ClashDeck) DealHands(players, perPlayer int) ([][]Card, error) {
	raw, err := d.Deck.Deal(players, perPlayer)
	if err != nil {
		return nil, err
	}
	hands := make([][]Card, len(raw))
	for i, h := range raw {
		hands[i] = make([]Card, 0, len(h))
		for _, n := range h {
			c, err := IntToCard(n)
			if err != nil {
				return nil, err
			}
			hands[i] = append(hands[i], c)
		}
	}
	return hands, nil
}

// Pile returns the cards left in the pile, front first.
func (d ClashDeck) Pile() []Card {
	raw := d.Deck.Cards()
	out := make([]Card, 0, len(raw))
	for _, n := range raw {
		c, _ := IntToCard(n)
		out = append(out, c)
	}
	return out
}

// PickRandomCard samples a card uniformly at random WITH replacement: it
// does not come from any pile, so repeated calls can return the same card.
// It exists for synthetic training data only; real games draw from a
// ClashDeck.
func PickRandomCard(rng *rand.Rand) Card {
	return Card{
		suit: Suits[rng.IntN(len(Suits))],
		rank: uint8(MinRank + rng.IntN(MaxRank-MinRank+1)),
	}
}
