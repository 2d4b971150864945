package clash

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
)

// Suit of a card (0-3).
type Suit uint8

const (
	Spades   Suit = 0 // ♠ fire
	Diamonds Suit = 1 // ♦ water
	Hearts   Suit = 2 // ♥ earth
	Clubs    Suit = 3 // ♣ air
)

// Suits lists every suit in deck order.
var Suits = [4]Suit{Spades, Diamonds, Hearts, Clubs}

// Card rank constants for face cards and ace. Ace is high.
const (
	Jack  = 11 // J
	Queen = 12 // Q
	King  = 13 // K
	Ace   = 14 // A

	MinRank = 2
	MaxRank = Ace
)

var suitNames = [4]string{"spades", "diamonds", "hearts", "clubs"}

func (s Suit) String() string {
	if int(s) < len(suitNames) {
		return suitNames[s]
	}
	return "?"
}

// Element returns the element the suit stands for.
func (s Suit) Element() Element {
	switch s {
	case Spades:
		return Fire
	case Diamonds:
		return Water
	case Hearts:
		return Earth
	default:
		return Air
	}
}

// Card represents a playing card with suit and rank.
// Rank 0 indicates a face-down card.
type Card struct {
	suit Suit
	rank uint8 // 2-14: two through ace
}

// NewCard creates a new Card with validation.
//
// Parameters:
//   - suit: Spades, Diamonds, Hearts or Clubs
//   - rank: 2-14 (2-10 face value, Jack=11, Queen=12, King=13, Ace=14)
//
// Returns the Card or an error if suit or rank is invalid.
func NewCard(suit Suit, rank uint8) (Card, error) {
	if suit > Clubs || rank < MinRank || rank > MaxRank {
		return Card{}, fmt.Errorf("invalid card %d, %d", suit, rank)
	}
	return Card{suit: suit, rank: rank}, nil
}

// MustCard is NewCard for literals known to be valid.
func MustCard(suit Suit, rank uint8) Card {
	c, err := NewCard(suit, rank)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Card) Suit() Suit {
	return c.suit
}

func (c Card) Rank() uint8 {
	return c.rank
}

// Element returns the element of the card's suit.
func (c Card) Element() Element {
	return c.suit.Element()
}

// IsFaceDown reports whether the card is a hidden placeholder.
func (c Card) IsFaceDown() bool {
	return c.rank == 0
}

func rankString(rank uint8) string {
	switch rank {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return strconv.Itoa(int(rank))
	}
}

// String returns the canonical form "<rank> of <suit>", e.g. "Q of clubs".
// Stored datasets depend on this exact text.
func (c Card) String() string {
	if c.IsFaceDown() {
		return FaceDown
	}
	return rankString(c.rank) + " of " + c.suit.String()
}

// FaceDown is the display character for hidden cards
const FaceDown = "▓"

// Pretty returns a short colored form for terminals, e.g. "7♠".
func (c Card) Pretty() string {
	if c.IsFaceDown() {
		return FaceDown
	}
	var symbol string
	switch c.suit {
	case Spades:
		symbol = pterm.LightRed("♠")
	case Diamonds:
		symbol = pterm.LightBlue("♦")
	case Hearts:
		symbol = pterm.Green("♥")
	default:
		symbol = pterm.LightWhite("♣")
	}
	return rankString(c.rank) + symbol
}

// MarshalText encodes the card in its canonical form.
func (c Card) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a canonical card string.
func (c *Card) UnmarshalText(text []byte) error {
	parsed, err := ParseCard(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseCard parses the canonical form "<RANK> of <suit>". Rank letters are
// upper case and suits lower case; anything else is a MalformedCardError.
func ParseCard(s string) (Card, error) {
	rankText, suitText, ok := strings.Cut(s, " of ")
	if !ok {
		return Card{}, &MalformedCardError{Input: s, Reason: "missing \" of \""}
	}

	var rank uint8
	switch rankText {
	case "J":
		rank = Jack
	case "Q":
		rank = Queen
	case "K":
		rank = King
	case "A":
		rank = Ace
	default:
		n, err := strconv.Atoi(rankText)
		if err != nil || n < MinRank || n > 10 || strconv.Itoa(n) != rankText {
			return Card{}, &MalformedCardError{Input: s, Reason: "unknown rank " + strconv.Quote(rankText)}
		}
		rank = uint8(n)
	}

	for i, name := range suitNames {
		if name == suitText {
			return Card{suit: Suit(i), rank: rank}, nil
		}
	}
	return Card{}, &MalformedCardError{Input: s, Reason: "unknown suit " + strconv.Quote(suitText)}
}

// IntToCard converts a raw card number (1-52) to a Card. Numbers map to suits
// in deck order (spades, diamonds, hearts, clubs) with ranks 2 through ace
// inside each suit.
func IntToCard(rawCard int) (Card, error) {
	if rawCard > 52 || rawCard < 1 {
		return Card{}, fmt.Errorf("the card to convert has an invalid value %d", rawCard)
	}
	suit := Suit((rawCard - 1) / 13)
	rank := uint8((rawCard-1)%13 + MinRank)
	return NewCard(suit, rank)
}

// CardToInt is the inverse of IntToCard.
func CardToInt(card Card) int {
	return int(card.suit)*13 + int(card.rank) - MinRank + 1
}
