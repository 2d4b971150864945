package clash

import "fmt"

// Play is one player's revealed card.
type Play struct {
	Player string `json:"player"`
	Card   Card   `json:"card"`
}

// Round is the set of cards revealed at the same time, in seat order.
// Order matters: it is the order of the fold in ResolveRound.
type Round []Play

// Validate checks that the round has at least two plays and no player
// appears twice.
func (r Round) Validate() error {
	if len(r) < 2 {
		return &InvalidRoundError{Players: len(r), Reason: "at least 2 players are required"}
	}
	seen := make(map[string]bool, len(r))
	for _, p := range r {
		if seen[p.Player] {
			return &InvalidRoundError{Players: len(r), Reason: fmt.Sprintf("player %q plays twice", p.Player)}
		}
		seen[p.Player] = true
	}
	return nil
}

// Cards returns the played cards in seat order.
func (r Round) Cards() []Card {
	out := make([]Card, len(r))
	for i, p := range r {
		out[i] = p.Card
	}
	return out
}

// DistinctCards reports whether no card appears twice in the round.
func (r Round) DistinctCards() bool {
	seen := make(map[Card]bool, len(r))
	for _, p := range r {
		if seen[p.Card] {
			return false
		}
		seen[p.Card] = true
	}
	return true
}

// ResolveRound returns the identifier of the round's winner.
//
// The first play is the initial champion; each following play challenges
// the current champion with Beats(champion, challenger) and the survivor
// carries on. Because the element cycle is not transitive, changing the seat
// order can change the winner. Datasets are labeled with this exact fold,
// so it must not be replaced by a global ranking.
func ResolveRound(r Round) (string, error) {
	if err := r.Validate(); err != nil {
		return "", err
	}
	champion := r[0]
	for _, challenger := range r[1:] {
		if Beats(champion.Card, challenger.Card) != champion.Card {
			champion = challenger
		}
	}
	return champion.Player, nil
}

// ParseRound builds a round from (player, card text) pairs.
func ParseRound(pairs ...[2]string) (Round, error) {
	r := make(Round, 0, len(pairs))
	for _, pair := range pairs {
		c, err := ParseCard(pair[1])
		if err != nil {
			return nil, fmt.Errorf("player %s: %w", pair[0], err)
		}
		r = append(r, Play{Player: pair[0], Card: c})
	}
	return r, nil
}

// ResolveStrings parses and resolves a round given as (player, card text) pairs.
func ResolveStrings(pairs ...[2]string) (string, error) {
	r, err := ParseRound(pairs...)
	if err != nil {
		return "", err
	}
	return ResolveRound(r)
}
