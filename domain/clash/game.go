package clash

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"

	"github.com/luca-patrignani/elemental-clash/domain/deck"
)

// NewSession shuffles a fresh deck with rng, deals HandSize cards to each
// named player and leaves the rest as the draw pile.
func NewSession(gameID string, names []string, rng *rand.Rand) (*Session, error) {
	if len(names) < 2 || len(names) > MaxPlayers {
		return nil, fmt.Errorf("a game needs between 2 and %d players, got %d", MaxPlayers, len(names))
	}
	seen := map[string]bool{}
	for _, n := range names {
		if seen[n] {
			return nil, fmt.Errorf("duplicate player name %q", n)
		}
		seen[n] = true
	}

	d := NewShuffledDeck(rng)
	hands, err := d.DealHands(len(names), HandSize)
	if err != nil {
		return nil, err
	}
	players := make([]Player, len(names))
	for i, name := range names {
		players[i] = Player{Name: name, Id: i, Hand: hands[i]}
	}
	s := &Session{
		GameID:  gameID,
		Players: players,
		Deck:    d,
		Pending: map[int]Card{},
	}
	s.advanceRound()
	return s, nil
}

// FindPlayerIndex returns the session index of the player with the given ID, or -1 if not found.
func (s *Session) FindPlayerIndex(playerID int) int {
	for i, p := range s.Players {
		if p.Id == playerID {
			return i
		}
	}
	return -1
}

// IsOver reports whether fewer than two players can play in the current
// round. A lone player left holding cards cannot make a round on their own.
func (s *Session) IsOver() bool {
	return len(s.Participants) < 2
}

// advanceRound opens the next round for every player still holding cards.
func (s *Session) advanceRound() {
	s.RoundNumber++
	s.RoundID = fmt.Sprintf("%s/%d", s.GameID, s.RoundNumber)
	clear(s.Pending)
	s.Participants = s.Participants[:0]
	for _, p := range s.Players {
		if len(p.Hand) > 0 {
			s.Participants = append(s.Participants, p.Id)
		}
	}
}

// isParticipant reports whether the player must commit a card this round.
func (s *Session) isParticipant(playerID int) bool {
	return slices.Contains(s.Participants, playerID)
}

// reveal resolves the committed cards in seat order, hands all of them to
// the winner and refills hands from the draw pile.
func (s *Session) reveal() (RoundResult, error) {
	var round Round
	for _, id := range s.Participants {
		p := s.Players[s.FindPlayerIndex(id)]
		round = append(round, Play{Player: p.Name, Card: s.Pending[id]})
	}
	winner, err := ResolveRound(round)
	if err != nil {
		return RoundResult{}, err
	}

	result := RoundResult{
		GameID:  s.GameID,
		RoundID: s.RoundID,
		Number:  s.RoundNumber,
		Round:   round,
		Winner:  winner,
	}
	for i := range s.Players {
		if s.Players[i].Name == winner {
			s.Players[i].Collected = append(s.Players[i].Collected, round.Cards()...)
			result.WinnerID = s.Players[i].Id
		}
	}
	s.History = append(s.History, result)

	if err := s.replenish(); err != nil {
		return RoundResult{}, err
	}
	s.advanceRound()
	return result, nil
}

// replenish gives every player one card in seat order. Once the pile is
// empty players keep playing with what they have.
func (s *Session) replenish() error {
	for i := range s.Players {
		c, err := s.Deck.DrawOne()
		var empty *deck.EmptyDeckError
		if errors.As(err, &empty) {
			slog.Debug("draw pile exhausted", "game", s.GameID, "round", s.RoundNumber)
			return nil
		}
		if err != nil {
			return err
		}
		s.Players[i].Hand = append(s.Players[i].Hand, c)
	}
	return nil
}

// Winners returns the players who collected the most cards. Ties share the win.
func (s *Session) Winners() ([]Player, error) {
	if !s.IsOver() {
		return nil, fmt.Errorf("cannot get winners before the game is over")
	}
	best := -1
	var winners []Player
	for _, p := range s.Players {
		switch n := len(p.Collected); {
		case n > best:
			best = n
			winners = []Player{p}
		case n == best:
			winners = append(winners, p)
		}
	}
	return winners, nil
}

func removeCard(hand []Card, c Card) ([]Card, bool) {
	i := slices.Index(hand, c)
	if i == -1 {
		return hand, false
	}
	return slices.Delete(slices.Clone(hand), i, i+1), true
}
