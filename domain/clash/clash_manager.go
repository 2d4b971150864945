package clash

import (
	"fmt"
	"log/slog"
)

// ClashManager drives a Session one face-down commitment at a time. Cards
// stay hidden until every participant has committed; then the round is
// revealed and resolved.
type ClashManager struct {
	Session  *Session
	Player   int           // id of the local player
	Recorder RoundRecorder // optional
}

// Validate checks whether a play is valid in the current session state by
// verifying the round ID, player existence, that the player has not already
// committed and that the card is in their hand.
func (m *ClashManager) Validate(pa PlayAction) error {
	s := m.Session
	if s.IsOver() {
		return fmt.Errorf("game %s is over", s.GameID)
	}
	if pa.RoundID != s.RoundID {
		return fmt.Errorf("wrong round: expected %s, got %s", s.RoundID, pa.RoundID)
	}
	idx := s.FindPlayerIndex(pa.PlayerID)
	if idx == -1 {
		return fmt.Errorf("player %d not in session", pa.PlayerID)
	}
	if !s.isParticipant(pa.PlayerID) {
		return fmt.Errorf("player %d has no cards left", pa.PlayerID)
	}
	if _, ok := s.Pending[pa.PlayerID]; ok {
		return fmt.Errorf("player %d already committed a card this round", pa.PlayerID)
	}
	if _, ok := removeCard(s.Players[idx].Hand, pa.Card); !ok {
		return fmt.Errorf("player %d does not hold %s", pa.PlayerID, pa.Card)
	}
	return nil
}

// Apply commits a validated play. When it is the last missing commitment
// the round is revealed and its result returned; otherwise the result is nil.
func (m *ClashManager) Apply(pa PlayAction) (*RoundResult, error) {
	if err := m.Validate(pa); err != nil {
		return nil, err
	}
	s := m.Session
	idx := s.FindPlayerIndex(pa.PlayerID)
	s.Players[idx].Hand, _ = removeCard(s.Players[idx].Hand, pa.Card)
	s.Pending[pa.PlayerID] = pa.Card

	if len(s.Pending) < len(s.Participants) {
		return nil, nil
	}

	result, err := s.reveal()
	if err != nil {
		return nil, err
	}
	slog.Debug("round resolved", "game", result.GameID, "round", result.Number, "winner", result.Winner)
	if m.Recorder != nil {
		if err := m.Recorder.Record(result); err != nil {
			return &result, fmt.Errorf("record round %s: %w", result.RoundID, err)
		}
	}
	return &result, nil
}

// ActionPlay builds the local player's commitment of card for the current round.
func (m *ClashManager) ActionPlay(card Card) PlayAction {
	return m.ActionPlayFor(m.Player, card)
}

// ActionPlayFor builds a commitment on behalf of any player, e.g. a bot.
func (m *ClashManager) ActionPlayFor(playerID int, card Card) PlayAction {
	return PlayAction{
		RoundID:  m.Session.RoundID,
		PlayerID: playerID,
		Card:     card,
	}
}

// Waiting returns the ids of participants who have not committed yet.
func (m *ClashManager) Waiting() []int {
	var out []int
	for _, id := range m.Session.Participants {
		if _, ok := m.Session.Pending[id]; !ok {
			out = append(out, id)
		}
	}
	return out
}

// GetSession returns a pointer to the underlying session.
func (m *ClashManager) GetSession() *Session {
	return m.Session
}

// GetWinners returns the players with the most collected cards once the game is over.
func (m *ClashManager) GetWinners() ([]Player, error) {
	return m.Session.Winners()
}
