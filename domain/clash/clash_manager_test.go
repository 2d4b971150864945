package clash

import (
	"errors"
	"testing"

	"github.com/luca-patrignani/elemental-clash/domain/deck"
)

type recorderStub struct {
	results []RoundResult
	err     error
}

func (r *recorderStub) Record(result RoundResult) error {
	r.results = append(r.results, result)
	return r.err
}

func newManager(t *testing.T, names ...string) (*ClashManager, *recorderStub) {
	t.Helper()
	s, err := NewSession("game", names, deck.NewRand(11))
	if err != nil {
		t.Fatal(err)
	}
	rec := &recorderStub{}
	return &ClashManager{Session: s, Player: 0, Recorder: rec}, rec
}

func TestManager_ValidateWrongRound(t *testing.T) {
	m, _ := newManager(t, "Alice", "Bob")
	pa := m.ActionPlay(m.Session.Players[0].Hand[0])
	pa.RoundID = "other"
	if err := m.Validate(pa); err == nil {
		t.Fatal("expected error for wrong round")
	}
}

func TestManager_ValidatePlayerNotInSession(t *testing.T) {
	m, _ := newManager(t, "Alice", "Bob")
	pa := m.ActionPlayFor(99, m.Session.Players[0].Hand[0])
	if err := m.Validate(pa); err == nil {
		t.Fatal("expected error for unknown player")
	}
}

func TestManager_ValidateCardNotInHand(t *testing.T) {
	m, _ := newManager(t, "Alice", "Bob")
	bobCard := m.Session.Players[1].Hand[0]
	if err := m.Validate(m.ActionPlay(bobCard)); err == nil {
		t.Fatal("expected error for a card not in hand")
	}
}

func TestManager_DoubleCommit(t *testing.T) {
	m, _ := newManager(t, "Alice", "Bob", "Carol")
	hand := m.Session.Players[0].Hand
	res, err := m.Apply(m.ActionPlay(hand[0]))
	if err != nil {
		t.Fatal(err)
	}
	if res != nil {
		t.Fatal("round must not resolve before everyone committed")
	}
	if _, err := m.Apply(m.ActionPlay(m.Session.Players[0].Hand[0])); err == nil {
		t.Fatal("expected error for a second commitment")
	}
	if got := m.Waiting(); len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("unexpected waiting list %v", got)
	}
}

func TestManager_RoundResolution(t *testing.T) {
	m, rec := newManager(t, "Alice", "Bob")
	s := m.Session
	a := s.Players[0].Hand[0]
	b := s.Players[1].Hand[0]
	pileBefore := s.Deck.Deck.Remaining()

	if _, err := m.Apply(m.ActionPlayFor(0, a)); err != nil {
		t.Fatal(err)
	}
	res, err := m.Apply(m.ActionPlayFor(1, b))
	if err != nil {
		t.Fatal(err)
	}
	if res == nil {
		t.Fatal("expected the round to resolve")
	}

	want, err := ResolveRound(Round{{"Alice", a}, {"Bob", b}})
	if err != nil {
		t.Fatal(err)
	}
	if res.Winner != want {
		t.Fatalf("winner = %s, want %s", res.Winner, want)
	}
	winnerIdx := s.FindPlayerIndex(res.WinnerID)
	if len(s.Players[winnerIdx].Collected) != 2 {
		t.Fatalf("winner should collect both cards, has %d", len(s.Players[winnerIdx].Collected))
	}
	for _, p := range s.Players {
		if len(p.Hand) != HandSize {
			t.Errorf("%s should have drawn back to %d cards, has %d", p.Name, HandSize, len(p.Hand))
		}
	}
	if s.Deck.Deck.Remaining() != pileBefore-2 {
		t.Errorf("expected 2 draws from the pile")
	}
	if s.RoundID != "game/2" {
		t.Errorf("expected next round id game/2, got %s", s.RoundID)
	}
	if len(rec.results) != 1 || rec.results[0].Winner != res.Winner {
		t.Errorf("recorder not called with the result: %+v", rec.results)
	}
}

func TestManager_FullGame(t *testing.T) {
	m, rec := newManager(t, "Alice", "Bob", "Carol", "Dave")
	s := m.Session
	rounds := 0
	for !s.IsOver() {
		for _, id := range m.Waiting() {
			p := s.Players[s.FindPlayerIndex(id)]
			if _, err := m.Apply(m.ActionPlayFor(id, p.Hand[0])); err != nil {
				t.Fatalf("round %d: %v", s.RoundNumber, err)
			}
		}
		rounds++
		if rounds > DeckSize {
			t.Fatal("game did not terminate")
		}
	}

	// 52 cards over 4 players: every card is played in 13 rounds
	if rounds != 13 {
		t.Errorf("expected 13 rounds, got %d", rounds)
	}
	collected := 0
	for _, p := range s.Players {
		collected += len(p.Collected)
		if len(p.Hand) != 0 {
			t.Errorf("%s still holds %d cards", p.Name, len(p.Hand))
		}
	}
	if collected != DeckSize {
		t.Errorf("expected all %d cards collected, got %d", DeckSize, collected)
	}
	if len(rec.results) != rounds {
		t.Errorf("expected %d recorded rounds, got %d", rounds, len(rec.results))
	}
	winners, err := m.GetWinners()
	if err != nil {
		t.Fatal(err)
	}
	if len(winners) == 0 {
		t.Fatal("expected at least one winner")
	}
	if _, err := m.Apply(m.ActionPlayFor(0, MustCard(Spades, 2))); err == nil {
		t.Fatal("expected error after the game is over")
	}
}

func TestManager_RecorderError(t *testing.T) {
	m, rec := newManager(t, "Alice", "Bob")
	rec.err = errors.New("disk full")
	if _, err := m.Apply(m.ActionPlayFor(0, m.Session.Players[0].Hand[0])); err != nil {
		t.Fatal(err)
	}
	res, err := m.Apply(m.ActionPlayFor(1, m.Session.Players[1].Hand[0]))
	if err == nil {
		t.Fatal("expected recorder error")
	}
	if res == nil {
		t.Fatal("result should still be returned when recording fails")
	}
}
