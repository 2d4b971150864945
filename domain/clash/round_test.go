package clash

import (
	"errors"
	"testing"
)

func TestResolveRoundExamples(t *testing.T) {
	tests := []struct {
		name  string
		pairs [][2]string
		want  string
	}{
		{
			name:  "fire beats air",
			pairs: [][2]string{{"P1", "7 of spades"}, {"P2", "3 of clubs"}},
			want:  "P1",
		},
		{
			name:  "water beats fire",
			pairs: [][2]string{{"P1", "3 of spades"}, {"P2", "9 of diamonds"}},
			want:  "P2",
		},
		{
			name:  "same suit tie-break",
			pairs: [][2]string{{"P1", "4 of hearts"}, {"P2", "K of hearts"}},
			want:  "P2",
		},
		{
			name:  "three players",
			pairs: [][2]string{{"Player 1", "5 of hearts"}, {"Player 2", "J of diamonds"}, {"Player 3", "2 of clubs"}},
			want:  "Player 3",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveStrings(tt.pairs...)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("winner = %s, want %s", got, tt.want)
			}
		})
	}
}

// The fold is order dependent on purpose: the highest card does not
// necessarily win and reordering the seats can change the winner.
func TestResolveRoundIsOrderDependent(t *testing.T) {
	fire := MustCard(Spades, 2)
	air := MustCard(Clubs, Ace)
	water := MustCard(Diamonds, 5)

	// P1 (fire) eliminates P2 (air), then P3 (water) eliminates P1.
	winner, err := ResolveRound(Round{{"P1", fire}, {"P2", air}, {"P3", water}})
	if err != nil {
		t.Fatal(err)
	}
	if winner != "P3" {
		t.Fatalf("expected P3, got %s", winner)
	}
	// a naive highest-rank pick would have chosen the ace
	if winner == "P2" {
		t.Fatal("fold must not behave like a max-rank ranking")
	}

	// P3 (water) eliminates P1 (fire); water and air are opposed so the ace wins.
	winner, err = ResolveRound(Round{{"P3", water}, {"P1", fire}, {"P2", air}})
	if err != nil {
		t.Fatal(err)
	}
	if winner != "P2" {
		t.Fatalf("expected P2, got %s", winner)
	}
}

func TestResolveRoundInvalid(t *testing.T) {
	rounds := []Round{
		nil,
		{{"P1", MustCard(Spades, 3)}},
		{{"P1", MustCard(Spades, 3)}, {"P1", MustCard(Hearts, 3)}},
	}
	for _, r := range rounds {
		_, err := ResolveRound(r)
		var invalid *InvalidRoundError
		if !errors.As(err, &invalid) {
			t.Errorf("expected InvalidRoundError for %v, got %v", r, err)
		}
	}
}

func TestResolveStringsMalformed(t *testing.T) {
	_, err := ResolveStrings([2]string{"P1", "7 of spades"}, [2]string{"P2", "3 of swords"})
	var malformed *MalformedCardError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedCardError, got %v", err)
	}
}

func TestRoundDistinctCards(t *testing.T) {
	r := Round{{"P1", MustCard(Spades, 3)}, {"P2", MustCard(Hearts, 3)}}
	if !r.DistinctCards() {
		t.Fatal("expected distinct cards")
	}
	r = append(r, Play{"P3", MustCard(Spades, 3)})
	if r.DistinctCards() {
		t.Fatal("expected duplicate to be detected")
	}
}
