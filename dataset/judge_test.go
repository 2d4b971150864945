package dataset

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/luca-patrignani/elemental-clash/llm"
)

type chatStub struct {
	replies []string
	err     error
	calls   [][]llm.Message
}

func (c *chatStub) Complete(ctx context.Context, model string, messages []llm.Message) (string, error) {
	c.calls = append(c.calls, messages)
	if c.err != nil {
		return "", c.err
	}
	r := c.replies[0]
	c.replies = c.replies[1:]
	return r, nil
}

func TestJudge(t *testing.T) {
	samples, err := NewGenerator(9).Generate(context.Background(), 3)
	if err != nil {
		t.Fatal(err)
	}
	wrong := "Player 1"
	if samples[1].Winner == wrong {
		wrong = "Player 2"
	}
	chat := &chatStub{replies: []string{
		"The winner is " + samples[0].Winner + ".",
		wrong,
		"I cannot tell.",
	}}
	report, err := Judge(context.Background(), chat, "model", samples)
	if err != nil {
		t.Fatal(err)
	}
	if report.Total != 3 || report.Agreed != 1 || report.Unparsed != 1 || len(report.Mismatches) != 2 {
		t.Fatalf("unexpected report %+v", report)
	}
	if got := report.Accuracy(); got < 0.33 || got > 0.34 {
		t.Fatalf("unexpected accuracy %v", got)
	}

	msgs := chat.calls[0]
	if msgs[0].Role != "system" || msgs[0].Content != Rules {
		t.Fatal("first message should carry the rules")
	}
	if !strings.Contains(msgs[1].Content, "Player 1: "+samples[0].PlayerCards[0].Card.String()) {
		t.Fatalf("user message misses the cards: %q", msgs[1].Content)
	}
}

func TestJudgeError(t *testing.T) {
	samples, err := NewGenerator(9).Generate(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Judge(context.Background(), &chatStub{err: errors.New("down")}, "m", samples); err == nil {
		t.Fatal("expected error")
	}
}

func TestJudgeUsesLastLabel(t *testing.T) {
	samples, err := NewGenerator(4).Generate(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	s := samples[0]
	loser := "Player 1"
	if s.Winner == loser {
		loser = "Player 2"
	}
	reply := loser + "'s card loses to " + s.Winner + ", so " + s.Winner + " wins."
	report, err := Judge(context.Background(), &chatStub{replies: []string{reply}}, "m", samples)
	if err != nil {
		t.Fatal(err)
	}
	if report.Agreed != 1 {
		t.Fatalf("expected %q to be read as %s, got %+v", reply, s.Winner, report)
	}

	tests := []struct {
		reply string
		want  string
	}{
		{"Player 2", "Player 2"},
		{"Player 2 loses, Player 3 wins", "Player 3"},
		{"no idea", ""},
	}
	for _, tt := range tests {
		if got := lastLabel(tt.reply); got != tt.want {
			t.Errorf("lastLabel(%q) = %q, want %q", tt.reply, got, tt.want)
		}
	}
}
