package dataset

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/luca-patrignani/elemental-clash/llm"
)

// Rules is the game description handed to a chat model before asking it
// to label a round.
const Rules = `The game is called Elemental Clash.

Each suit is an element: spades are Fire, diamonds are Water, hearts are Earth and clubs are Air.
Card values are ace high: 2 is the lowest card and A the highest.

All players reveal one card at the same time. Elements eliminate each other:
Fire beats Air, Air beats Earth, Earth beats Water and Water beats Fire.
Cards of the same element are decided by value, the higher card wins.
Fire and Earth, or Air and Water, do not eliminate each other: the higher card wins.
The first player's card is the champion; every following player challenges the current champion in seat order and the survivor carries on.`

// Mismatch is a sample the model labeled differently from the resolver.
type Mismatch struct {
	Sample Sample
	Reply  string
}

// Report summarizes a judging run.
type Report struct {
	Total      int
	Agreed     int
	Unparsed   int
	Mismatches []Mismatch
}

// Accuracy is the share of samples where the model agreed with the resolver.
func (r Report) Accuracy() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Agreed) / float64(r.Total)
}

var labelPattern = regexp.MustCompile(`Player \d+`)

// Judge asks chat to label every sample and compares its answers with the
// resolver's winners.
func Judge(ctx context.Context, chat llm.ChatCompleter, model string, samples []Sample) (Report, error) {
	var report Report
	for _, s := range samples {
		reply, err := chat.Complete(ctx, model, Prompt(s))
		if err != nil {
			return report, fmt.Errorf("sample %d: %w", s.ID, err)
		}
		report.Total++
		label := lastLabel(reply)
		switch {
		case label == "":
			report.Unparsed++
			report.Mismatches = append(report.Mismatches, Mismatch{Sample: s, Reply: reply})
		case label == s.Winner:
			report.Agreed++
		default:
			report.Mismatches = append(report.Mismatches, Mismatch{Sample: s, Reply: reply})
		}
		slog.Debug("judged sample", "id", s.ID, "winner", s.Winner, "reply", reply)
	}
	return report, nil
}

// lastLabel returns the last player label in reply. Models tend to reason
// about the losers first and name the winner at the end.
func lastLabel(reply string) string {
	labels := labelPattern.FindAllString(reply, -1)
	if len(labels) == 0 {
		return ""
	}
	return labels[len(labels)-1]
}

// Prompt returns the messages sent for one sample.
func Prompt(s Sample) []llm.Message {
	var b strings.Builder
	for _, p := range s.PlayerCards {
		fmt.Fprintf(&b, "%s: %s\n", p.Player, p.Card)
	}
	b.WriteString("Which player wins the round? Answer with the player label only.")
	return []llm.Message{
		{Role: "system", Content: Rules},
		{Role: "user", Content: b.String()},
	}
}
