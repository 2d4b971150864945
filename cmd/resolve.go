package main

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/luca-patrignani/elemental-clash/dataset"
	"github.com/luca-patrignani/elemental-clash/domain/clash"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <card>...",
	Short: "Resolve a single round",
	Long: `Resolve a round given each player's card in seat order.
Arguments are either "NAME=CARD" or a bare card, in which case seats are
named "Player 1", "Player 2", ...

Example: clash resolve "Alice=7 of spades" "Bob=3 of clubs"`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		round, err := clash.ParseRound(parsePlays(args)...)
		if err != nil {
			return err
		}
		winner, err := clash.ResolveRound(round)
		if err != nil {
			return err
		}
		pterm.Println(roundPanel(round, winner))
		return nil
	},
}

// parsePlays turns CLI arguments into (player, card) pairs.
func parsePlays(args []string) [][2]string {
	pairs := make([][2]string, 0, len(args))
	for i, a := range args {
		if name, card, ok := strings.Cut(a, "="); ok {
			pairs = append(pairs, [2]string{strings.TrimSpace(name), strings.TrimSpace(card)})
			continue
		}
		pairs = append(pairs, [2]string{dataset.PlayerLabel(i), strings.TrimSpace(a)})
	}
	return pairs
}

func roundPanel(round clash.Round, winner string) string {
	var b strings.Builder
	for _, p := range round {
		line := fmt.Sprintf("%-10s %-4s %-16s %s", p.Player, p.Card.Pretty(), p.Card, p.Card.Element())
		if p.Player == winner {
			line = pterm.LightGreen(line + "  ← winner")
		}
		b.WriteString(line + "\n")
	}
	return pterm.DefaultBox.WithTitle(pterm.LightYellow("|ROUND|")).WithTitleTopCenter().Sprint(strings.TrimRight(b.String(), "\n"))
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}
