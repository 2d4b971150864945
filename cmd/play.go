package main

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strconv"

	"github.com/google/uuid"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/luca-patrignani/elemental-clash/domain/clash"
	"github.com/luca-patrignani/elemental-clash/domain/deck"
	"github.com/luca-patrignani/elemental-clash/ledger"
	"github.com/luca-patrignani/elemental-clash/store"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a full game against bots",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		bots, _ := cmd.Flags().GetInt("bots")
		seed, _ := cmd.Flags().GetUint64("seed")
		auto, _ := cmd.Flags().GetBool("auto")
		dbPath, _ := cmd.Flags().GetString("db")

		names := []string{name}
		for i := range bots {
			names = append(names, fmt.Sprintf("Bot %d", i+1))
		}
		seed = seedOrNow(seed)
		rng := deck.NewRand(seed)
		gameID := uuid.NewString()
		session, err := clash.NewSession(gameID, names, rng)
		if err != nil {
			return err
		}
		chain := ledger.NewBlockchain(gameID)
		m := clash.ClashManager{Session: session, Player: 0, Recorder: chain.Annotated(gameMetadata(seed, bots, auto))}
		slog.Info("game started", "id", gameID, "players", len(names), "seed", seed)

		banner()
		if err := runGame(&m, rng, auto); err != nil {
			return err
		}

		final, err := getWinnerPanel(m)
		if err != nil {
			return err
		}
		printState(m, final)

		if err := chain.Verify(); err != nil {
			return fmt.Errorf("ledger: %w", err)
		}
		if dbPath != "" {
			s, err := store.Open(dbPath)
			if err != nil {
				return err
			}
			defer s.Close()
			if err := s.SaveChain(chain); err != nil {
				return err
			}
			pterm.Success.Printfln("Saved %d rounds of game %s to %s", chain.Len(), gameID, dbPath)
		}
		return nil
	},
}

// gameMetadata is stored with every ledger block so a saved game can be
// replayed from the same shuffle.
func gameMetadata(seed uint64, bots int, auto bool) map[string]string {
	mode := "interactive"
	if auto {
		mode = "auto"
	}
	return map[string]string{
		"seed": strconv.FormatUint(seed, 10),
		"bots": strconv.Itoa(bots),
		"mode": mode,
	}
}

// runGame collects a commitment from every participant each round until the
// game is over. Bots, and the local player when auto is set, play a random
// card from their hand.
func runGame(m *clash.ClashManager, rng *rand.Rand, auto bool) error {
	var last []pterm.Panel
	for !m.Session.IsOver() {
		for _, id := range m.Waiting() {
			p := m.Session.Players[m.Session.FindPlayerIndex(id)]
			var card clash.Card
			if id == m.Player && !auto {
				printState(*m, last...)
				c, err := chooseCard(p.Hand)
				if err != nil {
					return err
				}
				card = c
			} else {
				card = p.Hand[rng.IntN(len(p.Hand))]
			}
			result, err := m.Apply(m.ActionPlayFor(id, card))
			if err != nil {
				return err
			}
			if result != nil {
				last = []pterm.Panel{getRoundPanel(*result)}
				if auto {
					pterm.DefaultPanel.WithPanels([][]pterm.Panel{last}).Render()
				}
			}
		}
	}
	return nil
}

func chooseCard(hand []clash.Card) (clash.Card, error) {
	options := make([]string, len(hand))
	for i, c := range hand {
		options[i] = c.String()
	}
	selected, err := pterm.DefaultInteractiveSelect.WithDefaultText("Choose a card to play").WithOptions(options).Show()
	if err != nil {
		return clash.Card{}, err
	}
	return clash.ParseCard(selected)
}

func init() {
	playCmd.Flags().String("name", "You", "Your player name")
	playCmd.Flags().Int("bots", 2, "Number of bot opponents")
	playCmd.Flags().Uint64("seed", 0, "Shuffle seed (0 = time based)")
	playCmd.Flags().Bool("auto", false, "Let a bot play your seat too")
	playCmd.Flags().String("db", "", "Save the game ledger to this SQLite database")
	rootCmd.AddCommand(playCmd)
}
