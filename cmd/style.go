package main

import (
	"strings"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/elemental-clash/domain/clash"
)

func getRoundPanel(result clash.RoundResult) pterm.Panel {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	var b strings.Builder
	for _, p := range result.Round {
		line := pterm.Sprintf("%s played %s (%s)", p.Player, p.Card.Pretty(), p.Card.Element())
		if p.Player == result.Winner {
			line = pterm.LightGreen(line)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString(pterm.Sprintfln("%s takes %d cards", pterm.LightCyan(result.Winner), len(result.Round)))
	title := pterm.LightYellow(pterm.Sprintf("|ROUND %d|", result.Number))
	return pterm.Panel{Data: pbox.WithTitle(title).WithTitleTopCenter().Sprint(b.String())}
}

func getWinnerPanel(m clash.ClashManager) (pterm.Panel, error) {
	winners, err := m.GetWinners()
	if err != nil {
		return pterm.Panel{}, err
	}
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	info := ""
	for _, w := range winners {
		info += pterm.Sprintfln("%s wins with %d cards", pterm.LightCyan(w.Name), len(w.Collected))
	}
	if len(winners) > 1 {
		info += pterm.Sprintln("It's a tie")
	}
	return pterm.Panel{Data: pbox.WithTitle(pterm.LightGreen("|FINAL|")).WithTitleTopCenter().Sprint(info)}, nil
}

func printState(m clash.ClashManager, additionalPanel ...pterm.Panel) {
	s := m.GetSession()
	var panels []pterm.Panel
	var mainPlayer pterm.Panel
	for _, p := range s.Players {
		if p.Id != m.Player {
			panels = append(panels, pterm.Panel{Data: printPlayerInfo(p, false)})
		} else {
			mainPlayer = pterm.Panel{Data: printPlayerInfo(p, true)}
		}
	}
	board := pterm.Panel{Data: printBoardInfo(s)}
	dashboard := []pterm.Panel{mainPlayer}
	dashboard = append(dashboard, additionalPanel...)

	pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		panels,
		{board},
		dashboard,
	}).Render()
}

// printPlayerInfo shows the local player's hand and only the hand size of opponents.
func printPlayerInfo(p clash.Player, main bool) string {
	hpadding := 4
	if main {
		hpadding = 10
	}
	pbox := pterm.DefaultBox.WithHorizontalPadding(hpadding).WithTopPadding(1).WithBottomPadding(1)
	var active string
	if len(p.Hand) > 0 {
		active = pterm.LightGreen("Active")
	} else {
		active = pterm.LightRed("Out of cards")
	}
	cards := make([]string, len(p.Hand))
	for i, c := range p.Hand {
		if main {
			cards[i] = c.Pretty()
		} else {
			cards[i] = clash.FaceDown
		}
	}
	hand := pterm.BgGreen.Sprint(" " + strings.Join(cards, " ") + " ")
	return pbox.WithTitle(p.Name).WithTitleTopLeft().Sprintf("%s\nCollected: %d\n%s\n", active, len(p.Collected), hand)
}

func printBoardInfo(s *clash.Session) string {
	return pterm.BgGreen.Sprintf("\n Round %d | Draw pile: %d \n", s.RoundNumber, s.Deck.Remaining())
}
