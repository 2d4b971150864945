package main

import (
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var ledgerCmd = &cobra.Command{
	Use:   "ledger <game-id>",
	Short: "Show and verify the recorded rounds of a saved game",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()
		chain, err := s.LoadChain(args[0])
		if err != nil {
			return err
		}

		data := pterm.TableData{{"#", "Time", "Cards", "Winner", "Hash"}}
		for _, b := range chain.Blocks() {
			cards := ""
			for i, p := range b.Result.Round {
				if i > 0 {
					cards += " "
				}
				cards += p.Card.Pretty()
			}
			ts := time.Unix(b.Timestamp, 0).Format(time.DateTime)
			data = append(data, []string{fmt.Sprint(b.Index), ts, cards, b.Result.Winner, b.Hash[:12]})
		}
		if latest, err := chain.GetLatest(); err == nil && latest.Index > 0 {
			pterm.Info.Printfln("Shuffle seed %s, %s bots, %s mode",
				latest.Metadata.Extra["seed"], latest.Metadata.Extra["bots"], latest.Metadata.Extra["mode"])
		}
		if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
			return err
		}
		pterm.Success.Printfln("Chain of %d blocks verified", chain.Len())
		return nil
	},
}

func init() {
	ledgerCmd.Flags().String("db", "clash.db", "SQLite database")
	rootCmd.AddCommand(ledgerCmd)
}
